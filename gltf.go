package wlw

import (
	"bytes"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadModel loads a .gltf or .glb file from the filepath given into a single Model3D. Every mesh instanced by a node
// of the file's default scene becomes a Mesh, with the node's world transform baked into its vertices. Primitives
// that aren't triangle lists, or whose positions aren't floats, are skipped with a warning.
// If the file cannot be loaded, LoadModel logs the reason and returns nil.
func LoadModel(path string) *Model3D {
	model, err := ReadModel(path)
	if err != nil {
		logger.Error("failed to load model", "path", path, "err", err)
		return nil
	}
	return model
}

// ReadModel is LoadModel returning the failure instead of logging it.
func ReadModel(path string) (*Model3D, error) {

	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wlw: open model %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ReadModelDocument(doc, name, filepath.Dir(path))

}

// ReadModelData loads a model from .gltf or .glb byte data. External images are resolved relative to the working
// directory.
func ReadModelData(data []byte, name string) (*Model3D, error) {

	decoder := gltf.NewDecoder(bytes.NewReader(data))

	doc := gltf.NewDocument()

	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("wlw: decode model %s: %w", name, err)
	}

	return ReadModelDocument(doc, name, ".")

}

// ReadModelDocument builds a Model3D out of an already decoded glTF document. dir is the directory external
// images are resolved against. References the document makes to nodes, meshes, accessors or buffer views that
// don't exist fail with ErrUnsupportedFormat.
func ReadModelDocument(doc *gltf.Document, name, dir string) (model *Model3D, err error) {

	loader := &gltfLoader{
		doc:      doc,
		dir:      dir,
		model:    NewModel[Vertex3D](name),
		visiting: make([]bool, len(doc.Nodes)),
	}

	// Decoding accessor data still indexes into buffers the file describes.
	defer func() {
		if r := recover(); r != nil {
			model, err = nil, fmt.Errorf("wlw: load model %s: %w: %v", name, ErrUnsupportedFormat, r)
		}
	}()

	if err := loader.loadTextures(); err != nil {
		return nil, err
	}

	loader.loadMaterials()

	for _, root := range loader.rootNodes() {
		if err := loader.loadNode(root, NewMatrix4()); err != nil {
			return nil, err
		}
	}

	return loader.model, nil

}

type gltfLoader struct {
	doc   *gltf.Document
	dir   string
	model *Model3D

	// Indexed like doc.Textures and doc.Materials.
	textures  []*Texture
	materials []*Material

	// Nodes on the current path from a root, indexed like doc.Nodes.
	visiting []bool
}

func (loader *gltfLoader) corrupt(format string, args ...any) error {
	return fmt.Errorf("wlw: load model %s: %w: "+format, append([]any{loader.model.Name, ErrUnsupportedFormat}, args...)...)
}

func (loader *gltfLoader) accessor(index int) (*gltf.Accessor, error) {
	if index < 0 || index >= len(loader.doc.Accessors) {
		return nil, loader.corrupt("accessor %d out of range", index)
	}
	return loader.doc.Accessors[index], nil
}

func (loader *gltfLoader) loadTextures() error {

	images := make([]*Texture, len(loader.doc.Images))

	for i, gltfImage := range loader.doc.Images {

		var texture *Texture
		var err error

		switch {
		case gltfImage.BufferView != nil:
			if view := *gltfImage.BufferView; view < 0 || view >= len(loader.doc.BufferViews) {
				return loader.corrupt("image %d: buffer view %d out of range", i, view)
			}
			var data []byte
			data, err = modeler.ReadBufferView(loader.doc, loader.doc.BufferViews[*gltfImage.BufferView])
			if err == nil {
				texture, err = DecodeImage(bytes.NewReader(data))
			}
		case gltfImage.IsEmbeddedResource():
			var data []byte
			data, err = gltfImage.MarshalData()
			if err == nil {
				texture, err = DecodeImage(bytes.NewReader(data))
			}
		case gltfImage.URI != "":
			texture, err = ReadImage(filepath.Join(loader.dir, filepath.FromSlash(gltfImage.URI)))
		default:
			err = fmt.Errorf("image %d has no data", i)
		}

		if err != nil {
			return fmt.Errorf("wlw: load model %s: image %d: %w", loader.model.Name, i, err)
		}

		images[i] = texture
		loader.model.Textures = append(loader.model.Textures, texture)

	}

	loader.textures = make([]*Texture, len(loader.doc.Textures))
	for i, gltfTexture := range loader.doc.Textures {
		if gltfTexture.Source != nil && *gltfTexture.Source >= 0 && *gltfTexture.Source < len(images) {
			loader.textures[i] = images[*gltfTexture.Source]
		}
	}

	return nil

}

func (loader *gltfLoader) loadMaterials() {

	for i, gltfMat := range loader.doc.Materials {

		name := gltfMat.Name
		if name == "" {
			name = "Material." + strconv.Itoa(i)
		}

		newMat := NewMaterial(name)

		if pbr := gltfMat.PBRMetallicRoughness; pbr != nil {

			factor := pbr.BaseColorFactorOrDefault()
			newMat.Color = NewColor(float32(factor[0]), float32(factor[1]), float32(factor[2]), float32(factor[3]))
			newMat.Metallic = float32(pbr.MetallicFactorOrDefault())
			newMat.Roughness = float32(pbr.RoughnessFactorOrDefault())

			if texture := pbr.BaseColorTexture; texture != nil && texture.Index >= 0 && texture.Index < len(loader.textures) {
				if tex := loader.textures[texture.Index]; tex != nil {
					newMat.SetTexture(tex)
				}
			}

		}

		lighting := NewLighting(Vector3{}, 1, max((1-newMat.Roughness)*128, 1))
		lighting.Color = newMat.Color
		newMat.SetLighting(lighting)

		loader.materials = append(loader.materials, newMat)
		loader.model.Materials = append(loader.model.Materials, newMat)

	}

}

// rootNodes returns the nodes of the document's default scene, or of its first scene if none is marked default.
// Documents without scenes have every parentless node loaded.
func (loader *gltfLoader) rootNodes() []int {

	doc := loader.doc

	if len(doc.Scenes) > 0 {
		scene := 0
		if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
			scene = *doc.Scene
		}
		return doc.Scenes[scene].Nodes
	}

	isChild := make([]bool, len(doc.Nodes))
	for _, node := range doc.Nodes {
		for _, child := range node.Children {
			if child >= 0 && child < len(isChild) {
				isChild[child] = true
			}
		}
	}

	roots := []int{}
	for i := range doc.Nodes {
		if !isChild[i] {
			roots = append(roots, i)
		}
	}
	return roots

}

func (loader *gltfLoader) loadNode(index int, parentTransform Matrix4) error {

	if index < 0 || index >= len(loader.doc.Nodes) {
		return loader.corrupt("node %d out of range", index)
	}
	if loader.visiting[index] {
		return loader.corrupt("node %d is its own ancestor", index)
	}
	loader.visiting[index] = true
	defer func() { loader.visiting[index] = false }()

	node := loader.doc.Nodes[index]
	transform := gltfLocalTransform(node).Mult(parentTransform)

	if node.Mesh != nil {
		if *node.Mesh < 0 || *node.Mesh >= len(loader.doc.Meshes) {
			return loader.corrupt("node %d: mesh %d out of range", index, *node.Mesh)
		}
		if err := loader.loadMesh(node, loader.doc.Meshes[*node.Mesh], transform); err != nil {
			return err
		}
	}

	for _, child := range node.Children {
		if err := loader.loadNode(child, transform); err != nil {
			return err
		}
	}

	return nil

}

func gltfLocalTransform(node *gltf.Node) Matrix4 {

	matrix := NewMatrix4FromColumnMajor(node.MatrixOrDefault())
	if !matrix.IsIdentity() {
		return matrix
	}

	t := node.TranslationOrDefault()
	r := node.RotationOrDefault()
	s := node.ScaleOrDefault()

	return NewMatrix4Scale(float32(s[0]), float32(s[1]), float32(s[2])).
		Mult(NewQuaternion(float32(r[0]), float32(r[1]), float32(r[2]), float32(r[3])).Unit().Matrix4()).
		Mult(NewMatrix4Translate(float32(t[0]), float32(t[1]), float32(t[2])))

}

func (loader *gltfLoader) loadMesh(node *gltf.Node, mesh *gltf.Mesh, transform Matrix4) error {

	doc := loader.doc
	normalMatrix := transform.NormalMatrix()

	name := node.Name
	if name == "" {
		name = mesh.Name
	}

	for p, primitive := range mesh.Primitives {

		if primitive.Mode != gltf.PrimitiveTriangles {
			warn("skipping primitive that is not a triangle list", "mesh", name, "primitive", p, "mode", primitive.Mode)
			continue
		}

		posIndex, exists := primitive.Attributes[gltf.POSITION]
		if !exists {
			warn("skipping primitive without positions", "mesh", name, "primitive", p)
			continue
		}

		posAccessor, err := loader.accessor(posIndex)
		if err != nil {
			return err
		}

		if posAccessor.ComponentType != gltf.ComponentFloat {
			warn("skipping primitive with quantized positions", "mesh", name, "primitive", p, "componentType", posAccessor.ComponentType)
			continue
		}

		positions, err := modeler.ReadPosition(doc, posAccessor, nil)
		if err != nil {
			return fmt.Errorf("wlw: load mesh %s: positions: %w", name, err)
		}

		vertexData := make([]Vertex3D, len(positions))

		for i, v := range positions {
			vertexData[i] = Vertex3D{
				Position: transform.MultVec(Vector3{v[0], v[1], v[2]}),
				Color:    NewColor(1, 1, 1, 1),
			}
		}

		if normalIndex, normalExists := primitive.Attributes[gltf.NORMAL]; normalExists {

			normalAccessor, err := loader.accessor(normalIndex)
			if err != nil {
				return err
			}

			if normalAccessor.ComponentType != gltf.ComponentFloat {
				warn("ignoring quantized normals", "mesh", name, "primitive", p)
			} else {

				normals, err := modeler.ReadNormal(doc, normalAccessor, nil)
				if err != nil {
					return fmt.Errorf("wlw: load mesh %s: normals: %w", name, err)
				}

				for i, n := range normals {
					if i < len(vertexData) {
						vertexData[i].Normal = normalMatrix.MultDir(Vector3{n[0], n[1], n[2]}).Unit()
					}
				}

			}

		}

		if texCoordIndex, texCoordExists := primitive.Attributes[gltf.TEXCOORD_0]; texCoordExists {

			texCoordAccessor, err := loader.accessor(texCoordIndex)
			if err != nil {
				return err
			}

			texCoords, err := modeler.ReadTextureCoord(doc, texCoordAccessor, nil)
			if err != nil {
				return fmt.Errorf("wlw: load mesh %s: texture coordinates: %w", name, err)
			}

			for i, uv := range texCoords {
				if i < len(vertexData) {
					vertexData[i].TexCoords = Vector2{uv[0], uv[1]}
				}
			}

		}

		if colorIndex, colorExists := primitive.Attributes[gltf.COLOR_0]; colorExists {

			colorAccessor, err := loader.accessor(colorIndex)
			if err != nil {
				return err
			}

			colors, err := modeler.ReadColor64(doc, colorAccessor, nil)
			if err != nil {
				return fmt.Errorf("wlw: load mesh %s: vertex colors: %w", name, err)
			}

			for i, c := range colors {
				if i < len(vertexData) {
					vertexData[i].Color = NewColor(
						float32(c[0])/math.MaxUint16,
						float32(c[1])/math.MaxUint16,
						float32(c[2])/math.MaxUint16,
						float32(c[3])/math.MaxUint16,
					)
				}
			}

		}

		var indices []uint32

		if primitive.Indices != nil {
			indexAccessor, err := loader.accessor(*primitive.Indices)
			if err != nil {
				return err
			}
			indices, err = modeler.ReadIndices(doc, indexAccessor, nil)
			if err != nil {
				return fmt.Errorf("wlw: load mesh %s: indices: %w", name, err)
			}
			for _, index := range indices {
				if int(index) >= len(vertexData) {
					return loader.corrupt("mesh %s: vertex index %d out of range", name, index)
				}
			}
		} else {
			indices = make([]uint32, len(vertexData))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		meshName := name
		if len(mesh.Primitives) > 1 {
			meshName = name + "." + strconv.Itoa(p)
		}

		newMesh := NewMesh[Vertex3D](meshName)
		newMesh.SetVertices(vertexData)
		newMesh.SetIndices(indices)

		if primitive.Material != nil && *primitive.Material >= 0 && *primitive.Material < len(loader.materials) {
			newMesh.SetMaterial(loader.materials[*primitive.Material])
		}

		loader.model.AddMesh(newMesh)

	}

	return nil

}
