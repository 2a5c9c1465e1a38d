package wlw

import "github.com/wlwengine/wlw/math32"

// CameraMovement is a movement or rotation request sent to a Camera, usually from keyboard input.
type CameraMovement int

const (
	CameraForward CameraMovement = iota
	CameraBackward
	CameraLeft
	CameraRight
	CameraUp
	CameraDown
	CameraUpRotate
	CameraDownRotate
	CameraLeftRotate
	CameraRightRotate
)

func (movement CameraMovement) String() string {
	switch movement {
	case CameraForward:
		return "Forward"
	case CameraBackward:
		return "Backward"
	case CameraLeft:
		return "Left"
	case CameraRight:
		return "Right"
	case CameraUp:
		return "Up"
	case CameraDown:
		return "Down"
	case CameraUpRotate:
		return "UpRotate"
	case CameraDownRotate:
		return "DownRotate"
	case CameraLeftRotate:
		return "LeftRotate"
	case CameraRightRotate:
		return "RightRotate"
	}
	return "Unknown"
}

// Camera provides the view and projection a Window is drawn with.
type Camera interface {
	Position() Vector3
	SetPosition(position Vector3)
	// SetTarget asks the camera to look at a point. Cameras that derive their direction from other state may ignore it.
	SetTarget(target Vector3)
	// UpdateSize tells the camera the size of the surface it renders to, so the projection keeps the right aspect ratio.
	UpdateSize(size Vector2)
	ViewMatrix() Matrix4
	ProjectionMatrix() Matrix4
	ProcessKeyboard(direction CameraMovement, deltaTime float32)
	ProcessMouseMovement(dx, dy float32)
}

const (
	defaultFPSCameraYaw         = -90
	defaultFPSCameraFOV         = 45
	defaultFPSCameraNear        = 0.1
	defaultFPSCameraFar         = 100
	defaultFPSCameraSpeed       = 5
	defaultFPSCameraSensitivity = 0.01
	fpsCameraRotateSpeed        = 30 // degrees per second for keyboard rotation
	fpsCameraPitchLimit         = 89
)

// FPSCamera is a first-person camera for a Z-up world. Its direction comes from a yaw and a pitch (in degrees);
// forward and backward movement stays on the horizontal plane.
type FPSCamera struct {
	position Vector3
	front    Vector3
	right    Vector3
	up       Vector3

	yaw   float32
	pitch float32

	fieldOfView float32
	near, far   float32
	aspectRatio float32

	Speed       float32 // Units moved per second of keyboard input.
	Sensitivity float32 // Degrees turned per unit of mouse movement.

	view       Matrix4
	projection Matrix4
}

// NewFPSCamera returns an FPSCamera at the default starting position, looking along -Y.
func NewFPSCamera() *FPSCamera {
	camera := &FPSCamera{
		position:    Vector3{0.56, 12.16, 2.2},
		yaw:         defaultFPSCameraYaw,
		fieldOfView: defaultFPSCameraFOV,
		near:        defaultFPSCameraNear,
		far:         defaultFPSCameraFar,
		aspectRatio: 1,
		Speed:       defaultFPSCameraSpeed,
		Sensitivity: defaultFPSCameraSensitivity,
	}
	camera.updateVectors()
	camera.updateProjection()
	return camera
}

func (camera *FPSCamera) Position() Vector3 {
	return camera.position
}

func (camera *FPSCamera) SetPosition(position Vector3) {
	camera.position = position
	camera.updateVectors()
}

// SetTarget is ignored; an FPSCamera always looks along its yaw and pitch.
func (camera *FPSCamera) SetTarget(target Vector3) {}

// Yaw returns the camera's yaw in degrees.
func (camera *FPSCamera) Yaw() float32 {
	return camera.yaw
}

// Pitch returns the camera's pitch in degrees.
func (camera *FPSCamera) Pitch() float32 {
	return camera.pitch
}

// SetYawPitch points the camera. Pitch is clamped to +/-89 degrees.
func (camera *FPSCamera) SetYawPitch(yaw, pitch float32) {
	camera.yaw = yaw
	camera.pitch = math32.Clamp(pitch, -fpsCameraPitchLimit, fpsCameraPitchLimit)
	camera.updateVectors()
}

// SetPerspective sets the vertical field of view (in degrees) and the near and far clipping planes.
func (camera *FPSCamera) SetPerspective(fieldOfView, near, far float32) {
	camera.fieldOfView = fieldOfView
	camera.near = near
	camera.far = far
	camera.updateProjection()
}

// Front returns the direction the camera looks in.
func (camera *FPSCamera) Front() Vector3 {
	return camera.front
}

// Right returns the camera's right direction.
func (camera *FPSCamera) Right() Vector3 {
	return camera.right
}

// Up returns the camera's local up direction.
func (camera *FPSCamera) Up() Vector3 {
	return camera.up
}

func (camera *FPSCamera) UpdateSize(size Vector2) {
	if size.Y == 0 {
		return
	}
	camera.aspectRatio = size.X / size.Y
	camera.updateProjection()
}

func (camera *FPSCamera) ViewMatrix() Matrix4 {
	return camera.view
}

func (camera *FPSCamera) ProjectionMatrix() Matrix4 {
	return camera.projection
}

// ProcessKeyboard moves or turns the camera. Movement covers Speed units per second; rotation turns 30 degrees per second.
func (camera *FPSCamera) ProcessKeyboard(direction CameraMovement, deltaTime float32) {

	var movement Vector3

	switch direction {
	case CameraForward, CameraBackward:
		horizontal := camera.front
		horizontal.Z = 0
		horizontal = horizontal.Unit()
		if direction == CameraForward {
			movement = horizontal
		} else {
			movement = horizontal.Invert()
		}
	case CameraLeft:
		movement = camera.right.Invert()
	case CameraRight:
		movement = camera.right
	case CameraUp:
		movement = WorldUp
	case CameraDown:
		movement = WorldUp.Invert()
	case CameraUpRotate:
		camera.SetYawPitch(camera.yaw, camera.pitch+fpsCameraRotateSpeed*deltaTime)
		return
	case CameraDownRotate:
		camera.SetYawPitch(camera.yaw, camera.pitch-fpsCameraRotateSpeed*deltaTime)
		return
	case CameraLeftRotate:
		camera.SetYawPitch(camera.yaw-fpsCameraRotateSpeed*deltaTime, camera.pitch)
		return
	case CameraRightRotate:
		camera.SetYawPitch(camera.yaw+fpsCameraRotateSpeed*deltaTime, camera.pitch)
		return
	}

	camera.SetPosition(camera.position.Add(movement.Scale(camera.Speed * deltaTime)))

}

// ProcessMouseMovement turns the camera by a cursor offset. Moving right turns right; moving up looks up.
func (camera *FPSCamera) ProcessMouseMovement(dx, dy float32) {
	camera.SetYawPitch(camera.yaw-dx*camera.Sensitivity, camera.pitch+dy*camera.Sensitivity)
}

func (camera *FPSCamera) updateVectors() {

	yaw := math32.ToRadians(camera.yaw)
	pitch := math32.ToRadians(camera.pitch)

	camera.front = Vector3{
		X: math32.Cos(yaw) * math32.Cos(pitch),
		Y: math32.Sin(yaw) * math32.Cos(pitch),
		Z: math32.Sin(pitch),
	}.Unit()
	camera.right = camera.front.Cross(WorldUp).Unit()
	camera.up = camera.right.Cross(camera.front).Unit()

	camera.view = NewLookAtMatrix(camera.position, camera.position.Add(camera.front), camera.up)

}

func (camera *FPSCamera) updateProjection() {
	camera.projection = NewProjectionPerspective(camera.fieldOfView, camera.near, camera.far, camera.aspectRatio, 1)
}
