package wlw

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the settings a wlw program starts from: the first window, its camera, input tuning, which backend
// draws it and where snapshots go.
type Config struct {
	Window   WindowConfig   `toml:"window" yaml:"window"`
	Camera   CameraConfig   `toml:"camera" yaml:"camera"`
	Input    InputConfig    `toml:"input" yaml:"input"`
	Backend  string         `toml:"backend" yaml:"backend"` // "ebiten" or "soft"
	Snapshot SnapshotConfig `toml:"snapshot" yaml:"snapshot"`
}

type WindowConfig struct {
	Width      int        `toml:"width" yaml:"width"`
	Height     int        `toml:"height" yaml:"height"`
	Title      string     `toml:"title" yaml:"title"`
	ClearColor [4]float32 `toml:"clear_color" yaml:"clear_color"`
}

type CameraConfig struct {
	Position    [3]float32 `toml:"position" yaml:"position"`
	Yaw         float32    `toml:"yaw" yaml:"yaw"`
	Pitch       float32    `toml:"pitch" yaml:"pitch"`
	FieldOfView float32    `toml:"fov" yaml:"fov"`
	Near        float32    `toml:"near" yaml:"near"`
	Far         float32    `toml:"far" yaml:"far"`
	Speed       float32    `toml:"speed" yaml:"speed"`
	Sensitivity float32    `toml:"sensitivity" yaml:"sensitivity"`
}

type InputConfig struct {
	Step        float32 `toml:"step" yaml:"step"`
	SpeedFactor float32 `toml:"speed_factor" yaml:"speed_factor"`
}

type SnapshotConfig struct {
	Output string `toml:"output" yaml:"output"`
	Format string `toml:"format" yaml:"format"` // "webp" or "png"
}

const (
	BackendEbiten = "ebiten"
	BackendSoft   = "soft"
)

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Title:      "wlw",
			ClearColor: [4]float32{0.1, 0.1, 0.15, 1},
		},
		Camera: CameraConfig{
			Position:    [3]float32{0.56, 12.16, 2.2},
			Yaw:         defaultFPSCameraYaw,
			FieldOfView: defaultFPSCameraFOV,
			Near:        defaultFPSCameraNear,
			Far:         defaultFPSCameraFar,
			Speed:       defaultFPSCameraSpeed,
			Sensitivity: defaultFPSCameraSensitivity,
		},
		Input: InputConfig{
			Step:        defaultInputStep,
			SpeedFactor: defaultInputSpeedFactor,
		},
		Backend: BackendEbiten,
		Snapshot: SnapshotConfig{
			Output: "snapshot.webp",
			Format: "webp",
		},
	}
}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) config file. Settings missing from the file keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("wlw: read config %s: %w", path, err)
	}

	cfg := DefaultConfig()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("wlw: config %s: %w: %q", path, ErrUnsupportedFormat, ext)
	}

	if err != nil {
		return Config{}, fmt.Errorf("wlw: parse config %s: %w", path, err)
	}

	return cfg, nil

}

// ConfigFlags holds command line values that override config file settings. Zero values leave the setting alone.
type ConfigFlags struct {
	Width   int
	Height  int
	Backend string
	Output  string
}

// Resolve applies flags over the config and fills anything still unset with its default.
func (cfg *Config) Resolve(flags ConfigFlags) {

	if flags.Width > 0 {
		cfg.Window.Width = flags.Width
	}
	if flags.Height > 0 {
		cfg.Window.Height = flags.Height
	}
	if flags.Backend != "" {
		cfg.Backend = flags.Backend
	}
	if flags.Output != "" {
		cfg.Snapshot.Output = flags.Output
	}

	def := DefaultConfig()

	if cfg.Window.Width <= 0 {
		cfg.Window.Width = def.Window.Width
	}
	if cfg.Window.Height <= 0 {
		cfg.Window.Height = def.Window.Height
	}
	if cfg.Camera.FieldOfView <= 0 {
		cfg.Camera.FieldOfView = def.Camera.FieldOfView
	}
	if cfg.Camera.Near <= 0 {
		cfg.Camera.Near = def.Camera.Near
	}
	if cfg.Camera.Far <= cfg.Camera.Near {
		cfg.Camera.Far = max(def.Camera.Far, cfg.Camera.Near*2)
	}
	if cfg.Input.Step <= 0 {
		cfg.Input.Step = def.Input.Step
	}
	if cfg.Input.SpeedFactor <= 0 {
		cfg.Input.SpeedFactor = def.Input.SpeedFactor
	}
	if cfg.Backend == "" {
		cfg.Backend = def.Backend
	}

	// An explicit output path decides the snapshot format.
	switch strings.ToLower(filepath.Ext(cfg.Snapshot.Output)) {
	case ".png":
		cfg.Snapshot.Format = "png"
	case ".webp":
		cfg.Snapshot.Format = "webp"
	}
	if cfg.Snapshot.Format == "" {
		cfg.Snapshot.Format = def.Snapshot.Format
	}

}

// NewCamera returns an FPSCamera set up from the camera settings.
func (cfg Config) NewCamera() *FPSCamera {
	c := cfg.Camera
	camera := NewFPSCamera()
	camera.SetPosition(Vector3{c.Position[0], c.Position[1], c.Position[2]})
	camera.SetYawPitch(c.Yaw, c.Pitch)
	camera.SetPerspective(c.FieldOfView, c.Near, c.Far)
	if c.Speed > 0 {
		camera.Speed = c.Speed
	}
	if c.Sensitivity > 0 {
		camera.Sensitivity = c.Sensitivity
	}
	return camera
}

// NewWindow returns a Window set up from the window settings, viewed through camera.
func (cfg Config) NewWindow(camera Camera) *Window {
	w := cfg.Window
	window := NewWindow(Vector2{float32(w.Width), float32(w.Height)}, w.Title, camera)
	if window != nil {
		window.ClearColor = NewColor(w.ClearColor[0], w.ClearColor[1], w.ClearColor[2], w.ClearColor[3])
	}
	return window
}

// NewInputController returns an InputController tuned by the input settings.
func (cfg Config) NewInputController() *InputController {
	controller := NewInputController()
	controller.Step = cfg.Input.Step
	controller.SpeedFactor = cfg.Input.SpeedFactor
	return controller
}
