// Package config handles shape viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidShape is returned by Validate for a shape entry that cannot be built.
var ErrInvalidShape = errors.New("invalid shape")

// Shape kinds accepted in the scene section.
const (
	KindBox   = "box"
	KindTorus = "torus"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Shaders  ShaderConfig   `yaml:"shaders"`
	Scene    SceneConfig    `yaml:"scene"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width         int        `yaml:"width"`
	Height        int        `yaml:"height"`
	Fullscreen    bool       `yaml:"fullscreen"`
	VSync         bool       `yaml:"vsync"`
	TargetFPS     int        `yaml:"target_fps"` // 0 = unlimited
	ClearColor    [4]float32 `yaml:"clear_color"`
	CullBackFaces bool       `yaml:"cull_back_faces"`
}

// CameraConfig holds orbit camera settings. Angles are in degrees.
type CameraConfig struct {
	Distance    float32 `yaml:"distance"`
	Yaw         float32 `yaml:"yaw"`
	Pitch       float32 `yaml:"pitch"`
	MinDistance float32 `yaml:"min_distance"`
	MaxDistance float32 `yaml:"max_distance"`
	FOV         float32 `yaml:"fov"`
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
	Sensitivity float32 `yaml:"sensitivity"`
	ZoomStep    float32 `yaml:"zoom_step"`
	DragGain    float32 `yaml:"drag_gain"` // object rotation per camera-degree of drag
}

// ShaderConfig locates the GLSL sources. Dir empty means the executable
// directory, falling back to the working directory.
type ShaderConfig struct {
	Dir      string `yaml:"dir"`
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

// SceneConfig describes the initial scene.
type SceneConfig struct {
	LightPosition      [3]float32    `yaml:"light_position"`
	OrientedBoxPicking bool          `yaml:"oriented_box_picking"`
	Shapes             []ShapeConfig `yaml:"shapes"`
}

// ShapeConfig describes one entity. Size applies to boxes, Outer and Inner
// (radii) to tori. A nil Color keeps the kind's default.
type ShapeConfig struct {
	Kind          string      `yaml:"kind"`
	Name          string      `yaml:"name"`
	Position      [3]float32  `yaml:"position"`
	Size          float32     `yaml:"size,omitempty"`
	Outer         float32     `yaml:"outer,omitempty"`
	Inner         float32     `yaml:"inner,omitempty"`
	Color         *[3]float32 `yaml:"color,omitempty"`
	AutoRotate    bool        `yaml:"auto_rotate"`
	RotationSpeed float32     `yaml:"rotation_speed,omitempty"` // deg/s, 0 = default
}

// DebugConfig holds developer helpers.
type DebugConfig struct {
	ScreenshotDir    string `yaml:"screenshot_dir"`
	SelectionOutline bool   `yaml:"selection_outline"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config reproducing the stock scene.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:         800,
			Height:        450,
			Fullscreen:    false,
			VSync:         true,
			TargetFPS:     0,
			ClearColor:    [4]float32{0.1, 0.1, 0.15, 1.0},
			CullBackFaces: true,
		},
		Camera: CameraConfig{
			Distance:    5,
			Yaw:         45,
			Pitch:       30,
			MinDistance: 2,
			MaxDistance: 10,
			FOV:         45,
			Near:        0.1,
			Far:         100,
			Sensitivity: 0.2,
			ZoomStep:    0.5,
			DragGain:    2,
		},
		Shaders: ShaderConfig{
			Vertex:   "shaders/vertex.glsl",
			Fragment: "shaders/fragment.glsl",
		},
		Scene: SceneConfig{
			LightPosition: [3]float32{5, 5, 5},
			Shapes: []ShapeConfig{
				{Kind: KindBox, Name: "Voxel 1", Position: [3]float32{0, 0, 0}, Size: 1},
				{Kind: KindBox, Name: "Voxel 2", Position: [3]float32{2.5, 0, 0}, Size: 0.75},
				{Kind: KindBox, Name: "Voxel 3", Position: [3]float32{-2.5, 0, 0}, Size: 0.5},
				{Kind: KindTorus, Name: "Donut 1", Position: [3]float32{0, 2, 0}, Outer: 1, Inner: 0.4},
				{Kind: KindTorus, Name: "Donut 2", Position: [3]float32{0, -2, 0}, Outer: 0.8, Inner: 0.3},
			},
		},
		Debug: DebugConfig{
			ScreenshotDir:    "screenshots",
			SelectionOutline: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks values the viewer cannot start with.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Camera.MinDistance <= 0 || c.Camera.MaxDistance < c.Camera.MinDistance {
		return fmt.Errorf("camera: invalid distance range [%g, %g]", c.Camera.MinDistance, c.Camera.MaxDistance)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera: invalid clip range [%g, %g]", c.Camera.Near, c.Camera.Far)
	}
	for i, s := range c.Scene.Shapes {
		if err := s.validate(); err != nil {
			return fmt.Errorf("scene.shapes[%d] %q: %w", i, s.Name, err)
		}
	}
	return nil
}

func (s ShapeConfig) validate() error {
	switch s.Kind {
	case KindBox:
		if s.Size < 0 {
			return fmt.Errorf("%w: negative size %g", ErrInvalidShape, s.Size)
		}
	case KindTorus:
		if s.Inner <= 0 || s.Outer <= s.Inner {
			return fmt.Errorf("%w: need outer > inner > 0, got outer %g inner %g", ErrInvalidShape, s.Outer, s.Inner)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidShape, s.Kind)
	}
	return nil
}
