// Package viewer holds the windowing-free logic of the shape viewer: it
// builds the scene from configuration and turns pointer input into camera
// moves, picks and object rotations.
package viewer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/shapelab/internal/config"
	"github.com/Faultbox/shapelab/internal/engine/camera"
	"github.com/Faultbox/shapelab/internal/logger"
	"github.com/Faultbox/shapelab/internal/shape"
	"github.com/Faultbox/shapelab/pkg/math"
	"github.com/Faultbox/shapelab/pkg/mesh"
)

// BuildScene creates every configured shape. On error the shapes created so
// far are destroyed.
func BuildScene(cfg config.SceneConfig, env shape.Env) (*shape.Scene, error) {
	scene := shape.NewScene()
	scene.SetOrientedPicking(cfg.OrientedBoxPicking)

	for i, sc := range cfg.Shapes {
		s, err := buildShape(sc, env)
		if err != nil {
			scene.Destroy()
			return nil, fmt.Errorf("shape %d %q: %w", i, sc.Name, err)
		}
		switch v := s.(type) {
		case *shape.Box:
			scene.AddBox(v)
		case *shape.Torus:
			scene.AddTorus(v)
		}
	}

	logger.Info("scene built",
		zap.Int("shapes", scene.Len()),
		zap.Bool("oriented_box_picking", cfg.OrientedBoxPicking))
	return scene, nil
}

func buildShape(sc config.ShapeConfig, env shape.Env) (shape.Shape, error) {
	pos := math.Vec3FromArray(sc.Position)

	var s shape.Shape
	switch sc.Kind {
	case config.KindBox:
		b, err := shape.NewBox(sc.Name, pos, sc.Size, env)
		if err != nil {
			return nil, err
		}
		s = b
	case config.KindTorus:
		t, err := shape.NewTorus(sc.Name, pos, sc.Outer, sc.Inner, env)
		if err != nil {
			return nil, err
		}
		s = t
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", config.ErrInvalidShape, sc.Kind)
	}

	if sc.Color != nil {
		s.SetColor(mesh.ColorFromArray(*sc.Color))
	}
	s.SetAutoRotate(sc.AutoRotate)
	if sc.RotationSpeed > 0 {
		s.SetRotationSpeed(sc.RotationSpeed)
	}
	return s, nil
}

// CameraConfig converts the camera section into orbit camera settings.
func CameraConfig(cfg config.CameraConfig) camera.Config {
	return camera.Config{
		Distance:    cfg.Distance,
		Yaw:         cfg.Yaw,
		Pitch:       cfg.Pitch,
		MinDistance: cfg.MinDistance,
		MaxDistance: cfg.MaxDistance,
		FOV:         cfg.FOV,
		Near:        cfg.Near,
		Far:         cfg.Far,
		Sensitivity: cfg.Sensitivity,
		ZoomStep:    cfg.ZoomStep,
	}
}

// Snapshot writes the live camera and shape state back into cfg so it can
// be saved. Shape order follows the scene: boxes first, then tori.
func Snapshot(cfg *config.Config, cam *camera.OrbitCamera, scene *shape.Scene) {
	cfg.Camera.Distance = cam.Distance
	cfg.Camera.Yaw = cam.Yaw
	cfg.Camera.Pitch = cam.Pitch
	cfg.Camera.Sensitivity = cam.Sensitivity

	shapes := make([]config.ShapeConfig, 0, scene.Len())
	for _, s := range scene.Shapes() {
		color := s.Color().Array()
		sc := config.ShapeConfig{
			Name:          s.Name(),
			Position:      s.Position().Array(),
			Color:         &color,
			AutoRotate:    s.AutoRotate(),
			RotationSpeed: s.RotationSpeed(),
		}
		switch v := s.(type) {
		case *shape.Box:
			sc.Kind = config.KindBox
			sc.Size = v.Size()
		case *shape.Torus:
			sc.Kind = config.KindTorus
			sc.Outer = v.OuterRadius()
			sc.Inner = v.InnerRadius()
		}
		shapes = append(shapes, sc)
	}
	cfg.Scene.Shapes = shapes
}
