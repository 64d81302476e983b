package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"phong-tracer/internal/geom"
	"phong-tracer/internal/mathutil"
	"phong-tracer/internal/raster"
	"phong-tracer/internal/scene"
	"phong-tracer/internal/shading"
)

// arity is the number of args each transform op takes. scale also accepts a
// single uniform factor.
var arity = map[string]int{
	"translate": 3,
	"scale":     3,
	"rotate_x":  1,
	"rotate_y":  1,
	"rotate_z":  1,
	"shear":     6,
}

// Validate reports every problem with a resolved config at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.Supersample < 1 {
		errs = append(errs, fmt.Errorf("supersample must be at least 1, got %d", c.Supersample))
	}
	if _, err := raster.ParseFormat(c.Format); err != nil {
		errs = append(errs, err)
	}
	if fov := c.Camera.FieldOfView; fov <= 0 || fov >= math.Pi {
		errs = append(errs, fmt.Errorf("camera field_of_view must be in (0, pi) radians, got %g", fov))
	}
	if len(c.Objects) == 0 {
		errs = append(errs, errors.New("scene has no objects"))
	}
	for i, o := range c.Objects {
		for j, step := range o.Transform {
			if err := step.validate(); err != nil {
				errs = append(errs, fmt.Errorf("object %d (%s) step %d: %w", i, o.Name, j, err))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %s: %w", c.Name, errors.Join(errs...))
	}
	return nil
}

func (s TransformStep) validate() error {
	n, ok := arity[s.Op]
	if !ok {
		return fmt.Errorf("unknown op %q", s.Op)
	}
	if s.Op == "scale" && len(s.Args) == 1 {
		return nil
	}
	if len(s.Args) != n {
		return fmt.Errorf("%s takes %d args, got %d", s.Op, n, len(s.Args))
	}
	return nil
}

func (s TransformStep) matrix() mathutil.Matrix {
	a := s.Args
	switch s.Op {
	case "translate":
		return mathutil.Translation(a[0], a[1], a[2])
	case "scale":
		if len(a) == 1 {
			return mathutil.Scaling(a[0], a[0], a[0])
		}
		return mathutil.Scaling(a[0], a[1], a[2])
	case "rotate_x":
		return mathutil.RotationX(a[0])
	case "rotate_y":
		return mathutil.RotationY(a[0])
	case "rotate_z":
		return mathutil.RotationZ(a[0])
	case "shear":
		return mathutil.Shearing(a[0], a[1], a[2], a[3], a[4], a[5])
	}
	return mathutil.Identity4()
}

// ObjectTransform composes the object's steps in listed order.
func (o ObjectConfig) ObjectTransform() mathutil.Matrix {
	ms := make([]mathutil.Matrix, len(o.Transform))
	for i, step := range o.Transform {
		ms[i] = step.matrix()
	}
	return mathutil.Chain(ms...)
}

func (m MaterialConfig) material() shading.Material {
	mat := shading.DefaultMaterial()
	if m.Color != nil {
		mat.Color = shading.RGB(m.Color[0], m.Color[1], m.Color[2])
	}
	if m.Ambient != nil {
		mat.Ambient = *m.Ambient
	}
	if m.Diffuse != nil {
		mat.Diffuse = *m.Diffuse
	}
	if m.Specular != nil {
		mat.Specular = *m.Specular
	}
	if m.Shininess != nil {
		mat.Shininess = *m.Shininess
	}
	return mat
}

func point(v Vec3) mathutil.Tuple  { return mathutil.Point(v[0], v[1], v[2]) }
func vector(v Vec3) mathutil.Tuple { return mathutil.Vector(v[0], v[1], v[2]) }

// Build validates the config and constructs the world and a camera sized
// for Width×Height times Supersample. The returned values are never
// mutated afterwards and are safe to trace concurrently.
func (c *Config) Build() (*scene.World, *scene.Camera, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}

	spheres := make([]geom.Sphere, len(c.Objects))
	for i, o := range c.Objects {
		s := geom.NewSphere()
		s.Name = o.Name
		if s.Name == "" {
			s.Name = fmt.Sprintf("object-%d", i)
		}
		s.Material = o.Material.material()
		if err := s.SetTransform(o.ObjectTransform()); err != nil {
			return nil, nil, fmt.Errorf("config: %s: %w", c.Name, err)
		}
		spheres[i] = s
	}

	light := shading.NewPointLight(point(c.Light.Position), shading.RGB(c.Light.Intensity[0], c.Light.Intensity[1], c.Light.Intensity[2]))
	world := scene.NewWorld(light, spheres...)

	cam := scene.NewCamera(c.Width*c.Supersample, c.Height*c.Supersample, c.Camera.FieldOfView)
	view := mathutil.ViewTransform(point(c.Camera.From), point(c.Camera.To), vector(c.Camera.Up))
	if err := cam.SetTransform(view); err != nil {
		return nil, nil, fmt.Errorf("config: %s: camera from %v to %v up %v: %w", c.Name, c.Camera.From, c.Camera.To, c.Camera.Up, err)
	}

	log.Debug().
		Str("scene", c.Name).
		Int("objects", len(spheres)).
		Int("width", cam.HSize).
		Int("height", cam.VSize).
		Msg("scene built")

	return world, cam, nil
}
