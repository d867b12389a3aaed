package script

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/mathanim/geom"
	"github.com/matt-g-everett/mathanim/mobject"
)

// build creates the mobject described by spec, its children included, and
// registers every named node.
func (s *Script) build(spec MobjectSpec) (*mobject.Mobject, error) {
	m, err := s.shape(spec)
	if err != nil {
		return nil, s.named(spec, err)
	}
	for i, child := range spec.Children {
		c, err := s.build(child)
		if err != nil {
			return nil, s.named(spec, fmt.Errorf("children[%d]: %w", i, err))
		}
		if err := m.Add(c); err != nil {
			return nil, s.named(spec, err)
		}
	}
	if err := style(m, spec); err != nil {
		return nil, s.named(spec, err)
	}
	if spec.Position != nil {
		p, err := parsePoint(spec.Position)
		if err != nil {
			return nil, s.named(spec, err)
		}
		m.MoveTo(p)
	}
	if spec.Name != "" {
		if _, ok := s.byName[spec.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, spec.Name)
		}
		m.SetName(spec.Name)
		s.byName[spec.Name] = m
	}
	return m, nil
}

func (s *Script) named(spec MobjectSpec, err error) error {
	if spec.Name == "" {
		return err
	}
	return fmt.Errorf("mobject %q: %w", spec.Name, err)
}

func (s *Script) shape(spec MobjectSpec) (*mobject.Mobject, error) {
	p := spec.Params
	points, err := parsePoints(spec.Points)
	if err != nil {
		return nil, err
	}
	need := func(n int) error {
		if len(points) < n {
			return fmt.Errorf("%w: %s needs %d points, got %d", ErrInvalid, spec.Shape, n, len(points))
		}
		return nil
	}

	switch spec.Shape {
	case "group", "":
		return mobject.NewGroup(spec.Name)
	case "point":
		if err := need(1); err != nil {
			return nil, err
		}
		return mobject.Point(points[0]), nil
	case "dot":
		return mobject.Dot(geom.Origin, param(p, "radius", 0.08)), nil
	case "line":
		if err := need(2); err != nil {
			return nil, err
		}
		return mobject.Line(points[0], points[1]), nil
	case "polygon":
		if err := need(3); err != nil {
			return nil, err
		}
		return mobject.Polygon(points...), nil
	case "square":
		return mobject.Square(param(p, "side", 2)), nil
	case "rectangle":
		return mobject.Rectangle(param(p, "width", 4), param(p, "height", 2)), nil
	case "circle":
		return mobject.Circle(param(p, "radius", 1)), nil
	case "arc":
		return mobject.Arc(geom.Origin, param(p, "radius", 1), param(p, "start", 0), param(p, "angle", math.Pi/2)), nil
	case "cloud":
		return mobject.NewPointCloud(spec.Name, points), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownShape, spec.Shape)
}

func style(m *mobject.Mobject, spec MobjectSpec) error {
	if spec.Color != "" {
		c, err := parseColor(spec.Color)
		if err != nil {
			return err
		}
		m.SetColor(c)
	}
	if spec.StrokeWidth != nil {
		m.SetStroke(m.Style().StrokeColor, *spec.StrokeWidth)
	}
	if spec.Fill != "" || spec.FillOpacity != nil {
		c := m.Style().FillColor()
		if spec.Fill != "" {
			var err error
			if c, err = parseColor(spec.Fill); err != nil {
				return err
			}
		}
		opacity := 1.0
		if spec.FillOpacity != nil {
			opacity = *spec.FillOpacity
		}
		m.SetFill(c, opacity)
	}
	if len(spec.Gradient) > 0 {
		colors := make([]colorful.Color, len(spec.Gradient))
		for i, name := range spec.Gradient {
			c, err := parseColor(name)
			if err != nil {
				return err
			}
			colors[i] = c
		}
		m.SetColorByGradient(colors...)
	}
	if spec.Opacity != nil {
		m.SetOpacity(*spec.Opacity)
	}
	return nil
}
