// Package script loads scenes described in YAML: the mobjects to build and
// the timeline of animations to play on them.
package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/mathanim/animation"
	"github.com/matt-g-everett/mathanim/geom"
	"github.com/matt-g-everett/mathanim/internal/logging"
	"github.com/matt-g-everett/mathanim/mobject"
	"github.com/matt-g-everett/mathanim/scene"
)

var (
	ErrUnknownShape   = errors.New("unknown shape")
	ErrUnknownKind    = errors.New("unknown animation")
	ErrUnknownMobject = errors.New("unknown mobject")
	ErrDuplicateName  = errors.New("duplicate mobject name")
	ErrInvalid        = errors.New("invalid entry")
)

// Document is the YAML layout of a script.
type Document struct {
	Mobjects []MobjectSpec `yaml:"mobjects"`
	Timeline []Step        `yaml:"timeline"`
}

// MobjectSpec describes one mobject and its children.
type MobjectSpec struct {
	Name        string             `yaml:"name"`
	Shape       string             `yaml:"shape"`
	Params      map[string]float64 `yaml:"params"`
	Points      [][]float64        `yaml:"points"`
	Color       string             `yaml:"color"`
	Fill        string             `yaml:"fill"`
	FillOpacity *float64           `yaml:"fill_opacity"`
	StrokeWidth *float64           `yaml:"stroke_width"`
	Opacity     *float64           `yaml:"opacity"`
	Gradient    []string           `yaml:"gradient"`
	Position    []float64          `yaml:"position"`
	Children    []MobjectSpec      `yaml:"children"`
}

// Step is one timeline entry: either an animation to play or a wait.
type Step struct {
	Play     string             `yaml:"play"`
	Wait     *float64           `yaml:"wait"`
	Until    string             `yaml:"until"`
	Target   string             `yaml:"target"`
	To       string             `yaml:"to"`
	Each     string             `yaml:"each"`
	Vector   []float64          `yaml:"vector"`
	Color    string             `yaml:"color"`
	Params   map[string]float64 `yaml:"params"`
	RunTime  *float64           `yaml:"run_time"`
	RateFunc string             `yaml:"rate_func"`
	LagRatio *float64           `yaml:"lag_ratio"`
	Steps    []Step             `yaml:"steps"`
}

// Script is a loaded document with its mobjects built.
type Script struct {
	doc    Document
	roots  []*mobject.Mobject
	byName map[string]*mobject.Mobject
}

// Load decodes a script, builds its mobjects and checks the timeline.
// Unknown keys are rejected.
func Load(r io.Reader) (*Script, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty script")
		}
		return nil, err
	}
	return New(doc)
}

// New builds the mobjects of doc and checks its timeline.
func New(doc Document) (*Script, error) {
	s := &Script{doc: doc, byName: make(map[string]*mobject.Mobject)}
	for i, spec := range doc.Mobjects {
		m, err := s.build(spec)
		if err != nil {
			return nil, fmt.Errorf("mobjects[%d]: %w", i, err)
		}
		s.roots = append(s.roots, m)
	}
	if _, err := s.Animations(nil); err != nil {
		return nil, err
	}
	return s, nil
}

// Mobject returns the mobject built under name.
func (s *Script) Mobject(name string) (*mobject.Mobject, bool) {
	m, ok := s.byName[name]
	return m, ok
}

// Mobjects returns the top level mobjects in document order.
func (s *Script) Mobjects() []*mobject.Mobject {
	return append([]*mobject.Mobject(nil), s.roots...)
}

// Animations turns the timeline into fresh animations. Waits marked
// "until: skip" end early once skip reports true; skip may be nil.
func (s *Script) Animations(skip func() bool) ([]animation.Animation, error) {
	anims := make([]animation.Animation, 0, len(s.doc.Timeline))
	for i, step := range s.doc.Timeline {
		a, err := s.animation(step, skip)
		if err != nil {
			return nil, fmt.Errorf("timeline[%d]: %w", i, err)
		}
		anims = append(anims, a)
	}
	return anims, nil
}

// Run plays the timeline on sc, one entry after the other.
func (s *Script) Run(ctx context.Context, sc *scene.Scene, skip func() bool) error {
	anims, err := s.Animations(skip)
	if err != nil {
		return err
	}
	log := logging.Logger()
	for i, a := range anims {
		log.Debug("timeline step", "index", i, "animation", a.Name())
		if err := sc.Play(ctx, a); err != nil {
			return fmt.Errorf("timeline[%d]: %w", i, err)
		}
	}
	return nil
}

var namedColors = map[string]colorful.Color{
	"white":  mobject.White,
	"black":  mobject.Black,
	"red":    mobject.Red,
	"green":  mobject.Green,
	"blue":   mobject.Blue,
	"yellow": mobject.Yellow,
	"gold":   mobject.Gold,
	"purple": mobject.Purple,
	"grey":   mobject.Grey,
	"gray":   mobject.Grey,
}

// parseColor accepts a colour name or a hex string.
func parseColor(s string) (colorful.Color, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: colour %q", ErrInvalid, s)
	}
	return c, nil
}

func parsePoint(v []float64) (geom.Point, error) {
	switch len(v) {
	case 2:
		return geom.Pt(v[0], v[1], 0), nil
	case 3:
		return geom.Pt(v[0], v[1], v[2]), nil
	}
	return geom.Point{}, fmt.Errorf("%w: point %v needs 2 or 3 coordinates", ErrInvalid, v)
}

func parsePoints(vs [][]float64) ([]geom.Point, error) {
	points := make([]geom.Point, len(vs))
	for i, v := range vs {
		p, err := parsePoint(v)
		if err != nil {
			return nil, err
		}
		points[i] = p
	}
	return points, nil
}

func param(params map[string]float64, name string, def float64) float64 {
	if v, ok := params[name]; ok {
		return v
	}
	return def
}
