// Copyright © 2024 Galvanized Logic Inc.

// Package scenario loads a YAML description of an engine configuration
// and a starting set of hitboxes, and drains the resulting event trace.
// It supplements the engine's own doc-comment worked example
// (original_source/src/lib.rs) as a runnable, data-driven artifact used
// by both cmd/collider-demo and the scenario-driven end-to-end tests.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gazed/collider2d"
	"github.com/gazed/collider2d/geom"
)

// ShapeSpec is the YAML representation of a geom.Shape: exactly one of W/H
// (a rectangle) or D (a circle) must be set.
type ShapeSpec struct {
	W *float64 `yaml:"w,omitempty"`
	H *float64 `yaml:"h,omitempty"`
	D *float64 `yaml:"d,omitempty"`
}

func (s ShapeSpec) build() (geom.Shape, error) {
	switch {
	case s.D != nil && s.W == nil && s.H == nil:
		return geom.NewCircle(geom.NewScalar(*s.D)), nil
	case s.D == nil && s.W != nil && s.H != nil:
		return geom.NewRect(geom.NewScalar(*s.W), geom.NewScalar(*s.H)), nil
	default:
		return nil, fmt.Errorf("scenario: shape must set exactly d, or both w and h")
	}
}

// Vec2Spec is the YAML representation of a geom.Vec2.
type Vec2Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v Vec2Spec) build() geom.Vec2 {
	return geom.V2(geom.NewScalar(v.X), geom.NewScalar(v.Y))
}

// HitboxSpec is one named entry in a Scenario's hitbox list.
type HitboxSpec struct {
	Name    string    `yaml:"name"`
	Shape   ShapeSpec `yaml:"shape"`
	Pos     Vec2Spec  `yaml:"pos"`
	Vel     *Vec2Spec `yaml:"vel,omitempty"`
	Resize  *Vec2Spec `yaml:"resize,omitempty"`
	EndTime *float64  `yaml:"end_time,omitempty"`
}

// Scenario is a complete, YAML-decodable engine configuration: the grid
// parameters, every starting hitbox, and an optional cap on the number of
// occurrences Run will drain.
type Scenario struct {
	CellWidth float64      `yaml:"cell_width"`
	Padding   float64      `yaml:"padding"`
	Hitboxes  []HitboxSpec `yaml:"hitboxes"`
	StepLimit int          `yaml:"step_limit,omitempty"`
}

// Load reads and parses a Scenario from a YAML file at path.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("scenario: %w", err)
	}
	return s, nil
}

// Occurrence is one recorded step of Run's trace.
type Occurrence struct {
	Time  geom.Scalar
	Event collider2d.Event
	A, B  string
}

// profile is the scenario package's own HbProfile: identity by position
// in the hitbox list (the name is carried only for the trace), and
// universal interactivity (scenarios have no interactivity policy of
// their own to express in YAML).
type profile struct {
	id   collider2d.HbId
	name string
}

func (p *profile) ID() collider2d.HbId                    { return p.id }
func (p *profile) CanInteract(collider2d.HbProfile) bool { return true }

// Run builds an Engine from s and drains its event stream (or the first
// s.StepLimit occurrences, if positive), returning the trace.
func Run(s Scenario) ([]Occurrence, error) {
	e, err := collider2d.New(geom.NewScalar(s.CellWidth), geom.NewScalar(s.Padding))
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}

	names := make(map[collider2d.HbId]string, len(s.Hitboxes))
	for i, hs := range s.Hitboxes {
		shape, err := hs.Shape.build()
		if err != nil {
			return nil, fmt.Errorf("scenario: hitbox %q: %w", hs.Name, err)
		}
		var vel geom.Vel
		if hs.Vel != nil {
			vel.Value = hs.Vel.build()
		}
		if hs.Resize != nil {
			vel.Resize = hs.Resize.build()
		}
		endTime := geom.Inf
		if hs.EndTime != nil {
			endTime = geom.NewScalar(*hs.EndTime)
		}
		id := collider2d.HbId(i + 1)
		names[id] = hs.Name
		p := &profile{id: id, name: hs.Name}
		hb := collider2d.Hitbox{
			Value:   geom.NewPlacedShape(hs.Pos.build(), shape),
			Vel:     vel,
			EndTime: endTime,
		}
		if _, err := e.AddHitbox(p, hb); err != nil {
			return nil, fmt.Errorf("scenario: adding hitbox %q: %w", hs.Name, err)
		}
	}

	var trace []Occurrence
	for s.StepLimit <= 0 || len(trace) < s.StepLimit {
		ev, a, b, ok := e.Next()
		if !ok {
			break
		}
		trace = append(trace, Occurrence{Time: e.Time(), Event: ev, A: aName(names, a), B: aName(names, b)})
	}
	return trace, nil
}

func aName(names map[collider2d.HbId]string, p collider2d.HbProfile) string {
	return names[p.ID()]
}
