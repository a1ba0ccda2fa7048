// Copyright © 2024 Galvanized Logic Inc.

package collider2d_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gazed/collider2d"
	"github.com/gazed/collider2d/collidertest"
	"github.com/gazed/collider2d/geom"
)

// body is the test suite's HbProfile: identity by id, universally
// interactive unless excluded explicitly.
type body struct {
	id      collider2d.HbId
	exclude map[collider2d.HbId]bool
}

func newBody(id collider2d.HbId) *body { return &body{id: id} }

func (b *body) ID() collider2d.HbId { return b.id }
func (b *body) CanInteract(other collider2d.HbProfile) bool {
	return !b.exclude[other.ID()]
}

func sq(side float64) geom.Shape { return geom.NewSquare(geom.NewScalar(side)) }
func circ(d float64) geom.Shape  { return geom.NewCircle(geom.NewScalar(d)) }

func vec(x, y float64) geom.Vec2 { return geom.V2(geom.NewScalar(x), geom.NewScalar(y)) }

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := collider2d.New(0, 0)
	assert.ErrorIs(t, err, collider2d.ErrInvalidConfig)

	_, err = collider2d.New(1, -1)
	assert.ErrorIs(t, err, collider2d.ErrInvalidConfig)

	_, err = collider2d.New(1, 0)
	assert.ErrorIs(t, err, collider2d.ErrInvalidConfig)

	_, err = collider2d.New(1, 0.1)
	assert.NoError(t, err)
}

func TestAddHitboxDuplicateId(t *testing.T) {
	e, err := collider2d.New(10, 0.1)
	require.NoError(t, err)

	hb := collider2d.Hitbox{Value: geom.NewPlacedShape(vec(0, 0), sq(1)), EndTime: geom.Inf}
	_, err = e.AddHitbox(newBody(1), hb)
	require.NoError(t, err)

	_, err = e.AddHitbox(newBody(1), hb)
	assert.ErrorIs(t, err, collider2d.ErrDuplicateHitbox)
}

func TestUnknownHitboxErrors(t *testing.T) {
	e, err := collider2d.New(10, 0.1)
	require.NoError(t, err)

	_, err = e.GetHitbox(99)
	assert.ErrorIs(t, err, collider2d.ErrUnknownHitbox)

	_, err = e.RemoveHitbox(99)
	assert.ErrorIs(t, err, collider2d.ErrUnknownHitbox)

	err = e.SetHitboxVel(99, geom.Vel{})
	assert.ErrorIs(t, err, collider2d.ErrUnknownHitbox)

	_, err = e.IsOverlapping(1, 2)
	assert.ErrorIs(t, err, collider2d.ErrUnknownHitbox)
}

func TestSetTimeRegressionRejected(t *testing.T) {
	e, err := collider2d.New(10, 0.1)
	require.NoError(t, err)
	require.NoError(t, e.SetTime(5))
	assert.ErrorIs(t, e.SetTime(1), collider2d.ErrTimeRegression)
}

// Two rects, one closing on the other, collide; after the collision the
// mover is slowed down but keeps moving through, so they separate again.
func TestTwoRectsCollideThenSeparate(t *testing.T) {
	e, err := collider2d.New(10, 0.1)
	require.NoError(t, err)

	left := newBody(1)
	right := newBody(2)

	_, err = e.AddHitbox(left, collider2d.Hitbox{
		Value: geom.NewPlacedShape(vec(0, 0), sq(2)),
		Vel:   geom.Vel{Value: vec(1, 0)},
		EndTime: geom.Inf,
	})
	require.NoError(t, err)

	_, err = e.AddHitbox(right, collider2d.Hitbox{
		Value:   geom.NewPlacedShape(vec(10, 0), sq(2)),
		EndTime: geom.Inf,
	})
	require.NoError(t, err)

	ev, a, b, ok := e.Next()
	require.True(t, ok)
	assert.Equal(t, collider2d.EventCollide, ev)
	assert.ElementsMatch(t, []collider2d.HbId{1, 2}, []collider2d.HbId{a.ID(), b.ID()})
	assert.Equal(t, geom.Scalar(8), e.Time())

	overlapping, err := e.IsOverlapping(1, 2)
	require.NoError(t, err)
	assert.True(t, overlapping)

	// Halve velocity on collide: the pair now separates more slowly but
	// still eventually separates since left keeps moving right.
	require.NoError(t, e.SetHitboxVel(1, geom.Vel{Value: vec(0.5, 0)}))

	ev, _, _, ok = e.Next()
	require.True(t, ok)
	assert.Equal(t, collider2d.EventSeparate, ev)
}

func TestRemoveHitboxReturnsFreedOverlaps(t *testing.T) {
	e, err := collider2d.New(10, 0.1)
	require.NoError(t, err)

	a := newBody(1)
	b := newBody(2)
	_, err = e.AddHitbox(a, collider2d.Hitbox{Value: geom.NewPlacedShape(vec(0, 0), sq(2)), EndTime: geom.Inf})
	require.NoError(t, err)
	overlaps, err := e.AddHitbox(b, collider2d.Hitbox{Value: geom.NewPlacedShape(vec(1, 0), sq(2)), EndTime: geom.Inf})
	require.NoError(t, err)
	require.Len(t, overlaps, 1)

	freed, err := e.RemoveHitbox(1)
	require.NoError(t, err)
	require.Len(t, freed, 1)
	assert.Equal(t, collider2d.HbId(2), freed[0].ID())

	_, err = e.GetHitbox(1)
	assert.ErrorIs(t, err, collider2d.ErrUnknownHitbox)
}

func TestQueryOverlaps(t *testing.T) {
	e, err := collider2d.New(10, 0.1)
	require.NoError(t, err)

	a := newBody(1)
	_, err = e.AddHitbox(a, collider2d.Hitbox{Value: geom.NewPlacedShape(vec(0, 0), sq(2)), EndTime: geom.Inf})
	require.NoError(t, err)

	probe := geom.NewPlacedShape(vec(0.5, 0), sq(1))
	found := e.QueryOverlaps(probe, newBody(2))
	require.Len(t, found, 1)
	assert.Equal(t, collider2d.HbId(1), found[0].ID())
}

func TestCanInteractExcludesPair(t *testing.T) {
	e, err := collider2d.New(10, 0.1)
	require.NoError(t, err)

	a := newBody(1)
	b := newBody(2)
	a.exclude = map[collider2d.HbId]bool{2: true}

	_, err = e.AddHitbox(a, collider2d.Hitbox{Value: geom.NewPlacedShape(vec(0, 0), sq(2)), EndTime: geom.Inf})
	require.NoError(t, err)
	overlaps, err := e.AddHitbox(b, collider2d.Hitbox{Value: geom.NewPlacedShape(vec(1, 0), sq(2)), EndTime: geom.Inf})
	require.NoError(t, err)
	assert.Empty(t, overlaps, "Expected CanInteract()==false to suppress the overlap report")
}

// S5: a stationary circle, a far-off moving rect closing on the probe
// spot, and a moving circle that never comes near it. Before advancing,
// the probe sees only the stationary circle; after advancing to t=3 it
// also sees the now-arrived rect, but never the unrelated moving circle.
func TestQueryOverlapsAfterAdvance(t *testing.T) {
	e, err := collider2d.New(10, 0.1)
	require.NoError(t, err)

	still := newBody(1)
	_, err = e.AddHitbox(still, collider2d.Hitbox{
		Value: geom.NewPlacedShape(vec(-1, 0), circ(2)), EndTime: geom.Inf,
	})
	require.NoError(t, err)

	movingRect := newBody(2)
	_, err = e.AddHitbox(movingRect, collider2d.Hitbox{
		Value: geom.NewPlacedShape(vec(19, 0.5), sq(2)),
		Vel:   geom.Vel{Value: vec(-6, 0)}, EndTime: geom.Inf,
	})
	require.NoError(t, err)

	movingCircle := newBody(3)
	_, err = e.AddHitbox(movingCircle, collider2d.Hitbox{
		Value: geom.NewPlacedShape(vec(30, 30), circ(2)),
		Vel:   geom.Vel{Value: vec(1, 1)}, EndTime: geom.Inf,
	})
	require.NoError(t, err)

	probe := geom.NewPlacedShape(vec(-1, 0.5), circ(4))

	before := e.QueryOverlaps(probe, newBody(99))
	require.Len(t, before, 1)
	assert.Equal(t, collider2d.HbId(1), before[0].ID())

	require.NoError(t, e.SetTime(3))

	after := e.QueryOverlaps(probe, newBody(99))
	ids := make([]collider2d.HbId, len(after))
	for i, p := range after {
		ids[i] = p.ID()
	}
	assert.ElementsMatch(t, []collider2d.HbId{1, 2}, ids)
}

func TestCollidertestAdvanceHelpers(t *testing.T) {
	e, err := collider2d.New(10, 0.1)
	require.NoError(t, err)

	a := newBody(1)
	b := newBody(2)
	_, err = e.AddHitbox(a, collider2d.Hitbox{
		Value: geom.NewPlacedShape(vec(0, 0), sq(2)),
		Vel:   geom.Vel{Value: vec(1, 0)}, EndTime: geom.Inf,
	})
	require.NoError(t, err)
	_, err = e.AddHitbox(b, collider2d.Hitbox{Value: geom.NewPlacedShape(vec(10, 0), sq(2)), EndTime: geom.Inf})
	require.NoError(t, err)

	occ := collidertest.AdvanceToEvent(e, collider2d.EventCollide, 1, 2)
	assert.Equal(t, collider2d.EventCollide, occ.Event)
	assert.Equal(t, geom.Scalar(8), e.Time())
}
