package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 100, 50)
	assert.Equal(t, 110.0, r.Right())
	assert.Equal(t, 70.0, r.Bottom())
	assert.Equal(t, NewPoint2D(60, 45), r.Center())
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	assert.True(t, r.Contains(NewPoint2D(5, 5)))
	assert.True(t, r.Contains(NewPoint2D(10, 10)))
	assert.False(t, r.Contains(NewPoint2D(10.1, 5)))
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 100, 60).Inset(10)
	assert.Equal(t, NewRect(10, 10, 80, 40), r)

	grown := NewRect(0, 0, 100, 60).Inset(-5)
	assert.Equal(t, NewRect(-5, -5, 110, 70), grown)
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	assert.True(t, a.Intersects(NewRect(5, 5, 10, 10)))
	assert.False(t, a.Intersects(NewRect(20, 20, 5, 5)))
	// Touching edges do not intersect.
	assert.False(t, a.Intersects(NewRect(10, 0, 5, 10)))
}

func TestBoundingBox(t *testing.T) {
	box := BoundingBox([]Rect{
		NewRect(0, -30, 100, 10),
		NewRect(50, 0, 100, 200),
	})
	assert.Equal(t, NewRect(0, -30, 150, 230), box)

	assert.Equal(t, Rect{}, BoundingBox(nil))
}

func TestPointArithmetic(t *testing.T) {
	p := NewPoint2D(3, 4)
	assert.Equal(t, 5.0, p.Distance(NewPoint2D(0, 0)))
	assert.Equal(t, NewPoint2D(4, 6), p.Add(NewPoint2D(1, 2)))
	assert.Equal(t, NewPoint2D(6, 8), p.Scale(2))
}
