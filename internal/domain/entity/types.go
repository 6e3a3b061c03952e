package entity

import "math"

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint32

// Vector2 is a point or direction in world space.
type Vector2 struct {
	X, Y float64
}

// Vec is shorthand for Vector2{x, y}.
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }

func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }

func (v Vector2) Scale(k float64) Vector2 { return Vector2{v.X * k, v.Y * k} }

// Len returns the Euclidean length of v.
func (v Vector2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are zero.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns v scaled to unit length, or the zero vector.
func (v Vector2) Normalize() Vector2 {
	l := v.Len()
	if l == 0 {
		return Vector2{}
	}
	return Vector2{v.X / l, v.Y / l}
}

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// RectAround returns a w×h box centered on c.
func RectAround(c Vector2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Center returns the center point of r.
func (r Rect) Center() Vector2 {
	return Vector2{r.X + r.W/2, r.Y + r.H/2}
}

// ObstacleKind separates plain walls from regions that hurt on contact.
type ObstacleKind int

const (
	ObstacleBlocking ObstacleKind = iota
	ObstacleHazardous
)

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleBlocking:
		return "blocking"
	case ObstacleHazardous:
		return "hazardous"
	default:
		return "unknown"
	}
}

// Obstacle is a static region produced by world generation.
// Obstacles are never mutated after generation.
type Obstacle struct {
	ID   EntityID
	Kind ObstacleKind
	Rect
}

// CollectibleKind identifies what a pickup grants.
type CollectibleKind int

const (
	KindRupee CollectibleKind = iota
	KindKey
)

func (k CollectibleKind) String() string {
	switch k {
	case KindRupee:
		return "rupee"
	case KindKey:
		return "key"
	default:
		return "unknown"
	}
}

// Collectible is a rupee or key lying in the world.
// Collected pickups stay in the store until their settle delay expires.
type Collectible struct {
	ID        EntityID
	Kind      CollectibleKind
	Pos       Vector2
	Collected bool
}
