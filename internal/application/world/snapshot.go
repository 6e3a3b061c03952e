package world

import "github.com/younwookim/arcade/internal/domain/entity"

// SpriteKind tells a renderer what to draw
type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpriteEnemy
	SpriteBlocking
	SpriteHazard
	SpriteRupee
	SpriteKey
)

// String returns the sprite kind name
func (k SpriteKind) String() string {
	switch k {
	case SpritePlayer:
		return "player"
	case SpriteEnemy:
		return "enemy"
	case SpriteBlocking:
		return "blocking"
	case SpriteHazard:
		return "hazard"
	case SpriteRupee:
		return "rupee"
	case SpriteKey:
		return "key"
	default:
		return "unknown"
	}
}

// Sprite is one positioned entity. X and Y are the top-left corner in map
// coordinates; W and H are its extent.
type Sprite struct {
	ID   entity.EntityID
	Kind SpriteKind
	X, Y float64
	W, H float64
}

// Snapshot lists every visible entity, obstacles first and the player last.
// Items waiting to settle after pickup are left out.
func (w *World) Snapshot() []Sprite {
	out := make([]Sprite, 0, len(w.Store.Obstacles)+len(w.Store.Collectibles)+len(w.Store.Enemies)+1)

	for _, o := range w.Store.Obstacles {
		kind := SpriteBlocking
		if o.Kind == entity.ObstacleHazardous {
			kind = SpriteHazard
		}
		out = append(out, rectSprite(o.ID, kind, o.Rect))
	}

	size := w.cfg.Collectibles.Size
	for _, c := range w.Store.Collectibles {
		if c.Collected {
			continue
		}
		kind := SpriteRupee
		if c.Kind == entity.KindKey {
			kind = SpriteKey
		}
		out = append(out, rectSprite(c.ID, kind, entity.RectAround(c.Pos, size, size)))
	}

	for _, e := range w.Store.Enemies {
		out = append(out, rectSprite(e.ID, SpriteEnemy, e.FootprintAt(e.Pos)))
	}

	out = append(out, rectSprite(w.Player.ID, SpritePlayer, w.Player.Footprint()))
	return out
}

func rectSprite(id entity.EntityID, kind SpriteKind, r entity.Rect) Sprite {
	return Sprite{ID: id, Kind: kind, X: r.X, Y: r.Y, W: r.W, H: r.H}
}
