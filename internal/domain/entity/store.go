package entity

// Store owns every obstacle, collectible and enemy in a world.
// Slices keep insertion order so updates are deterministic for a given seed.
type Store struct {
	nextID EntityID

	Obstacles    []Obstacle
	Collectibles []*Collectible
	Enemies      []*Enemy
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{nextID: 1} // 0 is "nil"
}

// NewID returns a new unique entity ID
func (s *Store) NewID() EntityID {
	id := s.nextID
	s.nextID++
	return id
}

// Clear drops every entity. IDs keep increasing so stale timers keyed by
// an old ID never match a new entity.
func (s *Store) Clear() {
	s.Obstacles = nil
	s.Collectibles = nil
	s.Enemies = nil
}

// AddEnemy appends e to the store
func (s *Store) AddEnemy(e *Enemy) {
	s.Enemies = append(s.Enemies, e)
}

// Enemy returns the enemy with the given id, or nil
func (s *Store) Enemy(id EntityID) *Enemy {
	for _, e := range s.Enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// RemoveEnemy deletes the enemy with the given id, keeping order.
func (s *Store) RemoveEnemy(id EntityID) bool {
	for i, e := range s.Enemies {
		if e.ID == id {
			s.Enemies = append(s.Enemies[:i], s.Enemies[i+1:]...)
			return true
		}
	}
	return false
}

// AddCollectible appends c to the store
func (s *Store) AddCollectible(c *Collectible) {
	s.Collectibles = append(s.Collectibles, c)
}

// Collectible returns the collectible with the given id, or nil
func (s *Store) Collectible(id EntityID) *Collectible {
	for _, c := range s.Collectibles {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// RemoveCollectible deletes the collectible with the given id, keeping order.
func (s *Store) RemoveCollectible(id EntityID) bool {
	for i, c := range s.Collectibles {
		if c.ID == id {
			s.Collectibles = append(s.Collectibles[:i], s.Collectibles[i+1:]...)
			return true
		}
	}
	return false
}

// CountCollectibles counts pickups of one kind that are still lying around
// (not yet collected).
func (s *Store) CountCollectibles(kind CollectibleKind) int {
	n := 0
	for _, c := range s.Collectibles {
		if c.Kind == kind && !c.Collected {
			n++
		}
	}
	return n
}
