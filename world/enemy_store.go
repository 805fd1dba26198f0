package world

import (
	"github.com/lixenwraith/deadwood/components"
)

// EnemyStore keeps enemies in spawn order with an id index
// Remove only tombstones; records are compacted by Sweep after the frame so
// iteration during a frame never observes a shifting slice
type EnemyStore struct {
	enemies []*components.Enemy
	index   map[components.EntityID]*components.Enemy
	nextID  components.EntityID
	dirty   bool
}

// NewEnemyStore creates an empty store
func NewEnemyStore() *EnemyStore {
	return &EnemyStore{
		enemies: make([]*components.Enemy, 0, 64),
		index:   make(map[components.EntityID]*components.Enemy),
		nextID:  components.FirstEnemyID,
	}
}

// NextID allocates a fresh enemy id
func (s *EnemyStore) NextID() components.EntityID {
	id := s.nextID
	s.nextID++
	return id
}

// Add inserts an enemy; its ID must come from NextID
func (s *EnemyStore) Add(e *components.Enemy) {
	s.enemies = append(s.enemies, e)
	s.index[e.ID] = e
}

// Get returns the enemy with the given id, including tombstoned records not yet swept
func (s *EnemyStore) Get(id components.EntityID) (*components.Enemy, bool) {
	e, ok := s.index[id]
	return e, ok
}

// Remove tombstones the enemy; returns false if unknown or already removed
func (s *EnemyStore) Remove(id components.EntityID) bool {
	e, ok := s.index[id]
	if !ok || e.Removed {
		return false
	}
	e.Removed = true
	e.Alive = false
	s.dirty = true
	return true
}

// Each visits non-removed enemies in spawn order
// The callback may tombstone or add enemies; additions are not visited this pass
func (s *EnemyStore) Each(fn func(e *components.Enemy)) {
	n := len(s.enemies)
	for i := 0; i < n; i++ {
		e := s.enemies[i]
		if e.Removed {
			continue
		}
		fn(e)
	}
}

// AliveCount returns the number of living enemies
func (s *EnemyStore) AliveCount() int {
	count := 0
	for _, e := range s.enemies {
		if e.Alive && !e.Removed {
			count++
		}
	}
	return count
}

// Len returns the number of records including dead-but-not-removed ones
func (s *EnemyStore) Len() int {
	count := 0
	for _, e := range s.enemies {
		if !e.Removed {
			count++
		}
	}
	return count
}

// Sweep compacts tombstoned records in place, preserving order
// Returns the number of records dropped
func (s *EnemyStore) Sweep() int {
	if !s.dirty {
		return 0
	}
	kept := s.enemies[:0]
	dropped := 0
	for _, e := range s.enemies {
		if e.Removed {
			delete(s.index, e.ID)
			dropped++
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(s.enemies); i++ {
		s.enemies[i] = nil
	}
	s.enemies = kept
	s.dirty = false
	return dropped
}
