package ecs

// Removable is implemented by all component stores so the World can drop an
// entity's data from every store when it is purged.
type Removable interface {
	Remove(id EntityID)
}

// PtrComponentStore is a generic typed map store for one component kind.
// Presence in the store is what "has this component" means.
type PtrComponentStore[T any] struct {
	data map[EntityID]*T
}

func NewPtrComponentStore[T any]() *PtrComponentStore[T] {
	return &PtrComponentStore[T]{
		data: make(map[EntityID]*T, 256),
	}
}

// Add stores a copy of c fully initialised and returns a pointer to it.
// Adding twice replaces the previous value.
func (s *PtrComponentStore[T]) Add(id EntityID, c T) *T {
	p := &c
	s.data[id] = p
	return p
}

func (s *PtrComponentStore[T]) Get(id EntityID) (*T, bool) {
	c, ok := s.data[id]
	return c, ok
}

func (s *PtrComponentStore[T]) Remove(id EntityID) {
	delete(s.data, id)
}

func (s *PtrComponentStore[T]) Has(id EntityID) bool {
	_, ok := s.data[id]
	return ok
}

func (s *PtrComponentStore[T]) Len() int {
	return len(s.data)
}
