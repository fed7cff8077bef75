package ecs

// World owns every entity record. New entities wait in a pending buffer and
// become part of the live sequence at the next Commit; destroyed entities
// keep their slot until that same Commit purges them. Systems may therefore
// create and destroy freely while ranging over All or ByTag.
//
// The tag index is updated eagerly on Create, so ByTag observes entities
// created earlier in the same tick while All does not.
type World struct {
	nextID   EntityID
	entities map[EntityID]*Entity

	live    []EntityID
	pending []EntityID
	byTag   [tagCount][]EntityID

	stores       []Removable
	destroyQueue []EntityID
}

func NewWorld() *World {
	return &World{
		entities:     make(map[EntityID]*Entity, 256),
		live:         make([]EntityID, 0, 256),
		pending:      make([]EntityID, 0, 256),
		stores:       make([]Removable, 0, 8),
		destroyQueue: make([]EntityID, 0, 64),
	}
}

// Register adds a component store that is cleared for every purged entity.
func (w *World) Register(store Removable) {
	w.stores = append(w.stores, store)
}

// Create allocates a new identity under tag and buffers it until Commit.
func (w *World) Create(tag Tag) *Entity {
	if !tag.Valid() {
		panic("ecs: create with invalid tag " + tag.String())
	}
	w.nextID++
	e := &Entity{id: w.nextID, tag: tag, alive: true}
	w.entities[e.id] = e
	w.pending = append(w.pending, e.id)
	w.byTag[tag] = append(w.byTag[tag], e.id)
	return e
}

// Get returns the record for id, dead or alive, until it is purged.
func (w *World) Get(id EntityID) (*Entity, bool) {
	e, ok := w.entities[id]
	return e, ok
}

// Alive reports whether id exists and has not been destroyed.
func (w *World) Alive(id EntityID) bool {
	e, ok := w.entities[id]
	return ok && e.alive
}

// Destroy flips the liveness flag. The entity is removed at the next Commit.
// Destroying a dead or unknown entity is a no-op.
func (w *World) Destroy(id EntityID) {
	e, ok := w.entities[id]
	if !ok || !e.alive {
		return
	}
	e.alive = false
	w.destroyQueue = append(w.destroyQueue, id)
}

// Commit moves pending entities into the live sequence, then purges every
// dead entity from the live sequence, the tag buckets and the component
// stores. It returns the number of purged entities.
func (w *World) Commit() int {
	w.live = append(w.live, w.pending...)
	w.pending = w.pending[:0]

	if len(w.destroyQueue) == 0 {
		return 0
	}
	w.live = w.compact(w.live)
	for i := range w.byTag {
		w.byTag[i] = w.compact(w.byTag[i])
	}
	for _, id := range w.destroyQueue {
		for _, s := range w.stores {
			s.Remove(id)
		}
		delete(w.entities, id)
	}
	n := len(w.destroyQueue)
	w.destroyQueue = w.destroyQueue[:0]
	return n
}

// compact removes dead ids in place, keeping order.
func (w *World) compact(ids []EntityID) []EntityID {
	out := ids[:0]
	for _, id := range ids {
		if w.entities[id].alive {
			out = append(out, id)
		}
	}
	clear(ids[len(out):])
	return out
}

// All returns the live sequence in insertion order. The slice is owned by
// the World and must not be modified.
func (w *World) All() []EntityID { return w.live }

// ByTag returns the ids under tag in insertion order, including entities
// created since the last Commit. The slice must not be modified.
func (w *World) ByTag(tag Tag) []EntityID {
	if !tag.Valid() {
		return nil
	}
	return w.byTag[tag]
}

// Len is the size of the live sequence.
func (w *World) Len() int { return len(w.live) }

// PendingLen is the number of entities waiting for the next Commit.
func (w *World) PendingLen() int { return len(w.pending) }
