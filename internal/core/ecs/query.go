package ecs

// Each iterates ids in order and calls fn for those present in store a.
func Each[A any](ids []EntityID, sa *PtrComponentStore[A], fn func(EntityID, *A)) {
	for _, id := range ids {
		if a, ok := sa.data[id]; ok {
			fn(id, a)
		}
	}
}

// Each2 iterates ids in order and calls fn for those that have both A and B.
// Order follows ids, so callers keep the World's insertion order.
func Each2[A, B any](ids []EntityID, sa *PtrComponentStore[A], sb *PtrComponentStore[B], fn func(EntityID, *A, *B)) {
	for _, id := range ids {
		a, ok := sa.data[id]
		if !ok {
			continue
		}
		if b, ok := sb.data[id]; ok {
			fn(id, a, b)
		}
	}
}

// Each3 iterates ids in order for entities that have components A, B and C.
func Each3[A, B, C any](ids []EntityID, sa *PtrComponentStore[A], sb *PtrComponentStore[B], sc *PtrComponentStore[C], fn func(EntityID, *A, *B, *C)) {
	for _, id := range ids {
		a, ok := sa.data[id]
		if !ok {
			continue
		}
		b, ok := sb.data[id]
		if !ok {
			continue
		}
		if c, ok := sc.data[id]; ok {
			fn(id, a, b, c)
		}
	}
}
