// SPDX-License-Identifier: MIT
// File: arena.go
// Role: slot storage for vertices and edges.
//
// Slots are indexed by id. Removal leaves a hole whose index goes to a
// min-heap free list; the next insertion reuses the lowest hole, or appends
// when there is none. This keeps "first free slot" allocation in O(log F)
// instead of a linear scan.

package core

import "container/heap"

// freeList is a min-heap of reclaimed slot indices.
type freeList []int

func (f freeList) Len() int           { return len(f) }
func (f freeList) Less(i, j int) bool { return f[i] < f[j] }
func (f freeList) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }
func (f *freeList) Push(x any)        { *f = append(*f, x.(int)) }
func (f *freeList) Pop() any {
	old := *f
	n := len(old)
	x := old[n-1]
	*f = old[:n-1]
	return x
}

// arena stores *T values in id-indexed slots.
type arena[T any] struct {
	slots []*T
	free  freeList
	live  int
}

// insert allocates the lowest free slot and stores build(idx) there.
func (a *arena[T]) insert(build func(idx int) *T) int {
	var idx int
	if len(a.free) > 0 {
		idx = heap.Pop(&a.free).(int)
	} else {
		idx = len(a.slots)
		a.slots = append(a.slots, nil)
	}
	a.slots[idx] = build(idx)
	a.live++

	return idx
}

// get returns the value at idx, or nil for holes and out-of-range indices.
func (a *arena[T]) get(idx int) *T {
	if idx < 0 || idx >= len(a.slots) {
		return nil
	}
	return a.slots[idx]
}

// remove frees idx; removing a hole is a no-op.
func (a *arena[T]) remove(idx int) {
	if a.get(idx) == nil {
		return
	}
	a.slots[idx] = nil
	heap.Push(&a.free, idx)
	a.live--
}

// each visits live values in ascending index order.
func (a *arena[T]) each(fn func(idx int, v *T)) {
	for i, v := range a.slots {
		if v != nil {
			fn(i, v)
		}
	}
}

func (a *arena[T]) len() int { return a.live }
