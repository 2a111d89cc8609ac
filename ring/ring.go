// Package ring implements the fixed-capacity queue that carries decoded
// commands from an interrupt handler to the main loop.
//
// A Buffer has exactly one producer and one consumer. Push never blocks and
// never fails, so it is safe to call from interrupt context; when the
// consumer falls behind, the configured Policy decides which value is lost.
// head belongs to the producer and tail to the consumer, except that a
// drop-oldest push moves tail forward to evict. Both indices are atomics so
// the buffer stays correct on targets where the two sides really run in
// parallel.
package ring

import "sync/atomic"

const (
	SizeBits = 7
	// Size is the number of slots. It must be a power of two.
	Size = 1 << SizeBits
	// Capacity is the number of values the buffer can hold. One slot is
	// always free since head == tail means empty.
	Capacity = Size - 1

	mask = Size - 1
)

// Policy selects what a push into a full buffer discards.
type Policy uint8

const (
	// DropOldest overwrites the oldest unread value. Newest data wins.
	DropOldest Policy = iota
	// DropNewest discards the value being pushed.
	DropNewest
)

func (p Policy) String() string {
	switch p {
	case DropOldest:
		return "drop_oldest"
	case DropNewest:
		return "drop_newest"
	}
	return "unknown"
}

// Buffer is a single-producer single-consumer ring of T. The zero value is
// an empty DropOldest buffer.
type Buffer[T any] struct {
	head    atomic.Uint32 // next slot to write
	tail    atomic.Uint32 // next slot to read
	dropped atomic.Uint32
	policy  Policy
	slots   [Size]T
}

// Init empties the buffer and sets its overflow policy. It must not be
// called while either side is using the buffer.
func (b *Buffer[T]) Init(policy Policy) {
	b.head.Store(0)
	b.tail.Store(0)
	b.dropped.Store(0)
	b.policy = policy
}

// Push appends v. It reports false if v itself was discarded, which only
// happens under DropNewest.
func (b *Buffer[T]) Push(v T) bool {
	h := b.head.Load()
	next := (h + 1) & mask
	if next == b.tail.Load() {
		if b.policy == DropNewest {
			b.dropped.Add(1)
			return false
		}
		// Evict before writing so the consumer never reads slot h while
		// it is being overwritten. The CAS loses only if the consumer
		// popped in the meantime, in which case there is room already.
		if b.tail.CompareAndSwap(next, (next+1)&mask) {
			b.dropped.Add(1)
		}
	}
	b.slots[h] = v
	b.head.Store(next)
	return true
}

// Pop removes and returns the oldest value.
//
// The caller must check Available first. Popping an empty buffer returns a
// stale slot and corrupts the indices; it is not checked.
func (b *Buffer[T]) Pop() T {
	for {
		t := b.tail.Load()
		v := b.slots[t]
		if b.tail.CompareAndSwap(t, (t+1)&mask) {
			return v
		}
		// the producer evicted t under us; read the new oldest
	}
}

// TryPop is Pop with the emptiness check folded in.
func (b *Buffer[T]) TryPop() (v T, ok bool) {
	for {
		t := b.tail.Load()
		if t == b.head.Load() {
			return v, false
		}
		v = b.slots[t]
		if b.tail.CompareAndSwap(t, (t+1)&mask) {
			return v, true
		}
	}
}

// Available reports whether there is at least one value to pop.
func (b *Buffer[T]) Available() bool {
	return b.head.Load() != b.tail.Load()
}

// Len returns the number of buffered values.
func (b *Buffer[T]) Len() int {
	return int((b.head.Load() - b.tail.Load()) & mask)
}

// Dropped returns how many values have been discarded on overflow since Init.
func (b *Buffer[T]) Dropped() uint32 {
	return b.dropped.Load()
}

func (b *Buffer[T]) Policy() Policy {
	return b.policy
}
