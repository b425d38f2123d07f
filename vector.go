// Package vec provides a contiguous growable array: a generic vector that
// owns its backing buffer and tracks the live length separately from the
// allocated capacity, growing by 1.5x as elements are appended.
package vec

// DefaultCapacity is the number of slots allocated by New.
const DefaultCapacity = 10

// Vector is a contiguous, index-addressable sequence of T. The backing array
// always spans the full capacity; length counts the leading slots that hold
// live elements. Not safe for concurrent use.
type Vector[T any] struct {
	data   []T
	length int
}

// New returns an empty vector with DefaultCapacity slots allocated.
func New[T any]() *Vector[T] {
	return NewWithCapacity[T](DefaultCapacity)
}

// NewWithCapacity returns an empty vector with exactly capacity slots
// allocated. Zero is valid; the first Append grows the buffer. Negative
// values are treated as zero.
func NewWithCapacity[T any](capacity int) *Vector[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Vector[T]{data: make([]T, capacity)}
}

// Clone returns an independent copy of v: a fresh buffer sized to v's
// capacity with all live elements copied in. Mutating either vector never
// affects the other.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{
		data:   make([]T, len(v.data)),
		length: v.length,
	}
	copy(c.data, v.data[:v.length])
	return c
}

// Move transfers ownership of v's buffer to the returned vector without
// copying. Afterward v is empty with zero capacity and can no longer reach
// the transferred elements.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{data: v.data, length: v.length}
	v.data = nil
	v.length = 0
	return m
}

// Append stores value after the last live element, growing the buffer first
// when it is full. Amortized O(1).
func (v *Vector[T]) Append(value T) {
	if v.length == len(v.data) {
		v.grow(v.length + 1)
	}
	v.data[v.length] = value
	v.length++
}

// Pop removes and returns the last element. It returns ErrEmpty when the
// vector holds no elements, leaving it unchanged.
func (v *Vector[T]) Pop() (T, error) {
	var zero T
	if v.length == 0 {
		return zero, ErrEmpty
	}
	v.length--
	value := v.data[v.length]
	// Drop the container's copy so the caller owns the only live value.
	v.data[v.length] = zero
	return value, nil
}

// Clear discards all elements without releasing the buffer. O(1): capacity
// is unchanged and vacated slots keep their stale values.
func (v *Vector[T]) Clear() {
	v.length = 0
}

// Reserve grows the buffer to exactly targetCapacity slots, preserving all
// live elements in order. It is a no-op when targetCapacity does not exceed
// the current capacity.
func (v *Vector[T]) Reserve(targetCapacity int) {
	if targetCapacity <= len(v.data) {
		return
	}
	v.realloc(targetCapacity)
}

// Get returns the element at index i. Indexes outside [0, Len()) are
// rejected with an IndexError wrapping ErrIndexOutOfRange; dead slots
// between length and capacity are never reachable.
func (v *Vector[T]) Get(i int) (T, error) {
	if i < 0 || i >= v.length {
		var zero T
		return zero, &IndexError{Index: i, Len: v.length}
	}
	return v.data[i], nil
}

// Set overwrites the element at index i, with the same bound as Get.
func (v *Vector[T]) Set(i int, value T) error {
	if i < 0 || i >= v.length {
		return &IndexError{Index: i, Len: v.length}
	}
	v.data[i] = value
	return nil
}

// At returns a pointer to slot i with no length validation. It is the escape
// hatch for callers that have already checked their own bounds; any growth
// of the buffer invalidates the pointer. Behavior for i at or beyond the
// capacity is unspecified.
func (v *Vector[T]) At(i int) *T {
	return &v.data[i]
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.length }

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool { return v.length == 0 }

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int { return len(v.data) }

// grow extends the buffer to hold at least required elements, overshooting
// to 1.5x the current capacity so a run of appends costs amortized O(1).
func (v *Vector[T]) grow(required int) {
	newCap := len(v.data) + len(v.data)/2
	if newCap < required {
		newCap = required
	}
	v.realloc(newCap)
}

// realloc copies the live elements in order into a fresh buffer of newCap
// slots, then swaps it in. The old buffer stays intact until the copy has
// completed.
func (v *Vector[T]) realloc(newCap int) {
	holder := make([]T, newCap)
	copy(holder, v.data[:v.length])
	v.data = holder
}
