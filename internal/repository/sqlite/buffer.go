package sqlite

// DefaultBufferSize is the initial capacity of a result buffer
const DefaultBufferSize = 1000

const bufferGrowthFactor = 2.5

// ResultBuffer accumulates query results and is reused across queries.
// When full it grows by bufferGrowthFactor rather than a fixed step.
type ResultBuffer[T any] struct {
	items []T
}

// NewResultBuffer creates a buffer with the given initial capacity
func NewResultBuffer[T any](capacity int) *ResultBuffer[T] {
	if capacity <= 0 {
		capacity = DefaultBufferSize
	}
	return &ResultBuffer[T]{items: make([]T, 0, capacity)}
}

// Reset empties the buffer and keeps its capacity
func (b *ResultBuffer[T]) Reset() {
	clear(b.items)
	b.items = b.items[:0]
}

// Append adds an item, growing the buffer first if it is full
func (b *ResultBuffer[T]) Append(item T) {
	if len(b.items) == cap(b.items) {
		b.grow()
	}
	b.items = append(b.items, item)
}

func (b *ResultBuffer[T]) grow() {
	newCap := int(float64(cap(b.items)) * bufferGrowthFactor)
	if newCap <= cap(b.items) {
		newCap = cap(b.items) + 1
	}
	grown := make([]T, len(b.items), newCap)
	copy(grown, b.items)
	b.items = grown
}

// Items returns the buffered results. The slice is only valid until the
// next Reset.
func (b *ResultBuffer[T]) Items() []T {
	return b.items
}

// Len returns the number of buffered results
func (b *ResultBuffer[T]) Len() int {
	return len(b.items)
}

// Cap returns the current capacity
func (b *ResultBuffer[T]) Cap() int {
	return cap(b.items)
}

// Release drops the backing storage
func (b *ResultBuffer[T]) Release() {
	b.items = nil
}
