package series

// Buffer is a fixed-capacity rolling window of samples backed by a ring.
// It is not safe for concurrent use.
type Buffer struct {
	data []float64
	head int // index of the oldest sample, also the next write position
}

// New creates a zero-filled buffer. Negative capacities are treated as 0.
func New(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{data: make([]float64, capacity)}
}

// Cap returns the number of samples held.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Push drops the oldest sample and appends sample as the newest.
// It is a no-op on a zero-capacity buffer.
func (b *Buffer) Push(sample float64) {
	if len(b.data) == 0 {
		return
	}
	b.data[b.head] = sample
	b.head = (b.head + 1) % len(b.data)
}

// At returns the sample at logical index i, 0 being the oldest and Cap()-1
// the newest. It returns 0 when i is outside [0, Cap()), including for a
// zero-capacity buffer.
func (b *Buffer) At(i int) float64 {
	if i < 0 || i >= len(b.data) {
		return 0
	}
	return b.data[(b.head+i)%len(b.data)]
}

// Last returns the newest sample, or 0 for an empty buffer.
func (b *Buffer) Last() float64 {
	if len(b.data) == 0 {
		return 0
	}
	return b.At(len(b.data) - 1)
}

// Values returns a copy of the samples in chronological order (oldest first).
func (b *Buffer) Values() []float64 {
	out := make([]float64, 0, len(b.data))
	out = append(out, b.data[b.head:]...)
	return append(out, b.data[:b.head]...)
}

// Resize changes the capacity while keeping the most recent samples
// right-aligned. Growing zero-fills the new leading slots, shrinking discards
// the oldest excess. Resizing to the current capacity does nothing.
func (b *Buffer) Resize(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	if capacity == len(b.data) {
		return
	}

	old := b.Values()
	data := make([]float64, capacity)
	for i, j := capacity-1, len(old)-1; i >= 0 && j >= 0; i, j = i-1, j-1 {
		data[i] = old[j]
	}

	b.data = data
	b.head = 0
}
