package primitive_batch

// DefaultCapacity is the number of vertices a batch holds before it flushes.
const DefaultCapacity = 15360

// PrimitiveBatchBuilderOption is a functional option applied to a batch during construction.
type PrimitiveBatchBuilderOption func(*primitiveBatch)

// WithCapacity sets how many vertices the batch holds before it flushes. Values below 6 are raised
// to 6 so a quad always fits.
//
// Parameters:
//   - capacity: the vertex capacity
//
// Returns:
//   - PrimitiveBatchBuilderOption: a function that applies the capacity option to a batch
func WithCapacity(capacity int) PrimitiveBatchBuilderOption {
	return func(b *primitiveBatch) {
		b.capacity = max(capacity, 6)
	}
}
