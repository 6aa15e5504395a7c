package bind_group_provider

// BufferWrite is one queued write into a provider's buffer at a binding and byte offset.
type BufferWrite struct {
	Provider BindGroupProvider
	Binding  int
	Offset   uint64
	Data     []byte
}
