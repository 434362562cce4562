package acscontainer

// blockCount is the number of (offset, size) descriptors in the fixed
// container block table.
const blockCount = 4

// Block table indices, in file order.
const (
	blockHeader = iota
	blockGestureRefs
	blockImageRefs
	blockUnused
)

// blockDescriptor is one entry of the container's block table.
type blockDescriptor struct {
	Offset uint32
	Size   uint32
}
