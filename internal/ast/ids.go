package ast

import (
	"fmt"
	"sync/atomic"
)

// NodeID is the identity of a node or of a synthetic bracketing range (the
// span of a NodeList). Identities are unique for the life of the process and
// strictly increasing in allocation order.
type NodeID uint64

// NoNodeID is the null identity. The allocator never returns it.
const NoNodeID NodeID = 0

func (id NodeID) IsValid() bool { return id != NoNodeID }

func (id NodeID) String() string { return fmt.Sprintf("#%d", uint64(id)) }

var lastID atomic.Uint64

// NextID allocates a fresh identity. It is lock-free and safe for any number
// of concurrent callers. Exhausting the 64-bit counter is unrecoverable.
func NextID() NodeID {
	id := lastID.Add(1)
	if id == 0 {
		panic("ast: node identity counter overflow")
	}
	return NodeID(id)
}
