package GeneralTree

// Id identifies a Node within one GeneralTree. The empty Id means "none": a
// Node with an empty ParentId sits at the root level of the forest.
type Id = string

// Node of a GeneralTree. The caller's payload is Data; the other exported
// fields are the structure and may be filled by the caller before Insert or
// before handing a forest to New.
// After a walk, every child's ParentId and Parent agree with the Node whose
// Children holds it. Direct edits of Children are allowed but aren't seen by
// the tree until the next walk (see GeneralTree.MarkDirty).
type Node[T any] struct {
	Id       Id
	ParentId Id
	Children []*Node[T]
	Data     T
	parent   *Node[T]
}

// Parent is nil for root level nodes.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Depth of n, 1 for root level nodes.
// Time: O(depth)
func (n *Node[T]) Depth() int {
	d := 0
	for ; n != nil; n = n.parent {
		d++
	}
	return d
}

// isAncestorOf reports whether d is a strict descendant of n, following the
// parent links of d.
func (n *Node[T]) isAncestorOf(d *Node[T]) bool {
	for p := d.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// Record is a Node without its links: Flatten produces Records, Expand
// consumes them.
type Record[T any] struct {
	Id       Id
	ParentId Id
	Data     T
}

func (n *Node[T]) record() Record[T] {
	return Record[T]{n.Id, n.ParentId, n.Data}
}
