package Trees

// Color of a red-black node.
type Color byte

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Node in the RBTree.
// Every tree owns a sentinel node, RBTree.Nil, used instead of nil for the
// children of leaves and the parent of the root. The sentinel is always
// Black and its data is the zero value of T.
type Node[T any] struct {
	data                T
	color               Color
	parent, left, right *Node[T]
}

func (n *Node[T]) Data() T {
	return n.data
}

func (n *Node[T]) Color() Color {
	return n.color
}

func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

func (n *Node[T]) Left() *Node[T] {
	return n.left
}

func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// LeftRotate makes x the left child of its right child y. y's left subtree
// becomes x's right subtree. The in-order sequence is unchanged.
// Nothing happens when x or its right child is the sentinel.
//
//	  x            y
//	 / \          / \
//	a   y   =>   x   c
//	   / \      / \
//	  b   c    a   b
//
// Time: O(1); Space: O(1)
func (u *RBTree[T]) LeftRotate(x *Node[T]) {
	if x == nil || x == u.nilPtr || x.right == u.nilPtr {
		return
	}
	y := x.right
	x.right = y.left
	if y.left != u.nilPtr {
		y.left.parent = x
	}
	u.replaceChild(x, y)
	y.left = x
	x.parent = y
}

// RightRotate is the mirror of LeftRotate: x becomes the right child of its
// left child.
// Time: O(1); Space: O(1)
func (u *RBTree[T]) RightRotate(x *Node[T]) {
	if x == nil || x == u.nilPtr || x.left == u.nilPtr {
		return
	}
	y := x.left
	x.left = y.right
	if y.right != u.nilPtr {
		y.right.parent = x
	}
	u.replaceChild(x, y)
	y.right = x
	x.parent = y
}

// replaceChild links v where old hangs from old's parent, or makes v the root.
// old's own links are left untouched.
func (u *RBTree[T]) replaceChild(old, v *Node[T]) {
	if old.parent == u.nilPtr {
		u.root = v
	} else if old == old.parent.left {
		old.parent.left = v
	} else {
		old.parent.right = v
	}
	v.parent = old.parent
}
