package Trees

import (
	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/g-m-twostay/go-collections/Queues"

	"golang.org/x/exp/constraints"
)

// RBTree is a red-black binary search tree with no repeated values. Values
// are ordered by the comparator given at construction; two values comparing
// to 0 are the same element.
// The minimum and maximum nodes are cached, so First and Last are O(1).
// The tree notifies EventInsert after a new element is stored and
// EventRemove after an element is removed; listeners run synchronously and
// see the tree in its new state.
// The height of the tree is at most 2*log2(n+1).
type RBTree[T any] struct {
	Go_Collections.Emitter[T]
	root, nilPtr *Node[T] //root is nilPtr when the tree is empty.
	first, last  *Node[T]
	sz           int
	cmp          Go_Collections.Comparator[T]
}

// NewRBTree ordered by the natural ordering of T, and inserts vs.
func NewRBTree[T constraints.Ordered](vs ...T) *RBTree[T] {
	return NewRBTreeWith[T](Go_Collections.Default[T], vs...)
}

// NewRBTreeWith uses cmp to order the elements, and inserts vs.
// cmp must be a total order; it panics if cmp is nil.
func NewRBTreeWith[T any](cmp Go_Collections.Comparator[T], vs ...T) *RBTree[T] {
	if cmp == nil {
		panic("Trees: nil comparator")
	}
	z := &Node[T]{color: Black}
	z.parent, z.left, z.right = z, z, z
	u := &RBTree[T]{root: z, nilPtr: z, first: z, last: z, cmp: cmp}
	for _, v := range vs {
		u.Insert(v)
	}
	return u
}

// Nil is the sentinel node of u.
func (u *RBTree[T]) Nil() *Node[T] {
	return u.nilPtr
}

// Root node, Nil when the tree is empty.
func (u *RBTree[T]) Root() *Node[T] {
	return u.root
}

// Len [Tree.Len]
// Time: O(1); Space: O(1)
func (u *RBTree[T]) Len() int {
	return u.sz
}

func (u *RBTree[T]) Empty() bool {
	return u.sz == 0
}

// First [Tree.First]
// Time: O(1); Space: O(1)
func (u *RBTree[T]) First() (T, bool) {
	return u.first.data, u.sz > 0
}

// Last [Tree.Last]
// Time: O(1); Space: O(1)
func (u *RBTree[T]) Last() (T, bool) {
	return u.last.data, u.sz > 0
}

// Clear the tree. Removed nodes aren't reused.
func (u *RBTree[T]) Clear() {
	u.root, u.first, u.last = u.nilPtr, u.nilPtr, u.nilPtr
	u.nilPtr.parent = u.nilPtr
	u.sz = 0
}

// Insert [Tree.Insert]
// A duplicate doesn't modify the tree and emits nothing.
// Time: O(log n)
func (u *RBTree[T]) Insert(v T) bool {
	if Go_Collections.IsNil(v) {
		return false
	}
	y, c := u.nilPtr, 0
	for x := u.root; x != u.nilPtr; {
		y = x
		if c = u.cmp(v, x.data); c < 0 {
			x = x.left
		} else if c > 0 {
			x = x.right
		} else {
			return false
		}
	}
	z := &Node[T]{v, Red, y, u.nilPtr, u.nilPtr}
	if y == u.nilPtr {
		u.root = z
	} else if c < 0 {
		y.left = z
	} else {
		y.right = z
	}

	if u.sz == 0 {
		u.first, u.last = z, z
	} else if u.cmp(v, u.first.data) < 0 {
		u.first = z
	} else if u.cmp(v, u.last.data) > 0 {
		u.last = z
	}
	u.sz++

	u.insertFixUp(z)
	u.Emit(Go_Collections.EventInsert, v)
	return true
}

// insertFixUp restores the red-black properties after z was linked as a red
// leaf, recoloring upwards while the uncle is red and rotating once or twice
// otherwise.
func (u *RBTree[T]) insertFixUp(z *Node[T]) {
	for z != u.root && z.parent.color == Red {
		gp := z.parent.parent
		if z.parent == gp.left {
			if y := gp.right; y.color == Red {
				z.parent.color, y.color, gp.color = Black, Black, Red
				z = gp
			} else {
				if z == z.parent.right {
					z = z.parent
					u.LeftRotate(z)
				}
				z.parent.color = Black
				z.parent.parent.color = Red
				u.RightRotate(z.parent.parent)
			}
		} else {
			if y := gp.left; y.color == Red {
				z.parent.color, y.color, gp.color = Black, Black, Red
				z = gp
			} else {
				if z == z.parent.left {
					z = z.parent
					u.RightRotate(z)
				}
				z.parent.color = Black
				z.parent.parent.color = Red
				u.LeftRotate(z.parent.parent)
			}
		}
	}
	u.root.color = Black
}

// Remove [Tree.Remove]
// A node with two children is replaced by its successor, which has at most
// one child.
// Time: O(log n)
func (u *RBTree[T]) Remove(v T) (T, bool) {
	z := u.FindNode(v)
	if z == u.nilPtr {
		return *new(T), false
	}
	var x *Node[T]
	y, yColor := z, z.color
	if z.left == u.nilPtr {
		x = z.right
		u.replaceChild(z, z.right)
	} else if z.right == u.nilPtr {
		x = z.left
		u.replaceChild(z, z.left)
	} else {
		y = u.MinNode(z.right)
		yColor = y.color
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			u.replaceChild(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		u.replaceChild(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}
	if yColor == Black {
		u.removeFixUp(x)
	}

	if u.sz--; u.sz == 0 {
		u.Clear()
	} else if u.cmp(z.data, u.first.data) == 0 {
		u.first = u.MinNode(u.root)
	} else if u.cmp(z.data, u.last.data) == 0 {
		u.last = u.MaxNode(u.root)
	}
	z.parent, z.left, z.right = nil, nil, nil

	u.Emit(Go_Collections.EventRemove, z.data)
	return z.data, true
}

// removeFixUp pushes the extra black carried by x up the tree, or absorbs it
// by recoloring and rotating around x's sibling w.
func (u *RBTree[T]) removeFixUp(x *Node[T]) {
	for x != u.root && x.color == Black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == Red {
				w.color, x.parent.color = Black, Red
				u.LeftRotate(x.parent)
				w = x.parent.right
			}
			if w.left.color == Black && w.right.color == Black {
				w.color = Red
				x = x.parent
			} else {
				if w.right.color == Black {
					w.left.color, w.color = Black, Red
					u.RightRotate(w)
					w = x.parent.right
				}
				w.color = x.parent.color
				x.parent.color, w.right.color = Black, Black
				u.LeftRotate(x.parent)
				x = u.root
			}
		} else {
			w := x.parent.left
			if w.color == Red {
				w.color, x.parent.color = Black, Red
				u.RightRotate(x.parent)
				w = x.parent.left
			}
			if w.left.color == Black && w.right.color == Black {
				w.color = Red
				x = x.parent
			} else {
				if w.left.color == Black {
					w.right.color, w.color = Black, Red
					u.LeftRotate(w)
					w = x.parent.left
				}
				w.color = x.parent.color
				x.parent.color, w.left.color = Black, Black
				u.RightRotate(x.parent)
				x = u.root
			}
		}
	}
	x.color = Black
}

// RemoveFirst removes the minimum element.
func (u *RBTree[T]) RemoveFirst() (T, bool) {
	if u.sz == 0 {
		return *new(T), false
	}
	return u.Remove(u.first.data)
}

// RemoveLast removes the maximum element.
func (u *RBTree[T]) RemoveLast() (T, bool) {
	if u.sz == 0 {
		return *new(T), false
	}
	return u.Remove(u.last.data)
}

// FindNode holding the element equal to v, or Nil if there is none.
// Time: O(log n); Space: O(1)
func (u *RBTree[T]) FindNode(v T) *Node[T] {
	if u.sz == 0 || Go_Collections.IsNil(v) {
		return u.nilPtr
	}
	if u.cmp(v, u.first.data) == 0 {
		return u.first
	} else if u.cmp(v, u.last.data) == 0 {
		return u.last
	}
	x := u.root
	for x != u.nilPtr {
		if c := u.cmp(v, x.data); c < 0 {
			x = x.left
		} else if c > 0 {
			x = x.right
		} else {
			break
		}
	}
	return x
}

// Contains [Tree.Contains]
// Time: O(log n); Space: O(1)
func (u *RBTree[T]) Contains(v T) bool {
	return u.FindNode(v) != u.nilPtr
}

// Find [Tree.Find]
// Time: O(log n); Space: O(1)
func (u *RBTree[T]) Find(key T) (T, bool) {
	n := u.FindNode(key)
	return n.data, n != u.nilPtr
}

// MinNode is the leftmost node of the subtree rooted at n, Nil if the subtree
// is empty or n is nil.
// Time: O(log n); Space: O(1)
func (u *RBTree[T]) MinNode(n *Node[T]) *Node[T] {
	if n == nil || n == u.nilPtr {
		return u.nilPtr
	}
	for n.left != u.nilPtr {
		n = n.left
	}
	return n
}

// MaxNode is the rightmost node of the subtree rooted at n, Nil if the subtree
// is empty or n is nil.
// Time: O(log n); Space: O(1)
func (u *RBTree[T]) MaxNode(n *Node[T]) *Node[T] {
	if n == nil || n == u.nilPtr {
		return u.nilPtr
	}
	for n.right != u.nilPtr {
		n = n.right
	}
	return n
}

// SuccessorNode is the node holding the smallest element greater than n's,
// Nil if n holds the maximum.
// Time: O(log n); Space: O(1)
func (u *RBTree[T]) SuccessorNode(n *Node[T]) *Node[T] {
	if n == nil || n == u.nilPtr {
		return u.nilPtr
	}
	if n.right != u.nilPtr {
		return u.MinNode(n.right)
	}
	y := n.parent
	for y != u.nilPtr && n == y.right {
		n, y = y, y.parent
	}
	return y
}

// PredecessorNode is the mirror of SuccessorNode.
// Time: O(log n); Space: O(1)
func (u *RBTree[T]) PredecessorNode(n *Node[T]) *Node[T] {
	if n == nil || n == u.nilPtr {
		return u.nilPtr
	}
	if n.left != u.nilPtr {
		return u.MaxNode(n.left)
	}
	y := n.parent
	for y != u.nilPtr && n == y.left {
		n, y = y, y.parent
	}
	return y
}

// Height [Tree.Height]. Recursive.
// An empty tree and a single node both have height 0.
// Time: O(n)
func (u *RBTree[T]) Height() int {
	return max(u.height(u.root), 0)
}

func (u *RBTree[T]) height(n *Node[T]) int {
	if n == u.nilPtr {
		return -1
	}
	return max(u.height(n.left), u.height(n.right)) + 1
}

// InOrder returns the elements in ascending order in a new slice. Recursive.
// Time: O(n)
func (u *RBTree[T]) InOrder() []T {
	out := make([]T, 0, u.sz)
	var walk func(*Node[T])
	walk = func(n *Node[T]) {
		if n != u.nilPtr {
			walk(n.left)
			out = append(out, n.data)
			walk(n.right)
		}
	}
	walk(u.root)
	return out
}

// PreOrder returns the elements, each node before its subtrees. Recursive.
// Time: O(n)
func (u *RBTree[T]) PreOrder() []T {
	out := make([]T, 0, u.sz)
	var walk func(*Node[T])
	walk = func(n *Node[T]) {
		if n != u.nilPtr {
			out = append(out, n.data)
			walk(n.left)
			walk(n.right)
		}
	}
	walk(u.root)
	return out
}

// PostOrder returns the elements, each node after its subtrees. Recursive.
// Time: O(n)
func (u *RBTree[T]) PostOrder() []T {
	out := make([]T, 0, u.sz)
	var walk func(*Node[T])
	walk = func(n *Node[T]) {
		if n != u.nilPtr {
			walk(n.left)
			walk(n.right)
			out = append(out, n.data)
		}
	}
	walk(u.root)
	return out
}

// breadth calls f on every node of the subtree rooted at start level by
// level, left to right, until f returns false.
func (u *RBTree[T]) breadth(start *Node[T], f func(*Node[T]) bool) {
	if start == nil || start == u.nilPtr {
		return
	}
	q := Queues.MakeArrayQueue[*Node[T]](16)
	for q.Push(start); !q.Empty(); {
		n, _ := q.Pop()
		if !f(n) {
			q.Clear()
			return
		}
		if n.left != u.nilPtr {
			q.Push(n.left)
		}
		if n.right != u.nilPtr {
			q.Push(n.right)
		}
	}
}

// Breadth returns the elements level by level.
// Time: O(n); Space: O(n)
func (u *RBTree[T]) Breadth() []T {
	out := make([]T, 0, u.sz)
	u.breadth(u.root, func(n *Node[T]) bool {
		out = append(out, n.data)
		return true
	})
	return out
}

// BreadthSearch scans the tree level by level for an element equal to v. It
// doesn't rely on the ordering, so prefer Contains.
// Time: O(n); Space: O(n)
func (u *RBTree[T]) BreadthSearch(v T) bool {
	return u.BreadthSearchFrom(v, u.root)
}

// BreadthSearchFrom is BreadthSearch limited to the subtree rooted at n. It is
// false when n is nil or Nil.
// Time: O(size of the subtree); Space: O(size of the subtree)
func (u *RBTree[T]) BreadthSearchFrom(v T, n *Node[T]) (found bool) {
	if Go_Collections.IsNil(v) {
		return false
	}
	u.breadth(n, func(n *Node[T]) bool {
		found = u.cmp(n.data, v) == 0
		return !found
	})
	return found
}

// Iterator [Tree.Iterator]
// It follows parent links, so it needs no stack: Space: O(1).
func (u *RBTree[T]) Iterator() func() (T, bool) {
	n := u.MinNode(u.root)
	return func() (T, bool) {
		if n == u.nilPtr {
			return *new(T), false
		}
		v := n.data
		n = u.SuccessorNode(n)
		return v, true
	}
}

// Range calls f on the elements in ascending order until f returns false.
func (u *RBTree[T]) Range(f func(T) bool) {
	for n := u.MinNode(u.root); n != u.nilPtr && f(n.data); n = u.SuccessorNode(n) {
	}
}

// Corrupt [Tree.Corrupt]
// Checks the colors, the black heights, the ordering, the parent links and the
// cached size, minimum and maximum.
// Time: O(n)
func (u *RBTree[T]) Corrupt() bool {
	if u.nilPtr.color != Black || u.root.color != Black {
		return true
	}
	if u.root != u.nilPtr && u.root.parent != u.nilPtr {
		return true
	}
	count := 0
	var check func(n *Node[T]) (blackHeight int, ok bool)
	check = func(n *Node[T]) (int, bool) {
		if n == u.nilPtr {
			return 1, true
		}
		count++
		for _, c := range [2]*Node[T]{n.left, n.right} {
			if c != u.nilPtr && c.parent != n {
				return 0, false
			}
		}
		if n.color == Red && (n.left.color == Red || n.right.color == Red) {
			return 0, false
		}
		if n.left != u.nilPtr && u.cmp(n.left.data, n.data) >= 0 {
			return 0, false
		}
		if n.right != u.nilPtr && u.cmp(n.right.data, n.data) <= 0 {
			return 0, false
		}
		l, okl := check(n.left)
		r, okr := check(n.right)
		if !okl || !okr || l != r {
			return 0, false
		}
		if n.color == Black {
			l++
		}
		return l, true
	}
	if _, ok := check(u.root); !ok || count != u.sz {
		return true
	}
	if u.sz > 0 {
		if u.first != u.MinNode(u.root) || u.last != u.MaxNode(u.root) {
			return true
		}
	}
	// local ordering checks miss a grandchild on the wrong side.
	prev := u.nilPtr
	for n := u.MinNode(u.root); n != u.nilPtr; n = u.SuccessorNode(n) {
		if prev != u.nilPtr && u.cmp(prev.data, n.data) >= 0 {
			return true
		}
		prev = n
	}
	return false
}
