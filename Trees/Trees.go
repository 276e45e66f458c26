package Trees

// Tree represents an ordered set implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, calling First on
// an empty tree returns (x T, false bool); x is then the zero value of T and
// shouldn't be used.
// Nil arguments (nil pointers, interfaces, slices...) are never stored: the
// receivers treat them as absent and do nothing.
// Methods implemented recursively should be noted, otherwise functions are
// implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if a new element was stored,
	//false if v is nil or an equal element already exists.
	Insert(v T) bool
	//Remove the element equal to v and return it.
	Remove(v T) (T, bool)
	//First is the minimum element of the tree.
	First() (T, bool)
	//Last is the maximum element of the tree.
	Last() (T, bool)
	//Contains an element equal to v.
	Contains(v T) bool
	//Find the stored element equal to key. When the comparator only looks
	//at part of T, this retrieves the remaining fields.
	Find(key T) (T, bool)
	//Len of the tree.
	Len() int
	//Height of the tree, the number of edges on the longest root to leaf path.
	Height() int
	//Iterator returns A closure function f acting like an iterator. f
	//gives elements in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f.
	Iterator() func() (T, bool)
	//Corrupt returns whether the tree has corrupt structures, when the
	//nodes violate the properties of that specific implementation.
	Corrupt() bool
}
