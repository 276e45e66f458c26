package GeneralTree

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/g-m-twostay/go-collections/Queues"

	"github.com/cornelk/hashmap"
	"github.com/hashicorp/go-uuid"
	"github.com/sirupsen/logrus"
)

// GeneralTree is an ordered forest of Nodes with any number of children each.
// Nodes are looked up by Id, through an index when it's enabled.
//
// First, Last, Len, Height and the index are computed by walks. Insert and
// Remove keep them up to date; after editing TreeData or a Node's Children
// directly, call MarkDirty so the next read walks the forest again, or Refresh
// to walk right away.
//
// The tree notifies EventInsert with the inserted Node and EventRemove with
// the removed Node, after the forest has changed.
type GeneralTree[T any] struct {
	Go_Collections.Emitter[*Node[T]]
	root        []*Node[T]
	index       *hashmap.Map[Id, *Node[T]] //nil when indexing is off.
	first, last *Node[T]
	sz, height  int
	seq         int
	dirty       bool
	opts        options
	cmp         Go_Collections.Comparator[T]
}

// New tree over treeData, which is walked once. cmp is used by FindByField and
// Contains only, it may be nil.
func New[T any](treeData []*Node[T], cmp Go_Collections.Comparator[T], opts ...Option) *GeneralTree[T] {
	u := &GeneralTree[T]{opts: defaults(), cmp: cmp}
	for _, o := range opts {
		o(&u.opts)
	}
	u.seq = u.opts.sequence
	u.SetTreeData(treeData)
	return u
}

func noop[T any](*Node[T]) {}

func warn(fields logrus.Fields, msg string) {
	Go_Collections.Log.WithFields(fields).Warn(msg)
}

// TreeData is the forest itself, not a copy.
func (u *GeneralTree[T]) TreeData() []*Node[T] {
	return u.root
}

// SetTreeData replaces the forest and walks it.
func (u *GeneralTree[T]) SetTreeData(treeData []*Node[T]) {
	u.root = treeData
	u.walk(noop[T])
}

// MarkDirty tells the tree that the forest was modified without Insert or
// Remove. The next read of a walk computed value walks the forest first.
func (u *GeneralTree[T]) MarkDirty() {
	u.dirty = true
}

// Refresh walks the forest now.
func (u *GeneralTree[T]) Refresh() {
	u.walk(noop[T])
}

func (u *GeneralTree[T]) sync() {
	if u.dirty {
		u.walk(noop[T])
	}
}

// First is the first root level Node, nil for an empty tree.
func (u *GeneralTree[T]) First() *Node[T] {
	u.sync()
	return u.first
}

// Last is the last Node in pre-order, nil for an empty tree.
func (u *GeneralTree[T]) Last() *Node[T] {
	u.sync()
	return u.last
}

// Len is the number of Nodes in the forest.
func (u *GeneralTree[T]) Len() int {
	u.sync()
	return u.sz
}

func (u *GeneralTree[T]) Empty() bool {
	return u.Len() == 0
}

// Height is the depth of the deepest Node; root level Nodes have depth 1.
func (u *GeneralTree[T]) Height() int {
	u.sync()
	return u.height
}

// Sequence is the next value of the id counter.
func (u *GeneralTree[T]) Sequence() int {
	return u.seq
}

func (u *GeneralTree[T]) SetSequence(v int) {
	u.seq = v
}

// Indexed reports whether id is in the index. Always false when indexing is
// off.
func (u *GeneralTree[T]) Indexed(id Id) bool {
	u.sync()
	if u.index == nil {
		return false
	}
	_, ok := u.index.Get(id)
	return ok
}

func (u *GeneralTree[T]) IndexLen() int {
	u.sync()
	if u.index == nil {
		return 0
	}
	return u.index.Len()
}

func (u *GeneralTree[T]) newKey() Id {
	if u.opts.testing {
		u.seq++
		return strconv.Itoa(u.seq - 1)
	}
	id, err := uuid.GenerateUUID()
	if err != nil {
		Go_Collections.Log.WithError(err).Error("uuid generation failed, using the sequence")
		u.seq++
		return strconv.Itoa(u.seq - 1)
	}
	return id
}

// Walk the forest in pre-order, calling fn on every Node.
// The walk rebuilds the index, recomputes First, Last, Len and Height, and
// sets the ParentId and Parent of every Node from its position. With
// sanitizing on, Nodes without an Id get a new one.
// fn must not modify the structure. Recursive.
// Time: O(n)
func (u *GeneralTree[T]) Walk(fn func(*Node[T])) {
	if fn == nil {
		warn(logrus.Fields{"op": "walk"}, "walk needs a callback")
		return
	}
	if len(u.root) == 0 {
		warn(logrus.Fields{"op": "walk"}, "tree is empty")
	}
	u.walk(fn)
}

func (u *GeneralTree[T]) walk(fn func(*Node[T])) {
	if u.opts.index {
		u.index = hashmap.New[Id, *Node[T]]()
	}
	u.first, u.last, u.sz, u.height, u.dirty = nil, nil, 0, 0, false
	if len(u.root) == 0 {
		return
	}
	u.first = u.root[0]

	var preorder func(p *Node[T], children []*Node[T], d int)
	preorder = func(p *Node[T], children []*Node[T], d int) {
		for _, c := range children {
			if c == nil {
				pid := ""
				if p != nil {
					pid = p.Id
				}
				warn(logrus.Fields{"op": "walk", "parent": pid}, "skipping nil node")
				continue
			}
			if u.opts.sanitize && c.Id == "" {
				c.Id = u.newKey()
			}
			c.parent = p
			if p == nil {
				c.ParentId = ""
			} else {
				c.ParentId = p.Id
			}
			if u.index != nil {
				u.index.Set(c.Id, c)
			}
			u.sz++
			u.height = max(u.height, d)
			fn(c)
			u.last = c
			preorder(c, c.Children, d+1)
		}
	}
	preorder(nil, u.root, 1)
}

// Find the Node with the given id, searching the forest level by level. A
// Node found by searching is added to the index.
// Time: O(1) when indexed, O(n) otherwise.
func (u *GeneralTree[T]) Find(id Id) *Node[T] {
	u.sync()
	if len(u.root) == 0 {
		warn(logrus.Fields{"op": "find", "id": id}, "tree is empty")
		return nil
	}
	if u.index != nil {
		if n, ok := u.index.Get(id); ok {
			return n
		}
	}
	q := Queues.MakeArrayQueue[*Node[T]](uint(len(u.root)))
	for _, c := range u.root {
		q.Push(c)
	}
	for !q.Empty() {
		n, _ := q.Pop()
		if n == nil {
			continue
		}
		if n.Id == id {
			q.Drain()
			if u.index != nil {
				u.index.Set(id, n)
			}
			return n
		}
		for _, c := range n.Children {
			q.Push(c)
		}
	}
	return nil
}

// FindByField returns the Nodes whose Data the comparator finds equal to
// criteria, in pre-order. Empty when the tree has no comparator.
// Time: O(n)
func (u *GeneralTree[T]) FindByField(criteria T) []*Node[T] {
	if u.cmp == nil {
		return nil
	}
	var out []*Node[T]
	u.walk(func(n *Node[T]) {
		if u.cmp(n.Data, criteria) == 0 {
			out = append(out, n)
		}
	})
	return out
}

// FindByParent returns the children of the Node with the given id.
func (u *GeneralTree[T]) FindByParent(parentId Id) []*Node[T] {
	if p := u.Find(parentId); p != nil {
		return p.Children
	}
	return nil
}

// Contains a Node whose Data equals criteria under the comparator.
func (u *GeneralTree[T]) Contains(criteria T) bool {
	return len(u.FindByField(criteria)) > 0
}

func (u *GeneralTree[T]) siblings(p *Node[T]) *[]*Node[T] {
	if p == nil {
		return &u.root
	}
	return &p.Children
}

// Insert data into the forest, as a child of the Node with data.ParentId, or
// at the root level when ParentId is empty. asFirstChild puts it in front of
// its siblings, otherwise it goes last. With validate, an Id already present
// is rejected. A missing Id is generated.
// Returns data, or nil when it's rejected.
// Time: O(depth) when indexed, O(n) otherwise or when data has children.
func (u *GeneralTree[T]) Insert(data *Node[T], asFirstChild, validate bool) *Node[T] {
	if data == nil {
		warn(logrus.Fields{"op": "insert"}, "nil node")
		return nil
	}
	u.sync()
	if validate && data.Id != "" && len(u.root) > 0 && u.Find(data.Id) != nil {
		warn(logrus.Fields{"op": "insert", "id": data.Id}, "duplicate id")
		return nil
	}
	var p *Node[T]
	if data.ParentId != "" {
		if p = u.Find(data.ParentId); p == nil {
			warn(logrus.Fields{"op": "insert", "id": data.Id, "parent": data.ParentId}, "parent not found")
			return nil
		}
	}
	if data.Id == "" {
		data.Id = u.newKey()
	}
	data.parent = p

	sib := u.siblings(p)
	atBack := !asFirstChild || len(*sib) == 0
	if asFirstChild {
		*sib = slices.Insert(*sib, 0, data)
	} else {
		*sib = append(*sib, data)
	}

	if u.last == nil || atBack && (p == nil || p == u.last || p.isAncestorOf(u.last)) {
		u.last = data
	}
	u.first = u.root[0]
	u.sz++
	u.height = max(u.height, data.Depth())
	if u.index != nil {
		u.index.Set(data.Id, data)
	}
	if len(data.Children) > 0 {
		u.walk(noop[T])
	}

	u.Emit(Go_Collections.EventInsert, data)
	return data
}

// Remove the Node with the given id along with all its descendants. With
// deleteWithChildren, a Node with more than one child is refused.
// Returns the removed Node, or nil.
// Time: O(n)
func (u *GeneralTree[T]) Remove(id Id, deleteWithChildren bool) *Node[T] {
	u.sync()
	n := u.Find(id)
	if n == nil {
		warn(logrus.Fields{"op": "remove", "id": id}, "node not found")
		return nil
	}
	if deleteWithChildren && len(n.Children) > 1 {
		warn(logrus.Fields{"op": "remove", "id": id, "children": len(n.Children)}, "refusing to remove a node with children")
		return nil
	}
	sib := u.siblings(n.parent)
	i := slices.Index(*sib, n)
	if i < 0 {
		warn(logrus.Fields{"op": "remove", "id": id, "parent": n.ParentId}, "node isn't a child of its parent")
		return nil
	}
	*sib = slices.Delete(*sib, i, i+1)

	var unindex func(*Node[T])
	unindex = func(c *Node[T]) {
		u.sz--
		if u.index != nil {
			u.index.Del(c.Id)
		}
		for _, cc := range c.Children {
			if cc != nil {
				unindex(cc)
			}
		}
	}
	unindex(n)
	u.walk(noop[T])
	n.parent = nil

	u.Emit(Go_Collections.EventRemove, n)
	return n
}

// Flatten the forest into Records in pre-order. Parents always come before
// their children.
// Time: O(n)
func (u *GeneralTree[T]) Flatten() []Record[T] {
	out := make([]Record[T], 0, u.sz)
	u.walk(func(n *Node[T]) {
		out = append(out, n.record())
	})
	return out
}

// Expand replaces the forest with the one described by records, inserting
// each at the back of its parent's children. Records whose parent hasn't been
// inserted yet are dropped. Returns the number of Nodes inserted.
// Time: O(n) when indexed.
func (u *GeneralTree[T]) Expand(records []Record[T]) int {
	u.Clear()
	count := 0
	for _, r := range records {
		if u.Insert(&Node[T]{Id: r.Id, ParentId: r.ParentId, Data: r.Data}, false, false) != nil {
			count++
		}
	}
	return count
}

// Clear the forest and the index, and reset the id counter.
func (u *GeneralTree[T]) Clear() {
	u.root = []*Node[T]{}
	u.seq = u.opts.sequence
	u.walk(noop[T])
}

// Iterator returns a closure function f acting like an iterator over the
// Nodes in pre-order. Each Node is looked up again by Id when it's reached,
// so Nodes removed in the meantime are skipped.
func (u *GeneralTree[T]) Iterator() func() (*Node[T], bool) {
	rs := u.Flatten()
	i := 0
	return func() (*Node[T], bool) {
		for ; i < len(rs); i++ {
			if len(u.root) == 0 {
				break
			}
			if n := u.Find(rs[i].Id); n != nil {
				i++
				return n, true
			}
		}
		i = len(rs)
		return nil, false
	}
}

// Dump the forest, one Node per line indented by depth. When format is not
// nil its result for the Data of each Node is appended to the line.
// Recursive.
func (u *GeneralTree[T]) Dump(format func(T) string) string {
	u.sync()
	var sb strings.Builder
	var dump func([]*Node[T], int)
	dump = func(ns []*Node[T], d int) {
		for _, n := range ns {
			if n == nil {
				continue
			}
			fmt.Fprintf(&sb, "%sid: %s, parentId: %s", strings.Repeat("  ", d), n.Id, n.ParentId)
			if format != nil {
				sb.WriteString(", ")
				sb.WriteString(format(n.Data))
			}
			sb.WriteByte('\n')
			dump(n.Children, d+1)
		}
	}
	dump(u.root, 0)
	return sb.String()
}

func (u *GeneralTree[T]) String() string {
	return u.Dump(nil)
}

// Corrupt reports whether the links, the ids or the cached values disagree
// with the forest. A tree marked dirty is walked first, so the check covers
// direct edits.
// Time: O(n)
func (u *GeneralTree[T]) Corrupt() bool {
	u.sync()
	ids := make(map[Id]struct{}, u.sz)
	count, height := 0, 0
	var last *Node[T]
	var check func(p *Node[T], ns []*Node[T], d int) bool
	check = func(p *Node[T], ns []*Node[T], d int) bool {
		for _, n := range ns {
			if n == nil {
				continue
			}
			if _, dup := ids[n.Id]; dup || n.parent != p {
				return false
			}
			if p != nil && n.ParentId != p.Id || p == nil && n.ParentId != "" {
				return false
			}
			ids[n.Id] = struct{}{}
			count++
			height = max(height, d)
			last = n
			if u.index != nil {
				if m, ok := u.index.Get(n.Id); !ok || m != n {
					return false
				}
			}
			if !check(n, n.Children, d+1) {
				return false
			}
		}
		return true
	}
	if !check(nil, u.root, 1) {
		return true
	}
	if count != u.sz || height != u.height || last != u.last {
		return true
	}
	if len(u.root) > 0 && u.first != u.root[0] {
		return true
	}
	return u.index != nil && u.index.Len() != count
}
