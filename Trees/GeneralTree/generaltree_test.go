package GeneralTree

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	Go_Collections "github.com/g-m-twostay/go-collections"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type testData struct {
	field1 string
	field2 int
}

func byField1(a, b testData) int {
	if a.field1 == b.field1 {
		return 0
	}
	return -1
}

// basic is 3 root Nodes with 3 children each, "1.0" to "3.3".
func basic() []*Node[testData] {
	var out []*Node[testData]
	for i := 1; i <= 3; i++ {
		p := &Node[testData]{Data: testData{field1: fmt.Sprintf("%d.0", i)}}
		for j := 1; j <= 3; j++ {
			p.Children = append(p.Children, &Node[testData]{Data: testData{field1: fmt.Sprintf("%d.%d", i, j)}})
		}
		out = append(out, p)
	}
	return out
}

// search is basic plus a second "3.0" at the root level.
func search() []*Node[testData] {
	out := basic()
	out[2].Data.field2 = 1
	return append(out, &Node[testData]{Data: testData{"3.0", 2}})
}

// deep is a single chain of 17 Nodes, "1.0" to "1.16".
func deep() []*Node[testData] {
	root := &Node[testData]{Data: testData{field1: "1.0"}}
	for i, cur := 1, root; i < 17; i++ {
		c := &Node[testData]{Data: testData{field1: fmt.Sprintf("1.%d", i)}}
		cur.Children = []*Node[testData]{c}
		cur = c
	}
	return []*Node[testData]{root}
}

func field1s(ns []*Node[testData]) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.Data.field1
	}
	return out
}

func TestGeneralTree_Empty(t *testing.T) {
	gt := New[testData](nil, nil, WithTesting(true))
	if gt.Len() != 0 || gt.Height() != 0 || !gt.Empty() {
		t.Errorf("empty tree has length %d and height %d", gt.Len(), gt.Height())
	}
	if gt.First() != nil || gt.Last() != nil {
		t.Error("empty tree has a first or last node")
	}
	if gt.Find("0") != nil || len(gt.FindByParent("0")) != 0 {
		t.Error("found a node in an empty tree")
	}
	if gt.Remove("0", false) != nil {
		t.Error("removed from an empty tree")
	}
	called := false
	gt.Walk(func(*Node[testData]) { called = true })
	if called {
		t.Error("walk called the callback on an empty tree")
	}
	if _, ok := gt.Iterator()(); ok {
		t.Error("iterator of an empty tree isn't exhausted")
	}
}

func TestGeneralTree_Basic(t *testing.T) {
	gt := New(basic(), nil, WithTesting(true))
	if gt.Len() != 12 {
		t.Errorf("tree length is %d, want 12", gt.Len())
	}
	if gt.Height() != 2 {
		t.Errorf("tree height is %d, want 2", gt.Height())
	}
	if f := gt.First(); f == nil || f.Id != "0" || f.Data.field1 != "1.0" {
		t.Errorf("first is %v, want id 0", f)
	}
	if l := gt.Last(); l == nil || l.Id != "11" || l.Data.field1 != "3.3" {
		t.Errorf("last is %v, want id 11", l)
	}
	if gt.Sequence() != 12 {
		t.Errorf("sequence is %d, want 12", gt.Sequence())
	}
	if gt.Corrupt() {
		t.Error("tree is corrupt")
	}

	gt.Clear()
	if gt.Len() != 0 || gt.Height() != 0 || gt.IndexLen() != 0 {
		t.Error("tree not empty after clear")
	}
	if gt.TreeData() == nil || len(gt.TreeData()) != 0 {
		t.Error("cleared tree data should be an empty forest")
	}
	if gt.Sequence() != 0 {
		t.Errorf("sequence is %d after clear, want 0", gt.Sequence())
	}
}

func TestGeneralTree_Walk(t *testing.T) {
	gt := New(basic(), nil, WithTesting(true))
	var out []string
	gt.Walk(func(n *Node[testData]) {
		out = append(out, n.Data.field1)
	})
	if got := strings.Join(out, " "); got != "1.0 1.1 1.2 1.3 2.0 2.1 2.2 2.3 3.0 3.1 3.2 3.3" {
		t.Errorf("walk order is %s", got)
	}
	gt.Walk(nil)
	if gt.Len() != 12 || gt.TreeData() == nil {
		t.Error("walk with a nil callback modified the tree")
	}
	for _, r := range gt.TreeData() {
		if r.Parent() != nil || r.ParentId != "" {
			t.Errorf("root %s has parent %s", r.Id, r.ParentId)
		}
		for _, c := range r.Children {
			if c.Parent() != r || c.ParentId != r.Id {
				t.Errorf("child %s has parent %s, want %s", c.Id, c.ParentId, r.Id)
			}
		}
	}
}

func TestGeneralTree_WalkIdempotent(t *testing.T) {
	gt := New(search(), nil, WithTesting(true))
	type state struct {
		first, last    *Node[testData]
		length, height int
		indexed, ids   int
	}
	snap := func() state {
		s := state{gt.First(), gt.Last(), gt.Len(), gt.Height(), gt.IndexLen(), 0}
		for i := range 20 {
			if gt.Indexed(fmt.Sprint(i)) {
				s.ids++
			}
		}
		return s
	}
	gt.Refresh()
	a := snap()
	gt.Refresh()
	if b := snap(); a != b {
		t.Errorf("second walk gave %v, want %v", b, a)
	}
	if a.indexed != 13 || a.ids != 13 {
		t.Errorf("index holds %d nodes, want 13", a.indexed)
	}
}

func TestGeneralTree_Deep(t *testing.T) {
	gt := New(deep(), nil, WithTesting(true))
	calls := 0
	gt.Walk(func(*Node[testData]) { calls++ })
	if gt.Len() != 17 || calls != 17 {
		t.Errorf("tree length is %d with %d calls, want 17", gt.Len(), calls)
	}
	if l := gt.Last(); l.Data.field1 != "1.16" {
		t.Errorf("last is %s, want 1.16", l.Data.field1)
	}
	if gt.Height() != 17 || gt.Last().Depth() != 17 {
		t.Errorf("tree height is %d, want 17", gt.Height())
	}
}

func TestGeneralTree_Large(t *testing.T) {
	data := make([]*Node[testData], 4320)
	for i := range data {
		data[i] = &Node[testData]{Data: testData{field1: fmt.Sprintf("%d.0", i+1)}}
	}
	gt := New(data, nil, WithTesting(true))
	calls := 0
	gt.Walk(func(*Node[testData]) { calls++ })
	if gt.Len() != 4320 || calls != 4320 {
		t.Errorf("tree length is %d with %d calls, want 4320", gt.Len(), calls)
	}
	if l := gt.Last(); l.Data.field1 != "4320.0" {
		t.Errorf("last is %s, want 4320.0", l.Data.field1)
	}
	if gt.Height() != 1 {
		t.Errorf("tree height is %d, want 1", gt.Height())
	}
}

func TestGeneralTree_Find(t *testing.T) {
	for _, index := range []bool{true, false} {
		gt := New(search(), nil, WithTesting(true), WithIndex(index))
		if gt.Indexed("4") != index {
			t.Errorf("index holds 4: %v, want %v", !index, index)
		}
		it := gt.Find("4")
		if it == nil || it.Data.field1 != "2.0" || len(it.Children) != 3 || it.Parent() != nil {
			t.Fatalf("find 4 gave %v", it)
		}
		it = gt.Find("9")
		if it == nil || it.Data.field1 != "3.1" || len(it.Children) != 0 || it.Parent().Id != "8" {
			t.Fatalf("find 9 gave %v", it)
		}
		if gt.Find("127") != nil {
			t.Error("found a missing id")
		}
		if it := gt.Find("4"); it == nil || it.Data.field1 != "2.0" {
			t.Errorf("second find 4 gave %v", it)
		}
		if !index && gt.IndexLen() != 0 {
			t.Errorf("disabled index holds %d nodes", gt.IndexLen())
		}
	}
}

func TestGeneralTree_FindByField(t *testing.T) {
	gt := New(search(), byField1, WithTesting(true))
	found := gt.FindByField(testData{field1: "3.0"})
	if len(found) != 2 || found[0].Data.field2 != 1 || found[1].Data.field2 != 2 {
		t.Errorf("found %v, want the two 3.0 nodes", found)
	}
	if found := gt.FindByField(testData{field1: "foo bar"}); len(found) != 0 {
		t.Errorf("found %v, want nothing", found)
	}
	if !gt.Contains(testData{field1: "2.2"}) || gt.Contains(testData{field1: "9.9"}) {
		t.Error("wrong contains")
	}
	if found := New(search(), nil).FindByField(testData{field1: "3.0"}); len(found) != 0 {
		t.Error("tree without a comparator found nodes")
	}
}

func TestGeneralTree_FindByParent(t *testing.T) {
	gt := New(search(), nil, WithTesting(true))
	if got := field1s(gt.FindByParent("4")); !slices.Equal(got, []string{"2.1", "2.2", "2.3"}) {
		t.Errorf("children of 4 are %v", got)
	}
	if got := gt.FindByParent("9999"); len(got) != 0 {
		t.Errorf("children of a missing node are %v", got)
	}
	if got := gt.FindByParent("5"); len(got) != 0 {
		t.Errorf("children of a leaf are %v", got)
	}
}

func TestGeneralTree_InsertRemove(t *testing.T) {
	gt := New(basic(), nil, WithTesting(true))
	n := gt.Insert(&Node[testData]{Data: testData{field1: "0.0"}}, true, false)
	if n == nil || n.Id != "12" {
		t.Fatalf("inserted %v, want id 12", n)
	}
	if gt.Len() != 13 {
		t.Errorf("tree length is %d, want 13", gt.Len())
	}
	if gt.First() != n {
		t.Errorf("first is %v, want the new node", gt.First())
	}
	if gt.Last().Data.field1 != "3.3" {
		t.Errorf("last is %s, want 3.3", gt.Last().Data.field1)
	}
	if !gt.Indexed("12") || gt.Corrupt() {
		t.Error("tree is inconsistent after insert")
	}

	removed := gt.Remove("4", false)
	if removed == nil || removed.Data.field1 != "2.0" {
		t.Fatalf("removed %v, want 2.0", removed)
	}
	if gt.Len() != 9 {
		t.Errorf("tree length is %d, want 9", gt.Len())
	}
	if got := field1s(gt.TreeData()); !slices.Equal(got, []string{"0.0", "1.0", "3.0"}) {
		t.Errorf("roots are %v", got)
	}
	for _, id := range []Id{"4", "5", "6", "7"} {
		if gt.Find(id) != nil || gt.Indexed(id) {
			t.Errorf("removed node %s is still found", id)
		}
	}
	if gt.Corrupt() {
		t.Error("tree is corrupt after remove")
	}
	if gt.Remove("4", false) != nil {
		t.Error("removed 4 twice")
	}
}

func TestGeneralTree_InsertLast(t *testing.T) {
	gt := New(basic(), nil, WithTesting(true))
	check := func(want string) {
		t.Helper()
		if l := gt.Last(); l.Data.field1 != want {
			t.Errorf("last is %s, want %s", l.Data.field1, want)
		}
		if gt.Corrupt() {
			t.Error("tree is corrupt")
		}
	}
	gt.Insert(&Node[testData]{ParentId: "0", Data: testData{field1: "1.4"}}, false, false)
	check("3.3")
	gt.Insert(&Node[testData]{ParentId: "8", Data: testData{field1: "3.4"}}, false, false)
	check("3.4")
	gt.Insert(&Node[testData]{ParentId: "8", Data: testData{field1: "3.-1"}}, true, false)
	check("3.4")
	n := gt.Insert(&Node[testData]{ParentId: "11", Data: testData{field1: "3.3.1"}}, false, false)
	check("3.4")
	if gt.Height() != 3 || n.Depth() != 3 {
		t.Errorf("tree height is %d, want 3", gt.Height())
	}
	gt.Insert(&Node[testData]{ParentId: gt.Last().Id, Data: testData{field1: "3.4.1"}}, true, false)
	check("3.4.1")
	gt.Insert(&Node[testData]{Data: testData{field1: "4.0"}}, false, false)
	check("4.0")
	sub := &Node[testData]{Data: testData{field1: "5.0"}, Children: []*Node[testData]{{Data: testData{field1: "5.1"}}}}
	gt.Insert(sub, false, false)
	check("5.1")
	if gt.Len() != 20 {
		t.Errorf("tree length is %d, want 20", gt.Len())
	}
}

func TestGeneralTree_InsertReject(t *testing.T) {
	gt := New(basic(), nil, WithTesting(true))
	if gt.Insert(nil, true, false) != nil {
		t.Error("inserted nil")
	}
	if gt.Insert(&Node[testData]{Id: "3"}, true, true) != nil {
		t.Error("inserted a duplicate id")
	}
	if gt.Insert(&Node[testData]{ParentId: "999"}, true, false) != nil {
		t.Error("inserted under a missing parent")
	}
	if gt.Len() != 12 {
		t.Errorf("tree length is %d, want 12", gt.Len())
	}
	if n := gt.Insert(&Node[testData]{Id: "x", ParentId: "3"}, true, true); n == nil || n.Parent().Id != "3" {
		t.Error("failed to insert a new id")
	}
	empty := New[testData](nil, nil)
	if empty.Insert(&Node[testData]{Id: "a"}, true, true) == nil || empty.First().Id != "a" {
		t.Error("failed to insert into an empty tree")
	}
}

func TestGeneralTree_RemoveWithChildren(t *testing.T) {
	gt := New(basic(), nil, WithTesting(true))
	if gt.Remove("0", true) != nil || gt.Len() != 12 {
		t.Error("removed a node with 3 children")
	}
	gt.Insert(&Node[testData]{ParentId: "1", Data: testData{field1: "1.1.1"}}, true, false)
	if gt.Remove("1", true) == nil {
		t.Error("failed to remove a node with 1 child")
	}
	if gt.Len() != 11 || len(gt.Find("0").Children) != 2 {
		t.Errorf("tree length is %d, want 11", gt.Len())
	}
	if gt.Remove("zz", true) != nil {
		t.Error("removed a missing id")
	}
	if gt.Remove("0", false) == nil || gt.Len() != 8 {
		t.Errorf("tree length is %d, want 8", gt.Len())
	}
	if gt.First().Data.field1 != "2.0" || gt.Corrupt() {
		t.Error("tree is inconsistent after removing the first root")
	}
}

func TestGeneralTree_FlattenExpand(t *testing.T) {
	gt := New(search(), byField1, WithTesting(true))
	rs := gt.Flatten()
	if len(rs) != 13 {
		t.Fatalf("flattened %d records, want 13", len(rs))
	}
	if rs[1] != (Record[testData]{"1", "0", testData{field1: "1.1"}}) {
		t.Errorf("record 1 is %v", rs[1])
	}

	cp := New[testData](nil, byField1, WithTesting(true))
	if n := cp.Expand(rs); n != 13 {
		t.Errorf("expanded %d nodes, want 13", n)
	}
	if cp.Len() != gt.Len() || cp.Height() != gt.Height() {
		t.Errorf("copy has length %d and height %d", cp.Len(), cp.Height())
	}
	if got := cp.Flatten(); !slices.Equal(got, rs) {
		t.Errorf("round trip gave %v, want %v", got, rs)
	}
	if cp.Last().Id != gt.Last().Id || cp.First().Id != gt.First().Id || cp.Corrupt() {
		t.Error("copy is inconsistent")
	}

	cp.Expand([]Record[testData]{{Id: "c", ParentId: "p"}, {Id: "p"}})
	if cp.Len() != 1 || cp.Find("c") != nil {
		t.Error("expanded a child before its parent")
	}
}

func TestGeneralTree_Events(t *testing.T) {
	gt := New(basic(), nil, WithTesting(true))
	var ins, rem []Id
	gt.On(Go_Collections.EventInsert, func(n *Node[testData]) {
		ins = append(ins, n.Id)
		if gt.Find(n.Id) != n || gt.Len() != 13 {
			t.Error("listener ran before the insertion")
		}
	})
	gt.On(Go_Collections.EventRemove, func(n *Node[testData]) {
		rem = append(rem, n.Id)
		if gt.Find(n.Id) != nil {
			t.Error("listener ran before the removal")
		}
	})
	gt.Insert(&Node[testData]{ParentId: "4"}, false, false)
	gt.Insert(nil, false, false)
	gt.Remove("0", true)
	gt.Remove("8", false)
	if !slices.Equal(ins, []Id{"12"}) || !slices.Equal(rem, []Id{"8"}) {
		t.Errorf("wrong events: insert=%v remove=%v", ins, rem)
	}
}

func TestGeneralTree_Iterator(t *testing.T) {
	gt := New(basic(), nil, WithTesting(true))
	next := gt.Iterator()
	var got []string
	for n, ok := next(); ok; n, ok = next() {
		got = append(got, n.Data.field1)
		if n.Id == "0" {
			gt.Remove("4", false)
		}
	}
	if !slices.Equal(got, []string{"1.0", "1.1", "1.2", "1.3", "3.0", "3.1", "3.2", "3.3"}) {
		t.Errorf("iterator gave %v", got)
	}
	if _, ok := next(); ok {
		t.Error("exhausted iterator gave a node")
	}
}

func TestGeneralTree_MarkDirty(t *testing.T) {
	gt := New(basic(), nil, WithTesting(true))
	n := &Node[testData]{Data: testData{field1: "4.0"}, Children: []*Node[testData]{{Data: testData{field1: "4.1"}}}}
	gt.SetTreeData(append(gt.TreeData(), n))
	if gt.Len() != 14 || gt.Last().Data.field1 != "4.1" {
		t.Error("setting the tree data didn't walk")
	}

	gt.TreeData()[0].Children = nil
	if gt.Len() != 14 {
		t.Error("direct edits are seen before MarkDirty")
	}
	gt.MarkDirty()
	if n := gt.Find("1"); n != nil {
		t.Errorf("find after MarkDirty gave detached node %v", n.Data)
	}
	if gt.Len() != 11 {
		t.Errorf("tree length is %d after MarkDirty, want 11", gt.Len())
	}
	if gt.Corrupt() {
		t.Error("tree is corrupt after refreshing")
	}

	gt.TreeData()[1].Children = nil
	gt.MarkDirty()
	if gt.Indexed("5") || gt.IndexLen() != 8 {
		t.Errorf("index holds %d ids after MarkDirty, want 8", gt.IndexLen())
	}
	gt.TreeData()[2].Children = nil
	gt.MarkDirty()
	if got := gt.FindByParent("8"); len(got) != 0 {
		t.Errorf("children of 8 are %v after MarkDirty", field1s(got))
	}
}

func TestGeneralTree_CorruptDirty(t *testing.T) {
	gt := New(basic(), nil, WithTesting(true))
	gt.SetTreeData(append(gt.TreeData(), &Node[testData]{Id: "0"}))
	if !gt.Corrupt() {
		t.Error("duplicate id not reported")
	}
	gt = New(basic(), nil, WithTesting(true))
	gt.TreeData()[0].Children = append(gt.TreeData()[0].Children, &Node[testData]{Id: "3"})
	gt.MarkDirty()
	if !gt.Corrupt() {
		t.Error("duplicate id added directly not reported")
	}
}

func TestGeneralTree_WalkEmptyLogs(t *testing.T) {
	hook := test.NewLocal(Go_Collections.Log)
	defer hook.Reset()
	gt := New[testData](nil, nil)
	gt.Walk(func(*Node[testData]) {})
	e := hook.LastEntry()
	if e == nil || e.Level != logrus.WarnLevel || e.Message != "tree is empty" || e.Data["op"] != "walk" {
		t.Errorf("walk of an empty tree logged %v", e)
	}
}

func TestGeneralTree_Options(t *testing.T) {
	gt := New(basic(), nil)
	if id := gt.First().Id; len(id) != 36 {
		t.Errorf("generated id is %q, want a UUID", id)
	}
	if gt.IndexLen() != 12 {
		t.Errorf("index holds %d ids, want 12", gt.IndexLen())
	}

	gt = New(basic(), nil, WithTesting(true), WithSequence(100))
	if gt.First().Id != "100" || gt.Last().Id != "111" {
		t.Errorf("ids are %s to %s, want 100 to 111", gt.First().Id, gt.Last().Id)
	}
	gt.Clear()
	if gt.Sequence() != 100 {
		t.Errorf("sequence is %d after clear, want 100", gt.Sequence())
	}
	gt.SetSequence(7)
	if n := gt.Insert(&Node[testData]{}, true, false); n.Id != "7" {
		t.Errorf("inserted id %s, want 7", n.Id)
	}

	gt = New(basic(), nil, WithTesting(true), WithSanitize(false))
	if gt.First().Id != "" || gt.Sequence() != 0 {
		t.Error("walk generated ids with sanitizing off")
	}
}

func TestGeneralTree_Dump(t *testing.T) {
	gt := New(basic(), nil, WithTesting(true))
	s := gt.String()
	if !strings.HasPrefix(s, "id: 0, parentId: \n  id: 1, parentId: 0\n") {
		t.Errorf("dump starts with %q", s[:min(len(s), 60)])
	}
	if strings.Count(s, "\n") != 12 {
		t.Errorf("dump has %d lines, want 12", strings.Count(s, "\n"))
	}
	d := gt.Dump(func(v testData) string { return "field1: " + v.field1 })
	if !strings.Contains(d, "  id: 11, parentId: 8, field1: 3.3\n") {
		t.Errorf("dump is %s", d)
	}
}
