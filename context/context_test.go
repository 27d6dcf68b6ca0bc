package context

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestValCowIsolation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nanta.context")
	defer teardown()
	//
	root := NewRootContext(nil)
	root.Set("x", IntValue(1))
	n2 := NewChildContext(root)
	n3 := NewChildContext(root)
	n2.Set("x", IntValue(2))

	if got := n3.Val("x"); !got.Equal(IntValue(1)) {
		t.Errorf("n3 sees x=%s, want 1", got)
	}
	if got := n2.Val("x"); !got.Equal(IntValue(2)) {
		t.Errorf("n2 sees x=%s, want 2", got)
	}
	if got := root.Val("x"); !got.Equal(IntValue(1)) {
		t.Errorf("root sees x=%s, want 1 (unaffected by descendant writes)", got)
	}
}

func TestSetElidesNoOpWrite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nanta.context")
	defer teardown()
	//
	root := NewRootContext(nil)
	root.Set("x", IntValue(1))
	child := NewChildContext(root)
	child.Set("x", IntValue(1)) // reproduces inherited value: should elide

	if len(child.bindings) != 0 {
		t.Errorf("expected no local binding after no-op write, got %d", len(child.bindings))
	}
}

func TestRefMaterializesLocalBinding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nanta.context")
	defer teardown()
	//
	root := NewRootContext(nil)
	root.Set("x", IntValue(1))
	child := NewChildContext(root)

	ref := child.Ref("x", true)
	*ref = IntValue(9)

	if got := child.Val("x"); !got.Equal(IntValue(9)) {
		t.Errorf("child sees x=%s, want 9", got)
	}
	if got := root.Val("x"); !got.Equal(IntValue(1)) {
		t.Errorf("root sees x=%s, want 1", got)
	}
}

func TestChildContextNestedArray(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nanta.context")
	defer teardown()
	//
	root := NewRootContext(nil)
	arr := root.ChildContext("items")
	arr.Set("0", StrValue("alpha"))

	again := root.ChildContext("items")
	if again != arr {
		t.Errorf("ChildContext should return the same backing Context on repeated calls")
	}
	if got := again.Val("0"); !got.Equal(StrValue("alpha")) {
		t.Errorf("got %s, want \"alpha\"", got)
	}
}

func TestSortedListDedupsNearestWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nanta.context")
	defer teardown()
	//
	root := NewRootContext(nil)
	root.Set("a", IntValue(1))
	root.Set("b", IntValue(2))
	child := NewChildContext(root)
	child.Set("b", IntValue(20))
	child.Set("c", IntValue(3))

	got := child.SortedList(false)
	want := []Binding{
		{"a", IntValue(1)},
		{"b", IntValue(20)},
		{"c", IntValue(3)},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(Value{})); diff != "" {
		t.Errorf("SortedList mismatch (-want +got):\n%s", diff)
	}
}

func TestPriorityCastSymmetry(t *testing.T) {
	cases := [][2]Value{
		{IntValue(3), StrValue("4")},
		{BoolValue(true), RealValue(2.5)},
		{NullValue, IntValue(7)},
	}
	for _, c := range cases {
		uv, vu, ut, err1 := PriorityCast(c[0], c[1])
		vv, uu, vt, err2 := PriorityCast(c[1], c[0])
		if (err1 == nil) != (err2 == nil) {
			t.Fatalf("priority-cast error asymmetry for %v/%v", c[0], c[1])
		}
		if err1 != nil {
			continue
		}
		if ut != vt {
			t.Errorf("priority-cast result type asymmetry: %s vs %s", ut, vt)
		}
		if !uv.Equal(uu) || !vu.Equal(vv) {
			t.Errorf("priority-cast values not symmetric for %v/%v", c[0], c[1])
		}
	}
}
