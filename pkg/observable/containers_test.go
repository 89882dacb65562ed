package observable

import (
	"reflect"
	"testing"
)

// record collects published changes for container tests.
func record(bind func(func(*Change))) *[]*Change {
	var changes []*Change
	bind(func(ch *Change) { changes = append(changes, ch) })
	return &changes
}

func TestListAppendBracket(t *testing.T) {
	l := NewList[string]("tags")
	changes := record(l.Bind)

	l.Append("a", "b")

	if len(*changes) != 2 {
		t.Fatalf("expected before+after, got %d changes", len(*changes))
	}
	before, after := (*changes)[0], (*changes)[1]
	if before.Kind != KindBefore || after.Kind != KindAfter {
		t.Errorf("kinds = %v/%v, want before/after", before.Kind, after.Kind)
	}
	if before.Method != "Append" || after.Method != "Append" {
		t.Errorf("methods = %q/%q, want Append", before.Method, after.Method)
	}
	if !reflect.DeepEqual(before.Args, []any{"a", "b"}) {
		t.Errorf("before args = %v", before.Args)
	}
	if got := l.Values(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Values() = %v", got)
	}
}

func TestListBeforePrecedesMutation(t *testing.T) {
	l := NewList[int]("nums", 1)
	var lenAtBefore int
	l.Bind(func(ch *Change) {
		if ch.Kind == KindBefore {
			lenAtBefore = l.Len()
		}
	})

	l.Append(2)

	if lenAtBefore != 1 {
		t.Errorf("length at before change = %d, want 1 (pre-mutation)", lenAtBefore)
	}
}

func TestListInsertSetRemove(t *testing.T) {
	l := NewList[int]("nums", 1, 3)
	changes := record(l.Bind)

	l.Insert(1, 2)
	if got := l.Values(); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Fatalf("after Insert: %v", got)
	}

	l.Set(0, 10)
	if got := l.At(0); got != 10 {
		t.Errorf("At(0) = %d, want 10", got)
	}

	removed := l.RemoveAt(2)
	if removed != 3 {
		t.Errorf("RemoveAt(2) = %d, want 3", removed)
	}

	// Last after change carries the removed value as its result.
	last := (*changes)[len(*changes)-1]
	if last.Kind != KindAfter || last.Method != "RemoveAt" || last.Result != 3 {
		t.Errorf("last change = %+v", last)
	}
}

func TestListClear(t *testing.T) {
	l := NewList[int]("nums", 1, 2)
	changes := record(l.Bind)

	l.Clear()

	if l.Len() != 0 {
		t.Errorf("Len() = %d after Clear", l.Len())
	}
	if len(*changes) != 2 || (*changes)[0].Method != "Clear" {
		t.Errorf("unexpected changes: %+v", *changes)
	}
}

func TestListOutOfRangePanicsBeforeNotify(t *testing.T) {
	l := NewList[int]("nums", 1)
	changes := record(l.Bind)

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected panic for out-of-range index")
			}
		}()
		l.Set(5, 0)
	}()

	if len(*changes) != 0 {
		t.Errorf("no changes should be published for a failed mutation, got %d", len(*changes))
	}
}

func TestMapSetDelete(t *testing.T) {
	m := NewMap[string, int]("scores")
	changes := record(m.Bind)

	m.Set("alice", 3)
	if v, ok := m.Get("alice"); !ok || v != 3 {
		t.Errorf("Get(alice) = %d,%v", v, ok)
	}

	removed, ok := m.Delete("alice")
	if !ok || removed != 3 {
		t.Errorf("Delete(alice) = %d,%v", removed, ok)
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d", m.Len())
	}

	// Set and Delete each publish a before/after pair.
	if len(*changes) != 4 {
		t.Fatalf("expected 4 changes, got %d", len(*changes))
	}
	if (*changes)[3].Result != 3 {
		t.Errorf("delete after result = %v, want 3", (*changes)[3].Result)
	}
}

func TestMapDeleteAbsent(t *testing.T) {
	m := NewMap[string, int]("scores")
	changes := record(m.Bind)

	_, ok := m.Delete("ghost")
	if ok {
		t.Error("Delete of absent key reported ok")
	}
	if (*changes)[1].Result != nil {
		t.Errorf("after result = %v, want nil for absent key", (*changes)[1].Result)
	}
}

func TestMapClearAndViews(t *testing.T) {
	m := NewMap[string, int]("scores")
	m.Set("a", 1)
	m.Set("b", 2)

	keys := m.Keys()
	if len(keys) != 2 {
		t.Errorf("Keys() = %v", keys)
	}
	if got := m.Values(); len(got) != 2 || got["a"] != 1 {
		t.Errorf("Values() = %v", got)
	}

	m.Clear()
	if m.Len() != 0 {
		t.Errorf("Len() = %d after Clear", m.Len())
	}
}

func TestSignalEmit(t *testing.T) {
	s := NewSignal("saved")
	changes := record(s.Bind)

	s.Emit()
	s.Emit("hello", 2)

	if len(*changes) != 2 {
		t.Fatalf("expected 2 changes, got %d", len(*changes))
	}
	if (*changes)[0].Kind != KindSignal || len((*changes)[0].Args) != 0 {
		t.Errorf("first emit = %+v", (*changes)[0])
	}
	if !reflect.DeepEqual((*changes)[1].Args, []any{"hello", 2}) {
		t.Errorf("second emit args = %v", (*changes)[1].Args)
	}
	if (*changes)[1].Spurious {
		t.Error("signal emissions are never spurious")
	}
}

func TestPropertyKinds(t *testing.T) {
	tests := []struct {
		prop Property
		want PropertyKind
	}{
		{NewValue("a", 0), ScalarProperty},
		{NewList[int]("b"), ListProperty},
		{NewMap[string, int]("c"), MapProperty},
		{NewSignal("d"), SignalProperty},
	}
	for _, tt := range tests {
		if got := tt.prop.PropertyKind(); got != tt.want {
			t.Errorf("%s: PropertyKind() = %v, want %v", tt.prop.Name(), got, tt.want)
		}
	}
}

func TestKindStrings(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindAssign, "assign"},
		{KindBefore, "before"},
		{KindAfter, "after"},
		{KindSignal, "signal"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
