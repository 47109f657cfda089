package dnd

import (
	"reflect"
	"sort"
	"testing"
)

func TestReorderMoveForwardInsertsAfterTarget(t *testing.T) {
	got := Reorder([]string{"a", "b", "c"}, "a", "c")
	want := []string{"b", "c", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestReorderMoveBackwardInsertsBeforeTarget(t *testing.T) {
	got := Reorder([]string{"a", "b", "c"}, "c", "a")
	want := []string{"c", "a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestReorderAdjacentSwap(t *testing.T) {
	got := Reorder([]string{"a", "b", "c"}, "a", "b")
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestReorderSelfTargetIsUnchanged(t *testing.T) {
	got := Reorder([]string{"a", "b", "c"}, "b", "b")
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestReorderMissingIDsUnchanged(t *testing.T) {
	got := Reorder([]string{"a", "b"}, "zzz", "a")
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestReorderDoesNotMutateInput(t *testing.T) {
	in := []string{"a", "b", "c"}
	Reorder(in, "a", "c")
	if !reflect.DeepEqual(in, []string{"a", "b", "c"}) {
		t.Fatalf("input mutated: %v", in)
	}
}

func TestReorderIsAPermutation(t *testing.T) {
	ids := []string{"p1", "p2", "p3", "p4", "p5"}
	for _, src := range ids {
		for _, tgt := range ids {
			got := Reorder(ids, src, tgt)
			if len(got) != len(ids) {
				t.Fatalf("reorder(%s,%s): length %d, want %d", src, tgt, len(got), len(ids))
			}
			a := append([]string{}, ids...)
			b := append([]string{}, got...)
			sort.Strings(a)
			sort.Strings(b)
			if !reflect.DeepEqual(a, b) {
				t.Fatalf("reorder(%s,%s) is not a permutation: %v", src, tgt, got)
			}
		}
	}
}
