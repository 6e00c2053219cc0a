package moderation

import (
	"reflect"
	"testing"
)

func TestDiffTags(t *testing.T) {
	cases := []struct {
		name string
		old  []string
		new  []string
		want []string
	}{
		{"no change", []string{"Wood", "Glass"}, []string{"Wood", "Glass"}, nil},
		{"add one", []string{"Wood"}, []string{"Wood", "Glass"}, []string{"Glass"}},
		{"remove one", []string{"Wood", "Glass"}, []string{"Glass"}, []string{"Wood"}},
		{"swap", []string{"Wood", "Glass"}, []string{"Glass", "Fabric"}, []string{"Wood", "Fabric"}},
		{"from empty", nil, []string{"Red", "Blue"}, []string{"Red", "Blue"}},
		{"to empty", []string{"Red", "Blue"}, nil, []string{"Red", "Blue"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DiffTags(tc.old, tc.new)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("DiffTags(%v, %v) = %v, want %v", tc.old, tc.new, got, tc.want)
			}
		})
	}
}

func TestToggleTagDoesNotAliasInput(t *testing.T) {
	in := []string{"Wood", "Glass"}
	out := toggleTag(in, "Wood")
	if len(in) != 2 || in[0] != "Wood" {
		t.Fatalf("input slice mutated: %v", in)
	}
	if len(out) != 1 || out[0] != "Glass" {
		t.Fatalf("expected [Glass], got %v", out)
	}
}

func TestMoveAdjacentReturnsFreshSlice(t *testing.T) {
	in := []string{"A", "B", "C"}
	out := moveAdjacent(in, "B", DirectionDown)
	if in[1] != "B" || in[2] != "C" {
		t.Fatalf("input slice mutated: %v", in)
	}
	if out[1] != "C" || out[2] != "B" {
		t.Fatalf("expected [A C B], got %v", out)
	}
}

func TestHasDuplicates(t *testing.T) {
	if hasDuplicates([]string{"a", "b", "c"}) {
		t.Fatal("distinct list flagged as duplicate")
	}
	if !hasDuplicates([]string{"a", "b", "a"}) {
		t.Fatal("duplicate list not flagged")
	}
}
