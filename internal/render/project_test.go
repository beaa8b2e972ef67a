package render

import (
	"reflect"
	"testing"
)

func TestFormatDate(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", "Present"},
		{"2023-03", "March 2023"},
		{"2024-12", "December 2024"},
		{"1999-01", "January 1999"},
		{"not-a-date", "not-a-date"}, // tolerated, passed through
	}
	for _, tc := range cases {
		if got := FormatDate(tc.in); got != tc.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSplitSkillsDropsEmptiesKeepsOrder(t *testing.T) {
	got := SplitSkills("Go, Rust ,  , Python")
	want := []string{"Go", "Rust", "Python"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitSkills = %v, want %v", got, want)
	}
}

func TestSplitSkillsNotSorted(t *testing.T) {
	got := SplitSkills("Zig, Ada, C")
	want := []string{"Zig", "Ada", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitSkills reordered: %v", got)
	}
}

func TestSplitSkillsEmptyInput(t *testing.T) {
	if got := SplitSkills(""); got != nil {
		t.Fatalf("SplitSkills(\"\") = %v, want nil", got)
	}
	if got := SplitSkills(" , ,"); got != nil {
		t.Fatalf("SplitSkills(whitespace) = %v, want nil", got)
	}
}
