package builder

import (
	"errors"
	"fmt"
	"testing"

	"resume-builder/internal/model"
)

func ordinals(entries []*Entry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Ordinal
	}
	return out
}

func assertDense(t *testing.T, entries []*Entry) {
	t.Helper()
	for i, e := range entries {
		if e.Ordinal != i+1 {
			t.Fatalf("ordinals not dense: got %v", ordinals(entries))
		}
	}
}

func TestNewFormSeedsOneEntryPerKind(t *testing.T) {
	f := NewForm()
	if got := len(f.Entries(KindWork)); got != 1 {
		t.Fatalf("work entries = %d, want 1", got)
	}
	if got := len(f.Entries(KindEducation)); got != 1 {
		t.Fatalf("education entries = %d, want 1", got)
	}
}

func TestAddEntryReturnsNextOrdinal(t *testing.T) {
	f := NewForm()
	for want := 2; want <= 5; want++ {
		got, err := f.AddEntry(KindWork)
		if err != nil {
			t.Fatalf("AddEntry: %v", err)
		}
		if got != want {
			t.Fatalf("AddEntry ordinal = %d, want %d", got, want)
		}
	}
	assertDense(t, f.Entries(KindWork))
}

func TestRemoveEntryRenumbersDense(t *testing.T) {
	f := NewForm()
	for i := 0; i < 4; i++ {
		if _, err := f.AddEntry(KindWork); err != nil {
			t.Fatalf("AddEntry: %v", err)
		}
	}

	// tag each entry so we can follow identity across renumbering
	for _, e := range f.Entries(KindWork) {
		e.Fields["company"] = fmt.Sprintf("company-%d", e.Ordinal)
	}

	if err := f.RemoveEntry(KindWork, 2); err != nil {
		t.Fatalf("RemoveEntry: %v", err)
	}
	if err := f.RemoveEntry(KindWork, 4); err != nil {
		t.Fatalf("RemoveEntry: %v", err)
	}

	entries := f.Entries(KindWork)
	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}
	assertDense(t, entries)

	// list order survives removal; only ordinals shift
	wantCompanies := []string{"company-1", "company-3", "company-4"}
	for i, e := range entries {
		if e.Fields["company"] != wantCompanies[i] {
			t.Errorf("entry %d company = %q, want %q", i, e.Fields["company"], wantCompanies[i])
		}
	}
}

func TestRemoveLastEntryIsNoOp(t *testing.T) {
	f := NewForm()
	before := f.Entries(KindEducation)[0].ID

	err := f.RemoveEntry(KindEducation, 1)
	if !errors.Is(err, ErrCannotRemoveLastEntry) {
		t.Fatalf("err = %v, want ErrCannotRemoveLastEntry", err)
	}

	entries := f.Entries(KindEducation)
	if len(entries) != 1 || entries[0].ID != before || entries[0].Ordinal != 1 {
		t.Fatalf("entry list changed on refused removal")
	}

	// idempotent: a second attempt behaves the same
	if err := f.RemoveEntry(KindEducation, 1); !errors.Is(err, ErrCannotRemoveLastEntry) {
		t.Fatalf("second attempt err = %v, want ErrCannotRemoveLastEntry", err)
	}
}

func TestRemoveEntryUnknownOrdinal(t *testing.T) {
	f := NewForm()
	if err := f.RemoveEntry(KindWork, 9); !errors.Is(err, ErrNoSuchEntry) {
		t.Fatalf("err = %v, want ErrNoSuchEntry", err)
	}
}

func TestEntryLabelsFollowOrdinals(t *testing.T) {
	f := NewForm()
	if _, err := f.AddEntry(KindWork); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
	if err := f.RemoveEntry(KindWork, 1); err != nil {
		t.Fatalf("RemoveEntry: %v", err)
	}

	entries := f.Entries(KindWork)
	if len(entries) != 1 {
		t.Fatalf("len = %d, want 1", len(entries))
	}
	if got := entries[0].Label(); got != "Work Experience #1" {
		t.Fatalf("label = %q, want %q", got, "Work Experience #1")
	}
	if got := f.Entries(KindEducation)[0].Label(); got != "Education #1" {
		t.Fatalf("education label = %q", got)
	}
}

func TestSetEntryFieldByStableID(t *testing.T) {
	f := NewForm()
	id := f.Entries(KindWork)[0].ID
	if err := f.SetEntryField(id, "company", "Acme"); err != nil {
		t.Fatalf("SetEntryField: %v", err)
	}
	if err := f.SetEntryField(id, "degree", "x"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("cross-kind field err = %v, want ErrUnknownField", err)
	}

	e, ok := f.EntryByID(id)
	if !ok || e.Fields["company"] != "Acme" {
		t.Fatalf("field not stored on stable identity")
	}
}

func TestSetPersonalFieldRejectsUnknown(t *testing.T) {
	f := NewForm()
	if err := f.SetPersonalField("name", "Ada"); err != nil {
		t.Fatalf("SetPersonalField: %v", err)
	}
	if err := f.SetPersonalField("nickname", "A"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("err = %v, want ErrUnknownField", err)
	}
}

func TestLoadDocumentPreservesAtLeastOneEntry(t *testing.T) {
	f := NewForm()
	f.LoadDocument(&model.Document{
		Personal: model.PersonalInfo{Name: "Ada"},
		Work: []model.WorkEntry{
			{Title: "Engineer", Company: "Acme"},
			{Title: "Analyst", Company: "Initech"},
		},
	})

	work := f.Entries(KindWork)
	if len(work) != 2 {
		t.Fatalf("work entries = %d, want 2", len(work))
	}
	assertDense(t, work)

	// education was absent from the import and gets re-seeded blank
	edu := f.Entries(KindEducation)
	if len(edu) != 1 || edu[0].Ordinal != 1 {
		t.Fatalf("education not re-seeded: %v", ordinals(edu))
	}

	doc := f.ReadDocument()
	if doc.Personal.Name != "Ada" || doc.Work[1].Company != "Initech" {
		t.Fatalf("imported state not readable back: %+v", doc)
	}
}
