package builder

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"resume-builder/internal/model"
)

type EntryKind string

const (
	KindWork      EntryKind = "work"
	KindEducation EntryKind = "education"
)

func ParseEntryKind(s string) (EntryKind, bool) {
	switch EntryKind(s) {
	case KindWork:
		return KindWork, true
	case KindEducation:
		return KindEducation, true
	}
	return "", false
}

var (
	// ErrCannotRemoveLastEntry signals the guardrail that at least one
	// entry of each kind stays on the form. Callers treat it as "nothing
	// changed", not as a failure.
	ErrCannotRemoveLastEntry = errors.New("cannot remove the last remaining entry")

	ErrNoSuchEntry  = errors.New("no such entry")
	ErrUnknownKind  = errors.New("unknown entry kind")
	ErrUnknownField = errors.New("unknown field")
)

// Entry is one repeatable form block. ID is the stable identity fields are
// bound to; Ordinal is display-only and reassigned after every removal, so
// it must never be used as a binding key.
type Entry struct {
	ID      uuid.UUID         `json:"id"`
	Kind    EntryKind         `json:"kind"`
	Ordinal int               `json:"ordinal"`
	Fields  map[string]string `json:"fields"`
}

// Label is the display title bound to the ordinal, e.g. "Work Experience #2".
func (e *Entry) Label() string {
	switch e.Kind {
	case KindEducation:
		return fmt.Sprintf("Education #%d", e.Ordinal)
	default:
		return fmt.Sprintf("Work Experience #%d", e.Ordinal)
	}
}

// Field names accepted per entry kind. The reader only ever looks these up,
// so an unset name simply reads as blank.
var entryFields = map[EntryKind][]string{
	KindWork:      {"title", "company", "location", "startDate", "endDate", "description"},
	KindEducation: {"degree", "school", "field", "startDate", "endDate", "details"},
}

var personalFields = map[string]bool{
	"name": true, "title": true, "email": true, "phone": true,
	"location": true, "linkedin": true, "summary": true,
}

// Form owns the live field state the reader snapshots from. It is the
// in-memory replacement for re-deriving entry lists from markup: the UI
// binds to it, never the other way around.
type Form struct {
	personal map[string]string
	skills   string
	entries  map[EntryKind][]*Entry
}

// NewForm starts with one blank work entry and one blank education entry,
// matching the initial state the builder page presents.
func NewForm() *Form {
	f := &Form{
		personal: map[string]string{},
		entries:  map[EntryKind][]*Entry{},
	}
	f.mustAdd(KindWork)
	f.mustAdd(KindEducation)
	return f
}

func (f *Form) mustAdd(kind EntryKind) {
	if _, err := f.AddEntry(kind); err != nil {
		panic(err)
	}
}

// AddEntry appends a blank entry of the given kind and returns its ordinal.
func (f *Form) AddEntry(kind EntryKind) (int, error) {
	if _, ok := entryFields[kind]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	e := &Entry{
		ID:      uuid.New(),
		Kind:    kind,
		Ordinal: len(f.entries[kind]) + 1,
		Fields:  map[string]string{},
	}
	f.entries[kind] = append(f.entries[kind], e)
	return e.Ordinal, nil
}

// RemoveEntry deletes the entry with the given ordinal and renumbers the
// rest. Removing the sole remaining entry of a kind is refused with
// ErrCannotRemoveLastEntry and leaves the list untouched.
func (f *Form) RemoveEntry(kind EntryKind, ordinal int) error {
	list, ok := f.entries[kind]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	idx := -1
	for i, e := range list {
		if e.Ordinal == ordinal {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s #%d", ErrNoSuchEntry, kind, ordinal)
	}
	if len(list) == 1 {
		return ErrCannotRemoveLastEntry
	}
	f.entries[kind] = append(list[:idx], list[idx+1:]...)
	f.renumber(kind)
	return nil
}

// renumber reassigns ordinals 1..N in list order so they stay dense with
// no gaps. Display labels derive from the ordinal, so they follow along.
func (f *Form) renumber(kind EntryKind) {
	for i, e := range f.entries[kind] {
		e.Ordinal = i + 1
	}
}

// Entries returns the entries of a kind in list order.
func (f *Form) Entries(kind EntryKind) []*Entry {
	return f.entries[kind]
}

// EntryByID resolves the stable identity the UI binds fields to.
func (f *Form) EntryByID(id uuid.UUID) (*Entry, bool) {
	for _, list := range f.entries {
		for _, e := range list {
			if e.ID == id {
				return e, true
			}
		}
	}
	return nil, false
}

// SetPersonalField stores one personal-info value by field name.
func (f *Form) SetPersonalField(name, value string) error {
	if !personalFields[name] {
		return fmt.Errorf("%w: personal.%s", ErrUnknownField, name)
	}
	f.personal[name] = value
	return nil
}

// SetSkills replaces the raw comma-separated skills string.
func (f *Form) SetSkills(value string) {
	f.skills = value
}

// SetEntryField stores one value on an entry, addressed by stable ID.
func (f *Form) SetEntryField(id uuid.UUID, name, value string) error {
	e, ok := f.EntryByID(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoSuchEntry, id)
	}
	for _, known := range entryFields[e.Kind] {
		if known == name {
			e.Fields[name] = value
			return nil
		}
	}
	return fmt.Errorf("%w: %s.%s", ErrUnknownField, e.Kind, name)
}

// LoadDocument replaces the whole form state with an imported document.
// Each kind is re-seeded with one blank entry when the import has none,
// preserving the at-least-one invariant.
func (f *Form) LoadDocument(doc *model.Document) {
	f.personal = map[string]string{
		"name":     doc.Personal.Name,
		"title":    doc.Personal.Title,
		"email":    doc.Personal.Email,
		"phone":    doc.Personal.Phone,
		"location": doc.Personal.Location,
		"linkedin": doc.Personal.LinkedIn,
		"summary":  doc.Personal.Summary,
	}
	f.skills = doc.Skills

	f.entries = map[EntryKind][]*Entry{}
	for _, w := range doc.Work {
		e := &Entry{ID: uuid.New(), Kind: KindWork, Fields: map[string]string{
			"title":       w.Title,
			"company":     w.Company,
			"location":    w.Location,
			"startDate":   w.StartDate,
			"endDate":     w.EndDate,
			"description": w.Description,
		}}
		f.entries[KindWork] = append(f.entries[KindWork], e)
	}
	for _, ed := range doc.Education {
		e := &Entry{ID: uuid.New(), Kind: KindEducation, Fields: map[string]string{
			"degree":    ed.Degree,
			"school":    ed.School,
			"field":     ed.Field,
			"startDate": ed.StartDate,
			"endDate":   ed.EndDate,
			"details":   ed.Details,
		}}
		f.entries[KindEducation] = append(f.entries[KindEducation], e)
	}
	for _, kind := range []EntryKind{KindWork, KindEducation} {
		if len(f.entries[kind]) == 0 {
			f.mustAdd(kind)
		} else {
			f.renumber(kind)
		}
	}
}
