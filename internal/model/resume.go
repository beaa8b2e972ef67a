package model

import "strings"

// Value types for a single resume snapshot. A Document is rebuilt wholesale
// from the live form state on every read and never patched in place.

type PersonalInfo struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// WorkEntry is one work-history block. Dates carry year-month granularity
// ("2023-03"); an empty EndDate means the position is current.
type WorkEntry struct {
	Ordinal     int    `json:"ordinal"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

type EducationEntry struct {
	Ordinal   int    `json:"ordinal"`
	Degree    string `json:"degree"`
	School    string `json:"school"`
	Field     string `json:"field,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Details   string `json:"details,omitempty"`
}

// Document aggregates everything the form collects. Skills stays a raw
// comma-separated string; splitting happens at render time.
type Document struct {
	Personal  PersonalInfo     `json:"personal"`
	Work      []WorkEntry      `json:"work"`
	Education []EducationEntry `json:"education"`
	Skills    string           `json:"skills,omitempty"`
}

// ExportReady reports whether the document carries the minimum personal
// fields that gate PDF export: name, title and email, non-empty after
// trimming. Work, education and skills content never affect eligibility.
func (d *Document) ExportReady() bool {
	return strings.TrimSpace(d.Personal.Name) != "" &&
		strings.TrimSpace(d.Personal.Title) != "" &&
		strings.TrimSpace(d.Personal.Email) != ""
}

// TemplateVariant names one of the three resume layouts.
type TemplateVariant string

const (
	VariantModern    TemplateVariant = "modern"
	VariantClassic   TemplateVariant = "classic"
	VariantExecutive TemplateVariant = "executive"
)

// DefaultVariant is the layout every new session starts with.
const DefaultVariant = VariantModern

func ParseVariant(s string) (TemplateVariant, bool) {
	switch TemplateVariant(strings.ToLower(strings.TrimSpace(s))) {
	case VariantModern:
		return VariantModern, true
	case VariantClassic:
		return VariantClassic, true
	case VariantExecutive:
		return VariantExecutive, true
	}
	return "", false
}

// DisplayName is the human label shown in the template picker.
func (v TemplateVariant) DisplayName() string {
	switch v {
	case VariantClassic:
		return "Classic"
	case VariantExecutive:
		return "Executive"
	default:
		return "Modern"
	}
}
