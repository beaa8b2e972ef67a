package render

import (
	"strings"

	"resume-builder/internal/model"
)

// RenderedResume is the layout-ready tree produced from a Document. The
// host UI (or the HTML emitter) walks it top to bottom; it carries no
// markup of its own.
type RenderedResume struct {
	Variant model.TemplateVariant `json:"variant"`

	// Placeholder is set instead of Header/Body when the form has no name
	// yet. This is the documented empty state, not an error.
	Placeholder *Placeholder `json:"placeholder,omitempty"`

	Header Header    `json:"header"`
	Body   []Section `json:"body,omitempty"`

	// GroupedBody marks that body sections sit inside one shared content
	// container (the executive layout does this).
	GroupedBody bool `json:"grouped_body,omitempty"`
}

type Placeholder struct {
	Message string `json:"message"`
	Hint    string `json:"hint"`
}

type Header struct {
	Name    string        `json:"name"`
	Title   string        `json:"title"`
	Contact []ContactItem `json:"contact,omitempty"`
}

type ContactKind string

const (
	ContactEmail    ContactKind = "email"
	ContactPhone    ContactKind = "phone"
	ContactLocation ContactKind = "location"
	ContactLinkedIn ContactKind = "linkedin"
)

type ContactItem struct {
	Kind  ContactKind `json:"kind"`
	Label string      `json:"label"`
}

type SectionKind string

const (
	SectionSummary   SectionKind = "summary"
	SectionWork      SectionKind = "work"
	SectionEducation SectionKind = "education"
	SectionSkills    SectionKind = "skills"
)

type Section struct {
	Kind      SectionKind `json:"kind"`
	Title     string      `json:"title"`
	Paragraph string      `json:"paragraph,omitempty"`
	Items     []Item      `json:"items,omitempty"`
	Tags      []string    `json:"tags,omitempty"`
}

// Item is one work or education block. Heading/Subheading placement and
// the way location folds into Subheading is where variants differ.
type Item struct {
	Heading    string   `json:"heading"`
	Subheading string   `json:"subheading,omitempty"`
	Detail     string   `json:"detail,omitempty"`
	DateRange  string   `json:"date_range,omitempty"`
	Lines      []string `json:"lines,omitempty"`
}

// Render maps a document and a variant to the layout tree. Pure and
// deterministic: equal inputs always produce structurally equal output.
func Render(doc model.Document, variant model.TemplateVariant) *RenderedResume {
	if strings.TrimSpace(doc.Personal.Name) == "" {
		return &RenderedResume{
			Variant: variant,
			Placeholder: &Placeholder{
				Message: "Fill out the form to see your resume preview",
				Hint:    "Your professional resume will appear here",
			},
		}
	}

	p := project(doc)
	switch variant {
	case model.VariantClassic:
		return layoutClassic(p)
	case model.VariantExecutive:
		return layoutExecutive(p)
	default:
		return layoutModern(p)
	}
}
