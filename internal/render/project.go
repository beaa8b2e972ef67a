package render

import (
	"strings"
	"time"

	"resume-builder/internal/model"
)

// projection is the variant-independent selection of document data. All
// date formatting and skill splitting happens here so the three layouts
// cannot drift from each other.
type projection struct {
	name      string
	title     string
	summary   string
	contact   []ContactItem
	work      []workItem
	education []eduItem
	skills    []string
}

type workItem struct {
	title     string
	company   string
	location  string
	dateRange string
	lines     []string
}

type eduItem struct {
	degree    string
	school    string
	field     string
	dateRange string
	lines     []string
}

func project(doc model.Document) projection {
	p := projection{
		name:    withDefault(doc.Personal.Name, "Your Name"),
		title:   withDefault(doc.Personal.Title, "Professional Title"),
		summary: doc.Personal.Summary,
		skills:  SplitSkills(doc.Skills),
	}

	// contact line order is fixed: email, phone, location, profile link
	if doc.Personal.Email != "" {
		p.contact = append(p.contact, ContactItem{Kind: ContactEmail, Label: doc.Personal.Email})
	}
	if doc.Personal.Phone != "" {
		p.contact = append(p.contact, ContactItem{Kind: ContactPhone, Label: doc.Personal.Phone})
	}
	if doc.Personal.Location != "" {
		p.contact = append(p.contact, ContactItem{Kind: ContactLocation, Label: doc.Personal.Location})
	}
	if doc.Personal.LinkedIn != "" {
		p.contact = append(p.contact, ContactItem{Kind: ContactLinkedIn, Label: "LinkedIn Profile"})
	}

	for _, w := range doc.Work {
		p.work = append(p.work, workItem{
			title:     withDefault(w.Title, "Job Title"),
			company:   withDefault(w.Company, "Company Name"),
			location:  w.Location,
			dateRange: FormatDate(w.StartDate) + " - " + FormatDate(w.EndDate),
			lines:     splitLines(w.Description),
		})
	}

	for _, e := range doc.Education {
		item := eduItem{
			degree: withDefault(e.Degree, "Qualification"),
			school: withDefault(e.School, "School/University"),
			field:  e.Field,
			lines:  splitLines(e.Details),
		}
		// education dates are shown only when a start date was given
		if e.StartDate != "" {
			item.dateRange = FormatDate(e.StartDate) + " - " + FormatDate(e.EndDate)
		}
		p.education = append(p.education, item)
	}

	return p
}

// FormatDate renders a year-month value as full month name plus year, e.g.
// "2023-03" becomes "March 2023". A blank value is the "still here"
// sentinel and renders as "Present". Unparseable input passes through
// untouched rather than failing the whole render.
func FormatDate(s string) string {
	if s == "" {
		return "Present"
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return s
	}
	return t.Format("January 2006")
}

// SplitSkills turns the raw comma-separated skills string into tags:
// split on commas, trim each piece, drop empties. Order follows the
// split order, never alphabetical.
func SplitSkills(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, piece := range strings.Split(s, ",") {
		if t := strings.TrimSpace(piece); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func withDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
