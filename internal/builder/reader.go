package builder

import (
	"strings"

	"resume-builder/internal/model"
)

// ReadDocument assembles a fresh snapshot of the current form state. Text
// fields are trimmed, month fields pass through untouched, and a field
// with no bound value simply reads as blank. The reader never validates;
// completeness checks belong to the preview controller.
func (f *Form) ReadDocument() model.Document {
	doc := model.Document{
		Personal: model.PersonalInfo{
			Name:     strings.TrimSpace(f.personal["name"]),
			Title:    strings.TrimSpace(f.personal["title"]),
			Email:    strings.TrimSpace(f.personal["email"]),
			Phone:    strings.TrimSpace(f.personal["phone"]),
			Location: strings.TrimSpace(f.personal["location"]),
			LinkedIn: strings.TrimSpace(f.personal["linkedin"]),
			Summary:  strings.TrimSpace(f.personal["summary"]),
		},
		Skills: strings.TrimSpace(f.skills),
	}

	for _, e := range f.entries[KindWork] {
		doc.Work = append(doc.Work, model.WorkEntry{
			Ordinal:     e.Ordinal,
			Title:       strings.TrimSpace(e.Fields["title"]),
			Company:     strings.TrimSpace(e.Fields["company"]),
			Location:    strings.TrimSpace(e.Fields["location"]),
			StartDate:   e.Fields["startDate"],
			EndDate:     e.Fields["endDate"],
			Description: strings.TrimSpace(e.Fields["description"]),
		})
	}

	for _, e := range f.entries[KindEducation] {
		doc.Education = append(doc.Education, model.EducationEntry{
			Ordinal:   e.Ordinal,
			Degree:    strings.TrimSpace(e.Fields["degree"]),
			School:    strings.TrimSpace(e.Fields["school"]),
			Field:     strings.TrimSpace(e.Fields["field"]),
			StartDate: e.Fields["startDate"],
			EndDate:   e.Fields["endDate"],
			Details:   strings.TrimSpace(e.Fields["details"]),
		})
	}

	return doc
}
