package render

import "resume-builder/internal/model"

// The three layouts differ only in section naming, grouping and how a
// work location is attached to its item. Data selection lives in project().

func layoutModern(p projection) *RenderedResume {
	r := &RenderedResume{
		Variant: model.VariantModern,
		Header:  Header{Name: p.name, Title: p.title, Contact: p.contact},
	}

	if s := summarySection(p, "Professional Summary"); s != nil {
		r.Body = append(r.Body, *s)
	}
	if len(p.work) > 0 {
		sec := Section{Kind: SectionWork, Title: "Work Experience"}
		for _, w := range p.work {
			// location goes on its own line under the company
			sec.Items = append(sec.Items, Item{
				Heading:    w.title,
				Subheading: w.company,
				Detail:     w.location,
				DateRange:  w.dateRange,
				Lines:      w.lines,
			})
		}
		r.Body = append(r.Body, sec)
	}
	if sec := educationSection(p, "Education"); sec != nil {
		r.Body = append(r.Body, *sec)
	}
	if sec := skillsSection(p, "Skills"); sec != nil {
		r.Body = append(r.Body, *sec)
	}
	return r
}

func layoutClassic(p projection) *RenderedResume {
	r := &RenderedResume{
		Variant: model.VariantClassic,
		Header:  Header{Name: p.name, Title: p.title, Contact: p.contact},
	}

	if s := summarySection(p, "PROFESSIONAL SUMMARY"); s != nil {
		r.Body = append(r.Body, *s)
	}
	if len(p.work) > 0 {
		sec := Section{Kind: SectionWork, Title: "WORK EXPERIENCE"}
		for _, w := range p.work {
			sub := w.company
			if w.location != "" {
				sub += ", " + w.location
			}
			sec.Items = append(sec.Items, Item{
				Heading:    w.title,
				Subheading: sub,
				DateRange:  w.dateRange,
				Lines:      w.lines,
			})
		}
		r.Body = append(r.Body, sec)
	}
	if sec := educationSection(p, "EDUCATION"); sec != nil {
		r.Body = append(r.Body, *sec)
	}
	if sec := skillsSection(p, "SKILLS"); sec != nil {
		r.Body = append(r.Body, *sec)
	}
	return r
}

func layoutExecutive(p projection) *RenderedResume {
	r := &RenderedResume{
		Variant:     model.VariantExecutive,
		Header:      Header{Name: p.name, Title: p.title, Contact: p.contact},
		GroupedBody: true,
	}

	if s := summarySection(p, "Professional Summary"); s != nil {
		r.Body = append(r.Body, *s)
	}
	if len(p.work) > 0 {
		sec := Section{Kind: SectionWork, Title: "Career Experience"}
		for _, w := range p.work {
			sub := w.company
			if w.location != "" {
				sub += " | " + w.location
			}
			sec.Items = append(sec.Items, Item{
				Heading:    w.title,
				Subheading: sub,
				DateRange:  w.dateRange,
				Lines:      w.lines,
			})
		}
		r.Body = append(r.Body, sec)
	}
	if sec := educationSection(p, "Education & Qualifications"); sec != nil {
		r.Body = append(r.Body, *sec)
	}
	if sec := skillsSection(p, "Core Competencies"); sec != nil {
		r.Body = append(r.Body, *sec)
	}
	return r
}

func summarySection(p projection, title string) *Section {
	if p.summary == "" {
		return nil
	}
	return &Section{Kind: SectionSummary, Title: title, Paragraph: p.summary}
}

func educationSection(p projection, title string) *Section {
	if len(p.education) == 0 {
		return nil
	}
	sec := Section{Kind: SectionEducation, Title: title}
	for _, e := range p.education {
		sub := e.school
		if e.field != "" {
			sub += " — " + e.field
		}
		sec.Items = append(sec.Items, Item{
			Heading:    e.degree,
			Subheading: sub,
			DateRange:  e.dateRange,
			Lines:      e.lines,
		})
	}
	return &sec
}

func skillsSection(p projection, title string) *Section {
	if len(p.skills) == 0 {
		return nil
	}
	return &Section{Kind: SectionSkills, Title: title, Tags: p.skills}
}
