package main

import (
	"fmt"
	"os"
	"path/filepath"

	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

// Renders a canned document with all three layouts so template changes
// can be eyeballed without driving the full form.
func main() {
	doc := model.Document{
		Personal: model.PersonalInfo{
			Name:     "Jordan Example",
			Title:    "Staff Engineer",
			Email:    "jordan@example.com",
			Phone:    "+1 555 0100",
			Location: "Lisbon, Portugal",
			LinkedIn: "jordan-example",
			Summary:  "Engineer with a decade of distributed-systems work.",
		},
		Work: []model.WorkEntry{
			{
				Ordinal: 1, Title: "Staff Engineer", Company: "Acme Corp",
				Location: "Remote", StartDate: "2021-06",
				Description: "Leads the platform team.\nOwns the billing pipeline.",
			},
			{
				Ordinal: 2, Title: "Senior Engineer", Company: "Initech",
				StartDate: "2017-02", EndDate: "2021-05",
				Description: "Built the reporting stack.",
			},
		},
		Education: []model.EducationEntry{
			{
				Ordinal: 1, Degree: "BSc Computer Science", School: "IST Lisbon",
				StartDate: "2010-09", EndDate: "2014-07",
			},
		},
		Skills: "Go, Postgres, Kubernetes, Kafka",
	}

	outDir := "sample-output"
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
		os.Exit(2)
	}

	for _, v := range []model.TemplateVariant{model.VariantModern, model.VariantClassic, model.VariantExecutive} {
		markup, err := render.HTML(render.Render(doc, v))
		if err != nil {
			fmt.Fprintf(os.Stderr, "render %s: %v\n", v, err)
			os.Exit(2)
		}
		out := filepath.Join(outDir, fmt.Sprintf("resume_%s.html", v))
		if err := os.WriteFile(out, []byte(markup), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", out, err)
			os.Exit(2)
		}
		fmt.Printf("wrote %s\n", out)
	}
}
