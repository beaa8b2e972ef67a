package model

import "testing"

func TestExportReady(t *testing.T) {
	cases := []struct {
		name, title, email string
		want               bool
	}{
		{"A", "", "x@y.com", false},
		{"A", "B", "x@y.com", true},
		{"", "B", "x@y.com", false},
		{"A", "B", " ", false},
		{" A ", " B ", " x@y.com ", true},
	}
	for _, tc := range cases {
		d := Document{Personal: PersonalInfo{Name: tc.name, Title: tc.title, Email: tc.email}}
		if got := d.ExportReady(); got != tc.want {
			t.Errorf("ExportReady(%q,%q,%q) = %v, want %v", tc.name, tc.title, tc.email, got, tc.want)
		}
	}
}

func TestExportReadyIgnoresBodyContent(t *testing.T) {
	d := Document{
		Personal: PersonalInfo{Name: "A", Title: "B", Email: "x@y.com"},
	}
	if !d.ExportReady() {
		t.Fatalf("eligible document reported not ready")
	}
	d.Work = nil
	d.Education = nil
	d.Skills = ""
	if !d.ExportReady() {
		t.Fatalf("eligibility must not depend on work/education/skills")
	}
}

func TestParseVariant(t *testing.T) {
	cases := []struct {
		in   string
		want TemplateVariant
		ok   bool
	}{
		{"modern", VariantModern, true},
		{"Classic", VariantClassic, true},
		{" EXECUTIVE ", VariantExecutive, true},
		{"brutalist", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseVariant(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseVariant(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
