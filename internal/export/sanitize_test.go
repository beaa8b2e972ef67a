package export

import (
	"strings"
	"testing"
)

func TestStripInteractiveRemovesControls(t *testing.T) {
	in := `<html><body>
		<div class="resume">
			<h1>Ada Lovelace</h1>
			<button onclick="x()">Download</button>
			<input type="text" value="secret">
			<select><option>a</option></select>
			<textarea>draft</textarea>
			<script>alert(1)</script>
			<p>Engineer</p>
		</div>
	</body></html>`

	out, err := StripInteractive(in)
	if err != nil {
		t.Fatalf("StripInteractive: %v", err)
	}

	for _, tag := range []string{"<button", "<input", "<select", "<textarea", "<script"} {
		if strings.Contains(out, tag) {
			t.Errorf("output still contains %s", tag)
		}
	}
	for _, keep := range []string{"Ada Lovelace", "Engineer", `class="resume"`} {
		if !strings.Contains(out, keep) {
			t.Errorf("static content %q lost", keep)
		}
	}
}

func TestStripInteractiveLeavesInputUntouched(t *testing.T) {
	in := `<html><body><button>x</button><p>keep</p></body></html>`
	if _, err := StripInteractive(in); err != nil {
		t.Fatalf("StripInteractive: %v", err)
	}
	// the caller's string is immutable; the function returns a cleaned copy
	if !strings.Contains(in, "<button>") {
		t.Fatalf("input mutated")
	}
}

func TestStripInteractiveNestedControls(t *testing.T) {
	in := `<html><body><div><div><button><span>deep</span></button></div><em>text</em></div></body></html>`
	out, err := StripInteractive(in)
	if err != nil {
		t.Fatalf("StripInteractive: %v", err)
	}
	if strings.Contains(out, "deep") {
		t.Errorf("children of removed controls survived")
	}
	if !strings.Contains(out, "text") {
		t.Errorf("sibling content lost")
	}
}
