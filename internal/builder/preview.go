package builder

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

// RenderState is the snapshot the export pipeline consumes: the document
// and variant exactly as last previewed. Export reads this, never the
// live form, so a half-typed edit cannot leak into a PDF.
type RenderState struct {
	Document    model.Document         `json:"document"`
	Variant     model.TemplateVariant  `json:"variant"`
	Resume      *render.RenderedResume `json:"resume"`
	ExportReady bool                   `json:"export_ready"`
	RenderedAt  time.Time              `json:"rendered_at"`
}

// Controller owns the preview loop for one session: read the form, render
// with the selected variant, keep the result for export, recompute export
// eligibility. It replaces the ambient page-global state of old with one
// owned object.
type Controller struct {
	mu       sync.Mutex
	form     *Form
	variant  model.TemplateVariant
	last     *RenderState
	debounce *Debouncer
	log      zerolog.Logger
}

func NewController(form *Form, debounceDelay time.Duration, log zerolog.Logger) *Controller {
	c := &Controller{
		form:    form,
		variant: model.DefaultVariant,
		log:     log,
	}
	c.debounce = NewDebouncer(debounceDelay, func() { c.RefreshPreview() })
	return c
}

// SelectVariant switches the template and re-renders right away when a
// preview already exists, so the displayed layout follows the picker.
func (c *Controller) SelectVariant(v model.TemplateVariant) {
	c.mu.Lock()
	c.variant = v
	rendered := c.last != nil
	c.mu.Unlock()

	c.log.Debug().Str("variant", string(v)).Msg("template selected")
	if rendered {
		c.RefreshPreview()
	}
}

func (c *Controller) Variant() model.TemplateVariant {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.variant
}

// RefreshPreview runs one read-render cycle and stores the result.
func (c *Controller) RefreshPreview() *RenderState {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc := c.form.ReadDocument()
	state := &RenderState{
		Document:    doc,
		Variant:     c.variant,
		Resume:      render.Render(doc, c.variant),
		ExportReady: doc.ExportReady(),
		RenderedAt:  time.Now(),
	}
	c.last = state

	c.log.Debug().
		Str("variant", string(c.variant)).
		Bool("export_ready", state.ExportReady).
		Int("work_entries", len(doc.Work)).
		Int("education_entries", len(doc.Education)).
		Msg("preview refreshed")
	return state
}

// NotifyInput is what the host binds form input events to: a burst of
// calls within the debounce window collapses into one refresh.
func (c *Controller) NotifyInput() {
	c.debounce.Trigger()
}

// FlushPending forces a pending debounced refresh to run now.
func (c *Controller) FlushPending() {
	c.debounce.Flush()
}

// Last returns the most recent render state, or nil before the first
// preview.
func (c *Controller) Last() *RenderState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// Close cancels any pending debounced refresh.
func (c *Controller) Close() {
	c.debounce.Cancel()
}
