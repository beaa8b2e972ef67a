package http

import (
	"errors"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"resume-builder/internal/builder"
	"resume-builder/internal/export"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

// Session is one builder form plus its preview controller. Sessions live
// in memory only and die with the process.
type Session struct {
	ID         uuid.UUID
	Form       *builder.Form
	Controller *builder.Controller
	CreatedAt  time.Time
}

// Handler is the host UI stand-in: it feeds field values to the form by
// stable identity and invokes the core operations on user gestures.
type Handler struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session

	pipeline *export.Pipeline
	notify   *export.NotificationCenter
	debounce time.Duration
	log      zerolog.Logger
}

func NewHandler(pipeline *export.Pipeline, notify *export.NotificationCenter, debounce time.Duration, log zerolog.Logger) *Handler {
	return &Handler{
		sessions: map[uuid.UUID]*Session{},
		pipeline: pipeline,
		notify:   notify,
		debounce: debounce,
		log:      log,
	}
}

func (h *Handler) Register(app *fiber.App) {
	app.Post("/sessions", h.CreateSession)
	app.Get("/sessions/:id", h.GetSession)

	app.Post("/sessions/:id/entries/:kind", h.AddEntry)
	app.Delete("/sessions/:id/entries/:kind/:ordinal", h.RemoveEntry)
	app.Put("/sessions/:id/entries/:entryID/fields", h.SetEntryFields)

	app.Put("/sessions/:id/personal", h.SetPersonal)
	app.Put("/sessions/:id/skills", h.SetSkills)
	app.Put("/sessions/:id/template", h.SelectTemplate)
	app.Put("/sessions/:id/document", h.ImportDocument)

	app.Post("/sessions/:id/input", h.Input)
	app.Post("/sessions/:id/preview", h.Preview)
	app.Post("/sessions/:id/export", h.Export)

	app.Get("/exports", h.ListExports)
	app.Get("/notifications", h.Notifications)
	app.Delete("/notifications/:id", h.DismissNotification)
}

func (h *Handler) session(c *fiber.Ctx) (*Session, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}
	h.mu.Lock()
	s, ok := h.sessions[id]
	h.mu.Unlock()
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "session not found")
	}
	return s, nil
}

func (h *Handler) CreateSession(c *fiber.Ctx) error {
	form := builder.NewForm()
	s := &Session{
		ID:         uuid.New(),
		Form:       form,
		Controller: builder.NewController(form, h.debounce, h.log),
		CreatedAt:  time.Now(),
	}
	h.mu.Lock()
	h.sessions[s.ID] = s
	h.mu.Unlock()

	h.log.Info().Str("session", s.ID.String()).Msg("session created")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":        s.ID.String(),
		"template":  s.Controller.Variant(),
		"work":      entryViews(form.Entries(builder.KindWork)),
		"education": entryViews(form.Entries(builder.KindEducation)),
	})
}

func (h *Handler) GetSession(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"id":        s.ID.String(),
		"template":  s.Controller.Variant(),
		"document":  s.Form.ReadDocument(),
		"work":      entryViews(s.Form.Entries(builder.KindWork)),
		"education": entryViews(s.Form.Entries(builder.KindEducation)),
	})
}

type entryView struct {
	ID      string `json:"id"`
	Ordinal int    `json:"ordinal"`
	Label   string `json:"label"`
}

func entryViews(entries []*builder.Entry) []entryView {
	out := make([]entryView, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryView{ID: e.ID.String(), Ordinal: e.Ordinal, Label: e.Label()})
	}
	return out
}

func (h *Handler) AddEntry(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	kind, ok := builder.ParseEntryKind(c.Params("kind"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "unknown entry kind")
	}
	ordinal, err := s.Form.AddEntry(kind)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	entries := s.Form.Entries(kind)
	added := entries[len(entries)-1]
	return c.Status(fiber.StatusCreated).JSON(entryView{
		ID:      added.ID.String(),
		Ordinal: ordinal,
		Label:   added.Label(),
	})
}

func (h *Handler) RemoveEntry(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	kind, ok := builder.ParseEntryKind(c.Params("kind"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "unknown entry kind")
	}
	ordinal, err := c.ParamsInt("ordinal")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid ordinal")
	}

	switch err := s.Form.RemoveEntry(kind, ordinal); {
	case err == nil:
	case errors.Is(err, builder.ErrCannotRemoveLastEntry):
		// a no-op by contract: report the unchanged list, not an error
	case errors.Is(err, builder.ErrNoSuchEntry):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	default:
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{string(kind): entryViews(s.Form.Entries(kind))})
}

func (h *Handler) SetEntryFields(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	entryID, err := uuid.Parse(c.Params("entryID"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid entry id")
	}
	var fields map[string]string
	if err := c.BodyParser(&fields); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	for name, value := range fields {
		if err := s.Form.SetEntryField(entryID, name, value); err != nil {
			if errors.Is(err, builder.ErrNoSuchEntry) {
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}
	s.Controller.NotifyInput()
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) SetPersonal(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	var fields map[string]string
	if err := c.BodyParser(&fields); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	for name, value := range fields {
		if err := s.Form.SetPersonalField(name, value); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}
	s.Controller.NotifyInput()
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) SetSkills(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	var body struct {
		Skills string `json:"skills"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	s.Form.SetSkills(body.Skills)
	s.Controller.NotifyInput()
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) SelectTemplate(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	var body struct {
		Template string `json:"template"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	variant, ok := model.ParseVariant(body.Template)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "unknown template")
	}
	s.Controller.SelectVariant(variant)
	return c.JSON(fiber.Map{"template": variant, "name": variant.DisplayName()})
}

// ImportDocument loads a whole document into the form after schema
// validation, replacing whatever was typed so far.
func (h *Handler) ImportDocument(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	doc, err := model.ParseDocument(c.Body())
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}
	s.Form.LoadDocument(doc)
	state := s.Controller.RefreshPreview()
	return c.JSON(previewResponse(state))
}

// Input is what a host binds debounced form events to; the refresh fires
// after the quiet window with the values as of the last event.
func (h *Handler) Input(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	s.Controller.NotifyInput()
	return c.SendStatus(fiber.StatusAccepted)
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	state := s.Controller.RefreshPreview()
	return c.JSON(previewResponse(state))
}

func previewResponse(state *builder.RenderState) fiber.Map {
	markup, err := render.HTML(state.Resume)
	if err != nil {
		markup = ""
	}
	return fiber.Map{
		"resume":       state.Resume,
		"html":         markup,
		"export_ready": state.ExportReady,
		"rendered_at":  state.RenderedAt,
	}
}

func (h *Handler) Export(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	var body struct {
		Filename string `json:"filename"`
	}
	_ = c.BodyParser(&body) // empty body means default filename

	// make sure any pending debounced edit is in the snapshot
	s.Controller.FlushPending()
	state := s.Controller.Last()
	if state == nil {
		state = s.Controller.RefreshPreview()
	}

	job, err := h.pipeline.Export(c.Context(), s.ID, state, body.Filename)
	switch {
	case errors.Is(err, export.ErrExportInProgress):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, export.ErrNotExportReady), errors.Is(err, export.ErrNothingToExport):
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	case err != nil:
		// failure already notified and recorded on the job
		return c.Status(fiber.StatusBadGateway).JSON(job)
	}
	return c.JSON(job)
}

func (h *Handler) ListExports(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"exports": h.pipeline.Jobs(), "busy": h.pipeline.Busy()})
}

func (h *Handler) Notifications(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"notifications": h.notify.Active(time.Now())})
}

func (h *Handler) DismissNotification(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid notification id")
	}
	if !h.notify.Dismiss(id) {
		return fiber.NewError(fiber.StatusNotFound, "notification not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
