package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"resume-builder/internal/builder"
	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

// Rasterizer turns a static markup subtree into a paginated PDF. The
// chromedp implementation lives in pkg/infrastructure; tests substitute
// a fake.
type Rasterizer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

var (
	// ErrExportInProgress is returned while a previous export has not
	// settled. Requests are refused, never queued.
	ErrExportInProgress = errors.New("an export is already in progress")

	// ErrNothingToExport means no preview has been rendered yet.
	ErrNothingToExport = errors.New("nothing rendered to export")

	// ErrNotExportReady means the required personal fields are missing.
	ErrNotExportReady = errors.New("document is not export ready")
)

const renderAttempts = 3

// Pipeline drives one export at a time: sanitize the rendered markup,
// hand it to the rasterizer, write the artifact, and surface the outcome
// as a transient notification. The busy flag is always cleared, whatever
// the outcome.
type Pipeline struct {
	mu     sync.Mutex
	busy   bool
	jobs   []*domain.ExportJob
	rast   Rasterizer
	notify *NotificationCenter
	outDir string
	log    zerolog.Logger

	retryBackoff time.Duration
}

func NewPipeline(r Rasterizer, notify *NotificationCenter, outDir string, log zerolog.Logger) *Pipeline {
	return &Pipeline{rast: r, notify: notify, outDir: outDir, log: log, retryBackoff: time.Second}
}

// Busy reports whether an export is currently pending. The host uses it
// to keep the export control disabled.
func (p *Pipeline) Busy() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.busy
}

// Jobs returns the recorded export jobs, newest last.
func (p *Pipeline) Jobs() []*domain.ExportJob {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*domain.ExportJob, len(p.jobs))
	copy(out, p.jobs)
	return out
}

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// Filename builds the download name: Resume_<sanitized-name>_<variant>.pdf,
// spaces replaced with underscores. An empty name falls back to MyResume.
func Filename(name string, variant model.TemplateVariant) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "MyResume"
	}
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilename.ReplaceAllString(name, "_")
	return fmt.Sprintf("Resume_%s_%s.pdf", name, variant)
}

// Export runs the pipeline against the last rendered state. filename may
// be empty to use the default pattern. A second call while one export is
// pending returns ErrExportInProgress.
func (p *Pipeline) Export(ctx context.Context, sessionID uuid.UUID, state *builder.RenderState, filename string) (*domain.ExportJob, error) {
	if state == nil || state.Resume == nil {
		return nil, ErrNothingToExport
	}
	if !state.ExportReady || strings.TrimSpace(state.Document.Personal.Name) == "" {
		return nil, ErrNotExportReady
	}

	p.mu.Lock()
	if p.busy {
		p.mu.Unlock()
		return nil, ErrExportInProgress
	}
	p.busy = true
	if filename == "" {
		filename = Filename(state.Document.Personal.Name, state.Variant)
	}
	job := &domain.ExportJob{
		ID:        uuid.New(),
		SessionID: sessionID,
		Variant:   state.Variant,
		Filename:  filename,
		Status:    domain.ExportPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	p.jobs = append(p.jobs, job)
	p.mu.Unlock()

	// the control is re-enabled after either outcome
	defer func() {
		p.mu.Lock()
		p.busy = false
		p.mu.Unlock()
	}()

	if err := p.run(ctx, state, job); err != nil {
		p.fail(job, err)
		return job, err
	}

	p.mu.Lock()
	job.Status = domain.ExportCompleted
	job.UpdatedAt = time.Now()
	p.mu.Unlock()

	p.notify.Push(NotifySuccess, fmt.Sprintf("Resume downloaded successfully! (%s template)", state.Variant))
	p.log.Info().Str("file", job.OutputPath).Str("variant", string(state.Variant)).Msg("export completed")
	return job, nil
}

func (p *Pipeline) run(ctx context.Context, state *builder.RenderState, job *domain.ExportJob) error {
	markup, err := render.HTML(state.Resume)
	if err != nil {
		return fmt.Errorf("render markup: %w", err)
	}
	markup, err = StripInteractive(markup)
	if err != nil {
		return fmt.Errorf("sanitize markup: %w", err)
	}

	pdf, err := p.rasterize(ctx, markup)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(p.outDir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	outPath := filepath.Join(p.outDir, job.Filename)
	if err := os.WriteFile(outPath, pdf, 0o644); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}

	p.mu.Lock()
	job.OutputPath = outPath
	p.mu.Unlock()
	return nil
}

// rasterize retries a flaky renderer with backoff and checks the output
// actually looks like a PDF before accepting it.
func (p *Pipeline) rasterize(ctx context.Context, markup string) ([]byte, error) {
	var lastErr error
	for i := 0; i < renderAttempts; i++ {
		pdf, err := p.rast.RenderHTMLToPDF(ctx, markup)
		if err == nil {
			if len(pdf) > 0 && strings.HasPrefix(string(pdf), "%PDF") {
				return pdf, nil
			}
			err = fmt.Errorf("invalid PDF output (len=%d)", len(pdf))
		}
		lastErr = err
		p.log.Warn().Int("attempt", i+1).Err(err).Msg("render attempt failed")
		if i < renderAttempts-1 {
			backoff := time.Duration(1<<i) * p.retryBackoff
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("rendering failed after %d attempts: %w", renderAttempts, lastErr)
}

func (p *Pipeline) fail(job *domain.ExportJob, err error) {
	p.mu.Lock()
	job.Status = domain.ExportFailed
	job.Error = err.Error()
	job.UpdatedAt = time.Now()
	p.mu.Unlock()

	p.notify.Push(NotifyError, "Error generating PDF. Please try again.")
	p.log.Error().Err(err).Str("job", job.ID.String()).Msg("export failed")
}
