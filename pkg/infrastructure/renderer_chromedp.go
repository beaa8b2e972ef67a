package infrastructure

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// PDFOptions carries the page geometry handed to the print call. Margins
// are in inches; RenderScale oversamples the page for crisp output.
// ImageQuality only matters for raster fallbacks; Chrome's print path
// emits vector output.
type PDFOptions struct {
	MarginTop    float64
	MarginBottom float64
	ImageQuality float64
	RenderScale  int
	PageFormat   string
	Orientation  string
}

// DefaultPDFOptions matches the export contract: A4 portrait, half-inch
// top and bottom margins, 2x scale, jpeg quality 0.98.
func DefaultPDFOptions() PDFOptions {
	return PDFOptions{
		MarginTop:    0.5,
		MarginBottom: 0.5,
		ImageQuality: 0.98,
		RenderScale:  2,
		PageFormat:   "a4",
		Orientation:  "portrait",
	}
}

type ChromedpRenderer struct {
	opts PDFOptions
}

func NewChromedpRenderer(opts PDFOptions) *ChromedpRenderer {
	return &ChromedpRenderer{opts: opts}
}

func (r *ChromedpRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	ctx2, cancel2 := context.WithTimeout(cctx, 60*time.Second)
	defer cancel2()

	// chromedp navigates a file URL; styling is already inlined in the markup
	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	// A4: 210mm x 297mm -> inches: 8.27 x 11.69
	paperW, paperH := 8.27, 11.69
	if r.opts.Orientation == "landscape" {
		paperW, paperH = paperH, paperW
	}

	var pdfBuf []byte
	err = chromedp.Run(ctx2,
		// A4 viewport at 96dpi; device scale gives the oversampled output
		chromedp.EmulateViewport(794, 1123, chromedp.EmulateScale(float64(r.opts.RenderScale))),
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperW).
				WithPaperHeight(paperH).
				WithMarginTop(r.opts.MarginTop).
				WithMarginBottom(r.opts.MarginBottom).
				WithPreferCSSPageSize(false).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}
