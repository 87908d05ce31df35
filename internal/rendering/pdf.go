package rendering

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// PrintOptions controls PDF output of the preview
type PrintOptions struct {
	Timeout     time.Duration // overall browser timeout, defaults to 60s
	PaperWidth  float64       // inches, defaults to US Letter
	PaperHeight float64       // inches
	ChromePath  string        // optional browser binary, falls back to CHROME_PATH
	Verbose     bool
}

func (o PrintOptions) withDefaults() PrintOptions {
	if o.Timeout == 0 {
		o.Timeout = 60 * time.Second
	}
	if o.PaperWidth == 0 || o.PaperHeight == 0 {
		o.PaperWidth, o.PaperHeight = 8.5, 11
	}
	if o.ChromePath == "" {
		o.ChromePath = os.Getenv("CHROME_PATH")
	}
	return o
}

// PrintPDF prints rendered preview HTML to PDF with a headless browser.
// Requires Chrome/Chromium to be installed on the system.
func PrintPDF(ctx context.Context, html string, opts PrintOptions) ([]byte, error) {
	opts = opts.withDefaults()

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if opts.ChromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ChromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, opts.Timeout)
	defer cancel()

	if opts.Verbose {
		log.Printf("[PRINT] Printing preview (%d bytes) to PDF", len(html))
	}

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(opts.PaperWidth).
				WithPaperHeight(opts.PaperHeight).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &PrintError{
			Message: "browser printing failed",
			Cause:   err,
		}
	}

	if opts.Verbose {
		log.Printf("[PRINT] Generated PDF: %d bytes", len(pdf))
	}
	return pdf, nil
}
