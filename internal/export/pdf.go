package export

import (
	"context"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultPDFTimeout bounds a single PDF print
const DefaultPDFTimeout = 30 * time.Second

// PDFPrinter prints an HTML document to PDF
type PDFPrinter interface {
	PrintPDF(ctx context.Context, html string) ([]byte, error)
}

// ChromePrinter prints through a headless Chrome started per call.
// Requires Chrome/Chromium to be installed on the system.
type ChromePrinter struct {
	Timeout time.Duration
	Verbose bool
}

// NewChromePrinter creates a printer with the default timeout
func NewChromePrinter(verbose bool) *ChromePrinter {
	return &ChromePrinter{Timeout: DefaultPDFTimeout, Verbose: verbose}
}

// PrintPDF loads html into a blank page and prints it with backgrounds
func (p *ChromePrinter) PrintPDF(ctx context.Context, html string) ([]byte, error) {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultPDFTimeout
	}
	if p.Verbose {
		log.Printf("[PDF] Starting headless browser (%d bytes of HTML)", len(html))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, &ExportError{Message: "browser PDF printing failed", Cause: err}
	}

	if p.Verbose {
		log.Printf("[PDF] Printed %d bytes", len(pdf))
	}
	return pdf, nil
}
