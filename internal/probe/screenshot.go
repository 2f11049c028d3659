package probe

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"
)

type Options struct {
	URL     string
	OutPath string
	Timeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.URL == "" {
		o.URL = "http://localhost:5173/"
	}
	if o.OutPath == "" {
		o.OutPath = filepath.Join("verification", "verification.png")
	}
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	return o
}

// Capture launches a headless browser, navigates to the URL and writes a
// PNG screenshot of the viewport. The browser is torn down on every path.
func Capture(ctx context.Context, opts Options) error {
	opts = opts.withDefaults()

	actx, acancel := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer acancel()
	bctx, bcancel := chromedp.NewContext(actx)
	defer bcancel()
	bctx, tcancel := context.WithTimeout(bctx, opts.Timeout)
	defer tcancel()

	var png []byte
	err := chromedp.Run(bctx,
		chromedp.Navigate(opts.URL),
		chromedp.CaptureScreenshot(&png),
	)
	if err != nil {
		return fmt.Errorf("capture %s: %w", opts.URL, err)
	}

	if dir := filepath.Dir(opts.OutPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(opts.OutPath, png, 0o644); err != nil {
		return err
	}
	log.Printf(`{"msg":"screenshot-saved","url":%q,"path":%q,"bytes":%d}`, opts.URL, opts.OutPath, len(png))
	return nil
}
