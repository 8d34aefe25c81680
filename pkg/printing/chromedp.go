package printing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

const (
	defaultChromeTimeout = 30 * time.Second
	jpegQuality          = 90
	// A4 in inches
	a4Width  = 8.27
	a4Height = 11.69
)

type ChromedpConfig struct {
	// RemoteURL points at a running Chrome DevTools endpoint. When empty a
	// local headless browser is launched.
	RemoteURL string
	Timeout   time.Duration
	NoSandbox bool
	Logger    *zap.Logger
}

type ChromedpRenderer struct {
	config      ChromedpConfig
	logger      *zap.Logger
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

func NewChromedpRenderer(config ChromedpConfig) *ChromedpRenderer {
	if config.Timeout == 0 {
		config.Timeout = defaultChromeTimeout
	}
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := &ChromedpRenderer{config: config, logger: log}
	if config.RemoteURL != "" {
		r.allocCtx, r.allocCancel = chromedp.NewRemoteAllocator(context.Background(), config.RemoteURL)
		return r
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	if config.NoSandbox {
		opts = append(opts, chromedp.Flag("no-sandbox", true))
	}
	r.allocCtx, r.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
	return r
}

func (r *ChromedpRenderer) PDF(ctx context.Context, html string) ([]byte, error) {
	var out []byte
	err := r.run(ctx, html, nil, chromedp.ActionFunc(func(ctx context.Context) error {
		data, _, err := page.PrintToPDF().
			WithPrintBackground(true).
			WithPaperWidth(a4Width).
			WithPaperHeight(a4Height).
			WithMarginTop(0.4).
			WithMarginBottom(0.4).
			WithMarginLeft(0.4).
			WithMarginRight(0.4).
			Do(ctx)
		if err != nil {
			return err
		}
		out = data
		return nil
	}))
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, NewRenderError(ErrCodeRenderFailed, "generated PDF is empty", nil)
	}
	r.logger.Debug("pdf rendered", zap.Int("bytes", len(out)))
	return out, nil
}

func (r *ChromedpRenderer) Image(ctx context.Context, html string, format ImageFormat, viewport Viewport) ([]byte, error) {
	quality := 100
	switch format {
	case ImagePNG:
	case ImageJPEG:
		quality = jpegQuality
	default:
		return nil, NewRenderError(ErrCodeInvalidFormat, "unsupported image format: "+string(format), nil)
	}

	var out []byte
	err := r.run(ctx, html, &viewport, chromedp.FullScreenshot(&out, quality))
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, NewRenderError(ErrCodeRenderFailed, "generated image is empty", nil)
	}
	r.logger.Debug("image rendered", zap.String("format", string(format)), zap.Int("bytes", len(out)))
	return out, nil
}

// run loads html into a fresh tab and then executes capture.
func (r *ChromedpRenderer) run(ctx context.Context, html string, viewport *Viewport, capture chromedp.Action) error {
	if strings.TrimSpace(html) == "" {
		return NewRenderError(ErrCodeInvalidHTML, "HTML content is empty", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	tabCtx, tabCancel := chromedp.NewContext(r.allocCtx,
		chromedp.WithLogf(func(format string, args ...interface{}) {
			r.logger.Debug(fmt.Sprintf(format, args...))
		}),
	)
	defer tabCancel()

	// the tab must stop when the caller's deadline passes
	stop := context.AfterFunc(ctx, tabCancel)
	defer stop()

	actions := []chromedp.Action{}
	if viewport != nil && viewport.Width > 0 && viewport.Height > 0 {
		actions = append(actions, chromedp.EmulateViewport(viewport.Width, viewport.Height))
	}
	actions = append(actions,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		capture,
	)

	if err := chromedp.Run(tabCtx, actions...); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return NewRenderError(ErrCodeRenderTimeout, fmt.Sprintf("rendering timed out after %v", r.config.Timeout), err)
		}
		r.logger.Error("chromedp rendering failed", zap.Error(err))
		return NewRenderError(ErrCodeRenderFailed, "chromedp execution failed", err)
	}
	return nil
}

func (r *ChromedpRenderer) Close() error {
	if r.allocCancel != nil {
		r.allocCancel()
	}
	return nil
}

var _ Renderer = (*ChromedpRenderer)(nil)
