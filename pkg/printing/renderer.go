// Package printing turns entity snapshots into HTML documents and renders
// them to PDF or raster images through a headless Chrome instance.
package printing

import (
	"context"
	"fmt"
)

type ErrorCode string

const (
	ErrCodeInvalidHTML     ErrorCode = "INVALID_HTML"
	ErrCodeInvalidFormat   ErrorCode = "INVALID_FORMAT"
	ErrCodeRenderFailed    ErrorCode = "RENDER_FAILED"
	ErrCodeRenderTimeout   ErrorCode = "RENDER_TIMEOUT"
	ErrCodeTemplateMissing ErrorCode = "TEMPLATE_MISSING"
)

type RenderError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func NewRenderError(code ErrorCode, message string, cause error) *RenderError {
	return &RenderError{Code: code, Message: message, Cause: cause}
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

type ImageFormat string

const (
	ImagePNG  ImageFormat = "png"
	ImageJPEG ImageFormat = "jpg"
)

// Viewport is the CSS pixel size an image is captured at.
type Viewport struct {
	Width  int64
	Height int64
}

// Renderer converts a complete HTML document into bytes.
type Renderer interface {
	PDF(ctx context.Context, html string) ([]byte, error)
	Image(ctx context.Context, html string, format ImageFormat, viewport Viewport) ([]byte, error)
	Close() error
}
