package service

import (
	"context"
	"fmt"

	"travel-backoffice-be/internal/dto"
	"travel-backoffice-be/internal/entity"
	"travel-backoffice-be/internal/pkg/logger"
	"travel-backoffice-be/internal/pkg/metrics"
	"travel-backoffice-be/internal/pkg/serverutils"
	"travel-backoffice-be/pkg/printing"
	"travel-backoffice-be/pkg/storage"
)

const documentModule = "DocumentService"

const (
	ContentTypePDF  = "application/pdf"
	ContentTypePNG  = "image/png"
	ContentTypeJPEG = "image/jpeg"
)

// IDocumentService renders receipts, certificates and posters. Failures are
// logged with their cause and surfaced as a generic 500.
type IDocumentService interface {
	PDF(ctx context.Context, kind, template string, data interface{}) ([]byte, error)
	Image(ctx context.Context, kind, template string, data interface{}, format printing.ImageFormat, viewport printing.Viewport) ([]byte, error)
}

type documentService struct {
	engine   *printing.Engine
	renderer printing.Renderer
	metrics  *metrics.Metrics
	log      logger.ILogger
}

func NewDocumentService(engine *printing.Engine, renderer printing.Renderer, m *metrics.Metrics, log logger.ILogger) IDocumentService {
	return &documentService{
		engine:   engine,
		renderer: renderer,
		metrics:  m,
		log:      log,
	}
}

func (s *documentService) PDF(ctx context.Context, kind, template string, data interface{}) ([]byte, error) {
	return s.generate(kind, func() ([]byte, error) {
		html, err := s.engine.Render(template, data)
		if err != nil {
			return nil, err
		}
		return s.renderer.PDF(ctx, html)
	})
}

func (s *documentService) Image(ctx context.Context, kind, template string, data interface{}, format printing.ImageFormat, viewport printing.Viewport) ([]byte, error) {
	return s.generate(kind, func() ([]byte, error) {
		html, err := s.engine.Render(template, data)
		if err != nil {
			return nil, err
		}
		return s.renderer.Image(ctx, html, format, viewport)
	})
}

func (s *documentService) generate(kind string, render func() ([]byte, error)) ([]byte, error) {
	out, err := render()
	s.metrics.DocumentGenerated(kind, err)
	if err != nil {
		s.log.Error(documentModule, "Document generation failed", map[string]interface{}{
			"kind":  kind,
			"error": err.Error(),
		})
		return nil, serverutils.NewInternalError(fmt.Sprintf("Failed to generate %s", kind), err)
	}
	return out, nil
}

// companyFor builds the letterhead for documents issued under user.
func companyFor(user *entity.User, files storage.Storage) printing.Company {
	p := user.CompanyProfile()
	c := printing.Company{
		Name:          p.Name,
		Address:       p.Address,
		Phone:         p.Phone,
		Email:         p.Email,
		LicenseNumber: p.LicenseNumber,
		Website:       p.Website,
	}
	if p.Logo != "" && files != nil {
		c.Logo = files.URL(p.Logo)
	}
	return c
}

func pdfFile(name string, data []byte) *dto.FileResponse {
	return &dto.FileResponse{FileName: name, ContentType: ContentTypePDF, Data: data}
}

// storeUpload writes an uploaded file under folder and returns its key.
func storeUpload(ctx context.Context, files storage.Storage, folder string, file *dto.UploadedFile) (string, error) {
	if file == nil || len(file.Data) == 0 {
		return "", serverutils.NewFieldError("file", "A file is required.")
	}
	key := storage.NewKey(folder, file.FileName)
	if err := files.Put(ctx, key, file.ContentType, file.Data); err != nil {
		return "", serverutils.NewInternalError("Failed to store file", err)
	}
	return key, nil
}

// discardFile removes a superseded object; failures are only logged.
func discardFile(ctx context.Context, files storage.Storage, log logger.ILogger, module string, key *string) {
	if key == nil || *key == "" {
		return
	}
	if err := files.Delete(ctx, *key); err != nil {
		log.Warn(module, "Failed to delete stored file", map[string]interface{}{"key": *key, "error": err.Error()})
	}
}

func fileURL(files storage.Storage, key *string) *string {
	if key == nil || *key == "" || files == nil {
		return nil
	}
	u := files.URL(*key)
	return &u
}
