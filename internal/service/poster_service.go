package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"travel-backoffice-be/internal/dto"
	"travel-backoffice-be/internal/entity"
	"travel-backoffice-be/internal/pkg/logger"
	"travel-backoffice-be/internal/pkg/serverutils"
	"travel-backoffice-be/internal/repository/specification"
	"travel-backoffice-be/internal/repository/unitofwork"
	"travel-backoffice-be/pkg/printing"
	"travel-backoffice-be/pkg/storage"

	"github.com/google/uuid"
)

const posterModule = "PosterService"

type IPosterService interface {
	ListTemplates(ctx context.Context, userId uuid.UUID) ([]dto.PosterTemplateResponse, error)
	CreateTemplate(ctx context.Context, userId uuid.UUID, req *dto.PosterTemplateRequest, background *dto.UploadedFile) (*dto.PosterTemplateResponse, error)
	UpdateTemplate(ctx context.Context, userId, templateId uuid.UUID, req *dto.PosterTemplateRequest, background *dto.UploadedFile) (*dto.PosterTemplateResponse, error)
	DeleteTemplate(ctx context.Context, userId, templateId uuid.UUID) error

	Generate(ctx context.Context, userId uuid.UUID, req *dto.GeneratePosterRequest) (*dto.GeneratePosterResponse, error)
	ListPosters(ctx context.Context, userId uuid.UUID) ([]dto.PackagePosterResponse, error)
	Download(ctx context.Context, userId, posterId uuid.UUID, format string) (*dto.FileResponse, error)
	DeletePoster(ctx context.Context, userId, posterId uuid.UUID) error
}

type posterService struct {
	uowFactory unitofwork.RepositoryFactory
	documents  IDocumentService
	files      storage.Storage
	log        logger.ILogger
}

func NewPosterService(
	uowFactory unitofwork.RepositoryFactory,
	documents IDocumentService,
	files storage.Storage,
	log logger.ILogger,
) IPosterService {
	return &posterService{
		uowFactory: uowFactory,
		documents:  documents,
		files:      files,
		log:        log,
	}
}

func posterContentType(f entity.PosterFormat) string {
	switch f {
	case entity.PosterJPG:
		return ContentTypeJPEG
	case entity.PosterPDF:
		return ContentTypePDF
	}
	return ContentTypePNG
}

func toTemplateResponse(t *entity.PosterTemplate, files storage.Storage) dto.PosterTemplateResponse {
	res := dto.PosterTemplateResponse{
		Id:           t.Id,
		Name:         t.Name,
		TemplateType: string(t.TemplateType),
		IsActive:     t.IsActive,
		CreatedAt:    t.CreatedAt,
	}
	if u := fileURL(files, &t.BackgroundImage); u != nil {
		res.BackgroundImage = *u
	}
	return res
}

func toPosterResponse(p *entity.PackagePoster, files storage.Storage) dto.PackagePosterResponse {
	res := dto.PackagePosterResponse{
		Id:          p.Id,
		PackageName: p.PackageName,
		PackageType: string(p.PackageType),
		Price:       p.Price,
		TemplateId:  p.TemplateId,
		Files:       map[string]string{},
		CreatedAt:   p.CreatedAt,
	}
	for _, f := range []entity.PosterFormat{entity.PosterPNG, entity.PosterJPG, entity.PosterPDF} {
		if u := fileURL(files, p.FileKey(f)); u != nil {
			res.Files[string(f)] = *u
		}
	}
	return res
}

func (s *posterService) ListTemplates(ctx context.Context, userId uuid.UUID) ([]dto.PosterTemplateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	specs := []specification.Specification{specification.OrderBy{Field: "name"}}
	if !user.Role.IsSuperAdmin() {
		specs = append(specs, specification.ActiveOnly{})
	}
	templates, err := uow.PosterRepository().FindTemplates(ctx, specs...)
	if err != nil {
		return nil, err
	}
	res := make([]dto.PosterTemplateResponse, 0, len(templates))
	for _, t := range templates {
		res = append(res, toTemplateResponse(t, s.files))
	}
	return res, nil
}

func (s *posterService) CreateTemplate(ctx context.Context, userId uuid.UUID, req *dto.PosterTemplateRequest, background *dto.UploadedFile) (*dto.PosterTemplateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	if err := requireSuperAdmin(user); err != nil {
		return nil, err
	}
	if background == nil {
		return nil, serverutils.NewFieldError("background_image", "A background image is required.")
	}

	key, err := storeUpload(ctx, s.files, "poster_templates", background)
	if err != nil {
		return nil, err
	}
	tpl := &entity.PosterTemplate{
		Name:            strings.TrimSpace(req.Name),
		TemplateType:    entity.PosterType(req.TemplateType),
		BackgroundImage: key,
		IsActive:        req.IsActive == nil || *req.IsActive,
	}
	if err := uow.PosterRepository().CreateTemplate(ctx, tpl); err != nil {
		discardFile(ctx, s.files, s.log, posterModule, &key)
		return nil, err
	}

	s.log.Info(posterModule, "Poster template created", map[string]interface{}{"template_id": tpl.Id.String()})
	res := toTemplateResponse(tpl, s.files)
	return &res, nil
}

func (s *posterService) findTemplate(ctx context.Context, uow unitofwork.UnitOfWork, templateId uuid.UUID, activeOnly bool) (*entity.PosterTemplate, error) {
	specs := []specification.Specification{specification.ByID{ID: templateId}}
	if activeOnly {
		specs = append(specs, specification.ActiveOnly{})
	}
	tpl, err := uow.PosterRepository().FindTemplate(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, serverutils.NewNotFoundError("Poster template not found")
	}
	return tpl, nil
}

func (s *posterService) UpdateTemplate(ctx context.Context, userId, templateId uuid.UUID, req *dto.PosterTemplateRequest, background *dto.UploadedFile) (*dto.PosterTemplateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	if err := requireSuperAdmin(user); err != nil {
		return nil, err
	}
	tpl, err := s.findTemplate(ctx, uow, templateId, false)
	if err != nil {
		return nil, err
	}

	tpl.Name = strings.TrimSpace(req.Name)
	tpl.TemplateType = entity.PosterType(req.TemplateType)
	if req.IsActive != nil {
		tpl.IsActive = *req.IsActive
	}
	previous := tpl.BackgroundImage
	if background != nil {
		key, err := storeUpload(ctx, s.files, "poster_templates", background)
		if err != nil {
			return nil, err
		}
		tpl.BackgroundImage = key
	}
	if err := uow.PosterRepository().UpdateTemplate(ctx, tpl); err != nil {
		return nil, err
	}
	if tpl.BackgroundImage != previous {
		discardFile(ctx, s.files, s.log, posterModule, &previous)
	}

	res := toTemplateResponse(tpl, s.files)
	return &res, nil
}

func (s *posterService) DeleteTemplate(ctx context.Context, userId, templateId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return err
	}
	if err := requireSuperAdmin(user); err != nil {
		return err
	}
	tpl, err := s.findTemplate(ctx, uow, templateId, false)
	if err != nil {
		return err
	}
	if err := uow.PosterRepository().DeleteTemplate(ctx, tpl.Id); err != nil {
		return err
	}
	discardFile(ctx, s.files, s.log, posterModule, &tpl.BackgroundImage)
	return nil
}

// Generate renders one rendition of the poster, stores it and returns the
// bytes inline as base64.
func (s *posterService) Generate(ctx context.Context, userId uuid.UUID, req *dto.GeneratePosterRequest) (*dto.GeneratePosterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	format := entity.PosterFormat(strings.ToLower(req.Format))
	if format == "" {
		format = entity.PosterPNG
	}

	view := printing.Poster{
		Company:     companyFor(user, s.files),
		PackageName: strings.TrimSpace(req.PackageName),
		PackageType: req.PackageType,
		Price:       req.Price,
		Features:    printing.FeaturesFor(req.PackageType),
		Theme:       printing.ThemeFor(req.PackageType),
	}
	if req.TemplateId != nil {
		tpl, err := s.findTemplate(ctx, uow, *req.TemplateId, true)
		if err != nil {
			return nil, err
		}
		view.BackgroundImage = s.files.URL(tpl.BackgroundImage)
	}

	var data []byte
	switch format {
	case entity.PosterPDF:
		data, err = s.documents.PDF(ctx, "poster", printing.TemplatePoster, view)
	case entity.PosterJPG:
		data, err = s.documents.Image(ctx, "poster", printing.TemplatePoster, view, printing.ImageJPEG, printing.PosterViewport)
	default:
		data, err = s.documents.Image(ctx, "poster", printing.TemplatePoster, view, printing.ImagePNG, printing.PosterViewport)
	}
	if err != nil {
		return nil, err
	}

	contentType := posterContentType(format)
	key := storage.NewKey("posters/"+user.Id.String(), "poster."+string(format))
	if err := s.files.Put(ctx, key, contentType, data); err != nil {
		return nil, serverutils.NewInternalError("Failed to store poster", err)
	}

	poster := &entity.PackagePoster{
		UserId:      user.Id,
		PackageName: view.PackageName,
		PackageType: entity.PosterType(req.PackageType),
		Price:       req.Price,
		TemplateId:  req.TemplateId,
	}
	switch format {
	case entity.PosterPDF:
		poster.PosterPdfKey = &key
	case entity.PosterJPG:
		poster.PosterJpgKey = &key
	default:
		poster.PosterPngKey = &key
	}
	if err := uow.PosterRepository().CreatePoster(ctx, poster); err != nil {
		discardFile(ctx, s.files, s.log, posterModule, &key)
		return nil, err
	}

	s.log.Info(posterModule, "Poster generated", map[string]interface{}{
		"poster_id": poster.Id.String(),
		"format":    string(format),
		"user_id":   user.Id.String(),
	})
	return &dto.GeneratePosterResponse{
		Poster:      toPosterResponse(poster, s.files),
		Format:      string(format),
		ContentType: contentType,
		Data:        base64.StdEncoding.EncodeToString(data),
	}, nil
}

func (s *posterService) ListPosters(ctx context.Context, userId uuid.UUID) ([]dto.PackagePosterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	posters, err := uow.PosterRepository().FindPosters(ctx,
		specification.Filter("user_id", user.Id),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	res := make([]dto.PackagePosterResponse, 0, len(posters))
	for _, p := range posters {
		res = append(res, toPosterResponse(p, s.files))
	}
	return res, nil
}

func (s *posterService) findPoster(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User, posterId uuid.UUID) (*entity.PackagePoster, error) {
	specs := []specification.Specification{specification.ByID{ID: posterId}}
	if !user.Role.IsSuperAdmin() {
		specs = append(specs, specification.Filter("user_id", user.Id))
	}
	poster, err := uow.PosterRepository().FindPoster(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if poster == nil {
		return nil, serverutils.NewNotFoundError("Poster not found")
	}
	return poster, nil
}

func (s *posterService) Download(ctx context.Context, userId, posterId uuid.UUID, format string) (*dto.FileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	poster, err := s.findPoster(ctx, uow, user, posterId)
	if err != nil {
		return nil, err
	}

	f := entity.PosterFormat(strings.ToLower(format))
	if f == "" {
		f = entity.PosterPNG
	}
	key := poster.FileKey(f)
	if key == nil || *key == "" {
		return nil, serverutils.NewNotFoundError(fmt.Sprintf("Poster is not available as %s", f))
	}
	obj, err := s.files.Get(ctx, *key)
	if err != nil {
		return nil, serverutils.NewNotFoundError("Poster file not found")
	}
	name := fmt.Sprintf("poster_%s.%s", strings.ReplaceAll(strings.ToLower(poster.PackageName), " ", "_"), f)
	return &dto.FileResponse{FileName: name, ContentType: posterContentType(f), Data: obj.Data}, nil
}

func (s *posterService) DeletePoster(ctx context.Context, userId, posterId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return err
	}
	poster, err := s.findPoster(ctx, uow, user, posterId)
	if err != nil {
		return err
	}
	if err := uow.PosterRepository().DeletePoster(ctx, poster.Id); err != nil {
		return err
	}
	for _, f := range []entity.PosterFormat{entity.PosterPNG, entity.PosterJPG, entity.PosterPDF} {
		discardFile(ctx, s.files, s.log, posterModule, poster.FileKey(f))
	}
	return nil
}
