package service

import (
	"context"
	"strings"
	"time"

	"travel-backoffice-be/internal/dto"
	"travel-backoffice-be/internal/entity"
	"travel-backoffice-be/internal/pkg/logger"
	"travel-backoffice-be/internal/pkg/metrics"
	"travel-backoffice-be/internal/pkg/serverutils"
	"travel-backoffice-be/internal/repository/specification"
	"travel-backoffice-be/internal/repository/unitofwork"
	"travel-backoffice-be/pkg/access"
	"travel-backoffice-be/pkg/events"
	"travel-backoffice-be/pkg/labels"
	"travel-backoffice-be/pkg/lifecycle"
	"travel-backoffice-be/pkg/numbering"
	"travel-backoffice-be/pkg/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const visaModule = "VisaService"

// MaxVisaDocumentSize is the upload limit for a single visa document.
const MaxVisaDocumentSize = 10 << 20

type IVisaService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.VisaApplicationRequest) (*dto.VisaApplicationResponse, error)
	Update(ctx context.Context, userId, appId uuid.UUID, req *dto.VisaApplicationRequest) (*dto.VisaApplicationResponse, error)
	Delete(ctx context.Context, userId, appId uuid.UUID) error
	Get(ctx context.Context, userId, appId uuid.UUID) (*dto.VisaApplicationResponse, error)
	List(ctx context.Context, userId uuid.UUID, q *dto.VisaListQuery) (*serverutils.PageData[dto.VisaApplicationResponse], error)

	Submit(ctx context.Context, userId, appId uuid.UUID, req *dto.SubmitVisaRequest) (*dto.VisaApplicationResponse, error)
	UpdateStatus(ctx context.Context, userId, appId uuid.UUID, req *dto.VisaStatusRequest) (*dto.VisaApplicationResponse, error)

	UploadDocument(ctx context.Context, userId, appId uuid.UUID, req *dto.UploadVisaDocumentRequest, file *dto.UploadedFile) (*dto.VisaDocumentResponse, error)
	ListDocuments(ctx context.Context, userId, appId uuid.UUID) ([]dto.VisaDocumentResponse, error)
	DownloadDocument(ctx context.Context, userId, appId, docId uuid.UUID) (*dto.FileResponse, error)
	DeleteDocument(ctx context.Context, userId, appId, docId uuid.UUID) error
	VerifyDocument(ctx context.Context, userId, appId, docId uuid.UUID, req *dto.VerifyDocumentRequest) (*dto.VisaDocumentResponse, error)

	Dashboard(ctx context.Context, userId uuid.UUID) (*dto.VisaDashboardResponse, error)
	Types() []labels.Choice
	Statuses() []labels.Choice
}

type visaService struct {
	uowFactory unitofwork.RepositoryFactory
	files      storage.Storage
	publisher  events.Publisher
	metrics    *metrics.Metrics
	log        logger.ILogger
}

func NewVisaService(
	uowFactory unitofwork.RepositoryFactory,
	files storage.Storage,
	publisher events.Publisher,
	m *metrics.Metrics,
	log logger.ILogger,
) IVisaService {
	return &visaService{
		uowFactory: uowFactory,
		files:      files,
		publisher:  publisher,
		metrics:    m,
		log:        log,
	}
}

func visaVisible(user *entity.User) specification.Specification {
	return specification.Accessible{Scope: access.Resolve(user.Viewer()), Column: "applied_by"}
}

func applyVisaRequest(app *entity.VisaApplication, req *dto.VisaApplicationRequest) error {
	travel, err := parseDate("travel_date", req.TravelDate)
	if err != nil {
		return err
	}
	ret, err := parseDate("return_date", req.ReturnDate)
	if err != nil {
		return err
	}
	if !ret.After(travel) {
		return serverutils.NewFieldError("return_date", "Return date must be after travel date.")
	}

	app.ApplicantName = req.ApplicantName
	app.PassportNumber = strings.ToUpper(strings.TrimSpace(req.PassportNumber))
	app.Nationality = req.Nationality
	app.DestinationCountry = req.DestinationCountry
	app.VisaType = entity.VisaType(req.VisaType)
	app.TravelDate = travel
	app.ReturnDate = ret
	app.PurposeOfVisit = req.PurposeOfVisit
	app.ProcessingFee = req.ProcessingFee
	app.EmbassyFee = req.EmbassyFee
	app.ServiceFee = req.ServiceFee
	app.Remarks = req.Remarks
	app.Recalculate()
	return nil
}

func toVisaDocumentResponse(d *entity.VisaDocument, files storage.Storage) dto.VisaDocumentResponse {
	return dto.VisaDocumentResponse{
		Id:           d.Id,
		DocumentType: string(d.DocumentType),
		FileName:     d.FileName,
		FileURL:      files.URL(d.FileKey),
		ContentType:  d.ContentType,
		SizeBytes:    d.SizeBytes,
		Description:  d.Description,
		IsVerified:   d.IsVerified,
		VerifiedBy:   d.VerifiedBy,
		VerifiedAt:   d.VerifiedAt,
		CreatedAt:    d.CreatedAt,
	}
}

func toVisaResponse(app *entity.VisaApplication, files storage.Storage) dto.VisaApplicationResponse {
	res := dto.VisaApplicationResponse{
		Id:                 app.Id,
		ApplicationNumber:  app.ApplicationNumber,
		ApplicantName:      app.ApplicantName,
		PassportNumber:     app.PassportNumber,
		Nationality:        app.Nationality,
		DestinationCountry: app.DestinationCountry,
		VisaType:           string(app.VisaType),
		TravelDate:         app.TravelDate.Format(dto.DateLayout),
		ReturnDate:         app.ReturnDate.Format(dto.DateLayout),
		PurposeOfVisit:     app.PurposeOfVisit,
		Status:             string(app.Status),
		StatusLabel:        labels.Label(string(app.Status)),
		ProcessingFee:      app.ProcessingFee,
		EmbassyFee:         app.EmbassyFee,
		ServiceFee:         app.ServiceFee,
		TotalFee:           app.TotalFee,
		AppliedBy:          app.AppliedBy,
		Remarks:            app.Remarks,
		ProcessedBy:        app.ProcessedBy,
		ProcessedAt:        app.ProcessedAt,
		SubmittedAt:        app.SubmittedAt,
		CreatedAt:          app.CreatedAt,
		UpdatedAt:          app.UpdatedAt,
	}
	for _, d := range app.Documents {
		res.Documents = append(res.Documents, toVisaDocumentResponse(d, files))
	}
	return res
}

func (s *visaService) findApplication(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User, appId uuid.UUID) (*entity.VisaApplication, error) {
	app, err := uow.VisaRepository().FindOne(ctx, specification.ByID{ID: appId}, visaVisible(user))
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, serverutils.NewNotFoundError("Visa application not found")
	}
	return app, nil
}

// findDraft returns the application only while it is still a draft; other
// states are reported as not found, matching the draft-only edit views.
func (s *visaService) findDraft(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User, appId uuid.UUID) (*entity.VisaApplication, error) {
	app, err := uow.VisaRepository().FindOne(ctx,
		specification.ByID{ID: appId},
		visaVisible(user),
		specification.ByStatus{Status: string(lifecycle.VisaDraft)},
	)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, serverutils.NewNotFoundError("Draft visa application not found")
	}
	return app, nil
}

func (s *visaService) Create(ctx context.Context, userId uuid.UUID, req *dto.VisaApplicationRequest) (*dto.VisaApplicationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	app := &entity.VisaApplication{
		Status:    lifecycle.Visa.Initial(),
		AppliedBy: user.Id,
	}
	if err := applyVisaRequest(app, req); err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.VisaRepository()
	app.ApplicationNumber, err = allocateNumber(ctx, numbering.PrefixVisa, repo.NumberExists)
	if err != nil {
		return nil, err
	}
	if err := repo.Create(ctx, app); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.metrics.EntityCreated("visa_application")
	s.log.Info(visaModule, "Visa application created", map[string]interface{}{
		"application_number": app.ApplicationNumber,
		"applied_by":         user.Id.String(),
	})
	publishEvent(ctx, s.publisher, s.log, visaModule, events.New(events.VisaCreated, map[string]interface{}{
		"application_id":     app.Id.String(),
		"application_number": app.ApplicationNumber,
	}))

	res := toVisaResponse(app, s.files)
	return &res, nil
}

func (s *visaService) Update(ctx context.Context, userId, appId uuid.UUID, req *dto.VisaApplicationRequest) (*dto.VisaApplicationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	app, err := s.findDraft(ctx, uow, user, appId)
	if err != nil {
		return nil, err
	}
	if err := applyVisaRequest(app, req); err != nil {
		return nil, err
	}
	if err := uow.VisaRepository().Update(ctx, app); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	res := toVisaResponse(app, s.files)
	return &res, nil
}

func (s *visaService) Delete(ctx context.Context, userId, appId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	app, err := s.findDraft(ctx, uow, user, appId)
	if err != nil {
		return err
	}
	docs, err := uow.VisaRepository().FindDocuments(ctx, app.Id)
	if err != nil {
		return err
	}
	if err := uow.VisaRepository().Delete(ctx, app.Id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	for _, d := range docs {
		discardFile(ctx, s.files, s.log, visaModule, &d.FileKey)
	}
	s.log.Info(visaModule, "Visa application deleted", map[string]interface{}{"application_number": app.ApplicationNumber})
	return nil
}

func (s *visaService) Get(ctx context.Context, userId, appId uuid.UUID) (*dto.VisaApplicationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	app, err := s.findApplication(ctx, uow, user, appId)
	if err != nil {
		return nil, err
	}
	app.Documents, err = uow.VisaRepository().FindDocuments(ctx, app.Id)
	if err != nil {
		return nil, err
	}
	res := toVisaResponse(app, s.files)
	return &res, nil
}

func (s *visaService) List(ctx context.Context, userId uuid.UUID, q *dto.VisaListQuery) (*serverutils.PageData[dto.VisaApplicationResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	filters := []specification.Specification{visaVisible(user)}
	if q.Status != "" {
		filters = append(filters, specification.ByStatus{Status: strings.ToLower(q.Status)})
	}
	if q.VisaType != "" {
		filters = append(filters, specification.Filter("visa_type", strings.ToLower(q.VisaType)))
	}
	if q.Search != "" {
		filters = append(filters, specification.TextSearch{
			Fields: []string{"application_number", "applicant_name", "passport_number", "destination_country"},
			Query:  q.Search,
		})
	}

	repo := uow.VisaRepository()
	total, err := repo.Count(ctx, filters...)
	if err != nil {
		return nil, err
	}
	page, size, paging := pageSpecs(q.PageQuery)
	apps, err := repo.FindAll(ctx, append(filters, paging...)...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.VisaApplicationResponse, 0, len(apps))
	for _, app := range apps {
		items = append(items, toVisaResponse(app, s.files))
	}
	return &serverutils.PageData[dto.VisaApplicationResponse]{Items: items, TotalCount: total, Page: page, PageSize: size}, nil
}

// Submit moves a draft to submitted once the required documents exist. The
// document check and the status write share one transaction.
func (s *visaService) Submit(ctx context.Context, userId, appId uuid.UUID, req *dto.SubmitVisaRequest) (*dto.VisaApplicationResponse, error) {
	if !req.Confirm {
		return nil, serverutils.NewFieldError("confirm", "Please confirm the submission.")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	app, err := s.findDraft(ctx, uow, user, appId)
	if err != nil {
		return nil, err
	}
	repo := uow.VisaRepository()
	app.Documents, err = repo.FindDocuments(ctx, app.Id)
	if err != nil {
		return nil, err
	}
	if missing := entity.MissingDocuments(app.Documents); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, m := range missing {
			names[i] = string(m)
		}
		msg := "Missing required documents: " + strings.Join(names, ", ")
		return nil, serverutils.NewValidationError(msg, map[string]string{"documents": msg})
	}

	if err := lifecycle.Visa.Transition(app.Status, lifecycle.VisaSubmitted); err != nil {
		return nil, transitionFailure(err)
	}
	now := time.Now()
	app.Status = lifecycle.VisaSubmitted
	app.SubmittedAt = &now
	docs := app.Documents
	if err := repo.Update(ctx, app); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	app.Documents = docs

	s.metrics.Transition("visa_application", string(lifecycle.VisaDraft), string(lifecycle.VisaSubmitted))
	s.log.Info(visaModule, "Visa application submitted", map[string]interface{}{
		"application_number": app.ApplicationNumber,
		"by":                 user.Id.String(),
	})
	publishEvent(ctx, s.publisher, s.log, visaModule, events.New(events.VisaSubmitted, map[string]interface{}{
		"application_id":     app.Id.String(),
		"application_number": app.ApplicationNumber,
	}))

	res := toVisaResponse(app, s.files)
	return &res, nil
}

func (s *visaService) UpdateStatus(ctx context.Context, userId, appId uuid.UUID, req *dto.VisaStatusRequest) (*dto.VisaApplicationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	if err := requireSuperAdmin(user); err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	app, err := s.findApplication(ctx, uow, user, appId)
	if err != nil {
		return nil, err
	}
	from, to := app.Status, lifecycle.State(req.Status)
	if err := lifecycle.VisaProcessing(from, to); err != nil {
		return nil, transitionFailure(err)
	}

	now := time.Now()
	processedBy := user.Id
	app.Status = to
	app.ProcessedBy = &processedBy
	app.ProcessedAt = &now
	if req.Remarks != "" {
		app.Remarks = req.Remarks
	}
	if err := uow.VisaRepository().Update(ctx, app); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.metrics.Transition("visa_application", string(from), string(to))
	s.log.Info(visaModule, "Visa status changed", map[string]interface{}{
		"application_number": app.ApplicationNumber,
		"from":               string(from),
		"to":                 string(to),
		"by":                 user.Id.String(),
	})
	publishEvent(ctx, s.publisher, s.log, visaModule, events.New(events.VisaStatusChanged, map[string]interface{}{
		"application_id":     app.Id.String(),
		"application_number": app.ApplicationNumber,
		"from":               string(from),
		"to":                 string(to),
	}))

	res := toVisaResponse(app, s.files)
	return &res, nil
}

func (s *visaService) UploadDocument(ctx context.Context, userId, appId uuid.UUID, req *dto.UploadVisaDocumentRequest, file *dto.UploadedFile) (*dto.VisaDocumentResponse, error) {
	if file != nil && len(file.Data) > MaxVisaDocumentSize {
		return nil, serverutils.NewFieldError("file", "File size cannot exceed 10MB.")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	app, err := s.findApplication(ctx, uow, user, appId)
	if err != nil {
		return nil, err
	}
	if !app.AcceptsDocuments() {
		return nil, serverutils.NewValidationError("Documents can only be uploaded to draft or submitted applications", nil)
	}

	key, err := storeUpload(ctx, s.files, "visa_documents/"+app.ApplicationNumber, file)
	if err != nil {
		return nil, err
	}

	doc := &entity.VisaDocument{
		VisaApplicationId: app.Id,
		DocumentType:      entity.DocumentType(req.DocumentType),
		FileKey:           key,
		FileName:          file.FileName,
		ContentType:       file.ContentType,
		SizeBytes:         int64(len(file.Data)),
		Description:       req.Description,
	}
	if err := uow.VisaRepository().CreateDocument(ctx, doc); err != nil {
		discardFile(ctx, s.files, s.log, visaModule, &key)
		return nil, err
	}

	s.log.Info(visaModule, "Visa document uploaded", map[string]interface{}{
		"application_number": app.ApplicationNumber,
		"document_type":      req.DocumentType,
		"size":               doc.SizeBytes,
	})
	res := toVisaDocumentResponse(doc, s.files)
	return &res, nil
}

func (s *visaService) ListDocuments(ctx context.Context, userId, appId uuid.UUID) ([]dto.VisaDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	app, err := s.findApplication(ctx, uow, user, appId)
	if err != nil {
		return nil, err
	}
	docs, err := uow.VisaRepository().FindDocuments(ctx, app.Id)
	if err != nil {
		return nil, err
	}

	out := make([]dto.VisaDocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toVisaDocumentResponse(d, s.files))
	}
	return out, nil
}

func (s *visaService) findDocument(ctx context.Context, uow unitofwork.UnitOfWork, app *entity.VisaApplication, docId uuid.UUID) (*entity.VisaDocument, error) {
	doc, err := uow.VisaRepository().FindDocument(ctx, app.Id, docId)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, serverutils.NewNotFoundError("Document not found")
	}
	return doc, nil
}

func (s *visaService) DownloadDocument(ctx context.Context, userId, appId, docId uuid.UUID) (*dto.FileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	app, err := s.findApplication(ctx, uow, user, appId)
	if err != nil {
		return nil, err
	}
	doc, err := s.findDocument(ctx, uow, app, docId)
	if err != nil {
		return nil, err
	}

	obj, err := s.files.Get(ctx, doc.FileKey)
	if err != nil {
		return nil, serverutils.NewNotFoundError("Document file not found")
	}
	return &dto.FileResponse{FileName: doc.FileName, ContentType: doc.ContentType, Data: obj.Data}, nil
}

func (s *visaService) DeleteDocument(ctx context.Context, userId, appId, docId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return err
	}
	app, err := s.findDraft(ctx, uow, user, appId)
	if err != nil {
		return err
	}
	doc, err := s.findDocument(ctx, uow, app, docId)
	if err != nil {
		return err
	}
	if err := uow.VisaRepository().DeleteDocument(ctx, doc.Id); err != nil {
		return err
	}
	discardFile(ctx, s.files, s.log, visaModule, &doc.FileKey)
	return nil
}

// VerifyDocument flips the verification flag; the application status is untouched.
func (s *visaService) VerifyDocument(ctx context.Context, userId, appId, docId uuid.UUID, req *dto.VerifyDocumentRequest) (*dto.VisaDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	if err := requireSuperAdmin(user); err != nil {
		return nil, err
	}
	app, err := s.findApplication(ctx, uow, user, appId)
	if err != nil {
		return nil, err
	}
	doc, err := s.findDocument(ctx, uow, app, docId)
	if err != nil {
		return nil, err
	}

	verified := true
	if req.IsVerified != nil {
		verified = *req.IsVerified
	}
	doc.IsVerified = verified
	if verified {
		now := time.Now()
		verifier := user.Id
		doc.VerifiedBy = &verifier
		doc.VerifiedAt = &now
	} else {
		doc.VerifiedBy = nil
		doc.VerifiedAt = nil
	}
	if err := uow.VisaRepository().UpdateDocument(ctx, doc); err != nil {
		return nil, err
	}

	s.log.Info(visaModule, "Visa document verification changed", map[string]interface{}{
		"application_number": app.ApplicationNumber,
		"document_id":        doc.Id.String(),
		"is_verified":        verified,
	})
	publishEvent(ctx, s.publisher, s.log, visaModule, events.New(events.VisaDocumentVerified, map[string]interface{}{
		"application_id": app.Id.String(),
		"document_id":    doc.Id.String(),
		"is_verified":    verified,
	}))

	res := toVisaDocumentResponse(doc, s.files)
	return &res, nil
}

func (s *visaService) Dashboard(ctx context.Context, userId uuid.UUID) (*dto.VisaDashboardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	visible := visaVisible(user)
	repo := uow.VisaRepository()

	byStatus, err := repo.GroupBy(ctx, "status", visible)
	if err != nil {
		return nil, err
	}
	byType, err := repo.GroupBy(ctx, "visa_type", visible)
	if err != nil {
		return nil, err
	}

	res := &dto.VisaDashboardResponse{
		ByStatus:   make(map[string]int64, len(entity.VisaStatuses)),
		ByVisaType: make(map[string]int64, len(entity.VisaTypes)),
		TotalFees:  decimal.Zero,
	}
	for _, st := range entity.VisaStatuses {
		res.ByStatus[string(st)] = 0
	}
	for _, vt := range entity.VisaTypes {
		res.ByVisaType[string(vt)] = 0
	}
	for _, agg := range byStatus {
		res.ByStatus[agg.Key] = agg.Count
		res.Total += agg.Count
		res.TotalFees = res.TotalFees.Add(agg.Total)
	}
	for _, agg := range byType {
		res.ByVisaType[agg.Key] = agg.Count
	}
	res.PendingReview = res.ByStatus[string(lifecycle.VisaSubmitted)] + res.ByStatus[string(lifecycle.VisaUnderReview)]
	return res, nil
}

func (s *visaService) Types() []labels.Choice {
	return labels.Choices(entity.VisaTypes)
}

func (s *visaService) Statuses() []labels.Choice {
	return labels.Choices(entity.VisaStatuses)
}
