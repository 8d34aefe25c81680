package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"travel-backoffice-be/internal/dto"
	"travel-backoffice-be/internal/entity"
	"travel-backoffice-be/internal/pkg/logger"
	"travel-backoffice-be/internal/pkg/metrics"
	"travel-backoffice-be/internal/pkg/serverutils"
	"travel-backoffice-be/internal/repository/memory"
	"travel-backoffice-be/internal/repository/specification"
	"travel-backoffice-be/internal/repository/unitofwork"
	"travel-backoffice-be/pkg/access"
	"travel-backoffice-be/pkg/events"

	"github.com/google/uuid"
)

const enquiryModule = "EnquiryService"

const apiKeyBytes = 20

type IEnquiryService interface {
	// API keys
	CreateKey(ctx context.Context, userId uuid.UUID, req *dto.APIKeyRequest) (*dto.APIKeyResponse, error)
	ListKeys(ctx context.Context, userId uuid.UUID) ([]dto.APIKeyResponse, error)
	ToggleKey(ctx context.Context, userId, keyId uuid.UUID) (*dto.APIKeyResponse, error)
	DeleteKey(ctx context.Context, userId, keyId uuid.UUID) error
	Authenticate(ctx context.Context, key string) (*entity.APIKey, error)
	ValidateKey(ctx context.Context, key *entity.APIKey) (*dto.ValidateKeyResponse, error)

	// External contact intake
	SubmitContact(ctx context.Context, key *entity.APIKey, req *dto.ContactRequest) (*dto.ContactResponse, error)
	ListContacts(ctx context.Context, userId uuid.UUID, q *dto.ContactListQuery) (*dto.ContactListResponse, error)
	GetContact(ctx context.Context, userId, contactId uuid.UUID) (*dto.ContactResponse, error)
	DeleteContact(ctx context.Context, userId, contactId uuid.UUID) error

	// Authenticated enquiry form
	CreateEnquiry(ctx context.Context, userId uuid.UUID, req *dto.EnquiryRequest) (*dto.EnquiryResponse, error)
	ListEnquiries(ctx context.Context, userId uuid.UUID, q *dto.EnquiryListQuery) (*serverutils.PageData[dto.EnquiryResponse], error)
	GetEnquiry(ctx context.Context, userId, enquiryId uuid.UUID) (*dto.EnquiryResponse, error)
	DeleteEnquiry(ctx context.Context, userId, enquiryId uuid.UUID) error
}

type enquiryService struct {
	uowFactory unitofwork.RepositoryFactory
	bus        IPublisherService
	publisher  events.Publisher
	keys       *memory.APIKeyCache
	metrics    *metrics.Metrics
	log        logger.ILogger
	now        func() time.Time
}

func NewEnquiryService(
	uowFactory unitofwork.RepositoryFactory,
	bus IPublisherService,
	publisher events.Publisher,
	m *metrics.Metrics,
	log logger.ILogger,
) IEnquiryService {
	return &enquiryService{
		uowFactory: uowFactory,
		bus:        bus,
		publisher:  publisher,
		keys:       memory.NewAPIKeyCache(5 * time.Minute),
		metrics:    m,
		log:        log,
		now:        time.Now,
	}
}

func toAPIKeyResponse(k *entity.APIKey) dto.APIKeyResponse {
	return dto.APIKeyResponse{
		Id:         k.Id,
		Name:       k.Name,
		Key:        k.Key,
		WebsiteURL: k.WebsiteURL,
		IsActive:   k.IsActive,
		LastUsed:   k.LastUsed,
		CreatedAt:  k.CreatedAt,
	}
}

func toContactResponse(c *entity.ContactUs) dto.ContactResponse {
	return dto.ContactResponse{
		Id:                c.Id,
		Name:              c.Name,
		Email:             c.Email,
		Phone:             c.Phone,
		Subject:           c.Subject,
		Message:           c.Message,
		ApiKeyId:          c.ApiKeyId,
		SubmittedByUserId: c.SubmittedByUserId,
		CreatedAt:         c.CreatedAt,
	}
}

func toEnquiryResponse(e *entity.Enquiry) dto.EnquiryResponse {
	return dto.EnquiryResponse{
		Id:          e.Id,
		Name:        e.Name,
		Email:       e.Email,
		Phone:       e.Phone,
		Message:     e.Message,
		Place:       e.Place,
		AgencyId:    e.AgencyId,
		FranchiseId: e.FranchiseId,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
	}
}

// contactVisible scopes submissions through the owner of the API key they
// arrived on.
func contactVisible(user *entity.User) specification.Specification {
	return specification.AccessibleThrough{
		Scope:       access.Resolve(user.Viewer()),
		ForeignKey:  "api_key_id",
		Table:       "api_keys",
		OwnerColumn: "user_id",
	}
}

func enquiryVisible(user *entity.User) specification.Specification {
	if user.Role.IsSuperAdmin() {
		return specification.Accessible{Scope: access.Resolve(user.Viewer()), Column: "created_by"}
	}
	return specification.EnquiryAddressedTo{UserID: user.Id}
}

// API keys

func (s *enquiryService) CreateKey(ctx context.Context, userId uuid.UUID, req *dto.APIKeyRequest) (*dto.APIKeyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	raw, err := generateOpaqueToken(apiKeyBytes)
	if err != nil {
		return nil, serverutils.NewInternalError("Failed to generate API key", err)
	}
	key := &entity.APIKey{
		UserId:     user.Id,
		Name:       strings.TrimSpace(req.Name),
		Key:        raw,
		WebsiteURL: strings.TrimSpace(req.WebsiteURL),
		IsActive:   true,
	}
	if err := uow.APIKeyRepository().Create(ctx, key); err != nil {
		return nil, err
	}

	s.log.Info(enquiryModule, "API key created", map[string]interface{}{
		"api_key_id": key.Id.String(),
		"user_id":    user.Id.String(),
	})
	res := toAPIKeyResponse(key)
	return &res, nil
}

func (s *enquiryService) ListKeys(ctx context.Context, userId uuid.UUID) ([]dto.APIKeyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	keys, err := uow.APIKeyRepository().FindAll(ctx,
		specification.Filter("user_id", user.Id),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	res := make([]dto.APIKeyResponse, 0, len(keys))
	for _, k := range keys {
		res = append(res, toAPIKeyResponse(k))
	}
	return res, nil
}

func (s *enquiryService) ownKey(ctx context.Context, uow unitofwork.UnitOfWork, userId, keyId uuid.UUID) (*entity.APIKey, error) {
	key, err := uow.APIKeyRepository().FindOne(ctx, specification.ByID{ID: keyId}, specification.Filter("user_id", userId))
	if err != nil {
		return nil, err
	}
	if key == nil {
		return nil, serverutils.NewNotFoundError("API key not found")
	}
	return key, nil
}

func (s *enquiryService) ToggleKey(ctx context.Context, userId, keyId uuid.UUID) (*dto.APIKeyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	key, err := s.ownKey(ctx, uow, user.Id, keyId)
	if err != nil {
		return nil, err
	}
	key.IsActive = !key.IsActive
	if err := uow.APIKeyRepository().Update(ctx, key); err != nil {
		return nil, err
	}
	s.keys.Delete(key.Key)

	s.log.Info(enquiryModule, "API key toggled", map[string]interface{}{
		"api_key_id": key.Id.String(),
		"is_active":  key.IsActive,
	})
	res := toAPIKeyResponse(key)
	return &res, nil
}

func (s *enquiryService) DeleteKey(ctx context.Context, userId, keyId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return err
	}
	key, err := s.ownKey(ctx, uow, user.Id, keyId)
	if err != nil {
		return err
	}
	if err := uow.APIKeyRepository().Delete(ctx, key.Id); err != nil {
		return err
	}
	s.keys.Delete(key.Key)
	return nil
}

// Authenticate resolves an active key and stamps last_used. It returns
// nil, nil for unknown or inactive keys.
func (s *enquiryService) Authenticate(ctx context.Context, raw string) (*entity.APIKey, error) {
	var key *entity.APIKey
	if cached, ok := s.keys.Get(raw); ok {
		key = cached
	} else {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		found, err := uow.APIKeyRepository().FindOne(ctx, specification.Filter("key", raw), specification.ActiveOnly{})
		if err != nil {
			return nil, err
		}
		if found == nil {
			return nil, nil
		}
		key = found
		s.keys.Save(key)
	}

	now := s.now()
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.APIKeyRepository().TouchLastUsed(ctx, key.Id, now); err != nil {
		s.log.Warn(enquiryModule, "Failed to stamp API key usage", map[string]interface{}{
			"api_key_id": key.Id.String(),
			"error":      err.Error(),
		})
	}

	stamped := *key
	stamped.LastUsed = &now
	return &stamped, nil
}

func (s *enquiryService) ValidateKey(ctx context.Context, key *entity.APIKey) (*dto.ValidateKeyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	owner, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: key.UserId})
	if err != nil {
		return nil, err
	}
	res := &dto.ValidateKeyResponse{
		Valid:      true,
		ApiKeyName: key.Name,
		WebsiteURL: key.WebsiteURL,
	}
	if owner != nil {
		res.User = owner.Username
	}
	return res, nil
}

// Contact submissions

func (s *enquiryService) SubmitContact(ctx context.Context, key *entity.APIKey, req *dto.ContactRequest) (*dto.ContactResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	keyId, ownerId := key.Id, key.UserId
	contact := &entity.ContactUs{
		Name:              strings.TrimSpace(req.Name),
		Email:             normalizeEmail(req.Email),
		Phone:             strings.TrimSpace(req.Phone),
		Subject:           strings.TrimSpace(req.Subject),
		Message:           req.Message,
		ApiKeyId:          &keyId,
		SubmittedByUserId: &ownerId,
	}
	if err := uow.ContactRepository().Create(ctx, contact); err != nil {
		return nil, err
	}

	s.metrics.EnquiryIngested("api_key")
	s.log.Info(enquiryModule, "Contact submission received", map[string]interface{}{
		"contact_id": contact.Id.String(),
		"api_key_id": keyId.String(),
		"owner_id":   ownerId.String(),
	})

	payload, err := json.Marshal(dto.ContactSubmittedMessage{ContactId: contact.Id, ApiKeyId: keyId})
	if err == nil && s.bus != nil {
		err = s.bus.Publish(ctx, payload)
	}
	if err != nil {
		s.log.Warn(enquiryModule, "Failed to queue owner notification", map[string]interface{}{
			"contact_id": contact.Id.String(),
			"error":      err.Error(),
		})
	}
	publishEvent(ctx, s.publisher, s.log, enquiryModule, events.New(events.ContactReceived, map[string]interface{}{
		"contact_id": contact.Id.String(),
		"owner_id":   ownerId.String(),
	}))

	res := toContactResponse(contact)
	return &res, nil
}

func (s *enquiryService) ListContacts(ctx context.Context, userId uuid.UUID, q *dto.ContactListQuery) (*dto.ContactListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	filters := []specification.Specification{contactVisible(user)}
	if q.Search != "" {
		filters = append(filters, specification.TextSearch{Fields: []string{"name", "email", "phone", "subject"}, Query: q.Search})
	}

	repo := uow.ContactRepository()
	total, err := repo.Count(ctx, filters...)
	if err != nil {
		return nil, err
	}
	_, _, paging := pageSpecs(q.PageQuery)
	contacts, err := repo.FindAll(ctx, append(filters, paging...)...)
	if err != nil {
		return nil, err
	}

	res := &dto.ContactListResponse{TotalCount: total, Data: make([]dto.ContactResponse, 0, len(contacts))}
	for _, c := range contacts {
		res.Data = append(res.Data, toContactResponse(c))
	}
	return res, nil
}

func (s *enquiryService) findContact(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User, contactId uuid.UUID) (*entity.ContactUs, error) {
	contact, err := uow.ContactRepository().FindOne(ctx, specification.ByID{ID: contactId}, contactVisible(user))
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, serverutils.NewNotFoundError("Contact submission not found")
	}
	return contact, nil
}

func (s *enquiryService) GetContact(ctx context.Context, userId, contactId uuid.UUID) (*dto.ContactResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	contact, err := s.findContact(ctx, uow, user, contactId)
	if err != nil {
		return nil, err
	}
	res := toContactResponse(contact)
	return &res, nil
}

func (s *enquiryService) DeleteContact(ctx context.Context, userId, contactId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return err
	}
	contact, err := s.findContact(ctx, uow, user, contactId)
	if err != nil {
		return err
	}
	return uow.ContactRepository().Delete(ctx, contact.Id)
}

// Enquiries

func (s *enquiryService) CreateEnquiry(ctx context.Context, userId uuid.UUID, req *dto.EnquiryRequest) (*dto.EnquiryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	for field, id := range map[string]*uuid.UUID{"agency": req.AgencyId, "franchise": req.FranchiseId} {
		if id == nil {
			continue
		}
		target, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: *id})
		if err != nil {
			return nil, err
		}
		if target == nil {
			return nil, serverutils.NewFieldError(field, "User does not exist.")
		}
	}

	creator := user.Id
	enquiry := &entity.Enquiry{
		Name:        strings.TrimSpace(req.Name),
		Email:       normalizeEmail(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		Message:     req.Message,
		Place:       strings.TrimSpace(req.Place),
		AgencyId:    req.AgencyId,
		FranchiseId: req.FranchiseId,
		CreatedBy:   &creator,
	}
	if err := uow.EnquiryRepository().Create(ctx, enquiry); err != nil {
		return nil, err
	}

	s.metrics.EnquiryIngested("form")
	s.log.Info(enquiryModule, "Enquiry created", map[string]interface{}{
		"enquiry_id": enquiry.Id.String(),
		"created_by": creator.String(),
	})
	publishEvent(ctx, s.publisher, s.log, enquiryModule, events.New(events.EnquiryCreated, map[string]interface{}{
		"enquiry_id": enquiry.Id.String(),
	}))

	res := toEnquiryResponse(enquiry)
	return &res, nil
}

func (s *enquiryService) ListEnquiries(ctx context.Context, userId uuid.UUID, q *dto.EnquiryListQuery) (*serverutils.PageData[dto.EnquiryResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	filters := []specification.Specification{enquiryVisible(user)}
	if q.Search != "" {
		filters = append(filters, specification.TextSearch{Fields: []string{"name", "email", "phone", "place"}, Query: q.Search})
	}

	repo := uow.EnquiryRepository()
	total, err := repo.Count(ctx, filters...)
	if err != nil {
		return nil, err
	}
	page, size, paging := pageSpecs(q.PageQuery)
	enquiries, err := repo.FindAll(ctx, append(filters, paging...)...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.EnquiryResponse, 0, len(enquiries))
	for _, e := range enquiries {
		items = append(items, toEnquiryResponse(e))
	}
	return &serverutils.PageData[dto.EnquiryResponse]{Items: items, TotalCount: total, Page: page, PageSize: size}, nil
}

func (s *enquiryService) findEnquiry(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User, enquiryId uuid.UUID) (*entity.Enquiry, error) {
	enquiry, err := uow.EnquiryRepository().FindOne(ctx, specification.ByID{ID: enquiryId}, enquiryVisible(user))
	if err != nil {
		return nil, err
	}
	if enquiry == nil {
		return nil, serverutils.NewNotFoundError("Enquiry not found")
	}
	return enquiry, nil
}

func (s *enquiryService) GetEnquiry(ctx context.Context, userId, enquiryId uuid.UUID) (*dto.EnquiryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	enquiry, err := s.findEnquiry(ctx, uow, user, enquiryId)
	if err != nil {
		return nil, err
	}
	res := toEnquiryResponse(enquiry)
	return &res, nil
}

// DeleteEnquiry is limited to the creator and superadmin.
func (s *enquiryService) DeleteEnquiry(ctx context.Context, userId, enquiryId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return err
	}
	enquiry, err := s.findEnquiry(ctx, uow, user, enquiryId)
	if err != nil {
		return err
	}
	if !user.Role.IsSuperAdmin() && (enquiry.CreatedBy == nil || *enquiry.CreatedBy != user.Id) {
		return serverutils.NewForbiddenError("Only the creator can delete this enquiry")
	}
	return uow.EnquiryRepository().Delete(ctx, enquiry.Id)
}
