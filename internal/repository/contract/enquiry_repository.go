package contract

import (
	"context"
	"time"

	"travel-backoffice-be/internal/entity"
	"travel-backoffice-be/internal/repository/specification"

	"github.com/google/uuid"
)

type APIKeyRepository interface {
	Create(ctx context.Context, key *entity.APIKey) error
	Update(ctx context.Context, key *entity.APIKey) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.APIKey, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.APIKey, error)
	TouchLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error
}

type ContactRepository interface {
	Create(ctx context.Context, contact *entity.ContactUs) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ContactUs, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactUs, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *entity.Enquiry) error
	Update(ctx context.Context, enquiry *entity.Enquiry) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Enquiry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Enquiry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	Update(ctx context.Context, lead *entity.Lead) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Lead, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Lead, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	AddNote(ctx context.Context, note *entity.LeadNote) error
	FindNotes(ctx context.Context, leadId uuid.UUID) ([]*entity.LeadNote, error)
}
