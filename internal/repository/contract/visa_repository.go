package contract

import (
	"context"

	"travel-backoffice-be/internal/entity"
	"travel-backoffice-be/internal/repository/specification"

	"github.com/google/uuid"
)

type VisaRepository interface {
	Create(ctx context.Context, app *entity.VisaApplication) error
	Update(ctx context.Context, app *entity.VisaApplication) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.VisaApplication, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VisaApplication, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	NumberExists(ctx context.Context, number string) (bool, error)
	// GroupBy counts rows per value of column (status or visa_type).
	GroupBy(ctx context.Context, column string, specs ...specification.Specification) ([]Aggregate, error)

	CreateDocument(ctx context.Context, doc *entity.VisaDocument) error
	UpdateDocument(ctx context.Context, doc *entity.VisaDocument) error
	DeleteDocument(ctx context.Context, id uuid.UUID) error
	FindDocument(ctx context.Context, applicationId, documentId uuid.UUID) (*entity.VisaDocument, error)
	FindDocuments(ctx context.Context, applicationId uuid.UUID) ([]*entity.VisaDocument, error)
}
