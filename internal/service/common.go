package service

import (
	"context"
	"errors"
	"time"

	"travel-backoffice-be/internal/dto"
	"travel-backoffice-be/internal/entity"
	"travel-backoffice-be/internal/pkg/logger"
	"travel-backoffice-be/internal/pkg/serverutils"
	"travel-backoffice-be/internal/repository/specification"
	"travel-backoffice-be/internal/repository/unitofwork"
	"travel-backoffice-be/pkg/events"
	"travel-backoffice-be/pkg/lifecycle"
	"travel-backoffice-be/pkg/numbering"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var errNotFound = serverutils.NewNotFoundError("Not found")

// loadViewer resolves the authenticated caller. Call it before Begin: the
// lookup runs outside any transaction.
func loadViewer(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*entity.User, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, serverutils.NewUnauthorizedError("User not found or inactive")
	}
	return user, nil
}

func requireSuperAdmin(user *entity.User) error {
	if !user.Role.IsSuperAdmin() {
		return serverutils.NewForbiddenError("You do not have permission to perform this action")
	}
	return nil
}

// publishEvent is fire-and-forget: a broker outage never fails the request.
func publishEvent(ctx context.Context, publisher events.Publisher, log logger.ILogger, module string, evt events.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, evt); err != nil {
		log.Warn(module, "Failed to publish event", map[string]interface{}{
			"event": evt.EventType(),
			"error": err.Error(),
		})
	}
}

func pageSpecs(q dto.PageQuery) (page, size int, specs []specification.Specification) {
	page, size, offset := q.Normalize()
	return page, size, []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: size, Offset: offset},
	}
}

func monthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

func dayStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return time.Time{}, serverutils.NewFieldError(field, "Date must be in YYYY-MM-DD format.")
	}
	return t, nil
}

func decimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// transitionFailure turns a rejected state change into a 400 naming the pair.
func transitionFailure(err error) error {
	var te *lifecycle.TransitionError
	if errors.As(err, &te) {
		return serverutils.NewValidationError(te.Error(), map[string]string{"status": te.Error()})
	}
	return err
}

func allocateNumber(ctx context.Context, prefix string, exists numbering.ExistsFunc) (string, error) {
	number, err := numbering.Unique(ctx, prefix, exists)
	if err != nil {
		return "", serverutils.NewInternalError("Failed to allocate a reference number", err)
	}
	return number, nil
}
