package unitofwork

import (
	"context"
	"fmt"

	"travel-backoffice-be/internal/repository/contract"
	"travel-backoffice-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) BookingRepository() contract.BookingRepository {
	return implementation.NewBookingRepository(u.getDB())
}

func (u *UnitOfWorkImpl) QuickBookingRepository() contract.QuickBookingRepository {
	return implementation.NewQuickBookingRepository(u.getDB())
}

func (u *UnitOfWorkImpl) VisaRepository() contract.VisaRepository {
	return implementation.NewVisaRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PaymentRepository() contract.PaymentRepository {
	return implementation.NewPaymentRepository(u.getDB())
}

func (u *UnitOfWorkImpl) APIKeyRepository() contract.APIKeyRepository {
	return implementation.NewAPIKeyRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ContactRepository() contract.ContactRepository {
	return implementation.NewContactRepository(u.getDB())
}

func (u *UnitOfWorkImpl) EnquiryRepository() contract.EnquiryRepository {
	return implementation.NewEnquiryRepository(u.getDB())
}

func (u *UnitOfWorkImpl) LeadRepository() contract.LeadRepository {
	return implementation.NewLeadRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PackageRepository() contract.PackageRepository {
	return implementation.NewPackageRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PosterRepository() contract.PosterRepository {
	return implementation.NewPosterRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PlatformLeadRepository() contract.PlatformLeadRepository {
	return implementation.NewPlatformLeadRepository(u.getDB())
}
