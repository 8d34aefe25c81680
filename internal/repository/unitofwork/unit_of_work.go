package unitofwork

import (
	"context"

	"travel-backoffice-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository

	BookingRepository() contract.BookingRepository
	QuickBookingRepository() contract.QuickBookingRepository
	VisaRepository() contract.VisaRepository
	PaymentRepository() contract.PaymentRepository

	APIKeyRepository() contract.APIKeyRepository
	ContactRepository() contract.ContactRepository
	EnquiryRepository() contract.EnquiryRepository
	LeadRepository() contract.LeadRepository

	PackageRepository() contract.PackageRepository
	PosterRepository() contract.PosterRepository
	PlatformLeadRepository() contract.PlatformLeadRepository
}
