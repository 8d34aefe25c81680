package specification

import (
	"travel-backoffice-be/pkg/access"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Accessible restricts a query to the viewer's accessible set on Column.
type Accessible struct {
	Scope  access.Scope
	Column string
}

func (s Accessible) Apply(db *gorm.DB) *gorm.DB {
	return s.Scope.Apply(db, s.Column)
}

// AccessibleThrough restricts a query whose owner is reached via a foreign
// key into Table.
type AccessibleThrough struct {
	Scope       access.Scope
	ForeignKey  string
	Table       string
	OwnerColumn string
}

func (s AccessibleThrough) Apply(db *gorm.DB) *gorm.DB {
	return s.Scope.ApplyThrough(db, s.ForeignKey, s.Table, s.OwnerColumn)
}

type CatalogVisible struct {
	Scope access.CatalogScope
}

func (s CatalogVisible) Apply(db *gorm.DB) *gorm.DB {
	return s.Scope.Apply(db)
}

// EnquiryAddressedTo matches enquiries naming UserID as agency or franchise,
// or created by UserID.
type EnquiryAddressedTo struct {
	UserID uuid.UUID
}

func (s EnquiryAddressedTo) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(db.Session(&gorm.Session{NewDB: true}).
		Where("agency_id = ?", s.UserID).
		Or("franchise_id = ?", s.UserID).
		Or("created_by = ?", s.UserID))
}

type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
