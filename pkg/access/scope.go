// Package access implements the hierarchical row visibility rule shared by
// every tenant-owned resource.
//
// A superadmin sees everything. An accountant sees rows owned by itself and
// by the admin that created it. Every other role sees its own rows plus rows
// owned by accountants it created.
package access

import (
	"slices"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Viewer is the requesting user as far as visibility is concerned.
type Viewer struct {
	ID        uuid.UUID
	Role      Role
	CreatedBy *uuid.UUID
}

// OwnerRef describes the owner of a row for in-memory checks.
type OwnerRef struct {
	ID        uuid.UUID
	Role      Role
	CreatedBy *uuid.UUID
}

type kind int

const (
	kindAll kind = iota
	kindOwners
	kindOwnerOrAccountants
)

// Scope is the resolved accessible set for one viewer.
type Scope struct {
	kind      kind
	owners    []uuid.UUID
	principal uuid.UUID
}

// Resolve computes the accessible set for v. It is pure and deterministic.
func Resolve(v Viewer) Scope {
	switch v.Role {
	case RoleSuperAdmin:
		return Scope{kind: kindAll}
	case RoleAccountant:
		if v.CreatedBy != nil && *v.CreatedBy != uuid.Nil {
			return Scope{kind: kindOwners, owners: []uuid.UUID{*v.CreatedBy, v.ID}}
		}
		return Scope{kind: kindOwners, owners: []uuid.UUID{v.ID}}
	default:
		return Scope{kind: kindOwnerOrAccountants, principal: v.ID}
	}
}

func (s Scope) Unrestricted() bool {
	return s.kind == kindAll
}

// Owners returns the explicit owner set for accountant scopes, nil otherwise.
func (s Scope) Owners() []uuid.UUID {
	if s.kind != kindOwners {
		return nil
	}
	return slices.Clone(s.owners)
}

// Permits is the in-memory form of Apply: owner is in the accessible set.
func (s Scope) Permits(owner OwnerRef) bool {
	switch s.kind {
	case kindAll:
		return true
	case kindOwners:
		return slices.Contains(s.owners, owner.ID)
	default:
		if owner.ID == s.principal {
			return true
		}
		return owner.Role == RoleAccountant && owner.CreatedBy != nil && *owner.CreatedBy == s.principal
	}
}

var ownerColumns = map[string]bool{
	"created_by": true,
	"applied_by": true,
	"paid_by":    true,
	"user_id":    true,
}

// Apply restricts db to rows whose ownerColumn is in the accessible set.
// Unknown columns match nothing.
func (s Scope) Apply(db *gorm.DB, ownerColumn string) *gorm.DB {
	if s.kind == kindAll {
		return db
	}
	if !ownerColumns[ownerColumn] {
		return db.Where("1 = 0")
	}

	switch s.kind {
	case kindOwners:
		return db.Where(ownerColumn+" IN ?", s.owners)
	default:
		accountants := db.Session(&gorm.Session{NewDB: true}).
			Table("users").
			Select("id").
			Where("created_by = ? AND role = ?", s.principal, string(RoleAccountant))
		group := db.Session(&gorm.Session{NewDB: true}).
			Where(ownerColumn+" = ?", s.principal).
			Or(ownerColumn+" IN (?)", accountants)
		return db.Where(group)
	}
}

// ApplyThrough restricts db to rows whose fkColumn references a row of
// table that is itself owned by someone in the accessible set.
func (s Scope) ApplyThrough(db *gorm.DB, fkColumn, table, ownerColumn string) *gorm.DB {
	if s.kind == kindAll {
		return db
	}
	parents := s.Apply(db.Session(&gorm.Session{NewDB: true}).Table(table).Select("id"), ownerColumn)
	return db.Where(fkColumn+" IN (?)", parents)
}
