package access

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogScope governs package visibility, which follows assignment as well
// as authorship: a row is visible when its creator or assignee is the viewer
// or one of the users the viewer provisioned.
type CatalogScope struct {
	all       bool
	principal uuid.UUID
	selfOnly  bool
}

func ResolveCatalog(v Viewer) CatalogScope {
	switch v.Role {
	case RoleSuperAdmin:
		return CatalogScope{all: true}
	case RoleFreelancer:
		return CatalogScope{principal: v.ID, selfOnly: true}
	default:
		return CatalogScope{principal: v.ID}
	}
}

func (s CatalogScope) Apply(db *gorm.DB) *gorm.DB {
	if s.all {
		return db
	}
	if s.selfOnly {
		return db.Where(db.Session(&gorm.Session{NewDB: true}).
			Where("assigned_to = ?", s.principal).
			Or("created_by = ?", s.principal))
	}

	members := db.Session(&gorm.Session{NewDB: true}).
		Table("users").
		Select("id").
		Where("id = ? OR created_by = ?", s.principal, s.principal)
	return db.Where(db.Session(&gorm.Session{NewDB: true}).
		Where("created_by IN (?)", members).
		Or("assigned_to IN (?)", members))
}
