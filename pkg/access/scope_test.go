package access_test

import (
	"testing"

	"travel-backoffice-be/pkg/access"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type scopeUser struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role      string
	CreatedBy *uuid.UUID `gorm:"type:uuid"`
}

func (scopeUser) TableName() string { return "users" }

type scopeRecord struct {
	Id         uint `gorm:"primaryKey"`
	CreatedBy  uuid.UUID
	AssignedTo *uuid.UUID
}

func (scopeRecord) TableName() string { return "records" }

type fixture struct {
	db         *gorm.DB
	super      scopeUser
	agency     scopeUser
	accountant scopeUser
	sibling    scopeUser
	franchise  scopeUser
	stranger   scopeUser
	orphan     scopeUser
	byID       map[uuid.UUID]scopeUser
}

func ptr(id uuid.UUID) *uuid.UUID { return &id }

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&scopeUser{}, &scopeRecord{}))

	f := &fixture{db: db, byID: map[uuid.UUID]scopeUser{}}
	f.super = scopeUser{Id: uuid.New(), Role: "superadmin"}
	f.agency = scopeUser{Id: uuid.New(), Role: "agencyadmin"}
	f.accountant = scopeUser{Id: uuid.New(), Role: "accountant", CreatedBy: ptr(f.agency.Id)}
	f.sibling = scopeUser{Id: uuid.New(), Role: "accountant", CreatedBy: ptr(f.agency.Id)}
	f.franchise = scopeUser{Id: uuid.New(), Role: "franchisesadmin", CreatedBy: ptr(f.agency.Id)}
	f.stranger = scopeUser{Id: uuid.New(), Role: "freelancer"}
	f.orphan = scopeUser{Id: uuid.New(), Role: "accountant"}

	for _, u := range []scopeUser{f.super, f.agency, f.accountant, f.sibling, f.franchise, f.stranger, f.orphan} {
		require.NoError(t, db.Create(&u).Error)
		f.byID[u.Id] = u
		require.NoError(t, db.Create(&scopeRecord{CreatedBy: u.Id}).Error)
	}
	return f
}

func (f *fixture) viewer(u scopeUser) access.Viewer {
	return access.Viewer{ID: u.Id, Role: access.Role(u.Role), CreatedBy: u.CreatedBy}
}

func (f *fixture) visibleOwners(t *testing.T, s access.Scope) []uuid.UUID {
	t.Helper()
	var rows []scopeRecord
	require.NoError(t, s.Apply(f.db.Model(&scopeRecord{}), "created_by").Find(&rows).Error)
	owners := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		owners = append(owners, r.CreatedBy)
	}
	return owners
}

func TestResolve_VisibleSets(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		viewer scopeUser
		want   []uuid.UUID
	}{
		{"superadmin sees everything", f.super, []uuid.UUID{f.super.Id, f.agency.Id, f.accountant.Id, f.sibling.Id, f.franchise.Id, f.stranger.Id, f.orphan.Id}},
		{"agency admin sees self and its accountants", f.agency, []uuid.UUID{f.agency.Id, f.accountant.Id, f.sibling.Id}},
		{"accountant sees parent and self only", f.accountant, []uuid.UUID{f.agency.Id, f.accountant.Id}},
		{"franchise without accountants is self only", f.franchise, []uuid.UUID{f.franchise.Id}},
		{"orphaned accountant degrades to self", f.orphan, []uuid.UUID{f.orphan.Id}},
		{"freelancer is self only", f.stranger, []uuid.UUID{f.stranger.Id}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := access.Resolve(f.viewer(tt.viewer))
			assert.ElementsMatch(t, tt.want, f.visibleOwners(t, scope))
		})
	}
}

func TestScope_PermitsAgreesWithApply(t *testing.T) {
	f := newFixture(t)

	for _, viewer := range f.byID {
		scope := access.Resolve(f.viewer(viewer))
		visible := f.visibleOwners(t, scope)
		for _, owner := range f.byID {
			ref := access.OwnerRef{ID: owner.Id, Role: access.Role(owner.Role), CreatedBy: owner.CreatedBy}
			assert.Equal(t, contains(visible, owner.Id), scope.Permits(ref),
				"viewer %s (%s) owner %s (%s)", viewer.Id, viewer.Role, owner.Id, owner.Role)
		}
	}
}

func TestScope_ApplyIsIdempotent(t *testing.T) {
	f := newFixture(t)
	scope := access.Resolve(f.viewer(f.agency))

	var once, twice []scopeRecord
	require.NoError(t, scope.Apply(f.db.Model(&scopeRecord{}), "created_by").Find(&once).Error)
	require.NoError(t, scope.Apply(scope.Apply(f.db.Model(&scopeRecord{}), "created_by"), "created_by").Find(&twice).Error)
	assert.ElementsMatch(t, once, twice)
}

func TestScope_UnknownColumnMatchesNothing(t *testing.T) {
	f := newFixture(t)
	scope := access.Resolve(f.viewer(f.agency))

	var rows []scopeRecord
	require.NoError(t, scope.Apply(f.db.Model(&scopeRecord{}), "id; DROP TABLE users").Find(&rows).Error)
	assert.Empty(t, rows)
}

func TestScope_ApplyThrough(t *testing.T) {
	f := newFixture(t)

	type scopeKey struct {
		Id     uuid.UUID `gorm:"type:uuid;primaryKey"`
		UserId uuid.UUID `gorm:"type:uuid"`
	}
	type scopeSubmission struct {
		Id       uint `gorm:"primaryKey"`
		ApiKeyId uuid.UUID
	}
	require.NoError(t, f.db.Table("api_keys").AutoMigrate(&scopeKey{}))
	require.NoError(t, f.db.Table("submissions").AutoMigrate(&scopeSubmission{}))

	agencyKey := scopeKey{Id: uuid.New(), UserId: f.agency.Id}
	strangerKey := scopeKey{Id: uuid.New(), UserId: f.stranger.Id}
	require.NoError(t, f.db.Table("api_keys").Create(&agencyKey).Error)
	require.NoError(t, f.db.Table("api_keys").Create(&strangerKey).Error)
	require.NoError(t, f.db.Table("submissions").Create(&scopeSubmission{ApiKeyId: agencyKey.Id}).Error)
	require.NoError(t, f.db.Table("submissions").Create(&scopeSubmission{ApiKeyId: strangerKey.Id}).Error)

	t.Run("accountant sees submissions through parent key", func(t *testing.T) {
		var rows []scopeSubmission
		scope := access.Resolve(f.viewer(f.accountant))
		require.NoError(t, scope.ApplyThrough(f.db.Table("submissions"), "api_key_id", "api_keys", "user_id").Find(&rows).Error)
		require.Len(t, rows, 1)
		assert.Equal(t, agencyKey.Id, rows[0].ApiKeyId)
	})

	t.Run("superadmin sees all submissions", func(t *testing.T) {
		var rows []scopeSubmission
		scope := access.Resolve(f.viewer(f.super))
		require.NoError(t, scope.ApplyThrough(f.db.Table("submissions"), "api_key_id", "api_keys", "user_id").Find(&rows).Error)
		assert.Len(t, rows, 2)
	})
}

func TestResolveCatalog(t *testing.T) {
	f := newFixture(t)
	// stranger-owned record assigned to the franchise, visible to the franchise and its creator
	require.NoError(t, f.db.Create(&scopeRecord{CreatedBy: f.stranger.Id, AssignedTo: ptr(f.franchise.Id)}).Error)

	count := func(u scopeUser) int64 {
		var n int64
		require.NoError(t, access.ResolveCatalog(f.viewer(u)).Apply(f.db.Model(&scopeRecord{})).Count(&n).Error)
		return n
	}

	assert.Equal(t, int64(8), count(f.super))
	// agency: own + accountant + sibling + franchise records, plus the assigned one
	assert.Equal(t, int64(5), count(f.agency))
	assert.Equal(t, int64(2), count(f.franchise))
	// freelancer: own record, plus the one it created and assigned away
	assert.Equal(t, int64(2), count(f.stranger))
}

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, access.RoleFranchiseAdmin, access.NormalizeRole("franchiseadmin"))
	assert.Equal(t, access.RoleFranchiseAdmin, access.NormalizeRole(" FranchisesAdmin "))
	assert.True(t, access.NormalizeRole("accountant").Valid())
	assert.False(t, access.NormalizeRole("owner").Valid())
	assert.False(t, access.RoleAccountant.SelfRegistrable())
	assert.True(t, access.RoleAgencyAdmin.CanProvision(access.RoleAccountant))
	assert.False(t, access.RoleFreelancer.CanProvision(access.RoleAccountant))
}

func contains(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
