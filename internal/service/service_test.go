package service

import (
	"context"
	"errors"
	"testing"

	"travel-backoffice-be/internal/model"
	"travel-backoffice-be/internal/pkg/logger"
	"travel-backoffice-be/internal/repository/unitofwork"
	"travel-backoffice-be/pkg/access"
	"travel-backoffice-be/pkg/database"
	"travel-backoffice-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db        *gorm.DB
	factory   unitofwork.RepositoryFactory
	log       logger.ILogger
	publisher events.Publisher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := database.NewSQLiteMemory()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))
	return &testEnv{
		db:        db,
		factory:   unitofwork.NewRepositoryFactory(db),
		log:       logger.NewNopLogger(),
		publisher: events.NopPublisher{},
	}
}

func (e *testEnv) addUser(t *testing.T, role access.Role, createdBy *uuid.UUID) uuid.UUID {
	t.Helper()
	id := uuid.New()
	require.NoError(t, e.db.Create(&model.User{
		Id:           id,
		Username:     "u_" + id.String()[:8],
		Email:        id.String()[:8] + "@example.com",
		PasswordHash: "x",
		Role:         string(role),
		IsActive:     true,
		CreatedBy:    createdBy,
	}).Error)
	return id
}

func requireKind(t *testing.T, err error, kind error) {
	t.Helper()
	require.Error(t, err)
	require.Truef(t, errors.Is(err, kind), "expected %v, got %v", kind, err)
}

var bg = context.Background()

func ptr[T any](v T) *T { return &v }
