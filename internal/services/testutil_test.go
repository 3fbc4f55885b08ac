package services

import (
	"context"
	"fmt"
	"testing"

	"opsboard/internal/models"
	"opsboard/internal/session"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Order{},
		&models.StoreTransaction{},
		&models.EcommerceLog{},
	))
	return db
}

// fakeSessionStore keeps sessions in a map so auth tests need no redis.
type fakeSessionStore struct {
	sessions map[string]*session.Data
	next     int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*session.Data)}
}

func (s *fakeSessionStore) Create(_ context.Context, data *session.Data) (string, error) {
	s.next++
	token := fmt.Sprintf("token-%d", s.next)
	s.sessions[token] = data
	return token, nil
}

func (s *fakeSessionStore) Get(_ context.Context, token string) (*session.Data, error) {
	data, ok := s.sessions[token]
	if !ok {
		return nil, session.ErrNotFound
	}
	return data, nil
}

func (s *fakeSessionStore) Delete(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}
