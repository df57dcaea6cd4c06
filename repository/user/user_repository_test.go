package user_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/model"
	userrepo "github.com/muhammadheryan/storefront/repository/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (userrepo.UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	conn := sqlx.NewDb(db, "mysql")
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})
	return userrepo.NewUserRepository(conn), mock
}

func TestSQL_Create(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user (name, email, phone, password_hash, created_at)")).
		WithArgs("Ana", "ana@example.com", "0812", "hash").
		WillReturnResult(sqlmock.NewResult(5, 1))

	got, err := repo.Create(context.Background(), &model.UserEntity{Name: "Ana", Email: "ana@example.com", Phone: "0812", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Equal(t, uint64(5), got.ID)
}

func TestSQL_Get(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	cols := []string{"id", "name", "email", "phone", "password_hash", "created_at", "updated_at"}
	tests := []struct {
		name     string
		filter   *model.UserFilter
		mockCall func(mock sqlmock.Sqlmock)
		want     *model.UserEntity
	}{
		{
			name:   "by id",
			filter: &model.UserFilter{ID: 5},
			mockCall: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM user WHERE id = ? LIMIT 1")).WithArgs(5).
					WillReturnRows(sqlmock.NewRows(cols).AddRow(5, "Ana", "ana@example.com", "0812", "hash", now, nil))
			},
			want: &model.UserEntity{ID: 5, Name: "Ana", Email: "ana@example.com", Phone: "0812", PasswordHash: "hash", CreatedAt: now},
		},
		{
			name:   "by email and phone, no match",
			filter: &model.UserFilter{Email: "x@y.z", Phone: "0899"},
			mockCall: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM user WHERE email = ? AND phone = ? LIMIT 1")).WithArgs("x@y.z", "0899").
					WillReturnRows(sqlmock.NewRows(cols))
			},
		},
		{
			name:   "empty filter matches nothing",
			filter: &model.UserFilter{},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)
			if tt.mockCall != nil {
				tt.mockCall(mock)
			}

			got, err := repo.Get(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
