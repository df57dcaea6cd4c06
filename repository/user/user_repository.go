package user

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

// UserRepository backs the identity collaborator. Checkout reads it for the account email.
type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	userColumns     = `id, name, email, phone, password_hash, created_at, updated_at`
	insertUserQuery = `INSERT INTO user (name, email, phone, password_hash, created_at)
		VALUES (:name, :email, :phone, :password_hash, UTC_TIMESTAMP())`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.NamedExecContext(ctx, insertUserQuery, data)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

// Get returns the single user matching every set field of filter, or nil. An empty filter matches nothing.
func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	if filter.IsEmpty() {
		return nil, nil
	}
	conds := make([]string, 0, 3)
	args := make([]any, 0, 3)
	if filter.ID != 0 {
		conds = append(conds, "id = ?")
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		conds = append(conds, "email = ?")
		args = append(args, filter.Email)
	}
	if filter.Phone != "" {
		conds = append(conds, "phone = ?")
		args = append(args, filter.Phone)
	}

	query := "SELECT " + userColumns + " FROM user WHERE " + strings.Join(conds, " AND ") + " LIMIT 1"
	var entity model.UserEntity
	if err := s.conn.GetContext(ctx, &entity, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}
