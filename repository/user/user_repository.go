package user

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/buyer-leads/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Upsert(ctx context.Context, req *model.UserEntity) error
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	upsertUserQuery = `INSERT INTO users (id, name, email, role, password_hash, created_at) VALUES (?, ?, ?, ?, ?, NOW())
ON DUPLICATE KEY UPDATE name = VALUES(name), email = VALUES(email), role = VALUES(role), password_hash = VALUES(password_hash)`
	getUserBase = `SELECT id, name, email, role, password_hash, created_at FROM users WHERE true`
)

// Upsert creates the user or refreshes its profile and credentials. Used by
// the demo seed.
func (s *SQL) Upsert(ctx context.Context, data *model.UserEntity) error {
	_, err := s.conn.ExecContext(ctx, upsertUserQuery, data.ID, data.Name, data.Email, data.Role, data.PasswordHash)
	return err
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 2)

	if filter.ID != "" {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}
