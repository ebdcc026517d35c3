package repository

import (
	"context"
	"time"

	"proposal-service/internal/domain/user"
	"proposal-service/internal/infra"
	"proposal-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const insertUserQuery = `
INSERT INTO users (id, email, name, password_hash, role, is_active)
VALUES ($1, $2, $3, $4, $5, $6)
`

const updateUserLastLoginQuery = `
UPDATE users SET last_login = $2, updated_at = now()
WHERE id = $1
`

const updateUserActiveQuery = `
UPDATE users SET is_active = $2, updated_at = now()
WHERE id = $1
`

const findUserEntityByIDQuery = `
SELECT id, email, name, password_hash, role, last_login, is_active, created_at, updated_at
FROM users
WHERE id = $1
`

type UserRepository struct {
	db infra.DBTX
}

func NewUserRepository(db infra.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, insertUserQuery,
		u.ID(), u.Email().Value(), u.Name(), u.PasswordHash(), u.Role().String(), u.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.db.Exec(ctx, updateUserLastLoginQuery, id, at)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

func (r *UserRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	_, err := r.db.Exec(ctx, updateUserActiveQuery, id, active)
	if err != nil {
		return infra.WrapRepoErr("failed to update user active flag", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var (
		uid                  uuid.UUID
		email, name, hash    string
		role                 string
		lastLogin            *time.Time
		isActive             bool
		createdAt, updatedAt time.Time
	)

	row := r.db.QueryRow(ctx, findUserEntityByIDQuery, id)
	err := row.Scan(&uid, &email, &name, &hash, &role, &lastLogin, &isActive, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored user email", err)
	}
	roleVO, err := user.NewRole(role)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored user role", err)
	}

	return user.ReconstructUser(uid, emailVO, name, hash, roleVO, lastLogin, isActive, createdAt, updatedAt), nil
}
