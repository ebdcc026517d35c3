package readstore

import (
	"context"

	"proposal-service/internal/infra"
	"proposal-service/internal/pkg/pgconv"
	"proposal-service/internal/usecase/queries"

	"github.com/google/uuid"
)

const findUserByEmailQuery = `
SELECT id, email, name, role, is_active, last_login, password_hash
FROM users
WHERE email = $1
`

const findUserByIDQuery = `
SELECT id, email, name, role, is_active, last_login
FROM users
WHERE id = $1
`

type UserReadStore struct {
	db infra.DBTX
}

func NewUserReadStore(db infra.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		view queries.AuthorizedUserView
		hash string
	)

	row := r.db.QueryRow(ctx, findUserByEmailQuery, email)
	err := row.Scan(&view.ID, &view.Email, &view.Name, &view.Role, &view.IsActive, &view.LastLogin, &hash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &view, hash, nil
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView

	row := r.db.QueryRow(ctx, findUserByIDQuery, id)
	err := row.Scan(&view.ID, &view.Email, &view.Name, &view.Role, &view.IsActive, &view.LastLogin)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}

	return &view, nil
}
