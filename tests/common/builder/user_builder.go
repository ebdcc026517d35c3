//go:build unit || e2e

package builder

import (
	"time"

	domuser "proposal-service/internal/domain/user"
	reqdto "proposal-service/internal/handler/dto/request"
	"proposal-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Password     string
	PasswordHash string
	Role         domuser.Role
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Email:    "sales@example.com",
		Name:     "Test Sales",
		Password: "password123",
		// bcrypt of "password123"
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMye1VdLIb25O1V1p8B3PsZ8WqX0YPLXOXa",
		Role:         domuser.RoleSales,
		IsActive:     true,
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) WithRole(role domuser.Role) *UserBuilder {
	b.Role = role
	return b
}

func (b *UserBuilder) WithInactive() *UserBuilder {
	b.IsActive = false
	return b
}

// Build methods
func (b *UserBuilder) BuildDomain() (*domuser.User, error) {
	email, err := domuser.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	u := domuser.NewUser(email, b.Name, b.PasswordHash, b.Role)
	if !b.IsActive {
		u.Deactivate()
	}
	return u, nil
}

func (b *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	lastLogin := time.Now().Add(-24 * time.Hour)
	return &queries.AuthorizedUserView{
		ID:        b.ID,
		Email:     b.Email,
		Name:      b.Name,
		Role:      b.Role.String(),
		IsActive:  b.IsActive,
		LastLogin: &lastLogin,
	}
}

func (b *UserBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}
