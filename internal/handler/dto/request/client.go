package request

import (
	"proposal-service/internal/domain/client"
	"proposal-service/internal/domain/user"
	"proposal-service/internal/pkg/patch"

	"github.com/google/uuid"
)

type CreateClientRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
}

func (r *CreateClientRequest) ToDomain(createdBy uuid.UUID) (*client.Client, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return nil, err
	}
	return client.NewClient(r.CompanyName, r.ContactName, email, r.Phone, createdBy)
}

// UpdateClientRequest is a partial update; absent fields keep their
// stored values.
type UpdateClientRequest struct {
	CompanyName *string `json:"company_name,omitempty"`
	ContactName *string `json:"contact_name,omitempty"`
	Email       *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone       *string `json:"phone,omitempty"`
}

func (r *UpdateClientRequest) Apply(entity *client.Client) error {
	email := entity.Email()
	if r.Email != nil {
		var err error
		email, err = user.NewEmail(*r.Email)
		if err != nil {
			return err
		}
	}

	return entity.Update(
		patch.Coalesce(r.CompanyName, entity.CompanyName()),
		patch.Coalesce(r.ContactName, entity.ContactName()),
		email,
		patch.Coalesce(r.Phone, entity.Phone()),
	)
}
