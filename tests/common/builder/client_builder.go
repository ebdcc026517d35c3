//go:build unit || e2e

package builder

import (
	"time"

	domclient "proposal-service/internal/domain/client"
	domuser "proposal-service/internal/domain/user"
	reqdto "proposal-service/internal/handler/dto/request"
	"proposal-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClientBuilder struct {
	CompanyName string
	ContactName string
	Email       string
	Phone       string
	CreatedBy   uuid.UUID
}

func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		CompanyName: "Acme Media KK",
		ContactName: "Hanako Sato",
		Email:       "contact@acme-media.example.com",
		Phone:       "03-1234-5678",
		CreatedBy:   uuid.New(),
	}
}

func (b *ClientBuilder) With(mutate func(*ClientBuilder)) *ClientBuilder {
	mutate(b)
	return b
}

func (b *ClientBuilder) WithCompanyName(name string) *ClientBuilder {
	b.CompanyName = name
	return b
}

// Build methods
func (b *ClientBuilder) BuildDomain() (*domclient.Client, error) {
	email, err := domuser.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	return domclient.NewClient(b.CompanyName, b.ContactName, email, b.Phone, b.CreatedBy)
}

func (b *ClientBuilder) BuildView() *queries.ClientView {
	now := time.Now()
	return &queries.ClientView{
		ID:          uuid.New(),
		CompanyName: b.CompanyName,
		ContactName: b.ContactName,
		Email:       b.Email,
		Phone:       b.Phone,
		CreatedBy:   b.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *ClientBuilder) BuildCreateRequestDTO() reqdto.CreateClientRequest {
	return reqdto.CreateClientRequest{
		CompanyName: b.CompanyName,
		ContactName: b.ContactName,
		Email:       b.Email,
		Phone:       b.Phone,
	}
}
