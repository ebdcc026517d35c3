package client

import (
	"errors"
	"strings"
	"time"

	"proposal-service/internal/domain/user"

	"github.com/google/uuid"
)

var ErrEmptyCompanyName = errors.New("company name cannot be empty")

// Client is the recipient of proposals. A sales rep owns the clients
// they created; admins see all.
type Client struct {
	id          uuid.UUID
	companyName string
	contactName string
	email       user.Email
	phone       string
	createdBy   uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

func NewClient(companyName, contactName string, email user.Email, phone string, createdBy uuid.UUID) (*Client, error) {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return nil, ErrEmptyCompanyName
	}

	return &Client{
		id:          uuid.New(),
		companyName: companyName,
		contactName: strings.TrimSpace(contactName),
		email:       email,
		phone:       strings.TrimSpace(phone),
		createdBy:   createdBy,
	}, nil
}

func ReconstructClient(id uuid.UUID, companyName, contactName string, email user.Email, phone string, createdBy uuid.UUID, createdAt, updatedAt time.Time) *Client {
	return &Client{
		id:          id,
		companyName: companyName,
		contactName: contactName,
		email:       email,
		phone:       phone,
		createdBy:   createdBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c *Client) Update(companyName, contactName string, email user.Email, phone string) error {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return ErrEmptyCompanyName
	}
	c.companyName = companyName
	c.contactName = strings.TrimSpace(contactName)
	c.email = email
	c.phone = strings.TrimSpace(phone)
	return nil
}

func (c *Client) ID() uuid.UUID        { return c.id }
func (c *Client) CompanyName() string  { return c.companyName }
func (c *Client) ContactName() string  { return c.contactName }
func (c *Client) Email() user.Email    { return c.email }
func (c *Client) Phone() string        { return c.phone }
func (c *Client) CreatedBy() uuid.UUID { return c.createdBy }
func (c *Client) CreatedAt() time.Time { return c.createdAt }
func (c *Client) UpdatedAt() time.Time { return c.updatedAt }
