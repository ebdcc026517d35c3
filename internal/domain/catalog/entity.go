package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrNegativePrice = errors.New("price cannot be negative")
)

// Package is a fixed bundle of deliverables with a catalog price.
// Catalog entries are deactivated instead of deleted so historical
// proposal snapshots stay reproducible.
type Package struct {
	id          uuid.UUID
	name        string
	description string
	price       int64
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewPackage(name, description string, price int64) (*Package, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}

	return &Package{
		id:          uuid.New(),
		name:        name,
		description: description,
		price:       price,
		isActive:    true,
	}, nil
}

func ReconstructPackage(id uuid.UUID, name, description string, price int64, isActive bool, createdAt, updatedAt time.Time) *Package {
	return &Package{
		id:          id,
		name:        name,
		description: description,
		price:       price,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Package) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	p.name = name
	return nil
}

func (p *Package) Reprice(price int64) error {
	if price < 0 {
		return ErrNegativePrice
	}
	p.price = price
	return nil
}

func (p *Package) Describe(description string) { p.description = description }
func (p *Package) Deactivate()                 { p.isActive = false }

func (p *Package) ID() uuid.UUID        { return p.id }
func (p *Package) Name() string         { return p.name }
func (p *Package) Description() string  { return p.description }
func (p *Package) Price() int64         { return p.price }
func (p *Package) IsActive() bool       { return p.isActive }
func (p *Package) CreatedAt() time.Time { return p.createdAt }
func (p *Package) UpdatedAt() time.Time { return p.updatedAt }

// Service is an individually priced add-on deliverable.
type Service struct {
	id          uuid.UUID
	name        string
	description string
	price       int64
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewService(name, description string, price int64) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}

	return &Service{
		id:          uuid.New(),
		name:        name,
		description: description,
		price:       price,
		isActive:    true,
	}, nil
}

func ReconstructService(id uuid.UUID, name, description string, price int64, isActive bool, createdAt, updatedAt time.Time) *Service {
	return &Service{
		id:          id,
		name:        name,
		description: description,
		price:       price,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *Service) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	s.name = name
	return nil
}

func (s *Service) Reprice(price int64) error {
	if price < 0 {
		return ErrNegativePrice
	}
	s.price = price
	return nil
}

func (s *Service) Describe(description string) { s.description = description }
func (s *Service) Deactivate()                 { s.isActive = false }

func (s *Service) ID() uuid.UUID        { return s.id }
func (s *Service) Name() string         { return s.name }
func (s *Service) Description() string  { return s.description }
func (s *Service) Price() int64         { return s.price }
func (s *Service) IsActive() bool       { return s.isActive }
func (s *Service) CreatedAt() time.Time { return s.createdAt }
func (s *Service) UpdatedAt() time.Time { return s.updatedAt }
