//go:build unit

package client_test

import (
	"testing"

	"proposal-service/internal/domain/client"
	"proposal-service/internal/domain/user"
	"proposal-service/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewClientBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Acme Media KK", actual.CompanyName())
		assert.Equal(t, "Hanako Sato", actual.ContactName())
		assert.Equal(t, "contact@acme-media.example.com", actual.Email().Value())
	})

	t.Run("company name is trimmed", func(t *testing.T) {
		actual, err := builder.NewClientBuilder().
			WithCompanyName("  Nakano Foods  ").
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Nakano Foods", actual.CompanyName())
	})

	t.Run("empty company name is rejected", func(t *testing.T) {
		actual, err := builder.NewClientBuilder().WithCompanyName("   ").BuildDomain()
		require.ErrorIs(t, err, client.ErrEmptyCompanyName)
		assert.Nil(t, actual)
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		actual, err := builder.NewClientBuilder().
			With(func(b *builder.ClientBuilder) { b.Email = "not-an-email" }).
			BuildDomain()
		require.ErrorIs(t, err, user.ErrInvalidEmail)
		assert.Nil(t, actual)
	})
}

func TestClientUpdate(t *testing.T) {
	entity, err := builder.NewClientBuilder().BuildDomain()
	require.NoError(t, err)

	email, err := user.NewEmail("new-contact@acme-media.example.com")
	require.NoError(t, err)

	t.Run("updates all fields", func(t *testing.T) {
		require.NoError(t, entity.Update("Acme Media Holdings", "Taro Suzuki", email, "03-9876-5432"))

		assert.Equal(t, "Acme Media Holdings", entity.CompanyName())
		assert.Equal(t, "Taro Suzuki", entity.ContactName())
		assert.Equal(t, "new-contact@acme-media.example.com", entity.Email().Value())
		assert.Equal(t, "03-9876-5432", entity.Phone())
	})

	t.Run("rejects empty company name", func(t *testing.T) {
		err := entity.Update("", "Taro Suzuki", email, "")
		assert.ErrorIs(t, err, client.ErrEmptyCompanyName)
		assert.Equal(t, "Acme Media Holdings", entity.CompanyName())
	})
}
