//go:build unit

package catalog_test

import (
	"testing"

	"proposal-service/internal/domain/catalog"
	"proposal-service/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPackage(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewPackageBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Full Marketing Suite", actual.Name())
		assert.Equal(t, int64(17500), actual.Price())
		assert.True(t, actual.IsActive())
	})

	t.Run("name is trimmed", func(t *testing.T) {
		actual, err := builder.NewPackageBuilder().
			With(func(b *builder.PackageBuilder) { b.Name = "  Brand Refresh  " }).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Brand Refresh", actual.Name())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.PackageBuilder)
			errIs  error
		}{
			{
				name:   "empty name",
				mutate: func(b *builder.PackageBuilder) { b.Name = "" },
				errIs:  catalog.ErrEmptyName,
			},
			{
				name:   "whitespace-only name",
				mutate: func(b *builder.PackageBuilder) { b.Name = "   " },
				errIs:  catalog.ErrEmptyName,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.PackageBuilder) { b.Price = -1 },
				errIs:  catalog.ErrNegativePrice,
			},
			{
				name:   "zero price is allowed",
				mutate: func(b *builder.PackageBuilder) { b.Price = 0 },
			},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				actual, err := builder.NewPackageBuilder().With(c.mutate).BuildDomain()
				if c.errIs != nil {
					require.ErrorIs(t, err, c.errIs)
					assert.Nil(t, actual)
					return
				}
				require.NoError(t, err)
			})
		}
	})
}

func TestPackageMutations(t *testing.T) {
	pkg, err := builder.NewPackageBuilder().BuildDomain()
	require.NoError(t, err)

	t.Run("rename rejects empty names", func(t *testing.T) {
		assert.ErrorIs(t, pkg.Rename(" "), catalog.ErrEmptyName)
		assert.Equal(t, "Full Marketing Suite", pkg.Name())
	})

	t.Run("reprice rejects negative prices", func(t *testing.T) {
		assert.ErrorIs(t, pkg.Reprice(-100), catalog.ErrNegativePrice)
		assert.Equal(t, int64(17500), pkg.Price())
	})

	t.Run("reprice updates the price", func(t *testing.T) {
		require.NoError(t, pkg.Reprice(18000))
		assert.Equal(t, int64(18000), pkg.Price())
	})

	t.Run("deactivate flips the flag", func(t *testing.T) {
		pkg.Deactivate()
		assert.False(t, pkg.IsActive())
	})
}

func TestNewService(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewServiceBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "SNS Campaign", actual.Name())
		assert.Equal(t, int64(2000), actual.Price())
		assert.True(t, actual.IsActive())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.ServiceBuilder)
			errIs  error
		}{
			{
				name:   "empty name",
				mutate: func(b *builder.ServiceBuilder) { b.Name = "" },
				errIs:  catalog.ErrEmptyName,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.ServiceBuilder) { b.Price = -1 },
				errIs:  catalog.ErrNegativePrice,
			},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				actual, err := builder.NewServiceBuilder().With(c.mutate).BuildDomain()
				require.ErrorIs(t, err, c.errIs)
				assert.Nil(t, actual)
			})
		}
	})
}
