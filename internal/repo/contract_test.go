package repo

import (
	"context"
	"testing"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runRepositoryContract checks the behaviour every backend shares. newRepo
// must return an empty repository.
func runRepositoryContract(t *testing.T, newRepo func(t *testing.T) ProductRepository) {
	ctx := context.Background()

	mk := func(name string, price, cost string) models.Product {
		return models.Product{
			Name:         name,
			Price:        decimal.RequireFromString(price),
			PurchaseCost: decimal.RequireFromString(cost),
		}
	}

	t.Run("save assigns ids and find returns the record", func(t *testing.T) {
		r := newRepo(t)

		first, err := r.Save(ctx, mk("Pen", "2", "1"))
		require.NoError(t, err)
		require.NotNil(t, first)
		second, err := r.Save(ctx, mk("Desk", "100.50", "40"))
		require.NoError(t, err)
		require.NotNil(t, second)
		assert.NotZero(t, first.ID)
		assert.NotEqual(t, first.ID, second.ID)

		got, err := r.FindByID(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, "Desk", got.Name)
		assert.True(t, decimal.RequireFromString("100.50").Equal(got.Price))
		assert.True(t, decimal.NewFromInt(40).Equal(got.PurchaseCost))
	})

	t.Run("find unknown id", func(t *testing.T) {
		r := newRepo(t)

		_, err := r.FindByID(ctx, 12345)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("find all is ordered by id", func(t *testing.T) {
		r := newRepo(t)
		for _, name := range []string{"C", "A", "B"} {
			_, err := r.Save(ctx, mk(name, "1", "0"))
			require.NoError(t, err)
		}

		all, err := r.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []string{"C", "A", "B"}, names(all))
		assert.Less(t, all[0].ID, all[1].ID)
		assert.Less(t, all[1].ID, all[2].ID)
	})

	t.Run("replace existing and ignore unknown", func(t *testing.T) {
		r := newRepo(t)
		created, err := r.Save(ctx, mk("Pen", "2", "1"))
		require.NoError(t, err)

		changed := mk("Pencil", "0", "1")
		changed.ID = created.ID
		updated, err := r.Save(ctx, changed)
		require.NoError(t, err)
		require.NotNil(t, updated)

		got, err := r.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Pencil", got.Name)
		assert.True(t, got.Price.IsZero())

		ghost := mk("Ghost", "5", "1")
		ghost.ID = created.ID + 1000
		saved, err := r.Save(ctx, ghost)
		require.NoError(t, err)
		assert.Nil(t, saved)

		all, err := r.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		r := newRepo(t)
		created, err := r.Save(ctx, mk("Pen", "2", "1"))
		require.NoError(t, err)

		require.NoError(t, r.Delete(ctx, created.ID))
		require.NoError(t, r.Delete(ctx, created.ID))

		_, err = r.FindByID(ctx, created.ID)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("order by name", func(t *testing.T) {
		r := newRepo(t)
		for _, name := range []string{"Desk", "Chair", "Pen"} {
			_, err := r.Save(ctx, mk(name, "1", "0"))
			require.NoError(t, err)
		}

		sorted, err := r.FindAllOrderByNameAsc(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Chair", "Desk", "Pen"}, names(sorted))
	})

	t.Run("order by name compares bytes", func(t *testing.T) {
		r := newRepo(t)
		for _, name := range []string{"apple", "Banana", "cherry"} {
			_, err := r.Save(ctx, mk(name, "1", "0"))
			require.NoError(t, err)
		}

		sorted, err := r.FindAllOrderByNameAsc(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Banana", "apple", "cherry"}, names(sorted))
	})

	t.Run("price greater than", func(t *testing.T) {
		r := newRepo(t)
		for _, p := range []models.Product{mk("Cheap", "10", "1"), mk("Edge", "400", "1"), mk("Pricey", "400.01", "1")} {
			_, err := r.Save(ctx, p)
			require.NoError(t, err)
		}

		expensive, err := r.FindByPriceGreaterThan(ctx, decimal.NewFromInt(400))
		require.NoError(t, err)
		assert.Equal(t, []string{"Pricey"}, names(expensive))
	})
}

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func mkProduct(name string, price, cost int64) models.Product {
	return models.Product{Name: name, Price: decimal.NewFromInt(price), PurchaseCost: decimal.NewFromInt(cost)}
}
