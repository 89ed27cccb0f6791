package repo

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniredisRepo(t *testing.T) (*RedisProductRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRedisProductRepository(rdb), mr
}

func TestRedisProductRepository(t *testing.T) {
	runRepositoryContract(t, func(t *testing.T) ProductRepository {
		r, _ := newMiniredisRepo(t)
		return r
	})
}

func TestRedisProductRepository_StoresJSONInHash(t *testing.T) {
	r, mr := newMiniredisRepo(t)
	ctx := context.Background()

	_, err := r.Save(ctx, mkProduct("Pen", 2, 1))
	require.NoError(t, err)

	raw := mr.HGet(productsHashKey, "1")
	assert.JSONEq(t, `{"id":1,"name":"Pen","price":2,"purchase_cost":1}`, raw)
}

func TestRedisProductRepository_CorruptValue(t *testing.T) {
	r, mr := newMiniredisRepo(t)
	mr.HSet(productsHashKey, "1", "not json")

	_, err := r.FindByID(context.Background(), 1)
	assert.ErrorContains(t, err, "failed to decode product 1")

	_, err = r.FindAll(context.Background())
	assert.Error(t, err)
}

func TestRedisProductRepository_Ping(t *testing.T) {
	r, mr := newMiniredisRepo(t)
	assert.NoError(t, r.Ping(context.Background()))

	mr.Close()
	assert.Error(t, r.Ping(context.Background()))
}
