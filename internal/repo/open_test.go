package repo

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/rogerio-castellano/product-catalog/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpen_Memory(t *testing.T) {
	cfg := config.Config{Store: config.StoreConfig{Driver: config.DriverMemory}}

	r, closeFn, err := Open(context.Background(), cfg, zap.NewNop())

	require.NoError(t, err)
	assert.IsType(t, &InMemoryProductRepository{}, r)
	assert.NoError(t, closeFn())
}

func TestOpen_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.Config{
		Store: config.StoreConfig{Driver: config.DriverRedis},
		Redis: config.RedisConfig{Addr: mr.Addr()},
	}

	r, closeFn, err := Open(context.Background(), cfg, zap.NewNop())

	require.NoError(t, err)
	assert.IsType(t, &RedisProductRepository{}, r)
	assert.NoError(t, closeFn())
}

func TestOpen_Errors(t *testing.T) {
	_, _, err := Open(context.Background(), config.Config{Store: config.StoreConfig{Driver: "mongo"}}, zap.NewNop())
	assert.ErrorContains(t, err, "unknown store driver")

	_, _, err = Open(context.Background(), config.Config{Store: config.StoreConfig{Driver: config.DriverPostgres}}, zap.NewNop())
	assert.ErrorContains(t, err, "database url is empty")
}
