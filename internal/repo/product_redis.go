package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/shopspring/decimal"
)

const (
	productsHashKey = "catalog:products"
	productsSeqKey  = "catalog:products:seq"
)

// RedisProductRepository stores each product as a JSON value of a single hash
// keyed by product ID.
type RedisProductRepository struct {
	rdb *redis.Client
}

func NewRedisProductRepository(rdb *redis.Client) *RedisProductRepository {
	return &RedisProductRepository{rdb: rdb}
}

func (r *RedisProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	values, err := r.rdb.HVals(ctx, productsHashKey).Result()
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(values))
	for _, v := range values {
		var p models.Product
		if err := json.Unmarshal([]byte(v), &p); err != nil {
			return nil, fmt.Errorf("failed to decode product: %w", err)
		}
		products = append(products, p)
	}
	slices.SortFunc(products, func(a, b models.Product) int {
		return a.ID - b.ID
	})
	return products, nil
}

func (r *RedisProductRepository) FindByID(ctx context.Context, id int) (models.Product, error) {
	v, err := r.rdb.HGet(ctx, productsHashKey, strconv.Itoa(id)).Result()
	if errors.Is(err, redis.Nil) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, err
	}

	var p models.Product
	if err := json.Unmarshal([]byte(v), &p); err != nil {
		return models.Product{}, fmt.Errorf("failed to decode product %d: %w", id, err)
	}
	return p, nil
}

func (r *RedisProductRepository) Save(ctx context.Context, p models.Product) (*models.Product, error) {
	if p.ID == 0 {
		id, err := r.rdb.Incr(ctx, productsSeqKey).Result()
		if err != nil {
			return nil, err
		}
		p.ID = int(id)
		if err := r.put(ctx, p, false); err != nil {
			return nil, err
		}
		return &p, nil
	}

	exists, err := r.rdb.HExists(ctx, productsHashKey, strconv.Itoa(p.ID)).Result()
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}
	if err := r.put(ctx, p, true); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *RedisProductRepository) put(ctx context.Context, p models.Product, replace bool) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode product: %w", err)
	}
	field := strconv.Itoa(p.ID)
	if replace {
		return r.rdb.HSet(ctx, productsHashKey, field, data).Err()
	}
	return r.rdb.HSetNX(ctx, productsHashKey, field, data).Err()
}

func (r *RedisProductRepository) Delete(ctx context.Context, id int) error {
	return r.rdb.HDel(ctx, productsHashKey, strconv.Itoa(id)).Err()
}

func (r *RedisProductRepository) FindAllOrderByNameAsc(ctx context.Context) ([]models.Product, error) {
	products, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	sortByName(products)
	return products, nil
}

func (r *RedisProductRepository) FindByPriceGreaterThan(ctx context.Context, threshold decimal.Decimal) ([]models.Product, error) {
	products, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return filterPriceAbove(products, threshold), nil
}

func (r *RedisProductRepository) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}
