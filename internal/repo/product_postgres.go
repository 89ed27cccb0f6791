package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/shopspring/decimal"
)

const queryTimeout = 3 * time.Second

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func (r *PostgresProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	return r.query(ctx, `SELECT id, name, price, purchase_cost FROM products ORDER BY id`)
}

func (r *PostgresProductRepository) FindByID(ctx context.Context, id int) (models.Product, error) {
	query := `SELECT id, name, price, purchase_cost FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Price, &p.PurchaseCost)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Save(ctx context.Context, p models.Product) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if p.ID == 0 {
		query := `INSERT INTO products (name, price, purchase_cost) VALUES ($1, $2, $3) RETURNING id`
		if err := r.db.QueryRowContext(ctx, query, p.Name, p.Price, p.PurchaseCost).Scan(&p.ID); err != nil {
			return nil, err
		}
		return &p, nil
	}

	query := `UPDATE products SET name = $1, price = $2, purchase_cost = $3 WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, p.Name, p.Price, p.PurchaseCost, p.ID)
	if err != nil {
		return nil, err
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		return nil, nil
	}
	return &p, nil
}

func (r *PostgresProductRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}

func (r *PostgresProductRepository) FindAllOrderByNameAsc(ctx context.Context) ([]models.Product, error) {
	return r.query(ctx, `SELECT id, name, price, purchase_cost FROM products ORDER BY name COLLATE "C" ASC, id`)
}

func (r *PostgresProductRepository) FindByPriceGreaterThan(ctx context.Context, threshold decimal.Decimal) ([]models.Product, error) {
	return r.query(ctx, `SELECT id, name, price, purchase_cost FROM products WHERE price > $1 ORDER BY id`, threshold)
}

func (r *PostgresProductRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *PostgresProductRepository) query(ctx context.Context, query string, args ...any) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.PurchaseCost); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
