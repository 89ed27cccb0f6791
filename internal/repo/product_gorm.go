package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// productRecord maps the products table for gorm.
type productRecord struct {
	ID           int             `gorm:"primaryKey;autoIncrement"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PurchaseCost decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
}

func (productRecord) TableName() string {
	return "products"
}

func toRecord(p models.Product) productRecord {
	return productRecord{ID: p.ID, Name: p.Name, Price: p.Price, PurchaseCost: p.PurchaseCost}
}

func (rec productRecord) toModel() models.Product {
	return models.Product{ID: rec.ID, Name: rec.Name, Price: rec.Price, PurchaseCost: rec.PurchaseCost}
}

func toModels(recs []productRecord) []models.Product {
	products := make([]models.Product, len(recs))
	for i, rec := range recs {
		products[i] = rec.toModel()
	}
	return products
}

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	var recs []productRecord
	if err := r.db.WithContext(ctx).Order("id asc").Find(&recs).Error; err != nil {
		return nil, err
	}
	return toModels(recs), nil
}

func (r *GormProductRepository) FindByID(ctx context.Context, id int) (models.Product, error) {
	var rec productRecord
	err := r.db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, err
	}
	return rec.toModel(), nil
}

func (r *GormProductRepository) Save(ctx context.Context, p models.Product) (*models.Product, error) {
	rec := toRecord(p)
	if rec.ID == 0 {
		if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
			return nil, err
		}
		saved := rec.toModel()
		return &saved, nil
	}

	// Updates with a map so that zero prices are written too.
	res := r.db.WithContext(ctx).Model(&productRecord{}).Where("id = ?", rec.ID).Updates(map[string]any{
		"name":          rec.Name,
		"price":         rec.Price,
		"purchase_cost": rec.PurchaseCost,
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &p, nil
}

func (r *GormProductRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&productRecord{}, id).Error
}

func (r *GormProductRepository) FindAllOrderByNameAsc(ctx context.Context) ([]models.Product, error) {
	var recs []productRecord
	if err := r.db.WithContext(ctx).Order(`name COLLATE "C" asc`).Order("id asc").Find(&recs).Error; err != nil {
		return nil, err
	}
	return toModels(recs), nil
}

func (r *GormProductRepository) FindByPriceGreaterThan(ctx context.Context, threshold decimal.Decimal) ([]models.Product, error) {
	var recs []productRecord
	if err := r.db.WithContext(ctx).Where("price > ?", threshold).Order("id asc").Find(&recs).Error; err != nil {
		return nil, err
	}
	return toModels(recs), nil
}

func (r *GormProductRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
