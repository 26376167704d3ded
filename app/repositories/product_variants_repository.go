package repositories

import (
	"context"

	"coffee-commerce/app/models"

	"gorm.io/gorm"
)

type ProductVariantRepositoryImpl interface {
	Create(ctx context.Context, tx *gorm.DB, variant *models.ProductVariant) error
	FindByID(ctx context.Context, id uint) (*models.ProductVariant, error)
	FindByProductID(ctx context.Context, productID uint) ([]models.ProductVariant, error)
	DeleteByOptionID(ctx context.Context, tx *gorm.DB, optionID uint) error
}

type productVariantRepository struct {
	db *gorm.DB
}

func NewProductVariantRepository(db *gorm.DB) ProductVariantRepositoryImpl {
	return &productVariantRepository{db}
}

func (r *productVariantRepository) Create(ctx context.Context, tx *gorm.DB, variant *models.ProductVariant) error {
	return tx.WithContext(ctx).Create(variant).Error
}

func (r *productVariantRepository) FindByID(ctx context.Context, id uint) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Option").
		First(&variant, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &variant, nil
}

// FindByProductID loads every variant of a product in one query so callers can
// build an optionID → stock lookup instead of querying per option.
func (r *productVariantRepository) FindByProductID(ctx context.Context, productID uint) ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Find(&variants).Error
	if err != nil {
		return nil, err
	}
	return variants, nil
}

func (r *productVariantRepository) DeleteByOptionID(ctx context.Context, tx *gorm.DB, optionID uint) error {
	return tx.WithContext(ctx).Delete(&models.ProductVariant{}, "option_id = ?", optionID).Error
}
