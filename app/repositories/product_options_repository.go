package repositories

import (
	"context"

	"coffee-commerce/app/models"

	"gorm.io/gorm"
)

type ProductOptionRepositoryImpl interface {
	Create(ctx context.Context, tx *gorm.DB, option *models.ProductOption) error
	FindByProductID(ctx context.Context, productID uint) ([]models.ProductOption, error)
	DeleteByProductID(ctx context.Context, tx *gorm.DB, productID uint) error
}

type productOptionRepository struct {
	db *gorm.DB
}

func NewProductOptionRepository(db *gorm.DB) ProductOptionRepositoryImpl {
	return &productOptionRepository{db}
}

func (r *productOptionRepository) Create(ctx context.Context, tx *gorm.DB, option *models.ProductOption) error {
	return tx.WithContext(ctx).Create(option).Error
}

func (r *productOptionRepository) FindByProductID(ctx context.Context, productID uint) ([]models.ProductOption, error) {
	var options []models.ProductOption
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id ASC").
		Find(&options).Error
	if err != nil {
		return nil, err
	}
	return options, nil
}

func (r *productOptionRepository) DeleteByProductID(ctx context.Context, tx *gorm.DB, productID uint) error {
	return tx.WithContext(ctx).Delete(&models.ProductOption{}, "product_id = ?", productID).Error
}
