package repositories

import (
	"context"

	"coffee-commerce/app/models"

	"gorm.io/gorm"
)

type ProductImageRepositoryImpl interface {
	Create(ctx context.Context, tx *gorm.DB, image *models.ProductImage) error
	FindByProductID(ctx context.Context, productID uint) ([]models.ProductImage, error)
	DeleteByProductID(ctx context.Context, tx *gorm.DB, productID uint) error
}

type productImageRepository struct {
	db *gorm.DB
}

func NewProductImageRepository(db *gorm.DB) ProductImageRepositoryImpl {
	return &productImageRepository{db}
}

func (r *productImageRepository) Create(ctx context.Context, tx *gorm.DB, image *models.ProductImage) error {
	return tx.WithContext(ctx).Create(image).Error
}

func (r *productImageRepository) FindByProductID(ctx context.Context, productID uint) ([]models.ProductImage, error) {
	var images []models.ProductImage
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("sort_order ASC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *productImageRepository) DeleteByProductID(ctx context.Context, tx *gorm.DB, productID uint) error {
	return tx.WithContext(ctx).Delete(&models.ProductImage{}, "product_id = ?", productID).Error
}
