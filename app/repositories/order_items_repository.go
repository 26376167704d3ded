package repositories

import (
	"context"

	"coffee-commerce/app/models"

	"gorm.io/gorm"
)

type OrderItemRepositoryImpl interface {
	Create(ctx context.Context, tx *gorm.DB, item *models.OrderItem) error
	FindByOrderIDWithDetails(ctx context.Context, orderID uint) ([]models.OrderItem, error)
	DeleteByOrderID(ctx context.Context, tx *gorm.DB, orderID uint) error
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepositoryImpl {
	return &orderItemRepository{db}
}

func (r *orderItemRepository) Create(ctx context.Context, tx *gorm.DB, item *models.OrderItem) error {
	return tx.WithContext(ctx).Create(item).Error
}

func (r *orderItemRepository) FindByOrderIDWithDetails(ctx context.Context, orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.WithContext(ctx).
		Preload("Variant").
		Preload("Variant.Product").
		Preload("Variant.Option").
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *orderItemRepository) DeleteByOrderID(ctx context.Context, tx *gorm.DB, orderID uint) error {
	return tx.WithContext(ctx).Delete(&models.OrderItem{}, "order_id = ?", orderID).Error
}
