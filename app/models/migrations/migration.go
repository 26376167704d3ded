package migrations

import (
	"coffee-commerce/app/models"

	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Member{},
		&models.Product{},
		&models.ProductImage{},
		&models.ProductOption{},
		&models.ProductVariant{},
		&models.Order{},
		&models.OrderItem{},
	)
}
