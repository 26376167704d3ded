package models

import (
	"time"
)

type Product struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"size:200;not null"`
	BasePrice    int    `gorm:"not null"`
	Type         string `gorm:"size:100"`
	Continent    string `gorm:"size:50"`
	Nationality  string `gorm:"size:100"`
	ThumbnailImg string `gorm:"size:250"`

	DetailImages []ProductImage `gorm:"foreignKey:ProductID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ProductImage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	ProductID uint   `gorm:"index;not null"`
	ImageURL  string `gorm:"size:250;not null"`
	SortOrder int    `gorm:"not null"`
}

type ProductOption struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	ProductID   uint   `gorm:"index;not null"`
	OptionValue string `gorm:"size:100;not null"`
	ExtraPrice  int    `gorm:"not null;default:0"`
}

// ProductVariant binds a product to one of its options and carries the stock
// for that combination. One variant per (product, option) pair.
type ProductVariant struct {
	ID        uint          `gorm:"primaryKey;autoIncrement"`
	ProductID uint          `gorm:"index;not null;uniqueIndex:idx_variant_product_option"`
	Product   Product       `gorm:"foreignKey:ProductID"`
	OptionID  uint          `gorm:"not null;uniqueIndex:idx_variant_product_option"`
	Option    ProductOption `gorm:"foreignKey:OptionID"`
	Stock     int           `gorm:"not null;default:0"`
}
