package models

import (
	"time"
)

type Order struct {
	ID              uint        `gorm:"primaryKey;autoIncrement"`
	MemberID        uint        `gorm:"index;not null"`
	Member          Member      `gorm:"foreignKey:MemberID"`
	Status          OrderStatus `gorm:"size:20;not null;default:'PENDING'"`
	ShippingAddress string      `gorm:"type:text"`
	TotalAmount     int         `gorm:"not null;default:0"`
	OrderDate       time.Time   `gorm:"not null"`
	UpdatedAt       time.Time
}

type OrderItem struct {
	ID        uint           `gorm:"primaryKey;autoIncrement"`
	OrderID   uint           `gorm:"index;not null"`
	VariantID uint           `gorm:"index;not null"`
	Variant   ProductVariant `gorm:"foreignKey:VariantID"`
	Quantity  int            `gorm:"not null"`

	// Price snapshot taken at order time, never recomputed from the catalog.
	UnitPrice int `gorm:"not null"`
}
