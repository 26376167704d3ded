package seeders

import (
	"coffee-commerce/app/db/fakers"
	"coffee-commerce/app/models"

	"gorm.io/gorm"
)

const (
	memberCount  = 5
	productCount = 10
)

func DBSeed(db *gorm.DB) error {
	for i := 0; i < memberCount; i++ {
		member := fakers.MemberFaker()
		if err := db.FirstOrCreate(member, "email = ?", member.Email).Error; err != nil {
			return err
		}
	}

	for i := 0; i < productCount; i++ {
		product, options, stocks := fakers.ProductFaker()
		if err := db.Create(product).Error; err != nil {
			return err
		}
		for j := range options {
			options[j].ProductID = product.ID
			if err := db.Create(&options[j]).Error; err != nil {
				return err
			}
			variant := &models.ProductVariant{
				ProductID: product.ID,
				OptionID:  options[j].ID,
				Stock:     stocks[j],
			}
			if err := db.Create(variant).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
