package fakers

import (
	"github.com/go-faker/faker/v4"

	"coffee-commerce/app/models"
)

func MemberFaker() *models.Member {
	return &models.Member{
		Email:    faker.Email(),
		Password: faker.Password(),
		Name:     faker.Name(),
		Phone:    faker.Phonenumber(),
		Address:  faker.GetRealAddress().Address,
	}
}
