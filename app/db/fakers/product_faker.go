package fakers

import (
	"math/rand"

	"github.com/go-faker/faker/v4"

	"coffee-commerce/app/models"
)

var coffeeTypes = []string{"원두", "드립백", "캡슐"}

var origins = []struct {
	continent   string
	nationality string
}{
	{"아프리카", "에티오피아"},
	{"아프리카", "케냐"},
	{"남아메리카", "콜롬비아"},
	{"남아메리카", "브라질"},
	{"아시아", "인도네시아"},
}

var optionValues = []string{"200g", "500g", "1kg"}

// ProductFaker builds a product with one option+variant pair per weight, the
// way the catalog service would create it.
func ProductFaker() (*models.Product, []models.ProductOption, []int) {
	origin := origins[rand.Intn(len(origins))]

	product := &models.Product{
		Name:        faker.Word() + " 블렌드",
		BasePrice:   (rand.Intn(30) + 5) * 1000,
		Type:        coffeeTypes[rand.Intn(len(coffeeTypes))],
		Continent:   origin.continent,
		Nationality: origin.nationality,
	}

	numOptions := rand.Intn(len(optionValues)) + 1
	options := make([]models.ProductOption, 0, numOptions)
	stocks := make([]int, 0, numOptions)
	for i := 0; i < numOptions; i++ {
		options = append(options, models.ProductOption{
			OptionValue: optionValues[i],
			ExtraPrice:  i * 5000,
		})
		stocks = append(stocks, rand.Intn(50))
	}

	return product, options, stocks
}
