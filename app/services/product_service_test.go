package services

import (
	"context"
	"strings"
	"testing"

	"coffee-commerce/app/models"
	"coffee-commerce/app/models/dto"
	"coffee-commerce/app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProductService(t *testing.T) (*ProductService, *gorm.DB, *fakeFileStorage) {
	db := setupTestDB(t)
	storage := &fakeFileStorage{}
	svc := NewProductService(
		db,
		repositories.NewProductRepository(db),
		repositories.NewProductImageRepository(db),
		repositories.NewProductOptionRepository(db),
		repositories.NewProductVariantRepository(db),
		storage,
	)
	return svc, db, storage
}

func uploadedPNG(name string) *UploadedFile {
	return &UploadedFile{
		File:        strings.NewReader("png-bytes"),
		Filename:    name,
		ContentType: "image/png",
	}
}

func TestCreateProductWithOptionsAndImages(t *testing.T) {
	svc, db, storage := newProductService(t)
	ctx := context.Background()

	resp, err := svc.CreateProduct(ctx, dto.ProductRequest{
		ProductName: "Tea",
		BasePrice:   1000,
		Type:        "원두",
		Nationality: "케냐",
		Options: []dto.OptionRequest{
			{OptionValue: "Large", ExtraPrice: 500, Stock: 10},
			{OptionValue: "Small", ExtraPrice: 0, Stock: 3},
		},
	}, uploadedPNG("thumb.png"), []*UploadedFile{uploadedPNG("d1.png"), uploadedPNG("d2.png")})
	require.NoError(t, err)

	assert.NotZero(t, resp.ProductID)
	assert.Equal(t, 1000, resp.BasePrice)
	assert.Equal(t, "1,000원", resp.BasePriceDisplay)
	assert.Equal(t, "thumbnail/fake-1.png", resp.ThumbnailImg)

	require.Len(t, resp.DetailImages, 2)
	assert.Equal(t, 1, resp.DetailImages[0].SortOrder)
	assert.Equal(t, 2, resp.DetailImages[1].SortOrder)

	require.Len(t, resp.Options, 2)
	assert.Equal(t, "Large", resp.Options[0].OptionValue)
	assert.Equal(t, 500, resp.Options[0].ExtraPrice)
	assert.Equal(t, 10, resp.Options[0].Stock)
	assert.Equal(t, 3, resp.Options[1].Stock)

	assert.Len(t, storage.stored, 3)

	var variantCount int64
	require.NoError(t, db.Model(&models.ProductVariant{}).Count(&variantCount).Error)
	assert.EqualValues(t, 2, variantCount)
}

func TestCreateProductWithoutOptionsOrImages(t *testing.T) {
	svc, _, _ := newProductService(t)

	resp, err := svc.CreateProduct(context.Background(), dto.ProductRequest{
		ProductName: "Plain",
		BasePrice:   500,
	}, nil, nil)
	require.NoError(t, err)

	assert.Empty(t, resp.ThumbnailImg)
	assert.Empty(t, resp.DetailImages)
	assert.Empty(t, resp.Options)
}

func TestUpdateProductEmptyOptionsLeavesExisting(t *testing.T) {
	svc, _, _ := newProductService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, dto.ProductRequest{
		ProductName: "Tea",
		BasePrice:   1000,
		Options:     []dto.OptionRequest{{OptionValue: "Large", ExtraPrice: 500, Stock: 10}},
	}, nil, nil)
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(ctx, created.ProductID, dto.ProductRequest{
		ProductName: "Tea Renamed",
		BasePrice:   2000,
	}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "Tea Renamed", updated.ProductName)
	assert.Equal(t, 2000, updated.BasePrice)
	require.Len(t, updated.Options, 1)
	assert.Equal(t, created.Options[0].OptionID, updated.Options[0].OptionID)
	assert.Equal(t, 10, updated.Options[0].Stock)
}

func TestUpdateProductReplacesOptionsWithFreshIDs(t *testing.T) {
	svc, db, _ := newProductService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, dto.ProductRequest{
		ProductName: "Tea",
		BasePrice:   1000,
		Options:     []dto.OptionRequest{{OptionValue: "Large", ExtraPrice: 500, Stock: 10}},
	}, nil, nil)
	require.NoError(t, err)
	oldOptionID := created.Options[0].OptionID

	updated, err := svc.UpdateProduct(ctx, created.ProductID, dto.ProductRequest{
		ProductName: "Tea",
		BasePrice:   1000,
		Options:     []dto.OptionRequest{{OptionValue: "Large", ExtraPrice: 700, Stock: 4}},
	}, nil, nil)
	require.NoError(t, err)

	require.Len(t, updated.Options, 1)
	assert.NotEqual(t, oldOptionID, updated.Options[0].OptionID)
	assert.Equal(t, 700, updated.Options[0].ExtraPrice)
	assert.Equal(t, 4, updated.Options[0].Stock)

	var optionCount, variantCount int64
	require.NoError(t, db.Model(&models.ProductOption{}).Count(&optionCount).Error)
	require.NoError(t, db.Model(&models.ProductVariant{}).Count(&variantCount).Error)
	assert.EqualValues(t, 1, optionCount)
	assert.EqualValues(t, 1, variantCount)
}

func TestUpdateProductReplacesDetailImages(t *testing.T) {
	svc, _, storage := newProductService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, dto.ProductRequest{
		ProductName: "Tea",
		BasePrice:   1000,
	}, nil, []*UploadedFile{uploadedPNG("d1.png"), uploadedPNG("d2.png")})
	require.NoError(t, err)
	require.Len(t, created.DetailImages, 2)

	updated, err := svc.UpdateProduct(ctx, created.ProductID, dto.ProductRequest{
		ProductName: "Tea",
		BasePrice:   1000,
	}, nil, []*UploadedFile{uploadedPNG("d3.png")})
	require.NoError(t, err)

	require.Len(t, updated.DetailImages, 1)
	assert.Equal(t, 1, updated.DetailImages[0].SortOrder)
	assert.NotEqual(t, created.DetailImages[0].ImageID, updated.DetailImages[0].ImageID)

	// Old image files were removed best-effort.
	assert.Contains(t, storage.deleted, created.DetailImages[0].ImageURL)
	assert.Contains(t, storage.deleted, created.DetailImages[1].ImageURL)
}

func TestUpdateProductReplacesThumbnailOnlyWhenSupplied(t *testing.T) {
	svc, _, storage := newProductService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, dto.ProductRequest{
		ProductName: "Tea",
		BasePrice:   1000,
	}, uploadedPNG("thumb.png"), nil)
	require.NoError(t, err)

	kept, err := svc.UpdateProduct(ctx, created.ProductID, dto.ProductRequest{
		ProductName: "Tea",
		BasePrice:   1000,
	}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, created.ThumbnailImg, kept.ThumbnailImg)

	replaced, err := svc.UpdateProduct(ctx, created.ProductID, dto.ProductRequest{
		ProductName: "Tea",
		BasePrice:   1000,
	}, uploadedPNG("thumb2.png"), nil)
	require.NoError(t, err)
	assert.NotEqual(t, created.ThumbnailImg, replaced.ThumbnailImg)
	assert.Contains(t, storage.deleted, created.ThumbnailImg)
}

func TestUpdateProductNotFound(t *testing.T) {
	svc, _, _ := newProductService(t)

	_, err := svc.UpdateProduct(context.Background(), 999, dto.ProductRequest{ProductName: "X"}, nil, nil)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProductCascades(t *testing.T) {
	svc, db, storage := newProductService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, dto.ProductRequest{
		ProductName: "Tea",
		BasePrice:   1000,
		Options: []dto.OptionRequest{
			{OptionValue: "Large", ExtraPrice: 500, Stock: 10},
			{OptionValue: "Small", ExtraPrice: 0, Stock: 1},
		},
	}, uploadedPNG("thumb.png"), []*UploadedFile{uploadedPNG("d1.png")})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, created.ProductID))

	for _, model := range []interface{}{
		&models.Product{}, &models.ProductImage{}, &models.ProductOption{}, &models.ProductVariant{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count)
	}

	assert.Contains(t, storage.deleted, created.ThumbnailImg)
	assert.ErrorIs(t, svc.DeleteProduct(ctx, created.ProductID), ErrProductNotFound)
}

func TestGetAllProductsReportsZeroStockForMissingVariant(t *testing.T) {
	svc, db, _ := newProductService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, dto.ProductRequest{
		ProductName: "Tea",
		BasePrice:   1000,
		Options:     []dto.OptionRequest{{OptionValue: "Large", ExtraPrice: 500, Stock: 10}},
	}, nil, nil)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&models.ProductVariant{}, "option_id = ?", created.Options[0].OptionID).Error)

	products, err := svc.GetAllProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Len(t, products[0].Options, 1)
	assert.Zero(t, products[0].Options[0].Stock)
}
