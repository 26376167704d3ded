package services

import (
	"context"
	"fmt"
	"log"

	"coffee-commerce/app/models"
	"coffee-commerce/app/models/dto"
	"coffee-commerce/app/repositories"
	"coffee-commerce/app/utils/format"

	"gorm.io/gorm"
)

type ProductService struct {
	db          *gorm.DB
	productRepo repositories.ProductRepositoryImpl
	imageRepo   repositories.ProductImageRepositoryImpl
	optionRepo  repositories.ProductOptionRepositoryImpl
	variantRepo repositories.ProductVariantRepositoryImpl
	fileStorage FileStorage
}

func NewProductService(
	db *gorm.DB,
	productRepo repositories.ProductRepositoryImpl,
	imageRepo repositories.ProductImageRepositoryImpl,
	optionRepo repositories.ProductOptionRepositoryImpl,
	variantRepo repositories.ProductVariantRepositoryImpl,
	fileStorage FileStorage,
) *ProductService {
	return &ProductService{
		db:          db,
		productRepo: productRepo,
		imageRepo:   imageRepo,
		optionRepo:  optionRepo,
		variantRepo: variantRepo,
		fileStorage: fileStorage,
	}
}

func (s *ProductService) CreateProduct(ctx context.Context, req dto.ProductRequest, thumbnail *UploadedFile, detailImages []*UploadedFile) (*dto.ProductResponse, error) {
	thumbnailPath := ""
	if thumbnail != nil {
		path, err := s.fileStorage.Store(thumbnail, "thumbnail")
		if err != nil {
			return nil, err
		}
		thumbnailPath = path
	}

	product := &models.Product{
		Name:         req.ProductName,
		BasePrice:    req.BasePrice,
		Type:         req.Type,
		Nationality:  req.Nationality,
		ThumbnailImg: thumbnailPath,
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	if err := s.productRepo.Create(ctx, tx, product); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	if err := s.storeDetailImages(ctx, tx, product.ID, detailImages); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := s.createOptionPairs(ctx, tx, product.ID, req.Options); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return s.toResponse(ctx, product)
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		resp, err := s.toResponse(ctx, &products[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uint, req dto.ProductRequest, thumbnail *UploadedFile, detailImages []*UploadedFile) (*dto.ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	product.Name = req.ProductName
	product.BasePrice = req.BasePrice
	product.Type = req.Type
	product.Nationality = req.Nationality

	// Thumbnail is replaced only when a new file arrives. The old file goes
	// first, best-effort.
	if thumbnail != nil {
		if product.ThumbnailImg != "" && !s.fileStorage.Delete(product.ThumbnailImg) {
			log.Printf("UpdateProduct: could not remove old thumbnail %s", product.ThumbnailImg)
		}
		path, err := s.fileStorage.Store(thumbnail, "thumbnail")
		if err != nil {
			return nil, err
		}
		product.ThumbnailImg = path
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	if err := s.productRepo.Update(ctx, tx, product); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	// Detail images are replaced wholesale, but only when new files arrive.
	if len(detailImages) > 0 {
		existing, err := s.imageRepo.FindByProductID(ctx, product.ID)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		for _, img := range existing {
			if !s.fileStorage.Delete(img.ImageURL) {
				log.Printf("UpdateProduct: could not remove detail image %s", img.ImageURL)
			}
		}
		if err := s.imageRepo.DeleteByProductID(ctx, tx, product.ID); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to delete product images: %w", err)
		}
		if err := s.storeDetailImages(ctx, tx, product.ID, detailImages); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	// Options and variants are deleted and recreated, never diffed, so each
	// update issues fresh surrogate ids.
	if len(req.Options) > 0 {
		if err := s.deleteOptionPairs(ctx, tx, product.ID); err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := s.createOptionPairs(ctx, tx, product.ID, req.Options); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return s.toResponse(ctx, product)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}

	if product.ThumbnailImg != "" && !s.fileStorage.Delete(product.ThumbnailImg) {
		log.Printf("DeleteProduct: could not remove thumbnail %s", product.ThumbnailImg)
	}

	images, err := s.imageRepo.FindByProductID(ctx, product.ID)
	if err != nil {
		return err
	}
	for _, img := range images {
		if !s.fileStorage.Delete(img.ImageURL) {
			log.Printf("DeleteProduct: could not remove detail image %s", img.ImageURL)
		}
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	if err := s.imageRepo.DeleteByProductID(ctx, tx, product.ID); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete product images: %w", err)
	}

	if err := s.deleteOptionPairs(ctx, tx, product.ID); err != nil {
		tx.Rollback()
		return err
	}

	if err := s.productRepo.Delete(ctx, tx, product.ID); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return tx.Commit().Error
}

func (s *ProductService) storeDetailImages(ctx context.Context, tx *gorm.DB, productID uint, detailImages []*UploadedFile) error {
	sortOrder := 1
	for _, file := range detailImages {
		path, err := s.fileStorage.Store(file, "detail")
		if err != nil {
			return err
		}

		image := &models.ProductImage{
			ProductID: productID,
			ImageURL:  path,
			SortOrder: sortOrder,
		}
		if err := s.imageRepo.Create(ctx, tx, image); err != nil {
			return fmt.Errorf("failed to create product image: %w", err)
		}
		sortOrder++
	}
	return nil
}

func (s *ProductService) createOptionPairs(ctx context.Context, tx *gorm.DB, productID uint, options []dto.OptionRequest) error {
	for _, opt := range options {
		option := &models.ProductOption{
			ProductID:   productID,
			OptionValue: opt.OptionValue,
			ExtraPrice:  opt.ExtraPrice,
		}
		if err := s.optionRepo.Create(ctx, tx, option); err != nil {
			return fmt.Errorf("failed to create product option: %w", err)
		}

		variant := &models.ProductVariant{
			ProductID: productID,
			OptionID:  option.ID,
			Stock:     opt.Stock,
		}
		if err := s.variantRepo.Create(ctx, tx, variant); err != nil {
			return fmt.Errorf("failed to create product variant: %w", err)
		}
	}
	return nil
}

// deleteOptionPairs removes every option of a product, variant first so the
// option row is never orphan-referenced.
func (s *ProductService) deleteOptionPairs(ctx context.Context, tx *gorm.DB, productID uint) error {
	options, err := s.optionRepo.FindByProductID(ctx, productID)
	if err != nil {
		return err
	}
	for _, option := range options {
		if err := s.variantRepo.DeleteByOptionID(ctx, tx, option.ID); err != nil {
			return fmt.Errorf("failed to delete product variant: %w", err)
		}
	}
	if err := s.optionRepo.DeleteByProductID(ctx, tx, productID); err != nil {
		return fmt.Errorf("failed to delete product options: %w", err)
	}
	return nil
}

func (s *ProductService) toResponse(ctx context.Context, product *models.Product) (*dto.ProductResponse, error) {
	images, err := s.imageRepo.FindByProductID(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	imageResponses := make([]dto.ImageResponse, 0, len(images))
	for _, img := range images {
		imageResponses = append(imageResponses, dto.ImageResponse{
			ImageID:   img.ID,
			ImageURL:  img.ImageURL,
			SortOrder: img.SortOrder,
		})
	}

	options, err := s.optionRepo.FindByProductID(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	// One variant query per product, then an in-memory lookup, instead of one
	// query per option.
	variants, err := s.variantRepo.FindByProductID(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	stockByOption := make(map[uint]int, len(variants))
	for _, variant := range variants {
		stockByOption[variant.OptionID] = variant.Stock
	}

	optionResponses := make([]dto.OptionResponse, 0, len(options))
	for _, option := range options {
		optionResponses = append(optionResponses, dto.OptionResponse{
			OptionID:    option.ID,
			OptionValue: option.OptionValue,
			ExtraPrice:  option.ExtraPrice,
			Stock:       stockByOption[option.ID],
		})
	}

	return &dto.ProductResponse{
		ProductID:        product.ID,
		ProductName:      product.Name,
		BasePrice:        product.BasePrice,
		BasePriceDisplay: format.Won(product.BasePrice),
		Type:             product.Type,
		Continent:        product.Continent,
		Nationality:      product.Nationality,
		ThumbnailImg:     product.ThumbnailImg,
		DetailImages:     imageResponses,
		Options:          optionResponses,
	}, nil
}
