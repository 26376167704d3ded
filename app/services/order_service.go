package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"coffee-commerce/app/models"
	"coffee-commerce/app/models/dto"
	"coffee-commerce/app/repositories"
	"coffee-commerce/app/utils/format"

	"gorm.io/gorm"
)

type OrderService struct {
	db            *gorm.DB
	orderRepo     repositories.OrderRepositoryImpl
	orderItemRepo repositories.OrderItemRepositoryImpl
	memberRepo    repositories.MemberRepositoryImpl
	variantRepo   repositories.ProductVariantRepositoryImpl
}

func NewOrderService(
	db *gorm.DB,
	orderRepo repositories.OrderRepositoryImpl,
	orderItemRepo repositories.OrderItemRepositoryImpl,
	memberRepo repositories.MemberRepositoryImpl,
	variantRepo repositories.ProductVariantRepositoryImpl,
) *OrderService {
	return &OrderService{
		db:            db,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		memberRepo:    memberRepo,
		variantRepo:   variantRepo,
	}
}

// CreateOrder persists the order and its items in one transaction, freezing
// each line's unit price at basePrice + extraPrice. The quantity is trusted as
// given; stock is neither checked nor decremented.
func (s *OrderService) CreateOrder(ctx context.Context, req dto.OrderRequest) (*dto.OrderResponse, error) {
	member, err := s.memberRepo.FindByID(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("PANIC: Rolling back order transaction: %v", r)
			tx.Rollback()
		}
	}()

	order := &models.Order{
		MemberID:        member.ID,
		Status:          models.OrderStatusPending,
		ShippingAddress: req.ShippingAddress,
		TotalAmount:     0,
		OrderDate:       time.Now(),
	}

	if err := s.orderRepo.Create(ctx, tx, order); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	totalAmount := 0
	for _, itemReq := range req.Items {
		variant, err := s.variantRepo.FindByID(ctx, itemReq.VariantID)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		if variant == nil {
			tx.Rollback()
			return nil, ErrVariantNotFound
		}

		unitPrice := variant.Product.BasePrice + variant.Option.ExtraPrice

		item := &models.OrderItem{
			OrderID:   order.ID,
			VariantID: variant.ID,
			Quantity:  itemReq.Quantity,
			UnitPrice: unitPrice,
		}
		if err := s.orderItemRepo.Create(ctx, tx, item); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to create order item: %w", err)
		}

		totalAmount += unitPrice * itemReq.Quantity
	}

	if err := s.orderRepo.UpdateTotalAmount(ctx, tx, order.ID, totalAmount); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update order total: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	created, err := s.orderRepo.FindByID(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, created)
}

func (s *OrderService) GetOrder(ctx context.Context, id uint) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return s.toResponse(ctx, order)
}

func (s *OrderService) GetAllOrders(ctx context.Context) ([]dto.OrderResponse, error) {
	orders, err := s.orderRepo.FindAllWithMember(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		resp, err := s.toResponse(ctx, &orders[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uint, statusValue string) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	status, err := models.ParseOrderStatus(statusValue)
	if err != nil {
		return nil, errInvalidStatus(statusValue)
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	if err := s.orderRepo.UpdateStatus(ctx, tx, order.ID, status); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	updated, err := s.orderRepo.FindByID(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, updated)
}

func (s *OrderService) DeleteOrder(ctx context.Context, id uint) error {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	if err := s.orderItemRepo.DeleteByOrderID(ctx, tx, order.ID); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete order items: %w", err)
	}

	if err := s.orderRepo.Delete(ctx, tx, order.ID); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete order: %w", err)
	}

	return tx.Commit().Error
}

func (s *OrderService) toResponse(ctx context.Context, order *models.Order) (*dto.OrderResponse, error) {
	items, err := s.orderItemRepo.FindByOrderIDWithDetails(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	itemResponses := make([]dto.OrderItemResponse, 0, len(items))
	for _, item := range items {
		itemResponses = append(itemResponses, dto.OrderItemResponse{
			OrderItemID: item.ID,
			VariantID:   item.VariantID,
			ProductName: item.Variant.Product.Name,
			OptionValue: item.Variant.Option.OptionValue,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.UnitPrice * item.Quantity,
		})
	}

	return &dto.OrderResponse{
		OrderID: order.ID,
		Member: dto.MemberSummary{
			MemberID: order.Member.ID,
			Name:     order.Member.Name,
			Email:    order.Member.Email,
			Phone:    order.Member.Phone,
		},
		Status:             string(order.Status),
		StatusDisplayName:  order.Status.DisplayName(),
		TotalAmount:        order.TotalAmount,
		TotalAmountDisplay: format.Won(order.TotalAmount),
		ShippingAddress:    order.ShippingAddress,
		OrderDate:          order.OrderDate,
		UpdatedAt:          order.UpdatedAt,
		Items:              itemResponses,
	}, nil
}
