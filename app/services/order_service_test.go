package services

import (
	"context"
	"testing"
	"time"

	"coffee-commerce/app/models"
	"coffee-commerce/app/models/dto"
	"coffee-commerce/app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderService(t *testing.T) (*OrderService, *gorm.DB) {
	db := setupTestDB(t)
	svc := NewOrderService(
		db,
		repositories.NewOrderRepository(db),
		repositories.NewOrderItemRepository(db),
		repositories.NewMemberRepository(db),
		repositories.NewProductVariantRepository(db),
	)
	return svc, db
}

// seedCatalog creates a member and a product with one priced variant.
func seedCatalog(t *testing.T, db *gorm.DB, basePrice, extraPrice, stock int) (*models.Member, *models.ProductVariant) {
	t.Helper()

	member := &models.Member{Email: "a@x.com", Password: "p", Name: "A", Phone: "010-0000-0000"}
	require.NoError(t, db.Create(member).Error)

	product := &models.Product{Name: "Tea", BasePrice: basePrice}
	require.NoError(t, db.Create(product).Error)

	option := &models.ProductOption{ProductID: product.ID, OptionValue: "Large", ExtraPrice: extraPrice}
	require.NoError(t, db.Create(option).Error)

	variant := &models.ProductVariant{ProductID: product.ID, OptionID: option.ID, Stock: stock}
	require.NoError(t, db.Create(variant).Error)

	return member, variant
}

func TestCreateOrderComputesSnapshotTotal(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()
	member, variant := seedCatalog(t, db, 1000, 500, 10)

	resp, err := svc.CreateOrder(ctx, dto.OrderRequest{
		MemberID:        member.ID,
		ShippingAddress: "Seoul",
		Items:           []dto.OrderItemRequest{{VariantID: variant.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, 3000, resp.TotalAmount)
	assert.Equal(t, "3,000원", resp.TotalAmountDisplay)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, "대기", resp.StatusDisplayName)
	assert.Equal(t, member.ID, resp.Member.MemberID)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, 1500, resp.Items[0].UnitPrice)
	assert.Equal(t, 3000, resp.Items[0].Subtotal)
	assert.Equal(t, "Tea", resp.Items[0].ProductName)
	assert.Equal(t, "Large", resp.Items[0].OptionValue)
}

func TestOrderPricesAreFrozenAgainstCatalogChanges(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()
	member, variant := seedCatalog(t, db, 1000, 500, 10)

	created, err := svc.CreateOrder(ctx, dto.OrderRequest{
		MemberID: member.ID,
		Items:    []dto.OrderItemRequest{{VariantID: variant.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", variant.ProductID).
		Update("base_price", 99999).Error)

	reloaded, err := svc.GetOrder(ctx, created.OrderID)
	require.NoError(t, err)
	assert.Equal(t, 3000, reloaded.TotalAmount)
	assert.Equal(t, 1500, reloaded.Items[0].UnitPrice)
}

func TestCreateOrderDoesNotTouchStock(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()
	member, variant := seedCatalog(t, db, 1000, 0, 5)

	// Quantity above stock is accepted, stock is neither checked nor decremented.
	_, err := svc.CreateOrder(ctx, dto.OrderRequest{
		MemberID: member.ID,
		Items:    []dto.OrderItemRequest{{VariantID: variant.ID, Quantity: 100}},
	})
	require.NoError(t, err)

	var after models.ProductVariant
	require.NoError(t, db.First(&after, variant.ID).Error)
	assert.Equal(t, 5, after.Stock)
}

func TestCreateOrderUnknownMember(t *testing.T) {
	svc, _ := newOrderService(t)

	_, err := svc.CreateOrder(context.Background(), dto.OrderRequest{
		MemberID: 999,
		Items:    []dto.OrderItemRequest{{VariantID: 1, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestCreateOrderUnknownVariantRollsBack(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()
	member, variant := seedCatalog(t, db, 1000, 500, 10)

	_, err := svc.CreateOrder(ctx, dto.OrderRequest{
		MemberID: member.ID,
		Items: []dto.OrderItemRequest{
			{VariantID: variant.ID, Quantity: 1},
			{VariantID: 999, Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, ErrVariantNotFound)

	var orderCount, itemCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)
}

func TestUpdateOrderStatus(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()
	member, variant := seedCatalog(t, db, 1000, 500, 10)

	created, err := svc.CreateOrder(ctx, dto.OrderRequest{
		MemberID: member.ID,
		Items:    []dto.OrderItemRequest{{VariantID: variant.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	paid, err := svc.UpdateOrderStatus(ctx, created.OrderID, "PAID")
	require.NoError(t, err)
	assert.Equal(t, "PAID", paid.Status)
	assert.Equal(t, "결제완료", paid.StatusDisplayName)

	_, err = svc.UpdateOrderStatus(ctx, created.OrderID, "BOGUS")
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindInvalidStatus, svcErr.Kind)

	unchanged, err := svc.GetOrder(ctx, created.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "PAID", unchanged.Status)
}

func TestGetAllOrdersMostRecentFirst(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()
	member, variant := seedCatalog(t, db, 1000, 500, 10)

	first, err := svc.CreateOrder(ctx, dto.OrderRequest{
		MemberID: member.ID,
		Items:    []dto.OrderItemRequest{{VariantID: variant.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	second, err := svc.CreateOrder(ctx, dto.OrderRequest{
		MemberID: member.ID,
		Items:    []dto.OrderItemRequest{{VariantID: variant.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	// Push the second order clearly ahead of the first.
	require.NoError(t, db.Model(&models.Order{}).
		Where("id = ?", second.OrderID).
		Update("order_date", time.Now().Add(time.Hour)).Error)

	orders, err := svc.GetAllOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.OrderID, orders[0].OrderID)
	assert.Equal(t, first.OrderID, orders[1].OrderID)
}

func TestDeleteOrderRemovesItems(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()
	member, variant := seedCatalog(t, db, 1000, 500, 10)

	created, err := svc.CreateOrder(ctx, dto.OrderRequest{
		MemberID: member.ID,
		Items:    []dto.OrderItemRequest{{VariantID: variant.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(ctx, created.OrderID))

	var orderCount, itemCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)

	assert.ErrorIs(t, svc.DeleteOrder(ctx, created.OrderID), ErrOrderNotFound)
	_, err = svc.GetOrder(ctx, created.OrderID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
