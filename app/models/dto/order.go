package dto

import "time"

type OrderItemRequest struct {
	VariantID uint `json:"variantId" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,gte=1"`
}

type OrderRequest struct {
	MemberID        uint               `json:"memberId" validate:"required"`
	ShippingAddress string             `json:"shippingAddress"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type MemberSummary struct {
	MemberID uint   `json:"memberId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type OrderItemResponse struct {
	OrderItemID uint   `json:"orderItemId"`
	VariantID   uint   `json:"variantId"`
	ProductName string `json:"productName"`
	OptionValue string `json:"optionValue"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int    `json:"unitPrice"`
	Subtotal    int    `json:"subtotal"`
}

type OrderResponse struct {
	OrderID            uint                `json:"orderId"`
	Member             MemberSummary       `json:"member"`
	Status             string              `json:"status"`
	StatusDisplayName  string              `json:"statusDisplayName"`
	TotalAmount        int                 `json:"totalAmount"`
	TotalAmountDisplay string              `json:"totalAmountDisplay"`
	ShippingAddress    string              `json:"shippingAddress"`
	OrderDate          time.Time           `json:"orderDate"`
	UpdatedAt          time.Time           `json:"updatedAt"`
	Items              []OrderItemResponse `json:"items"`
}
