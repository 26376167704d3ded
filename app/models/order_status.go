package models

import "fmt"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusShipping  OrderStatus = "SHIPPING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

var orderStatusDisplayNames = map[OrderStatus]string{
	OrderStatusPending:   "대기",
	OrderStatusPaid:      "결제완료",
	OrderStatusShipping:  "배송중",
	OrderStatusCompleted: "완료",
	OrderStatusCancelled: "취소",
}

func (s OrderStatus) DisplayName() string {
	return orderStatusDisplayNames[s]
}

// ParseOrderStatus maps an external status string onto the closed status set.
// Any status is reachable from any status, there is no transition graph.
func ParseOrderStatus(value string) (OrderStatus, error) {
	status := OrderStatus(value)
	if _, ok := orderStatusDisplayNames[status]; !ok {
		return "", fmt.Errorf("unknown order status: %s", value)
	}
	return status, nil
}
