package handlers

import (
	"encoding/json"
	"net/http"

	"coffee-commerce/app/models/dto"
	"coffee-commerce/app/services"

	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

type OrderHandler struct {
	orderSvc  *services.OrderService
	render    *render.Render
	validator *validator.Validate
}

func NewOrderHandler(orderSvc *services.OrderService, rnd *render.Render) *OrderHandler {
	return &OrderHandler{
		orderSvc:  orderSvc,
		render:    rnd,
		validator: validator.New(),
	}
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.render.JSON(w, http.StatusBadRequest, errorResponse{Error: "BadRequest", Message: "invalid JSON body"})
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	order, err := h.orderSvc.CreateOrder(r.Context(), req)
	if err != nil {
		writeError(h.render, w, err)
		return
	}

	h.render.JSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderSvc.GetAllOrders(r.Context())
	if err != nil {
		writeError(h.render, w, err)
		return
	}

	h.render.JSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, errorResponse{Error: "BadRequest", Message: "invalid order id"})
		return
	}

	order, err := h.orderSvc.GetOrder(r.Context(), id)
	if err != nil {
		writeError(h.render, w, err)
		return
	}

	h.render.JSON(w, http.StatusOK, order)
}

func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, errorResponse{Error: "BadRequest", Message: "invalid order id"})
		return
	}

	status := r.URL.Query().Get("status")

	order, err := h.orderSvc.UpdateOrderStatus(r.Context(), id, status)
	if err != nil {
		writeError(h.render, w, err)
		return
	}

	h.render.JSON(w, http.StatusOK, order)
}

func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, errorResponse{Error: "BadRequest", Message: "invalid order id"})
		return
	}

	if err := h.orderSvc.DeleteOrder(r.Context(), id); err != nil {
		writeError(h.render, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
