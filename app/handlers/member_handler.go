package handlers

import (
	"encoding/json"
	"net/http"

	"coffee-commerce/app/models/dto"
	"coffee-commerce/app/services"

	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

type MemberHandler struct {
	memberSvc *services.MemberService
	render    *render.Render
	validator *validator.Validate
}

func NewMemberHandler(memberSvc *services.MemberService, rnd *render.Render) *MemberHandler {
	return &MemberHandler{
		memberSvc: memberSvc,
		render:    rnd,
		validator: validator.New(),
	}
}

func (h *MemberHandler) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req dto.MemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.render.JSON(w, http.StatusBadRequest, errorResponse{Error: "BadRequest", Message: "invalid JSON body"})
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	member, err := h.memberSvc.CreateMember(r.Context(), req)
	if err != nil {
		writeError(h.render, w, err)
		return
	}

	h.render.JSON(w, http.StatusCreated, member)
}

func (h *MemberHandler) GetMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberSvc.GetAllMembers(r.Context())
	if err != nil {
		writeError(h.render, w, err)
		return
	}

	h.render.JSON(w, http.StatusOK, members)
}

func (h *MemberHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, errorResponse{Error: "BadRequest", Message: "invalid member id"})
		return
	}

	member, err := h.memberSvc.GetMember(r.Context(), id)
	if err != nil {
		writeError(h.render, w, err)
		return
	}

	h.render.JSON(w, http.StatusOK, member)
}

func (h *MemberHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, errorResponse{Error: "BadRequest", Message: "invalid member id"})
		return
	}

	var req dto.MemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.render.JSON(w, http.StatusBadRequest, errorResponse{Error: "BadRequest", Message: "invalid JSON body"})
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	member, err := h.memberSvc.UpdateMember(r.Context(), id, req)
	if err != nil {
		writeError(h.render, w, err)
		return
	}

	h.render.JSON(w, http.StatusOK, member)
}

func (h *MemberHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, errorResponse{Error: "BadRequest", Message: "invalid member id"})
		return
	}

	if err := h.memberSvc.DeleteMember(r.Context(), id); err != nil {
		writeError(h.render, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
