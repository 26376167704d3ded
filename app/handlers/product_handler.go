package handlers

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"coffee-commerce/app/models/dto"
	"coffee-commerce/app/services"

	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

const maxUploadMemory = 32 << 20

type ProductHandler struct {
	productSvc *services.ProductService
	render     *render.Render
	validator  *validator.Validate
}

func NewProductHandler(productSvc *services.ProductService, rnd *render.Render) *ProductHandler {
	return &ProductHandler{
		productSvc: productSvc,
		render:     rnd,
		validator:  validator.New(),
	}
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	req, thumbnail, detailImages, cleanup, err := h.parseMultipart(r)
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, errorResponse{Error: "BadRequest", Message: err.Error()})
		return
	}
	defer cleanup()

	if err := h.validator.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	product, err := h.productSvc.CreateProduct(r.Context(), *req, thumbnail, detailImages)
	if err != nil {
		writeError(h.render, w, err)
		return
	}

	h.render.JSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, errorResponse{Error: "BadRequest", Message: "invalid product id"})
		return
	}

	req, thumbnail, detailImages, cleanup, err := h.parseMultipart(r)
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, errorResponse{Error: "BadRequest", Message: err.Error()})
		return
	}
	defer cleanup()

	if err := h.validator.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	product, err := h.productSvc.UpdateProduct(r.Context(), id, *req, thumbnail, detailImages)
	if err != nil {
		writeError(h.render, w, err)
		return
	}

	h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, errorResponse{Error: "BadRequest", Message: "invalid product id"})
		return
	}

	if err := h.productSvc.DeleteProduct(r.Context(), id); err != nil {
		writeError(h.render, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productSvc.GetAllProducts(r.Context())
	if err != nil {
		writeError(h.render, w, err)
		return
	}

	h.render.JSON(w, http.StatusOK, products)
}

// parseMultipart pulls the scalar fields, the JSON-encoded options array and
// the uploaded files out of a product create/update form. The returned cleanup
// closes every opened file.
func (h *ProductHandler) parseMultipart(r *http.Request) (*dto.ProductRequest, *services.UploadedFile, []*services.UploadedFile, func(), error) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return nil, nil, nil, nil, errors.New("invalid multipart form")
	}

	req := &dto.ProductRequest{
		ProductName: r.FormValue("productName"),
		Type:        r.FormValue("type"),
		Nationality: r.FormValue("nationality"),
	}

	if raw := r.FormValue("basePrice"); raw != "" {
		basePrice, err := strconv.Atoi(raw)
		if err != nil {
			return nil, nil, nil, nil, errors.New("invalid basePrice")
		}
		req.BasePrice = basePrice
	}

	if optionsJSON := r.FormValue("options"); optionsJSON != "" {
		if err := json.Unmarshal([]byte(optionsJSON), &req.Options); err != nil {
			return nil, nil, nil, nil, errors.New("invalid options payload")
		}
	}

	var closers []multipart.File

	cleanup := func() {
		for _, f := range closers {
			f.Close()
		}
	}

	var thumbnail *services.UploadedFile
	if file, header, err := r.FormFile("thumbnail"); err == nil {
		closers = append(closers, file)
		thumbnail = &services.UploadedFile{
			File:        file,
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
		}
	}

	var detailImages []*services.UploadedFile
	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["detailImages"] {
			file, err := header.Open()
			if err != nil {
				cleanup()
				return nil, nil, nil, nil, errors.New("failed to read detail image")
			}
			closers = append(closers, file)
			detailImages = append(detailImages, &services.UploadedFile{
				File:        file,
				Filename:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
			})
		}
	}

	return req, thumbnail, detailImages, cleanup, nil
}
