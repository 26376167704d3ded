package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"coffee-commerce/app/services"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError maps the service error taxonomy onto HTTP statuses; anything
// outside it is a 500 with the detail kept server-side.
func writeError(rnd *render.Render, w http.ResponseWriter, err error) {
	var svcErr *services.ServiceError
	if errors.As(err, &svcErr) {
		status := http.StatusInternalServerError
		switch svcErr.Kind {
		case services.KindNotFound:
			status = http.StatusNotFound
		case services.KindDuplicateEmail:
			status = http.StatusConflict
		case services.KindInvalidStatus, services.KindInvalidUpload:
			status = http.StatusBadRequest
		}
		rnd.JSON(w, status, errorResponse{Error: string(svcErr.Kind), Message: svcErr.Message})
		return
	}

	log.Printf("internal error: %v", err)
	rnd.JSON(w, http.StatusInternalServerError, errorResponse{
		Error:   "Internal",
		Message: "internal server error",
	})
}

func writeValidationError(rnd *render.Render, w http.ResponseWriter, err error) {
	message := "invalid request"
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		message = "invalid field: " + validationErrors[0].Field()
	}
	rnd.JSON(w, http.StatusBadRequest, errorResponse{Error: "ValidationFailed", Message: message})
}

func pathID(r *http.Request) (uint, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
