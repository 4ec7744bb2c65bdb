package handlers

import (
	"errors"
	"net/http"
	"strconv"

	response "distrito_racing/internal/adapter/http/dto/response"
	"distrito_racing/internal/usecase"
	"distrito_racing/pkg"

	"github.com/gin-gonic/gin"
)

// PilotHandler handles HTTP requests for federation-license verification.

type PilotHandler struct {
	usecase usecase.IPilotUseCase
}

func NewPilotHandler(uc usecase.IPilotUseCase) *PilotHandler {
	return &PilotHandler{usecase: uc}
}

// VerifyPilot looks up a pilot's federation license by CPF. The year defaults
// to the current one.
func (h *PilotHandler) VerifyPilot(c *gin.Context) {
	cpf := c.Param("cpf")
	year, _ := strconv.Atoi(c.Query("year"))

	verification, err := h.usecase.Verify(c.Request.Context(), cpf, year)
	if err != nil {
		appErr := mapPilotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPilotVerification(verification))
}

func mapPilotError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPilotCPF):
		return pkg.NewDomainErrorSimple("INVALID_CPF", "CPF must contain 11 digits", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
