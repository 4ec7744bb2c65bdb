package handlers

import (
	"errors"
	"log"
	"net/http"

	request "distrito_racing/internal/adapter/http/dto/request"
	response "distrito_racing/internal/adapter/http/dto/response"
	"distrito_racing/internal/domain/entities"
	"distrito_racing/internal/usecase"
	"distrito_racing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProductPayload = pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", "Invalid product payload", http.StatusBadRequest)
)

// ProductHandler handles HTTP requests for ticket tiers.

type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[product][handler] create failed event_id=%s err=%v", payload.EventID, err)
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProduct(created))
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("product_id"))
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(p))
}

// ListEventProducts returns the event's tiers. The public view is filtered by
// the sales window; the all=true variant is for organizers.
func (h *ProductHandler) ListEventProducts(c *gin.Context) {
	eventID := c.Param("event_id")

	var (
		list []entities.Product
		err  error
	)
	if c.Query("all") == "true" {
		list, err = h.usecase.ListAllByEvent(c.Request.Context(), eventID)
	} else {
		list, err = h.usecase.ListAvailableByEvent(c.Request.Context(), eventID)
	}
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProducts(list))
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	p := payload.ToEntity()
	p.ID = c.Param("product_id")
	updated, err := h.usecase.Update(c.Request.Context(), p)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(updated))
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("product_id")); err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapProductError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductInput):
		return pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", "Invalid product payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSingleProductLookup):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
