package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agrocoop-dev/delivery-scheduling/internal/domain"
	"github.com/agrocoop-dev/delivery-scheduling/internal/infra/store"
)

type ProductHandler struct {
	products *store.ProductStore
}

func NewProductHandler(products *store.ProductStore) *ProductHandler {
	return &ProductHandler{products: products}
}

type productRequest struct {
	Code               string  `json:"code" binding:"required"`
	Description        string  `json:"description" binding:"required"`
	Category           string  `json:"category"`
	ContainerType      string  `json:"container_type"`
	DeliveryTimeFactor float64 `json:"delivery_time_factor" binding:"required,gt=0"`
}

func (r productRequest) toDomain() domain.Product {
	return domain.Product{
		Code:               r.Code,
		Description:        r.Description,
		Category:           r.Category,
		ContainerType:      r.ContainerType,
		DeliveryTimeFactor: r.DeliveryTimeFactor,
	}
}

func (h *ProductHandler) HandleList(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list products")
		return
	}
	respondData(c, http.StatusOK, products)
}

func (h *ProductHandler) HandleGet(c *gin.Context) {
	product, err := h.products.GetByCode(c.Request.Context(), c.Param("code"))
	if errors.Is(err, domain.ErrProductNotFound) {
		respondError(c, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to read product")
		return
	}
	respondData(c, http.StatusOK, product)
}

func (h *ProductHandler) HandleCreate(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.products.Create(c.Request.Context(), req.toDomain())
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		respondError(c, http.StatusBadRequest, "product already exists")
	case errors.Is(err, domain.ErrInvalidTimeFactor):
		respondError(c, http.StatusBadRequest, "delivery time factor must be positive")
	case err != nil:
		respondError(c, http.StatusInternalServerError, "failed to create product")
	default:
		respondMessage(c, http.StatusCreated, "product created", created)
	}
}

func (h *ProductHandler) HandleUpdate(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	product := req.toDomain()
	product.Code = c.Param("code")

	updated, err := h.products.Update(c.Request.Context(), product)
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		respondError(c, http.StatusNotFound, "product not found")
	case errors.Is(err, domain.ErrInvalidTimeFactor):
		respondError(c, http.StatusBadRequest, "delivery time factor must be positive")
	case err != nil:
		respondError(c, http.StatusInternalServerError, "failed to update product")
	default:
		respondMessage(c, http.StatusOK, "product updated", updated)
	}
}
