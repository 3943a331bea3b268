package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agrocoop-dev/delivery-scheduling/internal/domain"
	"github.com/agrocoop-dev/delivery-scheduling/internal/infra/store"
)

type WeighingHandler struct {
	weighings *store.WeighingStore
}

func NewWeighingHandler(weighings *store.WeighingStore) *WeighingHandler {
	return &WeighingHandler{weighings: weighings}
}

type weighingRequest struct {
	WeighingID    string    `json:"weighing_id"`
	MemberID      string    `json:"member_id" binding:"required"`
	ProductCode   string    `json:"product_code" binding:"required"`
	StartedAt     time.Time `json:"started_at" binding:"required"`
	EndedAt       time.Time `json:"ended_at" binding:"required"`
	YieldCategory string    `json:"yield_category"`
	QuantityKg    float64   `json:"quantity_kg" binding:"required,gt=0"`
}

func (h *WeighingHandler) HandleList(c *gin.Context) {
	weighings, err := h.weighings.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list weighings")
		return
	}
	respondData(c, http.StatusOK, weighings)
}

func (h *WeighingHandler) HandleGet(c *gin.Context) {
	weighing, err := h.weighings.GetByWeighingID(c.Request.Context(), c.Param("weighingId"))
	if errors.Is(err, domain.ErrWeighingNotFound) {
		respondError(c, http.StatusNotFound, "weighing not found")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to read weighing")
		return
	}
	respondData(c, http.StatusOK, weighing)
}

// HandleCreate registers a weighing; the product's stored quantity is
// incremented in the same transaction.
func (h *WeighingHandler) HandleCreate(c *gin.Context) {
	var req weighingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	weighingID := req.WeighingID
	if weighingID == "" {
		weighingID = uuid.NewString()
	}

	created, err := h.weighings.Create(c.Request.Context(), domain.Weighing{
		WeighingID:    weighingID,
		MemberID:      req.MemberID,
		ProductCode:   req.ProductCode,
		StartedAt:     req.StartedAt,
		EndedAt:       req.EndedAt,
		YieldCategory: req.YieldCategory,
		QuantityKg:    req.QuantityKg,
	})
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		respondError(c, http.StatusBadRequest, "weighing already exists")
	case errors.Is(err, domain.ErrProductNotFound):
		respondError(c, http.StatusNotFound, "product not found")
	case errors.Is(err, domain.ErrInvalidQuantity):
		respondError(c, http.StatusBadRequest, "quantity must be positive")
	case err != nil:
		respondError(c, http.StatusInternalServerError, "failed to create weighing")
	default:
		respondMessage(c, http.StatusCreated, "weighing created", created)
	}
}
