package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agrocoop-dev/delivery-scheduling/internal/domain"
	"github.com/agrocoop-dev/delivery-scheduling/internal/infra/store"
)

type FarmerHandler struct {
	farmers *store.FarmerStore
}

func NewFarmerHandler(farmers *store.FarmerStore) *FarmerHandler {
	return &FarmerHandler{farmers: farmers}
}

type farmerRequest struct {
	MemberID  string `json:"member_id" binding:"required"`
	DNI       string `json:"dni" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone"`
}

func (r farmerRequest) toDomain() domain.Farmer {
	return domain.Farmer{
		MemberID:  r.MemberID,
		DNI:       r.DNI,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
	}
}

func (h *FarmerHandler) HandleList(c *gin.Context) {
	farmers, err := h.farmers.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list farmers")
		return
	}
	respondData(c, http.StatusOK, farmers)
}

func (h *FarmerHandler) HandleGet(c *gin.Context) {
	farmer, err := h.farmers.GetByMemberID(c.Request.Context(), c.Param("memberId"))
	if errors.Is(err, domain.ErrFarmerNotFound) {
		respondError(c, http.StatusNotFound, "farmer not found")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to read farmer")
		return
	}
	respondData(c, http.StatusOK, farmer)
}

func (h *FarmerHandler) HandleCreate(c *gin.Context) {
	var req farmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.farmers.Create(c.Request.Context(), req.toDomain())
	if errors.Is(err, domain.ErrAlreadyExists) {
		respondError(c, http.StatusBadRequest, "farmer already exists")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to create farmer")
		return
	}
	respondMessage(c, http.StatusCreated, "farmer created", created)
}

func (h *FarmerHandler) HandleUpdate(c *gin.Context) {
	var req farmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	farmer := req.toDomain()
	farmer.MemberID = c.Param("memberId")

	updated, err := h.farmers.Update(c.Request.Context(), farmer)
	if errors.Is(err, domain.ErrFarmerNotFound) {
		respondError(c, http.StatusNotFound, "farmer not found")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to update farmer")
		return
	}
	respondMessage(c, http.StatusOK, "farmer updated", updated)
}

func (h *FarmerHandler) HandleDelete(c *gin.Context) {
	err := h.farmers.Delete(c.Request.Context(), c.Param("memberId"))
	if errors.Is(err, domain.ErrFarmerNotFound) {
		respondError(c, http.StatusNotFound, "farmer not found")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete farmer")
		return
	}
	respondMessage(c, http.StatusOK, "farmer deleted", nil)
}
