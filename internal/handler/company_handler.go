package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agrocoop-dev/delivery-scheduling/internal/domain"
	"github.com/agrocoop-dev/delivery-scheduling/internal/infra/store"
)

type CompanyHandler struct {
	companies *store.CompanyStore
}

func NewCompanyHandler(companies *store.CompanyStore) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

type representativeRequest struct {
	DNI      string `json:"dni"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

type companyRequest struct {
	CIF            string                `json:"cif" binding:"required"`
	LegalName      string                `json:"legal_name" binding:"required"`
	PostalAddress  string                `json:"postal_address"`
	Town           string                `json:"town"`
	Phone          string                `json:"phone"`
	Representative representativeRequest `json:"representative"`
}

func (r companyRequest) toDomain() domain.Company {
	return domain.Company{
		CIF:           r.CIF,
		LegalName:     r.LegalName,
		PostalAddress: r.PostalAddress,
		Town:          r.Town,
		Phone:         r.Phone,
		Representative: domain.Representative{
			DNI:      r.Representative.DNI,
			FullName: r.Representative.FullName,
			Phone:    r.Representative.Phone,
			Email:    r.Representative.Email,
		},
	}
}

func (h *CompanyHandler) HandleList(c *gin.Context) {
	companies, err := h.companies.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list companies")
		return
	}
	respondData(c, http.StatusOK, companies)
}

func (h *CompanyHandler) HandleGet(c *gin.Context) {
	company, err := h.companies.GetByCIF(c.Request.Context(), c.Param("cif"))
	if errors.Is(err, domain.ErrCompanyNotFound) {
		respondError(c, http.StatusNotFound, "company not found")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to read company")
		return
	}
	respondData(c, http.StatusOK, company)
}

func (h *CompanyHandler) HandleCreate(c *gin.Context) {
	var req companyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.companies.Create(c.Request.Context(), req.toDomain())
	if errors.Is(err, domain.ErrAlreadyExists) {
		respondError(c, http.StatusBadRequest, "company already exists")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to create company")
		return
	}
	respondMessage(c, http.StatusCreated, "company created", created)
}
