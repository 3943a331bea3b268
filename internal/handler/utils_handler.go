package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agrocoop-dev/delivery-scheduling/internal/domain"
	"github.com/agrocoop-dev/delivery-scheduling/internal/infra/store"
)

type UtilsHandler struct {
	farmers   *store.FarmerStore
	products  *store.ProductStore
	companies *store.CompanyStore
}

func NewUtilsHandler(farmers *store.FarmerStore, products *store.ProductStore, companies *store.CompanyStore) *UtilsHandler {
	return &UtilsHandler{farmers: farmers, products: products, companies: companies}
}

var sampleFarmers = []domain.Farmer{
	{MemberID: "SOC001", DNI: "12345678A", FirstName: "Juan", LastName: "Garcia Lopez", Phone: "600123456"},
	{MemberID: "SOC002", DNI: "23456789B", FirstName: "Maria", LastName: "Rodriguez Perez", Phone: "600234567"},
	{MemberID: "SOC003", DNI: "34567890C", FirstName: "Pedro", LastName: "Martinez Ruiz", Phone: "600345678"},
	{MemberID: "SOC004", DNI: "45678901D", FirstName: "Ana", LastName: "Lopez Sanchez", Phone: "600456789"},
	{MemberID: "SOC005", DNI: "56789012E", FirstName: "Carlos", LastName: "Fernandez Diaz", Phone: "600567890"},
	{MemberID: "SOC006", DNI: "67890123F", FirstName: "Isabel", LastName: "Gonzalez Moreno", Phone: "600678901"},
	{MemberID: "SOC007", DNI: "78901234G", FirstName: "Miguel", LastName: "Jimenez Herrera", Phone: "600789012"},
	{MemberID: "SOC008", DNI: "89012345H", FirstName: "Carmen", LastName: "Ruiz Castillo", Phone: "600890123"},
	{MemberID: "SOC009", DNI: "90123456I", FirstName: "Francisco", LastName: "Morales Vega", Phone: "600901234"},
	{MemberID: "SOC010", DNI: "01234567J", FirstName: "Lucia", LastName: "Serrano Torres", Phone: "600012345"},
}

var sampleProducts = []domain.Product{
	{Code: "PROD001", Description: "Tomates", Category: "Hortalizas", ContainerType: "Cajas de plastico", DeliveryTimeFactor: 1.5},
	{Code: "PROD002", Description: "Naranjas", Category: "Citricos", ContainerType: "Sacos de malla", DeliveryTimeFactor: 1.0},
	{Code: "PROD003", Description: "Patatas", Category: "Tuberculos", ContainerType: "Sacos de yute", DeliveryTimeFactor: 0.8},
	{Code: "PROD004", Description: "Aceitunas", Category: "Frutos", ContainerType: "Bidones plasticos", DeliveryTimeFactor: 2.0},
}

var sampleCompanies = []domain.Company{
	{
		CIF:           "A12345678",
		LegalName:     "Distribuciones Agricolas S.A.",
		PostalAddress: "Calle Principal 123",
		Town:          "Madrid",
		Phone:         "911234567",
		Representative: domain.Representative{
			DNI:      "11111111A",
			FullName: "Jose Antonio Garcia",
			Phone:    "666111111",
			Email:    "ja.garcia@distribuciones.com",
		},
	},
	{
		CIF:           "B87654321",
		LegalName:     "Frutas y Verduras del Sur S.L.",
		PostalAddress: "Avenida del Campo 456",
		Town:          "Sevilla",
		Phone:         "954123456",
		Representative: domain.Representative{
			DNI:      "22222222B",
			FullName: "Carmen Lopez Ruiz",
			Phone:    "666222222",
			Email:    "c.lopez@frutasdelsur.com",
		},
	},
}

// HandleSampleData wipes the master data and reseeds the demo dataset.
func (h *UtilsHandler) HandleSampleData(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.clearAll(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to clear master data", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "failed to clear existing data")
		return
	}

	for _, f := range sampleFarmers {
		if _, err := h.farmers.Create(ctx, f); err != nil {
			respondError(c, http.StatusInternalServerError, "failed to seed farmers")
			return
		}
	}
	for _, p := range sampleProducts {
		if _, err := h.products.Create(ctx, p); err != nil {
			respondError(c, http.StatusInternalServerError, "failed to seed products")
			return
		}
	}
	for _, company := range sampleCompanies {
		if _, err := h.companies.Create(ctx, company); err != nil {
			respondError(c, http.StatusInternalServerError, "failed to seed companies")
			return
		}
	}

	respondMessage(c, http.StatusOK, "sample data inserted", gin.H{
		"farmers":   len(sampleFarmers),
		"products":  len(sampleProducts),
		"companies": len(sampleCompanies),
	})
}

func (h *UtilsHandler) clearAll(ctx context.Context) error {
	if err := h.farmers.DeleteAll(ctx); err != nil {
		return err
	}
	if err := h.products.DeleteAll(ctx); err != nil {
		return err
	}
	return h.companies.DeleteAll(ctx)
}
