package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/agrocoop-dev/delivery-scheduling/internal/domain"
	"github.com/agrocoop-dev/delivery-scheduling/internal/infra/store"
	"github.com/agrocoop-dev/delivery-scheduling/internal/testutil"
)

func sampleProduct() domain.Product {
	return domain.Product{
		Code:               "PROD001",
		Description:        "Tomates",
		Category:           "Hortalizas",
		ContainerType:      "Cajas de plastico",
		DeliveryTimeFactor: 1.5,
	}
}

func TestProductStore_CreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	products := store.NewProductStore(db)
	ctx := context.Background()

	created, err := products.Create(ctx, sampleProduct())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.Code != "PROD001" {
		t.Errorf("created code = %q, want PROD001", created.Code)
	}

	got, err := products.GetByCode(ctx, "PROD001")
	if err != nil {
		t.Fatalf("GetByCode() error = %v", err)
	}
	if got.DeliveryTimeFactor != 1.5 {
		t.Errorf("factor = %v, want 1.5", got.DeliveryTimeFactor)
	}

	if _, err := products.GetByCode(ctx, "PROD999"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("GetByCode(missing) error = %v, want ErrProductNotFound", err)
	}
}

func TestProductStore_DuplicateCode(t *testing.T) {
	db := testutil.SetupTestDB(t)
	products := store.NewProductStore(db)
	ctx := context.Background()

	if _, err := products.Create(ctx, sampleProduct()); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := products.Create(ctx, sampleProduct()); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("duplicate Create() error = %v, want ErrAlreadyExists", err)
	}
}

func TestProductStore_RejectsNonPositiveFactor(t *testing.T) {
	db := testutil.SetupTestDB(t)
	products := store.NewProductStore(db)

	p := sampleProduct()
	p.DeliveryTimeFactor = 0
	if _, err := products.Create(context.Background(), p); !errors.Is(err, domain.ErrInvalidTimeFactor) {
		t.Errorf("Create() error = %v, want ErrInvalidTimeFactor", err)
	}
}

func TestWeighingStore_CreateIncrementsStoredQuantity(t *testing.T) {
	db := testutil.SetupTestDB(t)
	products := store.NewProductStore(db)
	weighings := store.NewWeighingStore(db)
	ctx := context.Background()

	if _, err := products.Create(ctx, sampleProduct()); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	w := domain.Weighing{
		WeighingID:    "PES001",
		MemberID:      "SOC001",
		ProductCode:   "PROD001",
		StartedAt:     time.Date(2026, 4, 6, 8, 0, 0, 0, time.UTC),
		EndedAt:       time.Date(2026, 4, 6, 9, 30, 0, 0, time.UTC),
		YieldCategory: "primera",
		QuantityKg:    750,
	}
	if _, err := weighings.Create(ctx, w); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	p, err := products.GetByCode(ctx, "PROD001")
	if err != nil {
		t.Fatalf("GetByCode() error = %v", err)
	}
	if p.StoredQuantityKg != 750 {
		t.Errorf("stored quantity = %v, want 750", p.StoredQuantityKg)
	}
}

func TestWeighingStore_UnknownProductRollsBack(t *testing.T) {
	db := testutil.SetupTestDB(t)
	weighings := store.NewWeighingStore(db)
	ctx := context.Background()

	w := domain.Weighing{
		WeighingID:  "PES001",
		MemberID:    "SOC001",
		ProductCode: "PROD404",
		QuantityKg:  100,
	}
	if _, err := weighings.Create(ctx, w); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("Create() error = %v, want ErrProductNotFound", err)
	}

	if _, err := weighings.GetByWeighingID(ctx, "PES001"); !errors.Is(err, domain.ErrWeighingNotFound) {
		t.Errorf("weighing persisted despite rollback, error = %v", err)
	}
}

func TestFarmerStore_CRUD(t *testing.T) {
	db := testutil.SetupTestDB(t)
	farmers := store.NewFarmerStore(db)
	ctx := context.Background()

	f := domain.Farmer{MemberID: "SOC001", DNI: "12345678A", FirstName: "Juan", LastName: "Garcia Lopez", Phone: "600123456"}
	if _, err := farmers.Create(ctx, f); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	f.Phone = "600999999"
	updated, err := farmers.Update(ctx, f)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Phone != "600999999" {
		t.Errorf("updated phone = %q, want 600999999", updated.Phone)
	}

	list, err := farmers.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 {
		t.Errorf("List() = %d farmers, want 1", len(list))
	}

	if err := farmers.Delete(ctx, "SOC001"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := farmers.Delete(ctx, "SOC001"); !errors.Is(err, domain.ErrFarmerNotFound) {
		t.Errorf("second Delete() error = %v, want ErrFarmerNotFound", err)
	}
}

func TestSettingsStore_EnsureDefault(t *testing.T) {
	db := testutil.SetupTestDB(t)
	settings := store.NewSettingsStore(db)
	ctx := context.Background()

	if _, err := settings.OperatingWindow(ctx); !errors.Is(err, domain.ErrSettingsNotFound) {
		t.Fatalf("OperatingWindow() error = %v, want ErrSettingsNotFound", err)
	}

	def := domain.OperatingWindow{OpensAt: 480, ClosesAt: 1080}
	created, err := settings.EnsureDefault(ctx, def)
	if err != nil {
		t.Fatalf("EnsureDefault() error = %v", err)
	}
	if created.OpensAt.Clock() != "08:00" || created.ClosesAt.Clock() != "18:00" {
		t.Errorf("window = %s-%s, want 08:00-18:00", created.OpensAt.Clock(), created.ClosesAt.Clock())
	}

	// Update and confirm EnsureDefault no longer overwrites.
	updatedWindow := domain.OperatingWindow{OpensAt: 540, ClosesAt: 1020}
	if _, err := settings.Save(ctx, updatedWindow); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := settings.EnsureDefault(ctx, def)
	if err != nil {
		t.Fatalf("EnsureDefault() error = %v", err)
	}
	if got.OpensAt.Clock() != "09:00" || got.ClosesAt.Clock() != "17:00" {
		t.Errorf("window = %s-%s, want 09:00-17:00", got.OpensAt.Clock(), got.ClosesAt.Clock())
	}
}

func TestSettingsStore_RejectsInvalidWindow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	settings := store.NewSettingsStore(db)

	inverted := domain.OperatingWindow{OpensAt: 1080, ClosesAt: 480}
	if _, err := settings.Save(context.Background(), inverted); !errors.Is(err, domain.ErrInvalidWindow) {
		t.Errorf("Save() error = %v, want ErrInvalidWindow", err)
	}
}
