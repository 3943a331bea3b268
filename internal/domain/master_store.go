package domain

import "context"

//go:generate mockgen -source=master_store.go -destination=master_store_mock.go -package=domain

// ProductCatalog is the read side of the product store needed by the
// scheduling path.
type ProductCatalog interface {
	GetByCode(ctx context.Context, code string) (*Product, error)
}

// WindowSettingsStore reads the persisted operating window. It returns
// ErrSettingsNotFound when no settings row exists yet.
type WindowSettingsStore interface {
	OperatingWindow(ctx context.Context) (*WindowSettings, error)
}
