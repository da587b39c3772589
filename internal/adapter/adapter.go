package adapter

import (
	"context"

	"glpi-inventory/internal/domain"
)

// AdapterType defines how an adapter interacts with its data source
type AdapterType string

const (
	// AdapterTypeOneShot - runs once per invocation
	AdapterTypeOneShot AdapterType = "oneshot"
)

// Adapter defines the interface for inventory sources
type Adapter interface {
	// Name returns the unique identifier for this adapter
	Name() string

	// Type returns how this adapter interacts with its source
	Type() AdapterType

	// Sync pulls data from the source and returns the resulting inventory
	Sync(ctx context.Context) (*domain.Inventory, error)
}
