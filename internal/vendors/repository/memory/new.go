package memory

import (
	"sync"

	"procurement-srv/internal/model"
	"procurement-srv/internal/vendors/repository"
)

type implSnapshot struct {
	mu      sync.RWMutex
	vendors []model.VendorRecord
	loaded  bool
}

// New creates an in-memory snapshot store.
func New() repository.Snapshot {
	return &implSnapshot{}
}
