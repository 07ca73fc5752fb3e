package memory

import (
	"context"

	"procurement-srv/internal/model"
)

func (s *implSnapshot) Replace(ctx context.Context, vendors []model.VendorRecord) {
	cp := make([]model.VendorRecord, len(vendors))
	copy(cp, vendors)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.vendors = cp
	s.loaded = true
}

func (s *implSnapshot) Current(ctx context.Context) ([]model.VendorRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, false
	}

	cp := make([]model.VendorRecord, len(s.vendors))
	copy(cp, s.vendors)

	return cp, true
}
