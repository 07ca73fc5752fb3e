package httpsource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"procurement-srv/internal/model"
	"procurement-srv/internal/vendors/repository"
)

// Fetch GETs the document at url and decodes it as a JSON array of raw
// vendor records. Any transport, status or decode failure is reported as
// ErrSourceUnavailable; the caller decides whether that is fatal.
func (s *implSource) Fetch(ctx context.Context, url string) ([]model.RawVendor, error) {
	body, statusCode, err := s.client.Get(ctx, url, nil)
	if err != nil {
		s.l.Warnf(ctx, "vendor.repository.httpsource.Fetch: request failed for %s: %v", url, err)
		return nil, fmt.Errorf("%w: %v", repository.ErrSourceUnavailable, err)
	}
	if statusCode != http.StatusOK {
		s.l.Warnf(ctx, "vendor.repository.httpsource.Fetch: %s returned status %d", url, statusCode)
		return nil, fmt.Errorf("%w: status %d", repository.ErrSourceUnavailable, statusCode)
	}

	var vendors []model.RawVendor
	if err := json.Unmarshal(body, &vendors); err != nil {
		s.l.Warnf(ctx, "vendor.repository.httpsource.Fetch: failed to decode %s: %v", url, err)
		return nil, fmt.Errorf("%w: %v", repository.ErrSourceUnavailable, err)
	}

	return vendors, nil
}
