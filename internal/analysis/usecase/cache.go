package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"

	"procurement-srv/internal/model"
	pkgRedis "procurement-srv/pkg/redis"
)

// cacheKey identifies an analysis by query and by the sample it was
// computed over, so a refreshed snapshot naturally invalidates the entry.
func (uc *implUseCase) cacheKey(query string, sample []model.VendorRecord) string {
	h := sha256.New()
	h.Write([]byte(query))
	data, _ := json.Marshal(sample)
	h.Write(data)

	return fmt.Sprintf("analysis:%x", h.Sum(nil))
}

func (uc *implUseCase) cacheGet(ctx context.Context, key string) (model.AnalysisResult, bool) {
	if uc.cache == nil {
		return model.AnalysisResult{}, false
	}

	raw, err := uc.cache.Get(ctx, key)
	if err != nil {
		if !pkgRedis.IsNil(err) {
			uc.l.Warnf(ctx, "analysis.usecase.cacheGet: %v", err)
		}
		return model.AnalysisResult{}, false
	}

	var result model.AnalysisResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.cacheGet: corrupt entry: %v", err)
		return model.AnalysisResult{}, false
	}

	return result, true
}

// cacheSet stores best-effort. A cache outage never fails an analysis.
func (uc *implUseCase) cacheSet(ctx context.Context, key string, result model.AnalysisResult) {
	if uc.cache == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.cacheSet: %v", err)
		return
	}
	if err := uc.cache.Set(ctx, key, string(data), uc.cfg.CacheTTL); err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.cacheSet: %v", err)
	}
}
