package usecase

import (
	"time"

	"procurement-srv/internal/analysis"
	"procurement-srv/internal/vendors"
	"procurement-srv/pkg/log"
	"procurement-srv/pkg/openai"
	pkgRedis "procurement-srv/pkg/redis"
)

// Config carries the analysis-domain knobs.
type Config struct {
	// CacheTTL bounds how long an analysis result is reused for the
	// same query over the same sample. Zero means 1 hour.
	CacheTTL time.Duration
}

type implUseCase struct {
	vendorUC vendor.UseCase
	ai       openai.IOpenAI
	// cache may be nil; analysis still works without it.
	cache pkgRedis.IRedis
	cfg   Config
	l     log.Logger
}

func New(vendorUC vendor.UseCase, ai openai.IOpenAI, cache pkgRedis.IRedis, cfg Config, l log.Logger) analysis.UseCase {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}

	return &implUseCase{
		vendorUC: vendorUC,
		ai:       ai,
		cache:    cache,
		cfg:      cfg,
		l:        l,
	}
}

const (
	defaultCacheTTL = time.Hour

	// Sample size sent on per-query analysis. Compliance reports use
	// the full collection.
	analysisSampleCap = 20

	analysisTemperature = 0.3
	analysisMaxTokens   = 2000

	complianceTemperature = 0.2
	complianceMaxTokens   = 1500

	// Fallback estimates when the completion content is not valid JSON.
	fallbackEnvironmentalImpact = 0.5
	fallbackCostUSD             = 0.02
	fallbackComplianceRatio     = 0.772
)
