package usecase

import (
	"procurement-srv/internal/vendors"
	"procurement-srv/internal/vendors/repository"
	"procurement-srv/pkg/log"
)

// Config carries the dataset and enrichment knobs for the vendor domain.
type Config struct {
	// PrimaryURL is the mandatory dataset source. A failure here aborts
	// the whole load cycle.
	PrimaryURL string
	// OptionalURLs are best-effort sources. A failure yields an empty
	// tagged result and the cycle continues.
	OptionalURLs []string
	// Seed perturbs the deterministic enrichment. Same seed and same
	// vendor names give the same enrichment on every run.
	Seed int64
	// TopLocations caps the analytics location grouping. Zero means 5.
	TopLocations int
}

type implUseCase struct {
	src  repository.Source
	snap repository.Snapshot
	cfg  Config
	l    log.Logger
}

func New(src repository.Source, snap repository.Snapshot, cfg Config, l log.Logger) vendor.UseCase {
	if cfg.TopLocations <= 0 {
		cfg.TopLocations = defaultTopLocations
	}

	return &implUseCase{
		src:  src,
		snap: snap,
		cfg:  cfg,
		l:    l,
	}
}

const defaultTopLocations = 5
