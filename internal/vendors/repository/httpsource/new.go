package httpsource

import (
	"time"

	"procurement-srv/internal/vendors/repository"
	pkghttp "procurement-srv/pkg/http"
	"procurement-srv/pkg/log"
)

type implSource struct {
	l      log.Logger
	client pkghttp.IClient
}

// New creates a dataset source that fetches documents over HTTP.
func New(l log.Logger, timeout time.Duration) repository.Source {
	cfg := pkghttp.DefaultConfig()
	if timeout > 0 {
		cfg.Timeout = timeout
	}
	return &implSource{
		l:      l,
		client: pkghttp.NewClient(cfg),
	}
}
