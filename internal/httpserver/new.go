package httpserver

import (
	"errors"

	"procurement-srv/config"
	"procurement-srv/pkg/discord"
	"procurement-srv/pkg/log"
	"procurement-srv/pkg/openai"
	pkgRedis "procurement-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	config *config.Config

	// External clients
	redisClient pkgRedis.IRedis
	openAI      openai.IOpenAI

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	Config *config.Config

	// External clients
	RedisClient pkgRedis.IRedis
	OpenAI      openai.IOpenAI

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.Config,
		redisClient: cfg.RedisClient,
		openAI:      cfg.OpenAI,
		discord:     cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.openAI == nil {
		return errors.New("openAI client is required")
	}
	// redisClient and discord are optional

	return nil
}
