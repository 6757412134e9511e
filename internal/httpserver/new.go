package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"smart-scheduler/internal/task/repository"
	"smart-scheduler/pkg/gcalendar"
	"smart-scheduler/pkg/log"
	pkgTelegram "smart-scheduler/pkg/telegram"
	"smart-scheduler/pkg/timetext"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Domain dependencies
	repo            repository.Repository
	parser          *timetext.Parser
	horizonDays     int
	rateLimitPerMin int

	// Optional channels
	telegramBot *pkgTelegram.Bot
	calendar    *gcalendar.Client
	calendarID  string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Repo            repository.Repository
	Parser          *timetext.Parser
	HorizonDays     int
	RateLimitPerMin int

	// TelegramBot enables the chat capture webhook when set.
	TelegramBot *pkgTelegram.Bot
	// Calendar enables the provider pull endpoint when set.
	Calendar   *gcalendar.Client
	CalendarID string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		repo:            cfg.Repo,
		parser:          cfg.Parser,
		horizonDays:     cfg.HorizonDays,
		rateLimitPerMin: cfg.RateLimitPerMin,
		telegramBot:     cfg.TelegramBot,
		calendar:        cfg.Calendar,
		calendarID:      cfg.CalendarID,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.repo == nil {
		return errors.New("repository is required")
	}
	if srv.parser == nil {
		return errors.New("parser is required")
	}
	return nil
}

// Run maps all handlers and blocks serving HTTP on the configured port.
func (srv *HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
