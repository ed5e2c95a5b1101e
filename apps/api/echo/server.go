package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/mrsmranau/ehomeroom/core"
	"github.com/mrsmranau/ehomeroom/core/ahli"
	"github.com/mrsmranau/ehomeroom/core/aktiviti"
	"github.com/mrsmranau/ehomeroom/core/homeroom"
	"github.com/mrsmranau/ehomeroom/core/laporan"
	"github.com/mrsmranau/ehomeroom/core/mingguan"
	"github.com/mrsmranau/ehomeroom/core/pencapaian"
	"github.com/mrsmranau/ehomeroom/core/user"
)

type (
	ServerDeps struct {
		Conf   *core.Config
		Logger core.Logger
		DB     *sqlx.DB

		UserSvc       *user.Service
		HomeroomSvc   *homeroom.Service
		LaporanSvc    *laporan.Service
		AhliSvc       *ahli.Service
		MingguanSvc   *mingguan.Service
		PencapaianSvc *pencapaian.Service
		AktivitiSvc   *aktiviti.Service
	}

	Server interface {
		http.Handler
		Start()
		Errors() <-chan error
		ShutdownSignal() <-chan os.Signal
		Shutdown(ctx context.Context) error
		Close() error
	}

	server struct {
		deps     ServerDeps
		app      *echo.Echo
		metrics  *metrics
		errors   chan error
		shutdown chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(deps ServerDeps) Server {
	s := &server{
		deps:     deps,
		app:      echo.New(),
		metrics:  newMetrics(deps.DB),
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.deps.Conf

	s.app.HideBanner = true
	s.app.Debug = conf.Debug
	s.app.Renderer = mustPageRenderer()
	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.signalShutdown)

	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: newRequestID}))
	if !conf.Server.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in TEST mode
	if !conf.TestMode {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	s.app.Use(s.metrics.middleware)

	s.app.GET("/health", s.health)
	s.app.GET("/metrics", s.metrics.handler())
	registerPages(s.app, conf)

	api := s.app.Group("/api")
	jwt := jwtMiddleware(conf)

	registerUserAPI(api, jwt, conf, s.deps.UserSvc)
	registerHomeroomAPI(api, jwt, s.deps.HomeroomSvc)
	registerLaporanAPI(api, jwt, s.deps.LaporanSvc, s.metrics)
	registerAhliAPI(api, jwt, s.deps.AhliSvc, s.metrics)
	registerMingguanAPI(api, jwt, s.deps.MingguanSvc, s.metrics)
	registerPencapaianAPI(api, jwt, s.deps.PencapaianSvc, s.metrics)
	for _, kind := range aktiviti.AllKinds {
		registerAktivitiAPI(api, jwt, kind, s.deps.AktivitiSvc, s.metrics)
	}
}

func (s *server) Start() {
	s.deps.Logger.Info("API listening on " + s.deps.Conf.Server.Address)
	if err := s.app.Start(s.deps.Conf.Server.Address); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *server) Errors() <-chan error {
	return s.errors
}

func (s *server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

// signalShutdown asks the owner of the server to shut it down gracefully.
func (s *server) signalShutdown() {
	select {
	case s.shutdown <- syscall.SIGTERM:
	default: // already signaled
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	signal.Stop(s.shutdown)
	return s.app.Shutdown(ctx)
}

func (s *server) Close() error {
	return s.app.Close()
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *server) health(ctx echo.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx.Request().Context(), 2*time.Second)
	defer cancel()
	if err := s.deps.DB.PingContext(pingCtx); err != nil {
		s.deps.Logger.Error("health check: DB ping", err)
		return ctx.JSON(http.StatusServiceUnavailable, response{Message: "Pangkalan data tidak tersedia"})
	}
	return ctx.JSON(http.StatusOK, response{Success: true, Message: "OK", Data: echo.Map{
		"app":   s.deps.Conf.AppName,
		"build": s.deps.Conf.Build,
	}})
}
