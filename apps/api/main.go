package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof on the default mux
	"os"

	"github.com/jmoiron/sqlx"

	echoapi "github.com/mrsmranau/ehomeroom/apps/api/echo"
	"github.com/mrsmranau/ehomeroom/core"
	"github.com/mrsmranau/ehomeroom/core/ahli"
	"github.com/mrsmranau/ehomeroom/core/aktiviti"
	"github.com/mrsmranau/ehomeroom/core/homeroom"
	"github.com/mrsmranau/ehomeroom/core/laporan"
	"github.com/mrsmranau/ehomeroom/core/mingguan"
	"github.com/mrsmranau/ehomeroom/core/pencapaian"
	"github.com/mrsmranau/ehomeroom/core/user"
	logsvc "github.com/mrsmranau/ehomeroom/services/logger"
	"github.com/mrsmranau/ehomeroom/storage/database"
	sqlxrepos "github.com/mrsmranau/ehomeroom/storage/database/sqlx"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf, err := core.NewConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	defer logger.Close()

	dbLogger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)

	// set up DB
	db, err := setUpDB(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	defer func() {
		if err = db.Close(); err != nil {
			dbLogger.Error("Failed to close", err)
		}
	}()

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q (%s, %s)", conf.Build, conf.Env, conf.Database.Engine))
	defer logger.Info("Application stopped")

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	if conf.Server.DebugHost != "" {
		expvar.NewString("build").Set(conf.Build)
		expvar.NewString("env").Set(conf.Env)

		go func() {
			if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
				logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
			}
		}()
	}

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(echoapi.ServerDeps{
		Conf:          conf,
		Logger:        logger,
		DB:            db,
		UserSvc:       user.NewService(sqlxrepos.NewUserRepository(db)),
		HomeroomSvc:   homeroom.NewService(sqlxrepos.NewHomeroomRepository(db)),
		LaporanSvc:    laporan.NewService(sqlxrepos.NewReportRepository(db)),
		AhliSvc:       ahli.NewService(sqlxrepos.NewMemberRepository(db)),
		MingguanSvc:   mingguan.NewService(sqlxrepos.NewWeeklyReportRepository(db)),
		PencapaianSvc: pencapaian.NewService(sqlxrepos.NewAchievementRepository(db)),
		AktivitiSvc:   aktiviti.NewService(sqlxrepos.NewActivityRepository(db)),
	})

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Error(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Error(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func setUpDB(conf *core.Config) (*sqlx.DB, error) {
	ctx := context.Background()
	if err := database.CreateIfNotExist(ctx, conf); err != nil {
		return nil, err
	}

	db, err := database.Open(conf)
	if err != nil {
		return nil, err
	}
	if err = database.Ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err = database.Migrate(ctx, db, conf.Database.Engine); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
