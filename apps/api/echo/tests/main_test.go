package tests

import (
	"io"
	"log"
	"testing"

	"github.com/jmoiron/sqlx"

	. "github.com/mrsmranau/ehomeroom/apps/api/echo"
	"github.com/mrsmranau/ehomeroom/core"
	"github.com/mrsmranau/ehomeroom/core/ahli"
	"github.com/mrsmranau/ehomeroom/core/aktiviti"
	"github.com/mrsmranau/ehomeroom/core/homeroom"
	"github.com/mrsmranau/ehomeroom/core/laporan"
	"github.com/mrsmranau/ehomeroom/core/mingguan"
	"github.com/mrsmranau/ehomeroom/core/pencapaian"
	"github.com/mrsmranau/ehomeroom/core/user"
	"github.com/mrsmranau/ehomeroom/services/logger"
	"github.com/mrsmranau/ehomeroom/storage/database/sqlx"
	"github.com/mrsmranau/ehomeroom/tests"
)

// testEnv is a server over a fresh database holding one admin, one pengguna and two homerooms.
type testEnv struct {
	conf    *core.Config
	db      *sqlx.DB
	app     Server
	usrRepo user.Repository

	hr1, hr2   homeroom.Homeroom
	admin      user.User
	guru       user.User
	adminToken string
	guruToken  string
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{conf: core.NewTestConfig(), db: testutil.PrepareDB(t)}

	// set up repos
	env.usrRepo = sqlxrepos.NewUserRepository(env.db)
	hrRepo := sqlxrepos.NewHomeroomRepository(env.db)

	// set up server
	env.app = NewServer(ServerDeps{
		Conf:          env.conf,
		Logger:        logsvc.NewConsoleLogger(log.New(io.Discard, "", 0), false),
		DB:            env.db,
		UserSvc:       user.NewService(env.usrRepo),
		HomeroomSvc:   homeroom.NewService(hrRepo),
		LaporanSvc:    laporan.NewService(sqlxrepos.NewReportRepository(env.db)),
		AhliSvc:       ahli.NewService(sqlxrepos.NewMemberRepository(env.db)),
		MingguanSvc:   mingguan.NewService(sqlxrepos.NewWeeklyReportRepository(env.db)),
		PencapaianSvc: pencapaian.NewService(sqlxrepos.NewAchievementRepository(env.db)),
		AktivitiSvc:   aktiviti.NewService(sqlxrepos.NewActivityRepository(env.db)),
	})

	// seed
	env.hr1 = testutil.CreateHomeroom(t, hrRepo, "Al-Farabi", "Tingkatan 4", "Cikgu Aminah")
	env.hr2 = testutil.CreateHomeroom(t, hrRepo, "Ibnu Sina", "Tingkatan 5", "")
	env.admin = testutil.CreateUser(t, env.usrRepo, "Pentadbir Sistem", "admin", "admin123", user.RoleAdmin, 0)
	env.guru = testutil.CreateUser(t, env.usrRepo, "Cikgu Aminah", "pengguna1", "user123", user.RolePengguna, env.hr1.ID)
	env.adminToken = getToken(t, env.conf, env.admin)
	env.guruToken = getToken(t, env.conf, env.guru)
	return env
}
