package main

import (
	"context"
	"log"
	"os"

	"github.com/mrsmranau/ehomeroom/core"
	"github.com/mrsmranau/ehomeroom/core/homeroom"
	"github.com/mrsmranau/ehomeroom/core/user"
	"github.com/mrsmranau/ehomeroom/storage/database"
	"github.com/mrsmranau/ehomeroom/storage/database/sqlx"
)

var logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

func main() {
	conf, err := core.NewConfig()
	errAndDie(err)

	// set up DB
	ctx := context.Background()
	errAndDie(database.CreateIfNotExist(ctx, conf))
	db, err := database.Open(conf)
	errAndDie(err)
	errAndDie(database.Ping(ctx, db))

	// start CLI
	cli := commandLine{
		conf:   conf,
		db:     db,
		out:    os.Stdout,
		usrSvc: user.NewService(sqlxrepos.NewUserRepository(db)),
		hrSvc:  homeroom.NewService(sqlxrepos.NewHomeroomRepository(db)),
	}
	err = cli.run(os.Args)
	_ = db.Close()
	if err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
