package main

import (
	"context"

	"github.com/mrsmranau/ehomeroom/storage/database"
)

var runMigrationsFunc = database.RunMigrations // mockable

func (cli *commandLine) migrate(args []string) error {
	return runMigrationsFunc(context.Background(), cli.db, cli.conf.Database.Engine, args[0], args[1:]...)
}
