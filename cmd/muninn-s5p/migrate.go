package main

import (
	"log"

	"github.com/pressly/goose"
	cli "gopkg.in/urfave/cli.v1"

	_ "github.com/stcorp/muninn-sentinel5p/migrations"
	"github.com/stcorp/muninn-sentinel5p/util"
)

func migrateDatabaseAction(ctx *cli.Context) {
	command := ctx.Args().First()
	if command == "" {
		command = "up"
	}

	database, err := getDbConnectionFunc(&util.BasicLogContext{})
	if err != nil {
		log.Fatal("Could not open database connection.")
	}
	defer database.Close()

	if err := goose.Run(command, database, "."); err != nil {
		log.Fatal(err)
	}
}
