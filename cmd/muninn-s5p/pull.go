package main

import (
	"fmt"
	"log"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/stcorp/muninn-sentinel5p/datahub"
	"github.com/stcorp/muninn-sentinel5p/util"
)

//pullAction downloads new products from the configured data hub.
func pullAction(ctx *cli.Context) {
	profilePath := ctx.String("profile")
	if profilePath == "" {
		profilePath = util.GetDataHubProfile()
	}
	if profilePath == "" {
		log.Fatal("No data hub profile given. Use --profile or S5P_DATAHUB_PROFILE.")
	}

	profile, err := datahub.LoadPullProfile(profilePath)
	if err != nil {
		log.Fatal(err)
	}

	puller, err := datahub.NewPuller(profile)
	if err != nil {
		log.Fatal(err)
	}
	defer puller.Close()

	stats, err := puller.Run()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(stats)
}
