package main

import (
	"fmt"
	"log"
	"path/filepath"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/stcorp/muninn-sentinel5p/model"
	"github.com/stcorp/muninn-sentinel5p/s5p"
)

//inspectAction analyzes a single product file and prints the resulting
//metadata as a GeoJSON feature.
func inspectAction(ctx *cli.Context) {
	path := ctx.Args().First()
	if path == "" {
		log.Fatal("No product file given.")
	}

	plugin, ok := s5p.IdentifyProduct([]string{path})
	if !ok {
		log.Fatalf("No registered product type identifies `%s`.", filepath.Base(path))
	}

	record, err := plugin.Analyze([]string{path}, ctx.Bool("footprint"))
	if err != nil {
		log.Fatalf("Could not analyze `%s`: %v", filepath.Base(path), err)
	}

	feature, err := record.GeoJSONFeature()
	if err != nil {
		log.Fatal(err)
	}

	info := model.ArchiveInfo{
		ProductType:  plugin.ProductType(),
		PhysicalName: filepath.Base(path),
		ArchivePath:  plugin.ArchivePath(record),
	}
	if err := info.Apply(feature); err != nil {
		log.Fatal(err)
	}

	fmt.Println(feature.String())
}
