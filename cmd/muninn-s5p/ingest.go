package main

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/stcorp/muninn-sentinel5p/archive"
	"github.com/stcorp/muninn-sentinel5p/localindex"
	"github.com/stcorp/muninn-sentinel5p/localindex/db"
	"github.com/stcorp/muninn-sentinel5p/model"
	"github.com/stcorp/muninn-sentinel5p/s5p"
	"github.com/stcorp/muninn-sentinel5p/util"
)

const ingestQueueDepth = 64

//walkStats summarizes the walk side of one ingest run. The importer
//reports the database side separately.
type walkStats struct {
	NumberQueued  int
	NumberSkipped int
	NumberFailed  int
	StartTime     time.Time
	EndTime       time.Time
}

func (stats *walkStats) String() string {
	return fmt.Sprintf(`
		Start:	%v
		End:	%v
		#Queued:	%v
		#Skipped:	%v
		#Failed:	%v
		`,
		stats.StartTime.Format("Mon Jan _2 15:04:05 2006"),
		stats.EndTime.Format("Mon Jan _2 15:04:05 2006"),
		stats.NumberQueued,
		stats.NumberSkipped,
		stats.NumberFailed)
}

//ingestAction walks a directory tree and indexes every file a registered
//product type identifies.
func ingestAction(ctx *cli.Context) {
	logContext := &(util.BasicLogContext{})

	dir := ctx.String("dir")
	if dir == "" {
		log.Fatal("No product directory given. Use --dir.")
	}

	target := ctx.String("archive")
	if target == "" {
		target = util.GetArchiveTarget()
	}
	var backend archive.Backend
	if target != "" {
		var err error
		if backend, err = archive.NewBackend(target); err != nil {
			log.Fatal("Could not create the archive backend: " + err.Error())
		}
	}

	records := make(chan db.ProductRow, ingestQueueDepth)
	importer := db.NewImporter(getDbConnectionFunc)

	importDone := make(chan *db.ImportStats, 1)
	go func() {
		stats, err := importer.Run(records)
		if err != nil {
			util.LogSimpleErr(logContext, "Indexing failed", err)
			for range records {
				//Drain so the walk does not block on a dead importer.
			}
		}
		importDone <- stats
	}()

	stats := ingestWalk(logContext, dir, ctx.Bool("footprint"), backend, records)
	close(records)
	importStats := <-importDone

	fmt.Println("Walk:", stats)
	if importStats != nil {
		fmt.Println("Index:", importStats)
	}
}

//ingestWalk feeds every recognized file under dir into the records
//channel. Per-file failures are counted and logged, they do not abort
//the walk.
func ingestWalk(ctx util.LogContext, dir string, resolveFootprints bool, backend archive.Backend, records chan<- db.ProductRow) *walkStats {
	stats := &walkStats{StartTime: time.Now()}

	walkErr := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			stats.NumberFailed++
			util.LogSimpleErr(ctx, fmt.Sprintf("Error walking `%s`", path), err)
			return nil
		}
		if info.IsDir() {
			return nil
		}

		plugin, ok := s5p.IdentifyProduct([]string{path})
		if !ok {
			stats.NumberSkipped++
			return nil
		}

		row, err := buildProductRow(plugin, path, resolveFootprints, backend)
		if err != nil {
			stats.NumberFailed++
			util.LogSimpleErr(ctx, fmt.Sprintf("Error ingesting `%s`", filepath.Base(path)), err)
			return nil
		}

		records <- *row
		stats.NumberQueued++
		return nil
	})
	if walkErr != nil {
		stats.NumberFailed++
		util.LogSimpleErr(ctx, fmt.Sprintf("Error walking `%s`", dir), walkErr)
	}

	stats.EndTime = time.Now()
	return stats
}

//buildProductRow runs the metadata pipeline for one identified file:
//analyze, digest, derive the archive path and optionally place the file.
func buildProductRow(plugin s5p.Plugin, path string, resolveFootprints bool, backend archive.Backend) (*db.ProductRow, error) {
	record, err := plugin.Analyze([]string{path}, resolveFootprints)
	if err != nil {
		return nil, err
	}

	info := model.ArchiveInfo{
		ProductType:  plugin.ProductType(),
		PhysicalName: filepath.Base(path),
		ArchivePath:  plugin.ArchivePath(record),
	}

	if plugin.UseHash() {
		if info.Hash, err = fileDigest(path); err != nil {
			return nil, err
		}
	}

	if backend != nil {
		if err := backend.Put(path, info.ArchivePath, info.PhysicalName); err != nil {
			return nil, err
		}
	}

	row := localindex.RowFromRecord(*record, info)
	return &row, nil
}

//fileDigest computes the lowercase hex md5 digest of a file.
func fileDigest(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	digest := md5.New()
	if _, err := io.Copy(digest, file); err != nil {
		return "", err
	}
	return hex.EncodeToString(digest.Sum(nil)), nil
}
