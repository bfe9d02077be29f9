package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/stcorp/muninn-sentinel5p/util"
)

//ConnectionProvider is a function that can provide a database connection.
type ConnectionProvider func(util.LogContext) (*sql.DB, error)

const progressLogInterval = 30 * time.Second

const databaseMaintenanceStatement = `ANALYZE public.s5p_products;`

//ImportStats summarizes one completed import run.
type ImportStats struct {
	NumberIndexed int
	NumberError   int
	StartTime     time.Time
	EndTime       time.Time
}

func (stats *ImportStats) String() string {
	return fmt.Sprintf(`
		Start:	%v
		End:	%v
		#Indexed:	%v
		#Error:	%v
		`,
		stats.StartTime.Format("Mon Jan _2 15:04:05 2006"),
		stats.EndTime.Format("Mon Jan _2 15:04:05 2006"),
		stats.NumberIndexed,
		stats.NumberError)
}

//Importer writes extracted product records into the local index.
type Importer struct {
	dbConnProvider ConnectionProvider
	ctx            util.LogContext
}

//NewImporter initializes a new importer.
func NewImporter(dbConnProvider ConnectionProvider) *Importer {
	return &Importer{
		dbConnProvider: dbConnProvider,
		ctx:            &util.BasicLogContext{},
	}
}

//Run drains the records channel into the index, one upsert per record.
//Note: this is blocking. It returns when the channel is closed. Per-record
//failures are counted and logged, they do not abort the run.
func (imp *Importer) Run(records <-chan ProductRow) (*ImportStats, error) {
	//Database connection is opened right before the ingest, and closed
	//immediately after.
	database, err := imp.dbConnProvider(imp.ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Could not open database connection")
	}
	defer database.Close()

	stmt, err := database.Prepare(upsertProductStatement)
	if err != nil {
		return nil, errors.Wrap(err, "Could not prepare the index insert statement")
	}
	defer stmt.Close()

	stats := &ImportStats{StartTime: time.Now()}
	lastProgressLogTime := time.Now()

	for record := range records {
		if _, err := stmt.Exec(upsertArgs(record)...); err != nil {
			stats.NumberError++
			util.LogSimpleErr(imp.ctx, fmt.Sprintf("Error indexing product `%s`", record.ProductName), err)
		} else {
			stats.NumberIndexed++
		}

		//Occasionally emit progress to the log stream
		if time.Since(lastProgressLogTime) > progressLogInterval {
			util.LogInfo(imp.ctx, fmt.Sprintf("Ingest progress: indexed:%v error:%v", stats.NumberIndexed, stats.NumberError))
			lastProgressLogTime = time.Now()
		}
	}

	imp.doDatabaseMaintenance(database)

	stats.EndTime = time.Now()
	util.LogInfo(imp.ctx, fmt.Sprintf("Ingest complete: %v", stats.String()))
	return stats, nil
}

//doDatabaseMaintenance performs any maintenance that should be done
//after the import operation, e.g. refreshing planner statistics
func (imp *Importer) doDatabaseMaintenance(database *sql.DB) {
	if _, err := database.Exec(databaseMaintenanceStatement); err != nil {
		util.LogAlert(imp.ctx, fmt.Sprintf("Error during database maintenance: %v", err))
	}
}
