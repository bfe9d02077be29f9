package db

import (
	"database/sql"
	"fmt"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/stcorp/muninn-sentinel5p/util"
)

func TestImporterRun(t *testing.T) {
	// Mock
	database, mock, err := sqlmock.New()
	assert.Nil(t, err)

	prepared := mock.ExpectPrepare(`(?s)INSERT INTO public\.s5p_products.+ON CONFLICT \(product_name\) DO UPDATE`)
	prepared.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	prepared.ExpectExec().WillReturnError(fmt.Errorf("insert failed"))
	prepared.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`ANALYZE public\.s5p_products`).WillReturnResult(sqlmock.NewResult(0, 0))

	provider := func(util.LogContext) (*sql.DB, error) { return database, nil }

	records := make(chan ProductRow, 3)
	records <- testStandardRow()
	brokenRow := testStandardRow()
	brokenRow.ProductName = "S5P_BROKEN"
	records <- brokenRow
	records <- testStandardRow()
	close(records)

	// Tested code
	stats, err := NewImporter(provider).Run(records)

	// Asserts
	assert.Nil(t, err)
	assert.Equal(t, 2, stats.NumberIndexed)
	assert.Equal(t, 1, stats.NumberError, "a failed insert should be counted, not abort the run")
	assert.False(t, stats.EndTime.Before(stats.StartTime))
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestImporterRun_ConnectionError(t *testing.T) {
	// Mock
	provider := func(util.LogContext) (*sql.DB, error) { return nil, fmt.Errorf("no database") }

	records := make(chan ProductRow)
	close(records)

	// Tested code
	stats, err := NewImporter(provider).Run(records)

	// Asserts
	assert.Nil(t, stats)
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "Could not open database connection")
}
