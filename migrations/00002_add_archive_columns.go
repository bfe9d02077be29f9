package migration

import (
	"database/sql"

	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up00002, Down00002)
}

// Up00002 adds the archive hash and footprint columns to the products table
func Up00002(tx *sql.Tx) error {
	_, err := tx.Exec(`
		ALTER TABLE public.s5p_products ADD COLUMN IF NOT EXISTS hash text;
		ALTER TABLE public.s5p_products ADD COLUMN IF NOT EXISTS footprint text;
		`)
	return err
}

// Down00002 undoes the effects of Up00002
func Down00002(tx *sql.Tx) error {
	_, err := tx.Exec(`
		ALTER TABLE public.s5p_products DROP COLUMN IF EXISTS hash;
		ALTER TABLE public.s5p_products DROP COLUMN IF EXISTS footprint;
		`)
	return err
}
