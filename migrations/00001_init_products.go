package migration

import (
	"database/sql"

	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up00001, Down00001)
}

//Up00001 creates the product index table and its search indexes.
func Up00001(tx *sql.Tx) error {
	// This code is executed when the migration is applied.

	err := addProductsTable(tx)

	if err == nil {
		err = addProductIndexes(tx)
	}

	return err
}

//Down00001 undoes the db changes.
func Down00001(tx *sql.Tx) error {
	// This code is executed when the migration is rolled back.
	_, err := tx.Exec(`DROP TABLE IF EXISTS public.s5p_products;`)
	return err
}

func addProductsTable(tx *sql.Tx) error {

	_, err := tx.Exec(`
		CREATE TABLE public.s5p_products
		(
			id bigserial NOT NULL,
			product_name text COLLATE pg_catalog."default" NOT NULL,
			physical_name text COLLATE pg_catalog."default" NOT NULL,
			product_type text COLLATE pg_catalog."default" NOT NULL,
			file_class text COLLATE pg_catalog."default" NOT NULL,
			file_type text COLLATE pg_catalog."default" NOT NULL,
			orbit integer,
			collection integer,
			processor_version integer,
			validity_start timestamp without time zone NOT NULL,
			validity_stop timestamp without time zone NOT NULL,
			creation_date timestamp without time zone NOT NULL,
			archive_path text COLLATE pg_catalog."default" NOT NULL,
			ingested_at timestamp without time zone NOT NULL DEFAULT now(),
			CONSTRAINT "s5p_products_pk_id" PRIMARY KEY (id)
		)
		WITH (
			OIDS = FALSE
		);
		`)

	return err
}

func addProductIndexes(tx *sql.Tx) error {

	_, err := tx.Exec(`ALTER TABLE public.s5p_products
		ADD CONSTRAINT s5p_products_unique_product_name UNIQUE (product_name);

		CREATE INDEX idx_s5p_products_product_type
		ON public.s5p_products USING btree
		(product_type);

		CREATE INDEX idx_s5p_products_file_class
		ON public.s5p_products USING btree
		(file_class);

		CREATE INDEX idx_s5p_products_file_type
		ON public.s5p_products USING btree
		(file_type);

		CREATE INDEX idx_s5p_products_orbit
		ON public.s5p_products USING btree
		(orbit);

		CREATE INDEX idx_s5p_products_collection
		ON public.s5p_products USING btree
		(collection);

		CREATE INDEX idx_s5p_products_processor_version
		ON public.s5p_products USING btree
		(processor_version);

		CREATE INDEX idx_s5p_products_validity
		ON public.s5p_products USING btree
		(validity_start, validity_stop);
		`)

	return err
}
