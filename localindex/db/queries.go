package db

import (
	"database/sql"
	"fmt"

	"github.com/venicegeo/geojson-go/geojson"
)

const productColumns = `product_name, physical_name, product_type, file_class, file_type,
	orbit, collection, processor_version, validity_start, validity_stop, creation_date,
	archive_path, hash, footprint`

const upsertProductStatement = `
	INSERT INTO public.s5p_products (product_name, physical_name, product_type, file_class, file_type,
		orbit, collection, processor_version, validity_start, validity_stop, creation_date,
		archive_path, hash, footprint)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	ON CONFLICT (product_name) DO UPDATE SET
		physical_name=EXCLUDED.physical_name,
		product_type=EXCLUDED.product_type,
		file_class=EXCLUDED.file_class,
		file_type=EXCLUDED.file_type,
		orbit=EXCLUDED.orbit,
		collection=EXCLUDED.collection,
		processor_version=EXCLUDED.processor_version,
		validity_start=EXCLUDED.validity_start,
		validity_stop=EXCLUDED.validity_stop,
		creation_date=EXCLUDED.creation_date,
		archive_path=EXCLUDED.archive_path,
		hash=EXCLUDED.hash,
		footprint=EXCLUDED.footprint,
		ingested_at=now()`

// DefaultSearchLimit bounds searches that do not ask for a specific count
const DefaultSearchLimit = 100

// InsertProduct writes one product record, replacing any previous record with
// the same product name
func InsertProduct(tx *sql.Tx, product ProductRow) error {
	_, err := tx.Exec(upsertProductStatement, upsertArgs(product)...)
	return err
}

// GetProductByName returns the indexed record for one product name, or
// sql.ErrNoRows when the product is not indexed
func GetProductByName(tx *sql.Tx, productName string) (*ProductRow, error) {
	rows, err := tx.Query(`
		SELECT `+productColumns+`
		FROM public.s5p_products
		WHERE product_name=$1
		LIMIT 1`,
		productName,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, sql.ErrNoRows
	}
	return scanProduct(rows)
}

// SearchProducts returns the indexed records matching the filter, ordered by
// validity start then product name
func SearchProducts(tx *sql.Tx, filter SearchFilter) ([]ProductRow, error) {
	query := `
		SELECT ` + productColumns + `
		FROM public.s5p_products
		WHERE validity_stop >= $1 AND validity_start <= $2`
	args := []interface{}{filter.ValidityFrom, filter.ValidityTo}

	if filter.ProductType != "" {
		args = append(args, filter.ProductType)
		query += fmt.Sprintf(" AND product_type=$%d", len(args))
	}
	if filter.FileClass != "" {
		args = append(args, filter.FileClass)
		query += fmt.Sprintf(" AND file_class=$%d", len(args))
	}
	if filter.FileType != "" {
		args = append(args, filter.FileType)
		query += fmt.Sprintf(" AND file_type=$%d", len(args))
	}
	if filter.Orbit != nil {
		args = append(args, *filter.Orbit)
		query += fmt.Sprintf(" AND orbit=$%d", len(args))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY validity_start, product_name LIMIT $%d", len(args))

	rows, err := tx.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []ProductRow{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}
	return products, rows.Err()
}

func scanProduct(rows *sql.Rows) (*ProductRow, error) {
	var product ProductRow
	var orbit, collection, processorVersion sql.NullInt64
	var hash sql.NullString
	var footprintBytes []byte

	err := rows.Scan(&product.ProductName, &product.PhysicalName, &product.ProductType,
		&product.FileClass, &product.FileType,
		&orbit, &collection, &processorVersion,
		&product.ValidityStart, &product.ValidityStop, &product.CreationDate,
		&product.ArchivePath, &hash, &footprintBytes)
	if err != nil {
		return nil, err
	}

	if orbit.Valid {
		value := int(orbit.Int64)
		product.Orbit = &value
	}
	if collection.Valid {
		value := int(collection.Int64)
		product.Collection = &value
	}
	if processorVersion.Valid {
		value := int(processorVersion.Int64)
		product.ProcessorVersion = &value
	}
	product.Hash = hash.String

	if len(footprintBytes) > 0 {
		product.Footprint, err = geojson.PolygonFromBytes(footprintBytes)
		if err != nil {
			return nil, err
		}
	}

	return &product, nil
}

func upsertArgs(product ProductRow) []interface{} {
	var hash interface{}
	if product.Hash != "" {
		hash = product.Hash
	}
	var footprint interface{}
	if product.Footprint != nil {
		footprint = product.Footprint.String()
	}
	return []interface{}{product.ProductName, product.PhysicalName, product.ProductType,
		product.FileClass, product.FileType,
		product.Orbit, product.Collection, product.ProcessorVersion,
		product.ValidityStart, product.ValidityStop, product.CreationDate,
		product.ArchivePath, hash, footprint}
}
