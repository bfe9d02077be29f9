package db

import (
	"time"

	"github.com/venicegeo/geojson-go/geojson"
)

// ProductRow is one indexed product as stored in the s5p_products table.
// Orbit, collection and processor version are null for auxiliary products;
// the footprint is null when extraction was skipped or unavailable.
type ProductRow struct {
	ProductName      string
	PhysicalName     string
	ProductType      string
	FileClass        string
	FileType         string
	Orbit            *int
	Collection       *int
	ProcessorVersion *int
	ValidityStart    time.Time
	ValidityStop     time.Time
	CreationDate     time.Time
	ArchivePath      string
	Hash             string
	Footprint        *geojson.Polygon
}

// SearchFilter restricts an index search. Zero-valued string fields and a nil
// orbit are ignored; the validity bounds select rows whose window overlaps
// [ValidityFrom, ValidityTo].
type SearchFilter struct {
	ProductType  string
	FileClass    string
	FileType     string
	Orbit        *int
	ValidityFrom time.Time
	ValidityTo   time.Time
	Limit        int
}
