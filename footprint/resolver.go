package footprint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stcorp/muninn-sentinel5p/util"
	"github.com/venicegeo/geojson-go/geojson"
)

// Products store the observed ground footprint as a GML position list inside
// their EOP metadata group. Extraction is an enrichment: whatever goes wrong
// here, the answer is "no footprint", never an error.

// posListPath is the metadata node holding the exterior boundary coordinates
// of the observed footprint
const posListPath = "/METADATA/EOP_METADATA/om_featureOfInterest/eop_multiExtentOf/gml_surfaceMembers/gml_exterior@gml_posList"

// Product is one opened product file metadata can be fetched from
type Product interface {
	FetchString(nodePath string) (string, error)
	Close() error
}

// Reader is the environment-provided capability for opening structured
// scientific data files. Availability is checked once per process; when the
// capability is missing every resolution short-circuits to no footprint.
type Reader interface {
	Available() bool
	Open(filename string) (Product, error)
}

var defaultReader Reader = newCodaReader()

// Resolve extracts the footprint polygon from a product file using the
// default reader. A nil result means no footprint is available.
func Resolve(filename string) *geojson.Polygon {
	return ResolveWith(defaultReader, filename)
}

// ResolveWith is Resolve with an explicit reader capability
func ResolveWith(reader Reader, filename string) *geojson.Polygon {
	if reader == nil || !reader.Available() {
		return nil
	}

	product, err := reader.Open(filename)
	if err != nil {
		util.LogDebug(&util.BasicLogContext{}, fmt.Sprintf("No footprint for %s: %v", filename, err))
		return nil
	}
	defer product.Close()

	posList, err := product.FetchString(posListPath)
	if err != nil {
		util.LogDebug(&util.BasicLogContext{}, fmt.Sprintf("No footprint for %s: %v", filename, err))
		return nil
	}

	return polygonFromPosList(posList)
}

// polygonFromPosList parses a space-separated alternating latitude/longitude
// sequence into a single-ring polygon. Ring closure is taken from the source
// data as-is. An odd coordinate count or a non-numeric value yields nil.
func polygonFromPosList(posList string) *geojson.Polygon {
	values := strings.Fields(posList)
	if len(values) == 0 || len(values)%2 != 0 {
		return nil
	}

	ring := make([][]float64, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		latitude, latErr := strconv.ParseFloat(values[i], 64)
		longitude, lonErr := strconv.ParseFloat(values[i+1], 64)
		if latErr != nil || lonErr != nil {
			return nil
		}
		ring = append(ring, []float64{longitude, latitude})
	}

	return geojson.NewPolygon([][][]float64{ring})
}
