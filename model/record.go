package model

import (
	"time"

	"github.com/venicegeo/geojson-go/geojson"
)

// CoreProperties is the mission-independent part of a product metadata
// record: display name, timing and the optional footprint geometry. The
// footprint stays nil when content inspection is skipped or the extraction
// capability is unavailable.
type CoreProperties struct {
	ProductName   string
	CreationDate  time.Time
	ValidityStart time.Time
	ValidityStop  time.Time
	Footprint     *geojson.Polygon
}

// S5PProperties is the mission-specific part of a record, registered under
// the "s5p" namespace. Orbit, collection and processor version exist only
// for standard level-1 and level-2 products; they stay nil for auxiliary
// products rather than defaulting to zero.
type S5PProperties struct {
	FileClass        string
	FileType         string
	Orbit            *int
	Collection       *int
	ProcessorVersion *int
}

// Properties is a complete product metadata record as handed to the archive
// framework, partitioned into the namespaces the framework stores
type Properties struct {
	Core CoreProperties
	S5P  S5PProperties
}

// GeoJSONFeature implements the GeoJSONFeatureCreator interface
func (p Properties) GeoJSONFeature() (*geojson.Feature, error) {
	var geometry interface{}
	if p.Core.Footprint != nil {
		geometry = p.Core.Footprint
	}

	feature := geojson.NewFeature(geometry, p.Core.ProductName, map[string]interface{}{
		"creation_date":  p.Core.CreationDate.Format(ProductTimeLayout),
		"validity_start": p.Core.ValidityStart.Format(ProductTimeLayout),
		"validity_stop":  p.Core.ValidityStop.Format(ProductTimeLayout),
		"file_class":     p.S5P.FileClass,
		"file_type":      p.S5P.FileType,
	})
	if p.S5P.Orbit != nil {
		feature.Properties["orbit"] = *p.S5P.Orbit
	}
	if p.S5P.Collection != nil {
		feature.Properties["collection"] = *p.S5P.Collection
	}
	if p.S5P.ProcessorVersion != nil {
		feature.Properties["processor_version"] = *p.S5P.ProcessorVersion
	}
	if p.Core.Footprint != nil {
		feature.Bbox = feature.ForceBbox()
	}
	return feature, nil
}

// IndexedProductResult is a product record retrieved from the local index,
// carrying archive placement data on top of the extracted metadata
type IndexedProductResult struct {
	Properties
	ArchiveInfo
}

// GeoJSONFeature implements the GeoJSONFeatureCreator interface
func (result IndexedProductResult) GeoJSONFeature() (*geojson.Feature, error) {
	feature, err := result.Properties.GeoJSONFeature()
	if err != nil {
		return nil, err
	}

	err = result.ArchiveInfo.Apply(feature)
	if err != nil {
		return nil, err
	}

	return feature, nil
}

// MultiProductResult is a container type for bundling multiple results
// together, e.g. as the output of a discovery endpoint
type MultiProductResult struct {
	FeatureCreators []GeoJSONFeatureCreator
}

// GeoJSONFeatureCollection implements the GeoJSONFeatureCollectionCreator interface
func (result MultiProductResult) GeoJSONFeatureCollection() (*geojson.FeatureCollection, error) {
	var err error
	features := make([]*geojson.Feature, len(result.FeatureCreators))
	for i, creator := range result.FeatureCreators {
		features[i], err = creator.GeoJSONFeature()
		if err != nil {
			return nil, err
		}
	}

	return geojson.NewFeatureCollection(features), nil
}
