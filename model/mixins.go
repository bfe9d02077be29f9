package model

import (
	"github.com/venicegeo/geojson-go/geojson"
)

// ArchiveInfo is a mixin carrying archive placement fields that the host
// side attaches to a record once a product has been classified: the resolved
// product type, the derived relative archive path, the stored filename and
// the content digest.
type ArchiveInfo struct {
	ProductType  string
	PhysicalName string
	ArchivePath  string
	Hash         string
}

// Apply implements the GeoJSONFeatureMixin interface
func (ai ArchiveInfo) Apply(feature *geojson.Feature) error {
	feature.Properties["product_type"] = ai.ProductType
	feature.Properties["physical_name"] = ai.PhysicalName
	feature.Properties["archive_path"] = ai.ArchivePath
	if ai.Hash != "" {
		feature.Properties["hash"] = ai.Hash
	}
	return nil
}
