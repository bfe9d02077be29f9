package localindex

import (
	"database/sql"

	"github.com/stcorp/muninn-sentinel5p/localindex/db"
	"github.com/stcorp/muninn-sentinel5p/model"
)

func discoverProducts(tx *sql.Tx, filter db.SearchFilter) (model.GeoJSONFeatureCollectionCreator, error) {
	products, err := db.SearchProducts(tx, filter)
	if err != nil {
		return nil, err
	}

	multiResult := model.MultiProductResult{
		FeatureCreators: make([]model.GeoJSONFeatureCreator, len(products)),
	}

	for i, product := range products {
		multiResult.FeatureCreators[i] = indexedResultFromRow(product)
	}

	return multiResult, nil
}
