package localindex

import (
	"database/sql"

	"github.com/stcorp/muninn-sentinel5p/localindex/db"
	"github.com/stcorp/muninn-sentinel5p/model"
)

func getProduct(tx *sql.Tx, productName string) (model.GeoJSONFeatureCreator, error) {
	product, err := db.GetProductByName(tx, productName)
	if err != nil {
		return nil, err
	}

	return indexedResultFromRow(*product), nil
}
