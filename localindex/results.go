package localindex

import (
	"github.com/stcorp/muninn-sentinel5p/localindex/db"
	"github.com/stcorp/muninn-sentinel5p/model"
)

// RowFromRecord flattens an extracted metadata record and its archive
// placement into an index row. The ingest pipeline is the writer side of the
// index, the handlers in this package are the reader side.
func RowFromRecord(record model.Properties, info model.ArchiveInfo) db.ProductRow {
	return db.ProductRow{
		ProductName:      record.Core.ProductName,
		PhysicalName:     info.PhysicalName,
		ProductType:      info.ProductType,
		FileClass:        record.S5P.FileClass,
		FileType:         record.S5P.FileType,
		Orbit:            record.S5P.Orbit,
		Collection:       record.S5P.Collection,
		ProcessorVersion: record.S5P.ProcessorVersion,
		ValidityStart:    record.Core.ValidityStart,
		ValidityStop:     record.Core.ValidityStop,
		CreationDate:     record.Core.CreationDate,
		ArchivePath:      info.ArchivePath,
		Hash:             info.Hash,
		Footprint:        record.Core.Footprint,
	}
}

func indexedResultFromRow(row db.ProductRow) model.IndexedProductResult {
	return model.IndexedProductResult{
		Properties: model.Properties{
			Core: model.CoreProperties{
				ProductName:   row.ProductName,
				CreationDate:  row.CreationDate,
				ValidityStart: row.ValidityStart,
				ValidityStop:  row.ValidityStop,
				Footprint:     row.Footprint,
			},
			S5P: model.S5PProperties{
				FileClass:        row.FileClass,
				FileType:         row.FileType,
				Orbit:            row.Orbit,
				Collection:       row.Collection,
				ProcessorVersion: row.ProcessorVersion,
			},
		},
		ArchiveInfo: model.ArchiveInfo{
			ProductType:  row.ProductType,
			PhysicalName: row.PhysicalName,
			ArchivePath:  row.ArchivePath,
			Hash:         row.Hash,
		},
	}
}
