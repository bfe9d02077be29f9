package s5p

import (
	"fmt"
	"path"
	"path/filepath"
	"time"

	"github.com/stcorp/muninn-sentinel5p/model"
)

// auxiliaryProduct classifies generic auxiliary products. The file class is
// not fixed per type the way it is for standard products, and validity
// fields may carry the unbounded placeholders. Auxiliary products never get
// a footprint.
type auxiliaryProduct struct {
	pluginBase
	fileType  string
	extension string
	grammar   grammar
}

func newAuxiliaryProduct(productType string, entry catalogEntry) *auxiliaryProduct {
	return &auxiliaryProduct{
		pluginBase: pluginBase{productType: productType},
		fileType:   entry.fileType,
		extension:  entry.extension,
		grammar:    entry.grammar,
	}
}

func (p *auxiliaryProduct) Variant() Variant {
	return AuxiliaryVariant
}

func (p *auxiliaryProduct) Identify(paths []string) bool {
	return identifySingle(p.grammar, paths)
}

func (p *auxiliaryProduct) Analyze(paths []string, inspectContents bool) (*model.Properties, error) {
	if len(paths) != 1 {
		return nil, fmt.Errorf("Expected a single product file for %s, got %d paths", p.productType, len(paths))
	}
	basename := filepath.Base(paths[0])
	fields := p.grammar.match(basename)
	if fields == nil {
		return nil, fmt.Errorf("Filename is not a %s product: `%s`", p.productType, basename)
	}

	record := &model.Properties{}
	record.Core.ProductName = productDisplayName(basename)

	var err error
	if record.Core.CreationDate, err = model.ParseProductTime(fields["creation_date"]); err != nil {
		return nil, err
	}
	if record.Core.ValidityStart, err = model.ParseValidityStart(fields["validity_start"]); err != nil {
		return nil, err
	}
	if record.Core.ValidityStop, err = model.ParseValidityStop(fields["validity_stop"]); err != nil {
		return nil, err
	}

	record.S5P.FileClass = fields["file_class"]
	record.S5P.FileType = fields["file_type"]

	return record, nil
}

func (p *auxiliaryProduct) ArchivePath(record *model.Properties) string {
	return auxiliaryArchivePath(record.S5P.FileType, record.Core.ValidityStart)
}

// auxiliaryArchivePath derives the archive location shared by both auxiliary
// naming schemes: products whose validity start is unbounded have no
// meaningful date and are stored flat under their family code, dated ones by
// month.
func auxiliaryArchivePath(fileType string, validityStart time.Time) string {
	if validityStart.Equal(model.ValidityMin) {
		return path.Join(archiveRoot, fileType)
	}
	return path.Join(archiveRoot, fileType, validityStart.Format("2006"), validityStart.Format("01"))
}
