package s5p

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/stcorp/muninn-sentinel5p/model"
)

// snowIceProduct classifies the NISE snow/ice extent auxiliary product,
// which keeps its upstream NSIDC filename instead of the mission convention.
// The name carries a single day: validity runs from that day's midnight for
// exactly 24 hours, and no independent creation timestamp exists, so the
// validity start doubles as the creation date. File class and file type are
// implied by the scheme rather than read from the name.
type snowIceProduct struct {
	pluginBase
	grammar grammar
}

func newSnowIceProduct(productType string, entry catalogEntry) *snowIceProduct {
	return &snowIceProduct{
		pluginBase: pluginBase{productType: productType},
		grammar:    entry.grammar,
	}
}

func (p *snowIceProduct) Variant() Variant {
	return SnowIceVariant
}

func (p *snowIceProduct) Identify(paths []string) bool {
	return identifySingle(p.grammar, paths)
}

func (p *snowIceProduct) Analyze(paths []string, inspectContents bool) (*model.Properties, error) {
	if len(paths) != 1 {
		return nil, fmt.Errorf("Expected a single product file for %s, got %d paths", p.productType, len(paths))
	}
	basename := filepath.Base(paths[0])
	fields := p.grammar.match(basename)
	if fields == nil {
		return nil, fmt.Errorf("Filename is not a %s product: `%s`", p.productType, basename)
	}

	start, err := model.ParseProductDate(fields["validity_start"])
	if err != nil {
		return nil, err
	}

	record := &model.Properties{}
	record.Core.ProductName = productDisplayName(basename)
	record.Core.CreationDate = start
	record.Core.ValidityStart = start
	record.Core.ValidityStop = start.Add(24 * time.Hour)
	record.S5P.FileClass = OperationalFileClass
	record.S5P.FileType = SnowIceFileType

	return record, nil
}

func (p *snowIceProduct) ArchivePath(record *model.Properties) string {
	return auxiliaryArchivePath(record.S5P.FileType, record.Core.ValidityStart)
}
