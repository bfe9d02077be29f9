// Copyright 2018, RadiantBlue Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package s5p

import (
	"fmt"
	"path"
	"path/filepath"
	"strconv"

	"github.com/stcorp/muninn-sentinel5p/footprint"
	"github.com/stcorp/muninn-sentinel5p/model"
)

// standardProduct classifies dated level-1 and level-2 orbit products. Each
// instance is bound to one (file type, file class) pair and only matches
// filenames carrying exactly those values.
type standardProduct struct {
	pluginBase
	fileType  string
	fileClass string
	grammar   grammar
}

func newStandardProduct(productType string, entry catalogEntry) *standardProduct {
	return &standardProduct{
		pluginBase: pluginBase{productType: productType},
		fileType:   entry.fileType,
		fileClass:  entry.fileClass,
		grammar:    entry.grammar,
	}
}

func (p *standardProduct) Variant() Variant {
	return StandardVariant
}

func (p *standardProduct) Identify(paths []string) bool {
	return identifySingle(p.grammar, paths)
}

func (p *standardProduct) Analyze(paths []string, inspectContents bool) (*model.Properties, error) {
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
	if record.Core.ValidityStart, err = model.ParseProductTime(fields["validity_start"]); err != nil {
		return nil, err
	}
	if record.Core.ValidityStop, err = model.ParseProductTime(fields["validity_stop"]); err != nil {
		return nil, err
	}

	record.S5P.FileClass = fields["file_class"]
	record.S5P.FileType = fields["file_type"]

	orbit, err := strconv.Atoi(fields["orbit"])
	if err != nil {
		return nil, err
	}
	collection, err := strconv.Atoi(fields["collection"])
	if err != nil {
		return nil, err
	}
	processorVersion, err := strconv.Atoi(fields["processor_version"])
	if err != nil {
		return nil, err
	}
	record.S5P.Orbit = &orbit
	record.S5P.Collection = &collection
	record.S5P.ProcessorVersion = &processorVersion

	if inspectContents {
		record.Core.Footprint = footprint.Resolve(paths[0])
	}

	return record, nil
}

func (p *standardProduct) ArchivePath(record *model.Properties) string {
	start := record.Core.ValidityStart
	return path.Join(archiveRoot, record.S5P.FileType, record.S5P.FileClass,
		start.Format("2006"), start.Format("01"), start.Format("02"))
}
