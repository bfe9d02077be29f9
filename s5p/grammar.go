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
	"path/filepath"
	"regexp"
	"strings"
)

// Three filename grammars cover the whole mission: standard orbit products,
// generic auxiliary products and the legacy NISE scheme. The expected file
// type (and, for standard products, file class) is spliced into the pattern
// per registered product type, so a grammar only ever matches filenames of
// its own type. Timestamp fields admit the all-zero / all-nine placeholders
// used for open-ended auxiliary validity windows; integer fields are width
// constrained only and converted during analysis.

const compactTimeField = `[\dT]{15}`

// grammar is a compiled filename pattern with named field groups
type grammar struct {
	pattern *regexp.Regexp
}

// match parses a basename into its named fields, or nil when the name does
// not belong to this grammar
func (g grammar) match(basename string) map[string]string {
	submatches := g.pattern.FindStringSubmatch(basename)
	if submatches == nil {
		return nil
	}
	fields := map[string]string{}
	for i, name := range g.pattern.SubexpNames() {
		if name != "" {
			fields[name] = submatches[i]
		}
	}
	return fields
}

// standardGrammar compiles the orbit-product layout for one file type and
// class, e.g.
// S5P_OFFL_L2__NO2____20210305T094812_20210305T112942_17605_01_010400_20210307T031242.nc
func standardGrammar(fileType, fileClass string) grammar {
	pattern := `^S5P` +
		`_(?P<file_class>` + regexp.QuoteMeta(fileClass) + `)` +
		`_(?P<file_type>` + regexp.QuoteMeta(fileType) + `)` +
		`_(?P<validity_start>` + compactTimeField + `)` +
		`_(?P<validity_stop>` + compactTimeField + `)` +
		`_(?P<orbit>.{5})` +
		`_(?P<collection>.{2})` +
		`_(?P<processor_version>.{6})` +
		`_(?P<creation_date>` + compactTimeField + `)` +
		`\.nc$`
	return grammar{pattern: regexp.MustCompile(pattern)}
}

// auxiliaryGrammar compiles the auxiliary layout for one file type, e.g.
// S5P_OPER_AUX_CTMANA_20210301T000000_20210302T000000_20210302T083000.nc
// The file class is not constrained to a fixed value and the extension may
// be empty, in which case the name simply ends after the creation date.
func auxiliaryGrammar(fileType, extension string) grammar {
	pattern := `^S5P` +
		`_(?P<file_class>.{4})` +
		`_(?P<file_type>` + regexp.QuoteMeta(fileType) + `)` +
		`_(?P<validity_start>` + compactTimeField + `)` +
		`_(?P<validity_stop>` + compactTimeField + `)` +
		`_(?P<creation_date>` + compactTimeField + `)`
	if extension != "" {
		pattern += `\.` + regexp.QuoteMeta(extension)
	}
	pattern += `$`
	return grammar{pattern: regexp.MustCompile(pattern)}
}

// snowIceGrammar matches the NISE snow/ice extent files kept under their
// upstream NSIDC name, e.g. NISE_SSMISF18_20200115.HDFEOS
var snowIceGrammar = grammar{pattern: regexp.MustCompile(`^NISE_SSMISF18_(?P<validity_start>\d{8})\.HDFEOS$`)}

// identifySingle is the Identify behavior every variant shares: exactly one
// path, and its basename matches the grammar
func identifySingle(g grammar, paths []string) bool {
	if len(paths) != 1 {
		return false
	}
	return g.match(filepath.Base(paths[0])) != nil
}

// productDisplayName is the archive display name of a product file: the
// basename with its extension stripped
func productDisplayName(basename string) string {
	return strings.TrimSuffix(basename, filepath.Ext(basename))
}
