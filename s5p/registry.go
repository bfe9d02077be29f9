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
	"sort"
	"strings"
)

// catalogEntry holds everything needed to construct a classifier for one
// registered product type. Grammars are compiled while the catalog builds,
// so a malformed family code fails at startup rather than on first use.
type catalogEntry struct {
	variant   Variant
	fileType  string
	fileClass string
	extension string
	grammar   grammar
}

var productCatalog = buildCatalog()

var productTypes = func() []string {
	types := make([]string, 0, len(productCatalog))
	for productType := range productCatalog {
		types = append(types, productType)
	}
	sort.Strings(types)
	return types
}()

func buildCatalog() map[string]catalogEntry {
	catalog := map[string]catalogEntry{}

	standardFileTypes := append(append([]string{}, Level1FileTypes...), Level2FileTypes...)
	for _, fileType := range standardFileTypes {
		mustFieldWidth("file type", fileType, 10)
		for _, fileClass := range FileClasses {
			mustFieldWidth("file class", fileClass, 4)
			catalog[StandardProductType(fileType, fileClass)] = catalogEntry{
				variant:   StandardVariant,
				fileType:  fileType,
				fileClass: fileClass,
				extension: "nc",
				grammar:   standardGrammar(fileType, fileClass),
			}
		}
	}

	for _, fileType := range AuxiliaryFileTypes {
		mustFieldWidth("file type", fileType, 10)
		switch {
		case fileType == SnowIceFileType:
			catalog[fileType] = catalogEntry{
				variant:  SnowIceVariant,
				fileType: fileType,
				grammar:  snowIceGrammar,
			}
		case strings.HasPrefix(fileType, ConfigFileTypePrefix):
			catalog[fileType] = catalogEntry{
				variant:   AuxiliaryVariant,
				fileType:  fileType,
				extension: "cfg",
				grammar:   auxiliaryGrammar(fileType, "cfg"),
			}
		default:
			catalog[fileType] = catalogEntry{
				variant:   AuxiliaryVariant,
				fileType:  fileType,
				extension: "nc",
				grammar:   auxiliaryGrammar(fileType, "nc"),
			}
		}
	}

	return catalog
}

func mustFieldWidth(field, value string, width int) {
	if len(value) != width {
		panic(fmt.Sprintf("Registered %s is not %d characters: `%s`", field, width, value))
	}
}

// ProductTypes returns every registered product type identifier, sorted for
// deterministic iteration
func ProductTypes() []string {
	return append([]string(nil), productTypes...)
}

// Resolve returns a classifier for the given product type identifier. The
// second return is false when the identifier is not in the catalog; an
// unknown type is a lookup miss, not an error.
func Resolve(productType string) (Plugin, bool) {
	entry, ok := productCatalog[productType]
	if !ok {
		return nil, false
	}
	switch entry.variant {
	case SnowIceVariant:
		return newSnowIceProduct(productType, entry), true
	case AuxiliaryVariant:
		return newAuxiliaryProduct(productType, entry), true
	default:
		return newStandardProduct(productType, entry), true
	}
}

// IdentifyProduct finds the registered product type whose classifier accepts
// the given path set, trying types in catalog order. Grammars are
// parameterized per type, so at most one standard type can accept a name;
// the boolean is false when nothing matches.
func IdentifyProduct(paths []string) (Plugin, bool) {
	for _, productType := range productTypes {
		plugin, _ := Resolve(productType)
		if plugin.Identify(paths) {
			return plugin, true
		}
	}
	return nil, false
}
