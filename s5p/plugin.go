package s5p

import (
	"github.com/stcorp/muninn-sentinel5p/model"
)

// Variant is an enum type for the closed set of classifier behaviors
type Variant string

// StandardVariant classifies dated level-1 and level-2 orbit products
const StandardVariant Variant = "standard"

// AuxiliaryVariant classifies generic auxiliary products, including
// open-ended validity windows and configuration files
const AuxiliaryVariant Variant = "auxiliary"

// SnowIceVariant classifies the legacy NISE snow/ice auxiliary naming scheme
const SnowIceVariant Variant = "snow-ice"

// HashAlgorithm is the content digest algorithm the archive framework is
// asked to store; fixed to md5 for compatibility with older framework
// versions
const HashAlgorithm = "md5"

// archiveRoot is the top directory all derived archive paths live under
const archiveRoot = "sentinel-5p"

// Plugin is the classifier contract the archive framework drives for one
// registered product type: filename identification, metadata extraction and
// archive path derivation. Implementations are stateless value objects; all
// methods are safe for concurrent use.
type Plugin interface {
	ProductType() string
	Variant() Variant

	// UseEnclosingDirectory reports whether products of this type are
	// archived as a directory of files. Always false here: every
	// Sentinel-5P product is a single flat file.
	UseEnclosingDirectory() bool

	// UseHash reports whether the archive should store a content digest for
	// products of this type, computed with HashAlgorithm.
	UseHash() bool
	HashType() string

	// Namespaces lists the metadata namespaces Analyze fills beyond the
	// core properties.
	Namespaces() []string

	// Identify reports whether the given path set is a product of this
	// type. True only for a single path whose basename matches this type's
	// filename grammar.
	Identify(paths []string) bool

	// Analyze parses the metadata record out of an identified path set.
	// Footprint extraction is attempted only when inspectContents is set
	// and only for variants that carry a footprint. Calling Analyze on
	// paths that fail Identify returns an error.
	Analyze(paths []string, inspectContents bool) (*model.Properties, error)

	// ArchivePath derives the relative archive directory for an extracted
	// record. The result never includes the filename itself.
	ArchivePath(record *model.Properties) string
}

// pluginBase carries the contract answers shared by every variant
type pluginBase struct {
	productType string
}

func (p pluginBase) ProductType() string {
	return p.productType
}

func (p pluginBase) UseEnclosingDirectory() bool {
	return false
}

func (p pluginBase) UseHash() bool {
	return true
}

func (p pluginBase) HashType() string {
	return HashAlgorithm
}

func (p pluginBase) Namespaces() []string {
	return []string{model.Namespace}
}
