package s5p

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/stcorp/muninn-sentinel5p/model"
)

const datedAuxName = "S5P_OPER_AUX_CTMANA_20210301T000000_20210302T000000_20210302T083000.nc"
const unboundedAuxName = "S5P_OPER_AUX_ISRF___00000000T000000_99999999T999999_20180529T120000.nc"
const configAuxName = "S5P_OPER_CFG_NO2____00000000T000000_99999999T999999_20180601T000000.cfg"

func TestAuxiliaryProduct_Identify(t *testing.T) {
	plugin, ok := Resolve("AUX_CTMANA")
	assert.True(t, ok, "missing registered type: AUX_CTMANA")

	assert.True(t, plugin.Identify([]string{datedAuxName}))
	assert.True(t, plugin.Identify([]string{"/data/inbox/" + datedAuxName}))
	assert.False(t, plugin.Identify([]string{unboundedAuxName}), "CTMANA type should not accept an ISRF filename")
	assert.False(t, plugin.Identify([]string{datedAuxName, datedAuxName}))
}

func TestAuxiliaryProduct_Identify_AnyFileClass(t *testing.T) {
	plugin, ok := Resolve("AUX_CTMANA")
	assert.True(t, ok)

	// auxiliary types do not pin the file class the way standard types do
	assert.True(t, plugin.Identify([]string{"S5P_TEST_AUX_CTMANA_20210301T000000_20210302T000000_20210302T083000.nc"}))
	assert.True(t, plugin.Identify([]string{"S5P_REPR_AUX_CTMANA_20210301T000000_20210302T000000_20210302T083000.nc"}))
}

func TestAuxiliaryProduct_Identify_ExtensionBoundToType(t *testing.T) {
	data, ok := Resolve("AUX_CTMANA")
	assert.True(t, ok)
	assert.False(t, data.Identify([]string{"S5P_OPER_AUX_CTMANA_20210301T000000_20210302T000000_20210302T083000.cfg"}))

	config, ok := Resolve("CFG_NO2___")
	assert.True(t, ok)
	assert.True(t, config.Identify([]string{configAuxName}))
	assert.False(t, config.Identify([]string{"S5P_OPER_CFG_NO2____00000000T000000_99999999T999999_20180601T000000.nc"}))
}

func TestAuxiliaryProduct_Analyze(t *testing.T) {
	plugin, ok := Resolve("AUX_CTMANA")
	assert.True(t, ok)

	record, err := plugin.Analyze([]string{datedAuxName}, true)
	assert.Nil(t, err)

	assert.Equal(t, "S5P_OPER_AUX_CTMANA_20210301T000000_20210302T000000_20210302T083000", record.Core.ProductName)
	assert.Equal(t, time.Date(2021, time.March, 2, 8, 30, 0, 0, time.UTC), record.Core.CreationDate)
	assert.Equal(t, time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC), record.Core.ValidityStart)
	assert.Equal(t, time.Date(2021, time.March, 2, 0, 0, 0, 0, time.UTC), record.Core.ValidityStop)
	assert.Equal(t, "OPER", record.S5P.FileClass)
	assert.Equal(t, "AUX_CTMANA", record.S5P.FileType)

	assert.Nil(t, record.S5P.Orbit, "auxiliary products carry no orbit")
	assert.Nil(t, record.S5P.Collection)
	assert.Nil(t, record.S5P.ProcessorVersion)
	assert.Nil(t, record.Core.Footprint, "auxiliary products carry no footprint even when contents are inspected")
}

func TestAuxiliaryProduct_Analyze_UnboundedValidity(t *testing.T) {
	plugin, ok := Resolve("AUX_ISRF__")
	assert.True(t, ok)

	record, err := plugin.Analyze([]string{unboundedAuxName}, false)
	assert.Nil(t, err)

	assert.True(t, record.Core.ValidityStart.Equal(model.ValidityMin), "placeholder start should map to the minimum validity")
	assert.True(t, record.Core.ValidityStop.Equal(model.ValidityMax), "placeholder stop should map to the maximum validity")
	assert.Equal(t, time.Date(2018, time.May, 29, 12, 0, 0, 0, time.UTC), record.Core.CreationDate)
}

func TestAuxiliaryProduct_Analyze_ErrorWhenNotMatching(t *testing.T) {
	plugin, ok := Resolve("AUX_CTMANA")
	assert.True(t, ok)

	record, err := plugin.Analyze([]string{goodStandardName}, false)
	assert.Nil(t, record)
	assert.NotNil(t, err)
}

func TestAuxiliaryProduct_ArchivePath_Dated(t *testing.T) {
	plugin, ok := Resolve("AUX_CTMANA")
	assert.True(t, ok)

	record, err := plugin.Analyze([]string{datedAuxName}, false)
	assert.Nil(t, err)

	assert.Equal(t, "sentinel-5p/AUX_CTMANA/2021/03", plugin.ArchivePath(record))
}

func TestAuxiliaryProduct_ArchivePath_UnboundedStart(t *testing.T) {
	plugin, ok := Resolve("AUX_ISRF__")
	assert.True(t, ok)

	record, err := plugin.Analyze([]string{unboundedAuxName}, false)
	assert.Nil(t, err)

	assert.Equal(t, "sentinel-5p/AUX_ISRF__", plugin.ArchivePath(record), "unbounded validity should archive flat under the family code")
}

func TestAuxiliaryProduct_Contract(t *testing.T) {
	plugin, ok := Resolve("CFG_NO2___")
	assert.True(t, ok)

	assert.Equal(t, "CFG_NO2___", plugin.ProductType())
	assert.Equal(t, AuxiliaryVariant, plugin.Variant())
	assert.False(t, plugin.UseEnclosingDirectory())
	assert.True(t, plugin.UseHash())
	assert.Equal(t, "md5", plugin.HashType())
	assert.Equal(t, []string{"s5p"}, plugin.Namespaces())
}
