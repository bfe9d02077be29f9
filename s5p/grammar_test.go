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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardGrammar_FieldExtraction(t *testing.T) {
	g := standardGrammar("L2__NO2___", "OFFL")

	fields := g.match(goodStandardName)
	assert.NotNil(t, fields)
	assert.Equal(t, "OFFL", fields["file_class"])
	assert.Equal(t, "L2__NO2___", fields["file_type"])
	assert.Equal(t, "20210305T094812", fields["validity_start"])
	assert.Equal(t, "20210305T112942", fields["validity_stop"])
	assert.Equal(t, "17605", fields["orbit"])
	assert.Equal(t, "01", fields["collection"])
	assert.Equal(t, "010400", fields["processor_version"])
	assert.Equal(t, "20210307T031242", fields["creation_date"])
}

func TestStandardGrammar_Anchored(t *testing.T) {
	g := standardGrammar("L2__NO2___", "OFFL")

	assert.Nil(t, g.match("X"+goodStandardName))
	assert.Nil(t, g.match(goodStandardName+".gz"))
}

func TestStandardGrammar_PlaceholderAdmittedByPattern(t *testing.T) {
	// placeholders are rejected during analysis, not by the pattern
	g := standardGrammar("L2__NO2___", "OFFL")

	assert.NotNil(t, g.match(placeholderStartName))
}

func TestAuxiliaryGrammar_EmptyExtension(t *testing.T) {
	g := auxiliaryGrammar("AUX_MET_2D", "")

	assert.NotNil(t, g.match("S5P_OPER_AUX_MET_2D_20210301T000000_20210302T000000_20210302T083000"))
	assert.Nil(t, g.match("S5P_OPER_AUX_MET_2D_20210301T000000_20210302T000000_20210302T083000.nc"))
}

func TestSnowIceGrammar(t *testing.T) {
	fields := snowIceGrammar.match("NISE_SSMISF18_20200115.HDFEOS")
	assert.NotNil(t, fields)
	assert.Equal(t, "20200115", fields["validity_start"])

	assert.Nil(t, snowIceGrammar.match("NISE_SSMISF17_20200115.HDFEOS"))
	assert.Nil(t, snowIceGrammar.match("NISE_SSMISF18_20200115.nc"))
}

func TestIdentifySingle(t *testing.T) {
	g := standardGrammar("L2__NO2___", "OFFL")

	assert.True(t, identifySingle(g, []string{goodStandardName}))
	assert.False(t, identifySingle(g, nil))
	assert.False(t, identifySingle(g, []string{goodStandardName, goodStandardName}))
}

func TestProductDisplayName(t *testing.T) {
	assert.Equal(t, "S5P_OFFL_L2__NO2____20210305T094812_20210305T112942_17605_01_010400_20210307T031242",
		productDisplayName(goodStandardName))
	assert.Equal(t, "NISE_SSMISF18_20200115", productDisplayName("NISE_SSMISF18_20200115.HDFEOS"))
	assert.Equal(t, "no_extension", productDisplayName("no_extension"))
}
