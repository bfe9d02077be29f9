package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseProductTime_Success(t *testing.T) {
	// Tested code
	parsed, err := ParseProductTime("20210305T094812")

	// Asserts
	assert.Nil(t, err)
	assert.Equal(t, time.Date(2021, time.March, 5, 9, 48, 12, 0, time.UTC), parsed)
}

func TestParseProductTime_Error(t *testing.T) {
	// Tested code
	_, err := ParseProductTime("2021-03-05T09:48:12")

	// Asserts
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "2021-03-05T09:48:12")
}

func TestParseProductTime_RejectsPlaceholders(t *testing.T) {
	// Tested code
	_, startErr := ParseProductTime(ValidityStartUnbounded)
	_, stopErr := ParseProductTime(ValidityStopUnbounded)

	// Asserts
	assert.NotNil(t, startErr)
	assert.NotNil(t, stopErr)
}

func TestParseProductDate_Success(t *testing.T) {
	// Tested code
	parsed, err := ParseProductDate("20200115")

	// Asserts
	assert.Nil(t, err)
	assert.Equal(t, time.Date(2020, time.January, 15, 0, 0, 0, 0, time.UTC), parsed)
}

func TestParseProductDate_Error(t *testing.T) {
	// Tested code
	_, err := ParseProductDate("2020-01-15")

	// Asserts
	assert.NotNil(t, err)
}

func TestParseValidityStart_Concrete(t *testing.T) {
	// Tested code
	parsed, err := ParseValidityStart("20180528T120000")

	// Asserts
	assert.Nil(t, err)
	assert.Equal(t, time.Date(2018, time.May, 28, 12, 0, 0, 0, time.UTC), parsed)
}

func TestParseValidityStart_Unbounded(t *testing.T) {
	// Tested code
	parsed, err := ParseValidityStart(ValidityStartUnbounded)

	// Asserts
	assert.Nil(t, err)
	assert.Equal(t, ValidityMin, parsed)
	assert.True(t, parsed.IsZero())
}

func TestParseValidityStop_Concrete(t *testing.T) {
	// Tested code
	parsed, err := ParseValidityStop("20180528T120000")

	// Asserts
	assert.Nil(t, err)
	assert.Equal(t, time.Date(2018, time.May, 28, 12, 0, 0, 0, time.UTC), parsed)
}

func TestParseValidityStop_Unbounded(t *testing.T) {
	// Tested code
	parsed, err := ParseValidityStop(ValidityStopUnbounded)

	// Asserts
	assert.Nil(t, err)
	assert.Equal(t, ValidityMax, parsed)
}

func TestParseValidityStop_Error(t *testing.T) {
	// Tested code
	_, err := ParseValidityStop("99999999T99999")

	// Asserts
	assert.NotNil(t, err)
}
