//go:build property
// +build property

// Package s5p_test contains property-based tests for the filename grammars:
// generated filenames must round-trip through identification and analysis.
package s5p_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/stcorp/muninn-sentinel5p/model"
	"github.com/stcorp/muninn-sentinel5p/s5p"
)

var missionEpoch = time.Date(2017, time.October, 13, 0, 0, 0, 0, time.UTC)

// TestStandardFilenameRoundTrip verifies analysis inverts filename construction.
// Property: Analyze(format(fields)) == fields for any valid standard fields
func TestStandardFilenameRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	standardTypes := append(append([]string{}, s5p.Level1FileTypes...), s5p.Level2FileTypes...)

	properties.Property("standard filenames analyze back to their fields", prop.ForAll(
		func(typeIndex, classIndex, orbit, collection, processorVersion int, startOffset, windowSeconds, creationDelay int64) bool {
			fileType := standardTypes[typeIndex]
			fileClass := s5p.FileClasses[classIndex]
			start := missionEpoch.Add(time.Duration(startOffset) * time.Second)
			stop := start.Add(time.Duration(windowSeconds) * time.Second)
			created := stop.Add(time.Duration(creationDelay) * time.Second)

			name := fmt.Sprintf("S5P_%s_%s_%s_%s_%05d_%02d_%06d_%s.nc",
				fileClass, fileType,
				start.Format(model.ProductTimeLayout), stop.Format(model.ProductTimeLayout),
				orbit, collection, processorVersion,
				created.Format(model.ProductTimeLayout))

			plugin, ok := s5p.Resolve(s5p.StandardProductType(fileType, fileClass))
			if !ok {
				return false
			}
			if !plugin.Identify([]string{name}) {
				return false
			}

			record, err := plugin.Analyze([]string{name}, false)
			if err != nil {
				return false
			}

			return record.Core.ValidityStart.Equal(start) &&
				record.Core.ValidityStop.Equal(stop) &&
				record.Core.CreationDate.Equal(created) &&
				record.S5P.FileClass == fileClass &&
				record.S5P.FileType == fileType &&
				*record.S5P.Orbit == orbit &&
				*record.S5P.Collection == collection &&
				*record.S5P.ProcessorVersion == processorVersion
		},
		gen.IntRange(0, len(standardTypes)-1),
		gen.IntRange(0, len(s5p.FileClasses)-1),
		gen.IntRange(0, 99999),
		gen.IntRange(0, 99),
		gen.IntRange(0, 999999),
		gen.Int64Range(0, 40*365*24*3600),
		gen.Int64Range(0, 24*3600),
		gen.Int64Range(0, 30*24*3600),
	))

	properties.TestingRun(t)
}

// TestAuxiliaryFilenameRoundTrip verifies auxiliary analysis, including the
// mapping of unbounded validity placeholders and the archive path split.
func TestAuxiliaryFilenameRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	auxTypes := []string{}
	for _, fileType := range s5p.AuxiliaryFileTypes {
		if fileType != s5p.SnowIceFileType {
			auxTypes = append(auxTypes, fileType)
		}
	}

	properties.Property("auxiliary filenames analyze back to their validity window", prop.ForAll(
		func(typeIndex int, unboundedStart, unboundedStop bool, startOffset, windowSeconds, creationOffset int64) bool {
			fileType := auxTypes[typeIndex]
			extension := "nc"
			if strings.HasPrefix(fileType, s5p.ConfigFileTypePrefix) {
				extension = "cfg"
			}

			start := missionEpoch.Add(time.Duration(startOffset) * time.Second)
			stop := start.Add(time.Duration(windowSeconds) * time.Second)
			created := missionEpoch.Add(time.Duration(creationOffset) * time.Second)

			startField := start.Format(model.ProductTimeLayout)
			if unboundedStart {
				startField = model.ValidityStartUnbounded
			}
			stopField := stop.Format(model.ProductTimeLayout)
			if unboundedStop {
				stopField = model.ValidityStopUnbounded
			}

			name := fmt.Sprintf("S5P_OPER_%s_%s_%s_%s.%s",
				fileType, startField, stopField,
				created.Format(model.ProductTimeLayout), extension)

			plugin, ok := s5p.Resolve(fileType)
			if !ok {
				return false
			}
			if !plugin.Identify([]string{name}) {
				return false
			}

			record, err := plugin.Analyze([]string{name}, false)
			if err != nil {
				return false
			}

			wantStart := start
			if unboundedStart {
				wantStart = model.ValidityMin
			}
			wantStop := stop
			if unboundedStop {
				wantStop = model.ValidityMax
			}
			if !record.Core.ValidityStart.Equal(wantStart) || !record.Core.ValidityStop.Equal(wantStop) {
				return false
			}
			if record.S5P.Orbit != nil || record.S5P.Collection != nil || record.S5P.ProcessorVersion != nil {
				return false
			}

			// the archive path is flat exactly when the start is unbounded
			archivePath := plugin.ArchivePath(record)
			if unboundedStart {
				return archivePath == "sentinel-5p/"+fileType
			}
			return strings.HasPrefix(archivePath, "sentinel-5p/"+fileType+"/")
		},
		gen.IntRange(0, len(s5p.AuxiliaryFileTypes)-2), // auxTypes drops the snow/ice entry

		gen.Bool(),
		gen.Bool(),
		gen.Int64Range(0, 40*365*24*3600),
		gen.Int64Range(0, 365*24*3600),
		gen.Int64Range(0, 40*365*24*3600),
	))

	properties.TestingRun(t)
}

// TestSnowIceValidityWindow verifies the derived window is always one day.
func TestSnowIceValidityWindow(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("snow and ice products always get a 24 hour validity window", prop.ForAll(
		func(dayOffset int) bool {
			day := missionEpoch.AddDate(0, 0, dayOffset)
			name := fmt.Sprintf("NISE_SSMISF18_%s.HDFEOS", day.Format(model.ProductDateLayout))

			plugin, ok := s5p.Resolve(s5p.SnowIceFileType)
			if !ok {
				return false
			}
			if !plugin.Identify([]string{name}) {
				return false
			}

			record, err := plugin.Analyze([]string{name}, false)
			if err != nil {
				return false
			}

			return record.Core.ValidityStart.Equal(day) &&
				record.Core.ValidityStop.Sub(record.Core.ValidityStart) == 24*time.Hour &&
				record.Core.CreationDate.Equal(day)
		},
		gen.IntRange(0, 40*365),
	))

	properties.TestingRun(t)
}

// TestFilenameAcceptedByExactlyOneType verifies the per-type grammars are
// disjoint: a generated standard filename resolves to a single catalog entry.
func TestFilenameAcceptedByExactlyOneType(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	standardTypes := append(append([]string{}, s5p.Level1FileTypes...), s5p.Level2FileTypes...)

	properties.Property("standard filenames match exactly one registered type", prop.ForAll(
		func(typeIndex, classIndex int) bool {
			name := fmt.Sprintf("S5P_%s_%s_20210305T094812_20210305T112942_17605_01_010400_20210307T031242.nc",
				s5p.FileClasses[classIndex], standardTypes[typeIndex])

			matches := 0
			for _, productType := range s5p.ProductTypes() {
				plugin, _ := s5p.Resolve(productType)
				if plugin.Identify([]string{name}) {
					matches++
				}
			}
			return matches == 1
		},
		gen.IntRange(0, 28), // index into the 29 standard families
		gen.IntRange(0, 3),
	))

	properties.TestingRun(t)
}
