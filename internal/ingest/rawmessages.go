// Package ingest turns raw vessel message dumps and weather provider files
// into clean report, station and observation tables.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/katiamach/vessel-weather-api/internal/logger"
	"github.com/katiamach/vessel-weather-api/internal/model"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ErrSchemaMismatch is returned when an input file is missing an expected
// column; it indicates a contract violation upstream of this service.
var ErrSchemaMismatch = errors.New("input is missing an expected column")

// rawMessageNoise matches the junk characters serial-line capture injects
// into raw messages.
var rawMessageNoise = regexp.MustCompile(`[^a-zA-Z0-9,.]`)

// Positional fields of a raw message after splitting on commas.
const rawMessageFields = 10

// ReadRawMessages reads a raw vessel messages csv into deduplicated, decoded
// vessel reports sorted by (vessel, timestamp).
//
// The dumps come from serial loggers and are not guaranteed to be valid
// UTF-8, so the stream is decoded as Latin-1 first. Rows whose raw message
// does not decode into the expected positional fields are logged and
// skipped.
func ReadRawMessages(r io.Reader) ([]model.VesselReport, error) {
	reader := csv.NewReader(transform.NewReader(r, charmap.ISO8859_1.NewDecoder()))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read raw messages csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty csv", ErrSchemaMismatch)
	}

	columns, err := rawMessageColumns(records[0])
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})

	reports := make([]model.VesselReport, 0, len(records)-1)
	for _, record := range records[1:] {
		// Drop full-row duplicates.
		rowKey := strings.Join(record, "\x00")
		if _, ok := seen[rowKey]; ok {
			continue
		}
		seen[rowKey] = struct{}{}

		report, err := parseRawMessageRow(record, columns)
		if err != nil {
			logger.Error(err)
			continue
		}

		reports = append(reports, *report)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		if reports[i].VesselID != reports[j].VesselID {
			return reports[i].VesselID < reports[j].VesselID
		}
		return reports[i].Timestamp.Before(reports[j].Timestamp)
	})

	return reports, nil
}

type rawColumns struct {
	deviceID   int
	datetime   int
	rawMessage int
}

func rawMessageColumns(header []string) (*rawColumns, error) {
	columns := &rawColumns{deviceID: -1, datetime: -1, rawMessage: -1}

	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "device_id":
			columns.deviceID = i
		case "datetime":
			columns.datetime = i
		case "raw_message":
			columns.rawMessage = i
		}
	}

	if columns.deviceID < 0 {
		return nil, fmt.Errorf("%w: device_id", ErrSchemaMismatch)
	}
	if columns.datetime < 0 {
		return nil, fmt.Errorf("%w: datetime", ErrSchemaMismatch)
	}
	if columns.rawMessage < 0 {
		return nil, fmt.Errorf("%w: raw_message", ErrSchemaMismatch)
	}

	return columns, nil
}

// parseRawMessageRow decodes one csv row into a vessel report, expanding the
// comma-delimited raw message into its positional fields.
func parseRawMessageRow(record []string, columns *rawColumns) (*model.VesselReport, error) {
	maxIndex := columns.deviceID
	if columns.datetime > maxIndex {
		maxIndex = columns.datetime
	}
	if columns.rawMessage > maxIndex {
		maxIndex = columns.rawMessage
	}
	if len(record) <= maxIndex {
		return nil, fmt.Errorf("row has %d fields, expected at least %d", len(record), maxIndex+1)
	}

	seconds, err := strconv.ParseInt(strings.TrimSpace(record[columns.datetime]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse datetime value: %w", err)
	}

	message := rawMessageNoise.ReplaceAllString(record[columns.rawMessage], "")
	parts := strings.Split(message, ",")
	if len(parts) != rawMessageFields {
		return nil, fmt.Errorf("raw message has %d fields, expected %d", len(parts), rawMessageFields)
	}

	lat, err := parseRoundedFloat(parts[1], "lat")
	if err != nil {
		return nil, err
	}

	lon, err := parseRoundedFloat(parts[3], "lon")
	if err != nil {
		return nil, err
	}

	speed, err := parseRoundedFloat(parts[5], "spd_over_grnd")
	if err != nil {
		return nil, err
	}

	course, err := parseRoundedFloat(parts[6], "true_course")
	if err != nil {
		return nil, err
	}

	datestamp, err := strconv.ParseInt(parts[7], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse datestamp value: %w", err)
	}

	magVariation, err := parseRoundedFloat(parts[8], "mag_variation")
	if err != nil {
		return nil, err
	}

	return &model.VesselReport{
		VesselID:        strings.TrimSpace(record[columns.deviceID]),
		Timestamp:       time.Unix(seconds, 0).UTC(),
		Status:          parts[0],
		Lat:             lat,
		LatDir:          parts[2],
		Lon:             lon,
		LonDir:          parts[4],
		SpeedOverGround: speed,
		Course:          course,
		Datestamp:       datestamp,
		MagVariation:    magVariation,
		MagVarDir:       parts[9],
	}, nil
}

func parseRoundedFloat(value, name string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s value: %w", name, err)
	}

	return Round3(v), nil
}

// Round3 rounds to 3 decimals. Every coordinate in the system goes through
// this one function, so the exact-match join on station coordinates cannot
// be broken by producers rounding differently.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
