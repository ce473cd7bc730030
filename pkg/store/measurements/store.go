package measurements

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/de-tools/sonalyze/pkg/models/domain"
	"github.com/rs/zerolog"
)

var ErrInvalidMeasurement = errors.New("invalid measurement record")

// Store provides the measurement records of a recording session
type Store interface {
	Records(ctx context.Context) ([]domain.MeasurementRecord, error)
}

// StoreFactory creates a Store reading from the given location
type StoreFactory func(path string) (Store, error)

type fileStore struct {
	path string
}

func NewFileStore(path string) (Store, error) {
	if path == "" {
		return nil, fmt.Errorf("measurements path is empty")
	}
	return &fileStore{path: path}, nil
}

func (s *fileStore) Records(ctx context.Context) ([]domain.MeasurementRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read measurements file: %w", err)
	}

	records, err := Decode(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("failed to load measurements from %s: %w", s.path, err)
	}
	return records, nil
}

// Decode parses a measurement document.
//
// A document whose top level is not an array yields no records and no error.
// A record with a non-numeric indicator or non-string labels fails the whole
// document with ErrInvalidMeasurement.
func Decode(ctx context.Context, data []byte) ([]domain.MeasurementRecord, error) {
	logger := zerolog.Ctx(ctx)

	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse measurements document: %w", err)
	}

	if !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("[")) {
		logger.Warn().Msg("measurements document is not an array, ignoring it")
		return nil, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to parse measurements document: %w", err)
	}

	records := make([]domain.MeasurementRecord, 0, len(items))
	for i, item := range items {
		record, err := decodeRecord(item)
		if err != nil {
			return nil, fmt.Errorf("%w at index %d: %w", ErrInvalidMeasurement, i, err)
		}
		records = append(records, record)
	}

	logger.Debug().Int("records", len(records)).Msg("measurements decoded")
	return records, nil
}

const labelsKey = "top_5_labels"

// decodeRecord looks fields up by their exact key; encoding/json alone would
// also accept keys differing in case.
func decodeRecord(item json.RawMessage) (domain.MeasurementRecord, error) {
	var record domain.MeasurementRecord

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(item, &fields); err != nil {
		return record, err
	}

	for _, f := range []struct {
		key string
		dst **float64
	}{
		{"Lmin_dB", &record.Lmin},
		{"Lmax_dB", &record.Lmax},
		{"LPeak_dB", &record.LPeak},
		{"L10_dB", &record.L10},
		{"L50_dB", &record.L50},
		{"L90_dB", &record.L90},
		{"LAeq_segment_dB", &record.LAeq},
	} {
		value, ok := fields[f.key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, f.dst); err != nil {
			return record, fmt.Errorf("field %s: %w", f.key, err)
		}
	}

	if labels, ok := fields[labelsKey]; ok {
		if err := json.Unmarshal(labels, &record.Labels); err != nil {
			return record, fmt.Errorf("field %s: %w", labelsKey, err)
		}
	}

	return record, nil
}
