package measurements

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/sonalyze/pkg/models/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func TestDecode(t *testing.T) {
	ctx := testContext(t)

	t.Run("records with partial fields", func(t *testing.T) {
		data := []byte(`[
			{"Lmin_dB": 28.4, "Lmax_dB": 61.2, "LPeak_dB": 74.9, "L10_dB": 45.1, "L50_dB": 38, "L90_dB": 31.7,
			 "LAeq_segment_dB": 41.3, "top_5_labels": ["Vehicle", "Car", "Music", "Speech", "Water"]},
			{"LAeq_segment_dB": 39},
			{"top_5_labels": []},
			{"timestamp": "2025-06-13T10:00:00Z"}
		]`)

		records, err := Decode(ctx, data)

		require.NoError(t, err)
		require.Len(t, records, 4)

		first := records[0]
		require.NotNil(t, first.LPeak)
		assert.Equal(t, 74.9, *first.LPeak)
		require.NotNil(t, first.LAeq)
		assert.Equal(t, 41.3, *first.LAeq)
		assert.Equal(t, []string{"Vehicle", "Car", "Music", "Speech", "Water"}, first.Labels)

		assert.Nil(t, records[1].Lmin)
		require.NotNil(t, records[1].LAeq)
		assert.Equal(t, 39.0, *records[1].LAeq)

		assert.Empty(t, records[2].Labels)
		assert.Equal(t, domain.MeasurementRecord{}, records[3])
	})

	t.Run("empty array", func(t *testing.T) {
		records, err := Decode(ctx, []byte(`[]`))

		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("not an array", func(t *testing.T) {
		records, err := Decode(ctx, []byte(`{"LAeq_segment_dB": 40}`))

		require.NoError(t, err)
		assert.Nil(t, records)
	})

	t.Run("non-numeric indicator", func(t *testing.T) {
		_, err := Decode(ctx, []byte(`[{"LAeq_segment_dB": 40}, {"LAeq_segment_dB": "loud"}]`))

		require.ErrorIs(t, err, ErrInvalidMeasurement)
		assert.Contains(t, err.Error(), "index 1")
	})

	t.Run("non-string label", func(t *testing.T) {
		_, err := Decode(ctx, []byte(`[{"top_5_labels": ["car", 3]}]`))

		assert.ErrorIs(t, err, ErrInvalidMeasurement)
	})

	t.Run("keys are case sensitive", func(t *testing.T) {
		records, err := Decode(ctx, []byte(`[{"laeq_segment_db": 35, "LMIN_DB": 10, "Top_5_Labels": ["car"]}]`))

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, domain.MeasurementRecord{}, records[0])
	})

	t.Run("null record and null indicator", func(t *testing.T) {
		records, err := Decode(ctx, []byte(`[null, {"LAeq_segment_dB": null, "L50_dB": 38}]`))

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, domain.MeasurementRecord{}, records[0])
		assert.Nil(t, records[1].LAeq)
		require.NotNil(t, records[1].L50)
		assert.Equal(t, 38.0, *records[1].L50)
	})

	t.Run("record that is not an object", func(t *testing.T) {
		_, err := Decode(ctx, []byte(`[{"LAeq_segment_dB": 40}, 42]`))

		require.ErrorIs(t, err, ErrInvalidMeasurement)
		assert.Contains(t, err.Error(), "index 1")
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := Decode(ctx, []byte(`[{"LAeq_segment_dB": 40}`))

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidMeasurement)
	})
}

func TestFileStore_Records(t *testing.T) {
	ctx := testContext(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "measures.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"LAeq_segment_dB": 35}, {"LAeq_segment_dB": 45}]`), 0o600))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	records, err := store.Records(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	missing, err := NewFileStore(filepath.Join(dir, "missing.json"))
	require.NoError(t, err)

	_, err = missing.Records(ctx)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewFileStore_EmptyPath(t *testing.T) {
	_, err := NewFileStore("")

	assert.Error(t, err)
}
