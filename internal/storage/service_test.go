package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/seikyu/internal/errors"
)

type counter struct {
	Year   int `json:"year"`
	Number int `json:"number"`
}

func TestService_SaveAndLoadJSON(t *testing.T) {
	ctx := context.Background()
	service := NewService(OpenMemoryAdapter())

	require.NoError(t, service.SaveJSON(ctx, KeyInvoiceCounter, counter{Year: 2026, Number: 7}))

	var loaded counter
	found, err := service.LoadJSON(ctx, KeyInvoiceCounter, &loaded)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, counter{Year: 2026, Number: 7}, loaded)
}

func TestService_LoadJSON_Missing(t *testing.T) {
	service := NewService(OpenMemoryAdapter())

	var loaded counter
	found, err := service.LoadJSON(context.Background(), KeyInvoiceCounter, &loaded)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestService_LoadJSON_Corrupt(t *testing.T) {
	ctx := context.Background()
	adapter := OpenMemoryAdapter()
	require.NoError(t, adapter.Set(ctx, KeyInvoiceCounter, []byte(`not json`)))

	var loaded counter
	found, err := NewService(adapter).LoadJSON(ctx, KeyInvoiceCounter, &loaded)
	assert.False(t, found)
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFormat)
}

func TestService_SizeEntriesAndClear(t *testing.T) {
	ctx := context.Background()
	adapter := OpenMemoryAdapter()
	service := NewService(adapter)

	require.NoError(t, adapter.Set(ctx, KeyInvoices, []byte(`[]`)))
	require.NoError(t, adapter.Set(ctx, KeyInvoiceCounter, []byte(`{"year":2026,"number":1}`)))
	require.NoError(t, adapter.Set(ctx, "unrelated", []byte(`keep me`)))

	size, err := service.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2+24, size)

	entries, err := service.Entries(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Key: KeyProfiles},
		{Key: KeyInvoices, Exists: true, Size: 2},
		{Key: KeyInvoiceCounter, Exists: true, Size: 24},
	}, entries)

	require.NoError(t, service.Clear(ctx))

	for _, key := range KnownKeys() {
		ok, err := service.Exists(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, key)
	}

	ok, err := adapter.Exists(ctx, "unrelated")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewAdapter(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		adapter, err := NewAdapter(DriverMemory, "", nil)
		require.NoError(t, err)
		assert.IsType(t, &BlobAdapter{}, adapter)
		assert.NoError(t, adapter.Close())
	})

	t.Run("file", func(t *testing.T) {
		adapter, err := NewAdapter(DriverFile, t.TempDir(), nil)
		require.NoError(t, err)
		assert.IsType(t, &BlobAdapter{}, adapter)
		assert.NoError(t, adapter.Close())
	})

	t.Run("sql drivers require a connection", func(t *testing.T) {
		for _, driver := range []string{DriverPostgres, DriverMySQL} {
			_, err := NewAdapter(driver, "", nil)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput, driver)
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := NewAdapter("redis", "", nil)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Contains(t, err.Error(), "unsupported storage driver: redis")
	})

	assert.True(t, IsSQLDriver(DriverPostgres))
	assert.True(t, IsSQLDriver(DriverMySQL))
	assert.False(t, IsSQLDriver(DriverFile))
}
