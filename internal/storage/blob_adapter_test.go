package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobAdapter(t *testing.T) {
	ctx := context.Background()

	adapters := map[string]func(t *testing.T) *BlobAdapter{
		"memory": func(t *testing.T) *BlobAdapter {
			return OpenMemoryAdapter()
		},
		"file": func(t *testing.T) *BlobAdapter {
			adapter, err := OpenFileAdapter(t.TempDir())
			require.NoError(t, err)
			return adapter
		},
	}

	for name, open := range adapters {
		t.Run(name, func(t *testing.T) {
			adapter := open(t)
			defer func() { assert.NoError(t, adapter.Close()) }()

			t.Run("get missing key", func(t *testing.T) {
				_, err := adapter.Get(ctx, "missing")
				assert.ErrorIs(t, err, ErrKeyNotFound)
			})

			t.Run("set then get", func(t *testing.T) {
				require.NoError(t, adapter.Set(ctx, KeyInvoices, []byte(`[]`)))

				data, err := adapter.Get(ctx, KeyInvoices)
				require.NoError(t, err)
				assert.Equal(t, []byte(`[]`), data)
			})

			t.Run("set replaces value", func(t *testing.T) {
				require.NoError(t, adapter.Set(ctx, KeyInvoiceCounter, []byte(`{"year":2026,"number":1}`)))
				require.NoError(t, adapter.Set(ctx, KeyInvoiceCounter, []byte(`{"year":2026,"number":2}`)))

				data, err := adapter.Get(ctx, KeyInvoiceCounter)
				require.NoError(t, err)
				assert.JSONEq(t, `{"year":2026,"number":2}`, string(data))
			})

			t.Run("exists", func(t *testing.T) {
				ok, err := adapter.Exists(ctx, KeyInvoices)
				require.NoError(t, err)
				assert.True(t, ok)

				ok, err = adapter.Exists(ctx, "missing")
				require.NoError(t, err)
				assert.False(t, ok)
			})

			t.Run("remove is idempotent", func(t *testing.T) {
				require.NoError(t, adapter.Remove(ctx, KeyInvoices))
				require.NoError(t, adapter.Remove(ctx, KeyInvoices))

				_, err := adapter.Get(ctx, KeyInvoices)
				assert.ErrorIs(t, err, ErrKeyNotFound)
			})
		})
	}
}

func TestOpenFileAdapter_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	adapter, err := OpenFileAdapter(dir)
	require.NoError(t, err)
	defer func() { assert.NoError(t, adapter.Close()) }()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	require.NoError(t, adapter.Set(context.Background(), KeyProfiles, []byte(`{}`)))
	_, err = os.Stat(filepath.Join(dir, KeyProfiles))
	assert.NoError(t, err)
}
