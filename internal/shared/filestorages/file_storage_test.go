package filestorages

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) FileStorage {
	t.Helper()

	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return storage
}

func readKey(t *testing.T, storage FileStorage, key string) string {
	t.Helper()

	rc, err := storage.Get(context.Background(), key)
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(content)
}

func TestNewFileStorage_EmptyRoot(t *testing.T) {
	t.Parallel()

	_, err := NewFileStorage("")
	assert.ErrorIs(t, err, ErrInvalidRootDir)
}

func TestPut_Keys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key     string
		wantErr error
	}{
		{key: "latest.json"},
		{key: "reports/01HZX3Q8WJ0000000000000000.json"},
		{key: "reports/2024/05/01/report.json"},
		{key: "reports/../latest.json"},
		{key: "", wantErr: ErrInvalidKey},
		{key: ".", wantErr: ErrInvalidKey},
		{key: "..", wantErr: ErrInvalidKey},
		{key: "../", wantErr: ErrInvalidKey},
		{key: "../report.json", wantErr: ErrInvalidKey},
		{key: "reports/../../etc/passwd", wantErr: ErrInvalidKey},
		{key: "a/../..", wantErr: ErrInvalidKey},
		{key: "/absolute/report.json", wantErr: ErrInvalidKey},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()

			storage := newTestStorage(t)
			result, err := storage.Put(context.Background(), tt.key, strings.NewReader(`{"recordCount":3}`), PutOptions{})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.key, result.FileKey)
			assert.Equal(t, `{"recordCount":3}`, readKey(t, storage, tt.key))
		})
	}
}

func TestPut_Overwrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		allowOverwrite bool
		wantErr        error
		wantContent    string
	}{
		{name: "create only keeps first write", wantErr: ErrFileAlreadyExists, wantContent: "first"},
		{name: "overwrite replaces content", allowOverwrite: true, wantContent: "second"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			storage := newTestStorage(t)
			ctx := context.Background()
			key := "reports/latest.json"

			_, err := storage.Put(ctx, key, strings.NewReader("first"), PutOptions{})
			require.NoError(t, err)

			_, err = storage.Put(ctx, key, strings.NewReader("second"), PutOptions{AllowOverwrite: tt.allowOverwrite})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantContent, readKey(t, storage, key))

			// no temp files survive either outcome
			entries, err := os.ReadDir(filepath.Join(storage.(*fileStorage).dir, "reports"))
			require.NoError(t, err)
			assert.Len(t, entries, 1)
		})
	}
}

func TestPut_LargeReport(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	data := strings.Repeat("A", 5*1024*1024)

	_, err := storage.Put(context.Background(), "reports/large.json", strings.NewReader(data), PutOptions{})
	require.NoError(t, err)
	assert.Len(t, readKey(t, storage, "reports/large.json"), len(data))
}

func TestGet_Errors(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)

	_, err := storage.Get(context.Background(), "reports/missing.json")
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = storage.Get(context.Background(), "../outside.json")
	assert.ErrorIs(t, err, ErrInvalidKey)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = storage.Get(ctx, "reports/missing.json")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestList_ReturnsSortedKeys(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	for _, key := range []string{"reports/b.json", "reports/a.json", "reports/nested/c.json", "other/d.json"} {
		_, err := storage.Put(ctx, key, strings.NewReader("{}"), PutOptions{AllowOverwrite: true})
		require.NoError(t, err)
	}

	keys, err := storage.List(ctx, "reports/")

	require.NoError(t, err)
	assert.Equal(t, []string{"reports/a.json", "reports/b.json"}, keys)
}

func TestList_MissingDirIsEmpty(t *testing.T) {
	t.Parallel()

	keys, err := newTestStorage(t).List(context.Background(), "nothing-here")

	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestList_InvalidDir(t *testing.T) {
	t.Parallel()

	_, err := newTestStorage(t).List(context.Background(), "../outside")

	assert.ErrorIs(t, err, ErrInvalidKey)
}
