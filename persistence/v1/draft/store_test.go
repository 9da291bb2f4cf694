package draft

import (
	"context"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func backends(t *testing.T) map[string]Backend {
	t.Helper()

	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return map[string]Backend{
		"memory": NewMemory(),
		"file":   NewFile(filepath.Join(t.TempDir(), "nested", "drafts.json")),
		"redis":  NewRedis(rdb, "notes:"),
	}
}

func TestStore(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := NewStore(b)

			_, err := s.Load(ctx, Key)
			require.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, s.Save(ctx, Key, Draft{Title: "T", Description: "D", Content: "C"}))
			got, err := s.Load(ctx, Key)
			require.NoError(t, err)
			assert.Equal(t, Draft{Title: "T", Description: "D", Content: "C"}, got)

			require.NoError(t, s.Save(ctx, Key, Draft{Title: "T2"}))
			got, err = s.Load(ctx, Key)
			require.NoError(t, err)
			assert.Equal(t, Draft{Title: "T2"}, got)

			require.NoError(t, s.Delete(ctx, Key))
			_, err = s.Load(ctx, Key)
			require.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, s.Delete(ctx, Key))
		})
	}
}

func TestStore_Malformed(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, b.Set(ctx, Key, "{not json"))

			_, err := NewStore(b).Load(ctx, Key)
			require.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestRedis_Prefix(t *testing.T) {
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer rdb.Close()

	require.NoError(t, NewStore(NewRedis(rdb, "notes:")).Save(context.Background(), Key, Draft{Title: "T"}))
	assert.True(t, s.Exists("notes:"+Key))
}

func TestFile_Persists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "drafts.json")

	require.NoError(t, NewStore(NewFile(path)).Save(ctx, Key, Draft{Title: "T", Content: "C"}))

	got, err := NewStore(NewFile(path)).Load(ctx, Key)
	require.NoError(t, err)
	assert.Equal(t, Draft{Title: "T", Content: "C"}, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFile_CorruptFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "drafts.json")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o600))
	s := NewStore(NewFile(path))

	_, err := s.Load(ctx, Key)
	require.ErrorIs(t, err, ErrMalformed)

	require.NoError(t, s.Save(ctx, Key, Draft{Title: "T", Content: "C"}))
	got, err := s.Load(ctx, Key)
	require.NoError(t, err)
	assert.Equal(t, Draft{Title: "T", Content: "C"}, got)
}

func TestFile_CorruptFileDelete(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "drafts.json")
	require.NoError(t, os.WriteFile(path, []byte("{\"noteDraft\":"), 0o600))
	s := NewStore(NewFile(path))

	require.NoError(t, s.Delete(ctx, Key))
	_, err := s.Load(ctx, Key)
	require.ErrorIs(t, err, ErrNotFound)
}
