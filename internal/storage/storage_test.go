package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"studywise-client/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStorage(t *testing.T, s Storage) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "userEmail")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "userEmail", "ada@example.com"))
	require.NoError(t, s.Set(ctx, "aiMode", "ollama"))

	v, ok, err := s.Get(ctx, "userEmail")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ada@example.com", v)

	require.NoError(t, s.Set(ctx, "aiMode", "cloud"))
	v, _, err = s.Get(ctx, "aiMode")
	require.NoError(t, err)
	assert.Equal(t, "cloud", v)

	require.NoError(t, s.Delete(ctx, "aiMode"))
	_, ok, err = s.Get(ctx, "aiMode")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Delete(ctx, "never-set"))
}

func TestMemoryStorage(t *testing.T) {
	exerciseStorage(t, NewMemoryStorage())
}

func TestFileStorage(t *testing.T) {
	fs, err := NewFileStorage(filepath.Join(t.TempDir(), "nested", "storage.json"))
	require.NoError(t, err)
	exerciseStorage(t, fs)
}

func TestFileStoragePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	ctx := context.Background()

	first, err := NewFileStorage(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "userEmail", "grace@example.com"))

	second, err := NewFileStorage(path)
	require.NoError(t, err)
	v, ok, err := second.Get(ctx, "userEmail")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "grace@example.com", v)
}

func TestFileStorageCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	fs, err := NewFileStorage(path)
	require.NoError(t, err)

	_, _, err = fs.Get(context.Background(), "userEmail")
	assert.Error(t, err)
}

func TestNewSelectsDriver(t *testing.T) {
	ctx := context.Background()

	s, err := New(ctx, config.StorageConfig{Driver: DriverMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStorage{}, s)

	s, err = New(ctx, config.StorageConfig{Driver: DriverFile, FilePath: filepath.Join(t.TempDir(), "s.json")})
	require.NoError(t, err)
	assert.IsType(t, &FileStorage{}, s)

	_, err = New(ctx, config.StorageConfig{Driver: "sqlite"})
	assert.EqualError(t, err, "unsupported storage driver: sqlite")
}

func TestRedisStorageKeyPrefix(t *testing.T) {
	r := NewRedisStorage(nil, "studywise:")
	assert.Equal(t, "studywise:userEmail", r.key("userEmail"))
}

func TestRedisStorageIntegration(t *testing.T) {
	url := os.Getenv("STORAGE_TEST_REDIS_URL")
	if url == "" {
		t.Skip("Skipping redis storage test: STORAGE_TEST_REDIS_URL not set")
	}
	opt, err := redis.ParseURL(url)
	require.NoError(t, err)
	rdb := redis.NewClient(opt)
	defer rdb.Close()

	exerciseStorage(t, NewRedisStorage(rdb, "studywise-test:"))
}
