package localstorage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/require"

	"github.com/fabrica-go/fabrica"
	"github.com/fabrica-go/fabrica/contracts"
	"github.com/fabrica-go/fabrica/factory"
	"github.com/fabrica-go/fabrica/storages/localstorage"
)

type Entry struct {
	ID   string `ext:"ID"`
	Note string
}

func TestLocal(t *testing.T) {
	path, td := tempDBPath(t)
	defer td()

	storage, err := localstorage.New(path)
	require.Nil(t, err)
	defer func() { require.Nil(t, storage.Close()) }()

	contracts.StorageSpec{
		T: Entry{},
		Subject: func(tb testing.TB) fabrica.Storage {
			return storage
		},
		Factory: func(tb testing.TB) *factory.Factory {
			f := factory.New()
			f.MustDefine(Entry{}, factory.RandomDefaults())
			return f
		},
	}.Test(t)
}

func TestLocal_identifiersFollowTheBucketSequence(t *testing.T) {
	path, td := tempDBPath(t)
	defer td()

	storage, err := localstorage.New(path)
	require.Nil(t, err)
	defer func() { require.Nil(t, storage.Close()) }()

	ctx := context.Background()

	first := &Entry{Note: `first`}
	second := &Entry{Note: `second`}
	require.Nil(t, storage.Create(ctx, first))
	require.Nil(t, storage.Create(ctx, second))

	require.Equal(t, `1`, first.ID)
	require.Equal(t, `2`, second.ID)
}

func TestLocal_contentSurvivesReopening(t *testing.T) {
	path, td := tempDBPath(t)
	defer td()

	ctx := context.Background()

	storage, err := localstorage.New(path)
	require.Nil(t, err)

	entry := &Entry{Note: `persisted`}
	require.Nil(t, storage.Create(ctx, entry))
	require.Nil(t, storage.Close())

	reopened, err := localstorage.New(path)
	require.Nil(t, err)
	defer func() { require.Nil(t, reopened.Close()) }()

	var found Entry
	ok, err := reopened.FindByID(ctx, &found, entry.ID)
	require.Nil(t, err)
	require.True(t, ok)
	require.Equal(t, *entry, found)
}

func TestLocal_findByIDWithAnUnparsableID(t *testing.T) {
	path, td := tempDBPath(t)
	defer td()

	storage, err := localstorage.New(path)
	require.Nil(t, err)
	defer func() { require.Nil(t, storage.Close()) }()

	found, err := storage.FindByID(context.Background(), &Entry{}, `not-a-sequence-number`)
	require.Nil(t, err)
	require.False(t, found)
}

func tempDBPath(tb testing.TB) (string, func()) {
	path := filepath.Join(os.TempDir(), uuid.NewV4().String())
	return path, func() {
		if _, err := os.Stat(path); err == nil {
			require.Nil(tb, os.Remove(path))
		}
	}
}
