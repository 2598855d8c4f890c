package factory_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/fabrica-go/fabrica"
	"github.com/fabrica-go/fabrica/doubles"
	"github.com/fabrica-go/fabrica/factory"
	"github.com/fabrica-go/fabrica/reflects"
	"github.com/fabrica-go/fabrica/storages/memorystorage"
	"github.com/fabrica-go/fabrica/stubs"
)

func TestUpdateAttribute(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newTestFactory(t)
	storage := memorystorage.New()

	ptr, err := f.Create(ctx, storage, User{})
	require.Nil(t, err)
	user := ptr.(*User)

	require.Nil(t, factory.UpdateAttribute(ctx, storage, user, `Name`, `Renamed`))

	found := reflects.New(User{})
	ok, err := storage.FindByID(ctx, found, user.ID)
	require.Nil(t, err)
	require.True(t, ok)
	require.Equal(t, `Renamed`, found.(*User).Name)
}

func TestUpdateAttribute_stubbedRecordCantReachTheDatabase(t *testing.T) {
	t.Parallel()

	f := newTestFactory(t)

	ptr, err := f.BuildStubbed(User{})
	require.Nil(t, err)

	err = factory.UpdateAttribute(context.Background(), stubs.Storage{}, ptr, `Name`, `Renamed`)
	require.Equal(t, fabrica.ErrStubbed, err)
}

func TestUpdateAttribute_unknownAttributeFailsBeforeTheStorageIsTouched(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := doubles.NewMockStorage(ctrl)

	f := newTestFactory(t)
	ptr, err := f.BuildStubbed(User{})
	require.Nil(t, err)

	err = factory.UpdateAttribute(context.Background(), storage, ptr, `Nickname`, `JJ`)
	require.Error(t, err)
	require.Contains(t, err.Error(), `"Nickname"`)
}

func TestIncrementAndDecrement(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newTestFactory(t)
	storage := memorystorage.New()

	ptr, err := f.Create(ctx, storage, User{})
	require.Nil(t, err)
	user := ptr.(*User)
	initial := user.Age

	require.Nil(t, factory.Increment(ctx, storage, user, `Age`, 1))
	require.Equal(t, initial+1, user.Age)

	require.Nil(t, factory.Decrement(ctx, storage, user, `Age`, 2))
	require.Equal(t, initial-1, user.Age)

	found := reflects.New(User{})
	ok, err := storage.FindByID(ctx, found, user.ID)
	require.Nil(t, err)
	require.True(t, ok)
	require.Equal(t, initial-1, found.(*User).Age)
}

func TestIncrement_nonIntegerAttribute(t *testing.T) {
	t.Parallel()

	f := newTestFactory(t)
	ptr, err := f.BuildStubbed(User{})
	require.Nil(t, err)

	err = factory.Increment(context.Background(), stubs.Storage{}, ptr, `Name`, 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), `not an integer`)
}

func TestIncrement_stubbedRecordCantReachTheDatabase(t *testing.T) {
	t.Parallel()

	f := newTestFactory(t)
	ptr, err := f.BuildStubbed(User{})
	require.Nil(t, err)

	err = factory.Increment(context.Background(), stubs.Storage{}, ptr, `Age`, 1)
	require.Equal(t, fabrica.ErrStubbed, err)
}
