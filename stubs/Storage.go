// Package stubs provides test doubles with deliberately disabled behavior.
//
// Storage is the counterpart of the factory's BuildStubbed strategy:
// stubbed records mimic persisted rows, and wiring the code under test
// with stubs.Storage guarantees that none of them can reach a database.
package stubs

import (
	"context"

	"github.com/fabrica-go/fabrica"
)

var (
	_ fabrica.Storage           = Storage{}
	_ fabrica.ConnectionManager = Storage{}
)

// Storage implements every persistence port of the fabrica package
// by refusing the operation with fabrica.ErrStubbed.
type Storage struct{}

func (Storage) Create(ctx context.Context, ptr fabrica.Entity) error {
	return fabrica.ErrStubbed
}

func (Storage) FindByID(ctx context.Context, ptr fabrica.Entity, id interface{}) (bool, error) {
	return false, fabrica.ErrStubbed
}

func (Storage) FindAll(ctx context.Context, T fabrica.Entity) ([]fabrica.Entity, error) {
	return nil, fabrica.ErrStubbed
}

func (Storage) Update(ctx context.Context, ptr fabrica.Entity) error {
	return fabrica.ErrStubbed
}

func (Storage) DeleteByID(ctx context.Context, T fabrica.Entity, id interface{}) error {
	return fabrica.ErrStubbed
}

func (Storage) DeleteAll(ctx context.Context, T fabrica.Entity) error {
	return fabrica.ErrStubbed
}

func (Storage) BeginTx(ctx context.Context) (context.Context, error) {
	return ctx, fabrica.ErrStubbed
}

func (Storage) CommitTx(ctx context.Context) error {
	return fabrica.ErrStubbed
}

func (Storage) RollbackTx(ctx context.Context) error {
	return fabrica.ErrStubbed
}
