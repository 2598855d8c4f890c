// Package factory builds test entities from named attribute defaults,
// sequences and associations.
//
// Next to the plain Build strategy it knows how to build stubbed records:
// in-memory entities that mimic already persisted rows by carrying a unique
// identifier and populated CreatedAt/UpdatedAt fields, without any storage
// being involved. Pair it with the stubs package storage to guarantee that
// such records can never reach a database.
package factory

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/fabrica-go/fabrica"
	"github.com/fabrica-go/fabrica/reflects"
)

// New returns an empty Factory registry.
func New() *Factory {
	return &Factory{
		definitions: make(map[reflect.Type]*definition),
		stubbed:     make(map[fabrica.Entity]struct{}),
	}
}

// Factory is a registry of entity definitions and the build strategies over them.
// It is safe for concurrent use.
type Factory struct {
	mutex       sync.RWMutex
	definitions map[reflect.Type]*definition
	stubbed     map[fabrica.Entity]struct{}
}

type definition struct {
	typ            reflect.Type
	attrs          []attribute
	assocs         []association
	randomDefaults bool
}

type attribute struct {
	name string
	fn   AttrFunc
}

type association struct {
	field string
}

// Define registers a build template for the base struct type of T.
// Options referring to attributes the struct doesn't declare are rejected,
// and so is defining the same type twice.
func (f *Factory) Define(T fabrica.Entity, opts ...DefineOption) error {
	typ := reflects.BaseTypeOf(T)

	if typ.Kind() != reflect.Struct {
		return fmt.Errorf(`struct type expected for factory definition, got %s`, typ.Kind())
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	if _, ok := f.definitions[typ]; ok {
		return fmt.Errorf(`%s is already defined in this factory`, reflects.FullyQualifiedName(T))
	}

	d := &definition{typ: typ}
	for _, opt := range opts {
		if err := opt.setup(d); err != nil {
			return err
		}
	}

	f.definitions[typ] = d
	return nil
}

// MustDefine is Define, panicking on error. Meant for test setup code.
func (f *Factory) MustDefine(T fabrica.Entity, opts ...DefineOption) {
	if err := f.Define(T, opts...); err != nil {
		panic(err.Error())
	}
}

// IsStubbed reports whether the received pointer was produced
// by this factory's BuildStubbed strategy.
func (f *Factory) IsStubbed(ptr fabrica.Entity) bool {
	f.mutex.RLock()
	defer f.mutex.RUnlock()
	_, ok := f.stubbed[ptr]
	return ok
}

// definition returns the registered template for the type.
// Types without one build through an implicit empty definition,
// the same way a model without declared defaults still can be instantiated.
func (f *Factory) definition(typ reflect.Type) *definition {
	f.mutex.RLock()
	defer f.mutex.RUnlock()

	if d, ok := f.definitions[typ]; ok {
		return d
	}
	return &definition{typ: typ}
}

func (f *Factory) markStubbed(ptr fabrica.Entity) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.stubbed[ptr] = struct{}{}
}
