package factory

import (
	"context"
	"fmt"
	"reflect"
	"sync/atomic"
	"time"

	uuid "github.com/satori/go.uuid"

	"github.com/fabrica-go/fabrica"
	"github.com/fabrica-go/fabrica/extid"
	"github.com/fabrica-go/fabrica/reflects"
)

// stubIDSequence is shared by every factory so stubbed integer identifiers
// are unique process wide. The first generated id is 1000, keeping stubbed
// ids visually apart from the small literal ids tests tend to hardcode.
var stubIDSequence int64 = 999

func nextStubID() int64 { return atomic.AddInt64(&stubIDSequence, 1) }

// Build returns a pointer to a populated entity of T's base type
// that behaves like an unsaved record: defaults and overrides are applied,
// the identifier field is left empty and the timestamp fields stay zero.
// Associations are built recursively with the same strategy.
func (f *Factory) Build(T fabrica.Entity, overrides ...Override) (fabrica.Entity, error) {
	return f.assemble(reflects.BaseTypeOf(T), overrides, false, false, map[reflect.Type]struct{}{})
}

// BuildStubbed returns a pointer to an entity of T's base type that mimics
// an already persisted record:
//
//   - defaults and overrides are applied the same way Build applies them
//   - the identifier field receives a unique value, unless already set
//   - CreatedAt and UpdatedAt receive the same current time, when present
//   - associations are stubbed recursively, each with its own identifier,
//     and <assoc>ID mirror fields receive the association's identifier
//
// The returned pointer is remembered, so IsStubbed reports true for it.
// Nothing is persisted anywhere.
func (f *Factory) BuildStubbed(T fabrica.Entity, overrides ...Override) (fabrica.Entity, error) {
	return f.assemble(reflects.BaseTypeOf(T), overrides, true, false, map[reflect.Type]struct{}{})
}

// BuildStubbedList returns n independently stubbed records of T's base type.
func (f *Factory) BuildStubbedList(n int, T fabrica.Entity, overrides ...Override) ([]fabrica.Entity, error) {
	if n < 0 {
		return nil, fmt.Errorf(`non-negative list length expected, got %d`, n)
	}

	list := make([]fabrica.Entity, 0, n)
	for i := 0; i < n; i++ {
		ptr, err := f.BuildStubbed(T, overrides...)
		if err != nil {
			return nil, err
		}
		list = append(list, ptr)
	}
	return list, nil
}

// Create builds an entity the way Build does, populates its timestamp fields
// and persists it through the received storage, which assigns the identifier.
func (f *Factory) Create(ctx context.Context, storage fabrica.Creator, T fabrica.Entity, overrides ...Override) (fabrica.Entity, error) {
	ptr, err := f.Build(T, overrides...)
	if err != nil {
		return nil, err
	}

	setTimestamps(ptr, time.Now().UTC())

	if err := storage.Create(ctx, ptr); err != nil {
		return nil, err
	}
	return ptr, nil
}

func (f *Factory) assemble(
	typ reflect.Type,
	overrides []Override,
	stubbed bool,
	skipAssocs bool,
	seen map[reflect.Type]struct{},
) (fabrica.Entity, error) {
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf(`struct type expected for building, got %s`, typ.Kind())
	}

	d := f.definition(typ)
	ptr := reflect.New(typ).Interface()

	for _, attr := range d.attrs {
		if err := reflects.SetField(ptr, attr.name, attr.fn()); err != nil {
			return nil, err
		}
	}

	if d.randomDefaults {
		fillWithRandoms(d, ptr)
	}

	overridden := make(map[string]struct{}, len(overrides))
	for _, o := range overrides {
		if err := reflects.SetField(ptr, o.Name, o.Value); err != nil {
			return nil, err
		}
		overridden[o.Name] = struct{}{}
	}

	if !skipAssocs {
		seen[typ] = struct{}{}
		defer delete(seen, typ)

		for _, assoc := range d.assocs {
			if err := f.assembleAssociation(ptr, assoc, overridden, stubbed, seen); err != nil {
				return nil, err
			}
		}
	}

	if stubbed {
		if err := f.stub(ptr); err != nil {
			return nil, err
		}
	}

	return ptr, nil
}

func (f *Factory) assembleAssociation(
	ptr fabrica.Entity,
	assoc association,
	overridden map[string]struct{},
	stubbed bool,
	seen map[reflect.Type]struct{},
) error {
	elem := reflect.ValueOf(ptr).Elem()
	field := elem.FieldByName(assoc.field)

	childType := field.Type()
	childIsPtr := childType.Kind() == reflect.Ptr
	if childIsPtr {
		childType = childType.Elem()
	}

	if _, ok := overridden[assoc.field]; !ok {
		// A self referential association is built once, without descending
		// into its own associations, so the definition graph can't loop.
		_, cyclic := seen[childType]

		childPtr, err := f.assemble(childType, nil, stubbed, cyclic, seen)
		if err != nil {
			return err
		}

		childVal := reflect.ValueOf(childPtr)
		if childIsPtr {
			field.Set(childVal)
		} else {
			field.Set(childVal.Elem())
		}
	}

	return f.mirrorAssociationID(ptr, elem, assoc, overridden)
}

// mirrorAssociationID copies the association's identifier
// into the <field>ID sibling field when one exists.
func (f *Factory) mirrorAssociationID(
	ptr fabrica.Entity,
	elem reflect.Value,
	assoc association,
	overridden map[string]struct{},
) error {
	fkName := assoc.field + `ID`
	if _, ok := overridden[fkName]; ok {
		return nil
	}
	if fkField := elem.FieldByName(fkName); !fkField.IsValid() {
		return nil
	}

	field := elem.FieldByName(assoc.field)
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return nil
		}
		field = field.Elem()
	}

	id, ok := extid.Lookup(field.Interface())
	if !ok {
		return nil
	}

	return reflects.SetField(ptr, fkName, id)
}

// stub gives the record its persisted look: unique identifier, timestamps,
// and registration in the factory's stub registry.
func (f *Factory) stub(ptr fabrica.Entity) error {
	if _, ok := extid.Lookup(ptr); !ok {
		sf, idField, has := extid.LookupStructField(ptr)
		if !has {
			return fabrica.ErrIDRequired
		}

		id, err := generateStubID(sf.Name, idField)
		if err != nil {
			return err
		}
		if err := extid.Set(ptr, id); err != nil {
			return err
		}
	}

	setTimestamps(ptr, time.Now().UTC())
	f.markStubbed(ptr)
	return nil
}

func generateStubID(fieldName string, field reflect.Value) (interface{}, error) {
	switch field.Kind() {
	case reflect.String:
		return uuid.NewV4().String(), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return nextStubID(), nil

	case reflect.Interface:
		return nextStubID(), nil

	default:
		return nil, fmt.Errorf(`can't generate a stub id for %s field of %s kind`,
			fieldName, field.Kind())
	}
}

var timestampFieldNames = [...]string{`CreatedAt`, `UpdatedAt`}

// setTimestamps populates the conventional timestamp fields with the same
// instant, but only those that are still zero, so declared defaults and
// overrides always win.
func setTimestamps(ptr fabrica.Entity, now time.Time) {
	elem := reflect.ValueOf(ptr).Elem()
	if elem.Kind() != reflect.Struct {
		return
	}

	for _, name := range timestampFieldNames {
		field := elem.FieldByName(name)
		if !field.IsValid() || !field.CanSet() {
			continue
		}

		ts, ok := field.Interface().(time.Time)
		if !ok || !ts.IsZero() {
			continue
		}

		field.Set(reflect.ValueOf(now))
	}
}
