package factory

import (
	"math/rand"
	"reflect"
	"sync"
	"time"

	"github.com/Pallinder/go-randomdata"

	"github.com/fabrica-go/fabrica"
	"github.com/fabrica-go/fabrica/extid"
	"github.com/fabrica-go/fabrica/reflects"
)

// fillWithRandoms populates every attribute that is still zero after the
// declared defaults with a random value fitting its kind. The identifier
// field, timestamp fields and declared association fields are left alone;
// those belong to the build strategies.
func fillWithRandoms(d *definition, ptr fabrica.Entity) {
	elem := reflect.ValueOf(ptr).Elem()

	skip := make(map[string]struct{})
	for _, name := range timestampFieldNames {
		skip[name] = struct{}{}
	}
	for _, assoc := range d.assocs {
		skip[assoc.field] = struct{}{}
		skip[assoc.field+`ID`] = struct{}{}
	}
	if sf, _, ok := extid.LookupStructField(ptr); ok {
		skip[sf.Name] = struct{}{}
	}

	for i := 0; i < elem.NumField(); i++ {
		field := elem.Field(i)
		name := elem.Type().Field(i).Name

		if _, ok := skip[name]; ok {
			continue
		}
		if !field.CanSet() || !reflects.IsValueEmpty(field) {
			continue
		}

		if value := randomValue(field); value.IsValid() {
			field.Set(value)
		}
	}
}

// randomdata is not safe for concurrent use.
var randomMutex sync.Mutex

func randomValue(field reflect.Value) reflect.Value {
	switch field.Kind() {

	case reflect.Bool:
		randomMutex.Lock()
		defer randomMutex.Unlock()
		return reflect.ValueOf(randomdata.Boolean())

	case reflect.String:
		randomMutex.Lock()
		defer randomMutex.Unlock()
		return reflect.ValueOf(randomdata.SillyName())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return reflect.ValueOf(rand.Int63n(1<<30) + 1).Convert(field.Type())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return reflect.ValueOf(uint64(rand.Int63n(1<<30) + 1)).Convert(field.Type())

	case reflect.Float32, reflect.Float64:
		return reflect.ValueOf(rand.Float64()).Convert(field.Type())

	case reflect.Slice:
		return reflect.MakeSlice(field.Type(), 0, 0)

	case reflect.Map:
		return reflect.MakeMap(field.Type())

	case reflect.Struct:
		if _, ok := field.Interface().(time.Time); ok {
			hours := time.Duration(rand.Int63n(24*365)) * time.Hour
			return reflect.ValueOf(time.Now().UTC().Add(-hours))
		}
		// nested structs stay zero, associations must be declared with Assoc
		return reflect.Value{}

	default:
		return reflect.Value{}
	}
}
