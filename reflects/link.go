package reflects

import (
	"errors"
	"fmt"
	"reflect"
)

// Link makes the destination pointer hold the src value.
// If src is a pointer, the pointed value is linked.
func Link(src, ptr interface{}) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = errors.New(fmt.Sprint(recovered))
		}
	}()

	value := reflect.ValueOf(src)

	if value.Kind() != reflect.Ptr {
		copied := reflect.New(value.Type())
		copied.Elem().Set(value)
		value = copied
	}

	reflect.ValueOf(ptr).Elem().Set(value.Elem())

	return nil
}
