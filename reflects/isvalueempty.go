package reflects

import "reflect"

// IsValueEmpty reports whether the value holds its type's zero value.
// Pointers and interfaces are unwrapped, so a pointer to a zero value
// counts as empty as well.
func IsValueEmpty(val reflect.Value) bool {
	if !val.IsValid() {
		return true
	}

	switch val.Kind() {
	case reflect.Interface, reflect.Ptr:
		if val.IsNil() {
			return true
		}
		return IsValueEmpty(val.Elem())

	case reflect.Chan, reflect.Map, reflect.Slice, reflect.Func:
		return val.IsNil()

	default:
		return reflect.DeepEqual(reflect.Zero(val.Type()).Interface(), val.Interface())
	}
}
