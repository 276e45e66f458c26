package Go_Collections

import "reflect"

// IsNil reports whether v holds no value: a nil interface, or a nil pointer,
// map, slice, func or chan. Value types such as ints and strings are never nil,
// their zero values are ordinary elements.
func IsNil[T any](v T) bool {
	switch rv := reflect.ValueOf(any(v)); rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
