package repo

import (
	"fmt"
	"reflect"
)

// assign copies src into the pointer dst, handling nil for pointer targets
func assign(dst, src any) error {
	dv := reflect.ValueOf(dst)
	if dv.Kind() != reflect.Pointer {
		return fmt.Errorf("dst %T is not a pointer", dst)
	}
	target := dv.Elem()
	if src == nil {
		target.Set(reflect.Zero(target.Type()))
		return nil
	}
	sv := reflect.ValueOf(src)
	if !sv.Type().AssignableTo(target.Type()) {
		return fmt.Errorf("cannot assign %T to %s", src, target.Type())
	}
	target.Set(sv)
	return nil
}
