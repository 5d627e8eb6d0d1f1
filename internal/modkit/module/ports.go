package module

import (
	"fmt"
	"reflect"
	"sync"
)

// PortsOf finds a T in m's port bundle: the bundle itself, or the first
// exported field of a struct bundle that holds one
func PortsOf[T any](m Module) (T, bool) {
	var zero T
	bundle := m.Ports()
	if bundle == nil {
		return zero, false
	}
	if t, ok := bundle.(T); ok {
		return t, true
	}
	rv := reflect.ValueOf(bundle)
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for _, f := range reflect.VisibleFields(rv.Type()) {
		if !f.IsExported() || len(f.Index) > 1 {
			continue
		}
		if t, ok := rv.FieldByIndex(f.Index).Interface().(T); ok {
			return t, true
		}
	}
	return zero, false
}

// MustPortsOf is PortsOf for wiring code, a missing port panics
func MustPortsOf[T any](m Module) T {
	t, ok := PortsOf[T](m)
	if !ok {
		panic(fmt.Sprintf("module %s: no %T port", m.Name(), (*T)(nil)))
	}
	return t
}

var registry sync.Map

// Register publishes a port bundle under a module name
func Register(name string, ports any) { registry.Store(name, ports) }

// PortsAs looks up the bundle registered under name as T
func PortsAs[T any](name string) (T, bool) {
	v, ok := registry.Load(name)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// Reset drops every registration
func Reset() { registry.Clear() }
