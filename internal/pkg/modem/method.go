package modem

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

// object is the part of dbus.BusObject the modem package reads from.
type object interface {
	GetProperty(p string) (dbus.Variant, error)
	Path() dbus.ObjectPath
}

type objectFunc func(path dbus.ObjectPath) object

func property[T any](obj object, name string) (T, error) {
	var zero T
	variant, err := obj.GetProperty(name)
	if err != nil {
		return zero, err
	}
	value, ok := variant.Value().(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s is %s", ErrUnexpectedType, name, variant.Signature())
	}
	return value, nil
}
