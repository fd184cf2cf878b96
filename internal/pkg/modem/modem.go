package modem

import (
	"github.com/godbus/dbus/v5"
)

const ModemInterface = ModemManagerInterface + ".Modem"

type Modem struct {
	dbusObject object
	objectFor  objectFunc
	countries  Countries
}

func newModem(dbusObject object, objectFor objectFunc, countries Countries) *Modem {
	return &Modem{dbusObject: dbusObject, objectFor: objectFor, countries: countries}
}

func (m *Modem) ObjectPath() dbus.ObjectPath {
	return m.dbusObject.Path()
}

func (m *Modem) Manufacturer() (string, error) {
	return property[string](m.dbusObject, ModemInterface+".Manufacturer")
}

func (m *Modem) Model() (string, error) {
	return property[string](m.dbusObject, ModemInterface+".Model")
}

func (m *Modem) Revision() (string, error) {
	return property[string](m.dbusObject, ModemInterface+".Revision")
}

func (m *Modem) EquipmentIdentifier() (string, error) {
	return property[string](m.dbusObject, ModemInterface+".EquipmentIdentifier")
}

func (m *Modem) State() (ModemState, error) {
	state, err := property[int32](m.dbusObject, ModemInterface+".State")
	return ModemState(state), err
}

func (m *Modem) AccessTechnologies() (AccessTechnology, error) {
	technologies, err := property[uint32](m.dbusObject, ModemInterface+".AccessTechnologies")
	return AccessTechnology(technologies), err
}

// SignalQuality returns the signal quality in percent.
func (m *Modem) SignalQuality() (uint32, error) {
	quality, err := property[[]any](m.dbusObject, ModemInterface+".SignalQuality")
	if err != nil {
		return 0, err
	}
	if len(quality) == 0 {
		return 0, ErrUnexpectedType
	}
	percent, ok := quality[0].(uint32)
	if !ok {
		return 0, ErrUnexpectedType
	}
	return percent, nil
}

func (m *Modem) OwnNumbers() ([]string, error) {
	return property[[]string](m.dbusObject, ModemInterface+".OwnNumbers")
}
