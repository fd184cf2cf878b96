package modem

import (
	"log/slog"

	"github.com/godbus/dbus/v5"
)

const (
	SimInterface = ModemManagerInterface + ".Sim"

	// emptySlot is the object path ModemManager reports for a slot without a card.
	emptySlot = dbus.ObjectPath("/")
)

type SIM struct {
	ObjectPath         dbus.ObjectPath
	Slot               uint32
	Active             bool
	Identifier         string
	Imsi               string
	OperatorIdentifier string
	OperatorName       string
}

func (m *Modem) PrimarySimSlot() (uint32, error) {
	slot, err := property[uint32](m.dbusObject, ModemInterface+".PrimarySimSlot")
	if err != nil {
		return 0, err
	}
	if slot == 0 {
		slot = 1
	}
	return slot, nil
}

func (m *Modem) SimSlots() ([]dbus.ObjectPath, error) {
	return property[[]dbus.ObjectPath](m.dbusObject, ModemInterface+".SimSlots")
}

// ActiveSIM returns the SIM the modem is currently using.
func (m *Modem) ActiveSIM() (*SIM, error) {
	path, err := property[dbus.ObjectPath](m.dbusObject, ModemInterface+".Sim")
	if err != nil {
		return nil, err
	}
	if path == emptySlot || path == "" {
		return nil, ErrNoSIM
	}
	sim, err := m.SIM(path)
	if err != nil {
		return nil, err
	}
	sim.Active = true
	sim.Slot = 1
	if slot, err := m.PrimarySimSlot(); err == nil {
		sim.Slot = slot
	}
	return sim, nil
}

// SIMs lists the cards in every populated slot, in slot order. Modems
// without multiple slots report their only SIM.
func (m *Modem) SIMs() ([]*SIM, error) {
	slots, err := m.SimSlots()
	if err != nil || len(slots) == 0 {
		if err != nil {
			slog.Debug("sim slots unavailable", "objectPath", m.ObjectPath(), "error", err)
		}
		sim, err := m.ActiveSIM()
		if err != nil {
			return nil, err
		}
		return []*SIM{sim}, nil
	}
	active, _ := property[dbus.ObjectPath](m.dbusObject, ModemInterface+".Sim")
	sims := make([]*SIM, 0, len(slots))
	for idx, path := range slots {
		if path == emptySlot {
			continue
		}
		sim, err := m.SIM(path)
		if err != nil {
			return nil, err
		}
		sim.Slot = uint32(idx + 1)
		if value, err := property[bool](m.objectFor(path), SimInterface+".Active"); err == nil {
			sim.Active = value
		} else {
			sim.Active = path == active
		}
		sims = append(sims, sim)
	}
	return sims, nil
}

func (m *Modem) SIM(path dbus.ObjectPath) (*SIM, error) {
	obj := m.objectFor(path)
	sim := &SIM{ObjectPath: path}
	var err error
	if sim.Identifier, err = property[string](obj, SimInterface+".SimIdentifier"); err != nil {
		return nil, err
	}
	if sim.Imsi, err = property[string](obj, SimInterface+".Imsi"); err != nil {
		return nil, err
	}
	if sim.OperatorIdentifier, err = property[string](obj, SimInterface+".OperatorIdentifier"); err != nil {
		return nil, err
	}
	if sim.OperatorName, err = property[string](obj, SimInterface+".OperatorName"); err != nil {
		return nil, err
	}
	return sim, nil
}
