package modem

import (
	"errors"
	"log/slog"
	"sort"

	"github.com/godbus/dbus/v5"

	"github.com/damonto/cellinfo/internal/pkg/provider"
)

const (
	ModemManagerInterface  = "org.freedesktop.ModemManager1"
	ModemManagerObjectPath = dbus.ObjectPath("/org/freedesktop/ModemManager1")

	objectManagerGetManagedObjects = "org.freedesktop.DBus.ObjectManager.GetManagedObjects"
)

var (
	ErrModemNotFound  = errors.New("modem not found")
	ErrNoSIM          = errors.New("no sim card present")
	ErrUnexpectedType = errors.New("unexpected property type")
)

// Countries resolves the country of a mobile country code.
type Countries interface {
	LookupByMcc(mcc string) (provider.Record, bool)
}

type Manager struct {
	conn      *dbus.Conn
	countries Countries
}

// NewManager connects to ModemManager on the system bus.
func NewManager(countries Countries) (*Manager, error) {
	conn, err := dbus.SystemBus()
	if err != nil {
		return nil, err
	}
	if countries == nil {
		countries = provider.Default()
	}
	return &Manager{conn: conn, countries: countries}, nil
}

func (m *Manager) object(path dbus.ObjectPath) object {
	return m.conn.Object(ModemManagerInterface, path)
}

// Modems lists the modems ModemManager currently exports, ordered by object path.
func (m *Manager) Modems() ([]*Modem, error) {
	var objects map[dbus.ObjectPath]map[string]map[string]dbus.Variant
	if err := m.conn.Object(ModemManagerInterface, ModemManagerObjectPath).Call(objectManagerGetManagedObjects, 0).Store(&objects); err != nil {
		return nil, err
	}
	paths := make([]dbus.ObjectPath, 0, len(objects))
	for path, interfaces := range objects {
		if _, ok := interfaces[ModemInterface]; ok {
			paths = append(paths, path)
		}
	}
	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	modems := make([]*Modem, 0, len(paths))
	for _, path := range paths {
		slog.Debug("modem found", "objectPath", path)
		modems = append(modems, newModem(m.object(path), m.object, m.countries))
	}
	return modems, nil
}
