package device

import (
	"fmt"
	"log/slog"

	"github.com/damonto/cellinfo/internal/pkg/android"
	"github.com/damonto/cellinfo/internal/pkg/carrier"
	"github.com/damonto/cellinfo/internal/pkg/modem"
)

// Device is one source of live telephony data.
type Device struct {
	Name      string
	Telephony carrier.Telephony
	// Status is set for devices backed by a modem.
	Status *modem.Status
}

type Source interface {
	Devices() ([]Device, error)
}

// Report holds the carriers resolved for one device.
type Report struct {
	Device   string            `json:"device"`
	Status   *modem.Status     `json:"status,omitempty"`
	Carriers []carrier.Carrier `json:"carriers"`
}

// Collect resolves the carriers of every device the source exposes.
func Collect(resolver *carrier.Resolver, source Source) ([]Report, error) {
	devices, err := source.Devices()
	if err != nil {
		return nil, err
	}
	reports := make([]Report, 0, len(devices))
	for _, d := range devices {
		carriers := resolver.ServiceProviders(d.Telephony)
		slog.Debug("carriers resolved", "device", d.Name, "count", len(carriers))
		reports = append(reports, Report{Device: d.Name, Status: d.Status, Carriers: carriers})
	}
	return reports, nil
}

type ModemLister interface {
	Modems() ([]*modem.Modem, error)
}

type modemManager struct {
	lister ModemLister
}

// ModemManager exposes every modem known to ModemManager.
func ModemManager(lister ModemLister) Source {
	return &modemManager{lister: lister}
}

func (s *modemManager) Devices() ([]Device, error) {
	modems, err := s.lister.Modems()
	if err != nil {
		return nil, err
	}
	if len(modems) == 0 {
		return nil, modem.ErrModemNotFound
	}
	devices := make([]Device, 0, len(modems))
	for _, m := range modems {
		devices = append(devices, Device{Name: modemName(m), Telephony: m, Status: m.Status()})
	}
	return devices, nil
}

func modemName(m *modem.Modem) string {
	model, err := m.Model()
	if err != nil {
		return string(m.ObjectPath())
	}
	id, err := m.EquipmentIdentifier()
	if err != nil || id == "" {
		return model
	}
	return fmt.Sprintf("%s (%s)", model, id)
}

type androidSource struct {
	telephony *android.Telephony
}

// Android exposes the host device.
func Android(telephony *android.Telephony) Source {
	return &androidSource{telephony: telephony}
}

func (s *androidSource) Devices() ([]Device, error) {
	return []Device{{Name: "Android", Telephony: s.telephony}}, nil
}
