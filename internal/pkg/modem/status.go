package modem

import (
	"log/slog"
)

// Status is a snapshot of the modem hardware and its network registration.
type Status struct {
	Manufacturer       string   `json:"manufacturer,omitempty"`
	Revision           string   `json:"revision,omitempty"`
	IMEI               string   `json:"imei,omitempty"`
	State              string   `json:"state"`
	Registration       string   `json:"registration,omitempty"`
	Roaming            bool     `json:"roaming"`
	AccessTechnologies string   `json:"accessTechnologies"`
	SignalQuality      uint32   `json:"signalQuality"`
	OwnNumbers         []string `json:"ownNumbers,omitempty"`
}

// Status reads the modem status. Properties the modem does not export are
// left at their zero value.
func (m *Modem) Status() *Status {
	s := &Status{
		Manufacturer:       read(m, m.Manufacturer, "manufacturer"),
		Revision:           read(m, m.Revision, "revision"),
		IMEI:               read(m, m.IMEI, "imei"),
		State:              read(m, m.State, "state").String(),
		AccessTechnologies: read(m, m.AccessTechnologies, "access technologies").String(),
		SignalQuality:      read(m, m.SignalQuality, "signal quality"),
		OwnNumbers:         read(m, m.OwnNumbers, "own numbers"),
	}
	if registration, err := m.RegistrationState(); err == nil {
		s.Registration = registration.String()
		s.Roaming = registration.Roaming()
	} else {
		slog.Debug("modem property unavailable", "objectPath", m.ObjectPath(), "property", "registration state", "error", err)
	}
	return s
}

func read[T any](m *Modem, get func() (T, error), name string) T {
	v, err := get()
	if err != nil {
		slog.Debug("modem property unavailable", "objectPath", m.ObjectPath(), "property", name, "error", err)
		var zero T
		return zero
	}
	return v
}
