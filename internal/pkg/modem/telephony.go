package modem

import (
	"fmt"

	"github.com/damonto/cellinfo/internal/pkg/carrier"
)

var (
	_ carrier.Telephony          = (*Modem)(nil)
	_ carrier.SubscriptionLister = (*Modem)(nil)
)

func (m *Modem) SimOperator() (string, error) {
	sim, err := m.ActiveSIM()
	if err != nil {
		return "", err
	}
	return sim.OperatorIdentifier, nil
}

func (m *Modem) SimOperatorName() (string, error) {
	sim, err := m.ActiveSIM()
	if err != nil {
		return "", err
	}
	return sim.OperatorName, nil
}

func (m *Modem) NetworkOperatorName() (string, error) {
	return m.OperatorName()
}

// NetworkCountryISO derives the country of the registered network from its
// MCC, since ModemManager does not publish one.
func (m *Modem) NetworkCountryISO() (string, error) {
	code, err := m.OperatorCode()
	if err != nil {
		return "", err
	}
	mcc, _ := carrier.SplitOperator(code)
	if mcc == "" || m.countries == nil {
		return "", nil
	}
	record, ok := m.countries.LookupByMcc(mcc)
	if !ok {
		return "", nil
	}
	return record.ISO, nil
}

func (m *Modem) RadioAccessTechnology() (carrier.RadioAccessTechnology, error) {
	technologies, err := m.AccessTechnologies()
	if err != nil {
		return carrier.RadioAccessTechnologyUnknown, err
	}
	return technologies.RadioAccessTechnology(), nil
}

func (m *Modem) Subscriptions() ([]carrier.Subscription, error) {
	sims, err := m.SIMs()
	if err != nil {
		return nil, err
	}
	subscriptions := make([]carrier.Subscription, 0, len(sims))
	for _, sim := range sims {
		mcc, mnc := carrier.SplitOperator(sim.OperatorIdentifier)
		subscriptions = append(subscriptions, carrier.Subscription{
			CarrierName: sim.OperatorName,
			DisplayName: fmt.Sprintf("SIM %d", sim.Slot),
			MCC:         mcc,
			MNC:         mnc,
		})
	}
	return subscriptions, nil
}
