package carrier

import (
	"log/slog"
)

// Telephony is the platform capability a resolver queries for live data.
// Implementations are expected to be cheap, synchronous calls into the host.
type Telephony interface {
	// SimOperator returns the MCC+MNC of the active SIM.
	SimOperator() (string, error)
	SimOperatorName() (string, error)
	NetworkOperatorName() (string, error)
	NetworkCountryISO() (string, error)
	RadioAccessTechnology() (RadioAccessTechnology, error)
}

// SubscriptionLister is implemented by platforms that can enumerate every
// active subscription, such as multi-SIM devices.
type SubscriptionLister interface {
	Subscriptions() ([]Subscription, error)
}

// Subscription is one entry of a platform subscription listing. Listings do
// not carry the live radio access technology.
type Subscription struct {
	CarrierName    string
	DisplayName    string
	ISOCountryCode string
	MCC            string
	MNC            string
}

// ServiceProviders resolves every cellular subscription the platform reports,
// in listing order. When the platform cannot enumerate subscriptions a single
// carrier is built from the active SIM.
//
// Only the subscriptions matching the active SIM operator get the live
// network type and generation.
func (r *Resolver) ServiceProviders(t Telephony) []Carrier {
	carriers := []Carrier{}
	if t == nil {
		return carriers
	}
	mcc, mnc := SplitOperator(value(t.SimOperator, "sim operator"))

	if lister, ok := t.(SubscriptionLister); ok {
		subscriptions, err := lister.Subscriptions()
		if err == nil {
			for _, s := range subscriptions {
				c := r.prepare(LiveData{
					CarrierName:       s.CarrierName,
					DisplayName:       s.DisplayName,
					ISOCountryCode:    s.ISOCountryCode,
					MobileCountryCode: s.MCC,
					MobileNetworkCode: s.MNC,
				})
				// Subscription MNCs are already padded by prepare, so the
				// active operator MNC is padded too before comparing.
				if mcc != "" && c.MobileCountryCode == mcc && c.MobileNetworkCode == NormalizeMNC(mnc) {
					r.enrich(&c, value(t.RadioAccessTechnology, "radio access technology"))
				}
				carriers = append(carriers, c)
			}
			return carriers
		}
		slog.Debug("subscription listing unavailable, falling back to active sim", "error", err)
	}

	return append(carriers, r.Resolve(LiveData{
		CarrierName:       value(t.SimOperatorName, "sim operator name"),
		DisplayName:       value(t.NetworkOperatorName, "network operator name"),
		ISOCountryCode:    value(t.NetworkCountryISO, "network country iso"),
		MobileCountryCode: mcc,
		MobileNetworkCode: mnc,
		NetworkType:       value(t.RadioAccessTechnology, "radio access technology"),
	}))
}

// value calls a telephony getter and degrades failures to the zero value.
func value[T any](get func() (T, error), name string) T {
	v, err := get()
	if err != nil {
		slog.Debug("telephony value unavailable", "value", name, "error", err)
		var zero T
		return zero
	}
	return v
}
