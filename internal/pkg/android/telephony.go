package android

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/damonto/cellinfo/internal/pkg/carrier"
)

const (
	PropertySimOperatorNumeric    = "gsm.sim.operator.numeric"
	PropertySimOperatorAlpha      = "gsm.sim.operator.alpha"
	PropertySimOperatorISOCountry = "gsm.sim.operator.iso-country"
	PropertyOperatorAlpha         = "gsm.operator.alpha"
	PropertyOperatorISOCountry    = "gsm.operator.iso-country"
	PropertyNetworkType           = "gsm.network.type"

	defaultTimeout = 2 * time.Second
)

// PropertyReader reads an Android system property.
type PropertyReader interface {
	Property(ctx context.Context, name string) (string, error)
}

// Getprop reads properties with the getprop binary.
type Getprop struct{}

func (Getprop) Property(ctx context.Context, name string) (string, error) {
	out, err := exec.CommandContext(ctx, "getprop", name).Output()
	if err != nil {
		return "", fmt.Errorf("getprop %s: %w", name, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Telephony exposes the telephony system properties. Multi-SIM devices
// report one comma separated value per slot.
type Telephony struct {
	reader  PropertyReader
	timeout time.Duration
}

var (
	_ carrier.Telephony          = (*Telephony)(nil)
	_ carrier.SubscriptionLister = (*Telephony)(nil)
)

func NewTelephony(reader PropertyReader) *Telephony {
	if reader == nil {
		reader = Getprop{}
	}
	return &Telephony{reader: reader, timeout: defaultTimeout}
}

func (t *Telephony) slots(name string) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()
	value, err := t.reader.Property(ctx, name)
	if err != nil {
		return nil, err
	}
	if value == "" {
		return nil, nil
	}
	values := strings.Split(value, ",")
	for i := range values {
		values[i] = strings.TrimSpace(values[i])
	}
	return values, nil
}

func at(values []string, idx int) string {
	if idx < 0 || idx >= len(values) {
		return ""
	}
	return values[idx]
}

// active returns the index of the first slot with a SIM operator.
func (t *Telephony) active() (int, string, error) {
	operators, err := t.slots(PropertySimOperatorNumeric)
	if err != nil {
		return -1, "", err
	}
	for idx, operator := range operators {
		if operator != "" {
			return idx, operator, nil
		}
	}
	return -1, "", nil
}

func (t *Telephony) activeValue(name string) (string, error) {
	idx, _, err := t.active()
	if err != nil || idx < 0 {
		return "", err
	}
	values, err := t.slots(name)
	if err != nil {
		return "", err
	}
	return at(values, idx), nil
}

func (t *Telephony) SimOperator() (string, error) {
	_, operator, err := t.active()
	return operator, err
}

func (t *Telephony) SimOperatorName() (string, error) {
	return t.activeValue(PropertySimOperatorAlpha)
}

func (t *Telephony) NetworkOperatorName() (string, error) {
	return t.activeValue(PropertyOperatorAlpha)
}

func (t *Telephony) NetworkCountryISO() (string, error) {
	return t.activeValue(PropertyOperatorISOCountry)
}

func (t *Telephony) RadioAccessTechnology() (carrier.RadioAccessTechnology, error) {
	name, err := t.activeValue(PropertyNetworkType)
	if err != nil {
		return carrier.RadioAccessTechnologyUnknown, err
	}
	// Some vendor builds report the numeric network type instead of its name.
	if code, err := strconv.Atoi(name); err == nil {
		return carrier.FromNetworkType(code), nil
	}
	return carrier.ParseRadioAccessTechnology(name), nil
}

func (t *Telephony) Subscriptions() ([]carrier.Subscription, error) {
	operators, err := t.slots(PropertySimOperatorNumeric)
	if err != nil {
		return nil, err
	}
	names, err := t.slots(PropertySimOperatorAlpha)
	if err != nil {
		slog.Debug("sim operator names unavailable", "error", err)
	}
	countries, err := t.slots(PropertySimOperatorISOCountry)
	if err != nil {
		slog.Debug("sim countries unavailable", "error", err)
	}

	var subscriptions []carrier.Subscription
	for idx, operator := range operators {
		if operator == "" {
			continue
		}
		mcc, mnc := carrier.SplitOperator(operator)
		subscriptions = append(subscriptions, carrier.Subscription{
			CarrierName:    at(names, idx),
			DisplayName:    fmt.Sprintf("SIM %d", idx+1),
			ISOCountryCode: at(countries, idx),
			MCC:            mcc,
			MNC:            mnc,
		})
	}
	return subscriptions, nil
}
