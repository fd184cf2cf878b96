package android

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damonto/cellinfo/internal/pkg/carrier"
	"github.com/damonto/cellinfo/internal/pkg/provider"
)

type fakeProperties map[string]string

func (p fakeProperties) Property(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return p[name], nil
}

type failingProperties struct{ err error }

func (p failingProperties) Property(context.Context, string) (string, error) {
	return "", p.err
}

func testTable() *provider.Table {
	return provider.NewTable([]provider.Record{
		{MCC: "310", MNC: "260", ISO: "us", Country: "United States", CountryCode: "1", Network: "T-Mobile"},
		{MCC: "460", MNC: "00", ISO: "cn", Country: "China", CountryCode: "86", Network: "China Mobile"},
		{MCC: "460", MNC: "01", ISO: "cn", Country: "China", CountryCode: "86", Network: "China Unicom"},
	})
}

func TestTelephonySingleSIM(t *testing.T) {
	tel := NewTelephony(fakeProperties{
		PropertySimOperatorNumeric: "310260",
		PropertySimOperatorAlpha:   "Mint",
		PropertyOperatorAlpha:      "T-Mobile",
		PropertyOperatorISOCountry: "us",
		PropertyNetworkType:        "LTE",
	})

	operator, err := tel.SimOperator()
	require.NoError(t, err)
	assert.Equal(t, "310260", operator)

	rat, err := tel.RadioAccessTechnology()
	require.NoError(t, err)
	assert.Equal(t, carrier.RadioAccessTechnologyLTE, rat)

	carriers := carrier.NewResolver(testTable()).ServiceProviders(tel)
	require.Len(t, carriers, 1)
	assert.Equal(t, carrier.Carrier{
		CarrierName:       "Mint",
		DisplayName:       "SIM 1",
		ISOCountryCode:    "us",
		MobileCountryCode: "310",
		MobileNetworkCode: "260",
		Country:           "United States",
		CountryCode:       "1",
		NetworkType:       carrier.RadioAccessTechnologyLTE,
		Generation:        carrier.Generation4G,
	}, carriers[0])
}

func TestTelephonyDualSIM(t *testing.T) {
	tel := NewTelephony(fakeProperties{
		PropertySimOperatorNumeric:    ",46001 , 46000",
		PropertySimOperatorAlpha:      ",CUCC,CMCC",
		PropertySimOperatorISOCountry: ",cn,cn",
		PropertyOperatorAlpha:         ",China Unicom,China Mobile",
		PropertyOperatorISOCountry:    ",cn,cn",
		PropertyNetworkType:           "Unknown,NR,LTE",
	})

	name, err := tel.NetworkOperatorName()
	require.NoError(t, err)
	assert.Equal(t, "China Unicom", name)

	subscriptions, err := tel.Subscriptions()
	require.NoError(t, err)
	assert.Equal(t, []carrier.Subscription{
		{CarrierName: "CUCC", DisplayName: "SIM 2", ISOCountryCode: "cn", MCC: "460", MNC: "01"},
		{CarrierName: "CMCC", DisplayName: "SIM 3", ISOCountryCode: "cn", MCC: "460", MNC: "00"},
	}, subscriptions)

	carriers := carrier.NewResolver(testTable()).ServiceProviders(tel)
	require.Len(t, carriers, 2)
	assert.Equal(t, carrier.RadioAccessTechnologyNR, carriers[0].NetworkType)
	assert.Equal(t, carrier.Generation5G, carriers[0].Generation)
	assert.Equal(t, "China", carriers[0].Country)
	assert.Equal(t, carrier.RadioAccessTechnologyUnknown, carriers[1].NetworkType)
	assert.Empty(t, carriers[1].Generation)
}

func TestTelephonyNumericNetworkType(t *testing.T) {
	tests := []struct {
		value string
		want  carrier.RadioAccessTechnology
	}{
		{"13", carrier.RadioAccessTechnologyLTE},
		{"20", carrier.RadioAccessTechnologyNR},
		{"2", carrier.RadioAccessTechnologyEDGE},
		{"99", carrier.RadioAccessTechnologyUnknown},
		{"HSPA+", carrier.RadioAccessTechnologyHSPAP},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			tel := NewTelephony(fakeProperties{
				PropertySimOperatorNumeric: "310260",
				PropertyNetworkType:        tt.value,
			})
			rat, err := tel.RadioAccessTechnology()
			require.NoError(t, err)
			assert.Equal(t, tt.want, rat)
		})
	}
}

func TestTelephonyNoSIM(t *testing.T) {
	tel := NewTelephony(fakeProperties{})

	operator, err := tel.SimOperator()
	require.NoError(t, err)
	assert.Empty(t, operator)

	name, err := tel.SimOperatorName()
	require.NoError(t, err)
	assert.Empty(t, name)

	subscriptions, err := tel.Subscriptions()
	require.NoError(t, err)
	assert.Empty(t, subscriptions)
}

func TestTelephonyReadFailure(t *testing.T) {
	errDenied := errors.New("permission denied")
	tel := NewTelephony(failingProperties{err: errDenied})

	_, err := tel.SimOperator()
	assert.ErrorIs(t, err, errDenied)
	_, err = tel.RadioAccessTechnology()
	assert.ErrorIs(t, err, errDenied)
	_, err = tel.Subscriptions()
	assert.ErrorIs(t, err, errDenied)

	carriers := carrier.NewResolver(testTable()).ServiceProviders(tel)
	require.Len(t, carriers, 1)
	assert.Equal(t, carrier.Carrier{Generation: carrier.GenerationUnknown}, carriers[0])
}

func TestAt(t *testing.T) {
	t.Parallel()
	values := []string{"a", "b"}
	assert.Equal(t, "a", at(values, 0))
	assert.Equal(t, "b", at(values, 1))
	assert.Empty(t, at(values, 2))
	assert.Empty(t, at(values, -1))
	assert.Empty(t, at(nil, 0))
}
