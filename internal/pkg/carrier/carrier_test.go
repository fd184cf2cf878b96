package carrier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damonto/cellinfo/internal/pkg/provider"
)

func testTable() *provider.Table {
	return provider.NewTable([]provider.Record{
		{MCC: "310", MNC: "04", ISO: "us", Country: "United States", CountryCode: "us", Network: "Verizon"},
		{MCC: "310", MNC: "260", ISO: "us", Country: "United States", CountryCode: "us", Network: "T-Mobile"},
		{MCC: "234", MNC: "10", ISO: "gb", Country: "United Kingdom", CountryCode: "44", Network: "O2"},
		{MCC: "234", MNC: "15", ISO: "gb", Country: "United Kingdom", CountryCode: "44", Network: "Vodafone"},
		{MCC: "262", MNC: "01", ISO: "de", Country: "Germany", CountryCode: "49", Network: "Telekom"},
	})
}

func TestNormalizeMNC(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"":     "",
		"5":    "05",
		"0":    "00",
		"04":   "04",
		"260":  "260",
		"1234": "1234",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeMNC(in), "NormalizeMNC(%q)", in)
	}
}

func TestSplitOperator(t *testing.T) {
	t.Parallel()
	tests := []struct {
		code string
		mcc  string
		mnc  string
	}{
		{code: "", mcc: "", mnc: ""},
		{code: "31", mcc: "31", mnc: ""},
		{code: "310", mcc: "310", mnc: ""},
		{code: "23410", mcc: "234", mnc: "10"},
		{code: "310260", mcc: "310", mnc: "260"},
	}
	for _, tt := range tests {
		mcc, mnc := SplitOperator(tt.code)
		assert.Equal(t, tt.mcc, mcc, tt.code)
		assert.Equal(t, tt.mnc, mnc, tt.code)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()
	r := NewResolver(testTable())

	tests := []struct {
		name string
		live LiveData
		want Carrier
	}{
		{
			name: "single digit mnc is padded before lookup",
			live: LiveData{MobileCountryCode: "310", MobileNetworkCode: "4"},
			want: Carrier{
				Country:           "United States",
				CountryCode:       "us",
				CarrierName:       "Verizon",
				ISOCountryCode:    "us",
				MobileCountryCode: "310",
				MobileNetworkCode: "04",
				NetworkType:       RadioAccessTechnologyUnknown,
				Generation:        GenerationUnknown,
			},
		},
		{
			name: "live values take precedence",
			live: LiveData{CarrierName: "giffgaff", ISOCountryCode: "GB", DisplayName: "O2 - UK", MobileCountryCode: "234", MobileNetworkCode: "10", NetworkType: RadioAccessTechnologyLTE},
			want: Carrier{
				Country:           "United Kingdom",
				CountryCode:       "44",
				CarrierName:       "giffgaff",
				DisplayName:       "O2 - UK",
				ISOCountryCode:    "GB",
				MobileCountryCode: "234",
				MobileNetworkCode: "10",
				NetworkType:       RadioAccessTechnologyLTE,
				Generation:        Generation4G,
			},
		},
		{
			name: "falls back to the country record",
			live: LiveData{MobileCountryCode: "234", MobileNetworkCode: "99", NetworkType: RadioAccessTechnologyHSPA},
			want: Carrier{
				Country:           "United Kingdom",
				CountryCode:       "44",
				CarrierName:       "O2",
				ISOCountryCode:    "gb",
				MobileCountryCode: "234",
				MobileNetworkCode: "99",
				NetworkType:       RadioAccessTechnologyHSPA,
				Generation:        Generation3G,
			},
		},
		{
			name: "unknown operator keeps live data only",
			live: LiveData{CarrierName: "Somewhere", MobileCountryCode: "999", MobileNetworkCode: "1", NetworkType: RadioAccessTechnologyNR},
			want: Carrier{
				CarrierName:       "Somewhere",
				MobileCountryCode: "999",
				MobileNetworkCode: "01",
				NetworkType:       RadioAccessTechnologyNR,
				Generation:        Generation5G,
			},
		},
		{
			name: "three digit mnc passes through",
			live: LiveData{MobileCountryCode: "310", MobileNetworkCode: "260"},
			want: Carrier{
				Country:           "United States",
				CountryCode:       "us",
				CarrierName:       "T-Mobile",
				ISOCountryCode:    "us",
				MobileCountryCode: "310",
				MobileNetworkCode: "260",
				Generation:        GenerationUnknown,
			},
		},
		{
			name: "nothing known",
			live: LiveData{},
			want: Carrier{Generation: GenerationUnknown},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, r.Resolve(tt.live))
		})
	}
}

func TestResolveMatchesTable(t *testing.T) {
	t.Parallel()
	table := provider.Default()
	r := NewResolver(nil)
	records := table.Records()
	require.Equal(t, table.Len(), len(records))
	for _, record := range records {
		c := r.Resolve(LiveData{MobileCountryCode: record.MCC, MobileNetworkCode: record.MNC})
		assert.Equal(t, record.MNC, c.MobileNetworkCode)
		assert.Equal(t, record.Country, c.Country, "%s/%s", record.MCC, record.MNC)
		assert.Equal(t, record.CountryCode, c.CountryCode, "%s/%s", record.MCC, record.MNC)
		assert.Equal(t, record.Network, c.CarrierName, "%s/%s", record.MCC, record.MNC)
		assert.Equal(t, record.ISO, c.ISOCountryCode, "%s/%s", record.MCC, record.MNC)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	t.Parallel()
	r := NewResolver(testTable())
	live := LiveData{DisplayName: "Telekom.de", MobileCountryCode: "262", MobileNetworkCode: "1", NetworkType: RadioAccessTechnologyEDGE}
	first := r.Resolve(live)
	second := r.Resolve(live)
	assert.Equal(t, first, second)
	assert.Equal(t, "01", first.MobileNetworkCode)
	assert.Equal(t, "Telekom", first.CarrierName)
	assert.Equal(t, Generation2G, first.Generation)
}
