package carrier

import (
	"github.com/damonto/cellinfo/internal/pkg/provider"
)

// Carrier describes one active or detected mobile network subscription.
type Carrier struct {
	CarrierName       string                `json:"carrierName"`
	DisplayName       string                `json:"displayName"`
	ISOCountryCode    string                `json:"isoCountryCode"`
	MobileCountryCode string                `json:"mobileCountryCode"`
	MobileNetworkCode string                `json:"mobileNetworkCode"`
	Country           string                `json:"country"`
	CountryCode       string                `json:"countryCode"`
	NetworkType       RadioAccessTechnology `json:"networkType"`
	Generation        Generation            `json:"generation,omitempty"`
}

// LiveData is what the platform could tell about a subscription.
// Empty strings mean unknown.
type LiveData struct {
	CarrierName       string
	DisplayName       string
	ISOCountryCode    string
	MobileCountryCode string
	MobileNetworkCode string
	NetworkType       RadioAccessTechnology
}

// Table looks up network provider records.
type Table interface {
	LookupByMccMnc(mcc, mnc string) (provider.Record, bool)
	LookupByMcc(mcc string) (provider.Record, bool)
}

var (
	_ Table = (*provider.Table)(nil)
	_ Table = (*provider.Store)(nil)
)

type Resolver struct {
	table Table
}

// NewResolver returns a resolver backed by table, or by the bundled
// dataset when table is nil.
func NewResolver(table Table) *Resolver {
	if table == nil {
		table = provider.Default()
	}
	return &Resolver{table: table}
}

// Resolve merges live data with the provider table. Live values always win;
// table values only fill in what the platform left empty.
func (r *Resolver) Resolve(live LiveData) Carrier {
	c := r.prepare(live)
	r.enrich(&c, live.NetworkType)
	return c
}

func (r *Resolver) prepare(live LiveData) Carrier {
	c := Carrier{
		CarrierName:       live.CarrierName,
		DisplayName:       live.DisplayName,
		ISOCountryCode:    live.ISOCountryCode,
		MobileCountryCode: live.MobileCountryCode,
		MobileNetworkCode: NormalizeMNC(live.MobileNetworkCode),
	}
	record, ok := r.lookup(c.MobileCountryCode, c.MobileNetworkCode)
	if !ok {
		return c
	}
	c.Country = record.Country
	c.CountryCode = record.CountryCode
	if c.CarrierName == "" {
		c.CarrierName = record.Network
	}
	if c.ISOCountryCode == "" {
		c.ISOCountryCode = record.ISO
	}
	return c
}

func (r *Resolver) lookup(mcc, mnc string) (provider.Record, bool) {
	if record, ok := r.table.LookupByMccMnc(mcc, mnc); ok {
		return record, true
	}
	return r.table.LookupByMcc(mcc)
}

func (r *Resolver) enrich(c *Carrier, rat RadioAccessTechnology) {
	c.NetworkType = rat
	c.Generation = GenerationOf(rat)
}

// NormalizeMNC zero-pads a single digit network code. Other lengths are
// returned unchanged.
func NormalizeMNC(mnc string) string {
	if len(mnc) == 1 {
		return "0" + mnc
	}
	return mnc
}

// SplitOperator splits an MCC+MNC operator code into its parts.
func SplitOperator(code string) (mcc, mnc string) {
	if len(code) <= 3 {
		return code, ""
	}
	return code[:3], code[3:]
}
