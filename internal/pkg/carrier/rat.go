package carrier

import (
	"strings"
)

// RadioAccessTechnology is the cellular protocol variant a subscription is
// currently registered on.
type RadioAccessTechnology int

const (
	RadioAccessTechnologyUnknown RadioAccessTechnology = iota
	RadioAccessTechnologyGPRS
	RadioAccessTechnologyEDGE
	RadioAccessTechnologyCDMA
	RadioAccessTechnologyCDMAEVDORev0
	RadioAccessTechnologyCDMAEVDORevA
	RadioAccessTechnologyCDMAEVDORevB
	RadioAccessTechnologyHSDPA
	RadioAccessTechnologyHSUPA
	RadioAccessTechnologyHSPA
	RadioAccessTechnologyHSPAP
	RadioAccessTechnologyUMTS
	RadioAccessTechnologyEHRPD
	RadioAccessTechnologyIDEN
	RadioAccessTechnologyLTE
	RadioAccessTechnologyIWLAN
	RadioAccessTechnologyNR
)

var radioAccessTechnologyNames = map[RadioAccessTechnology]string{
	RadioAccessTechnologyUnknown:      "UNKNOWN",
	RadioAccessTechnologyGPRS:         "GPRS",
	RadioAccessTechnologyEDGE:         "EDGE",
	RadioAccessTechnologyCDMA:         "CDMA",
	RadioAccessTechnologyCDMAEVDORev0: "CDMAEVDORev0",
	RadioAccessTechnologyCDMAEVDORevA: "CDMAEVDORevA",
	RadioAccessTechnologyCDMAEVDORevB: "CDMAEVDORevB",
	RadioAccessTechnologyHSDPA:        "HSDPA",
	RadioAccessTechnologyHSUPA:        "HSUPA",
	RadioAccessTechnologyHSPA:         "HSPA",
	RadioAccessTechnologyHSPAP:        "HSPAP",
	RadioAccessTechnologyUMTS:         "UMTS",
	RadioAccessTechnologyEHRPD:        "EHRPD",
	RadioAccessTechnologyIDEN:         "IDEN",
	RadioAccessTechnologyLTE:          "LTE",
	RadioAccessTechnologyIWLAN:        "IWLAN",
	RadioAccessTechnologyNR:           "NR",
}

func (r RadioAccessTechnology) String() string {
	if name, ok := radioAccessTechnologyNames[r]; ok {
		return name
	}
	return radioAccessTechnologyNames[RadioAccessTechnologyUnknown]
}

func (r RadioAccessTechnology) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *RadioAccessTechnology) UnmarshalText(text []byte) error {
	*r = ParseRadioAccessTechnology(string(text))
	return nil
}

// Generation is the wireless generation a radio access technology belongs to.
type Generation string

const (
	Generation2G      Generation = "2G"
	Generation3G      Generation = "3G"
	Generation4G      Generation = "4G"
	Generation5G      Generation = "5G"
	GenerationUnknown Generation = "unknown"
)

var generations = map[RadioAccessTechnology]Generation{
	RadioAccessTechnologyGPRS:         Generation2G,
	RadioAccessTechnologyEDGE:         Generation2G,
	RadioAccessTechnologyCDMA:         Generation2G,
	RadioAccessTechnologyIDEN:         Generation2G,
	RadioAccessTechnologyUMTS:         Generation3G,
	RadioAccessTechnologyCDMAEVDORev0: Generation3G,
	RadioAccessTechnologyCDMAEVDORevA: Generation3G,
	RadioAccessTechnologyCDMAEVDORevB: Generation3G,
	RadioAccessTechnologyHSDPA:        Generation3G,
	RadioAccessTechnologyHSUPA:        Generation3G,
	RadioAccessTechnologyHSPA:         Generation3G,
	RadioAccessTechnologyHSPAP:        Generation3G,
	RadioAccessTechnologyEHRPD:        Generation3G,
	RadioAccessTechnologyLTE:          Generation4G,
	RadioAccessTechnologyIWLAN:        Generation4G,
	RadioAccessTechnologyNR:           Generation5G,
}

// GenerationOf classifies a radio access technology into its wireless generation.
func GenerationOf(r RadioAccessTechnology) Generation {
	if g, ok := generations[r]; ok {
		return g
	}
	return GenerationUnknown
}

// Android TelephonyManager.NETWORK_TYPE_* codes.
var networkTypes = map[int]RadioAccessTechnology{
	1:  RadioAccessTechnologyGPRS,
	2:  RadioAccessTechnologyEDGE,
	3:  RadioAccessTechnologyUMTS,
	4:  RadioAccessTechnologyCDMA,
	5:  RadioAccessTechnologyCDMAEVDORev0,
	6:  RadioAccessTechnologyCDMAEVDORevA,
	8:  RadioAccessTechnologyHSDPA,
	9:  RadioAccessTechnologyHSUPA,
	10: RadioAccessTechnologyHSPA,
	11: RadioAccessTechnologyIDEN,
	12: RadioAccessTechnologyCDMAEVDORevB,
	13: RadioAccessTechnologyLTE,
	14: RadioAccessTechnologyEHRPD,
	15: RadioAccessTechnologyHSPAP,
	18: RadioAccessTechnologyIWLAN,
	20: RadioAccessTechnologyNR,
}

// FromNetworkType converts an Android network type code.
func FromNetworkType(code int) RadioAccessTechnology {
	if r, ok := networkTypes[code]; ok {
		return r
	}
	return RadioAccessTechnologyUnknown
}

// Names reported by Android's TelephonyManager.getNetworkTypeName, lowercased.
var networkTypeNames = map[string]RadioAccessTechnology{
	"gprs":               RadioAccessTechnologyGPRS,
	"edge":               RadioAccessTechnologyEDGE,
	"umts":               RadioAccessTechnologyUMTS,
	"cdma":               RadioAccessTechnologyCDMA,
	"cdma - evdo rev. 0": RadioAccessTechnologyCDMAEVDORev0,
	"cdma - evdo rev. a": RadioAccessTechnologyCDMAEVDORevA,
	"cdma - evdo rev. b": RadioAccessTechnologyCDMAEVDORevB,
	"hsdpa":              RadioAccessTechnologyHSDPA,
	"hsupa":              RadioAccessTechnologyHSUPA,
	"hspa":               RadioAccessTechnologyHSPA,
	"hspa+":              RadioAccessTechnologyHSPAP,
	"iden":               RadioAccessTechnologyIDEN,
	"lte":                RadioAccessTechnologyLTE,
	"cdma - ehrpd":       RadioAccessTechnologyEHRPD,
	"iwlan":              RadioAccessTechnologyIWLAN,
	"nr":                 RadioAccessTechnologyNR,
}

// ParseRadioAccessTechnology accepts both the names produced by String and the
// Android network type names. Anything else is Unknown.
func ParseRadioAccessTechnology(name string) RadioAccessTechnology {
	name = strings.ToLower(strings.TrimSpace(name))
	if r, ok := networkTypeNames[name]; ok {
		return r
	}
	for r, n := range radioAccessTechnologyNames {
		if strings.ToLower(n) == name {
			return r
		}
	}
	return RadioAccessTechnologyUnknown
}
