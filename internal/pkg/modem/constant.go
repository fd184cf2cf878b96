package modem

import (
	"strings"

	"github.com/damonto/cellinfo/internal/pkg/carrier"
)

type ModemState int32

const (
	ModemStateFailed        ModemState = iota - 1 // The modem is unusable.
	ModemStateUnknown                             // State unknown or not reportable.
	ModemStateInitializing                        // The modem is currently being initialized.
	ModemStateLocked                              // The modem needs to be unlocked.
	ModemStateDisabled                            // The modem is not enabled and is powered down.
	ModemStateDisabling                           // The modem is currently transitioning to the @ModemStateDisabled state.
	ModemStateEnabling                            // The modem is currently transitioning to the @ModemStateEnabled state.
	ModemStateEnabled                             // The modem is enabled and powered on but not registered with a network provider and not available for data connections.
	ModemStateSearching                           // The modem is searching for a network provider to register with.
	ModemStateRegistered                          // The modem is registered with a network provider, and data connections and messaging may be available for use.
	ModemStateDisconnecting                       // The modem is disconnecting and deactivating the last active packet data bearer.
	ModemStateConnecting                          // The modem is activating and connecting the first packet data bearer.
	ModemStateConnected                           // One or more packet data bearers is active and connected.
)

var modemStateNames = []string{"failed", "unknown", "initializing", "locked", "disabled", "disabling", "enabling", "enabled", "searching", "registered", "disconnecting", "connecting", "connected"}

func (s ModemState) String() string {
	if i := int(s) + 1; i >= 0 && i < len(modemStateNames) {
		return modemStateNames[i]
	}
	return "unknown"
}

type Modem3gppRegistrationState uint32

const (
	Modem3gppRegistrationStateIdle                    Modem3gppRegistrationState = iota // Not registered, not searching for new operator to register.
	Modem3gppRegistrationStateHome                                                      // Registered on home network.
	Modem3gppRegistrationStateSearching                                                 // Not registered, searching for new operator to register with.
	Modem3gppRegistrationStateDenied                                                    // Registration denied.
	Modem3gppRegistrationStateUnknown                                                   // Unknown registration status.
	Modem3gppRegistrationStateRoaming                                                   // Registered on a roaming network.
	Modem3gppRegistrationStateHomeSmsOnly                                               // Registered for "SMS only", home network (applicable only when on LTE).
	Modem3gppRegistrationStateRoamingSmsOnly                                            // Registered for "SMS only", roaming network (applicable only when on LTE).
	Modem3gppRegistrationStateEmergencyOnly                                             // Emergency services only.
	Modem3gppRegistrationStateHomeCsfbNotPreferred                                      // Registered for "CSFB not preferred", home network (applicable only when on LTE).
	Modem3gppRegistrationStateRoamingCsfbNotPreferred                                   // Registered for "CSFB not preferred", roaming network (applicable only when on LTE).
)

var registrationStateNames = []string{"idle", "home", "searching", "denied", "unknown", "roaming", "home-sms-only", "roaming-sms-only", "emergency-only", "home-csfb-not-preferred", "roaming-csfb-not-preferred"}

func (s Modem3gppRegistrationState) String() string {
	if int(s) < len(registrationStateNames) {
		return registrationStateNames[s]
	}
	return "unknown"
}

func (s Modem3gppRegistrationState) Roaming() bool {
	switch s {
	case Modem3gppRegistrationStateRoaming, Modem3gppRegistrationStateRoamingSmsOnly, Modem3gppRegistrationStateRoamingCsfbNotPreferred:
		return true
	}
	return false
}

// AccessTechnology is the MM_MODEM_ACCESS_TECHNOLOGY bitmask.
type AccessTechnology uint32

const (
	AccessTechnologyUnknown     AccessTechnology = 0
	AccessTechnologyPots        AccessTechnology = 1 << (iota - 1) // Analog wireline telephone.
	AccessTechnologyGsm                                            // GSM.
	AccessTechnologyGsmCompact                                     // Compact GSM.
	AccessTechnologyGprs                                           // GPRS.
	AccessTechnologyEdge                                           // EDGE (ETSI 27.007: "GSM w/EGPRS").
	AccessTechnologyUmts                                           // UMTS (ETSI 27.007: "UTRAN").
	AccessTechnologyHsdpa                                          // HSDPA (ETSI 27.007: "UTRAN w/HSDPA").
	AccessTechnologyHsupa                                          // HSUPA (ETSI 27.007: "UTRAN w/HSUPA").
	AccessTechnologyHspa                                           // HSPA (ETSI 27.007: "UTRAN w/HSDPA and HSUPA").
	AccessTechnologyHspaPlus                                       // HSPA+ (ETSI 27.007: "UTRAN w/HSPA+").
	AccessTechnology1xrtt                                          // CDMA2000 1xRTT.
	AccessTechnologyEvdo0                                          // CDMA2000 EVDO revision 0.
	AccessTechnologyEvdoa                                          // CDMA2000 EVDO revision A.
	AccessTechnologyEvdob                                          // CDMA2000 EVDO revision B.
	AccessTechnologyLte                                            // LTE (ETSI 27.007: "E-UTRAN").
	AccessTechnology5gnr                                           // 5GNR (ETSI 27.007: "NG-RAN").
	AccessTechnologyLteCatM                                        // Cat-M (ETSI 23.401: LTE Category M1/M2).
	AccessTechnologyLteNbIot                                       // NB IoT (ETSI 23.401: LTE Category NB1/NB2).
)

// Most advanced first; a modem may report several bits at once.
var accessTechnologies = []struct {
	bits AccessTechnology
	rat  carrier.RadioAccessTechnology
}{
	{AccessTechnology5gnr, carrier.RadioAccessTechnologyNR},
	{AccessTechnologyLte | AccessTechnologyLteCatM | AccessTechnologyLteNbIot, carrier.RadioAccessTechnologyLTE},
	{AccessTechnologyHspaPlus, carrier.RadioAccessTechnologyHSPAP},
	{AccessTechnologyHspa, carrier.RadioAccessTechnologyHSPA},
	{AccessTechnologyHsupa, carrier.RadioAccessTechnologyHSUPA},
	{AccessTechnologyHsdpa, carrier.RadioAccessTechnologyHSDPA},
	{AccessTechnologyEvdob, carrier.RadioAccessTechnologyCDMAEVDORevB},
	{AccessTechnologyEvdoa, carrier.RadioAccessTechnologyCDMAEVDORevA},
	{AccessTechnologyEvdo0, carrier.RadioAccessTechnologyCDMAEVDORev0},
	{AccessTechnologyUmts, carrier.RadioAccessTechnologyUMTS},
	{AccessTechnology1xrtt, carrier.RadioAccessTechnologyCDMA},
	{AccessTechnologyEdge, carrier.RadioAccessTechnologyEDGE},
	{AccessTechnologyGprs | AccessTechnologyGsm | AccessTechnologyGsmCompact, carrier.RadioAccessTechnologyGPRS},
}

func (a AccessTechnology) RadioAccessTechnology() carrier.RadioAccessTechnology {
	for _, t := range accessTechnologies {
		if a&t.bits != 0 {
			return t.rat
		}
	}
	return carrier.RadioAccessTechnologyUnknown
}

var accessTechnologyNames = []string{"pots", "gsm", "gsm-compact", "gprs", "edge", "umts", "hsdpa", "hsupa", "hspa", "hspa+", "1xrtt", "evdo0", "evdoa", "evdob", "lte", "5gnr", "lte-cat-m", "lte-nb-iot"}

func (a AccessTechnology) String() string {
	if a == AccessTechnologyUnknown {
		return "unknown"
	}
	var names []string
	for i, name := range accessTechnologyNames {
		if a&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "unknown"
	}
	return strings.Join(names, ", ")
}
