package modem

const Modem3GPPInterface = ModemInterface + ".Modem3gpp"

func (m *Modem) IMEI() (string, error) {
	return property[string](m.dbusObject, Modem3GPPInterface+".Imei")
}

func (m *Modem) RegistrationState() (Modem3gppRegistrationState, error) {
	state, err := property[uint32](m.dbusObject, Modem3GPPInterface+".RegistrationState")
	return Modem3gppRegistrationState(state), err
}

// OperatorCode is the MCC+MNC of the network the modem is registered on.
func (m *Modem) OperatorCode() (string, error) {
	return property[string](m.dbusObject, Modem3GPPInterface+".OperatorCode")
}

func (m *Modem) OperatorName() (string, error) {
	return property[string](m.dbusObject, Modem3GPPInterface+".OperatorName")
}
