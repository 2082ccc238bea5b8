package specdb

// JMessage describes one Link-16 message format (`J<major>/<minor>`).
type JMessage struct {
	ID             string
	Name           string
	FunctionalArea string
	Description    string
	Fields         []string
	ValidNPGs      []string
	SpecRef        string
}

var jmessageTable = []JMessage{
	{ID: "J0/0", Name: "Initial Entry", FunctionalArea: "Network Management", Description: "Net entry request", Fields: []string{"track_number", "entry_type"}, ValidNPGs: []string{"NPG_11", "NPG_23"}, SpecRef: "MIL-STD-6016 §J.0"},
	{ID: "J2/2", Name: "Air PPLI", FunctionalArea: "PPLI", Description: "Air platform position, location, and identification", Fields: []string{"track_number", "lat", "lon", "altitude"}, ValidNPGs: []string{"NPG_A", "NPG_B", "NPG_24"}, SpecRef: "MIL-STD-6016 §J.2.2"},
	{ID: "J2/3", Name: "Surface PPLI", FunctionalArea: "PPLI", Description: "Surface platform position, location, and identification", Fields: []string{"track_number", "lat", "lon"}, ValidNPGs: []string{"NPG_A", "NPG_B"}, SpecRef: "MIL-STD-6016 §J.2.3"},
	{ID: "J2/5", Name: "Land PPLI", FunctionalArea: "PPLI", Description: "Land platform position, location, and identification", Fields: []string{"track_number", "lat", "lon"}, ValidNPGs: []string{"NPG_A", "NPG_B"}, SpecRef: "MIL-STD-6016 §J.2.5"},
	{ID: "J3/0", Name: "Air Track", FunctionalArea: "Surveillance", Description: "Airborne track data", Fields: []string{"track_number", "quality", "age"}, ValidNPGs: []string{"NPG_3"}, SpecRef: "MIL-STD-6016 §J.3.0"},
	{ID: "J3/1", Name: "Surface Track", FunctionalArea: "Surveillance", Description: "Surface track data", Fields: []string{"track_number", "quality"}, ValidNPGs: []string{"NPG_3"}, SpecRef: "MIL-STD-6016 §J.3.1"},
	{ID: "J3/2", Name: "Surface/Land Track", FunctionalArea: "Surveillance", Description: "Surface or land track report", Fields: []string{"track_number", "quality", "classification"}, ValidNPGs: []string{"NPG_7", "NPG_9"}, SpecRef: "MIL-STD-6016 §J.3.2"},
	{ID: "J3/3", Name: "Electronic Warfare Track", FunctionalArea: "Surveillance", Description: "EW-derived track report", Fields: []string{"track_number"}, ValidNPGs: []string{"NPG_2", "NPG_7", "NPG_26"}, SpecRef: "MIL-STD-6016 §J.3.3"},
	{ID: "J3/5", Name: "Space Track", FunctionalArea: "Surveillance", Description: "Space track report", Fields: []string{"track_number"}, ValidNPGs: []string{"NPG_2", "NPG_21"}, SpecRef: "MIL-STD-6016 §J.3.5"},
	{ID: "J3/6", Name: "EW Product Report", FunctionalArea: "EW/ESM", Description: "Electronic warfare product report", Fields: []string{"track_number", "emitter_type"}, ValidNPGs: []string{"NPG_4", "NPG_8"}, SpecRef: "MIL-STD-6016 §J.3.6"},
	{ID: "J3/7", Name: "Fighter Engagement Status", FunctionalArea: "Fighter-to-Fighter", Description: "Fighter-to-fighter engagement status", Fields: []string{"track_number"}, ValidNPGs: []string{"NPG_5"}, SpecRef: "MIL-STD-6016 §J.3.7"},
	{ID: "J5/0", Name: "ASW Mission Order", FunctionalArea: "ASW", Description: "ASW mission assignment", Fields: []string{"mission_id"}, ValidNPGs: []string{"NPG_18"}, SpecRef: "MIL-STD-6016 §J.5.0"},
	{ID: "J5/1", Name: "ASW Contact Report", FunctionalArea: "ASW", Description: "ASW contact report", Fields: []string{"track_number"}, ValidNPGs: []string{"NPG_18"}, SpecRef: "MIL-STD-6016 §J.5.1"},
	{ID: "J5/2", Name: "ASW Continuous Track", FunctionalArea: "ASW", Description: "Continuous ASW track", Fields: []string{"track_number"}, ValidNPGs: []string{"NPG_19"}, SpecRef: "MIL-STD-6016 §J.5.2"},
	{ID: "J5/4", Name: "ASW Attack Report", FunctionalArea: "ASW", Description: "ASW attack report", Fields: []string{"track_number"}, ValidNPGs: []string{"NPG_19"}, SpecRef: "MIL-STD-6016 §J.5.4"},
	{ID: "J7/0", Name: "Engagement Order", FunctionalArea: "Weapons Coordination", Description: "Weapon engagement order", Fields: []string{"track_number", "weapon_id"}, ValidNPGs: []string{"NPG_9", "NPG_27"}, SpecRef: "MIL-STD-6016 §J.7.0"},
	{ID: "J7/1", Name: "Engagement Status", FunctionalArea: "Weapons Coordination", Description: "Weapon engagement status", Fields: []string{"track_number", "weapon_id"}, ValidNPGs: []string{"NPG_10"}, SpecRef: "MIL-STD-6016 §J.7.1"},
	{ID: "J9/0", Name: "Targeting Order", FunctionalArea: "Targeting", Description: "Targeting task order", Fields: []string{"track_number"}, ValidNPGs: []string{"NPG_20"}, SpecRef: "MIL-STD-6016 §J.9.0"},
	{ID: "J9/1", Name: "Targeting Report", FunctionalArea: "Targeting", Description: "Targeting result report", Fields: []string{"track_number"}, ValidNPGs: []string{"NPG_20"}, SpecRef: "MIL-STD-6016 §J.9.1"},
	{ID: "J10/2", Name: "Amplification", FunctionalArea: "Miscellaneous", Description: "Amplification data for a track", Fields: []string{"track_number"}, ValidNPGs: []string{"NPG_22"}, SpecRef: "MIL-STD-6016 §J.10.2"},
	{ID: "J10/6", Name: "Information Management", FunctionalArea: "Miscellaneous", Description: "Miscellaneous information report", Fields: []string{}, ValidNPGs: []string{"NPG_22"}, SpecRef: "MIL-STD-6016 §J.10.6"},
	{ID: "J12/6", Name: "Strike Control", FunctionalArea: "Strike Warfare", Description: "Strike control message", Fields: []string{"track_number"}, ValidNPGs: []string{"NPG_6"}, SpecRef: "MIL-STD-6016 §J.12.6"},
	{ID: "J28/1", Name: "Free Text", FunctionalArea: "Information Exchange", Description: "Free text message", Fields: []string{"text"}, ValidNPGs: []string{"NPG_15", "NPG_16"}, SpecRef: "MIL-STD-6016 §J.28.1"},
	{ID: "J28/2", Name: "Relay Status", FunctionalArea: "Information Exchange", Description: "Net-to-net relay status", Fields: []string{}, ValidNPGs: []string{"NPG_15"}, SpecRef: "MIL-STD-6016 §J.28.2"},
	{ID: "J28/4", Name: "Secondary Imagery", FunctionalArea: "Information Exchange", Description: "Secondary imagery transfer", Fields: []string{}, ValidNPGs: []string{"NPG_16", "NPG_17"}, SpecRef: "MIL-STD-6016 §J.28.4"},
}

var jmessageByID map[string]JMessage

func init() {
	jmessageByID = make(map[string]JMessage, len(jmessageTable))
	for _, m := range jmessageTable {
		jmessageByID[m.ID] = m
	}
}

// JMessageByID returns the JMessage record for id, if declared.
func JMessageByID(id string) (JMessage, bool) {
	m, ok := jmessageByID[id]
	return m, ok
}

// IsJMessage reports whether id is a declared J-message id, in O(1).
func IsJMessage(id string) bool {
	_, ok := jmessageByID[id]
	return ok
}
