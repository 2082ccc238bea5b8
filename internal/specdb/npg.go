// Package specdb holds the immutable, process-wide static tables the
// validator cross-references: Network Participation Groups, J-messages,
// roles, platform types, and the small enum tables. Everything here is a
// package-level literal built once at init, no dynamic registration.
package specdb

// NPG describes one Network Participation Group.
type NPG struct {
	ID            string
	Name          string
	Number        int
	Description   string
	ValidMessages []string
	SpecRef       string
}

var npgTable = []NPG{
	{ID: "NPG_A", Name: "PPLI A", Number: 1, Description: "Precise Participant Location and Identification, net A", ValidMessages: []string{"J2/2", "J2/3", "J2/5"}, SpecRef: "MIL-STD-6016 §3.2"},
	{ID: "NPG_B", Name: "PPLI B", Number: 2, Description: "Precise Participant Location and Identification, net B", ValidMessages: []string{"J2/2", "J2/3", "J2/5"}, SpecRef: "MIL-STD-6016 §3.2"},
	{ID: "NPG_2", Name: "Surveillance", Number: 2, Description: "Air, surface, subsurface, and land surveillance track reports", ValidMessages: []string{"J3/2", "J3/3", "J3/5"}, SpecRef: "MIL-STD-6016 §3.3"},
	{ID: "NPG_3", Name: "Mission Management/Air Control", Number: 3, Description: "Mission assignment and air control orders", ValidMessages: []string{"J3/0", "J3/1"}, SpecRef: "MIL-STD-6016 §3.4"},
	{ID: "NPG_4", Name: "EW/ESM", Number: 4, Description: "Electronic warfare and ESM reporting", ValidMessages: []string{"J3/6"}, SpecRef: "MIL-STD-6016 §3.5"},
	{ID: "NPG_5", Name: "Fighter-to-Fighter", Number: 5, Description: "Fighter-to-fighter data exchange", ValidMessages: []string{"J3/7"}, SpecRef: "MIL-STD-6016 §3.6"},
	{ID: "NPG_6", Name: "Strike Warfare", Number: 6, Description: "Strike weapon coordination", ValidMessages: []string{"J3/2", "J12/6"}, SpecRef: "MIL-STD-6016 §3.7"},
	{ID: "NPG_7", Name: "Air Control", Number: 7, Description: "Air intercept control orders", ValidMessages: []string{"J3/2", "J3/3"}, SpecRef: "MIL-STD-6016 §3.8"},
	{ID: "NPG_8", Name: "Electronic Warfare Coordination", Number: 8, Description: "EW coordination", ValidMessages: []string{"J3/6"}, SpecRef: "MIL-STD-6016 §3.9"},
	{ID: "NPG_9", Name: "Weapons Coordination", Number: 9, Description: "Weapon engagement coordination", ValidMessages: []string{"J3/2", "J7/0"}, SpecRef: "MIL-STD-6016 §3.10"},
	{ID: "NPG_10", Name: "Netted Weapon Status", Number: 10, Description: "Weapon status reporting", ValidMessages: []string{"J7/1"}, SpecRef: "MIL-STD-6016 §3.11"},
	{ID: "NPG_11", Name: "Information Management", Number: 11, Description: "Net information management", ValidMessages: []string{"J0/0", "J0/1", "J0/2"}, SpecRef: "MIL-STD-6016 §3.12"},
	{ID: "NPG_12", Name: "Voice A", Number: 12, Description: "Voice group A", ValidMessages: nil, SpecRef: "MIL-STD-6016 §3.13"},
	{ID: "NPG_13", Name: "Voice B", Number: 13, Description: "Voice group B", ValidMessages: nil, SpecRef: "MIL-STD-6016 §3.13"},
	{ID: "NPG_14", Name: "Network Management", Number: 14, Description: "Network time/entry/management", ValidMessages: []string{"J0/3", "J0/5", "J0/7"}, SpecRef: "MIL-STD-6016 §3.14"},
	{ID: "NPG_15", Name: "Relay Net", Number: 15, Description: "Net-to-net relay traffic", ValidMessages: []string{"J28/1", "J28/2"}, SpecRef: "MIL-STD-6016 §3.15"},
	{ID: "NPG_16", Name: "Information Exchange", Number: 16, Description: "Free text and imagery", ValidMessages: []string{"J28/1", "J28/4"}, SpecRef: "MIL-STD-6016 §3.16"},
	{ID: "NPG_17", Name: "Secondary Imagery", Number: 17, Description: "Secondary imagery transfer", ValidMessages: []string{"J28/4"}, SpecRef: "MIL-STD-6016 §3.17"},
	{ID: "NPG_18", Name: "Mission Management/ASW", Number: 18, Description: "Anti-submarine warfare coordination", ValidMessages: []string{"J5/0", "J5/1"}, SpecRef: "MIL-STD-6016 §3.18"},
	{ID: "NPG_19", Name: "ASW Continuous", Number: 19, Description: "ASW continuous track reporting", ValidMessages: []string{"J5/2", "J5/4"}, SpecRef: "MIL-STD-6016 §3.19"},
	{ID: "NPG_20", Name: "Targeting", Number: 20, Description: "Targeting orders and reports", ValidMessages: []string{"J9/0", "J9/1"}, SpecRef: "MIL-STD-6016 §3.20"},
	{ID: "NPG_21", Name: "Space", Number: 21, Description: "Space surveillance track reporting", ValidMessages: []string{"J3/2"}, SpecRef: "MIL-STD-6016 §3.21"},
	{ID: "NPG_22", Name: "Miscellaneous/Amplification", Number: 22, Description: "Amplification and miscellaneous data", ValidMessages: []string{"J10/2", "J10/6"}, SpecRef: "MIL-STD-6016 §3.22"},
	{ID: "NPG_23", Name: "Net Control Initial Entry", Number: 23, Description: "Initial net entry control", ValidMessages: []string{"J0/0"}, SpecRef: "MIL-STD-6016 §3.23"},
	{ID: "NPG_24", Name: "PPLI Secure", Number: 24, Description: "PPLI on a secure net", ValidMessages: []string{"J2/2"}, SpecRef: "MIL-STD-6016 §3.24"},
	{ID: "NPG_25", Name: "Land Point of Interest", Number: 25, Description: "Land point-of-interest reporting", ValidMessages: []string{"J3/2"}, SpecRef: "MIL-STD-6016 §3.25"},
	{ID: "NPG_26", Name: "Air Control Secondary", Number: 26, Description: "Secondary air control orders", ValidMessages: []string{"J3/3"}, SpecRef: "MIL-STD-6016 §3.26"},
	{ID: "NPG_27", Name: "Weapon Coordination Secondary", Number: 27, Description: "Secondary weapon coordination", ValidMessages: []string{"J7/0"}, SpecRef: "MIL-STD-6016 §3.27"},
}

var npgByID map[string]NPG

func init() {
	npgByID = make(map[string]NPG, len(npgTable))
	for _, n := range npgTable {
		npgByID[n.ID] = n
	}
}

// NPGByID returns the NPG record for id, if declared.
func NPGByID(id string) (NPG, bool) {
	n, ok := npgByID[id]
	return n, ok
}

// IsNPG reports whether id is a declared NPG id, in O(1).
func IsNPG(id string) bool {
	_, ok := npgByID[id]
	return ok
}
