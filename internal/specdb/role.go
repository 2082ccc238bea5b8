package specdb

// Role describes a terminal or member role, scoped to one link family.
type Role struct {
	ID          string
	Name        string
	Description string
	SpecRef     string
}

var link16Roles = []Role{
	{ID: "NetControlStation", Name: "Net Control Station", Description: "The designated controller of a Link-16 network", SpecRef: "MIL-STD-6016 §2.1"},
	{ID: "Participant", Name: "Participant", Description: "An ordinary net participant", SpecRef: "MIL-STD-6016 §2.1"},
	{ID: "ForwardTell", Name: "Forward Tell", Description: "Forwards track data to another net", SpecRef: "MIL-STD-6016 §2.1"},
	{ID: "Relay", Name: "Relay", Description: "Relays traffic between nets", SpecRef: "MIL-STD-6016 §2.1"},
}

var link22Roles = []Role{
	{ID: "Controller", Name: "Controller", Description: "Coordinates a Link-22 subnetwork", SpecRef: "STANAG 5522 §2.1"},
	{ID: "Participant", Name: "Participant", Description: "An ordinary subnetwork member", SpecRef: "STANAG 5522 §2.1"},
}

var link16RoleByID, link22RoleByID map[string]Role

func init() {
	link16RoleByID = make(map[string]Role, len(link16Roles))
	for _, r := range link16Roles {
		link16RoleByID[r.ID] = r
	}
	link22RoleByID = make(map[string]Role, len(link22Roles))
	for _, r := range link22Roles {
		link22RoleByID[r.ID] = r
	}
}

// Link16RoleByID returns a declared Link-16 role.
func Link16RoleByID(id string) (Role, bool) {
	r, ok := link16RoleByID[id]
	return r, ok
}

// IsLink16Role reports whether id is a declared Link-16 role, in O(1).
func IsLink16Role(id string) bool {
	_, ok := link16RoleByID[id]
	return ok
}

// Link22RoleByID returns a declared Link-22 role.
func Link22RoleByID(id string) (Role, bool) {
	r, ok := link22RoleByID[id]
	return r, ok
}

// IsLink22Role reports whether id is a declared Link-22 role, in O(1).
func IsLink22Role(id string) bool {
	_, ok := link22RoleByID[id]
	return ok
}
