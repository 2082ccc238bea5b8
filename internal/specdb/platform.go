package specdb

// PlatformType describes one recognized platform type id.
type PlatformType struct {
	ID          string
	Name        string
	Description string
}

var platformTable = []PlatformType{
	{ID: "FIGHTER", Name: "Fighter", Description: "Fixed-wing fighter aircraft"},
	{ID: "BOMBER", Name: "Bomber", Description: "Fixed-wing bomber aircraft"},
	{ID: "TANKER", Name: "Tanker", Description: "Aerial refueling aircraft"},
	{ID: "AEW", Name: "Airborne Early Warning", Description: "Airborne early warning and control aircraft"},
	{ID: "SURFACE_COMBATANT", Name: "Surface Combatant", Description: "Surface warfare vessel"},
	{ID: "SUBMARINE", Name: "Submarine", Description: "Submersible platform"},
	{ID: "GROUND_STATION", Name: "Ground Station", Description: "Fixed or mobile ground terminal"},
	{ID: "SATELLITE", Name: "Satellite", Description: "Space-based relay platform"},
}

var platformByID map[string]PlatformType

func init() {
	platformByID = make(map[string]PlatformType, len(platformTable))
	for _, p := range platformTable {
		platformByID[p.ID] = p
	}
}

// PlatformTypeByID returns a declared platform type.
func PlatformTypeByID(id string) (PlatformType, bool) {
	p, ok := platformByID[id]
	return p, ok
}

// IsPlatformType reports whether id is a declared platform type id, in O(1).
func IsPlatformType(id string) bool {
	_, ok := platformByID[id]
	return ok
}
