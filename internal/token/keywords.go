package token

// keywords is the reserved-word table from the surface grammar. Lookup is
// O(1); there is no dynamic registration.
var keywords = map[string]struct{}{
	"network":         {},
	"terminal":        {},
	"net":             {},
	"subnetwork":      {},
	"member":          {},
	"messages":        {},
	"filters":         {},
	"inbound":         {},
	"outbound":        {},
	"accept":          {},
	"drop":            {},
	"where":           {},
	"link":            {},
	"classification":  {},
	"track_number":    {},
	"platform_type":   {},
	"role":            {},
	"subscribes":      {},
	"transmits":       {},
	"net_number":      {},
	"npg":             {},
	"stacked":         {},
	"stacking_level":  {},
	"tsdf":            {},
	"participants":    {},
	"enabled":         {},
	"operating_mode":  {},
	"data_rate":       {},
	"unit_id":         {},
	"forwarding":      {},
	"quality":         {},
	"age":             {},
}

// IsKeyword reports whether ident is one of the reserved words.
func IsKeyword(ident string) bool {
	_, ok := keywords[ident]
	return ok
}
