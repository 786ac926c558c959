package domain

// Enrichment is what the classification oracle knows about an IP and
// user-agent pair. The zero value is the empty result used when the oracle
// cannot be reached.
type Enrichment struct {
	Geo      Geo
	Device   Device
	IsBot    bool
	Security Security
}

// IsEmpty reports whether the oracle contributed nothing.
func (e Enrichment) IsEmpty() bool {
	return e.Geo == (Geo{}) && e.Device == (Device{}) && !e.IsBot && e.Security == (Security{})
}
