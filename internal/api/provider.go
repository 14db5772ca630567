package api

import "strings"

// Provider identifies one branded deployment of the budgeting server.
// The wire protocol is identical across providers; only user-facing
// naming differs, so a single client serves all of them.
type Provider struct {
	Name        string
	DisplayName string
}

// Known providers.
var (
	BucketBudget = Provider{Name: "bucketbudget", DisplayName: "Bucket Budget"}
	Oasis        = Provider{Name: "oasis", DisplayName: "Oasis"}
)

var providers = map[string]Provider{
	BucketBudget.Name: BucketBudget,
	Oasis.Name:        Oasis,
}

// ProviderByName looks up a known provider by its machine name.
func ProviderByName(name string) (Provider, bool) {
	p, ok := providers[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// ProviderNames returns the machine names of all known providers.
func ProviderNames() []string {
	return []string{BucketBudget.Name, Oasis.Name}
}

// Connection carries everything a single call needs to reach a server.
// Callers pass it explicitly; the client holds no ambient state.
type Connection struct {
	ServerURL string
	Token     string
	Provider  Provider
}
