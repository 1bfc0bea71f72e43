package types

// Environment selects the upstream deployment the library talks to.
type Environment string

const (
	// Mainnet is the production environment.
	Mainnet Environment = "mainnet"
	// Testnet is the test/staging environment. Quote caching is disabled and
	// external redirect URLs are not produced in this environment.
	Testnet Environment = "testnet"
)
