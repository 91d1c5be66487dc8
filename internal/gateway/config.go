package gateway

// Gateway names used in call errors and journal records.
const (
	GatewayPrimary = "primary"
	GatewaySignals = "signals"
)

// Config holds the connection parameters for one remote gateway.
type Config struct {
	Endpoint  string
	TimeoutMs int
}

// DefaultPrimaryConfig returns the primary-store defaults for local
// development.
func DefaultPrimaryConfig() Config {
	return Config{
		Endpoint:  "http://localhost:8090",
		TimeoutMs: 10000,
	}
}

// DefaultSignalConfig returns the signal-service defaults. The signal service
// is a separate network boundary from the primary store; the shared bearer
// credential is the only thing the two have in common.
func DefaultSignalConfig() Config {
	return Config{
		Endpoint:  "http://localhost:8091",
		TimeoutMs: 10000,
	}
}
