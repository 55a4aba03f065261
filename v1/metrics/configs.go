package metrics

// Config configures the Prometheus metrics server.
type Config struct {
	// Address is the bind address for the /metrics HTTP endpoint, e.g. ":9090".
	Address string

	// ServiceName is attached to every metric as a constant "service" label.
	ServiceName string

	// EnableDefaultCollectors registers Go runtime and process collectors.
	EnableDefaultCollectors bool
}
