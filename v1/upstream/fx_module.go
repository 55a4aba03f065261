package upstream

import (
	"github.com/Aleph-Alpha/embed-batch-proxy/v1/config"
	"go.uber.org/fx"
)

// FXModule wires the upstream client into Fx.
//
// It provides:
//   - Config              (from the shared config.Config)
//   - Client               (via NewClient, as the Client interface)
var FXModule = fx.Module(
	"upstream",

	fx.Provide(
		newConfigFromApp,
		fx.Annotate(NewClient, fx.As(new(Client))),
	),
)

func newConfigFromApp(appCfg *config.Config) Config {
	return Config{
		URL:     appCfg.UpstreamURL,
		Timeout: appCfg.UpstreamTimeout,
	}
}
