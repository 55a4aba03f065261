// Command proxy runs the auto-batching embedding proxy: it aggregates
// concurrent /embed requests into bounded upstream batches and forwards
// them to the inference service configured by INFERENCE_SERVICE_HOST and
// INFERENCE_SERVICE_PORT.
package main

import (
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/embed-batch-proxy/v1/app"
)

func main() {
	fx.New(app.Module).Run()
}
