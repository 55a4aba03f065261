package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/embed-batch-proxy/v1/config"
)

func setEnv(t *testing.T, kv map[string]string) {
	t.Helper()
	for k, v := range kv {
		t.Setenv(k, v)
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	setEnv(t, map[string]string{
		"INFERENCE_SERVICE_HOST": "inference.internal",
		"INFERENCE_SERVICE_PORT": "8081",
	})

	cfg, err := config.NewConfig()
	require.NoError(t, err)

	assert.Equal(t, config.DefaultMaxBatchSize, cfg.MaxBatchSize)
	assert.Equal(t, config.DefaultMaxWaitTime, cfg.MaxWaitTime)
	assert.Equal(t, "http://inference.internal:8081", cfg.UpstreamURL)
	assert.Equal(t, config.DefaultAppPort, cfg.AppPort)
	assert.Equal(t, config.DefaultOversizePolicy, cfg.OversizePolicy)
	assert.Equal(t, cfg.MaxBatchSize*config.DefaultSubmissionQueueFactor, cfg.SubmissionQueueCapacity())
}

func TestNewConfig_Overrides(t *testing.T) {
	setEnv(t, map[string]string{
		"INFERENCE_SERVICE_HOST": "localhost",
		"INFERENCE_SERVICE_PORT": "9000",
		"MAX_BATCH_SIZE":         "16",
		"MAX_WAIT_TIME":          "250",
		"OVERSIZE_POLICY":        "reject",
	})

	cfg, err := config.NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.MaxBatchSize)
	assert.Equal(t, 250*time.Millisecond, cfg.MaxWaitTime)
	assert.Equal(t, config.OversizeReject, cfg.OversizePolicy)
}

func TestNewConfig_MissingHost(t *testing.T) {
	setEnv(t, map[string]string{
		"INFERENCE_SERVICE_PORT": "8081",
	})

	_, err := config.NewConfig()
	assert.Error(t, err)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{
			name: "zero batch size",
			cfg: config.Config{
				InferenceServiceHost: "h", InferenceServicePort: 1, AppPort: 1,
				MaxBatchSize: 0, SubmissionQueueFactor: 1, OversizePolicy: config.OversizeAdmitAlone,
			},
		},
		{
			name: "negative wait time",
			cfg: config.Config{
				InferenceServiceHost: "h", InferenceServicePort: 1, AppPort: 1,
				MaxBatchSize: 1, MaxWaitTime: -1, SubmissionQueueFactor: 1, OversizePolicy: config.OversizeAdmitAlone,
			},
		},
		{
			name: "unknown oversize policy",
			cfg: config.Config{
				InferenceServiceHost: "h", InferenceServicePort: 1, AppPort: 1,
				MaxBatchSize: 1, SubmissionQueueFactor: 1, OversizePolicy: "bogus",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			assert.Error(t, err)
		})
	}
}
