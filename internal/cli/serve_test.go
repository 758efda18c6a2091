package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-app-info/internal/config"
)

func TestServe_NoAddress(t *testing.T) {
	_, _, err := run(t, context.Background(), infoAt("2.3.1"), "serve")

	assert.ErrorIs(t, err, config.ErrInvalidServerConfigs)
}

func TestServe_StopsWithContext(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:0")
	t.Setenv("SERVER_GRPC_ADDRESS", "127.0.0.1:0")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, logs, err := run(t, ctx, infoAt("2.3.1"), "serve")

	assert.NoError(t, err)
	assert.Contains(t, logs, "creating new handlers")
}
