package metrics

import (
	"testing"
	"time"

	"market/config"
	domainerrors "market/internal/domain/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newEnabledConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Metrics.Enabled = true

	return cfg
}

func TestOperationMetrics_ObserveOperation(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewOperationMetrics(newEnabledConfig(), registry).(*prometheusMetrics)

	m.ObserveOperation("create", nil, 10*time.Millisecond)
	m.ObserveOperation("create", nil, 20*time.Millisecond)
	m.ObserveOperation("update", domainerrors.ErrAdvertisementOwnershipViolation, time.Millisecond)
	m.ObserveOperation("update", assert.AnError, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.operations.WithLabelValues("create", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("update", string(domainerrors.KindUnauthorized))))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("update", string(domainerrors.KindServerError))))
}

func TestOperationMetrics_Attachments(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewOperationMetrics(newEnabledConfig(), registry).(*prometheusMetrics)

	m.ObserveAttachments("stored", 2)
	m.ObserveAttachments("stored", 0)
	m.ObserveAttachments("removed", 1)
	m.ObserveCleanupFailure()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.attachments.WithLabelValues("stored")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.attachments.WithLabelValues("removed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cleanupFailures))
}

func TestNewOperationMetrics_Disabled(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewOperationMetrics(&config.Config{}, registry)

	assert.IsType(t, noopMetrics{}, m)

	families, err := registry.Gather()
	assert.NoError(t, err)
	assert.Empty(t, families)
}
