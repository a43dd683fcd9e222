package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery/internal/config"
	"gallery/internal/model"
)

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		ServiceName: "gallery-test",
		Timezone:    "UTC",
		Log:         config.LogConfig{Level: "info", Format: "json"},
		Tracing:     config.TracingConfig{Disabled: true},
		Metrics:     config.MetricsConfig{Namespace: "gallery"},
	}
}

func TestSetup(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	reg := prometheus.NewRegistry()

	a, err := Setup(ctx, testConfig(), &buf, reg)
	require.NoError(t, err)
	defer func() { assert.NoError(t, a.Shutdown(ctx)) }()

	g, err := a.OpenGallery(ctx, "Heaven", "Sofia", 1000, true)
	require.NoError(t, err)
	assert.Equal(t, `Exhibition "Heaven" added for the year 2020.`, g.AddExhibition(ctx, "Heaven", 2020))

	_, err = a.OpenGallery(ctx, "Heaven", " ", 1000, true)
	assert.ErrorIs(t, err, model.ErrInvalidCity)

	expected := `
# HELP gallery_validation_rejections_total Total number of rejected gallery property assignments.
# TYPE gallery_validation_rejections_total counter
gallery_validation_rejections_total{field="city"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, bytes.NewBufferString(expected), "gallery_validation_rejections_total"))

	assert.Contains(t, buf.String(), `"service":"gallery-test"`)
	assert.Contains(t, buf.String(), `"msg":"exhibition_add"`)
}

func TestSetup_DuplicateMetrics(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()

	_, err := Setup(ctx, testConfig(), &bytes.Buffer{}, reg)
	require.NoError(t, err)

	_, err = Setup(ctx, testConfig(), &bytes.Buffer{}, reg)
	assert.ErrorContains(t, err, "register metrics")
}
