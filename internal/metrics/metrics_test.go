package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheus(t *testing.T) {
	// Use a fresh registry for each test to avoid duplicate registration
	reg := prometheus.NewRegistry()
	m, err := NewPrometheus(reg, "gallery")
	require.NoError(t, err)

	m.ValidationRejected("city")
	m.ValidationRejected("city")
	m.ExhibitionOp(OpAdd, OutcomeAdded)
	m.ExhibitionOp(OpRemove, OutcomeNotFound)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.rejections.WithLabelValues("city")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.rejections.WithLabelValues("area_sq_m")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.exhibitionOp.WithLabelValues(OpAdd, OutcomeAdded)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.exhibitionOp.WithLabelValues(OpRemove, OutcomeNotFound)))

	mfs, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(mfs))
	for _, mf := range mfs {
		names = append(names, mf.GetName())
	}
	assert.ElementsMatch(t, []string{
		"gallery_validation_rejections_total",
		"gallery_exhibition_operations_total",
	}, names)
}

func TestPrometheus_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheus(reg, "gallery")
	require.NoError(t, err)

	_, err = NewPrometheus(reg, "gallery")
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	var r Recorder = Nop{}
	assert.NotPanics(t, func() {
		r.ValidationRejected("city")
		r.ExhibitionOp(OpList, OutcomeListed)
	})
}
