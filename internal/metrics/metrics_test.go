package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveFrontier(t *testing.T) {
	points := testutil.ToFloat64(PointsClassified)
	frontier := testutil.ToFloat64(FrontierPoints)

	ObserveFrontier([]bool{true, false, true})
	ObserveFrontier(nil)

	assert.Equal(t, points+3, testutil.ToFloat64(PointsClassified))
	assert.Equal(t, frontier+2, testutil.ToFloat64(FrontierPoints))
}

func TestChartsRenderedByKind(t *testing.T) {
	before := testutil.ToFloat64(ChartsRendered.WithLabelValues("scatter"))
	ChartsRendered.WithLabelValues("scatter").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(ChartsRendered.WithLabelValues("scatter")))
}
