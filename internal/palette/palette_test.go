package palette

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignKnownLabels(t *testing.T) {
	tests := []struct {
		label string
		hue   int
		want  Color
	}{
		{"", 0, Color{R: 217, G: 38, B: 38, A: 0.5}},
		{"a", 97, Color{R: 107, G: 217, B: 38, A: 0.5}},
		{"accuracy_parity", 5, Color{R: 217, G: 53, B: 38, A: 0.5}},
		{"true_positive_rate_parity", 247, Color{R: 59, G: 38, B: 217, A: 0.5}},
		{"positive_predictive_value_parity", 227, Color{R: 38, G: 77, B: 217, A: 0.5}},
		{"DeepMatcher", 222, Color{R: 38, G: 92, B: 217, A: 0.5}},
		{"é", 233, Color{R: 38, G: 59, B: 217, A: 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.hue, Hue(tt.label))
			assert.Equal(t, tt.want, Assign(tt.label, 0.5))
		})
	}
}

func TestHashWrapsAt32Bits(t *testing.T) {
	assert.Equal(t, int32(0), Hash(""))
	assert.Equal(t, int32(-646970765), Hash("accuracy_parity"))
	assert.Equal(t, int32(-2096002667), Hash("positive_predictive_value_parity"))
}

func TestHashUsesUTF16CodeUnits(t *testing.T) {
	// U+1F600 is the surrogate pair D83D DE00.
	want := int32(0xD83D)*31 + int32(0xDE00)
	assert.Equal(t, want, Hash("\U0001F600"))
}

func TestHueMinInt32(t *testing.T) {
	assert.Equal(t, 128, hueOf(math.MinInt32))
	assert.Equal(t, 127, hueOf(math.MaxInt32))
	assert.Equal(t, 5, hueOf(-646970765))
}

func TestAssignDeterministic(t *testing.T) {
	for _, label := range []string{"", "x", "false_positive_rate_parity", "Ditto"} {
		assert.Equal(t, Assign(label, 0.3), Assign(label, 0.3))
	}
}

func TestAssignAlphaPassThrough(t *testing.T) {
	assert.Equal(t, 1.7, Assign("a", 1.7).A)
	assert.Equal(t, -0.2, Assign("a", -0.2).A)
	assert.True(t, math.IsNaN(Assign("a", math.NaN()).A))
	assert.True(t, math.IsInf(Assign("a", math.Inf(1)).A, 1))
}

func TestAssignPairSharesHue(t *testing.T) {
	p := AssignPair("MCAN", 0.1, 0.9)
	assert.Equal(t, p.Fill.R, p.Stroke.R)
	assert.Equal(t, p.Fill.G, p.Stroke.G)
	assert.Equal(t, p.Fill.B, p.Stroke.B)
	assert.Equal(t, 0.1, p.Fill.A)
	assert.Equal(t, 0.9, p.Stroke.A)
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "rgba(217, 38, 38, 0.5)", Assign("", 0.5).String())
	assert.Equal(t, "rgba(107, 217, 38, 1)", Assign("a", 1).String())
	assert.Equal(t, "rgba(107, 217, 38, 0.25)", Assign("a", 0.25).String())
}

func TestHSLSectors(t *testing.T) {
	tests := []struct {
		hue     int
		r, g, b uint8
	}{
		{0, 217, 38, 38},
		{30, 217, 127, 38},
		{120, 38, 217, 38},
		{210, 38, 127, 217},
		{240, 38, 38, 217},
		{270, 127, 38, 217},
		{300, 217, 38, 217},
		{359, 217, 38, 41},
	}
	for _, tt := range tests {
		r, g, b := rgb(tt.hue)
		assert.Equal(t, []uint8{tt.r, tt.g, tt.b}, []uint8{r, g, b}, "hue %v", tt.hue)
	}
}

func TestAssignConcurrent(t *testing.T) {
	want := Assign("concurrent", 0.4)
	var wg sync.WaitGroup
	results := make([]Color, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Assign("concurrent", 0.4)
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		require.Equal(t, want, got)
	}
}
