package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain streams s to completion and returns every left-channel sample
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			out = append(out, buf[j][0])
		}
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never drained")
	return nil
}

func TestOscillator_LengthAndRange(t *testing.T) {
	rate := beep.SampleRate(SampleRate)
	for _, w := range []WaveType{WaveSine, WaveSquare, WaveNoise} {
		out := drain(t, NewOscillator(440, 100*time.Millisecond, w, rate))
		assert.Len(t, out, rate.N(100*time.Millisecond))
		for _, v := range out {
			assert.LessOrEqual(t, math.Abs(v), 1.0)
		}
	}
}

func TestEnvelope_StartsAndEndsQuiet(t *testing.T) {
	rate := beep.SampleRate(SampleRate)
	d := 50 * time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, rate) // constant +1
	out := drain(t, NewEnvelope(osc, d, 10*time.Millisecond, 10*time.Millisecond, rate))

	require.Len(t, out, rate.N(d))
	assert.Equal(t, 0.0, out[0])
	assert.Equal(t, 1.0, out[len(out)/2])
	assert.Less(t, out[len(out)-1], 0.01)
}

func TestSweep_Drains(t *testing.T) {
	rate := beep.SampleRate(SampleRate)
	out := drain(t, NewSweep(100, 400, 20*time.Millisecond, rate))
	assert.Len(t, out, rate.N(20*time.Millisecond))
}

func TestCues_FiniteAndBounded(t *testing.T) {
	tests := []struct {
		name string
		s    beep.Streamer
		d    time.Duration
	}{
		{"hover", HoverTick(1), HoverTickDuration},
		{"select", SelectChime(1), ChimeDuration},
		{"core", CoreWhoosh(1), WhooshDuration},
	}
	rate := beep.SampleRate(SampleRate)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := drain(t, tt.s)
			assert.Len(t, out, rate.N(tt.d))
			peak := 0.0
			for _, v := range out {
				peak = math.Max(peak, math.Abs(v))
			}
			assert.Greater(t, peak, 0.0)
			assert.LessOrEqual(t, peak, 1.0)
		})
	}
}

func TestCues_SilentAtZeroVolume(t *testing.T) {
	for _, v := range drain(t, HoverTick(0)) {
		assert.Equal(t, 0.0, v)
	}
}
