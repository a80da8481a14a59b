package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	sweepTo  float64 // end frequency of a linear sweep, 0 for none
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(1)),
	}
}

// NewSweep creates a sine oscillator gliding linearly from one frequency to another
func NewSweep(from, to float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	o := NewOscillator(from, duration, WaveSine, rate).(*oscillator)
	o.sweepTo = to
	return o
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.sweepTo > 0 && o.duration > 0 {
			freq += (o.sweepTo - o.freq) * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	if releaseStart < e.attackSamples {
		releaseStart = e.attackSamples
	}
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly
// math.Log2(0) is -Inf, so zero volume is mapped to silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// HoverTick is a short high blip played when a node gains hover
func HoverTick(master float64) beep.Streamer {
	rate := beep.SampleRate(SampleRate)
	osc := NewOscillator(HoverTickFreq, HoverTickDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, HoverTickDuration, HoverTickAttack, HoverTickRelease, rate)
	return newVolume(shaped, cueVolumes["hover"]*master)
}

// SelectChime is a bell with an octave overtone played on a node click
func SelectChime(master float64) beep.Streamer {
	rate := beep.SampleRate(SampleRate)

	fund := NewOscillator(ChimeFreq, ChimeDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, ChimeDuration, ChimeAttack, ChimeFundamentalRelease, rate)

	over := NewOscillator(ChimeFreq*2, ChimeDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, ChimeDuration, ChimeAttack, ChimeOvertoneRelease, rate)

	mixed := beep.Take(rate.N(ChimeDuration), beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	))
	return newVolume(mixed, cueVolumes["select"]*master)
}

// CoreWhoosh is a rising swell under filtered noise played on the core dive
func CoreWhoosh(master float64) beep.Streamer {
	rate := beep.SampleRate(SampleRate)

	sweep := NewSweep(WhooshLowFreq, WhooshHighFreq, WhooshDuration, rate)
	sweepShaped := NewEnvelope(sweep, WhooshDuration, WhooshAttack, WhooshRelease, rate)

	noise := NewOscillator(0, WhooshDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, WhooshDuration, WhooshAttack, WhooshRelease, rate)

	mixed := beep.Take(rate.N(WhooshDuration), beep.Mix(
		newVolume(sweepShaped, 0.6),
		newVolume(noiseShaped, 0.15),
	))
	return newVolume(mixed, cueVolumes["core"]*master)
}
