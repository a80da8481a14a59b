package audio

import "time"

// SampleRate of every generated cue
const SampleRate = 48000

// Cue shapes
const (
	HoverTickDuration = 40 * time.Millisecond
	HoverTickAttack   = 2 * time.Millisecond
	HoverTickRelease  = 30 * time.Millisecond
	HoverTickFreq     = 1320.0 // E6

	ChimeDuration           = 450 * time.Millisecond
	ChimeAttack             = 5 * time.Millisecond
	ChimeFundamentalRelease = 400 * time.Millisecond
	ChimeOvertoneRelease    = 150 * time.Millisecond
	ChimeFreq               = 880.0 // A5

	WhooshDuration = 1800 * time.Millisecond
	WhooshAttack   = 900 * time.Millisecond
	WhooshRelease  = 800 * time.Millisecond
	WhooshLowFreq  = 60.0
	WhooshHighFreq = 240.0
)

// Per-cue gain before the master volume
var cueVolumes = map[string]float64{
	"hover":  0.25,
	"select": 0.6,
	"core":   0.8,
}
