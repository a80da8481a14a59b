// Package audio plays the short interaction cues of the scene through the
// system speaker. Without an audio device the player degrades to silence.
package audio

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/aether/config"
	"github.com/lixenwraith/aether/scene"
)

type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// Player mixes cues into one speaker stream
type Player struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	mixer       *beep.Mixer
	lock        sync.Locker // guards mixer against the speaker goroutine
	initialized bool
	muted       atomic.Bool
	played      atomic.Uint64
}

// NewPlayer creates an uninitialized player
func NewPlayer(cfg config.AudioConfig) *Player {
	p := &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		lock:  speakerLock{},
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Initialize opens the speaker
// A disabled player never touches the device
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the streamer of cue c, implementing scene.CuePlayer
func (p *Player) Play(c scene.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted.Load() {
		return
	}
	s := cueStreamer(c, p.cfg.MasterVolume)
	if s == nil {
		return
	}
	p.lock.Lock()
	p.mixer.Add(s)
	p.lock.Unlock()
	p.played.Add(1)
}

// ToggleMute flips the mute state, returns true when sound is now on
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)
	log.Printf("audio: muted=%v", muted)
	return !muted
}

// Muted reports the mute state
func (p *Player) Muted() bool {
	return p.muted.Load()
}

// Played returns the number of cues queued since creation
func (p *Player) Played() uint64 {
	return p.played.Load()
}

// Close stops all sounds
// beep has no speaker close, clearing the mixer leaves it idle
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.lock.Lock()
	p.mixer.Clear()
	p.lock.Unlock()
	p.initialized = false
}

func cueStreamer(c scene.Cue, master float64) beep.Streamer {
	switch c {
	case scene.CueHover:
		return HoverTick(master)
	case scene.CueSelect:
		return SelectChime(master)
	case scene.CueCore:
		return CoreWhoosh(master)
	default:
		return nil
	}
}
