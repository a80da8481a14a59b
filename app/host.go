// Package app hosts the site in a terminal: it owns the tcell screen, pumps
// frames on a ticker, routes input to the mounted scene and swaps page views
// as the router moves.
package app

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/aether/asset"
	"github.com/lixenwraith/aether/audio"
	"github.com/lixenwraith/aether/config"
	"github.com/lixenwraith/aether/engine"
	"github.com/lixenwraith/aether/render"
	"github.com/lixenwraith/aether/route"
	"github.com/lixenwraith/aether/scene"
	"github.com/lixenwraith/aether/status"
)

const (
	fpsSmoothing  = 0.1
	inputQueueLen = 64
)

// Options are the optional services of a host
type Options struct {
	Clock     engine.Clock     // real time when nil, wrapped in a pausable scene clock
	Player    *audio.Player    // silent when nil
	Textures  asset.Set        // untextured when nil
	Stats     *status.Registry // private registry when nil
	StartPath string           // Home when empty or unknown
}

// Host drives one terminal session
//
// Architecture:
//   - Single goroutine: events and frame ticks are handled on the Run loop
//   - One input reader goroutine feeds a channel, as PollEvent blocks
//   - The scene session draws itself through the renderer on each pumped frame;
//     static pages and the sidebar are drawn only when they change
type Host struct {
	screen   tcell.Screen
	cfg      *config.Config
	wall     engine.Clock
	clock    *engine.PausableClock
	queue    *engine.FrameQueue
	router   *route.Router
	renderer *render.Renderer
	player   *audio.Player
	textures asset.Set
	stats    *status.Registry

	session  *scene.Session
	coreView *scene.CoreView

	layout  layout
	sidebar *render.Buffer
	page    *render.Buffer
	core    *render.Buffer
	mouse   pointer

	events   chan tcell.Event
	done     chan struct{}
	running  bool
	frames   int64
	lastStep time.Time

	// Cached metric pointers
	mFrames     *atomic.Int64
	mFPS        *status.AtomicFloat
	mFrameMs    *status.AtomicFloat
	mPage       *status.AtomicString
	mHovered    *status.AtomicString
	mTransition *status.AtomicString
	mControls   *atomic.Bool
	mAudio      *atomic.Bool
	mPaused     *atomic.Bool
}

// New creates a host on an initialized screen and enters the start page
func New(screen tcell.Screen, cfg *config.Config, opts Options) *Host {
	if opts.Clock == nil {
		opts.Clock = engine.NewTimeProvider()
	}
	if opts.Player == nil {
		opts.Player = audio.NewPlayer(config.AudioConfig{})
	}
	if opts.Stats == nil {
		opts.Stats = status.NewRegistry()
	}

	clock := engine.NewPausableClock(opts.Clock)
	h := &Host{
		screen:   screen,
		cfg:      cfg,
		wall:     opts.Clock,
		clock:    clock,
		queue:    engine.NewFrameQueue(clock),
		router:   route.NewRouter(opts.StartPath),
		renderer: render.NewRenderer(screen, opts.Stats),
		player:   opts.Player,
		textures: opts.Textures,
		stats:    opts.Stats,
		sidebar:  render.NewBuffer(0, 0),
		page:     render.NewBuffer(0, 0),
		core:     render.NewBuffer(0, 0),
	}
	h.mFrames = h.stats.Ints.Get(status.KeyFrames)
	h.mFPS = h.stats.Floats.Get(status.KeyFPS)
	h.mFrameMs = h.stats.Floats.Get(status.KeyFrameMs)
	h.mPage = h.stats.Strings.Get(status.KeyPage)
	h.mHovered = h.stats.Strings.Get(status.KeyHovered)
	h.mTransition = h.stats.Strings.Get(status.KeyTransition)
	h.mControls = h.stats.Bools.Get(status.KeyControls)
	h.mAudio = h.stats.Bools.Get(status.KeyAudio)
	h.mPaused = h.stats.Bools.Get(status.KeyPaused)

	h.applyLayout()
	h.router.OnChange(h.onRoute)
	h.enter(h.router.Current())
	return h
}

// Router returns the page router
func (h *Host) Router() *route.Router { return h.router }

// Session returns the mounted scene, nil on other pages
func (h *Host) Session() *scene.Session { return h.session }

// CoreView returns the core page view, nil on other pages
func (h *Host) CoreView() *scene.CoreView { return h.coreView }

// Renderer returns the scene renderer
func (h *Host) Renderer() *render.Renderer { return h.renderer }

// Running reports whether Run is still looping
func (h *Host) Running() bool { return h.running }

// Stop ends Run after the current event
func (h *Host) Stop() { h.running = false }

// Paused reports whether scene time is frozen
func (h *Host) Paused() bool { return h.clock.Paused() }

// TogglePause freezes or resumes the scene and the core page animation
func (h *Host) TogglePause() {
	paused := h.clock.Toggle()
	h.mPaused.Store(paused)
	log.Printf("app: paused=%v", paused)
}

// Run pumps frames and events until Stop, a quit key, ctx cancellation or
// the screen closing
func (h *Host) Run(ctx context.Context) error {
	events := h.inputEvents()
	ticker := time.NewTicker(h.cfg.FrameInterval())
	defer ticker.Stop()

	h.running = true
	for h.running {
		select {
		case <-ctx.Done():
			h.running = false
		case ev, ok := <-events:
			if !ok {
				h.running = false
				break
			}
			h.HandleEvent(ev)
		case <-ticker.C:
			h.Step()
		}
	}
	return nil
}

// Close unmounts the scene and stops the input reader
func (h *Host) Close() {
	if h.done != nil {
		close(h.done)
		h.done = nil
	}
	h.unmountScene()
	h.coreView = nil
}

// Step advances one host frame: pump the scene loop, animate the core page
// and publish metrics; a paused host only publishes
func (h *Host) Step() {
	start := h.wall.Now()
	if !h.lastStep.IsZero() {
		if dt := start.Sub(h.lastStep).Seconds(); dt > 0 {
			h.mFPS.Smooth(1/dt, fpsSmoothing)
		}
	}
	h.lastStep = start
	h.frames++
	h.publish()

	if h.clock.Paused() {
		return
	}
	h.queue.Pump()
	if h.coreView != nil {
		h.coreView.Step()
		h.drawCoreView()
		h.screen.Show()
	}
	h.mFrameMs.Set(float64(h.wall.Now().Sub(start).Microseconds()) / 1000)
}

func (h *Host) publish() {
	h.mFrames.Store(h.frames)
	h.mPage.Store(h.router.Current().Path)
	h.mAudio.Store(!h.player.Muted())

	hovered, state, controls := "-", scene.StateIdle.String(), false
	if s := h.session; s != nil && s.Mounted() {
		if n := s.Hovered(); n != nil {
			hovered = n.Title
		}
		state = s.State().String()
		controls = s.Controls().Enabled
	}
	h.mHovered.Store(hovered)
	h.mTransition.Store(state)
	h.mControls.Store(controls)
}

// onRoute swaps the view on every page change
// It can run inside a scene frame when a transition completes; unmounting
// there is safe because the session stops rescheduling itself
func (h *Host) onRoute(from, to route.Page) {
	log.Printf("app: page %s -> %s", from.Path, to.Path)
	h.enter(to)
}

func (h *Host) enter(p route.Page) {
	h.unmountScene()
	h.coreView = nil

	switch p.Path {
	case route.Home:
		h.mountScene()
	case route.ComputationalCore:
		v, err := scene.NewCoreView(h.cfg, h.textures)
		if err != nil {
			log.Printf("app: core view: %v", err)
			break
		}
		h.coreView = v
	}
	h.mPage.Store(p.Path)
	h.redraw()
}

func (h *Host) mountScene() {
	if h.session != nil {
		return
	}
	l := h.layout
	s, err := scene.Mount(h.cfg, scene.Viewport{Width: l.contentW, Height: l.height}, scene.Deps{
		Clock:     h.clock,
		Scheduler: h.queue,
		Navigator: h.router,
		Cues:      h.player,
		Sink:      h.renderer,
		Textures:  h.textures,
	})
	if err != nil {
		log.Printf("app: mount scene: %v", err)
		return
	}
	h.session = s
}

func (h *Host) unmountScene() {
	if h.session == nil {
		return
	}
	h.session.Unmount()
	h.session = nil
	h.mouse = pointer{}
}

// inputEvents starts the input reader on first use; later Runs share it
// The reader blocks in PollEvent, so after Close it exits on the next event
// or when the screen is finalized, whichever comes first
func (h *Host) inputEvents() <-chan tcell.Event {
	if h.events != nil {
		return h.events
	}
	ch := make(chan tcell.Event, inputQueueLen)
	done := make(chan struct{})
	h.events, h.done = ch, done
	Go(h.screen, func() {
		defer close(ch)
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case <-done:
				return
			default:
			}
			// Blocking send: a full queue waits for the loop, never drops
			select {
			case ch <- ev:
			case <-done:
				return
			}
		}
	})
	return ch
}
