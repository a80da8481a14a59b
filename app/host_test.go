package app

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/aether/config"
	"github.com/lixenwraith/aether/engine"
	"github.com/lixenwraith/aether/route"
	"github.com/lixenwraith/aether/scene"
	"github.com/lixenwraith/aether/status"
)

type testHost struct {
	*Host
	screen tcell.SimulationScreen
	clock  *engine.MockTimeProvider
	stats  *status.Registry
}

func newTestHost(t *testing.T, w, h int) *testHost {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)

	clock := engine.NewMockTimeProvider(time.Unix(1_700_000_000, 0))
	stats := status.NewRegistry()
	host := New(screen, config.Default(), Options{Clock: clock, Stats: stats})
	t.Cleanup(host.Close)
	return &testHost{Host: host, screen: screen, clock: clock, stats: stats}
}

func (th *testHost) step(n int, d time.Duration) {
	for i := 0; i < n; i++ {
		th.clock.Advance(d)
		th.Step()
	}
}

func (th *testHost) row(y int) string {
	cells, w, _ := th.screen.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		if c := cells[y*w+x]; len(c.Runes) > 0 {
			b.WriteRune(c.Runes[0])
		}
	}
	return b.String()
}

func (th *testHost) press(x, y int) {
	th.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
}

func (th *testHost) release(x, y int) {
	th.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

func (th *testHost) key(k tcell.Key, r rune) {
	th.HandleEvent(tcell.NewEventKey(k, r, tcell.ModNone))
}

// sceneCentre returns the screen cell over the origin of the scene
func (th *testHost) sceneCentre() (int, int) {
	l := th.layout
	return l.sidebarW + l.contentW/2, l.height / 2
}

func TestNew_MountsSceneOnHome(t *testing.T) {
	th := newTestHost(t, 120, 40)

	require.NotNil(t, th.Session())
	assert.True(t, th.Session().Mounted())
	assert.Equal(t, scene.Viewport{Width: 120 - SidebarWidth, Height: 40}, th.Session().Viewport())
	assert.Nil(t, th.CoreView())

	assert.Contains(t, th.row(1), brand)
	assert.Contains(t, th.row(sidebarTop), "▸ Home")
	assert.Contains(t, th.row(sidebarTop+sidebarSpacing), "Projects")
}

func TestNew_NarrowScreenHidesSidebar(t *testing.T) {
	th := newTestHost(t, 40, 20)
	assert.Zero(t, th.layout.sidebarW)
	require.NotNil(t, th.Session())
	assert.Equal(t, 40, th.Session().Viewport().Width)
}

func TestStep_PumpsSceneAndPublishes(t *testing.T) {
	th := newTestHost(t, 120, 40)
	th.step(3, 16*time.Millisecond)

	assert.Equal(t, uint64(3), th.Session().Ticks())
	assert.Equal(t, int64(3), th.stats.Ints.Get(status.KeyFrames).Load())
	assert.Equal(t, route.Home, th.stats.Strings.Get(status.KeyPage).Load())
	assert.Equal(t, "idle", th.stats.Strings.Get(status.KeyTransition).Load())
	assert.True(t, th.stats.Bools.Get(status.KeyControls).Load())
	assert.InDelta(t, 62.5, th.stats.Floats.Get(status.KeyFPS).Get(), 1e-6)
}

func TestSidebarClick_SwapsToPage(t *testing.T) {
	th := newTestHost(t, 120, 40)
	first := th.Session()

	y := sidebarTop + sidebarSpacing // Projects
	th.press(3, y)
	th.release(3, y)

	assert.Equal(t, route.Projects, th.Router().Current().Path)
	assert.Nil(t, th.Session())
	assert.False(t, first.Mounted())
	assert.Contains(t, th.row(1), "Project Playground")
	assert.Contains(t, th.row(sidebarTop+sidebarSpacing), "▸ Projects")

	// Steps on a static page pump nothing
	th.step(2, 16*time.Millisecond)
	assert.Equal(t, route.Projects, th.stats.Strings.Get(status.KeyPage).Load())
}

func TestSidebarHit(t *testing.T) {
	p, ok := sidebarHit(sidebarTop)
	require.True(t, ok)
	assert.Equal(t, route.Home, p.Path)

	_, ok = sidebarHit(sidebarTop + 1)
	assert.False(t, ok)
	_, ok = sidebarHit(0)
	assert.False(t, ok)
	_, ok = sidebarHit(sidebarTop + 100*sidebarSpacing)
	assert.False(t, ok)
}

func TestTab_CyclesAndRemounts(t *testing.T) {
	th := newTestHost(t, 120, 40)
	first := th.Session()

	th.key(tcell.KeyTab, 0)
	assert.Equal(t, route.Projects, th.Router().Current().Path)

	th.key(tcell.KeyBacktab, 0)
	assert.Equal(t, route.Home, th.Router().Current().Path)
	require.NotNil(t, th.Session())
	assert.NotSame(t, first, th.Session())
	assert.Zero(t, th.Session().Ticks())

	th.key(tcell.KeyBacktab, 0)
	assert.Equal(t, route.Resume, th.Router().Current().Path)
}

func TestKeys_ZoomMuteHUDQuit(t *testing.T) {
	th := newTestHost(t, 120, 40)
	ctl := th.Session().Controls()
	start := ctl.GoalDistance()

	th.key(tcell.KeyRune, '+')
	assert.Less(t, ctl.GoalDistance(), start)
	th.key(tcell.KeyRune, '-')
	th.key(tcell.KeyRune, '-')
	assert.Greater(t, ctl.GoalDistance(), start)

	th.key(tcell.KeyRune, 'm')
	assert.True(t, th.stats.Bools.Get(status.KeyAudio).Load())

	th.key(tcell.KeyRune, 'h')
	assert.False(t, th.Renderer().ShowHUD)

	th.running = true
	th.key(tcell.KeyRune, 'q')
	assert.False(t, th.Running())
	th.running = true
	th.key(tcell.KeyEscape, 0)
	assert.False(t, th.Running())
}

func TestPause_FreezesSceneAndCore(t *testing.T) {
	th := newTestHost(t, 120, 40)
	th.step(2, 16*time.Millisecond)
	frozen := th.Session().Ticks()

	th.key(tcell.KeyRune, ' ')
	require.True(t, th.Paused())
	assert.True(t, th.stats.Bools.Get(status.KeyPaused).Load())
	before := th.clock.Now()
	th.step(5, 16*time.Millisecond)
	assert.Equal(t, frozen, th.Session().Ticks())
	assert.Equal(t, int64(7), th.stats.Ints.Get(status.KeyFrames).Load())
	assert.True(t, th.clock.Now().After(before))

	th.key(tcell.KeyRune, 'p')
	assert.False(t, th.Paused())
	th.step(1, 16*time.Millisecond)
	assert.Equal(t, frozen+1, th.Session().Ticks())

	require.NoError(t, th.Router().Go(route.ComputationalCore))
	require.NotNil(t, th.CoreView())
	th.TogglePause()
	glow := th.CoreView().Effects().GlowTime
	th.step(3, 16*time.Millisecond)
	assert.Equal(t, glow, th.CoreView().Effects().GlowTime)
}

func TestMouse_HoverAndWheel(t *testing.T) {
	th := newTestHost(t, 120, 40)
	th.step(1, 16*time.Millisecond)

	x, y := th.sceneCentre()
	th.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
	require.NotNil(t, th.Session().Hovered())
	assert.True(t, th.Session().Hovered().IsCore())
	assert.True(t, th.Session().Tooltip().Visible)

	before := th.Session().Controls().GoalDistance()
	th.HandleEvent(tcell.NewEventMouse(x, y, tcell.WheelUp, tcell.ModNone))
	assert.Less(t, th.Session().Controls().GoalDistance(), before)
	assert.Equal(t, scene.StateIdle, th.Session().State())
}

func TestMouse_DragDoesNotClick(t *testing.T) {
	th := newTestHost(t, 120, 40)
	th.step(1, 16*time.Millisecond)

	x, y := th.sceneCentre()
	th.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
	th.press(x, y)
	th.press(x+4, y+1)
	th.release(x+4, y+1)

	assert.Equal(t, scene.StateIdle, th.Session().State())
	assert.False(t, th.mouse.down)
}

func TestCoreClick_FliesNavigatesAndComesBack(t *testing.T) {
	th := newTestHost(t, 120, 40)
	th.step(1, 16*time.Millisecond)

	x, y := th.sceneCentre()
	th.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
	th.press(x, y)
	th.release(x, y)

	s := th.Session()
	require.NotNil(t, s)
	require.Equal(t, scene.StateTransitioning, s.State())
	assert.False(t, s.Controls().Enabled)

	for i := 0; i < 40 && th.Router().Current().Path == route.Home; i++ {
		th.step(1, 100*time.Millisecond)
	}
	assert.Equal(t, route.ComputationalCore, th.Router().Current().Path)
	assert.False(t, s.Mounted())
	assert.Nil(t, th.Session())
	require.NotNil(t, th.CoreView())
	assert.Contains(t, th.row(1), "Computational Core")
	assert.Contains(t, th.row(backRow), backLabel)

	// The core page animates on every step
	glow := th.CoreView().Effects().GlowTime
	th.step(1, 16*time.Millisecond)
	assert.Greater(t, th.CoreView().Effects().GlowTime, glow)

	// Back remounts a fresh scene
	bx := th.layout.sidebarW + pageMargin + 1
	th.press(bx, backRow)
	th.release(bx, backRow)
	assert.Equal(t, route.Home, th.Router().Current().Path)
	require.NotNil(t, th.Session())
	assert.NotSame(t, s, th.Session())
	assert.Equal(t, scene.StateIdle, th.Session().State())
	assert.Nil(t, th.CoreView())
}

func TestBackKey(t *testing.T) {
	th := newTestHost(t, 120, 40)
	th.Router().Navigate(route.About)
	th.Router().Navigate(route.Blog)

	th.key(tcell.KeyRune, 'b')
	assert.Equal(t, route.About, th.Router().Current().Path)
	th.key(tcell.KeyBackspace2, 0)
	assert.Equal(t, route.Home, th.Router().Current().Path)
	// Nothing left behind Home, back stays there
	th.key(tcell.KeyRune, 'b')
	assert.Equal(t, route.Home, th.Router().Current().Path)
	assert.NotNil(t, th.Session())
}

func TestResize_UpdatesAndRemounts(t *testing.T) {
	th := newTestHost(t, 120, 40)

	th.screen.SetSize(80, 30)
	th.HandleEvent(tcell.NewEventResize(80, 30))
	require.NotNil(t, th.Session())
	assert.Equal(t, scene.Viewport{Width: 80 - SidebarWidth, Height: 30}, th.Session().Viewport())

	th.screen.SetSize(80, 0)
	th.HandleEvent(tcell.NewEventResize(80, 0))
	assert.Nil(t, th.Session())

	th.screen.SetSize(100, 30)
	th.HandleEvent(tcell.NewEventResize(100, 30))
	require.NotNil(t, th.Session())
	assert.Equal(t, 100-SidebarWidth, th.Session().Viewport().Width)
}

func TestWritePage_IndentsAndWraps(t *testing.T) {
	th := newTestHost(t, 60, 20)
	th.Router().Navigate(route.Projects)

	var text []string
	for y := 0; y < 20; y++ {
		text = append(text, th.row(y))
	}
	joined := strings.Join(text, "\n")
	assert.Contains(t, joined, "Neural Network Visualizer")
	assert.Contains(t, joined, "Interactive visualization")
}

func TestRun_StopsOnQuitAndCancel(t *testing.T) {
	th := newTestHost(t, 80, 24)

	done := make(chan error, 1)
	go func() { done <- th.Run(context.Background()) }()
	th.screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop on q")
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() { done <- th.Run(ctx) }()
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop on cancel")
	}
}

func TestInputReader_BlocksInsteadOfDropping(t *testing.T) {
	th := newTestHost(t, 80, 24)
	events := th.inputEvents()

	const n = inputQueueLen * 2
	go func() {
		for i := 0; i < n; i++ {
			th.screen.InjectKey(tcell.KeyRune, rune('a'+i%26), tcell.ModNone)
		}
		th.screen.InjectMouse(3, 3, tcell.ButtonNone, tcell.ModNone)
	}()

	// Nobody reads until the queue is full, as during a long frame
	require.Eventually(t, func() bool { return len(events) == inputQueueLen },
		5*time.Second, time.Millisecond)

	for i := 0; i < n; i++ {
		select {
		case ev := <-events:
			k, ok := ev.(*tcell.EventKey)
			require.True(t, ok, "event %d: %T", i, ev)
			assert.Equal(t, rune('a'+i%26), k.Rune(), "event %d", i)
		case <-time.After(5 * time.Second):
			t.Fatalf("event %d never arrived", i)
		}
	}
	select {
	case ev := <-events:
		m, ok := ev.(*tcell.EventMouse)
		require.True(t, ok)
		assert.Equal(t, tcell.ButtonNone, m.Buttons())
	case <-time.After(5 * time.Second):
		t.Fatal("release never arrived")
	}
	assert.Same(t, events, th.inputEvents())
}

func TestInputReader_StopsAfterClose(t *testing.T) {
	th := newTestHost(t, 80, 24)
	events := th.inputEvents()
	th.Close()

	// The reader wakes on the next event and exits instead of forwarding it
	go th.screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("reader did not stop after Close")
	}

	// A Run on a closed host returns at once
	require.NoError(t, th.Run(context.Background()))
}

func TestHandleCrash(t *testing.T) {
	code := -1
	saved := exit
	exit = func(c int) { code = c }
	defer func() { exit = saved }()

	HandleCrash(nil, nil)
	assert.Equal(t, -1, code)

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	HandleCrash(screen, "boom")
	assert.Equal(t, 1, code)
}
