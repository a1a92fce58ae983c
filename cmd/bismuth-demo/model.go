package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-bismuth/bismuth/pkg/animation"
	"github.com/go-bismuth/bismuth/pkg/gestures"
	"github.com/go-bismuth/bismuth/pkg/settings"
)

const (
	frameInterval = 16 * time.Millisecond
	laneWidth     = 48.0
)

type tab int

const (
	tabEasing tab = iota
	tabSpring
	tabSwipe
	tabCount
)

func (t tab) String() string {
	switch t {
	case tabEasing:
		return "easing"
	case tabSpring:
		return "spring"
	default:
		return "swipe"
	}
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// demoHost exposes the demo's frame clock and the process animation
// policy to the animations it drives.
type demoHost struct {
	clock *animation.FrameClock
	cfg   *settings.Settings
}

func (h *demoHost) FrameClock() *animation.FrameClock { return h.clock }
func (h *demoHost) AnimationsEnabled() bool           { return h.cfg.EnableAnimations }

// swipeLane is the swipe tab's surface: three snap points, one progress
// unit per laneWidth terminal cells.
type swipeLane struct {
	progress float64
	rest     float64
}

func (l *swipeLane) SnapPoints() []float64   { return []float64{0, 1, 2} }
func (l *swipeLane) Progress() float64       { return l.progress }
func (l *swipeLane) CancelProgress() float64 { return l.rest }
func (l *swipeLane) Distance() float64       { return laneWidth }

type model struct {
	cfg  *settings.Settings
	host *demoHost

	tab      tab
	width    int
	quitting bool

	easing      animation.Easing
	easingValue float64
	timed       *animation.TimedAnimation

	dampingRatio float64
	springValue  float64
	spring       *animation.SpringAnimation

	lane    *swipeLane
	tracker *gestures.SwipeTracker
	settle  *animation.SpringAnimation
}

func newModel(cfg *settings.Settings) *model {
	m := &model{
		cfg:          cfg,
		host:         &demoHost{clock: animation.NewFrameClock(), cfg: cfg},
		easing:       animation.EaseOutCubic,
		dampingRatio: 0.5,
		lane:         &swipeLane{},
	}

	m.timed = animation.NewTimedAnimation(m.host, 0, 1, 600*time.Millisecond,
		animation.NewCallbackTarget(func(v float64) { m.easingValue = v }))
	m.timed.SetEasing(m.easing)

	m.spring = animation.NewSpringAnimation(m.host, 0, 1,
		animation.NewSpringParams(m.dampingRatio, 1, 100),
		animation.NewCallbackTarget(func(v float64) { m.springValue = v }))

	m.tracker = gestures.NewSwipeTracker(m.lane)
	m.tracker.OnUpdate = func(progress float64) { m.lane.progress = progress }
	m.tracker.OnEnd = m.settleLane
	return m
}

// settleLane hands a released swipe to a spring: the release velocity
// carries over so the lane keeps its momentum.
func (m *model) settleLane(velocity, to float64) {
	if m.settle != nil {
		m.settle.Reset()
	}
	m.settle = animation.NewSpringAnimation(m.host, m.lane.progress, to,
		animation.NewSpringParams(1, 0.5, 300),
		animation.NewCallbackTarget(func(v float64) { m.lane.progress = v }))
	m.settle.SetInitialVelocity(velocity)
	m.settle.AddDoneListener(func() { m.lane.rest = to })
	m.settle.Play()
}

func (m *model) Init() tea.Cmd {
	return tickCmd()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		// The slowdown factor stretches animation time relative to wall
		// time.
		delta := time.Duration(float64(frameInterval) / m.cfg.Slowdown)
		m.host.clock.Step(m.host.clock.FrameTime() + delta)
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "tab":
		m.tab = (m.tab + 1) % tabCount
		return m, nil
	}

	switch m.tab {
	case tabEasing:
		m.handleEasingKey(msg)
	case tabSpring:
		m.handleSpringKey(msg)
	case tabSwipe:
		m.handleSwipeKey(msg)
	}
	return m, nil
}

func (m *model) handleEasingKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "up", "k":
		m.easing = animation.Easing((int(m.easing) + animation.EasingCount - 1) % animation.EasingCount)
		m.timed.SetEasing(m.easing)
	case "down", "j":
		m.easing = animation.Easing((int(m.easing) + 1) % animation.EasingCount)
		m.timed.SetEasing(m.easing)
	case " ", "enter":
		m.replay(m.timed)
	}
}

func (m *model) handleSpringKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "up", "k":
		m.setDampingRatio(m.dampingRatio + 0.1)
	case "down", "j":
		m.setDampingRatio(m.dampingRatio - 0.1)
	case "f":
		// Fling: release with momentum toward the target.
		m.spring.Reset()
		m.spring.SetInitialVelocity(10)
		m.spring.Play()
	case " ", "enter":
		m.spring.SetInitialVelocity(0)
		m.replay(m.spring)
	}
}

func (m *model) handleSwipeKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "left", "h":
		m.dragLane(-6)
	case "right", "l":
		m.dragLane(6)
	case " ", "enter":
		m.tracker.EndSwipe()
	case "L":
		m.tracker.SetAllowLongSwipes(!m.tracker.AllowLongSwipes())
	}
}

func (m *model) dragLane(delta float64) {
	if m.settle != nil && m.settle.State() == animation.StatePlaying {
		m.settle.Reset()
	}
	m.tracker.BeginSwipe()
	m.tracker.UpdateSwipe(delta)
}

// replay restarts an animation regardless of its current state.
func (m *model) replay(a animation.Animation) {
	if a.State() == animation.StatePlaying {
		a.Reset()
	}
	a.Play()
}

func (m *model) setDampingRatio(ratio float64) {
	if ratio < 0.1 {
		ratio = 0.1
	}
	m.dampingRatio = ratio
	m.spring.SetSpringParams(animation.NewSpringParams(ratio, 1, 100))
}

func (m *model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.tabBar())
	b.WriteString("\n\n")

	switch m.tab {
	case tabEasing:
		b.WriteString(m.easingView())
	case tabSpring:
		b.WriteString(m.springView())
	case tabSwipe:
		b.WriteString(m.swipeView())
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.helpLine()))
	return b.String()
}

func (m *model) tabBar() string {
	parts := make([]string, 0, int(tabCount))
	for t := tabEasing; t < tabCount; t++ {
		label := " " + t.String() + " "
		if t == m.tab {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (m *model) easingView() string {
	header := titleStyle.Render(m.easing.String())
	state := statusStyle.Render(m.timed.State().String())
	return fmt.Sprintf("%s  %s\n\n%s", header, state, renderBar(m.easingValue, laneWidth))
}

func (m *model) springView() string {
	header := titleStyle.Render(fmt.Sprintf("damping ratio %.1f", m.dampingRatio))
	state := statusStyle.Render(m.spring.State().String())
	// Springs overshoot; leave headroom in the bar.
	return fmt.Sprintf("%s  %s\n\n%s", header, state, renderBar(m.springValue/1.5, laneWidth))
}

func (m *model) swipeView() string {
	points := m.lane.SnapPoints()
	span := points[len(points)-1]

	width := int(laneWidth)
	cells := make([]rune, width+1)
	for i := range cells {
		cells[i] = '─'
	}
	for _, p := range points {
		cells[int(p/span*float64(width))] = '┼'
	}
	pos := clamp(m.lane.progress/span, 0, 1)
	cells[int(pos*float64(width))] = '●'

	mode := "short swipes"
	if m.tracker.AllowLongSwipes() {
		mode = "long swipes"
	}
	header := titleStyle.Render(fmt.Sprintf("progress %.2f", m.lane.progress))
	return fmt.Sprintf("%s  %s\n\n%s", header, statusStyle.Render(mode), trackStyle.Render(string(cells)))
}

func (m *model) helpLine() string {
	switch m.tab {
	case tabEasing:
		return "↑/↓ easing · space play · tab switch · q quit"
	case tabSpring:
		return "↑/↓ damping · space play · f fling · tab switch · q quit"
	default:
		return "←/→ drag · space release · L toggle long swipes · tab switch · q quit"
	}
}

func renderBar(value, width float64) string {
	filled := int(clamp(value, 0, 1) * width)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", int(width)-filled)
	return barStyle.Render(bar)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
