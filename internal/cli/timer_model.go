package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/practicelog/internal/cli/formatter"
	"github.com/alexanderramin/practicelog/internal/domain"
	"github.com/alexanderramin/practicelog/internal/timer"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ── keys ─────────────────────────────────────────────────────────────────────

type timerKeyMap struct {
	Toggle  key.Binding
	Finish  key.Binding
	Reset   key.Binding
	Longer  key.Binding
	Shorter key.Binding
	Preset  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newTimerKeyMap(mode timer.Mode) timerKeyMap {
	km := timerKeyMap{
		Toggle:  key.NewBinding(key.WithKeys(" ", "s"), key.WithHelp("space", "start/pause")),
		Finish:  key.NewBinding(key.WithKeys("f", "enter"), key.WithHelp("f", "finish")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Longer:  key.NewBinding(key.WithKeys("+", "=", "up"), key.WithHelp("+/-", "adjust minute")),
		Shorter: key.NewBinding(key.WithKeys("-", "down")),
		Preset:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "preset")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
	if mode != timer.ModeCountdown {
		km.Longer.SetEnabled(false)
		km.Shorter.SetEnabled(false)
		km.Preset.SetEnabled(false)
	}
	return km
}

func (k timerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Finish, k.Reset, k.Help, k.Quit}
}

func (k timerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Finish, k.Reset},
		{k.Longer, k.Preset},
		{k.Help, k.Quit},
	}
}

// ── messages ─────────────────────────────────────────────────────────────────

// timerTickMsg carries one scheduler tick into Update.
type timerTickMsg struct {
	tick timer.Tick
}

// timerSubmittedMsg reports that a completion's submission has settled.
type timerSubmittedMsg struct {
	completion *timer.Completion
	err        error
}

// ── model ────────────────────────────────────────────────────────────────────

// timerModel is the interactive view over one engine. All engine calls
// happen in Update; only Engine.Submit runs inside a Cmd.
type timerModel struct {
	ctx     context.Context
	engine  *timer.Engine
	presets []time.Duration
	quote   func() string

	keys timerKeyMap
	help help.Model

	frame     timer.Frame
	refreshes chan timer.Refresh
	stats     *domain.Stats
	status    string
	statusErr bool
	closing   string
	pending   *timer.Completion
	quitting  bool
	width     int
}

// newTimerModel returns the model plus the display sink and refresh hook
// the engine and its submitter must be built with.
func newTimerModel(ctx context.Context, mode timer.Mode, presets []time.Duration, quote func() string) (*timerModel, timer.DisplaySink, timer.RefreshFunc) {
	m := &timerModel{
		ctx:       ctx,
		presets:   presets,
		quote:     quote,
		keys:      newTimerKeyMap(mode),
		help:      help.New(),
		refreshes: make(chan timer.Refresh, 1),
		frame:     timer.Frame{Mode: mode},
	}
	display := timer.DisplayFunc(func(f timer.Frame) { m.frame = f })
	onRefresh := func(_ context.Context, r timer.Refresh) {
		// Keep only the newest refresh. Overlapping submissions may race
		// here, so neither side ever blocks.
		for {
			select {
			case m.refreshes <- r:
				return
			default:
			}
			select {
			case <-m.refreshes:
			default:
			}
		}
	}
	return m, display, onRefresh
}

// attach binds the engine once it has been built with the model's sink.
func (m *timerModel) attach(e *timer.Engine) {
	m.engine = e
	m.frame = e.Frame()
}

func (m *timerModel) Init() tea.Cmd {
	return m.awaitTick()
}

func (m *timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case timerTickMsg:
		s := m.engine.Scheduler()
		if !s.Armed() || msg.tick.Generation != s.Generation() {
			return m, nil
		}
		if c, ok := m.engine.Poll(); ok {
			return m, m.submit(c)
		}
		return m, m.awaitTick()

	case timerSubmittedMsg:
		return m, m.settle(msg)
	}
	return m, nil
}

func (m *timerModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if m.pending != nil {
			// Let the in-flight submission settle first.
			return nil
		}
		m.engine.Reset()
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil

	case key.Matches(msg, m.keys.Toggle):
		m.closing = ""
		if m.engine.Phase() == timer.PhaseRunning {
			m.engine.Pause()
			return nil
		}
		gen := m.engine.Scheduler().Generation()
		if err := m.engine.Start(); err != nil {
			m.setError(err)
			return nil
		}
		m.status = ""
		if m.engine.Scheduler().Generation() != gen {
			return m.awaitTick()
		}
		return nil

	case key.Matches(msg, m.keys.Finish):
		c, ok := m.engine.BeginFinish(false)
		if !ok {
			return nil
		}
		return m.submit(c)

	case key.Matches(msg, m.keys.Reset):
		m.engine.Reset()
		m.pending = nil
		m.status = "Reset"
		m.statusErr = false
		m.closing = ""
		return nil

	case key.Matches(msg, m.keys.Longer):
		m.engine.Configure(m.engine.Configured() + time.Minute)
		return nil

	case key.Matches(msg, m.keys.Shorter):
		m.engine.Configure(max(m.engine.Configured()-time.Minute, 0))
		return nil

	case key.Matches(msg, m.keys.Preset):
		i := int(msg.Runes[0] - '1')
		if i >= 0 && i < len(m.presets) {
			m.engine.Configure(m.presets[i])
		}
		return nil
	}
	return nil
}

// awaitTick waits for the next tick of the scheduler's current ticker.
func (m *timerModel) awaitTick() tea.Cmd {
	wait := m.engine.Scheduler().Await()
	if wait == nil {
		return nil
	}
	return func() tea.Msg {
		t, ok := wait()
		if !ok {
			return nil
		}
		return timerTickMsg{tick: t}
	}
}

func (m *timerModel) submit(c *timer.Completion) tea.Cmd {
	m.pending = c
	m.status = "Saving…"
	m.statusErr = false
	e, ctx := m.engine, m.ctx
	return func() tea.Msg {
		return timerSubmittedMsg{completion: c, err: e.Submit(ctx, c)}
	}
}

func (m *timerModel) settle(msg timerSubmittedMsg) tea.Cmd {
	m.engine.Settle(msg.completion)
	if m.pending != msg.completion {
		// Reset while saving; the result is no longer shown.
		return m.quitIfRequested()
	}
	m.pending = nil

	if msg.err != nil {
		m.setError(msg.err)
		return m.quitIfRequested()
	}

	rec := msg.completion.Record
	m.status = fmt.Sprintf("Saved %s session", timer.FormatHMS(rec.DurationSeconds))
	m.statusErr = false
	select {
	case r := <-m.refreshes:
		if r.Err != nil {
			m.status += " (stats unavailable)"
		} else {
			m.stats = r.Stats
		}
	default:
	}
	if rec.AutoComplete && m.quote != nil {
		m.closing = m.quote()
	}
	return m.quitIfRequested()
}

func (m *timerModel) quitIfRequested() tea.Cmd {
	if m.quitting {
		return tea.Quit
	}
	return nil
}

func (m *timerModel) setError(err error) {
	m.statusErr = true
	switch {
	case errors.Is(err, timer.ErrInvalidDuration):
		m.status = "Set a countdown length first (+/- or a preset key)"
	default:
		m.status = err.Error()
	}
}

func (m *timerModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.RenderTimer(m.frame))
	b.WriteString("\n")

	if m.status != "" {
		if m.statusErr {
			b.WriteString(formatter.Failure(m.status))
		} else {
			b.WriteString(formatter.Success(m.status))
		}
		b.WriteString("\n")
	}
	if m.stats != nil {
		b.WriteString("\n")
		b.WriteString(formatter.FormatGoal(m.stats.WeeklySeconds, m.stats.WeeklyTargetSeconds, m.stats.WeeklyProgressPercentage))
		b.WriteString("\n")
	}
	if m.closing != "" {
		b.WriteString("\n")
		b.WriteString(formatter.StylePurple.Render(m.closing))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
