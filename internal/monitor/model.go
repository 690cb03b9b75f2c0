package monitor

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/bwmon/internal/graph"
	"github.com/rileyhilliard/bwmon/internal/logger"
	"github.com/rileyhilliard/bwmon/internal/netstat"
	"github.com/rileyhilliard/bwmon/internal/units"
)

// Layout constants
const (
	// MinGraphRows is the smallest usable panel height.
	MinGraphRows = 3
	// MinWidth is the narrowest terminal the dashboard draws in.
	MinWidth = 20
	// reservedLines are the non-graph lines: header, five stat rows,
	// status line and key help.
	reservedLines = 8
	// MinDelay is the shortest sampling interval accepted.
	MinDelay = 100 * time.Millisecond
)

// Observer receives every sample, e.g. to export metrics.
type Observer interface {
	Observe(iface string, rx, tx float64, totals netstat.Counters)
	CounterReset(iface, direction string)
}

type noopObserver struct{}

func (noopObserver) Observe(string, float64, float64, netstat.Counters) {}
func (noopObserver) CounterReset(string, string)                       {}

// Options configure a dashboard Model.
type Options struct {
	Interface string
	// Host is shown in the header when counters come from a remote machine.
	Host  string
	Delay time.Duration
	Units units.System
	Scale graph.ScaleMode
	// RunningPeak starts with the max labels tracking the all-time peak.
	RunningPeak bool
	// Lines fixes the panel height; 0 fits the terminal.
	Lines int
	// ASCII draws the graph with plain characters.
	ASCII    bool
	Observer Observer
	Logger   logger.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Model is the Bubble Tea model for the bandwidth dashboard.
type Model struct {
	reader netstat.Reader
	opts   Options
	iface  *Iface
	scale  graph.ScaleMode
	units  units.System
	keys   keyMap
	help   help.Model
	log    logger.Logger

	width     int
	height    int
	graphRows int
	tooSmall  bool

	// A window size change is recorded here and applied at the top of the
	// next Update, before keys or samples are handled.
	pendingWidth  int
	pendingHeight int
	resizePending bool

	showHelp bool
	quitting bool
	err      error
}

// tickMsg signals that the next sample is due.
type tickMsg time.Time

// countersMsg carries the result of one counter read.
type countersMsg struct {
	counters netstat.Counters
	at       time.Time
	err      error
}

// NewModel creates a dashboard reading opts.Interface from reader.
func NewModel(reader netstat.Reader, opts Options) Model {
	if opts.Delay < MinDelay {
		opts.Delay = MinDelay
	}
	if opts.Observer == nil {
		opts.Observer = noopObserver{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewEnvLogger("[monitor]")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	iface := NewIface(opts.Interface, 0, opts.Delay, opts.Logger)
	iface.SetRunningPeak(opts.RunningPeak)

	return Model{
		reader: reader,
		opts:   opts,
		iface:  iface,
		scale:  opts.Scale,
		units:  opts.Units,
		keys:   defaultKeyMap(),
		help:   help.New(),
		log:    opts.Logger,
	}
}

// Init reads the baseline counters.
func (m Model) Init() tea.Cmd {
	return m.readCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.pendingWidth, m.pendingHeight = ws.Width, ws.Height
		m.resizePending = true
	}
	if m.resizePending {
		m.applyResize()
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if _, cmd := m.HandleKeyMsg(msg); cmd != nil {
			return m, cmd
		}

	case tickMsg:
		return m, m.readCmd()

	case countersMsg:
		if msg.err != nil {
			m.err = msg.err
			m.quitting = true
			return m, tea.Quit
		}
		m.record(msg.counters, msg.at)
		return m, m.tickCmd()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return m.renderDashboard()
}

// Err returns the error that stopped the dashboard, if any.
func (m Model) Err() error {
	return m.err
}

// Iface exposes the sampling state.
func (m Model) Iface() *Iface {
	return m.iface
}

// GraphRows returns the current panel height.
func (m Model) GraphRows() int {
	return m.graphRows
}

// TooSmall reports whether the terminal cannot fit the dashboard.
func (m Model) TooSmall() bool {
	return m.tooSmall
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.opts.Delay, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// readCmd reads the counters off the update loop.
func (m Model) readCmd() tea.Cmd {
	reader, name, now := m.reader, m.opts.Interface, m.opts.Now
	return func() tea.Msg {
		c, err := reader.ReadCounters(name)
		return countersMsg{counters: c, at: now(), err: err}
	}
}

func (m *Model) record(c netstat.Counters, at time.Time) {
	if !m.iface.Primed() {
		m.iface.Prime(c, at)
		m.log.Debug("primed %s: rx=%d tx=%d", m.iface.Name, c.RX, c.TX)
		return
	}
	s := m.iface.Update(c, at)
	for _, dir := range s.Resets {
		m.opts.Observer.CounterReset(m.iface.Name, dir)
	}
	m.opts.Observer.Observe(m.iface.Name, s.RX, s.TX, c)
}

// applyResize recomputes the layout and reflows both windows to the new width.
func (m *Model) applyResize() {
	m.resizePending = false
	m.width, m.height = m.pendingWidth, m.pendingHeight

	rows := m.opts.Lines
	if rows <= 0 {
		rows = (m.height - reservedLines) / 2
	}
	m.graphRows = rows
	m.tooSmall = rows < MinGraphRows || m.width < MinWidth || 2*rows+reservedLines > m.height

	cols := m.width
	if cols < 0 {
		cols = 0
	}
	m.iface.Resize(cols)
	m.log.Debug("resized to %dx%d, graph rows %d", m.width, m.height, m.graphRows)
}
