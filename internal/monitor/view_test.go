package monitor

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/bwmon/internal/graph"
	"github.com/rileyhilliard/bwmon/internal/netstat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_Initializing(t *testing.T) {
	m := newTestModel(&fakeReader{}, Options{Delay: time.Second})
	assert.Equal(t, "Initializing...", m.View())
}

func TestView_Dashboard(t *testing.T) {
	reader := &fakeReader{counters: []netstat.Counters{{}, {RX: 1024, TX: 512}, {RX: 3072, TX: 1024}}}
	m := newTestModel(reader, Options{Delay: time.Second, Host: "gateway", ASCII: true})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})
	for range reader.counters {
		m, _ = sample(t, m)
	}

	out := m.View()
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 30)
	assert.Contains(t, lines[0], "interface: eth0 @ gateway")
	assert.Contains(t, out, "RX:")
	assert.Contains(t, out, "TX:")
	assert.Contains(t, out, "max:")
	assert.Contains(t, out, "2.00 KiB/s")
	assert.Contains(t, out, "total:")
	assert.Contains(t, out, "3.00 KiB")
	assert.Contains(t, out, "scale: zero-max")
	assert.NotContains(t, out, GlyphFilled)

	// Top of the RX panel and bottom of the TX panel carry the max label.
	assert.True(t, strings.HasPrefix(lines[1], "2.00 KiB/s"))
	assert.True(t, strings.HasPrefix(lines[11], "0 B/s"))
	assert.True(t, strings.HasPrefix(lines[12], "0 B/s"))
	assert.True(t, strings.HasPrefix(lines[22], "512 B/s"))
}

func TestView_PeakLabel(t *testing.T) {
	m := newTestModel(&fakeReader{}, Options{Delay: time.Second, RunningPeak: true})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})

	out := m.View()
	assert.Contains(t, out, "peak:")
	assert.Contains(t, out, "peak: on")
}

func TestView_TooSmall(t *testing.T) {
	m := newTestModel(&fakeReader{}, Options{Delay: time.Second})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})

	out := m.View()
	assert.Contains(t, out, "Terminal too small")
	assert.Contains(t, out, "have 40x10")
}

func TestView_HelpOverlay(t *testing.T) {
	m := newTestModel(&fakeReader{}, Options{Delay: time.Second})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	m, _ = update(t, m, runeKey("?"))

	out := m.View()
	assert.Contains(t, out, "Keyboard Shortcuts")
	assert.Contains(t, out, "reset peaks")
}

func TestRenderPanel_Mirroring(t *testing.T) {
	m := newTestModel(&fakeReader{}, Options{Delay: time.Second, ASCII: true})
	p := graph.Draw([]float64{0, 5, 10}, graph.Scale{Mode: graph.ZeroToMax, Max: 10}, 3, 12)

	up := m.renderPanel(p, RXStyle, false)
	down := m.renderPanel(p, TXStyle, true)
	require.Len(t, up, 3)
	require.Len(t, down, 3)

	assert.Equal(t, "10 B/s     *", up[0])
	assert.Equal(t, "           *", up[1])
	assert.Equal(t, "0 B/s     **", up[2])

	assert.Equal(t, "0 B/s     **", down[0])
	assert.Equal(t, "           *", down[1])
	assert.Equal(t, "10 B/s     *", down[2])
}
