package monitor

import (
	"time"

	"github.com/rileyhilliard/bwmon/internal/graph"
	"github.com/rileyhilliard/bwmon/internal/logger"
	"github.com/rileyhilliard/bwmon/internal/netstat"
	"github.com/rileyhilliard/bwmon/internal/series"
)

// Direction names, also used as metric labels.
const (
	DirRX = "rx"
	DirTX = "tx"
)

// Channel is one direction of traffic: its sample window, cached
// statistics and the cumulative counter seen on the last read.
type Channel struct {
	Name    string
	Buffer  *series.Buffer
	Stats   series.Stats
	Tracker series.Tracker
	Total   uint64
	Resets  int
}

func newChannel(name string, capacity int) *Channel {
	c := &Channel{Name: name, Buffer: series.New(capacity)}
	c.refresh()
	return c
}

func (c *Channel) push(sample float64) {
	c.Buffer.Push(sample)
	c.refresh()
}

func (c *Channel) refresh() {
	c.Stats = c.Tracker.Update(c.Buffer)
}

// Current returns the newest sample.
func (c *Channel) Current() float64 {
	return c.Buffer.Last()
}

// Sample is the outcome of one counter read.
type Sample struct {
	RX, TX float64
	// Resets lists the directions whose counter went backwards.
	Resets []string
}

// Iface holds the sampling state for one interface. The previous counters
// and read time live here rather than in package state, so several Ifaces
// can be sampled independently.
type Iface struct {
	Name string
	RX   *Channel
	TX   *Channel

	prev   netstat.Counters
	prevAt time.Time
	primed bool
	delay  time.Duration
	log    logger.Logger
}

// NewIface creates an Iface whose windows hold capacity samples. delay is
// the nominal sampling interval, used when wall time cannot be trusted.
func NewIface(name string, capacity int, delay time.Duration, log logger.Logger) *Iface {
	if log == nil {
		log = logger.Noop()
	}
	return &Iface{
		Name:  name,
		RX:    newChannel(DirRX, capacity),
		TX:    newChannel(DirTX, capacity),
		delay: delay,
		log:   log,
	}
}

// Primed reports whether a baseline read has been recorded.
func (i *Iface) Primed() bool {
	return i.primed
}

// Prime records the baseline counters without producing a sample.
func (i *Iface) Prime(c netstat.Counters, at time.Time) {
	i.prev, i.prevAt = c, at
	i.RX.Total, i.TX.Total = c.RX, c.TX
	i.primed = true
}

// Update turns a counter read into one sample per direction and pushes it.
// The first call only primes. A counter lower than the previous read yields
// a zero sample and becomes the new baseline.
func (i *Iface) Update(c netstat.Counters, at time.Time) Sample {
	if !i.primed {
		i.Prime(c, at)
		return Sample{}
	}

	elapsed := at.Sub(i.prevAt).Seconds()
	if elapsed <= 0 {
		elapsed = i.delay.Seconds()
	}

	var s Sample
	var reset bool
	s.RX, reset = rate(c.RX, i.prev.RX, elapsed)
	if reset {
		i.counterReset(i.RX, c.RX)
		s.Resets = append(s.Resets, DirRX)
	}
	s.TX, reset = rate(c.TX, i.prev.TX, elapsed)
	if reset {
		i.counterReset(i.TX, c.TX)
		s.Resets = append(s.Resets, DirTX)
	}

	i.prev, i.prevAt = c, at
	i.RX.Total, i.TX.Total = c.RX, c.TX
	i.RX.push(s.RX)
	i.TX.push(s.TX)
	return s
}

func (i *Iface) counterReset(ch *Channel, cur uint64) {
	ch.Resets++
	i.log.Warn("%s %s counter went backwards (%d -> %d), rebasing", i.Name, ch.Name, ch.Total, cur)
}

// rate returns bytes per second between two counter reads and whether the
// counter went backwards.
func rate(cur, prev uint64, elapsed float64) (float64, bool) {
	if cur < prev {
		return 0, true
	}
	if elapsed <= 0 {
		return 0, false
	}
	return float64(cur-prev) / elapsed, false
}

// Resize changes both windows to n samples, keeping the newest.
func (i *Iface) Resize(n int) {
	i.RX.Buffer.Resize(n)
	i.TX.Buffer.Resize(n)
	i.RX.refresh()
	i.TX.refresh()
}

// SetRunningPeak switches both channels between window max and running peak.
func (i *Iface) SetRunningPeak(on bool) {
	i.RX.Tracker.Running = on
	i.TX.Tracker.Running = on
	i.RX.refresh()
	i.TX.refresh()
}

// RunningPeak reports whether running-peak mode is on.
func (i *Iface) RunningPeak() bool {
	return i.RX.Tracker.Running
}

// ResetPeaks forgets the running peaks.
func (i *Iface) ResetPeaks() {
	i.RX.Tracker.Reset()
	i.TX.Tracker.Reset()
	i.RX.refresh()
	i.TX.refresh()
}

// Scales returns the graph scales for both directions under mode.
func (i *Iface) Scales(mode graph.ScaleMode) (rx, tx graph.Scale) {
	rxStats, txStats := i.RX.Stats, i.TX.Stats
	if mode.Synchronized() {
		series.Unify(&rxStats, &txStats)
	}
	return graph.Scale{Mode: mode, Min: rxStats.Min, Max: rxStats.Max},
		graph.Scale{Mode: mode, Min: txStats.Min, Max: txStats.Max}
}
