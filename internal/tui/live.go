package tui

import (
	"fmt"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/buddhabrot/internal/density"
	"github.com/san-kum/buddhabrot/internal/viz"
)

const (
	tickInterval    = 100 * time.Millisecond
	historyCapacity = 120
	barWidth        = 40
)

var channelNames = [density.NumChannels]string{"red", "green", "blue"}

// Tracker collects per-channel progress from render worker goroutines.
// Its Update method is the density.Job Progress callback.
type Tracker struct {
	totals [density.NumChannels]int64
	done   [density.NumChannels]atomic.Int64
}

func NewTracker(totals [density.NumChannels]int64) *Tracker {
	return &Tracker{totals: totals}
}

// Update is safe for concurrent use; progress is monotonic per channel.
func (t *Tracker) Update(channel int, done, total int64) {
	for {
		prev := t.done[channel].Load()
		if done <= prev || t.done[channel].CompareAndSwap(prev, done) {
			return
		}
	}
}

func (t *Tracker) snapshot() (done [density.NumChannels]int64, total int64, sum int64) {
	for c := range t.totals {
		done[c] = t.done[c].Load()
		total += t.totals[c]
		sum += done[c]
	}
	return
}

type TickMsg time.Time

type doneMsg struct{ err error }

// Model is the live render progress view: one bar per channel, a
// samples/sec sparkline, elapsed time.
type Model struct {
	tracker  *Tracker
	finished <-chan error

	started  time.Time
	lastSum  int64
	lastTick time.Time
	rates    []float64

	err    error
	closed bool
}

func NewModel(tracker *Tracker, finished <-chan error) Model {
	now := time.Now()
	return Model{
		tracker:  tracker,
		finished: finished,
		started:  now,
		lastTick: now,
		rates:    make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), m.waitFinished())
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) waitFinished() tea.Cmd {
	return func() tea.Msg { return doneMsg{err: <-m.finished} }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case TickMsg:
		now := time.Time(msg)
		_, _, sum := m.tracker.snapshot()

		dt := now.Sub(m.lastTick).Seconds()
		if dt > 0 {
			m.rates = append(m.rates, float64(sum-m.lastSum)/dt)
			if len(m.rates) > historyCapacity {
				m.rates = m.rates[1:]
			}
		}
		m.lastSum = sum
		m.lastTick = now
		return m, m.tick()

	case doneMsg:
		m.err = msg.err
		m.closed = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) View() string {
	done, _, _ := m.tracker.snapshot()

	s := viz.Title.Render("buddhabrot render") + "\n\n"
	for c := 0; c < density.NumChannels; c++ {
		total := m.tracker.totals[c]
		pct := 1.0
		if total > 0 {
			pct = float64(done[c]) / float64(total)
		}
		s += fmt.Sprintf("%s %s %s\n",
			viz.ChannelStyles[c].Render(fmt.Sprintf("%-5s", channelNames[c])),
			viz.ProgressBar(pct, barWidth),
			viz.MetricValue.Render(fmt.Sprintf("%5.1f%%", pct*100)),
		)
	}

	s += "\n" + viz.MetricLabel.Render("samples/s ") + viz.SparklineChart(m.rates, barWidth) + "\n"
	s += viz.MetricLabel.Render("elapsed   ") +
		viz.MetricValue.Render(time.Since(m.started).Truncate(time.Second).String()) + "\n"

	if m.closed {
		if m.err != nil {
			s += "\n" + viz.SparkLow.Render("render failed: "+m.err.Error()) + "\n"
		} else {
			s += "\n" + viz.SparkHigh.Render("done") + "\n"
		}
	} else {
		s += "\n" + viz.Subtle.Render("q to abort") + "\n"
	}
	return s
}

// Err reports the render error after the program finishes.
func (m Model) Err() error { return m.err }

// Run drives the live view until the render completes or the user quits.
func Run(tracker *Tracker, finished <-chan error) error {
	final, err := tea.NewProgram(NewModel(tracker, finished)).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
