package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/topoviz/topoviz/pkg/discovery"
	"github.com/topoviz/topoviz/pkg/pipeline"
	"github.com/topoviz/topoviz/pkg/topo"
)

// newWatchCmd creates the watch command: a terminal dashboard that
// polls the snapshot on an interval and shows per-category statistics.
func newWatchCmd() *cobra.Command {
	var flags passFlags
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch <snapshot>",
		Short: "Watch topology statistics in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd, configFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			return runWatch(cmd.Context(), args[0], interval, opts)
		},
	}

	addPassFlags(cmd, &flags)
	cmd.Flags().DurationVarP(&interval, "interval", "n", 2*time.Second, "poll interval")

	return cmd
}

// runWatch runs the bubbletea program until quit or cancellation.
func runWatch(ctx context.Context, path string, interval time.Duration, opts pipeline.Options) error {
	m := watchModel{
		path:     path,
		interval: interval,
		opts:     opts,
	}
	_, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// watchRow is one category line in the dashboard table.
type watchRow struct {
	category    topo.Category
	channels    int
	unconnected int
}

// watchStats is the result of one polling pass.
type watchStats struct {
	nodes int
	rows  []watchRow
	err   error
	at    time.Time
}

// tickMsg requests the next polling pass.
type tickMsg time.Time

// watchModel is the bubbletea model for the watch dashboard.
type watchModel struct {
	path     string
	interval time.Duration
	opts     pipeline.Options

	stats  watchStats
	polled bool
}

func (m watchModel) Init() tea.Cmd {
	return m.poll
}

// poll runs one statistics pass per category so the dashboard can show
// channel and unconnected counts broken down by kind. No document is
// rendered here; serialization cost is negligible next to discovery.
func (m watchModel) poll() tea.Msg {
	stats := watchStats{at: time.Now()}

	snap, err := discovery.ReadSnapshotFile(m.path)
	if err != nil {
		stats.err = err
		return stats
	}

	selected := m.opts.Categories
	if len(selected) == 0 {
		selected = topo.AllCategories
	}
	for _, cat := range selected {
		opts := m.opts
		opts.Categories = []topo.Category{cat}
		res, err := pipeline.Run(context.Background(), discovery.NewProvider(snap), opts)
		if err != nil {
			stats.err = err
			return stats
		}
		stats.nodes = res.Stats.NodeCount
		stats.rows = append(stats.rows, watchRow{
			category:    cat,
			channels:    res.Stats.ChannelCount,
			unconnected: res.Stats.Unconnected,
		})
	}
	return stats
}

func (m watchModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			return m, m.poll
		}
	case watchStats:
		m.stats = msg
		m.polled = true
		return m, m.tick()
	case tickMsg:
		return m, m.poll
	}
	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Topology Watch"))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(m.path))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("every %s  ·  r refresh  ·  q quit", m.interval)))
	b.WriteString("\n\n")

	if !m.polled {
		b.WriteString(StyleDim.Render("  waiting for first pass..."))
		b.WriteString("\n")
		return b.String()
	}

	if m.stats.err != nil {
		b.WriteString(StyleWarning.Render(fmt.Sprintf("  %s %v", iconWarning, m.stats.err)))
		b.WriteString("\n")
		return b.String()
	}

	rows := [][]string{}
	for _, row := range m.stats.rows {
		rows = append(rows, []string{
			row.category.String(),
			fmt.Sprintf("%d", row.channels),
			fmt.Sprintf("%d", row.unconnected),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Category", "Channels", "Unconnected").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col > 0 {
				return lipgloss.NewStyle().Foreground(colorWhite).Align(lipgloss.Right)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d nodes  ·  updated %s",
		m.stats.nodes, m.stats.at.Format("15:04:05"))))
	b.WriteString("\n")

	return b.String()
}
