package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/felixgeelhaar/paceline/internal/infrastructure/wiring"
	"github.com/felixgeelhaar/paceline/pkg/domain/evm"
	"github.com/felixgeelhaar/paceline/pkg/domain/program"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive TUI dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		if os.Getenv("PACELINE_SKIP_DASHBOARD_RUN") == "true" {
			return nil
		}
		p := tea.NewProgram(initialModel())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("dashboard run failed: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(dashboardCmd)
}

// Styles
var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	PaddingLeft(1).
	PaddingRight(1)

var statusGood = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
var statusBad = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

type model struct {
	table      table.Model
	program    string
	health     *program.HealthReport
	metrics    *evm.Metrics
	trend      string
	violations int
	err        error
}

func initialModel() model {
	root, err := getProjectRoot()
	if err != nil {
		return model{err: err}
	}
	services, _ := wiring.BuildAppServices(root)

	p, err := services.Program.GetProgram()
	if err != nil {
		return model{err: MapError(err)}
	}

	m := model{program: p.Name}

	if metrics, _, err := services.Snapshots.Metrics(); err == nil {
		m.metrics = &metrics
	}
	if health, err := services.Snapshots.Health(); err == nil {
		m.health = &health
	}
	if trend, err := services.Trends.AnalyzeMetric(evm.MetricCPI, 0); err == nil {
		m.trend = formatTrendDirection(trend.Result.Direction)
	}
	if violations, err := services.Audit.VerifyIntegrity(); err == nil {
		m.violations = len(violations)
	}

	// Setup Table
	columns := []table.Column{
		{Title: "Status", Width: 12},
		{Title: "Activity", Width: 24},
		{Title: "Days", Width: 6},
		{Title: "Slack", Width: 6},
		{Title: "Critical", Width: 8},
	}

	rows := []table.Row{}
	if result, err := services.Schedule.ComputeSchedule(); err == nil {
		for _, a := range result.Activities {
			critical := ""
			if a.Critical {
				critical = "yes"
			}
			rows = append(rows, table.Row{
				string(a.Status), a.ID,
				fmt.Sprintf("%d", a.Duration), fmt.Sprintf("%d", a.Slack), critical,
			})
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229"))
	t.SetStyles(s)

	m.table = t
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error loading dashboard: %v\nPress q to quit.", m.err)
	}

	header := headerStyle.Render(fmt.Sprintf("%s | paceline", m.program))

	healthLine := "Health: no samples yet"
	if m.health != nil {
		healthLine = fmt.Sprintf("Health: %s (score %.0f)",
			renderHealthStatus(m.health.Status), m.health.Score)
	}

	metricsLine := "No metric samples yet"
	if m.metrics != nil {
		metricsLine = fmt.Sprintf("CPI %.3f  SPI %.3f  EAC %.2f",
			m.metrics.CPI, m.metrics.SPI, m.metrics.EstimateAtCompletion)
	}

	trendLine := "CPI trend: needs at least 2 snapshots"
	if m.trend != "" {
		trendLine = fmt.Sprintf("CPI trend: %s", m.trend)
	}

	chainLine := statusGood.Render("Audit chain: OK")
	if m.violations > 0 {
		chainLine = statusBad.Render(fmt.Sprintf("Audit chain: %d violations", m.violations))
	}

	return baseStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			healthLine,
			metricsLine,
			trendLine,
			chainLine,
			"\nSchedule:",
			m.table.View(),
			"\n[q] Quit  [Up/Down] Navigate",
		),
	) + "\n"
}
