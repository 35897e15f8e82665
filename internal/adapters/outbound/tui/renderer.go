package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rsr-standard/rsrcheck/internal/domain"
)

// ── warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	levelColors = map[domain.Level]lipgloss.Color{
		domain.Platinum:     lipgloss.Color("#C084FC"), // purple
		domain.Gold:         lipgloss.Color("#FACC15"), // gold
		domain.Silver:       lipgloss.Color("#A1A1AA"), // silver
		domain.Bronze:       lipgloss.Color("#FB923C"), // bronze-orange
		domain.NonCompliant: danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// legend describes the four tiers; printed verbatim under every report.
var legend = []string{
	"Bronze: 100% of Bronze requirements",
	"Silver: 100% of Bronze + 100% of Silver requirements",
	"Gold: Silver + 66%+ of Gold requirements",
	"Platinum: Gold + 66%+ of Platinum requirements",
}

// RenderReport formats a full compliance report for the terminal.
func RenderReport(report *domain.Report) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("rsrcheck")
	subtitle := dimStyle.Render("RSR Compliance Report")
	repo := faintStyle.Render(report.Repository)
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n" + repo))
	b.WriteString("\n\n")

	// ── Levels ──
	for i, level := range domain.ChecklistLevels {
		renderLevel(&b, report, level)
		if i < len(domain.ChecklistLevels)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Overall banner ──
	overall := report.OverallLevel()
	overallStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(levelColor(overall)).
		Render(overall.String())
	b.WriteString(boxStyle.Render(dimStyle.Render("OVERALL COMPLIANCE LEVEL") + "\n\n" + overallStyled))
	b.WriteString("\n\n")

	// ── Legend ──
	b.WriteString("  " + titleStyle.Render("Compliance Levels") + "\n")
	for _, line := range legend {
		b.WriteString("    " + dimStyle.Render("• "+line) + "\n")
	}

	b.WriteString("\n")
	return b.String()
}

func renderLevel(b *strings.Builder, report *domain.Report, level domain.Level) {
	score := report.Score(level)

	name := lipgloss.NewStyle().
		Bold(true).
		Foreground(levelColor(level)).
		Render(padRight(level.String()+" Level", 16))
	bar := coloredBar(score.Percentage, 20)
	tally := titleStyle.Render(fmt.Sprintf("%d/%d", score.Passed, score.Total))
	pct := dimStyle.Render(fmt.Sprintf("(%.1f%%)", score.Percentage))

	fmt.Fprintf(b, "  %s %s %s  %s %s\n", levelIcon(score.Percentage), name, bar, tally, pct)

	for _, check := range report.Checks(level) {
		renderCheck(b, check)
	}
}

func renderCheck(b *strings.Builder, check domain.Check) {
	glyph := failStyle.Render("✗")
	if check.Status {
		glyph = passStyle.Render("✓")
	}
	fmt.Fprintf(b, "    [%s] %s\n", glyph, check.Name)
	if check.Details != "" {
		fmt.Fprintf(b, "        %s\n", faintStyle.Render(check.Details))
	}
}

func levelIcon(percentage float64) string {
	switch {
	case percentage == 100:
		return passStyle.Render("●")
	case percentage >= 50:
		return warnStyle.Render("●")
	default:
		return failStyle.Render("●")
	}
}

func coloredBar(percentage float64, width int) string {
	filled := int(percentage) * width / 100
	filled = max(0, min(filled, width))
	empty := width - filled

	color := percentageColor(percentage)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := faintStyle.Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func percentageColor(percentage float64) lipgloss.Color {
	switch {
	case percentage == 100:
		return success
	case percentage >= 50:
		return warning
	default:
		return danger
	}
}

func levelColor(level domain.Level) lipgloss.Color {
	if c, ok := levelColors[level]; ok {
		return c
	}
	return fg
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
