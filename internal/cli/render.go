package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/m04kA/SMC-PoolService/internal/integrations/poolapi"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)

	statusStyles = map[string]lipgloss.Style{
		"available":          lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		"partially_occupied": lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		"full":               lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		"maintenance":        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
)

var laneColumns = []struct {
	title string
	width int
}{
	{"LANE", 6},
	{"STATUS", 20},
	{"OCCUPANCY", 11},
	{"CLASS", 15},
	{"WINDOW", 13},
}

func renderLanes(lanes []poolapi.Lane) string {
	var b strings.Builder

	header := make([]string, 0, len(laneColumns))
	for _, col := range laneColumns {
		header = append(header, cellStyle.Width(col.width).Render(headerStyle.Render(col.title)))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteString("\n")

	for _, lane := range lanes {
		status := lane.Status
		if style, ok := statusStyles[lane.Status]; ok {
			status = style.Render(lane.Status)
		}

		class, window := "-", "-"
		if lane.ClassType != nil {
			class = *lane.ClassType
		}
		if lane.StartTime != nil && lane.EndTime != nil {
			window = *lane.StartTime + "-" + *lane.EndTime
		}

		cells := []string{
			fmt.Sprintf("%d", lane.Number),
			status,
			fmt.Sprintf("%d/%d", lane.Occupancy, lane.Capacity),
			class,
			window,
		}
		row := make([]string, 0, len(cells))
		for i, cell := range cells {
			row = append(row, cellStyle.Width(laneColumns[i].width).Render(cell))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		b.WriteString("\n")
	}
	return b.String()
}

func renderStats(s *poolapi.Stats) string {
	rows := [][2]string{
		{"Lanes", fmt.Sprintf("%d", s.TotalLanes)},
		{"In use", fmt.Sprintf("%d", s.LanesInUse)},
		{"Available", fmt.Sprintf("%d", s.LanesAvailable)},
		{"Maintenance", fmt.Sprintf("%d", s.LanesInMaintenance)},
		{"Swimmers", fmt.Sprintf("%d/%d", s.CurrentOccupancy, s.TotalCapacity)},
		{"Occupancy", fmt.Sprintf("%.1f%%", s.OccupancyPercent)},
		{"Free places", fmt.Sprintf("%d", s.RemainingCapacity)},
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(cellStyle.Width(14).Render(headerStyle.Render(row[0])))
		b.WriteString(row[1])
		b.WriteString("\n")
	}
	return b.String()
}
