// Package roster renders roster views for the terminal.
package roster

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/roster-cli/internal/application"
	"github.com/bnema/roster-cli/internal/domain"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const capacityBarWidth = 10

func Render(view application.RosterView) (string, error) {
	return draw(screen{roster: &view})
}

func RenderCatalog(catalog *domain.RuleCatalog) (string, error) {
	if catalog == nil {
		return "", errors.New("rule catalog is required")
	}
	return draw(screen{catalog: catalog})
}

func renderView(view application.RosterView, s styles) string {
	lines := []string{
		s.title.Render(fmt.Sprintf("Roster: %s", view.Owner)),
		s.header.Render(countLine(view)),
	}

	if view.Total == 0 {
		lines = append(lines, s.empty.Render("No characters yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines,
		s.section.Render(characterTable(view.Characters, s)),
		s.section.Render(classLine(view.ClassCounts, s)),
		s.section.Render(roleLines(view.RoleCounts, s)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func countLine(view application.RosterView) string {
	if len(view.Characters) < view.Total {
		return fmt.Sprintf("characters: %d (showing %d)", view.Total, len(view.Characters))
	}
	return fmt.Sprintf("characters: %d", view.Total)
}

func characterTable(characters []domain.Character, s styles) string {
	headers := []string{"ID", "Name", "Class", "Position"}
	rows := make([]table.Row, 0, len(characters))
	for _, character := range characters {
		rows = append(rows, table.Row{
			strconv.FormatInt(int64(character.ID), 10),
			character.Name,
			string(character.Class),
			string(character.Role),
		})
	}

	columns := make([]table.Column, len(headers))
	for i, title := range headers {
		width := lipgloss.Width(title)
		for _, row := range rows {
			width = max(width, lipgloss.Width(row[i]))
		}
		columns[i] = table.Column{Title: title, Width: width}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithStyles(s.table),
		// header plus its bottom border
		table.WithHeight(len(rows)+2),
	)

	return t.View()
}

func classLine(counts []application.ClassCount, s styles) string {
	parts := make([]string, 0, len(counts))
	for _, count := range counts {
		parts = append(parts, fmt.Sprintf("%s %d", count.Class, count.Count))
	}
	return s.label.Render("classes: ") + s.meta.Render(strings.Join(parts, ", "))
}

func roleLines(counts []application.RoleCount, s styles) string {
	labelWidth := 0
	for _, count := range counts {
		labelWidth = max(labelWidth, len(count.Role))
	}

	lines := make([]string, 0, len(counts))
	for _, count := range counts {
		label := s.label.Render(fmt.Sprintf("%-*s", labelWidth, count.Role))
		if !count.Capped {
			lines = append(lines, label+" "+s.meta.Render(strconv.Itoa(count.Count)))
			continue
		}

		meta := s.meta.Render(fmt.Sprintf("%d/%d", count.Count, count.Max))
		if count.Count >= count.Max {
			meta = s.full.Render(fmt.Sprintf("%d/%d full", count.Count, count.Max))
		}
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			label,
			" ",
			renderCapacityBar(count.Count, count.Max, capacityBarWidth, s),
			" ",
			meta,
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderCapacityBar(count, limit, width int, s styles) string {
	if width <= 0 || limit <= 0 {
		return ""
	}

	filled := min(max(count*width/limit, 0), width)
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func renderCatalog(catalog *domain.RuleCatalog, s styles) string {
	lines := []string{s.title.Render("Positions")}

	for _, role := range catalog.Roles() {
		permitted := catalog.PermittedClasses(role)
		classes := make([]string, 0, len(permitted))
		for _, class := range permitted {
			classes = append(classes, string(class))
		}

		line := s.label.Render(string(role)+": ") + s.meta.Render(strings.Join(classes, ", "))
		if limit, ok := catalog.MaxCount(role); ok {
			line += s.header.Render(fmt.Sprintf(" (max %d)", limit))
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
