package interest

import (
	"fmt"
	"strings"

	interestdto "ancare/internal/modules/interest/dto"
	"ancare/internal/ui/theme"
)

// Model shows the per-variant totals, highest first.
type Model struct {
	state   string
	events  int
	ranking []interestdto.RankingEntry
	cursor  int
}

func New() Model {
	return Model{state: interestdto.StateAbsent}
}

func (m *Model) SetLog(log interestdto.LogOutput, ranking []interestdto.RankingEntry) {
	m.state = log.State
	m.events = len(log.Events)
	m.ranking = ranking
	if m.cursor >= len(ranking) {
		m.cursor = len(ranking) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) Move(delta int) {
	m.cursor += delta
	if m.cursor >= len(m.ranking) {
		m.cursor = len(m.ranking) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// SelectedVariant returns the variant under the cursor.
func (m Model) SelectedVariant() (string, bool) {
	if len(m.ranking) == 0 {
		return "", false
	}
	return m.ranking[m.cursor].Variant, true
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Nachfrage Tracking") + "\n")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%d Einträge", m.events)) + "\n\n")
	if len(m.ranking) == 0 {
		sb.WriteString(theme.Muted.Render("Noch keine Nachfrage erfasst.") + "\n")
	}
	for i, r := range m.ranking {
		line := fmt.Sprintf("%-24s %s", r.Variant, theme.Price.Render(fmt.Sprintf("%d", r.Count)))
		if i == m.cursor {
			sb.WriteString(theme.Selected.Render("> ") + line + "\n")
			continue
		}
		sb.WriteString("  " + line + "\n")
	}
	return theme.Pane.Render(sb.String())
}
