package podcast

import (
	"fmt"
	"strings"

	podcastdto "ancare/internal/modules/podcast/dto"
	"ancare/internal/ui/theme"
)

type Model struct {
	episodes []podcastdto.EpisodeOutput
}

func New() Model {
	return Model{}
}

func (m *Model) SetEpisodes(episodes []podcastdto.EpisodeOutput) {
	m.episodes = episodes
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Podcast") + "\n\n")
	if len(m.episodes) == 0 {
		sb.WriteString(theme.Muted.Render("Keine Folgen gespeichert. ancare podcast seed legt sie an.") + "\n")
	}
	for _, e := range m.episodes {
		sb.WriteString(fmt.Sprintf("#%d %s  %s\n", e.Number, theme.Selected.Render(e.Title), theme.Muted.Render(e.Duration+" · "+e.Published)))
		if e.Summary != "" {
			sb.WriteString("   " + e.Summary + "\n")
		}
	}
	return theme.Pane.Render(sb.String())
}
