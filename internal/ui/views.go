package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/onewave/wavecli/internal/models"
)

func (m *Model) renderLogin() string {
	title := styles.title.Render("OneWave")
	body := strings.Join([]string{
		"Sign in to see your captured words and tracks.",
		"",
		"Run `wavecli auth login` in another terminal,",
		"then restart the TUI.",
	}, "\n")

	if m.err != nil {
		body += "\n\n" + styles.err.Render(fmt.Sprintf("Error: %v", m.err))
	}

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.bypass, m.keys.quit})
	return fmt.Sprintf("%s\n%s\n\n%s", title, body, helpView)
}

func (m *Model) renderDashboard() string {
	if m.loading {
		return styles.help.Render("Loading your data...")
	}

	user := m.store.User()
	dash := m.store.Dashboard()

	title := styles.title.Render(fmt.Sprintf("[%s] %s님, 환영합니다", user.AvatarText, dash.GreetingName))
	totals := fmt.Sprintf("Words captured: %s   Tracks: %s",
		styles.ok.Render(fmt.Sprintf("%d", dash.TotalWords)),
		styles.ok.Render(fmt.Sprintf("%d", dash.TotalTracks)))

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(totals)
	b.WriteString("\n\n")

	b.WriteString(styles.accent.Render("Recent words"))
	b.WriteString("\n")
	recents := m.store.RecentWords(3)
	if len(recents) == 0 {
		b.WriteString(styles.help.Render("  nothing captured yet"))
		b.WriteString("\n")
	}
	for _, w := range recents {
		b.WriteString(fmt.Sprintf("  %s — %s  %s\n", w.Word, w.Meaning, styles.help.Render(w.AddedAt)))
	}

	b.WriteString("\n")
	b.WriteString(styles.accent.Render("Recent tracks"))
	b.WriteString("\n")
	for _, t := range m.store.RecentTracks(2) {
		b.WriteString(fmt.Sprintf("  %s %s — %s  %s\n", swatch(t.CoverStart), t.Title, t.Artist, styles.help.Render(t.CapturedAt)))
	}

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.words, m.keys.tracks, m.keys.quit})
	return fmt.Sprintf("%s\n%s", b.String(), helpView)
}

func (m *Model) renderWordList() string {
	words := m.store.WordView()
	visible := m.wordFeed.Visible(len(words))
	sel := m.store.Selection()

	var b strings.Builder
	b.WriteString(styles.title.Render("Captured words"))
	b.WriteString("\n")
	b.WriteString(m.renderListHeader(fmt.Sprintf("sort: %s  language: %s", sel.WordSort, sel.Language)))

	if len(words) == 0 {
		b.WriteString(styles.help.Render("no words match"))
		b.WriteString("\n")
	}
	for _, w := range words[:visible] {
		line := fmt.Sprintf("%-16s %-14s %s", w.Word, w.Meaning, styles.help.Render(w.PartOfSpeech))
		meta := fmt.Sprintf("    %s — %s  ×%d  %s", w.Artist, w.Song, w.Frequency, w.AddedAt)
		b.WriteString(line)
		b.WriteString("\n")
		b.WriteString(styles.help.Render(meta))
		b.WriteString("\n")
	}

	b.WriteString(m.renderFeedFooter(visible, len(words), m.wordFeed.Pending()))
	return b.String()
}

func (m *Model) renderTrackList() string {
	tracks := m.store.TrackView()
	visible := m.trackFeed.Visible(len(tracks))
	sel := m.store.Selection()

	var b strings.Builder
	b.WriteString(styles.title.Render("Capture history"))
	b.WriteString("\n")
	b.WriteString(m.renderListHeader(fmt.Sprintf("sort: %s  platform: %s", sel.TrackSort, sel.Platform)))

	if len(tracks) == 0 {
		b.WriteString(styles.help.Render("no tracks match"))
		b.WriteString("\n")
	}
	for _, t := range tracks[:visible] {
		b.WriteString(fmt.Sprintf("%s %s — %s\n", swatch(t.CoverStart), t.Title, t.Artist))
		meta := fmt.Sprintf("     %s  %d words  %s", platformLabel(t.Platform), t.ExtractedWords, t.CapturedAt)
		b.WriteString(styles.help.Render(meta))
		b.WriteString("\n")
	}

	b.WriteString(m.renderFeedFooter(visible, len(tracks), m.trackFeed.Pending()))
	return b.String()
}

func (m *Model) renderListHeader(selections string) string {
	var b strings.Builder
	if m.searching || m.searchInput.Value() != "" {
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	}
	b.WriteString(styles.help.Render(selections))
	b.WriteString("\n\n")
	return b.String()
}

func (m *Model) renderFeedFooter(visible, total int, pending bool) string {
	status := fmt.Sprintf("showing %d of %d", visible, total)
	if pending {
		status += "  loading more..."
	} else if visible < total {
		status += "  press m for more"
	}

	helpView := m.help.ShortHelpView([]key.Binding{
		m.keys.search, m.keys.sort, m.keys.filter, m.keys.more, m.keys.back, m.keys.quit,
	})
	return fmt.Sprintf("\n%s\n%s", styles.help.Render(status), helpView)
}

func platformLabel(p models.Platform) string {
	switch p {
	case models.PlatformSpotify:
		return "Spotify"
	case models.PlatformApple:
		return "Apple Music"
	default:
		return "YouTube"
	}
}
