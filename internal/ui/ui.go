package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/onewave/wavecli/internal/models"
	"github.com/onewave/wavecli/internal/session"
	"github.com/onewave/wavecli/internal/shared"
	"github.com/onewave/wavecli/internal/store"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	LoginView ViewState = iota
	DashboardView
	WordListView
	TrackListView
)

// destination names recorded by the session gate for post-login return.
const (
	destDashboard = "dashboard"
	destWords     = "words"
	destTracks    = "tracks"
)

// loadMoreDelay debounces the load-more trigger.
const loadMoreDelay = 300 * time.Millisecond

type appDataLoadedMsg struct{}

// loadMoreTickMsg fires when a load-more debounce settles. seq
// identifies the timer generation; stale generations are ignored so a
// replaced timer can never grow the feed.
type loadMoreTickMsg struct {
	seq int
}

// Model represents the TUI application state.
type Model struct {
	ctx    context.Context
	view   ViewState
	store  *store.Store
	gate   *session.Gate
	width  int
	height int

	searchInput textinput.Model
	searching   bool

	wordFeed  *store.Feed
	trackFeed *store.Feed
	loadSeq   int

	loading bool
	err     error
	help    help.Model
	keys    keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, st *store.Store, gate *session.Gate, lists shared.ListsConfig) *Model {
	input := textinput.New()
	input.Placeholder = "search words, meanings, artists"
	input.CharLimit = 64

	m := &Model{
		ctx:         ctx,
		store:       st,
		gate:        gate,
		searchInput: input,
		wordFeed:    store.NewFeed(lists.WordInitialCount, lists.WordPageSize),
		trackFeed:   store.NewFeed(lists.TrackInitialCount, lists.TrackPageSize),
		help:        help.New(),
		keys:        newKeyMap(),
	}

	if gate.IsAuthenticated() {
		m.view = DashboardView
	} else {
		m.view = LoginView
	}
	return m
}

// Init triggers the bulk load when a session already exists.
func (m *Model) Init() tea.Cmd {
	if m.view == LoginView {
		return nil
	}
	m.loading = true
	return m.loadAppData()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKeys(msg)
		}
		switch m.view {
		case LoginView:
			return m.handleLoginKeys(msg)
		case DashboardView:
			return m.handleDashboardKeys(msg)
		case WordListView, TrackListView:
			return m.handleListKeys(msg)
		}

	case appDataLoadedMsg:
		m.loading = false
		return m, nil

	case loadMoreTickMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		switch m.view {
		case WordListView:
			m.wordFeed.Settle(len(m.store.WordView()))
		case TrackListView:
			m.trackFeed.Settle(len(m.store.TrackView()))
		}
		return m, nil
	}

	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case LoginView:
		return m.renderLogin()
	case DashboardView:
		return m.renderDashboard()
	case WordListView:
		return m.renderWordList()
	case TrackListView:
		return m.renderTrackList()
	default:
		return ""
	}
}

// navigate switches to a protected view, detouring through login when
// the session is anonymous.
func (m *Model) navigate(view ViewState, dest string) tea.Cmd {
	if !m.gate.IsAuthenticated() {
		m.gate.Require(dest)
		m.view = LoginView
		return nil
	}
	m.view = view
	m.resetListState()
	return nil
}

// afterSignIn returns to the destination recorded before the login
// detour, defaulting to the dashboard.
func (m *Model) afterSignIn() tea.Cmd {
	switch m.gate.ConsumeDestination() {
	case destWords:
		m.view = WordListView
	case destTracks:
		m.view = TrackListView
	default:
		m.view = DashboardView
	}
	m.resetListState()
	m.loading = true
	return m.loadAppData()
}

// resetListState clears the selection and both feeds, and invalidates
// any pending load-more timer.
func (m *Model) resetListState() {
	m.store.ResetSelections()
	m.searchInput.SetValue("")
	m.searching = false
	m.wordFeed.Reset()
	m.trackFeed.Reset()
	m.loadSeq++
}

// resetFeeds restarts pagination after a selection change.
func (m *Model) resetFeeds() {
	m.wordFeed.Reset()
	m.trackFeed.Reset()
	m.loadSeq++
}

func (m *Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "b":
		if err := m.gate.SignInBypass(); err != nil {
			m.err = err
			return m, nil
		}
		return m, m.afterSignIn()
	}
	return m, nil
}

func (m *Model) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "2":
		return m, m.navigate(WordListView, destWords)
	case "3":
		return m, m.navigate(TrackListView, destTracks)
	case "r":
		m.loading = true
		return m, m.loadAppData()
	}
	return m, nil
}

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "1":
		return m, m.navigate(DashboardView, destDashboard)
	case "2":
		return m, m.navigate(WordListView, destWords)
	case "3":
		return m, m.navigate(TrackListView, destTracks)
	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink
	case "s":
		m.cycleSort()
		m.resetFeeds()
		return m, nil
	case "f":
		m.cycleFilter()
		m.resetFeeds()
		return m, nil
	case "m", "pgdown":
		return m, m.triggerLoadMore()
	}
	return m, nil
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.store.Selection().Query != m.searchInput.Value() {
		m.store.SetQuery(m.searchInput.Value())
		m.resetFeeds()
	}
	return m, cmd
}

// triggerLoadMore grows the visible feed after a debounce. Re-triggering
// while a timer is pending replaces it: the sequence number advances and
// the superseded tick is dropped on arrival.
func (m *Model) triggerLoadMore() tea.Cmd {
	feed := m.wordFeed
	total := len(m.store.WordView())
	if m.view == TrackListView {
		feed = m.trackFeed
		total = len(m.store.TrackView())
	}

	if feed.Exhausted(total) {
		return nil
	}
	feed.More(total)

	m.loadSeq++
	seq := m.loadSeq
	return tea.Tick(loadMoreDelay, func(time.Time) tea.Msg {
		return loadMoreTickMsg{seq: seq}
	})
}

func (m *Model) cycleSort() {
	if m.view == WordListView {
		switch m.store.Selection().WordSort {
		case models.WordSortLatest:
			m.store.SetWordSort(models.WordSortFrequency)
		case models.WordSortFrequency:
			m.store.SetWordSort(models.WordSortAlphabet)
		default:
			m.store.SetWordSort(models.WordSortLatest)
		}
		return
	}

	m.store.UpdateTrackSort(func(prev models.TrackSort) models.TrackSort {
		switch prev {
		case models.TrackSortLatest:
			return models.TrackSortTitle
		case models.TrackSortTitle:
			return models.TrackSortWords
		default:
			return models.TrackSortLatest
		}
	})
}

func (m *Model) cycleFilter() {
	if m.view == WordListView {
		switch m.store.Selection().Language {
		case models.LanguageAll:
			m.store.SetLanguage(models.LanguageEnglish)
		case models.LanguageEnglish:
			m.store.SetLanguage(models.LanguageJapanese)
		case models.LanguageJapanese:
			m.store.SetLanguage(models.LanguageKorean)
		default:
			m.store.SetLanguage(models.LanguageAll)
		}
		return
	}

	switch m.store.Selection().Platform {
	case models.PlatformAll:
		m.store.SetPlatformFilter(models.PlatformYouTube)
	case models.PlatformYouTube:
		m.store.SetPlatformFilter(models.PlatformSpotify)
	case models.PlatformSpotify:
		m.store.SetPlatformFilter(models.PlatformApple)
	default:
		m.store.SetPlatformFilter(models.PlatformAll)
	}
}

func (m *Model) loadAppData() tea.Cmd {
	return func() tea.Msg {
		m.store.LoadAppData(m.ctx)
		return appDataLoadedMsg{}
	}
}
