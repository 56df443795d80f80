// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI mirrors the product's main pages:
//  1. [LoginView] : sign-in prompt shown while the session is anonymous
//  2. [DashboardView] : greeting, capture totals, and recent words/tracks
//  3. [WordListView] : the captured word feed with search, sort, and language filter
//  4. [TrackListView] : the capture history with search, sort, and platform filter
//
// The [Model] implements bubbletea's standard Init/Update/View pattern.
// Protected views are gated on the session state: navigating to one while
// anonymous records the destination and shows the login view, and a
// successful sign-in returns to the recorded destination.
//
// Both list views paginate with a load-more feed. The trigger starts a
// debounced [tea.Tick]; re-triggering replaces the pending timer rather
// than stacking a second one, and an exhausted or pending feed ignores
// the trigger entirely.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
