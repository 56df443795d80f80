package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

// Dashboard prints the greeting, totals, and recent activity.
func (r *Runner) Dashboard(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	r.store.LoadAppData(ctx)

	dash := r.store.Dashboard()
	user := r.store.User()

	if cmd.Bool("json") {
		return r.writeJSON(map[string]any{
			"user":      user,
			"dashboard": dash,
			"recentWords":  r.store.RecentWords(3),
			"recentTracks": r.store.RecentTracks(2),
		}, true)
	}

	r.writePlainHeader(dash.GreetingName + "님, 환영합니다")
	r.writePlainln("Words captured: %d", dash.TotalWords)
	r.writePlainln("Tracks: %d", dash.TotalTracks)

	r.writePlainln("")
	r.writePlainln("Recent words:")
	for _, w := range r.store.RecentWords(3) {
		r.writePlainln("  %s — %s  (%s)", w.Word, w.Meaning, w.AddedAt)
	}

	r.writePlainln("")
	r.writePlainln("Recent tracks:")
	for _, t := range r.store.RecentTracks(2) {
		r.writePlainln("  %s — %s  (%s)", t.Title, t.Artist, t.CapturedAt)
	}
	return nil
}
