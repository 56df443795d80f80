package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/onewave/wavecli/internal/models"
	"github.com/onewave/wavecli/internal/shared"
	"github.com/onewave/wavecli/internal/store"
)

// TracksList prints one page of the filtered capture history.
func (r *Runner) TracksList(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	r.store.LoadAppData(ctx)

	r.store.ResetSelections()
	r.store.SetQuery(cmd.String("search"))

	switch sort := models.TrackSort(cmd.String("sort")); sort {
	case models.TrackSortLatest, models.TrackSortTitle, models.TrackSortWords:
		r.store.SetTrackSort(sort)
	default:
		return fmt.Errorf("%w: unknown sort %q", shared.ErrInvalidFlag, sort)
	}

	platformFlag := cmd.String("platform")
	switch platform := models.Platform(strings.ToLower(platformFlag)); platform {
	case models.PlatformYouTube, models.PlatformSpotify, models.PlatformApple:
		r.store.SetPlatformFilter(platform)
	default:
		if !strings.EqualFold(platformFlag, string(models.PlatformAll)) {
			return fmt.Errorf("%w: unknown platform %q", shared.ErrInvalidFlag, platformFlag)
		}
	}

	tracks := r.store.TrackView()

	if cmd.Bool("json") {
		return r.writeJSON(tracks, cmd.Bool("pretty"))
	}

	pager := store.NewPager(r.config.Lists.TrackPageSize)
	pager.SetPage(int(cmd.Int("page")))
	start, end := pager.Bounds(len(tracks))

	if len(tracks) == 0 {
		r.writePlainHeader("Tracks 0 of 0")
		return r.writePlainln("no tracks match")
	}
	r.writePlainHeader(fmt.Sprintf("Tracks %d-%d of %d (page %d/%d)",
		start+1, end, len(tracks), pager.Page(len(tracks)), pager.TotalPages(len(tracks))))
	for _, t := range tracks[start:end] {
		r.writePlainln("#%d %s — %s", t.ID, t.Title, t.Artist)
		r.writePlainln("    %s  %d words  %s  %s", t.Platform, t.ExtractedWords, t.CapturedAt, t.Source)
	}
	return nil
}
