package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/onewave/wavecli/internal/api"
	"github.com/onewave/wavecli/internal/shared"
)

// Capture records a track capture on the backend.
func (r *Runner) Capture(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	videoID := cmd.StringArg("video")
	if videoID == "" {
		return fmt.Errorf("%w: video ID", shared.ErrMissingArgument)
	}

	result, err := r.client.PostMusicHistory(ctx, api.CaptureRequest{
		VideoID:     videoID,
		Title:       cmd.String("title"),
		CaptureTime: cmd.Float("at"),
		Origin:      cmd.String("origin"),
	})
	if err != nil {
		return err
	}

	r.logger.Info("capture recorded", "id", result.ID)
	return r.writePlainln("✓ Capture recorded (%s)", result.ID)
}
