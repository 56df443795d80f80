package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/onewave/wavecli/internal/api"
	"github.com/onewave/wavecli/internal/identity"
	"github.com/onewave/wavecli/internal/shared"
)

// ProfileShow prints the resolved display identity next to the raw
// backend profile.
func (r *Runner) ProfileShow(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	profile, err := r.client.Profile(ctx)
	if err != nil {
		return err
	}

	var backendName, backendEmail string
	if profile != nil {
		backendName = profile.DisplayName
		backendEmail = profile.Email
	}
	tok := identity.ProfileFromToken(r.gate.Token())
	name, email, avatar := identity.Resolve(backendName, backendEmail, tok)

	if cmd.Bool("json") {
		return r.writeJSON(map[string]any{
			"resolved": map[string]string{"name": name, "email": email, "avatarText": avatar},
			"backend":  profile,
		}, true)
	}

	r.writePlainHeader("Profile")
	r.writePlainln("Display name: %s", name)
	r.writePlainln("Email: %s", email)
	r.writePlainln("Avatar: %s", avatar)
	if profile != nil && profile.Settings != nil {
		s := profile.Settings
		r.writePlainln("")
		r.writePlainln("Learning preferences:")
		r.writePlainln("  language: %s  level: %s", s.Language, s.Level)
		r.writePlainln("  max words: %d  min length: %d", s.MaxWords, s.MinLength)
	}
	return nil
}

// ProfileSettings patches the learning preferences on the backend.
func (r *Runner) ProfileSettings(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	var patch api.SettingsPatch
	changed := false
	if cmd.IsSet("language") {
		v := cmd.String("language")
		patch.Language = &v
		changed = true
	}
	if cmd.IsSet("level") {
		v := cmd.String("level")
		patch.Level = &v
		changed = true
	}
	if cmd.IsSet("max-words") {
		v := int(cmd.Int("max-words"))
		patch.MaxWords = &v
		changed = true
	}
	if cmd.IsSet("min-length") {
		v := int(cmd.Int("min-length"))
		patch.MinLength = &v
		changed = true
	}
	if !changed {
		return fmt.Errorf("%w: nothing to update, pass at least one flag", shared.ErrMissingArgument)
	}

	settings, err := r.client.UpdateSettings(ctx, patch)
	if err != nil {
		return err
	}

	r.writePlainln("✓ Settings updated")
	if settings != nil {
		r.writePlainln("  language: %s  level: %s  max words: %d  min length: %d",
			settings.Language, settings.Level, settings.MaxWords, settings.MinLength)
	}
	return nil
}
