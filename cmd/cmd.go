// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// authCommand handles sign-in, sign-out, and session inspection
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage the OneWave session",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Sign in with Google via the browser",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Usage: "Loopback address for the sign-in callback",
						Value: "127.0.0.1:8400",
					},
					&cli.BoolFlag{
						Name:  "no-browser",
						Usage: "Print the sign-in URL instead of opening a browser",
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "logout",
				Usage:  "Sign out and clear all cached credentials",
				Action: r.AuthLogout,
			},
			{
				Name:   "status",
				Usage:  "Show the current session state",
				Action: r.AuthStatus,
			},
			{
				Name:   "bypass",
				Usage:  "Mark the session signed-in without a backend (offline browsing)",
				Action: r.AuthBypass,
			},
		},
	}
}

// dashboardCommand renders the greeting and capture totals
func dashboardCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "dashboard",
		Aliases: []string{"dash"},
		Usage:   "Show capture totals and recent activity",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Dashboard,
	}
}

// wordsCommand handles captured word operations
func wordsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "words",
		Aliases: []string{"w"},
		Usage:   "Captured word operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List captured words",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "search",
						Aliases: []string{"q"},
						Usage:   "Filter by word, meaning, or artist substring",
					},
					&cli.StringFlag{
						Name:  "sort",
						Usage: "Sort order: latest, frequency, alphabet",
						Value: "latest",
					},
					&cli.StringFlag{
						Name:    "language",
						Aliases: []string{"l"},
						Usage:   "Language filter: ALL, ENGLISH, JAPANESE, KOREAN",
						Value:   "ALL",
					},
					&cli.IntFlag{
						Name:    "page",
						Aliases: []string{"p"},
						Usage:   "Page number",
						Value:   1,
					},
					&cli.IntFlag{
						Name:  "track",
						Usage: "Restrict to words captured from one track ID",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.WordsList,
			},
			{
				Name:  "export",
				Usage: "Export the captured word list to a file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format: csv, markdown, txt",
						Value:   "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
					},
				},
				Action: r.WordsExport,
			},
		},
	}
}

// tracksCommand handles capture history operations
func tracksCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tracks",
		Aliases: []string{"t", "history"},
		Usage:   "Capture history operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List captured tracks",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "search",
						Aliases: []string{"q"},
						Usage:   "Filter by title or artist substring",
					},
					&cli.StringFlag{
						Name:  "sort",
						Usage: "Sort order: latest, title, words",
						Value: "latest",
					},
					&cli.StringFlag{
						Name:  "platform",
						Usage: "Platform filter: ALL, youtube, spotify, apple",
						Value: "ALL",
					},
					&cli.IntFlag{
						Name:    "page",
						Aliases: []string{"p"},
						Usage:   "Page number",
						Value:   1,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.TracksList,
			},
		},
	}
}

// vocabCommand handles generated vocabulary list operations
func vocabCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "vocab",
		Aliases: []string{"v"},
		Usage:   "Generated vocabulary list operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List generated vocabulary lists",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.VocabList,
			},
			{
				Name:  "generate",
				Usage: "Generate a vocabulary list for a song",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "song"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "title",
						Usage: "Display title for the generated list",
					},
					&cli.BoolFlag{
						Name:  "save",
						Usage: "Persist the list on the backend",
						Value: true,
					},
				},
				Action: r.VocabGenerate,
			},
			{
				Name:  "export",
				Usage: "Export every vocabulary list to files",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format: csv, markdown, txt",
						Value:   "csv",
					},
					&cli.StringFlag{
						Name:    "output-dir",
						Aliases: []string{"o"},
						Usage:   "Output directory",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent export workers",
						Value: 4,
					},
				},
				Action: r.VocabExport,
			},
		},
	}
}

// profileCommand handles identity and learning preferences
func profileCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "Profile and learning preferences",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Show the resolved display identity and backend profile",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.ProfileShow,
			},
			{
				Name:  "settings",
				Usage: "Update learning preferences",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "language",
						Usage: "Target learning language",
					},
					&cli.StringFlag{
						Name:  "level",
						Usage: "Difficulty level",
					},
					&cli.IntFlag{
						Name:  "max-words",
						Usage: "Maximum words extracted per song",
					},
					&cli.IntFlag{
						Name:  "min-length",
						Usage: "Minimum word length to extract",
					},
				},
				Action: r.ProfileSettings,
			},
		},
	}
}

// captureCommand records a track capture on the backend
func captureCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "capture",
		Usage: "Record a track capture",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "video"},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "title",
				Usage: "Track title",
			},
			&cli.FloatFlag{
				Name:  "at",
				Usage: "Capture position within the video, in seconds",
			},
			&cli.StringFlag{
				Name:  "origin",
				Usage: "Source URL",
			},
		},
		Action: r.Capture,
	}
}

// setupCommand handles local setup operations
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write an example config file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Config file path (default: ~/.wavecli/config.toml)",
					},
				},
				Action: r.SetupConfig,
			},
			{
				Name:   "database",
				Usage:  "Initialize the local database and run migrations",
				Action: r.SetupDatabase,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive terminal interface",
		Action:  r.TUI,
	}
}
