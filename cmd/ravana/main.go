// Package main is the entry point for ravana, a terminal subreddit reader.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/ravana/internal/command"
	"github.com/dshills/ravana/internal/config"
	"github.com/dshills/ravana/internal/feed"
	"github.com/dshills/ravana/internal/input"
	"github.com/dshills/ravana/internal/input/key"
	"github.com/dshills/ravana/internal/input/keymap"
	"github.com/dshills/ravana/internal/logging"
	"github.com/dshills/ravana/internal/renderer/backend"
	"github.com/dshills/ravana/internal/tui"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// ErrNotTerminal indicates stdin is not an interactive terminal.
var ErrNotTerminal = errors.New("stdin is not a terminal")

type options struct {
	configPath   string
	logLevel     string
	logFile      string
	listBindings bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "ravana [listing.json...]",
		Short: "Browse subreddit listings in the terminal",
		Long: `Ravana shows subreddit listings as pages of posts.

Each listing file given on the command line opens as a page. Without
files the built-in sample listings are shown.

Keys are bound in the [key-bindings] table of Config.toml. Type ':' for
the command palette: app_quit, scroll_up, scroll_down, next_page,
prev_page and switch_page N.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd.Context(), cmd.OutOrStdout(), opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "configuration file (default: first found in the search paths)")
	f.StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn or error (default $"+logging.EnvVar+" or info)")
	f.StringVar(&opts.logFile, "log-file", "", "append logs to this file instead of stderr")
	f.BoolVar(&opts.listBindings, "list-bindings", false, "print the resolved key bindings and exit")

	return cmd
}

func runApp(ctx context.Context, out io.Writer, opts options, files []string) error {
	closeLog, err := setupLogging(opts)
	if err != nil {
		return err
	}
	defer closeLog()
	log := logging.Component("main")

	cfg, source, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if source == "" {
		log.Info("no config file found, using defaults")
	} else {
		log.Info("loaded config from %s", source)
	}

	prefs, err := tui.NewPrefs(cfg.Tui)
	if err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}
	trie, err := keymap.Build(cfg.KeyBindings, command.Default().Has)
	if err != nil {
		return fmt.Errorf("invalid key bindings: %w", err)
	}

	if opts.listBindings {
		return printBindings(out, trie)
	}

	listings, err := loadListings(files)
	if err != nil {
		return err
	}

	loadSession(log)

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrNotTerminal
	}
	t, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("starting terminal: %w", err)
	}
	handle := backend.NewHandle(t)

	app, err := tui.New(handle, prefs)
	if err != nil {
		_ = handle.Stop()
		return fmt.Errorf("creating app: %w", err)
	}
	defer app.Close()

	if err := openPages(app, listings); err != nil {
		return err
	}
	if err := app.Render(); err != nil {
		return fmt.Errorf("initial render: %w", err)
	}

	handler := input.NewHandler(app, app.Commands(), trie)
	err = input.NewListener(handle, handler).Listen(ctx)
	if errors.Is(err, context.Canceled) {
		log.Info("interrupted")
		return nil
	}
	return err
}

func setupLogging(opts options) (func(), error) {
	level := logging.LevelFromEnv(logging.LevelInfo)
	if opts.logLevel != "" {
		l, err := logging.ParseLevel(opts.logLevel)
		if err != nil {
			return nil, err
		}
		level = l
	}

	cfg := logging.Config{Level: level}
	closeFn := func() {}
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		cfg.Output = f
		closeFn = func() {
			logging.Configure(logging.Config{Level: level})
			_ = f.Close()
		}
	}
	logging.Configure(cfg)
	return closeFn, nil
}

func printBindings(out io.Writer, trie *keymap.Trie) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, b := range trie.Bindings() {
		fmt.Fprintf(w, "%s\t%s\n", b.Action, key.Format(b.Keys))
	}
	return w.Flush()
}

func loadListings(files []string) ([]*feed.Listing, error) {
	if len(files) == 0 {
		return feed.Samples()
	}
	out := make([]*feed.Listing, 0, len(files))
	for _, path := range files {
		l, err := feed.LoadFile(path)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// openPages adds one listing page per listing and focuses the first.
func openPages(app *tui.App, listings []*feed.Listing) error {
	for _, l := range listings {
		i, err := app.AddPage(tui.KindSubredditListing, l.Name)
		if err != nil {
			return fmt.Errorf("opening page %q: %w", l.Name, err)
		}
		for _, p := range l.Posts {
			if err := app.AddPost(i, p); err != nil {
				return fmt.Errorf("adding post to %q: %w", l.Name, err)
			}
		}
	}
	if app.Pages() > 0 {
		app.SetFocPage(0)
	}
	return nil
}

// loadSession makes sure the session file carries a device id. Session
// problems never stop the client.
func loadSession(log *logging.Logger) {
	path, err := config.SessionPath()
	if err != nil {
		log.WithError(err).Warn("no session path")
		return
	}
	sess, err := config.LoadSession(path)
	if err != nil {
		log.WithError(err).Warn("ignoring session file %s", path)
		return
	}
	if sess.EnsureDeviceID() {
		if err := sess.Save(path); err != nil {
			log.WithError(err).Warn("saving session")
			return
		}
		log.Debug("new device id %s", sess.DeviceID)
	}
	if !sess.Authorized() {
		log.Debug("no refresh token; browsing anonymously")
	}
}
