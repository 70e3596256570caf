package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"vmlsite/internal/config"
	"vmlsite/internal/content"
	"vmlsite/internal/logging"
	"vmlsite/internal/shell"
	"vmlsite/internal/telemetry"
	"vmlsite/internal/termsize"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "vmlsite [path]",
		Short: "Browse the VideoML site in the terminal",
		Long: `vmlsite renders the VideoML documentation site as a terminal UI.

Narrow terminals get a Menu trigger in the header; wide ones show the
navigation inline. Pass a site path (e.g. /docs/cli) to start there.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, startPath(cfg, args))
		},
	}
	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/vmlsite/config.yaml)")
	f.String("content-dir", "", "read pages from this directory instead of the built-in site")
	f.Bool("watch", false, "reload pages when files under --content-dir change")
	f.BoolP("verbose", "v", false, "log at debug level")
	f.String("log-file", "", "write JSON logs to this file")
	return cmd
}

// startPath prefers the positional argument over site.start_path.
func startPath(cfg config.Config, args []string) string {
	if len(args) == 1 && args[0] != "" {
		return args[0]
	}
	return cfg.Site.StartPath
}

func run(ctx context.Context, cfg config.Config, start string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := logging.New(cfg.Log.File, cfg.Log.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	tp, err := telemetry.New(ctx)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logger.Warn("telemetry shutdown", zap.Error(err))
		}
	}()

	var fsys fs.FS = content.Embedded()
	if cfg.Content.Dir != "" {
		fsys = os.DirFS(cfg.Content.Dir)
	}
	site, err := content.Load(fsys)
	if err != nil {
		return fmt.Errorf("load site: %w", err)
	}

	sz := termsize.OrDefault(os.Stdout, termsize.Size{Rows: 24, Cols: 80})
	model := shell.New(shell.Options{
		Site:         site,
		StartPath:    start,
		Opener:       content.SystemOpener,
		Renderer:     content.NewRenderer(cfg.Content.Style),
		CompactBelow: cfg.Breakpoint.CompactBelow,
		PanelWidth:   cfg.Overlay.PanelWidth,
		Transition:   cfg.Overlay.Transition,
		Width:        int(sz.Cols),
		Height:       int(sz.Rows),
		Logger:       logger,
		Tracer:       tp.Tracer(),
		Context:      ctx,
	})
	defer model.Unmount()
	logger.Info("starting",
		zap.String("shell", model.ID),
		zap.String("start", start),
		zap.Bool("telemetry", tp.Enabled()),
		zap.Uint16("cols", sz.Cols))

	p := tea.NewProgram(model.AsTeaModel(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx))

	g, gctx := errgroup.WithContext(ctx)
	watchCtx, cancelWatch := context.WithCancel(gctx)
	g.Go(func() error {
		defer cancelWatch()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	})
	if cfg.Content.Watch {
		g.Go(func() error {
			return content.Watch(watchCtx, cfg.Content.Dir, content.DefaultDebounce, logger,
				func(s *content.Site, err error) {
					p.Send(shell.ContentReloadedMsg{Site: s, Err: err})
				})
		})
	}
	return g.Wait()
}
