package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/loomhq/shuttle/internal/collection"
	"github.com/loomhq/shuttle/internal/config"
	"github.com/loomhq/shuttle/internal/loom"
	"github.com/loomhq/shuttle/internal/prefs"
	"github.com/loomhq/shuttle/internal/ui"
)

// Options configure the Shuttle application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/shuttle/prefs.toml
	APIBind    string // overrides the configured gateway address
}

// Run boots the Shuttle TUI until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.APIBind != "" {
		cfg.APIBind = opts.APIBind
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := loom.NewClient(cfg.APIBind)
	if err != nil {
		return fmt.Errorf("init loom client: %w", err)
	}

	changes := make(chan loom.Resource, 64)
	controllers := newControllers(ctx, client, cfg, changes)
	defer func() {
		for _, c := range controllers {
			c.Close()
		}
	}()

	model := ui.New(ui.Options{
		Context:     ctx,
		Client:      client,
		Controllers: controllers,
		Changes:     changes,
		Config:      cfg,
		Prefs:       userPrefs,
		PrefsPath:   opts.PrefsPath,
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// newControllers builds one collection controller per resource, each bound
// to its gateway endpoint and reporting changes on the shared channel. The
// send never blocks: a full channel just means a notification is already
// pending and the UI will re-read the snapshot anyway.
func newControllers(ctx context.Context, client *loom.Client, cfg config.Config, changes chan<- loom.Resource) map[loom.Resource]*collection.Controller {
	controllers := make(map[loom.Resource]*collection.Controller, len(ui.ViewOrder))
	for _, res := range ui.ViewOrder {
		res := res
		controllers[res] = collection.NewController(collection.Options{
			Gateway:  client.Collection(res),
			Context:  ctx,
			PageSize: cfg.PageSize,
			Debounce: cfg.Debounce(),
			OnChange: func() {
				select {
				case changes <- res:
				default:
				}
			},
		})
	}
	return controllers
}
