package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"botc-assets/core/config"
	"botc-assets/core/database"
	"botc-assets/core/fetch"
	"botc-assets/core/logger"
	"botc-assets/core/materialize"
	"botc-assets/core/paths"
	"botc-assets/core/pipeline"
	"botc-assets/core/storage"
	"botc-assets/feature/catalog"
	"botc-assets/feature/characters"
	"botc-assets/feature/history"
	"botc-assets/feature/homebrew"
	"botc-assets/feature/icons"
	"botc-assets/feature/publish"
	"botc-assets/feature/scripts"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// selection holds the category flags of a fetch run.
type selection struct {
	Clean       bool
	JSON        bool
	WikiIcons   bool
	ScriptIcons bool
	Icons       bool
	ExtraIcons  bool
	Homebrew    bool
	Scripts     string
	ScriptsSet  bool
	AllScripts  bool
	Publish     bool
	All         bool
}

func (s selection) any() bool {
	return s.Clean || s.JSON || s.WikiIcons || s.ScriptIcons || s.Icons || s.ExtraIcons ||
		s.Homebrew || s.ScriptsSet || s.AllScripts || s.Publish
}

// applyDefaults expands --all and selects the default set when nothing was asked for.
func (s *selection) applyDefaults() {
	if s.All || !s.any() {
		s.JSON = true
		s.Icons = true
		s.ExtraIcons = true
		s.AllScripts = true
		s.Homebrew = true
	}
}

var fetchFlags struct {
	sel          selection
	out          string
	extraScripts string
	homebrewDir  string
	concurrency  int
	noProgress   bool
}

func registerFetchFlags(c *cobra.Command) {
	f := c.Flags()
	f.BoolVar(&fetchFlags.sel.All, "all", false, "Download all assets (shorthand for --json --icons --extra-icons --all-scripts --homebrew)")
	f.BoolVar(&fetchFlags.sel.Clean, "clean", false, "Delete any existing assets")
	f.BoolVar(&fetchFlags.sel.JSON, "json", false, "Download JSON game data")
	f.BoolVar(&fetchFlags.sel.WikiIcons, "wiki-icons", false, "Download character icons from the official wiki")
	f.BoolVar(&fetchFlags.sel.ScriptIcons, "script-icons", false, "Download icons from the script tool")
	f.BoolVar(&fetchFlags.sel.Icons, "icons", false, "Download icons from the pocket grimoire")
	f.BoolVar(&fetchFlags.sel.ExtraIcons, "extra-icons", false, "Download extra icons from the configured GitHub repository")
	f.StringVar(&fetchFlags.sel.Scripts, "scripts", "", `Download scripts by catalog pk (comma separated, or "favorites")`)
	f.BoolVar(&fetchFlags.sel.AllScripts, "all-scripts", false, "Build the manifest of all scripts")
	f.BoolVar(&fetchFlags.sel.Homebrew, "homebrew", false, "Import homebrew scripts")
	f.BoolVar(&fetchFlags.sel.Publish, "publish", false, "Upload the assets directory to object storage")
	f.StringVar(&fetchFlags.extraScripts, "extra-scripts", "./extra_scripts", "Directory of extra scripts to include")
	f.StringVar(&fetchFlags.homebrewDir, "homebrew-dir", "./homebrew", "Directory of homebrew script definitions")
	f.StringVarP(&fetchFlags.out, "out", "o", "./assets", "Path to assets directory")
	f.IntVar(&fetchFlags.concurrency, "concurrency", fetch.DefaultLimit, "Maximum downloads in flight per category")
	f.BoolVar(&fetchFlags.noProgress, "no-progress", false, "Disable progress bars")
}

// applyFlagOverrides lets explicitly set flags win over configuration.
func applyFlagOverrides(c *cobra.Command, cfg *config.Config) {
	f := c.Flags()
	if f.Changed("out") {
		cfg.Assets.Out = fetchFlags.out
	}
	if f.Changed("extra-scripts") {
		cfg.Assets.ExtraScripts = fetchFlags.extraScripts
	}
	if f.Changed("homebrew-dir") {
		cfg.Assets.HomebrewDir = fetchFlags.homebrewDir
	}
	if f.Changed("concurrency") {
		cfg.Fetch.Concurrency = fetchFlags.concurrency
	}
}

func runFetch(c *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagOverrides(c, cfg)

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()

	sel := fetchFlags.sel
	sel.ScriptsSet = c.Flags().Changed("scripts")
	sel.applyDefaults()

	var progress pipeline.Progress
	if !fetchFlags.noProgress {
		progress = barProgress(c.ErrOrStderr())
	}

	var recorder pipeline.Recorder
	if repo := openHistory(cfg.Database, logg); repo != nil {
		recorder = repo
	}

	categories := buildCategories(cfg, sel, progress, logg)
	report := pipeline.NewRunner(logg, recorder).Run(c.Context(), categories)

	fmt.Fprintln(c.OutOrStdout(), pipeline.RenderTable(report))
	if report.Failed() {
		return errors.New("one or more categories failed")
	}
	return nil
}

// barProgress draws a progress bar per fetch batch on w.
func barProgress(w io.Writer) pipeline.Progress {
	return func(total int, label string) (func(int), func()) {
		bar := fetch.NewBar(w, total, label)
		return bar.Add, bar.Finish
	}
}

// openHistory connects the run ledger. History is optional; failures are logged.
func openHistory(cfg database.Config, logg *zap.Logger) *history.Repository {
	if !cfg.Enabled {
		return nil
	}
	db, err := database.Connect(cfg)
	if err != nil {
		logg.Warn("Optional history database connection failed", zap.Error(err))
		return nil
	}
	repo := history.NewRepository(db)
	if err := repo.Migrate(); err != nil {
		logg.Warn("History database unavailable", zap.Error(err))
		return nil
	}
	return repo
}

// buildCategories assembles the selected categories in run order.
func buildCategories(cfg *config.Config, sel selection, progress pipeline.Progress, logg *zap.Logger) []pipeline.Category {
	layout := paths.New(cfg.Assets.Out)
	client := fetch.NewHTTPClient(cfg.Fetch.TimeoutSeconds)
	cat := catalog.NewClient(cfg.Sources.CatalogURL, client, logg)
	store := homebrew.NewStore(layout.HomebrewFile())

	opts := icons.Options{
		Layout:      layout,
		HTTP:        client,
		Concurrency: cfg.Fetch.Concurrency,
		IconSize:    cfg.Fetch.IconSize,
		Progress:    progress,
		Logger:      logg,
	}

	var out []pipeline.Category
	if sel.Clean {
		out = append(out, &funcCategory{name: "clean", run: func(ctx context.Context, t *pipeline.Tracker) (pipeline.Summary, error) {
			t.Enter(pipeline.StateMaterializing)
			removed, err := paths.Clean(layout.Root, paths.Preserved...)
			if err != nil {
				return pipeline.Summary{}, err
			}
			logg.Info("Cleaned assets", zap.String("dir", layout.Root), zap.Int("removed", removed))
			t.Enter(pipeline.StateDone)
			return pipeline.Summary{Outcome: pipeline.OutcomeDone}, nil
		}})
	}
	if sel.JSON {
		c := characters.NewCategory(cfg.Sources.ScriptToolURL, cfg.Sources.DataFiles, layout.DataDir(), client, cfg.Fetch.Concurrency, logg)
		c.Progress = progress
		out = append(out, c)
	}
	if sel.WikiIcons {
		out = append(out, icons.NewWikiCategory(opts, cfg.Sources.WikiURL))
	}
	if sel.ScriptIcons {
		out = append(out, icons.NewScriptToolCategory(opts, cfg.Sources.ScriptToolURL))
	}
	if sel.Icons {
		out = append(out, icons.NewPocketGrimoireCategory(opts, cfg.Sources.PocketGrimoireURL))
	}
	if sel.ExtraIcons {
		gh := icons.NewGitHubClient(opts, cfg.Sources.GitHubToken)
		out = append(out, icons.NewExtraCategory(opts, gh, cfg.Sources.ExtraIconsRepo, cfg.Sources.ExtraIconsPath))
	}
	if sel.Homebrew {
		getter := fetch.HTTPGetter{Client: client}
		out = append(out, homebrew.NewCategory(
			cfg.Assets.HomebrewDir, store, layout,
			fetch.New(cfg.Fetch.Concurrency, getter.Get, logg),
			materialize.New(materialize.ResizeIcon(cfg.Fetch.IconSize), logg),
			progress, logg,
		))
	} else {
		out = append(out, &funcCategory{name: "homebrew-overrides", run: func(ctx context.Context, t *pipeline.Tracker) (pipeline.Summary, error) {
			t.Enter(pipeline.StateGatingCache)
			created, err := store.EnsureExists()
			if err != nil {
				return pipeline.Summary{}, err
			}
			t.Enter(pipeline.StateDone)
			if !created {
				return pipeline.Summary{Outcome: pipeline.OutcomeNothingToDo, Skipped: 1}, nil
			}
			return pipeline.Summary{Outcome: pipeline.OutcomeDone, Downloaded: 1}, nil
		}})
	}
	if sel.ScriptsSet {
		c := scripts.NewSelectedCategory(scripts.ParseIDs(sel.Scripts), layout.ScriptsDir(), cat, cfg.Fetch.Concurrency, logg)
		c.Progress = progress
		out = append(out, c)
	}
	if sel.AllScripts {
		out = append(out, &scripts.AllCategory{
			Path:     layout.ManifestFile(),
			ExtraDir: cfg.Assets.ExtraScripts,
			Homebrew: store,
			Catalog:  cat,
			Logger:   logg,
		})
	}
	if sel.Publish {
		out = append(out, publishCategory(cfg, layout, progress, logg))
	}
	return out
}

func publishCategory(cfg *config.Config, layout paths.Layout, progress pipeline.Progress, logg *zap.Logger) pipeline.Category {
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return &funcCategory{name: publish.CategoryName, run: func(ctx context.Context, t *pipeline.Tracker) (pipeline.Summary, error) {
			return pipeline.Summary{}, err
		}}
	}
	return &publish.Category{
		Client:      client,
		Bucket:      cfg.Storage.Bucket,
		Prefix:      cfg.Storage.Prefix,
		Layout:      layout,
		Concurrency: cfg.Fetch.Concurrency,
		Progress:    progress,
		Logger:      logg,
	}
}

// funcCategory adapts a function to pipeline.Category.
type funcCategory struct {
	name string
	run  func(ctx context.Context, t *pipeline.Tracker) (pipeline.Summary, error)
}

func (f *funcCategory) Name() string { return f.name }

func (f *funcCategory) Run(ctx context.Context, t *pipeline.Tracker) (pipeline.Summary, error) {
	return f.run(ctx, t)
}
