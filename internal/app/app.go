package app

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"wordtree/internal/analyzer"
	"wordtree/internal/config"
	"wordtree/internal/models"
	"wordtree/internal/report"
	"wordtree/internal/taxonomy"
)

type App struct {
	Config *config.Config
	Logger *log.Entry
	RunID  string

	Locale language.Tag
	Format report.Format
}

// Result is one analysis run with its phase timings.
type Result struct {
	Report      models.Report
	LoadTime    time.Duration
	AnalyzeTime time.Duration
}

// NewApp validates cfg and prepares an App whose diagnostics go to logOut.
func NewApp(cfg *config.Config, logOut io.Writer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	app := &App{Config: cfg, RunID: uuid.NewString()}

	if err := app.initLogger(logOut); err != nil {
		return nil, err
	}
	if err := app.initOutput(); err != nil {
		return nil, err
	}

	app.Logger.WithFields(log.Fields{
		"locale":   app.Locale.String(),
		"format":   app.Format,
		"taxonomy": app.taxonomyName(),
	}).Debug("Application initialization complete.")
	return app, nil
}

func (a *App) initLogger(out io.Writer) error {
	level, err := log.ParseLevel(a.Config.Log.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger := log.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	a.Logger = logger.WithField("run_id", a.RunID)
	return nil
}

func (a *App) initOutput() error {
	locale, err := report.MatchLocale(a.Config.Output.Locale)
	if err != nil {
		return fmt.Errorf("init output: %w", err)
	}
	format, err := report.ParseFormat(a.Config.Output.Format)
	if err != nil {
		return fmt.Errorf("init output: %w", err)
	}
	a.Locale = locale
	a.Format = format
	return nil
}

// SetVerbose switches diagnostics to debug level.
func (a *App) SetVerbose() {
	a.Logger.Logger.SetLevel(log.DebugLevel)
}

func (a *App) taxonomyName() string {
	if a.Config.Taxonomy.Path == "" {
		return "bundled"
	}
	return a.Config.Taxonomy.Path
}

// LoadTaxonomy reads the configured taxonomy. Errors wrap models.ErrLoad.
func (a *App) LoadTaxonomy() (models.Node, error) {
	root, err := taxonomy.Load(a.Config.Taxonomy.Path)
	if err != nil {
		a.Logger.WithError(err).Error("Failed to load taxonomy")
		return nil, err
	}
	return root, nil
}

// Analyze loads the taxonomy and counts the phrase's matches at depth, timing both phases.
func (a *App) Analyze(phrase string, depth int) (Result, error) {
	startLoad := time.Now()
	root, err := a.LoadTaxonomy()
	if err != nil {
		return Result{}, err
	}
	loadTime := time.Since(startLoad)

	startAnalyze := time.Now()
	result := analyzer.Analyze(root, phrase, depth)
	analyzeTime := time.Since(startAnalyze)

	a.Logger.WithFields(log.Fields{
		"depth":      depth,
		"categories": len(result),
		"matches":    result.Total(),
	}).Debug("Phrase analyzed")

	return Result{Report: result, LoadTime: loadTime, AnalyzeTime: analyzeTime}, nil
}

// NewRenderer returns a report renderer writing to out in the configured locale and format.
func (a *App) NewRenderer(out io.Writer) *report.Renderer {
	return report.NewRenderer(out, a.Locale, a.Format)
}
