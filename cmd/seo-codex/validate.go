package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vrcreative/seo-codex/internal/config"
	"github.com/vrcreative/seo-codex/internal/logger"
	"github.com/vrcreative/seo-codex/internal/metrics"
	"github.com/vrcreative/seo-codex/internal/registry"
	"github.com/vrcreative/seo-codex/internal/show"
	"github.com/vrcreative/seo-codex/internal/validate"
)

// recordSource produces the records of one run.
type recordSource func(ctx context.Context) ([]show.Record, error)

type validateOptions struct {
	Source       recordSource
	Sample       bool
	RegistryPath string
	Rules        validate.Rules
	JSON         bool
	Color        bool
}

func newValidateCmd() *cobra.Command {
	var (
		jsonOut      bool
		noColor      bool
		fromDB       bool
		registryPath string
	)

	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate show records against the publication schema",
		Long: `Validate show records from a JSON or YAML document (a list of shows, or an
object with a "shows" list). With no path, a built-in sample record is
validated as a smoke check.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(cfg.Log.Level, cfg.Env)

			opts := validateOptions{
				RegistryPath: cfg.RegistryPath,
				Rules:        cfg.Rules,
				JSON:         jsonOut,
				Color:        !noColor && isTerminal(cmd.OutOrStdout()),
			}
			if registryPath != "" {
				opts.RegistryPath = registryPath
			}

			switch {
			case fromDB && len(args) > 0:
				return fmt.Errorf("--from-db and a document path are mutually exclusive")
			case fromDB:
				database, ss, err := openStore(cfg)
				if err != nil {
					return err
				}
				defer func() { _ = database.Close() }()
				opts.Source = ss.ListAll
			case len(args) == 1:
				opts.Source = fileSource(args[0])
			default:
				opts.Sample = true
				opts.Source = sampleSource
			}

			return runValidate(cmd.Context(), cmd.OutOrStdout(), log, opts)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "write the report as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVar(&fromDB, "from-db", false, "validate the published catalog in the database")
	cmd.Flags().StringVar(&registryPath, "registry", "", "tag registry document (overrides SEO_REGISTRY_PATH)")
	return cmd
}

// runValidate loads records and the registry, validates, and writes the
// report to out. It returns an InputError when the records cannot be loaded
// and a ValidationFailedError when the report has errors.
func runValidate(ctx context.Context, out io.Writer, log zerolog.Logger, opts validateOptions) error {
	engine, err := validate.New(opts.Rules)
	if err != nil {
		return err
	}

	if !opts.JSON {
		fmt.Fprint(out, "SEO Codex Data Validator\n\n")
		if opts.Sample {
			fmt.Fprint(out, "ℹ️  No data file provided. Running dry-run validation test...\n\n")
		}
	}

	records, err := opts.Source(ctx)
	if err != nil {
		return &InputError{Err: err}
	}

	rep, tagCount := validateRecords(engine, records, opts.RegistryPath, log)

	if opts.JSON {
		if err := json.NewEncoder(out).Encode(rep); err != nil {
			return err
		}
	} else {
		fmt.Fprint(out, "🔍 Starting data validation...\n\n")
		fmt.Fprintf(out, "✓ Loaded %d approved tags from registry\n\n", tagCount)
		if err := rep.WriteText(out, opts.Color); err != nil {
			return err
		}
	}

	return reportResult(rep)
}

// validateRecords reads the registry fresh and runs the engine.
func validateRecords(engine *validate.Engine, records []show.Record, registryPath string, log zerolog.Logger) (*validate.Report, int) {
	tags := registrySource(registryPath).Load(log)
	metrics.RegistryTags.Set(float64(len(tags)))

	rep := engine.Validate(records, registry.NewSet(tags))
	metrics.ObserveReport(rep)
	return rep, len(tags)
}

func reportResult(rep *validate.Report) error {
	if rep.Passed() {
		return nil
	}
	errs, warns := rep.Counts()
	return &ValidationFailedError{Errors: errs, Warnings: warns, Code: rep.ExitCode()}
}

func fileSource(path string) recordSource {
	return func(context.Context) ([]show.Record, error) {
		return show.LoadFile(path)
	}
}

func sampleSource(context.Context) ([]show.Record, error) {
	return []show.Record{show.Sample()}, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
