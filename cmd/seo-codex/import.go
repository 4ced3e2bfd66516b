package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vrcreative/seo-codex/internal/config"
	"github.com/vrcreative/seo-codex/internal/logger"
	"github.com/vrcreative/seo-codex/internal/metrics"
	"github.com/vrcreative/seo-codex/internal/show"
	"github.com/vrcreative/seo-codex/internal/store"
	"github.com/vrcreative/seo-codex/internal/validate"
)

type importOptions struct {
	Path         string
	RegistryPath string
	Rules        validate.Rules
	Force        bool
	Color        bool
}

func newImportCmd() *cobra.Command {
	var (
		force        bool
		noColor      bool
		registryPath string
	)

	cmd := &cobra.Command{
		Use:   "import <path>",
		Short: "Validate a shows document and publish it to the catalog",
		Long: `Validate a shows document and, if it has no errors, replace the published
catalog with it. Warnings do not block the import; --force imports even
when validation fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(cfg.Log.Level, cfg.Env)

			database, ss, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			opts := importOptions{
				Path:         args[0],
				RegistryPath: cfg.RegistryPath,
				Rules:        cfg.Rules,
				Force:        force,
				Color:        !noColor && isTerminal(cmd.OutOrStdout()),
			}
			if registryPath != "" {
				opts.RegistryPath = registryPath
			}
			return runImport(cmd.Context(), cmd.OutOrStdout(), log, ss, opts)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "import even when validation reports errors")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.Flags().StringVar(&registryPath, "registry", "", "tag registry document (overrides SEO_REGISTRY_PATH)")
	return cmd
}

// runImport validates the document at opts.Path and stores it when the
// report passes or opts.Force is set. A failing report without Force leaves
// the catalog untouched.
func runImport(ctx context.Context, out io.Writer, log zerolog.Logger, ss store.ShowStoreIface, opts importOptions) error {
	engine, err := validate.New(opts.Rules)
	if err != nil {
		return err
	}

	records, err := show.LoadFile(opts.Path)
	if err != nil {
		return &InputError{Err: err}
	}

	rep, _ := validateRecords(engine, records, opts.RegistryPath, log)
	if err := rep.WriteText(out, opts.Color); err != nil {
		return err
	}

	if !rep.Passed() && !opts.Force {
		return reportResult(rep)
	}
	if !rep.Passed() {
		log.Warn().Str("path", opts.Path).Msg("importing despite validation errors")
	}

	if err := ss.ReplaceAll(ctx, records); err != nil {
		return fmt.Errorf("store shows: %w", err)
	}
	metrics.ShowsTotal.Set(float64(len(records)))
	log.Info().Int("shows", len(records)).Str("path", opts.Path).Msg("catalog imported")
	return nil
}
