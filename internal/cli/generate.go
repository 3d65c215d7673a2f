package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"friendlyenum/config"
	"friendlyenum/internal/adapter/cppgen"
	"friendlyenum/internal/adapter/fs"
	"friendlyenum/internal/adapter/header"
	"friendlyenum/internal/adapter/memstore"
	"friendlyenum/internal/adapter/store"
	"friendlyenum/internal/port"
	"friendlyenum/internal/usecase"
)

var (
	genCheck     bool
	genKeepGoing bool
	genProgress  bool
	genStrict    bool
)

func init() {
	rootCmd.Flags().BoolVar(&genCheck, "check", false, "report out-of-date implementations without writing them")
	rootCmd.Flags().BoolVar(&genKeepGoing, "keep-going", false, "continue past failing headers and report all errors")
	rootCmd.Flags().BoolVar(&genProgress, "progress", false, "show a progress bar and a summary")
	rootCmd.Flags().BoolVar(&genStrict, "strict", false, "reject headers without an enum, without members or with duplicate members")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	cfg := GetConfig()

	walker := fs.NewWalker(cfg.Walk.Includes, cfg.Walk.Excludes)
	headers, err := walker.Expand(args)
	if err != nil {
		return fmt.Errorf("failed to expand arguments: %w", err)
	}
	glog.V(2).Infof("expanded %d arguments into %d headers", len(args), len(headers))

	st, err := openStateStore(cfg, GetRootDir())
	if err != nil {
		return err
	}
	defer st.Close()

	generateUC := usecase.NewGenerateUseCase(
		header.NewParser(cfg.Header.UnknownSynonyms),
		cppgen.New(cfg.Generate.SystemIncludes),
		fs.NewTextFiles(),
		st,
		cmd.OutOrStdout(),
		usecase.GenerateOptions{
			HeaderExtension:         cfg.Header.Extension,
			ImplementationExtension: cfg.Generate.ImplementationExtension,
			SkipUnmatched:           cfg.Header.SkipUnmatched,
			Strict:                  cfg.Header.Strict || genStrict,
			KeepGoing:               genKeepGoing,
			Check:                   genCheck,
		},
	)

	var progress usecase.ProgressFunc
	if genProgress && len(headers) > 0 {
		bar := progressbar.NewOptions(len(headers),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowBytes(false),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetDescription("[cyan]Generating[reset]"),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(os.Stderr)
			}),
		)
		progress = func(processed, total int, current string) {
			bar.Describe(fmt.Sprintf("[cyan]Generating[reset] %s", filepath.Base(current)))
			bar.Set(processed)
		}
	}

	result, err := generateUC.Generate(headers, progress)

	if genProgress {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "\nGeneration complete:\n")
		fmt.Fprintf(out, "  Written:    %d\n", result.Written)
		fmt.Fprintf(out, "  Unchanged:  %d\n", result.Unchanged)
		if genCheck {
			fmt.Fprintf(out, "  Stale:      %d\n", result.Stale)
		}
		if result.Ignored > 0 {
			fmt.Fprintf(out, "  Ignored:    %d\n", result.Ignored)
		}
		if result.Failed > 0 {
			fmt.Fprintf(out, "  Failed:     %d\n", result.Failed)
		}
	}

	if err != nil {
		errs := multierr.Errors(err)
		if len(errs) == 1 {
			return err
		}
		for _, e := range errs {
			fmt.Fprintf(cmd.ErrOrStderr(), "  - %v\n", e)
		}
		return fmt.Errorf("%d of %d headers failed", len(errs), len(headers))
	}
	if result.Stale > 0 {
		return fmt.Errorf("%d implementation files are out of date", result.Stale)
	}
	return nil
}

// openStateStore returns the bolt store when state is enabled and an
// in-memory store otherwise.
func openStateStore(cfg *config.Config, rootDir string) (port.StateStore, error) {
	if !cfg.State.Enabled {
		return memstore.NewMemoryStore(), nil
	}

	if err := cfg.EnsureStateDir(rootDir); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	dbPath := cfg.StateDBPath(rootDir)
	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open state store: %w", err)
	}

	migrationResult, err := st.Migrate(cfg)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to migrate state store: %w", err)
	}
	if migrationResult.NeedsReset {
		glog.Infof("cleared generation state in %s: %s", dbPath, migrationResult.Reason)
	}

	return st, nil
}
