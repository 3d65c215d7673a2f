package cli

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"friendlyenum/internal/adapter/fs"
	"friendlyenum/internal/adapter/header"
	"friendlyenum/internal/usecase"
)

var (
	inspectFormat string
	inspectStrict bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <header>...",
	Short: "Show the parsed model of a header",
	Long: `Parse headers and print the enum, its members, the chosen unknown value,
the bound declarations and the pass-through lines. Nothing is written.

Examples:
  friendlyenum inspect src/Color.h
  friendlyenum inspect src/Color.h --format yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", "pretty", "output format: pretty or yaml")
	inspectCmd.Flags().BoolVar(&inspectStrict, "strict", false, "fail on headers strict mode would reject")
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	out := cmd.OutOrStdout()

	if inspectFormat != "pretty" && inspectFormat != "yaml" {
		return fmt.Errorf("unsupported format: %s", inspectFormat)
	}

	inspectUC := usecase.NewInspectUseCase(
		header.NewParser(cfg.Header.UnknownSynonyms),
		fs.NewTextFiles(),
		cfg.Header.Strict || inspectStrict,
	)

	for i, path := range args {
		model, err := inspectUC.Inspect(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		switch inspectFormat {
		case "yaml":
			if i > 0 {
				fmt.Fprintln(out, "---")
			}
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(model); err != nil {
				return fmt.Errorf("failed to encode model: %w", err)
			}
			if err := enc.Close(); err != nil {
				return err
			}
		default:
			fmt.Fprintf(out, "%# v\n", pretty.Formatter(model))
		}
	}
	return nil
}
