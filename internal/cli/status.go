package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"friendlyenum/internal/adapter/store"
	"friendlyenum/internal/port"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List recorded generation state",
	Long: `List the implementation files recorded in the generation state database,
with the outcome of their last run and when it happened. Requires
state.enabled in the config.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	rootDir := GetRootDir()
	out := cmd.OutOrStdout()

	dbPath := cfg.StateDBPath(rootDir)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("no generation state found at %s. Enable state.enabled and run friendlyenum first", dbPath)
	}

	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open state store: %w", err)
	}
	defer st.Close()

	migrationResult, err := st.CheckMigration(cfg)
	if err != nil {
		return err
	}
	if migrationResult.NeedsReset {
		fmt.Fprintf(out, "Generation settings changed since the last run (%s); records will be cleared on the next run.\n", migrationResult.Reason)
	}

	return printStatus(out, st, rootDir, dbPath)
}

func printStatus(out io.Writer, st port.StateStore, rootDir, dbPath string) error {
	recs, err := st.ListRecords()
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}
	if len(recs) == 0 {
		fmt.Fprintln(out, "No generation records.")
		return nil
	}

	for _, rec := range recs {
		path := rec.Implementation
		if rel, err := filepath.Rel(rootDir, path); err == nil && !strings.HasPrefix(rel, "..") {
			path = rel
		}

		size := "missing"
		if fi, err := os.Stat(rec.Implementation); err == nil {
			size = humanize.Bytes(uint64(fi.Size()))
		}

		fmt.Fprintf(out, "%-9s %-48s %-20s %8s  %s\n",
			rec.Outcome, path, rec.EnumName, size, humanize.Time(rec.GeneratedAt))
	}
	fmt.Fprintf(out, "\n%s records in %s\n", humanize.Comma(int64(len(recs))), dbPath)
	return nil
}
