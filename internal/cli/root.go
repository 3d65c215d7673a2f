package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"friendlyenum/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "friendlyenum [flags] <header>...",
	Short: "Generate to-string, stream and parse implementations for C++ enum classes",
	Long: `friendlyenum reads C++ headers that declare an enum class together with
to-string, stream-output and parse functions, and writes the matching
implementation file next to each header. An implementation is only rewritten
when its content changes, so build timestamps stay stable.

The implementation file must already exist. Directories are searched for
headers; glob patterns are expanded.

Example usage:
  friendlyenum src/Color.h              # Regenerate src/Color.cpp
  friendlyenum --keep-going src/        # Every header under src/
  friendlyenum --check 'src/**/*.h'     # Fail if anything is out of date
  friendlyenum inspect src/Color.h      # Show what the parser sees`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return configureLogging(cmd)
	},
	RunE: runGenerate,
}

func Execute() {
	err := rootCmd.Execute()
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./friendlyenum.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory for config and state (default is current directory)")

	flag.Set("logtostderr", "true")
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
}

// configureLogging maps the configured level onto glog verbosity unless -v
// was given explicitly.
func configureLogging(cmd *cobra.Command) error {
	if err := flag.CommandLine.Parse([]string{}); err != nil {
		return err
	}
	if f := cmd.Flags().Lookup("v"); f != nil && f.Changed {
		return nil
	}

	switch strings.ToLower(cfg.Logging.Level) {
	case "", "info":
		return nil
	case "debug":
		return flag.Set("v", "1")
	case "trace":
		return flag.Set("v", "2")
	default:
		return fmt.Errorf("unknown logging level %q", cfg.Logging.Level)
	}
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
