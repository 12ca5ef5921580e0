package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/abhisek/careerlab/internal/config"
	"github.com/abhisek/careerlab/internal/logging"
	"github.com/abhisek/careerlab/internal/store"
)

var (
	v   = config.New()
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "careerlab",
	Short: "Career guidance and English vocabulary practice",
	Long:  "CareerLab — terminal app that matches you to synthetic job postings and drills English grammar.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(v, file)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/careerlab/config.yaml)")
	pf.String("data", "", "Path to the dataset CSV (overrides CAREERLAB_DATA)")
	pf.Uint64("seed", 0, "Random seed; 0 picks one from the clock")
	pf.String("log-level", "info", "Log level: debug, info, warn or error")
	pf.String("log-file", "", "Log file used by the terminal UI")
	pf.StringArray("import", nil, "JSON or YAML file of extra quiz questions (repeatable)")

	bindFlag(v, config.KeyDataFile, "data")
	bindFlag(v, config.KeySeed, "seed")
	bindFlag(v, config.KeyLogLevel, "log-level")
	bindFlag(v, config.KeyLogFile, "log-file")

	rootCmd.AddCommand(vocabCmd)
	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(versionCmd)
}

func bindFlag(v *viper.Viper, key, flag string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", flag, err))
	}
}

// resolveDataPath returns the dataset path from --data or config (highest
// priority), then the default XDG location.
func resolveDataPath() (string, error) {
	if cfg.DataFile != "" {
		return cfg.DataFile, nil
	}
	return store.DefaultDataPath()
}

// consoleLogger logs to stderr for non-interactive commands.
func consoleLogger() (*zap.Logger, error) {
	return logging.New(cfg.LogLevel, os.Stderr)
}
