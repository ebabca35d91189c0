package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xavierca1/mailchimp-organizer/internal/config"
	"github.com/xavierca1/mailchimp-organizer/internal/infra/logger"
)

var (
	configPath     string
	verbose        bool
	perProgramTags bool

	cfg *config.Config
	log *zap.Logger
)

// errReported marks a failure that was already printed for the user.
var errReported = errors.New("reported")

var rootCmd = &cobra.Command{
	Use:   "organizer",
	Short: "Turn roster and volunteer exports into Mailchimp contact lists",
	Long: `organizer reads team-roster (.csv, Latin-1) and volunteer (.txt, UTF-16
tab-separated) exports, merges people by email address and writes
mailchimp_contacts.csv or mailchimp_volunteers.csv next to the input.

Run "organizer serve" to expose the same conversions over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if perProgramTags {
			cfg.Roster.PerProgramTags = true
		}

		level := cfg.Log.Level
		if verbose {
			level = "debug"
		}
		log, err = logger.New(level, cfg.Log.Development)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Config file (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&perProgramTags, "per-program-tags", false, "Reset roster tags for every program row")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(volunteersCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
