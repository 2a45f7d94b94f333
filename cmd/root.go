package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/gdamore/tcell/v2"
	"github.com/jdlms/aws-costs/internal/app"
	"github.com/jdlms/aws-costs/internal/aws"
	"github.com/jdlms/aws-costs/internal/config"
	"github.com/jdlms/aws-costs/internal/logger"
	"github.com/jdlms/aws-costs/internal/ui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "aws-costs",
	Short:         "AWS cost dashboard for the terminal",
	Long:          "Shows this month's and last month's AWS costs by service and a six month trend",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringP("profile", "p", "", "AWS shared config profile (default $AWS_PROFILE, else the SDK credential chain)")
	flags.StringP("region", "r", "", "AWS region (default $AWS_REGION or "+aws.DefaultRegion+")")
	flags.Bool("debug", false, "write debug entries to the log file")
	flags.Bool("no-tui", false, "print the current month as plain text and exit")
	flags.String("log-file", "", "log file path (default under $XDG_STATE_HOME/aws-costs)")
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	log, flush, err := logger.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}
	defer flush()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := aws.NewClient(ctx, aws.Options{Profile: cfg.Profile, Region: cfg.Region}, log)
	if err != nil {
		return err
	}

	if cfg.NoTUI {
		return printCurrentMonth(ctx, client, cmd.OutOrStdout(), cmd.ErrOrStderr())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "failed to open terminal")
	}

	log.Infow("starting dashboard", "profile", cfg.Profile, "region", cfg.Region)
	return app.New(screen, client, ui.DefaultSettings(), log).Run(ctx)
}
