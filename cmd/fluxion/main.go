package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"fluxion/adapters/report"
	"fluxion/app"
	"fluxion/domain/device"
	"fluxion/internal"
	"fluxion/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := internal.NewLogger(internal.ParseLogLevel(cfg.Logging.Level))

	rootCmd := &cobra.Command{
		Use:   "fluxion",
		Short: "Fluxion surveys device transition functions and classifies the lawful ones",
	}

	rootCmd.AddCommand(
		newSurveyCmd(cfg, logger),
		newSweepCmd(cfg, logger),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newSurveyCmd(cfg *config.Config, logger *internal.Logger) *cobra.Command {
	var category string
	var ports int
	var conserveFlux bool
	var collect bool
	var progressEvery uint64

	cmd := &cobra.Command{
		Use:   "survey",
		Short: "Survey one device universe and report its equivalence groups",
		Long: `Enumerate every bijective transition function of one device universe, admit
the lawful ones, and report the equivalence groups they fall into.

Example: fluxion survey --category polarized-state --ports 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := device.ParseCategory(category)
			if err != nil {
				return err
			}
			return runSurvey(cmd.Context(), logger, app.SurveyRequest{
				Category:        cat,
				Ports:           ports,
				ConserveFlux:    conserveFlux,
				CollectAccepted: collect,
				ProgressEvery:   progressEvery,
			})
		},
	}

	cmd.Flags().StringVar(&category, "category", cfg.Survey.Category, "Device category: polarized-state|neutral-state")
	cmd.Flags().IntVar(&ports, "ports", cfg.Survey.Ports, "Number of device ports")
	cmd.Flags().BoolVar(&conserveFlux, "conserve-flux", cfg.Survey.ConserveFlux, "Only admit flux conserving functions")
	cmd.Flags().BoolVar(&collect, "collect", cfg.Survey.CollectAccepted, "Print every accepted function, not just group representatives")
	cmd.Flags().Uint64Var(&progressEvery, "progress-every", cfg.Survey.ProgressEvery, "Candidates between progress logs")

	return cmd
}

func newSweepCmd(cfg *config.Config, logger *internal.Logger) *cobra.Command {
	var maxPorts int
	var conserveFlux bool
	var collect bool
	var progressEvery uint64

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Survey every category up to a port count",
		Long: `Run one survey per universe for each device category at every port count
from 1 up to --max-ports, and report them all.

Example: fluxion sweep --max-ports 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd.Context(), logger, app.SweepRequest{
				MaxPorts:        maxPorts,
				ConserveFlux:    conserveFlux,
				CollectAccepted: collect,
				ProgressEvery:   progressEvery,
			})
		},
	}

	cmd.Flags().IntVar(&maxPorts, "max-ports", cfg.Survey.MaxPorts, "Largest port count to survey")
	cmd.Flags().BoolVar(&conserveFlux, "conserve-flux", cfg.Survey.ConserveFlux, "Only admit flux conserving functions")
	cmd.Flags().BoolVar(&collect, "collect", cfg.Survey.CollectAccepted, "Print every accepted function, not just group representatives")
	cmd.Flags().Uint64Var(&progressEvery, "progress-every", cfg.Survey.ProgressEvery, "Candidates between progress logs")

	return cmd
}

func runSurvey(ctx context.Context, logger *internal.Logger, req app.SurveyRequest) error {
	svc := app.NewSurveyService(logger)

	result, err := svc.Survey(ctx, req)
	if err != nil {
		return fmt.Errorf("survey failed: %w", err)
	}

	fmt.Print(report.NewRenderer().RenderSurvey(result))
	return nil
}

func runSweep(ctx context.Context, logger *internal.Logger, req app.SweepRequest) error {
	surveys := app.NewSurveyService(logger)
	svc := app.NewSweepService(surveys, logger)

	result, err := svc.Sweep(ctx, req)
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	fmt.Print(report.NewRenderer().RenderSweep(result))
	return nil
}
