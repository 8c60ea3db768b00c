// Package cli holds the fxctl commands.
package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fiscly/fiscly_backend/internal/core/domain"
	portssvc "github.com/fiscly/fiscly_backend/internal/core/ports/services"
	"github.com/fiscly/fiscly_backend/internal/dto"
	"github.com/fiscly/fiscly_backend/internal/middleware"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Factories build the services a command needs. The returned func releases them.
type Factories struct {
	Resolver func(ctx context.Context) (portssvc.RateResolverSvc, func(), error)
	Backfill func(ctx context.Context) (portssvc.InvoiceBackfillSvc, func(), error)
	// Signing returns the secret and issuer the API verifies tokens with.
	Signing func() (secret, issuer string, err error)
	Now     func() time.Time
}

// NewRootCommand assembles fxctl.
func NewRootCommand(f Factories) *cobra.Command {
	if f.Now == nil {
		f.Now = time.Now
	}
	rootCmd := &cobra.Command{
		Use:           "fxctl",
		Short:         "Inspect exchange rates and backfill invoice USD conversions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("store", "", "Override STORE_DRIVER (postgres|mongo)")
	rootCmd.PersistentFlags().Bool("debug", false, "Debug logging")
	_ = viper.BindPFlag("STORE_DRIVER", rootCmd.PersistentFlags().Lookup("store"))
	_ = viper.BindPFlag("DEBUG", rootCmd.PersistentFlags().Lookup("debug"))

	rootCmd.AddCommand(rateCommand(f), backfillCommand(f), tokenCommand(f))
	return rootCmd
}

func rateCommand(f Factories) *cobra.Command {
	var date, to string

	cmd := &cobra.Command{
		Use:   "rate FROM",
		Short: "Resolve the rate of a currency for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from := strings.ToUpper(args[0])
			to = strings.ToUpper(to)
			if !dto.IsCurrencyCode(from) || !dto.IsCurrencyCode(to) {
				return fmt.Errorf("currency codes must be three letters, got %q and %q", args[0], to)
			}
			at, err := dto.FXRateParams{Date: date}.RateDate(f.Now())
			if err != nil {
				return fmt.Errorf("--date: %w", err)
			}

			resolver, release, err := f.Resolver(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			r := resolver.Resolve(cmd.Context(), from, to, at)
			fmt.Fprintf(cmd.OutOrStdout(), "%s/%s %s: %s (source %s, rate date %s)\n",
				from, to, domain.FormatFXDate(at), r.Rate.String(), r.Source, r.Date)
			if r.Source.IsDegraded() {
				fmt.Fprintln(cmd.OutOrStdout(), "warning: rate is not from the requested date window")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Rate date (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVar(&to, "to", domain.BaseCurrency, "Target currency")
	return cmd
}

func backfillCommand(f Factories) *cobra.Command {
	var workspaceID string

	cmd := &cobra.Command{
		Use:   "backfill",
		Short: "Convert every invoice of a workspace to USD",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, release, err := f.Backfill(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			results, err := svc.BackfillWorkspace(cmd.Context(), workspaceID)
			if err != nil {
				return err
			}
			printBackfillSummary(cmd, workspaceID, results)
			return nil
		},
	}
	cmd.Flags().StringVar(&workspaceID, "workspace", "", "Workspace ID")
	_ = cmd.MarkFlagRequired("workspace")
	return cmd
}

func tokenCommand(f Factories) *cobra.Command {
	var userID string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign an API bearer token for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(userID) == "" {
				return fmt.Errorf("--user must not be blank")
			}
			if ttl <= 0 {
				return fmt.Errorf("--ttl must be positive, got %s", ttl)
			}
			secret, issuer, err := f.Signing()
			if err != nil {
				return err
			}
			token, err := middleware.IssueToken(secret, issuer, userID, ttl)
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "User ID to put in the token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func printBackfillSummary(cmd *cobra.Command, workspaceID string, results []domain.ConversionResult) {
	counts := make(map[domain.ConversionOutcome]int)
	unpersisted := 0
	for _, r := range results {
		counts[r.Outcome]++
		if !r.Persisted {
			unpersisted++
		}
	}

	outcomes := make([]string, 0, len(counts))
	for outcome := range counts {
		outcomes = append(outcomes, string(outcome))
	}
	sort.Strings(outcomes)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "workspace %s: %d invoices\n", workspaceID, len(results))
	for _, outcome := range outcomes {
		fmt.Fprintf(out, "  %-18s %d\n", outcome, counts[domain.ConversionOutcome(outcome)])
	}
	if unpersisted > 0 {
		fmt.Fprintf(out, "  %d conversions were not stored and will be retried on next read\n", unpersisted)
	}
}
