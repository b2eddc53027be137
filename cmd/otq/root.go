package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/tskir/opentargets-test/internal/assoc"
	"github.com/tskir/opentargets-test/internal/config"
	"github.com/tskir/opentargets-test/internal/debug"
	"github.com/tskir/opentargets-test/internal/opentargets"
	"github.com/tskir/opentargets-test/internal/report"
	"github.com/tskir/opentargets-test/internal/retry"
)

var rootCmd = &cobra.Command{
	Use:   "otq",
	Short: "Query Open Targets associations and summarize their scores",
	Long: `Query the Open Targets REST API by target (gene) and/or by disease and
calculate simple statistics for the association_score.overall field: min, max,
mean and sample standard deviation.

Both parameters are optional, but at least one must be specified. When both
parameters are specified, the target and disease analyses are run separately.

Examples:
  otq --target ENSG00000197386
  otq --disease Orphanet_399
  otq -t ENSG00000197386 -d Orphanet_399`,
	Run: func(cmd *cobra.Command, args []string) {
		targetID, _ := cmd.Flags().GetString("target")
		diseaseID, _ := cmd.Flags().GetString("disease")

		if err := validateFilters(targetID, diseaseID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			_ = cmd.Usage()
			os.Exit(2)
		}

		client := opentargets.NewClient().
			WithEndpoint(config.APIEndpoint()).
			WithPageSize(config.PageSize()).
			WithHTTPClient(&http.Client{Timeout: config.HTTPTimeout()})

		if err := run(context.Background(), client, config.RetryPolicy(), targetID, diseaseID, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.Flags().StringP("target", "t", "", "Target (gene) ID, e.g. ENSG00000197386")
	rootCmd.Flags().StringP("disease", "d", "", "Disease ID, e.g. Orphanet_399")
}

// validateFilters enforces that at least one query axis was requested.
// Checked before any network activity.
func validateFilters(targetID, diseaseID string) error {
	if targetID == "" && diseaseID == "" {
		return errors.New("at least one of --target or --disease must be specified")
	}
	return nil
}

// run drives the query/aggregate/report pipeline. Split from the cobra
// handler so tests can drive it with a fake API and an in-memory writer.
func run(ctx context.Context, api opentargets.AssociationAPI, pol retry.Policy, targetID, diseaseID string, out io.Writer) error {
	debug.Logf("querying associations: target=%q disease=%q", targetID, diseaseID)

	results, err := assoc.Aggregate(ctx, api, pol, targetID, diseaseID)
	if err != nil {
		return err
	}

	rep := report.New(out)
	rep.Raw(results)
	return rep.Summary(results)
}
