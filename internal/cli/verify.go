package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pvershinin/trustgate/internal/model"
	"github.com/pvershinin/trustgate/internal/pipeline"
)

var (
	entityType string
	permissive bool
	outJSON    string
	noCache    bool
	noDetails  bool
	runTimeout time.Duration
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify <file>",
	Short: "Verify records from a JSON or YAML file",
	Long: `Verify runs every record in the input file through the trust gate:
- Hallucination scan: template placeholders, hedging language, unsourced KPIs
- Field completeness and source presence checks
- Cross-source validation for brand and policy entities
- Aggregate pass/fail report with per-record verdicts

In strict mode (default) the command fails when any record is rejected.
With --permissive, rejected records are reported but the command succeeds.

Example:
  trustgate verify brands.json
  trustgate verify policies.yaml --type policy --json report.json
  trustgate verify records.json --permissive --type auto`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&entityType, "type", "auto", "entity type (brand, policy, generic, auto)")
	verifyCmd.Flags().BoolVar(&permissive, "permissive", false, "report rejected records instead of failing")
	verifyCmd.Flags().StringVar(&outJSON, "json", "", "output JSON report path (optional)")
	verifyCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable verdict cache")
	verifyCmd.Flags().BoolVar(&noDetails, "no-details", false, "omit per-record details from output")
	verifyCmd.Flags().DurationVar(&runTimeout, "timeout", time.Minute, "overall run timeout")
}

// buildConfig layers the config file and environment over defaults, then
// applies shared CLI flags. Flags keep the highest priority.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if noCache {
		cfg.Cache.Enabled = false
	}
	if noDetails {
		cfg.Output.IncludeDetails = false
	}
	if permissive {
		cfg.Verification.Strict = false
	}
	if verbose {
		cfg.Output.Verbose = true
	}

	return cfg, nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	entity, err := pipeline.ParseEntityType(entityType)
	if err != nil {
		return err
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	records, err := pipeline.LoadRecords(file)
	if err != nil {
		return err
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Verifying %d records from %s (type: %s, strict: %v)\n",
			len(records), file, entity, cfg.Verification.Strict)
	}

	p := pipeline.NewPipeline(cfg)
	report, err := p.Run(ctx, records, entity)
	if err != nil {
		return err
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeDetails)
	if outJSON != "" {
		if err := renderer.WriteJSON(report, outJSON); err != nil {
			return err
		}
		if cfg.Output.Verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}
	renderer.PrintSummary(os.Stdout, report)

	if cfg.Verification.Strict && report.Failed > 0 {
		return fmt.Errorf("%d of %d records failed verification", report.Failed, report.Total)
	}

	return nil
}
