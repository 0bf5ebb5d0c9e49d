package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/pvershinin/trustgate/internal/pipeline"
)

var (
	concurrency  int
	ratePerSec   float64
	batchJSON    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Verify a large record file with parallel workers",
	Long: `Batch verifies many records concurrently:
- Records are checked in parallel with a configurable worker count
- Verdicts are reported strictly in input order
- An optional throttle bounds records per second

Example:
  trustgate batch records.json
  trustgate batch records.json --concurrency 10 --json report.json
  trustgate batch records.yaml --rate 100 --type brand`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().Float64Var(&ratePerSec, "rate", 0, "max records per second (0 = unthrottled)")
	batchCmd.Flags().StringVar(&batchJSON, "json", "", "output JSON report path (optional)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	batchCmd.Flags().StringVar(&entityType, "type", "auto", "entity type (brand, policy, generic, auto)")
	batchCmd.Flags().BoolVar(&permissive, "permissive", false, "report rejected records instead of failing")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable verdict cache")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	entity, err := pipeline.ParseEntityType(entityType)
	if err != nil {
		return err
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	if concurrency > 0 {
		cfg.Concurrency.Workers = concurrency
	}
	if ratePerSec > 0 {
		cfg.Concurrency.RatePerSecond = ratePerSec
	}

	records, err := pipeline.LoadRecords(file)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Trustgate Batch Verification\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:  %s\n", file)
	fmt.Fprintf(os.Stderr, "  Records:     %d\n", len(records))
	fmt.Fprintf(os.Stderr, "  Workers:     %d\n", cfg.Concurrency.Workers)
	fmt.Fprintf(os.Stderr, "  Entity type: %s\n", entity)
	fmt.Fprintf(os.Stderr, "  Timeout:     %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	p := pipeline.NewPipeline(cfg)
	start := time.Now()
	report, err := p.Run(ctx, records, entity)
	if err != nil {
		return err
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeDetails)
	if batchJSON != "" {
		if err := renderer.WriteJSON(report, batchJSON); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", batchJSON)
	}
	renderer.PrintSummary(os.Stdout, report)
	fmt.Fprintf(os.Stderr, "  Elapsed: %v\n\n", time.Since(start).Round(time.Millisecond))

	if cfg.Verification.Strict && report.Failed > 0 {
		return fmt.Errorf("%d of %d records failed verification", report.Failed, report.Total)
	}

	return nil
}
