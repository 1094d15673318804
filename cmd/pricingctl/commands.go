package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/BharatAnkh/borrower-insight-hub/internal/application/dto"
	"github.com/BharatAnkh/borrower-insight-hub/pkg/tlsutil"
)

type rootOptions struct {
	remote remoteOptions
	pretty bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "pricingctl",
		Short:         "Price loans, score borrowers and match lenders",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.remote.addr, "server", "", "pricingd gRPC address; empty runs the engine in process")
	cmd.PersistentFlags().BoolVar(&opts.remote.useTLS, "tls", false, "Use TLS when dialing --server")
	cmd.PersistentFlags().StringVar(&opts.remote.caFile, "tls-ca", "", "CA certificate for --server (implies --tls)")
	cmd.PersistentFlags().BoolVar(&opts.remote.insecureSkipVerify, "tls-skip-verify", false, "Skip server certificate verification (development only)")
	cmd.PersistentFlags().BoolVar(&opts.pretty, "pretty", true, "Pretty-print JSON output")

	cmd.AddCommand(
		priceCommand(opts),
		scoreCommand(opts),
		classifyCommand(opts),
		matchCommand(opts),
		searchCommand(opts),
		devCertsCommand(),
	)
	return cmd
}

// withEngine opens the engine selected by the root flags, runs fn and
// prints its result as JSON.
func withEngine[T any](cmd *cobra.Command, opts *rootOptions, fn func(pricingEngine) (T, error)) error {
	var (
		engine pricingEngine
		err    error
	)
	if opts.remote.addr != "" {
		engine, err = newRemoteEngine(opts.remote)
	} else {
		engine, err = newLocalEngine(cmd.ErrOrStderr())
	}
	if err != nil {
		return err
	}
	defer engine.Close()

	resp, err := fn(engine)
	if err != nil {
		return err
	}
	return printJSON(cmd, resp, opts.pretty)
}

func printJSON(cmd *cobra.Command, v any, pretty bool) error {
	var (
		out []byte
		err error
	)
	if pretty {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(append(out, '\n'))
	return err
}

func priceCommand(opts *rootOptions) *cobra.Command {
	var (
		principal float64
		rate      float64
		fee       float64
		term      int
		currency  string
		schedule  bool
		start     string
	)

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Quote the payment and fees of an amortized loan",
		Long: `Quote the periodic payment, origination fee and net disbursement of a
fixed-rate amortized loan. Omitted --rate and --fee fall back to the pricing
policy (PRICING_BASE_RATE_PERCENT, PRICING_DEFAULT_ORIGINATION_FEE_PERCENT).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := dto.PriceLoanRequest{Principal: principal, TermMonths: term, Currency: currency}
			if cmd.Flags().Changed("rate") {
				req.AnnualRatePercent = &rate
			}
			if cmd.Flags().Changed("fee") {
				req.OriginationFeePercent = &fee
			}

			if !schedule {
				return withEngine(cmd, opts, func(e pricingEngine) (dto.QuoteResponse, error) {
					return e.PriceLoan(cmd.Context(), req)
				})
			}

			var startDate time.Time
			if start != "" {
				parsed, err := time.Parse(time.DateOnly, start)
				if err != nil {
					return fmt.Errorf("--start must be YYYY-MM-DD: %w", err)
				}
				startDate = parsed
			}
			return withEngine(cmd, opts, func(e pricingEngine) (dto.ScheduleResponse, error) {
				return e.GetSchedule(cmd.Context(), dto.ScheduleRequest{Loan: req, StartDate: startDate})
			})
		},
	}

	cmd.Flags().Float64Var(&principal, "principal", 0, "Loan principal")
	cmd.Flags().Float64Var(&rate, "rate", 0, "Annual interest rate in percent")
	cmd.Flags().IntVar(&term, "term", 0, "Term in months")
	cmd.Flags().Float64Var(&fee, "fee", 0, "Origination fee in percent of principal")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO 4217 currency code")
	cmd.Flags().BoolVar(&schedule, "schedule", false, "Print the full amortization schedule")
	cmd.Flags().StringVar(&start, "start", "", "Schedule start date (YYYY-MM-DD); defaults to today")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("term")
	return cmd
}

func scoreCommand(opts *rootOptions) *cobra.Command {
	var (
		factors []string
		subject string
		drivers int
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Aggregate weighted factors into a 0-100 identity score",
		Example: `  pricingctl score --factor "Payment History:85:35" --factor "Income Stability:72:30"
  pricingctl score --subject BRW001`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := dto.AggregateScoreRequest{SubjectID: subject, DriverLimit: drivers}
			for _, raw := range factors {
				f, err := parseFactor(raw)
				if err != nil {
					return err
				}
				req.Factors = append(req.Factors, f)
			}
			if len(req.Factors) == 0 && req.SubjectID == "" {
				return fmt.Errorf("either --factor or --subject is required")
			}
			return withEngine(cmd, opts, func(e pricingEngine) (dto.CompositeScoreResponse, error) {
				return e.AggregateScore(cmd.Context(), req)
			})
		},
	}

	cmd.Flags().StringArrayVar(&factors, "factor", nil, `Weighted factor as "Name:raw:weight" (repeatable)`)
	cmd.Flags().StringVar(&subject, "subject", "", "Fetch verified factors for this subject instead")
	cmd.Flags().IntVar(&drivers, "drivers", 0, "Number of top drivers to report")
	return cmd
}

// parseFactor reads "Name:raw:weight". The name may itself contain colons.
func parseFactor(raw string) (dto.ScoreFactorInput, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 3 {
		return dto.ScoreFactorInput{}, fmt.Errorf("factor %q: want Name:raw:weight", raw)
	}
	n := len(parts)
	name := strings.TrimSpace(strings.Join(parts[:n-2], ":"))
	if name == "" {
		return dto.ScoreFactorInput{}, fmt.Errorf("factor %q: name is empty", raw)
	}
	score, err := strconv.ParseFloat(strings.TrimSpace(parts[n-2]), 64)
	if err != nil {
		return dto.ScoreFactorInput{}, fmt.Errorf("factor %q: raw score: %w", raw, err)
	}
	weight, err := strconv.ParseFloat(strings.TrimSpace(parts[n-1]), 64)
	if err != nil {
		return dto.ScoreFactorInput{}, fmt.Errorf("factor %q: weight: %w", raw, err)
	}
	return dto.ScoreFactorInput{Name: name, RawScore: score, WeightPercent: weight}, nil
}

func classifyCommand(opts *rootOptions) *cobra.Command {
	var (
		score float64
		scale string
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Map a score on a named scale to a risk tier",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEngine(cmd, opts, func(e pricingEngine) (dto.ClassifyRiskResponse, error) {
				return e.ClassifyRisk(cmd.Context(), dto.ClassifyRiskRequest{Score: score, Scale: scale})
			})
		},
	}

	cmd.Flags().Float64Var(&score, "score", 0, "Score to classify")
	cmd.Flags().StringVar(&scale, "scale", "lending", "Score scale: lending (300-850) or identity (0-100)")
	_ = cmd.MarkFlagRequired("score")
	return cmd
}

func matchCommand(opts *rootOptions) *cobra.Command {
	var (
		score          float64
		amount         float64
		qualifyingOnly bool
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Evaluate a borrower against every lender in the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEngine(cmd, opts, func(e pricingEngine) (dto.MatchLendersResponse, error) {
				return e.MatchLenders(cmd.Context(), dto.MatchLendersRequest{
					Score:          score,
					Amount:         amount,
					QualifyingOnly: qualifyingOnly,
				})
			})
		},
	}

	cmd.Flags().Float64Var(&score, "score", 0, "Borrower lending score (300-850)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Requested amount")
	cmd.Flags().BoolVar(&qualifyingOnly, "qualifying-only", false, "Only print lenders the borrower qualifies for")
	_ = cmd.MarkFlagRequired("score")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func searchCommand(opts *rootOptions) *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:       "search (lenders|borrowers) [query]",
		Short:     "Free-text search over the catalog",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{"lenders", "borrowers"},
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.SearchRequest{Fields: fields}
			if len(args) == 2 {
				req.Query = args[1]
			}
			switch args[0] {
			case "lenders":
				return withEngine(cmd, opts, func(e pricingEngine) (dto.SearchLendersResponse, error) {
					return e.SearchLenders(cmd.Context(), req)
				})
			case "borrowers":
				return withEngine(cmd, opts, func(e pricingEngine) (dto.SearchBorrowersResponse, error) {
					return e.SearchBorrowers(cmd.Context(), req)
				})
			default:
				return fmt.Errorf("unknown catalog %q: want lenders or borrowers", args[0])
			}
		},
	}

	cmd.Flags().StringSliceVar(&fields, "fields", nil, "Fields to search; defaults to the catalog's search fields")
	return cmd
}

func devCertsCommand() *cobra.Command {
	var (
		hosts  []string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "dev-certs",
		Short: "Generate a development CA and server certificate for pricingd",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := tlsutil.GenerateSelfSignedCert(hosts, outDir); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote ca.pem, server.pem and keys to %s\n", outDir)
			return err
		},
	}

	cmd.Flags().StringSliceVar(&hosts, "hosts", []string{"localhost", "127.0.0.1"}, "Host names and IPs for the server certificate")
	cmd.Flags().StringVar(&outDir, "out", "certs", "Output directory")
	return cmd
}
