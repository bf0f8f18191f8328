package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/polybius/polybius-go/internal/bits"
	"github.com/polybius/polybius-go/internal/config"
	"github.com/polybius/polybius-go/internal/factfile"
	"github.com/polybius/polybius-go/internal/model"
	"github.com/polybius/polybius-go/internal/service"
)

type generateOptions struct {
	factsPath string
	numbers   []string
	texts     []string
	bits      int
	symbols   bool
	addYear   bool
	count     int
	seed      uint64
	explain   bool
}

func generateCmd(cfg *config.Config) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate passwords from facts",
		Long: `Generate builds candidate passwords from facts given as flags or read
from a YAML file. Flags add to the facts loaded from the file.

Examples:
  # Two candidates from a birthday and two words
  polybius generate --number 14:birth_day --number 1999:birth_year --text Apples --text Cats --count 2

  # Facts from a file, no symbols, show where each fragment came from
  polybius generate --facts facts.yaml --symbols=false --explain`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rnd bits.RandomSource
			if cmd.Flags().Changed("seed") {
				rnd = bits.NewSeeded(opts.seed)
			}
			svc := service.NewGeneratorService(limitsFromConfig(*cfg), rnd, nil)
			return runGenerate(cmd.OutOrStdout(), svc, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.factsPath, "facts", "f", "", "YAML file with numbers and texts")
	cmd.Flags().StringArrayVarP(&opts.numbers, "number", "n", nil, "Number fact as VALUE[:category] (repeatable)")
	cmd.Flags().StringArrayVarP(&opts.texts, "text", "t", nil, "Text fact (repeatable)")
	cmd.Flags().IntVarP(&opts.bits, "bits", "b", 0, "Bits per password (default from DEFAULT_BITS)")
	cmd.Flags().BoolVar(&opts.symbols, "symbols", true, "Mix symbols into the password")
	cmd.Flags().BoolVar(&opts.addYear, "add-year", false, "Add the current year as a fact")
	cmd.Flags().IntVarP(&opts.count, "count", "c", 0, "Number of passwords to generate (default from DEFAULT_COUNT)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for reproducible output")
	cmd.Flags().BoolVar(&opts.explain, "explain", false, "Show the source of every fragment")

	return cmd
}

func runGenerate(out io.Writer, svc *service.GeneratorService, opts generateOptions) error {
	var pool model.FactPool
	if opts.factsPath != "" {
		var err error
		pool, err = factfile.Load(opts.factsPath)
		if err != nil {
			return err
		}
	}

	for _, raw := range opts.numbers {
		n, err := parseNumber(raw)
		if err != nil {
			return err
		}
		pool.Numbers = append(pool.Numbers, n)
	}
	pool.Texts = append(pool.Texts, opts.texts...)

	symbols := opts.symbols
	resp, err := svc.Generate(model.GenerateRequest{
		Numbers: pool.Numbers,
		Texts:   pool.Texts,
		Bits:    opts.bits,
		Symbols: &symbols,
		AddYear: opts.addYear,
		Count:   opts.count,
	})
	if err != nil {
		return err
	}

	for _, c := range resp.Passwords {
		fmt.Fprintln(out, c.Password)
		if opts.explain {
			for _, b := range c.Bits {
				fmt.Fprintf(out, "  %-6s %s\n", b.Fragment, b.Label)
			}
			fmt.Fprintf(out, "  entropy ~%.1f bits\n", c.Entropy)
		}
	}
	return nil
}

// parseNumber parses VALUE[:category]. A missing or unknown category means a relevant number.
func parseNumber(raw string) (model.Number, error) {
	value, category, _ := strings.Cut(raw, ":")
	v, err := strconv.ParseUint(strings.TrimSpace(value), 10, 16)
	if err != nil {
		return model.Number{}, fmt.Errorf("invalid number %q: must be 0-65535", raw)
	}
	return model.Number{Value: uint16(v), Category: model.ParseCategory(category)}, nil
}
