package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/hupe1980/pharmamesh"
	"github.com/hupe1980/pharmamesh/core"
	"github.com/hupe1980/pharmamesh/logging"
	"github.com/hupe1980/pharmamesh/model"
	"github.com/hupe1980/pharmamesh/model/anthropic"
	"github.com/hupe1980/pharmamesh/model/openai"
	"github.com/spf13/cobra"
)

var (
	flagProvider       string
	flagMaxSpecialists int
	flagNoKnowledge    bool
	flagTimeout        time.Duration
	flagVerbose        bool
)

var queryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Run a research query through the orchestrator",
	Long: `Route a free-text research query to the matching specialists and print
the final (optionally synthesized) answer together with the contributing
specialists.

The model provider is selected with --provider:
  openai    - requires OPENAI_API_KEY
  anthropic - requires ANTHROPIC_API_KEY
  mock      - deterministic canned responses, no network`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&flagProvider, "provider", "openai", "model provider (openai, anthropic, mock)")
	queryCmd.Flags().IntVar(&flagMaxSpecialists, "max-specialists", 0, "cap on specialists per query (0 = no cap)")
	queryCmd.Flags().BoolVar(&flagNoKnowledge, "no-knowledge", false, "skip knowledge-base enrichment of instruction contexts")
	queryCmd.Flags().DurationVar(&flagTimeout, "timeout", 3*time.Minute, "overall request timeout")
	queryCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "log orchestration progress to stderr")
}

func runQuery(cmd *cobra.Command, args []string) error {
	m, err := buildModel(flagProvider)
	if err != nil {
		return err
	}

	logger := logging.Logger(logging.NoOpLogger{})
	if flagVerbose {
		logger = logging.NewSlogLogger(slog.LevelDebug, "text", os.Stderr)
	}

	mesh := pharmamesh.New(m, func(o *pharmamesh.Options) {
		o.MaxSpecialists = flagMaxSpecialists
		o.Logger = logger
		if flagNoKnowledge {
			o.Knowledge = nil
		}
	})

	ctx, cancel := context.WithTimeout(cmd.Context(), flagTimeout)
	defer cancel()

	answer, err := mesh.Run(ctx, strings.Join(args, " "))
	if err != nil {
		var runErr *core.RunError
		if errors.As(err, &runErr) {
			fmt.Fprintf(os.Stderr, "partial history: %d messages\n", runErr.State.Len())
		}
		return err
	}

	fmt.Println(answer.Text)
	fmt.Printf("\n-- specialists: %v | synthesized: %v | history: %d messages\n",
		answer.Specialists, answer.Synthesized, answer.HistoryLen)

	return nil
}

func buildModel(provider string) (model.Model, error) {
	switch provider {
	case "openai":
		if os.Getenv("OPENAI_API_KEY") == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
		}
		return openai.NewModel(), nil
	case "anthropic":
		if os.Getenv("ANTHROPIC_API_KEY") == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
		}
		return anthropic.NewModel(), nil
	case "mock":
		return model.NewMockModel("pharmamesh-mock"), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", provider)
	}
}
