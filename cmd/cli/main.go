package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/altolabs/cashplan/internal/classify"
	"github.com/altolabs/cashplan/internal/config"
	"github.com/altolabs/cashplan/internal/domain"
	"github.com/altolabs/cashplan/internal/logger"
	"github.com/altolabs/cashplan/internal/planner"
)

func main() {
	_ = godotenv.Load()
	log := logger.NewWithLevel(config.Load().LogLevel)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "classify":
		runClassify(log)
	case "plan":
		runPlan(log)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Cashplan CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  cli <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  classify  Classify a transaction feed into cash events")
	fmt.Println("  plan      Classify a transaction feed and build a plan")
	fmt.Println("  help      Show this help message")
	fmt.Println("\nRun 'cli <command> -h' for more information on a command.")
}

func runClassify(log zerolog.Logger) {
	fs := flag.NewFlagSet("classify", flag.ExitOnError)
	feedPath := fs.String("feed", "", "Path to a transaction feed JSON file ({\"added\": [...]})")
	fs.Parse(os.Args[2:])

	feed := loadFeed(log, *feedPath)
	cashIn, cashOut := classify.Transactions(feed)

	log.Info().
		Int("added", len(feed.Added)).
		Int("cash_in", len(cashIn)).
		Int("cash_out", len(cashOut)).
		Msg("Feed classified")

	printJSON(log, map[string]any{
		"cashIn":           cashIn,
		"cashOut":          cashOut,
		"suggested_policy": classify.DefaultPolicy(),
	})
}

func runPlan(log zerolog.Logger) {
	fs := flag.NewFlagSet("plan", flag.ExitOnError)
	feedPath := fs.String("feed", "", "Path to a transaction feed JSON file ({\"added\": [...]})")
	cardsPath := fs.String("cards", "", "Optional path to a cards JSON file ([{...}])")
	fs.Parse(os.Args[2:])

	feed := loadFeed(log, *feedPath)
	cashIn, cashOut := classify.Transactions(feed)

	cards := []domain.Card{}
	if *cardsPath != "" {
		data, err := os.ReadFile(*cardsPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *cardsPath).Msg("Failed to read cards file")
		}
		if err := json.Unmarshal(data, &cards); err != nil {
			log.Fatal().Err(err).Msg("Failed to parse cards file")
		}
	}

	payload := domain.RequestPayload{
		User:    domain.User{ID: "usr_cli"},
		Policy:  classify.DefaultPolicy(),
		CashIn:  cashIn,
		CashOut: cashOut,
		Cards:   cards,
		Intent:  domain.Intent{Name: domain.IntentFeeProof},
	}

	engine := planner.New(planner.UUIDGenerator{}, log)
	printJSON(log, engine.BuildPlan(payload))
}

func loadFeed(log zerolog.Logger, path string) domain.TransactionFeed {
	if path == "" {
		log.Fatal().Msg("Error: --feed is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to read feed file")
	}

	var feed domain.TransactionFeed
	if err := json.Unmarshal(data, &feed); err != nil {
		log.Fatal().Err(err).Msg("Failed to parse feed file")
	}
	return feed
}

func printJSON(log zerolog.Logger, v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode output")
	}
	fmt.Println(string(out))
}
