package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/reddit-data-collector/internal/config"
	"github.com/reddit-data-collector/internal/discovery"
	"github.com/reddit-data-collector/internal/fetcher"
	"github.com/reddit-data-collector/internal/output"
	"github.com/reddit-data-collector/internal/reddit"
	"github.com/reddit-data-collector/pkg/logger"
	"github.com/rs/zerolog"
)

func main() {
	os.Exit(run())
}

func run() int {
	var outputPath string
	var verbose bool
	flag.StringVar(&outputPath, "output", "", "output file path for collected data (JSON)")
	flag.StringVar(&outputPath, "o", "", "output file path (shorthand)")
	flag.BoolVar(&verbose, "verbose", false, "enable verbose logging")
	flag.BoolVar(&verbose, "v", false, "enable verbose logging (shorthand)")
	flag.Parse()

	log := logger.New()
	if verbose {
		log = log.Level(zerolog.DebugLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return 1
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("Missing required Reddit API credentials")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := reddit.NewHTTPClient(
		cfg.Reddit.ClientID,
		cfg.Reddit.ClientSecret,
		cfg.Reddit.UserAgent,
		cfg.Reddit.RequestTimeout,
	)
	selector := discovery.NewSelector(client, cfg, log)
	collector := fetcher.NewCollector(selector, fetcher.New(client, cfg, log))

	mode := "Production"
	if cfg.Fetch.UseDevelopmentList {
		mode = "Development"
	}
	fmt.Println("Reddit Data Collection")
	fmt.Println("======================")
	fmt.Printf("Mode:                %s\n", mode)
	fmt.Printf("Posts per subreddit: %d\n", cfg.Fetch.PostsPerSubreddit)
	fmt.Printf("Comments per post:   %d\n", cfg.Fetch.CommentsPerPost)
	fmt.Printf("Request delay:       %s\n", cfg.Fetch.RequestDelay)
	fmt.Println()

	result := collector.Run(ctx)

	if ctx.Err() != nil {
		fmt.Println("\nData collection interrupted")
		return 1
	}

	summary := result.Summary
	fmt.Println("\nFinal results:")
	fmt.Printf("  Successful subreddits: %d/%d\n", summary.SuccessfulSubreddits, result.Metadata.TotalSubreddits)
	fmt.Printf("  Total posts collected: %d\n", summary.TotalPosts)
	fmt.Printf("  Total comments collected: %d\n", summary.TotalComments)
	fmt.Printf("  Duration: %.2f seconds\n", result.Metadata.FetchDurationSeconds)

	if len(summary.Errors) > 0 {
		fmt.Printf("  Failed subreddits: %d\n", len(summary.Errors))
		if verbose {
			for _, e := range summary.Errors {
				fmt.Printf("    - r/%s: %s\n", e.Subreddit, e.Error)
			}
		}
	}

	path := outputPath
	if path == "" {
		path = output.DefaultPath()
	}

	size, err := output.Write(result, path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Could not save collected data")
		return 1
	}

	fmt.Printf("\nData saved to %s (%.2f MB)\n", path, float64(size)/(1024*1024))
	return 0
}
