package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/aramrw/anki-direct/pkg/anki"
	"github.com/aramrw/anki-direct/pkg/config"
	"github.com/rs/zerolog/log"
)

func usage() {
	fmt.Println("Usage:")
	fmt.Println("  ankictl deck list")
	fmt.Println("  ankictl note find <query>")
	os.Exit(1)
}

func main() {
	if len(os.Args) < 3 {
		usage()
	}

	fs := flag.NewFlagSet("ankictl", flag.ExitOnError)
	configPath := fs.String("config", "", "path to the configuration file (default: ~/.config/anki-direct/config.json)")

	var query string
	switch {
	case os.Args[1] == "deck" && os.Args[2] == "list":
		_ = fs.Parse(os.Args[3:])
	case os.Args[1] == "note" && os.Args[2] == "find":
		if len(os.Args) < 4 {
			usage()
		}
		query = os.Args[3]
		_ = fs.Parse(os.Args[4:])
	default:
		usage()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	var opts []anki.Option
	if cfg.Anki.Version != 0 {
		opts = append(opts, anki.WithVersion(cfg.Anki.Version))
	}
	client, err := anki.NewClient(cfg.BaseURL(), opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create client")
	}

	ctx := context.Background()

	switch {
	case os.Args[1] == "deck" && os.Args[2] == "list":
		decks, err := client.Decks.NamesAndIDs(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to list decks")
		}
		fmt.Printf("%-40s %s\n", "NAME", "ID")
		fmt.Printf("%-40s %s\n", "----", "--")
		for pair := decks.Oldest(); pair != nil; pair = pair.Next() {
			fmt.Printf("%-40s %d\n", pair.Key, pair.Value)
		}
	case os.Args[1] == "note" && os.Args[2] == "find":
		ids, err := client.Notes.Find(ctx, anki.RawQuery(query))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to find notes")
		}
		for _, id := range ids {
			fmt.Println(id)
		}
	default:
		usage()
	}
}
