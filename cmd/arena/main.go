package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog"

	"idiotchess/arena"
	"idiotchess/bots"
)

type Config struct {
	White       string
	Black       string
	Games       int
	Concurrency int
	MaxPlies    int
	Seed        int64
	Openings    string
	Verbose     bool
}

var config Config

func main() {
	var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := run(log); err != nil {
		log.Fatal().Err(err).Msg("arena failed")
	}
}

func run(log zerolog.Logger) error {
	var names = strings.Join(bots.Names(), ", ")
	flag.StringVar(&config.White, "white", "minimax1", "Bot A ("+names+")")
	flag.StringVar(&config.Black, "black", "greedy", "Bot B ("+names+")")
	flag.IntVar(&config.Games, "games", 20, "Number of games")
	flag.IntVar(&config.Concurrency, "concurrency", 4, "Number of games played at once")
	flag.IntVar(&config.MaxPlies, "maxplies", 300, "Ply limit per game, 0 for none")
	flag.Int64Var(&config.Seed, "seed", 1, "Random seed")
	flag.StringVar(&config.Openings, "openings", "", "File with one FEN per line (built-in set if empty)")
	flag.BoolVar(&config.Verbose, "v", false, "Log every bot decision")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Info().Interface("config", config).Msg("")

	var openings = arena.DefaultOpenings()
	if config.Openings != "" {
		data, err := os.ReadFile(config.Openings)
		if err != nil {
			return err
		}
		openings, err = arena.ParseOpenings(string(data))
		if err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stats, err := arena.Run(ctx, arena.Config{
		PlayerA:     config.White,
		PlayerB:     config.Black,
		Games:       config.Games,
		Concurrency: config.Concurrency,
		MaxPlies:    config.MaxPlies,
		Seed:        config.Seed,
		Openings:    openings,
	}, log)
	if err != nil {
		return err
	}
	log.Info().
		Int("wins", stats.Wins).
		Int("losses", stats.Losses).
		Int("draws", stats.Draws).
		Float64("elo", stats.EloDifference).
		Float64("los", stats.LOS).
		Msgf("%s vs %s", config.White, config.Black)
	return nil
}
