// Package arena plays bot-against-bot matches concurrently and reports the
// score with Elo and likelihood-of-superiority estimates.
package arena

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"idiotchess/board"
	"idiotchess/bots"
)

// Run plays cfg.Games games and returns A's score. Every worker owns its own
// pair of bots.
func Run(ctx context.Context, cfg Config, log zerolog.Logger) (Stats, error) {
	for _, name := range []string{cfg.PlayerA, cfg.PlayerB} {
		if _, err := bots.New(name, cfg.Seed); err != nil {
			return Stats{}, err
		}
	}
	var openings = cfg.Openings
	if len(openings) == 0 {
		openings = []string{board.StartFEN}
	}
	var concurrency = cfg.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	log.Info().
		Str("a", cfg.PlayerA).
		Str("b", cfg.PlayerB).
		Int("games", cfg.Games).
		Int("concurrency", concurrency).
		Int("openings", len(openings)).
		Msg("arena started")
	defer func() { log.Info().Msg("arena finished") }()

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan GameRecord)

	g.Go(func() error {
		defer close(gameInfos)
		return loadGames(ctx, cfg.Games, openings, gameInfos)
	})

	var stats = ComputeStats(0, 0, 0)
	g.Go(func() error {
		for rec := range gameResults {
			stats = stats.add(rec)
			log.Info().
				Int("game", rec.Number).
				Str("white", rec.White).
				Str("black", rec.Black).
				Stringer("result", rec.Result).
				Str("reason", rec.Reason).
				Int("plies", len(rec.Moves)).
				Msg("game finished")
			log.Info().
				Str("score", fmt.Sprintf("%d - %d - %d", stats.Wins, stats.Losses, stats.Draws)).
				Float64("fraction", stats.WinningFraction).
				Float64("elo", stats.EloDifference).
				Float64("los", stats.LOS).
				Int("games", stats.Games()).
				Msg("standings")
		}
		return nil
	})

	var wg = &sync.WaitGroup{}
	for i := 0; i < concurrency; i++ {
		var seed = cfg.Seed + int64(i)
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return playGames(ctx, cfg, seed, log, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	if err := g.Wait(); err != nil {
		return stats, err
	}
	return stats, nil
}

// loadGames pairs every opening with both colour assignments.
func loadGames(ctx context.Context, games int, openings []string, gameInfos chan<- gameInfo) error {
	for i := 0; i < games; i++ {
		var info = gameInfo{
			number:   i + 1,
			opening:  openings[(i/2)%len(openings)],
			aIsWhite: i%2 == 0,
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- info:
		}
	}
	return nil
}

func playGames(
	ctx context.Context,
	cfg Config,
	seed int64,
	log zerolog.Logger,
	gameInfos <-chan gameInfo,
	gameResults chan<- GameRecord,
) error {
	botA, err := bots.New(cfg.PlayerA, seed)
	if err != nil {
		return err
	}
	botB, err := bots.New(cfg.PlayerB, seed)
	if err != nil {
		return err
	}
	for _, bot := range []bots.ChessBot{botA, botB} {
		if mb, ok := bot.(*bots.MinimaxBot); ok {
			mb.Logger = log
		}
	}
	for info := range gameInfos {
		start, err := board.FromFEN(info.opening)
		if err != nil {
			return fmt.Errorf("game %d: %w", info.number, err)
		}
		var white, black = botA, botB
		if !info.aIsWhite {
			white, black = botB, botA
		}
		rec, err := PlayGame(ctx, white, black, start, cfg.MaxPlies)
		if err != nil {
			return fmt.Errorf("game %d: %w", info.number, err)
		}
		rec.Number = info.number
		rec.AIsWhite = info.aIsWhite
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- rec:
		}
	}
	return nil
}
