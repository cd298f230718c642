package bots

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownBot = errors.New("unknown bot")

var constructors = map[string]func(seed int64) ChessBot{
	"newborn": func(int64) ChessBot { return NewNewbornBot() },
	"random":  func(seed int64) ChessBot { return NewRandomBot(seed) },
	"greedy":  func(seed int64) ChessBot { return NewGreedyBot(seed) },
	"minimax1": func(seed int64) ChessBot {
		return NewMinimaxBot(1, 0, seed)
	},
	"minimax2": func(seed int64) ChessBot {
		return NewMinimaxBot(2, 0, seed)
	},
	"minimax2-pst":      minimaxWith(2, "pst"),
	"minimax2-mobility": minimaxWith(2, "mobility"),
	"minimax2-safety":   minimaxWith(2, "safety"),
}

func minimaxWith(depth int, eval string) func(seed int64) ChessBot {
	return func(seed int64) ChessBot {
		bot := NewMinimaxBot(depth, 0, seed)
		bot.Evaluator = Evaluators[eval]
		bot.EvalName = eval
		return bot
	}
}

// New builds the named bot with its own random source.
func New(name string, seed int64) (ChessBot, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %v)", ErrUnknownBot, name, Names())
	}
	return ctor(seed), nil
}

func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
