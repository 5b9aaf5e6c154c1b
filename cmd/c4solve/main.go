// Command c4solve is a thin runnable front door over the solver core: it
// reads a move sequence, solves the resulting position, and reports the
// outcome (win, loss or draw, with its distance) and the best move. It is
// explicitly not part of THE
// CORE -- board display and interactive CLIs are out of scope for the
// solver itself -- so it carries no search logic of its own.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/connectfour/c4solver/internal/book"
	"github.com/connectfour/c4solver/internal/logging"
	"github.com/connectfour/c4solver/internal/position"
	"github.com/connectfour/c4solver/internal/score"
	"github.com/connectfour/c4solver/internal/search"
	"github.com/connectfour/c4solver/internal/tt"
)

func main() {
	moves := flag.String("moves", "", "move sequence as digits 1-7; reads a line from stdin if omitted")
	bookPath := flag.String("book", "opening_database.bin", "path to the opening book file")
	verbose := flag.Bool("v", false, "log search progress")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logging.Configure(level, nil)

	if err := run(*moves, *bookPath, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(moves, bookPath string, verbose bool) error {
	if moves == "" {
		line, err := readLine(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading move sequence: %w", err)
		}
		moves = line
	}

	pos, err := position.FromMoveSequence(moves)
	if err != nil {
		return fmt.Errorf("parsing move sequence %q: %w", moves, err)
	}

	var opts []search.Option
	if b, err := book.Load(bookPath); err != nil {
		var missing *book.Missing
		var corrupt *book.Corrupt
		if errors.As(err, &missing) || errors.As(err, &corrupt) {
			fmt.Fprintf(os.Stderr, "opening book not loaded: %v\n", err)
		} else {
			return fmt.Errorf("loading opening book: %w", err)
		}
	} else {
		opts = append(opts, search.WithBook(b))
	}

	engine := search.New(tt.New(), opts...)

	var result search.Result
	if verbose {
		result = engine.SolveVerbose(pos)
	} else {
		result = engine.Solve(pos)
	}

	distance := score.ToWinDistance(result.Score, pos.Moves())
	switch {
	case result.Score > 0:
		fmt.Fprintf(os.Stderr, "position is a win in %d moves\n", distance)
	case result.Score < 0:
		fmt.Fprintf(os.Stderr, "position is a loss in %d moves\n", distance)
	default:
		fmt.Fprintln(os.Stderr, "position is a draw")
	}

	if result.BestMove == position.Width {
		fmt.Println("best move: none (terminal position)")
	} else {
		fmt.Printf("best move: %d\n", result.BestMove+1)
	}
	return nil
}

func readLine(f *os.File) (string, error) {
	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("no input")
	}
	return scanner.Text(), nil
}
