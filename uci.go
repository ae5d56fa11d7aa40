package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chess-core/bitmg"
)

func main() {
	uciLoop(os.Stdin, os.Stdout)
}

func uciLoop(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	board := bitmg.NewPosition() // the game board
	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Fprintln(out, "id name chess-core")
			fmt.Fprintln(out, "id author chess-core authors")
			fmt.Fprintln(out, "uciok")
		case "isready":
			bitmg.DefaultTables()
			fmt.Fprintln(out, "readyok")
		case "ucinewgame":
			board = bitmg.NewPosition()
		case "quit":
			return
		case "d":
			fmt.Fprint(out, board.String())
			fmt.Fprintln(out, "Fen:", board.FEN())
			fmt.Fprintf(out, "Key: %016x\n", board.Hash())
			fmt.Fprintln(out, "Checkers:", board.InCheck())
		case "go":
			goCommand(out, board, tokens[1:])
		case "position":
			if next, err := positionCommand(tokens[1:]); err != nil {
				fmt.Fprintln(out, "info string", err)
			} else {
				board = next
			}
		default:
			fmt.Fprintln(out, "info string Unknown command:", line)
		}
	}
}

// positionCommand handles "position startpos|fen <fen> [moves ...]". On any
// error the caller keeps its current position.
func positionCommand(args []string) (bitmg.Position, error) {
	if len(args) == 0 {
		return bitmg.Position{}, errors.New("Malformed position command")
	}
	movesAt := len(args)
	for i, a := range args {
		if strings.ToLower(a) == "moves" {
			movesAt = i
			break
		}
	}
	var board bitmg.Position
	switch strings.ToLower(args[0]) {
	case "startpos":
		board = bitmg.NewPosition()
	case "fen":
		if movesAt < 2 {
			return bitmg.Position{}, errors.New("Invalid fen position")
		}
		var err error
		if board, err = bitmg.ParseFEN(strings.Join(args[1:movesAt], " ")); err != nil {
			return bitmg.Position{}, err
		}
	default:
		return bitmg.Position{}, errors.New("Invalid position subcommand")
	}
	if movesAt >= len(args) {
		return board, nil
	}
	moves := make([]string, 0, len(args)-movesAt-1)
	for _, m := range args[movesAt+1:] {
		moves = append(moves, strings.ToLower(m))
	}
	return bitmg.ApplyMoveList(board, moves)
}

// goCommand supports "go perft <depth>". Searching is left to other programs.
func goCommand(out io.Writer, board bitmg.Position, args []string) {
	if len(args) == 0 || strings.ToLower(args[0]) != "perft" {
		fmt.Fprintln(out, "info string search is not supported; use go perft <depth>")
		return
	}
	if len(args) < 2 {
		fmt.Fprintln(out, "info string Malformed go command option perft")
		return
	}
	depth, err := strconv.Atoi(args[1])
	if err != nil || depth <= 0 {
		fmt.Fprintln(out, "info string Malformed go command option; could not convert perft depth")
		return
	}
	start := time.Now()
	div := bitmg.PerftDivide(board, depth)
	byText := make(map[string]uint64, len(div))
	var total uint64
	for m, n := range div {
		byText[m.String()] = n
		total += n
	}
	keys := maps.Keys(byText)
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "%s: %d\n", k, byText[k])
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Nodes searched:", total)
	fmt.Fprintf(out, "info string perft %d took %s\n", depth, time.Since(start))
}
