// Command sudoku reads a Sudoku puzzle from stdin and solves it with the
// exact-cover encoder in the sudoku package.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/kadenji/xcover/sudoku"
	"github.com/kadenji/xcover/sudoku/board"
)

func main() {
	if isStdinTTY() {
		fmt.Println("Enter initial board as 9 lines of 9 characters.")
		fmt.Println("Use any character other than the digits 1-9 for empty cells.")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	b := board.ReadBoard(os.Stdin)

	enc, err := sudoku.NewEncoder(b)
	if err != nil {
		color.HiRed("Failed to build constraint matrix: %v", err)
		os.Exit(1)
	}

	solved, err := enc.Solve()
	if err != nil {
		color.HiWhite("\nNo solution:")
		b.Print()
		fmt.Println()
		b.PrintUnsolvedCounts()
		os.Exit(1)
	}

	color.HiWhite("\nSolution:")
	solved.Print()
}

func isStdinTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
