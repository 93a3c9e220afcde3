// Command queens solves the N-Queens problem via exact cover.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/kadenji/xcover/queens"
)

func main() {
	n := flag.Int("n", 8, "board size")
	all := flag.Bool("all", false, "find every solution instead of the first")
	flag.Parse()

	if *n <= 0 {
		fmt.Fprintln(os.Stderr, "n must be positive")
		os.Exit(1)
	}

	start := time.Now()
	solutions, err := queens.Solve(*n, *all)
	duration := time.Since(start)
	if err != nil {
		color.HiRed("solve failed: %v", err)
		os.Exit(1)
	}

	if len(solutions) == 0 {
		color.HiRed("No solution for n=%d", *n)
		os.Exit(1)
	}

	color.HiGreen("Found %d solution(s) for n=%d (%.3fms)", len(solutions), *n, float64(duration.Nanoseconds())/1e6)
	printBoard(*n, solutions[0])

	if *all && len(solutions) > 1 {
		fmt.Printf("\n(%d more solution(s) not shown)\n", len(solutions)-1)
	}
}

func printBoard(n int, placements [][2]int) {
	queenAt := make(map[[2]int]bool, n)
	for _, p := range placements {
		queenAt[p] = true
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if queenAt[[2]int{i, j}] {
				fmt.Print(color.HiYellowString("Q "))
			} else {
				fmt.Print(color.HiBlackString(". "))
			}
		}
		fmt.Println()
	}
}
