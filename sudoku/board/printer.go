package board

import (
	"fmt"

	"github.com/fatih/color"
)

const (
	borderTop    = "┌───────┬───────┬───────┐"
	borderBot    = "└───────┴───────┴───────┘"
	dividerMinor = "├───────┼───────┼───────┤"
)

var (
	givenColor  = color.New(color.Bold, color.FgHiBlue)
	solvedColor = color.New(color.FgHiGreen)
	emptyColor  = color.New(color.FgHiBlack)
)

// Print writes a colorized rendering of the board to stdout: given values
// in bold blue, solver-placed values in green, and empty cells as a gray
// dot.
func (b *Board) Print() {
	color.HiWhite(borderTop)
	for r, row := range b.Grid {
		if r != 0 && r%3 == 0 {
			color.HiWhite(dividerMinor)
		}
		printRow(row)
	}
	color.HiWhite(borderBot)
}

func printRow(row [9]*Cell) {
	fmt.Print("│ ")
	for c, cell := range row {
		if c != 0 && c%3 == 0 {
			fmt.Print("│ ")
		}
		if cell.IsSolved() {
			cellColor := solvedColor
			if cell.IsGiven {
				cellColor = givenColor
			}
			cellColor.Printf("%d ", cell.Value())
		} else {
			emptyColor.Print("· ")
		}
	}
	fmt.Println("│")
}

// PrintUnsolvedCounts writes a per-digit count of remaining placements,
// useful when a solver stops with a partial solution.
func (b *Board) PrintUnsolvedCounts() {
	color.HiWhite("Unsolved Digits:")
	for i := range 9 {
		digit := int8(i + 1)
		if !b.IsDigitSolved(digit) {
			fmt.Printf("%d: %d remaining\n", digit, b.unsolvedCounts[digit])
		} else {
			fmt.Printf("%d: complete\n", digit)
		}
	}
	fmt.Printf("\n%s %d\n", color.HiWhiteString("Total Unsolved Cells:"), b.unsolvedCounts[0])
}
