package puzzle

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
	givenColor = color.New(color.Bold, color.FgHiYellow)
	foundColor = color.New(color.Bold, color.FgHiWhite)
	emptyColor = color.New(color.FgHiBlack)
)

// Print renders the grid, highlighting given digits differently from
// digits the solver placed.
func (p *Puzzle) Print() {
	color.HiWhite(borderTop)
	for r, row := range p.Grid {
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
		switch {
		case !cell.IsSolved():
			emptyColor.Print("· ")
		case cell.IsGiven:
			givenColor.Printf("%d ", cell.Value())
		default:
			foundColor.Printf("%d ", cell.Value())
		}
	}
	fmt.Println("│")
}

// PrintUnsolvedCount reports how many cells remain unfilled in a partial
// solution.
func (p *Puzzle) PrintUnsolvedCount() {
	fmt.Printf("%s %d\n", color.HiWhiteString("Unsolved cells:"), p.unsolvedCounts[0])
}
