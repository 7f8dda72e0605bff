// Command sudoku reads a Sudoku puzzle from stdin and solves it using the
// dlx package's exact-cover search.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/kpitt/dlx/examples/sudoku"
	"github.com/kpitt/dlx/internal/puzzle"
)

func main() {
	if isStdinTTY() {
		fmt.Println("Enter initial board as 9 lines of 9 characters.")
		fmt.Println("Use any character other than the digits 1-9 for empty cells.")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	p, err := puzzle.ReadPuzzle(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sudoku:", err)
		os.Exit(1)
	}

	enc, err := sudoku.NewEncoder(p)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sudoku:", err)
		os.Exit(1)
	}

	solved, err := enc.Solve()
	if err != nil {
		color.HiWhite("\nNo solution:")
		p.Print()
		os.Exit(1)
	}

	color.HiWhite("\nSolution:")
	solved.Print()
}

func isStdinTTY() bool {
	return isTerminal(os.Stdin)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
