// Command demo showcases the dlx package against a handful of classic
// exact-cover problems: a plain toy matrix, a matrix with more than one
// cover, a colored (XCC) example, and the three bundled encoders.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/kpitt/dlx"
	"github.com/kpitt/dlx/examples/langford"
	"github.com/kpitt/dlx/examples/nqueens"
	"github.com/kpitt/dlx/examples/sudoku"
	"github.com/kpitt/dlx/internal/puzzle"
)

func main() {
	fmt.Println("Dancing Links Algorithm Demonstration")
	fmt.Println("=====================================")

	toyExample()
	multiSolutionExample()
	coloredExample()
	sudokuExample()
	nqueensExample()
	langfordExample()
	progressExample()
}

// toyExample is Knuth's textbook 7-item, 6-row exact cover: the unique
// solution is rows {1, 3, 5} (0-indexed).
func toyExample() {
	section("1. Plain Exact Cover (Knuth's 7-column example)")

	matrix := [][]int{
		{1, 0, 0, 1, 0, 0, 1},
		{1, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 0, 1},
		{0, 0, 1, 0, 1, 1, 0},
		{0, 1, 1, 0, 0, 1, 0},
		{0, 1, 0, 0, 0, 0, 1},
	}
	names := []string{"A", "B", "C", "D", "E", "F", "G"}

	n, err := dlx.NewExactCover(matrix, names)
	if err != nil {
		fmt.Println(color.HiRedString("build error: %v", err))
		return
	}

	for sol := range n.Search() {
		fmt.Print("Solution rows: ")
		for _, entry := range sol {
			fmt.Print(rowName(n, entry), " ")
		}
		fmt.Println()
	}
}

// multiSolutionExample demonstrates a matrix with several valid covers.
func multiSolutionExample() {
	section("2. Multiple Covers")

	matrix := [][]int{
		{1, 0, 1},
		{0, 1, 0},
		{1, 1, 1},
	}
	names := []string{"X", "Y", "Z"}

	n, err := dlx.NewExactCover(matrix, names)
	if err != nil {
		fmt.Println(color.HiRedString("build error: %v", err))
		return
	}

	count := 0
	for range n.Search() {
		count++
	}
	fmt.Printf("%s %d\n", color.HiYellowString("Solutions found:"), count)
}

// coloredExample demonstrates Algorithm C: item X is secondary and
// colored, so a solution need not cover it, several rows may share it if
// they agree on its color, and two rows disagreeing on its color can never
// appear together.
func coloredExample() {
	section("3. Colored Secondary Items (Algorithm C)")

	matrix := [][]int{
		{1, 0, 2}, // Row 0: covers A, colors X=2
		{0, 1, 2}, // Row 1: covers B, colors X=2 (agrees)
		{0, 1, 3}, // Row 2: covers B, colors X=3 (conflicts with row 0)
	}
	names := []string{"A", "B", "X"}

	n, err := dlx.BuildNetwork(matrix, names, 2)
	if err != nil {
		fmt.Println(color.HiRedString("build error: %v", err))
		return
	}

	for sol := range n.Search() {
		fmt.Print("Solution rows: ")
		for _, entry := range sol {
			fmt.Print(rowName(n, entry), " ")
		}
		fmt.Println()
	}
}

func sudokuExample() {
	section("4. Sudoku (324-column exact cover)")

	p := puzzle.NewPuzzle()
	grid := [9][9]int{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if grid[r][c] != 0 {
				p.GivenValue(r, c, grid[r][c])
			}
		}
	}

	enc, err := sudoku.NewEncoder(p)
	if err != nil {
		fmt.Println(color.HiRedString("encode error: %v", err))
		return
	}

	start := time.Now()
	solved, err := enc.Solve()
	duration := time.Since(start)
	if err != nil {
		fmt.Println(color.HiRedString("✗ %v", err))
		return
	}

	fmt.Printf("%s (%.3fms)\n", color.HiGreenString("✓ solved"), float64(duration.Nanoseconds())/1e6)
	solved.Print()
}

func nqueensExample() {
	section("5. N-Queens (plain vs. colored-diagonal encoding)")

	for _, n := range []int{6, 8} {
		plain, err := nqueens.NewEncoder(n)
		if err != nil {
			fmt.Println(color.HiRedString("encode error: %v", err))
			continue
		}
		colored, err := nqueens.NewColoredEncoder(n)
		if err != nil {
			fmt.Println(color.HiRedString("encode error: %v", err))
			continue
		}

		plainCount := plain.CountSolutions()
		coloredCount := colored.CountSolutions()
		fmt.Printf("n=%d: plain=%s colored=%s\n", n,
			color.HiGreenString("%d", plainCount), color.HiGreenString("%d", coloredCount))
	}
}

func langfordExample() {
	section("6. Langford Pairs")

	for n := 3; n <= 7; n++ {
		enc, err := langford.NewEncoder(n)
		if err != nil {
			fmt.Println(color.HiRedString("encode error: %v", err))
			continue
		}

		seq, err := enc.Solve()
		if err != nil {
			fmt.Printf("n=%d: %s\n", n, color.HiRedString("no solution"))
			continue
		}
		fmt.Printf("n=%d: %s %v\n", n, color.HiGreenString("solved"), seq)
	}
}

// progressExample counts N-Queens solutions for a board large enough to
// take a perceptible amount of time, printing a periodic line reporting
// elapsed time, solutions found so far, and the fractional progress
// estimate -- the same shape of reporting a long-running search would
// give an interactive caller.
func progressExample() {
	section("7. Search Progress Reporting")

	const n = 9
	enc, err := nqueens.NewEncoder(n)
	if err != nil {
		fmt.Println(color.HiRedString("encode error: %v", err))
		return
	}

	start := time.Now()
	count := 0
	const reportEvery = 50 // 9-queens has 352 solutions; a handful of lines is plenty
	for range enc.Solutions() {
		count++
		if count%reportEvery == 0 {
			choices, branches, _ := enc.Progress()
			fmt.Printf("  %s elapsed=%s found=%d estimate=%.4f depth=%d\n",
				color.HiBlackString("progress:"), time.Since(start).Round(time.Millisecond),
				count, estimateOrZero(choices, branches), len(choices))
		}
	}
	fmt.Printf("%d-queens: %s solutions in %s\n", n, color.HiGreenString("%d", count), time.Since(start).Round(time.Millisecond))
}

func estimateOrZero(choices, branches []int) float64 {
	if len(choices) == 0 {
		return 0
	}
	p := 0.5
	for i := len(choices) - 1; i >= 0; i-- {
		if branches[i] == 0 {
			continue
		}
		p = (p + float64(choices[i]-1)) / float64(branches[i])
	}
	return p
}

func rowName(n *dlx.Network, entry int) string {
	row := n.RowOf(entry)
	names := make([]string, 0, len(row))
	for _, id := range row {
		names = append(names, n.Node(n.Node(id).Column).Name)
	}
	return fmt.Sprint(names)
}

func section(title string) {
	fmt.Printf("\n%s\n", color.HiCyanString(title))
	fmt.Println(color.HiBlackString("─────────────────────────────────────"))
}
