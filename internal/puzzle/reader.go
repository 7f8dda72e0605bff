package puzzle

import (
	"bufio"
	"fmt"
	"io"
)

// ReadPuzzle reads a puzzle as 9 lines of 9 characters, any character
// other than the digits 1-9 marking an empty cell.
func ReadPuzzle(r io.Reader) (*Puzzle, error) {
	p := NewPuzzle()
	scanner := bufio.NewScanner(r)

	row := 0
	for scanner.Scan() {
		if row >= 9 {
			return nil, fmt.Errorf("too many input lines")
		}
		line := scanner.Text()
		if len(line) < 9 {
			return nil, fmt.Errorf("input line %d too short", row+1)
		}
		p.processRow(row, line[:9])
		row++
	}
	if row < 9 {
		return nil, fmt.Errorf("not enough input lines")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading puzzle: %w", err)
	}

	return p, nil
}

func (p *Puzzle) processRow(row int, line string) {
	for col := range 9 {
		val := line[col] - '0'
		if val >= 1 && val <= 9 {
			p.GivenValue(row, col, int(val))
		}
	}
}
