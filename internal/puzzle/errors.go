package puzzle

// PuzzleStateError reports an inconsistent grid: two conflicting values
// placed in the same cell, or a digit placed more times than the puzzle
// allows.  It indicates a bug in the caller (an encoder feeding the
// puzzle bad data), not a possible outcome of solving, so it is raised
// via panic rather than returned.
type PuzzleStateError struct {
	Msg string
}

func (e *PuzzleStateError) Error() string {
	return "invalid puzzle state: " + e.Msg
}

func puzzleStateError(msg string) {
	panic(&PuzzleStateError{Msg: msg})
}
