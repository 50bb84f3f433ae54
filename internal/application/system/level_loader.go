package system

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/younwookim/ringball/internal/domain/entity"
)

// ParseError reports a malformed level file.
// Line and Column are 1-based; Column is 0 for row-level problems.
type ParseError struct {
	Line   int
	Column int
	Token  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line == 0:
		return "level: " + e.Reason
	case e.Column == 0:
		return fmt.Sprintf("level line %d: %s", e.Line, e.Reason)
	default:
		return fmt.Sprintf("level line %d, column %d: %s (%q)", e.Line, e.Column, e.Reason, e.Token)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadLevel reads a level grid from r
func LoadLevel(r io.Reader) (*entity.LevelGrid, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read level: %w", err)
	}
	return ParseLevel(lines)
}

// ParseLevel converts the lines of a level file into a LevelGrid.
// Each line is one row of comma-separated tile codes. Blank lines are
// skipped; every other row must be as wide as the first one.
// When a Startpoint or Endpoint appears more than once the last one in
// row-major order is kept.
func ParseLevel(lines []string) (*entity.LevelGrid, error) {
	grid := &entity.LevelGrid{Width: -1}

	y := 0
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		tokens := strings.Split(line, ",")
		if grid.Width < 0 {
			grid.Width = len(tokens)
		} else if len(tokens) != grid.Width {
			return nil, &ParseError{
				Line:   i + 1,
				Reason: fmt.Sprintf("row has %d tiles, expected %d", len(tokens), grid.Width),
			}
		}

		for x, token := range tokens {
			code, err := strconv.Atoi(strings.TrimSpace(token))
			if err != nil {
				return nil, &ParseError{Line: i + 1, Column: x + 1, Token: token, Reason: "tile code is not an integer", Err: err}
			}
			tile, ok := entity.TileFromCode(code)
			if !ok {
				return nil, &ParseError{Line: i + 1, Column: x + 1, Token: token, Reason: "tile code out of range [0,8]"}
			}

			grid.Tiles = append(grid.Tiles, tile)
			switch tile {
			case entity.TileStartpoint:
				grid.Start, grid.HasStart = entity.Cell{X: x, Y: y}, true
			case entity.TileEndpoint:
				grid.End, grid.HasEnd = entity.Cell{X: x, Y: y}, true
			}
		}
		y++
	}

	if grid.Width < 0 {
		return nil, &ParseError{Reason: "level has no rows"}
	}
	grid.Height = y

	return grid, nil
}

// LevelReader supplies the raw lines of a numbered level
type LevelReader interface {
	ReadLevel(level int) ([]string, error)
}

// TextGridSource loads grids from comma-separated level files
type TextGridSource struct {
	Reader LevelReader
}

// LoadGrid reads and parses a numbered level
func (s TextGridSource) LoadGrid(level int) (*entity.LevelGrid, error) {
	lines, err := s.Reader.ReadLevel(level)
	if err != nil {
		return nil, err
	}

	grid, err := ParseLevel(lines)
	if err != nil {
		return nil, fmt.Errorf("failed to parse level %d: %w", level, err)
	}
	return grid, nil
}
