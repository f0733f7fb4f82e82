package world

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Map files are plain text, one row of cells per line, top row first:
//
//	'#'      wall (code 1)
//	'1'-'9'  wall variant with that code
//	'.'      empty floor
//	'+'      spawn marker (empty floor, at most one per map)
//	';'      starts a comment line; blank lines are skipped
//
// Every row must have the same width.

// LoadMap loads a map from the specified file path.
func LoadMap(mapPath string) (*Map, error) {
	file, err := os.Open(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", mapPath, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t")
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading map file: %w", err)
	}

	m, err := ParseMap(lines)
	if err != nil {
		return nil, fmt.Errorf("map file %s: %w", mapPath, err)
	}
	return m, nil
}

// MustLoadMap loads a map and panics on error.
func MustLoadMap(mapPath string) *Map {
	m, err := LoadMap(mapPath)
	if err != nil {
		panic("Failed to load map: " + err.Error())
	}
	return m
}

// ParseMap builds a map from pre-split rows of cell characters.
func ParseMap(lines []string) (*Map, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("map contains no rows")
	}

	width := len(lines[0])
	rows := make([][]uint8, len(lines))
	startX, startY := -1, -1

	for y, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("row %d has inconsistent width: expected %d, got %d", y+1, width, len(line))
		}
		row := make([]uint8, width)
		for x, char := range line {
			cell, isStart, err := parseMapCharacter(char)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", y+1, x+1, err)
			}
			row[x] = cell
			if isStart {
				if startX >= 0 {
					return nil, fmt.Errorf("row %d column %d: duplicate spawn marker", y+1, x+1)
				}
				// File rows are top-down; spawn is stored bottom-up.
				startX, startY = x, len(lines)-1-y
			}
		}
		rows[y] = row
	}

	m := NewMap(rows)
	m.StartX, m.StartY = startX, startY
	return m, nil
}

// parseMapCharacter converts a map character to a cell code and an optional
// spawn flag.
func parseMapCharacter(char rune) (uint8, bool, error) {
	switch {
	case char == '.':
		return CellEmpty, false, nil
	case char == '+':
		return CellEmpty, true, nil
	case char == '#':
		return CellWall, false, nil
	case char >= '1' && char <= '9':
		return uint8(char - '0'), false, nil
	default:
		return 0, false, fmt.Errorf("unknown map character %q", char)
	}
}
