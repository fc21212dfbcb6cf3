package report

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"dippy_dump/internal/domain/game"
	"dippy_dump/internal/errors"
)

var (
	phaseReg    = regexp.MustCompile(`^PHASE (?P<year>\d+) (?P<season>\S+) (?P<type>\S+)$`)
	positionReg = regexp.MustCompile(`^(?P<power>\S+): (?P<unit>\S+) (?P<province>\S+)$`)
)

// Block is one phase of a report.
type Block struct {
	Phase     game.Phase
	Positions []game.Position
	Orders    []game.Order
}

const (
	inNothing = iota
	inPositions
	inOrders
)

// Reader parses a report back into blocks, accepting the same line order the
// droidippy regression test does.
type Reader struct {
	scanner *bufio.Scanner
}

func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

func (r *Reader) ReadAll() ([]Block, error) {
	var blocks []Block
	state := inNothing
	lineNum := 0
	for r.scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(r.scanner.Text())
		switch state {
		case inNothing:
			if phase, ok := parsePhaseLine(line); ok {
				blocks = append(blocks, Block{Phase: phase})
			} else if line == PositionsTag && len(blocks) > 0 {
				state = inPositions
			} else {
				return nil, unknownLine(lineNum, "phase", line)
			}
		case inPositions:
			if match := positionReg.FindStringSubmatch(line); match != nil {
				current := &blocks[len(blocks)-1]
				current.Positions = append(current.Positions, game.Position{
					Power:    match[positionReg.SubexpIndex("power")],
					UnitType: match[positionReg.SubexpIndex("unit")],
					Province: match[positionReg.SubexpIndex("province")],
				})
			} else if line == OrdersTag {
				state = inOrders
			} else {
				return nil, unknownLine(lineNum, "position", line)
			}
		case inOrders:
			if phase, ok := parsePhaseLine(line); ok {
				blocks = append(blocks, Block{Phase: phase})
				state = inNothing
			} else {
				current := &blocks[len(blocks)-1]
				current.Orders = append(current.Orders, game.Order{Tokens: strings.Fields(line)})
			}
		}
	}
	if err := r.scanner.Err(); err != nil {
		return nil, err
	}
	return blocks, nil
}

func parsePhaseLine(line string) (game.Phase, bool) {
	match := phaseReg.FindStringSubmatch(line)
	if match == nil {
		return game.Phase{}, false
	}
	return game.Phase{
		Season: match[phaseReg.SubexpIndex("season")],
		Year:   match[phaseReg.SubexpIndex("year")],
		Type:   match[phaseReg.SubexpIndex("type")],
	}, true
}

func unknownLine(lineNum int, section, line string) error {
	return fmt.Errorf("line %d: %w", lineNum, &errors.UnparseableLineError{Section: section, Line: line})
}
