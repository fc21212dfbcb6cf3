package game

import (
	"regexp"
	"slices"
	"strings"

	"dippy_dump/internal/domain/game"
	"dippy_dump/internal/errors"
)

var (
	tokenReg     = regexp.MustCompile(`^\S+$`)
	phaseNameReg = regexp.MustCompile(`^\s*(?P<season>\S+),\s*(?P<year>\d+)\s.+$`)
	orderReg     = regexp.MustCompile(`^\s*\S+:\s*(?P<order>.*\S)\s*$`)
)

const buildKeyword = "build"

var unitTypes = []string{"Army", "Fleet"}

// ParsePhase reads season and year out of the phase name, e.g. "Spring, 1901 Movement".
// The boolean is false for rows that are not phase rows.
func ParsePhase(row game.PhaseRow) (game.Phase, bool) {
	typ := strings.TrimSpace(row.Type)
	if !tokenReg.MatchString(typ) {
		return game.Phase{}, false
	}
	match := phaseNameReg.FindStringSubmatch(strings.TrimSpace(row.Name))
	if match == nil {
		return game.Phase{}, false
	}
	return game.Phase{
		ID:     row.ID,
		Season: match[phaseNameReg.SubexpIndex("season")],
		Year:   match[phaseNameReg.SubexpIndex("year")],
		Type:   typ,
	}, true
}

// ParsePosition translates the row and checks that every column is a single token.
func ParsePosition(row game.PositionRow) (game.Position, error) {
	fields := []string{row.Type, row.Power, row.Province}
	for i := range fields {
		fields[i] = strings.TrimSpace(Translate(fields[i]))
		if !tokenReg.MatchString(fields[i]) {
			return game.Position{}, &errors.UnparseableLineError{Section: "position", Line: row.Line()}
		}
	}
	return game.Position{
		UnitType: fields[0],
		Power:    fields[1],
		Province: fields[2],
	}, nil
}

// ParseOrder drops the "<label>:" prefix and, except for builds, the unit type.
func ParseOrder(row game.OrderRow) (game.Order, error) {
	line := Translate(row.Text)
	match := orderReg.FindStringSubmatch(line)
	if match == nil {
		return game.Order{}, &errors.UnparseableLineError{Section: "order", Line: row.Line()}
	}
	tokens := strings.Fields(match[orderReg.SubexpIndex("order")])
	if !strings.Contains(line, buildKeyword) {
		tokens = slices.DeleteFunc(tokens, func(token string) bool {
			return slices.Contains(unitTypes, token)
		})
	}
	return game.Order{Tokens: tokens}, nil
}
