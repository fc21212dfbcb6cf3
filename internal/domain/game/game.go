package game

import (
	"fmt"
	"strings"
)

// PhaseRow is one row of `select id, name, type from gamephase`.
type PhaseRow struct {
	ID   int64  `bson:"id"`
	Name string `bson:"name"`
	Type string `bson:"type"`
}

// PositionRow is one row of `select type, power, province from gameposition`.
type PositionRow struct {
	Type     string `bson:"type"`
	Power    string `bson:"power"`
	Province string `bson:"province"`
}

// OrderRow is one row of `select text from gameorder`.
type OrderRow struct {
	Text string `bson:"text"`
}

// Line renders the row the way psql -t prints it.
func (r PhaseRow) Line() string {
	return fmt.Sprintf("%d | %s | %s", r.ID, r.Name, r.Type)
}

func (r PhaseRow) Blank() bool {
	return strings.TrimSpace(r.Name) == "" && strings.TrimSpace(r.Type) == ""
}

func (r PositionRow) Line() string {
	return fmt.Sprintf("%s | %s | %s", r.Type, r.Power, r.Province)
}

func (r PositionRow) Blank() bool {
	return strings.TrimSpace(r.Type) == "" && strings.TrimSpace(r.Power) == "" && strings.TrimSpace(r.Province) == ""
}

func (r OrderRow) Line() string {
	return r.Text
}

func (r OrderRow) Blank() bool {
	return strings.TrimSpace(r.Text) == ""
}

type Phase struct {
	ID     int64
	Season string
	Year   string
	Type   string
}

// Header is the report line opening a phase block.
func (p Phase) Header() string {
	return "PHASE " + p.Year + " " + p.Season + " " + p.Type
}

type Position struct {
	Power    string
	UnitType string
	Province string
}

func (p Position) String() string {
	return p.Power + ": " + p.UnitType + " " + p.Province
}

type Order struct {
	Tokens []string
}

func (o Order) String() string {
	return strings.Join(o.Tokens, " ")
}
