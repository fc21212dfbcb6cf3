package game

import "strings"

type translation struct {
	from string
	to   string
}

// Droidippy province abbreviations that differ from the godip classical map.
var translations = []translation{
	{from: "lyo", to: "gol"},
	{from: "mao", to: "mid"},
	{from: "nwg", to: "nrg"},
	{from: "nao", to: "nat"},
}

// Translate replaces every occurrence of each droidippy token, in table order.
func Translate(s string) string {
	for _, t := range translations {
		s = strings.ReplaceAll(s, t.from, t.to)
	}
	return s
}
