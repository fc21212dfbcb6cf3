package game

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"

	"dippy_dump/internal/errors"
)

var gameFileReg = regexp.MustCompile(`^game_(?P<id>\d+)\.txt$`)

// ExtractGameID returns the game id encoded in a game_<digits>.txt file name.
// Only the base name is inspected and the file itself is never opened.
func ExtractGameID(filename string) (int64, error) {
	match := gameFileReg.FindStringSubmatch(filepath.Base(filename))
	if match == nil {
		return 0, fmt.Errorf("%w: %q does not look like game_<id>.txt", errors.ErrMalformedInput, filename)
	}
	id, err := strconv.ParseInt(match[gameFileReg.SubexpIndex("id")], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: game id in %q: %v", errors.ErrMalformedInput, filename, err)
	}
	return id, nil
}
