package normalize

import (
	"strconv"
	"strings"

	"github.com/riyaa1611/SmartCode-Demo/schema"
)

// parseLocation splits a "path:line" reference at the first colon. The line
// is the integer between the first and second colon; anything unparseable
// leaves it at 0.
func parseLocation(raw string) schema.Location {
	path, rest, found := strings.Cut(raw, ":")
	if !found {
		return schema.Location{FilePath: raw}
	}

	lineText, _, _ := strings.Cut(rest, ":")
	line, err := strconv.Atoi(strings.TrimSpace(lineText))
	if err != nil || line < 0 {
		line = 0
	}

	return schema.Location{FilePath: path, Line: line}
}
