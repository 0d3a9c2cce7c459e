package reflection

import (
	"regexp"
	"strings"

	"github.com/shueibka/Daily-Islamic-Wisdom/internal/model"
)

var numberPrefix = regexp.MustCompile(`^\d+\.\s*`)

// ParseReflections splits a completion into lines, strips "N. " prefixes and
// drops blank lines. It never returns nil.
func ParseReflections(content string) model.Reflections {
	out := make(model.Reflections, 0)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(numberPrefix.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
