package roster

import (
	"fmt"
	"strconv"
	"strings"
)

// Priority maps shift codes to their display rank. Lower ranks sort first.
type Priority map[string]int

// DefaultPriority is the S1, S2, S3 ordering.
func DefaultPriority() Priority {
	return Priority{"S1": 1, "S2": 2, "S3": 3}
}

// Rank returns the configured rank of code, or one past the highest
// configured rank for codes the table does not know.
func (p Priority) Rank(code string) int {
	if r, ok := p[code]; ok {
		return r
	}
	return p.unknownRank()
}

func (p Priority) unknownRank() int {
	highest := 0
	for _, r := range p {
		if r > highest {
			highest = r
		}
	}
	return highest + 1
}

// ParsePriority reads a "CODE:RANK,CODE:RANK" list, e.g. "S1:1,S2:2,S3:3".
func ParsePriority(s string) (Priority, error) {
	p := Priority{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		code, rank, ok := strings.Cut(part, ":")
		code = strings.TrimSpace(code)
		if !ok || code == "" {
			return nil, fmt.Errorf("invalid shift priority entry %q, expected CODE:RANK", part)
		}

		r, err := strconv.Atoi(strings.TrimSpace(rank))
		if err != nil {
			return nil, fmt.Errorf("invalid rank for shift %q: %w", code, err)
		}
		if _, dup := p[code]; dup {
			return nil, fmt.Errorf("shift %q listed twice in priority", code)
		}
		p[code] = r
	}

	if len(p) == 0 {
		return nil, fmt.Errorf("shift priority is empty")
	}
	return p, nil
}
