// Package command turns typed input into browser events.
package command

import (
	"context"
	"regexp"
	"strings"

	"github.com/hammamikhairi/recipedeck/internal/domain"
	"github.com/hammamikhairi/recipedeck/internal/logger"
)

// Compile-time interface check.
var _ domain.EventParser = (*KeywordParser)(nil)

// KeywordParser matches user input to events using keywords and simple patterns.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
}

type patternRule struct {
	regex *regexp.Regexp
	kind  domain.EventKind
	// payload picks the event payload from the submatches; nil means none.
	payload func(m []string) string
}

// group returns a payload extractor for submatch i, lower-cased.
func group(i int) func([]string) string {
	return func(m []string) string { return strings.ToLower(m[i]) }
}

// NewKeywordParser creates a keyword-based event parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(all|easy|medium|hard|quick)$`), domain.EventFilterSelected, group(1)},
		{regexp.MustCompile(`(?i)^(none|name|time)$`), domain.EventSortSelected, group(1)},
		{regexp.MustCompile(`(?i)^(?:filter|f)\s+(\S+)$`), domain.EventFilterSelected, group(1)},
		// "sort by" alone names no tag.
		{regexp.MustCompile(`(?i)^(?:sort|s)\s+by$`), domain.EventUnknown, func(m []string) string { return m[0] }},
		{regexp.MustCompile(`(?i)^(?:sort|s)\s+(?:by\s+)?(\S+)$`), domain.EventSortSelected, group(1)},
		{regexp.MustCompile(`(?i)^(?:show|open|view)\s+(.+)$`), domain.EventShowRecipe, func(m []string) string { return strings.TrimSpace(m[1]) }},
		{regexp.MustCompile(`^(\d{1,3})$`), domain.EventShowRecipe, group(1)},
		{regexp.MustCompile(`(?i)^(help|h|\?)$`), domain.EventHelp, nil},
		{regexp.MustCompile(`(?i)^(quit|exit|q)$`), domain.EventQuit, nil},
	}
	return p
}

// Parse converts user input into an event. Input that matches nothing
// becomes EventUnknown carrying the trimmed text.
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Event, error) {
	trimmed := strings.Join(strings.Fields(input), " ")
	if trimmed == "" {
		return &domain.Event{Kind: domain.EventUnknown}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	for _, rule := range p.patterns {
		m := rule.regex.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		ev := &domain.Event{Kind: rule.kind}
		if rule.payload != nil {
			ev.Payload = rule.payload(m)
		}
		p.log.Debug("matched event: %s (payload=%q)", ev.Kind, ev.Payload)
		return ev, nil
	}

	p.log.Debug("no match, returning unknown event")
	return &domain.Event{Kind: domain.EventUnknown, Payload: trimmed}, nil
}
