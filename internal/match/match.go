// Package match turns free-text requests like "play the b b c news" into
// a station plus a confidence score.
package match

import (
	"context"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"news-radio/internal/locale"
	"news-radio/internal/station"
	"news-radio/internal/utils"
)

// Minimum confidence levels
const (
	ConfExactMatch   = 0.9
	ConfLikelyMatch  = 0.7
	ConfGenericMatch = 0.6
)

// Level is the banded interpretation of a confidence score.
type Level int

const (
	LevelNone Level = iota
	LevelGeneric
	LevelLikely
	LevelExact
)

// LevelFor translates a raw confidence into a band. Anything below the
// generic threshold means the request should not be claimed at all.
func LevelFor(confidence float64) Level {
	switch {
	case confidence >= ConfExactMatch:
		return LevelExact
	case confidence >= ConfLikelyMatch:
		return LevelLikely
	case confidence >= ConfGenericMatch:
		return LevelGeneric
	default:
		return LevelNone
	}
}

// Match pairs a station with the confidence that the user asked for it.
// A nil Station with zero confidence means "not a news request at all".
type Match struct {
	Station    *station.Station
	Confidence float64
}

// Level returns the confidence band of the match.
func (m Match) Level() Level {
	return LevelFor(m.Confidence)
}

// Matcher scores utterances against a catalog. Similarity is the
// Sorensen-Dice coefficient over character bigrams, normalized to
// [0,1]; it is order-tolerant enough for spoken phrases and scores a
// station name embedded in a longer utterance well above noise.
type Matcher struct {
	catalog  *station.Catalog
	tables   *locale.Tables
	defaults *Defaults
	metric   *metrics.SorensenDice
}

// NewMatcher builds a matcher over the given catalog and word tables.
func NewMatcher(catalog *station.Catalog, tables *locale.Tables, defaults *Defaults) *Matcher {
	return &Matcher{
		catalog:  catalog,
		tables:   tables,
		defaults: defaults,
		metric:   metrics.NewSorensenDice(),
	}
}

func (m *Matcher) similarity(a, b string) float64 {
	return strutil.Similarity(a, b, m.metric)
}

// Match scores an utterance and returns the best station with its
// confidence. Utterances without any news vocabulary are declined with
// a zero-confidence, station-less match.
func (m *Matcher) Match(ctx context.Context, utterance string) Match {
	if utterance == "" {
		return Match{}
	}

	normalized := utils.NormalizeUtterance(utterance)
	// "the" matches the custom station too well, "play" is carrier noise.
	phrase := utils.StripWords(normalized, "the", "play")

	if !m.tables.VocabMatch(phrase) {
		// User is not asking for the news - do not match.
		return Match{}
	}

	// Catch short canonical phrasings eg "play the news".
	for _, canonical := range m.tables.PlayPhrases {
		if normalized == utils.NormalizeUtterance(canonical) {
			def := m.defaults.Station(ctx)
			return Match{Station: &def, Confidence: 1.0}
		}
	}

	keyword := strings.ToLower(m.tables.NewsKeyword)
	best := Match{}

	// Test against each station to find the best match.
	for _, s := range m.catalog.All() {
		confidence := m.scoreStation(phrase, s, keyword)
		if confidence > best.Confidence {
			s := s
			best = Match{Station: &s, Confidence: confidence}
		}
	}

	// Long-form outlet names compete with the catalog scores.
	for name, acronym := range m.tables.AltNames {
		confidence := m.similarity(phrase, utils.NormalizeUtterance(name))
		if confidence > best.Confidence {
			if s, err := m.catalog.Lookup(acronym); err == nil {
				best = Match{Station: &s, Confidence: confidence}
			}
		}
	}

	// The user said "news" but named nothing recognizable. Resolving to
	// the default station beats refusing to play anything.
	if best.Confidence < ConfGenericMatch {
		def := m.defaults.Station(ctx)
		return Match{Station: &def, Confidence: ConfGenericMatch}
	}

	return best
}

// scoreStation is the per-station confidence: the maximum over the
// acronym, the display name, and the acronym padded with the news
// keyword. Short acronyms score poorly alone, which the padded form
// compensates for. Never a sum, always a max.
func (m *Matcher) scoreStation(phrase string, s station.Station, keyword string) float64 {
	acronym := strings.ToLower(s.Acronym)
	confidences := []float64{
		m.similarity(phrase, acronym),
		m.similarity(phrase, strings.ToLower(s.FullName)),
		m.similarity(phrase, acronym+" "+keyword),
	}

	// Both the acronym and the keyword appearing verbatim is worth at
	// least a generic match even when fuzzy scores stay low.
	if strings.Contains(phrase, keyword) && strings.Contains(phrase, acronym) {
		confidences = append(confidences, ConfGenericMatch)
	}

	highest := 0.0
	for _, c := range confidences {
		if c > highest {
			highest = c
		}
	}
	return highest
}
