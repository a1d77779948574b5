// Package locale holds the translated word tables the matcher and the
// dialog system read: the word for "news", the short canonical phrasings
// of "play the news", alternative long-form station names, the default
// station per country, and the spoken dialog templates.
//
// English tables are compiled in; any table can be overridden by dropping
// a yaml file with the same keys into the configured locale directory.
package locale

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Tables struct {
	// NewsKeyword is the localized word for "news" used in scoring.
	NewsKeyword string `yaml:"news_keyword"`
	// Vocab lists every word that counts as asking about news at all.
	Vocab []string `yaml:"vocab"`
	// PlayPhrases are canonical short requests, e.g. "play the news".
	PlayPhrases []string `yaml:"play_phrases"`
	// AltNames maps long-form outlet names to acronyms,
	// e.g. "associated press" -> "AP".
	AltNames map[string]string `yaml:"alt_names"`
	// CountryDefaults maps ISO country codes to a default acronym.
	CountryDefaults map[string]string `yaml:"country_defaults"`
	// Dialogs maps template keys to spoken text with {placeholders}.
	Dialogs map[string]string `yaml:"dialogs"`
}

// Default returns the built-in English tables.
func Default() *Tables {
	return &Tables{
		NewsKeyword: "news",
		Vocab: []string{
			"news", "headlines", "briefing", "current affairs",
		},
		PlayPhrases: []string{
			"play the news",
			"play news",
			"what is the news",
			"whats the news",
			"latest news",
			"news briefing",
		},
		AltNames: map[string]string{
			"associated press":            "AP",
			"australian broadcasting":     "ABC",
			"british broadcasting":        "BBC",
			"canadian broadcasting":       "CBC",
			"deutschlandfunk":             "DLF",
			"fox":                         "FOX",
			"georgia public broadcasting": "GPB",
			"national public radio":       "NPR",
			"public broadcasting service": "PBS",
			"sveriges radio":              "Ekot",
		},
		CountryDefaults: map[string]string{
			"AT": "OE3",
			"AU": "ABC",
			"BE": "VRT",
			"CA": "CBC",
			"DE": "DLF",
			"ES": "RNE",
			"FI": "YLE",
			"GB": "BBC",
			"PT": "TSF",
			"SE": "Ekot",
			"US": "NPR",
		},
		Dialogs: map[string]string{
			"news":                          "Here is the latest news from {from}",
			"could.not.start.the.news.feed": "Sorry, I could not start the news feed right now",
			"nothing.to.stop":               "Nothing is playing",
		},
	}
}

// Load returns the default tables merged with any yaml override files
// found in dir. Passing an empty dir yields the defaults unchanged.
func Load(dir string) (*Tables, error) {
	t := Default()
	if dir == "" {
		return t, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading locale dir %s: %w", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || (!strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml")) {
			continue
		}
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading locale table %s: %w", path, err)
		}

		var override Tables
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("parsing locale table %s: %w", path, err)
		}
		t.merge(&override)
		log.Printf("🌍 Loaded locale table %s", name)
	}

	return t, nil
}

func (t *Tables) merge(o *Tables) {
	if o.NewsKeyword != "" {
		t.NewsKeyword = o.NewsKeyword
	}
	if len(o.Vocab) > 0 {
		t.Vocab = o.Vocab
	}
	if len(o.PlayPhrases) > 0 {
		t.PlayPhrases = o.PlayPhrases
	}
	for k, v := range o.AltNames {
		t.AltNames[k] = v
	}
	for k, v := range o.CountryDefaults {
		t.CountryDefaults[k] = v
	}
	for k, v := range o.Dialogs {
		t.Dialogs[k] = v
	}
}

// Dialog renders a template key with {placeholder} substitution. Unknown
// keys render as the key itself so a missing table never silences speech.
func (t *Tables) Dialog(key string, params map[string]string) string {
	text, ok := t.Dialogs[key]
	if !ok {
		return key
	}
	for k, v := range params {
		text = strings.ReplaceAll(text, "{"+k+"}", v)
	}
	return text
}

// VocabMatch reports whether any vocabulary word appears in the phrase.
func (t *Tables) VocabMatch(phrase string) bool {
	phrase = strings.ToLower(phrase)
	for _, word := range t.Vocab {
		if strings.Contains(phrase, strings.ToLower(word)) {
			return true
		}
	}
	return false
}
