// Package history manages the persistence and retrieval of color lookup history and suggestions.
package history

import (
	"strings"

	"github.com/colordict-cli/colordict/filesystem"
	"github.com/colordict-cli/colordict/key"
	"github.com/colordict-cli/colordict/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// Record is one remembered color lookup with its popularity rank.
type Record struct {
	Rank int    `json:"rank"`
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// cacher provides an abstracted, disk-backed registry for lookup records.
var cacher = gache.New[map[string]*Record](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var suggestionCache = make(map[string][]*Record)

// Remember records a color lookup in the persistent history or increments its popularity rank.
func Remember(name, hex string) error {
	if !viper.GetBool(key.HistorySaveOnGet) {
		return nil
	}

	name = sanitize(name)
	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*Record)
	}

	if record, ok := cached[name]; ok {
		record.Rank++
		record.Hex = hex
	} else {
		cached[name] = &Record{Rank: 1, Name: name, Hex: hex}
	}

	return cacher.Set(cached)
}

// All returns every remembered lookup sorted by descending popularity rank.
func All() ([]*Record, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return nil, nil
	}

	records := lo.Values(cached)
	slices.SortFunc(records, func(a, b *Record) int {
		return b.Rank - a.Rank // Descending rank
	})
	return records, nil
}

// SuggestMany returns remembered color names fuzzily matching the partial
// input, sorted by popularity rank.
func SuggestMany(partial string) []string {
	if !viper.GetBool(key.SearchShowSuggestions) {
		return []string{}
	}

	partial = sanitize(partial)
	var records []*Record

	if prev, ok := suggestionCache[partial]; ok {
		records = prev
	} else {
		cached, expired, err := cacher.Get()
		if err != nil || expired || cached == nil {
			return []string{}
		}

		for _, record := range cached {
			if fuzzy.Match(partial, record.Name) {
				records = append(records, record)
			}
		}

		slices.SortFunc(records, func(a, b *Record) int {
			return b.Rank - a.Rank // Descending rank
		})

		suggestionCache[partial] = records
	}

	return lo.Map(records, func(r *Record, _ int) string {
		return r.Name
	})
}

func sanitize(name string) string {
	return strings.TrimSpace(strings.ToLower(name))
}
