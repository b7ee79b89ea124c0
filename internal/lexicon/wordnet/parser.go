// Package wordnet loads Open English WordNet (OEWN) JSON files into a lexicon.
// Pure function: directory path in, lexicon out. No database dependencies.
//
// Expected directory structure (as distributed by https://github.com/globalwordnet/english-wordnet):
//
//	entries-a.json … entries-z.json   lemma entries keyed by word
//	noun.*.json, verb.*.json, …       synsets keyed by synset ID
package wordnet

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/hangman-backend/internal/domain"
	"github.com/heartmarshall/hangman-backend/internal/lexicon"
)

// posOrder is the order in which a word's senses are listed: nouns first,
// then verbs, adjectives, adjective satellites and adverbs. Within a POS,
// senses keep their file order. Head adjective senses ("a") therefore all
// precede satellite senses ("s"); WordNet's own sense ranking interleaves
// the two by frequency, so for adjectives the first sense listed here can
// differ from WordNet's most frequent one.
var posOrder = []string{"n", "v", "a", "s", "r"}

// Stats holds loader statistics for logging.
type Stats struct {
	EntryFiles     int
	SynsetFiles    int
	TotalSynsets   int
	TotalEntries   int
	TotalSenses    int
	UnknownSynsets int
	SkippedEntries int

	// MalformedEntries counts per-POS entry blocks that failed to decode.
	// The word is kept with whatever senses its other blocks provide.
	MalformedEntries int
}

// OEWN JSON deserialization types.

// oewnEntryFile represents an entries-*.json file: {"word": {"pos": {...}}}.
type oewnEntryFile map[string]map[string]json.RawMessage

// oewnPOSEntry holds senses for a single POS of a word.
type oewnPOSEntry struct {
	Sense []oewnSense `json:"sense"`
}

// oewnSense links a word to a synset.
type oewnSense struct {
	ID     string `json:"id"`
	Synset string `json:"synset"`
}

// oewnSynset holds a single synset from a {pos}.{category}.json file.
type oewnSynset struct {
	Definition   []string `json:"definition"`
	PartOfSpeech string   `json:"partOfSpeech"`
}

// Parse reads an OEWN JSON directory and builds a lexicon of every lemma
// with its senses. Files are decoded concurrently; the result does not
// depend on scheduling.
func Parse(ctx context.Context, dirPath string) (*lexicon.Lexicon, Stats, error) {
	var stats Stats

	info, err := os.Stat(dirPath)
	if err != nil {
		return nil, stats, fmt.Errorf("open directory: %w", err)
	}
	if !info.IsDir() {
		return nil, stats, fmt.Errorf("%s is not a directory", dirPath)
	}

	entryFiles, err := filepath.Glob(filepath.Join(dirPath, "entries-*.json"))
	if err != nil {
		return nil, stats, fmt.Errorf("glob entry files: %w", err)
	}
	synsetFiles, err := globSynsetFiles(dirPath)
	if err != nil {
		return nil, stats, fmt.Errorf("glob synset files: %w", err)
	}
	stats.EntryFiles = len(entryFiles)
	stats.SynsetFiles = len(synsetFiles)

	synsetMaps, err := readAll(ctx, synsetFiles, readSynsetFile)
	if err != nil {
		return nil, stats, err
	}
	synsets := make(map[string]oewnSynset)
	for _, m := range synsetMaps {
		for id, s := range m {
			synsets[id] = s
		}
	}
	stats.TotalSynsets = len(synsets)

	entryMaps, err := readAll(ctx, entryFiles, readEntryFile)
	if err != nil {
		return nil, stats, err
	}

	b := lexicon.NewBuilder()
	for _, entries := range entryMaps {
		// Sorted keys keep the merge of case variants ("Bass", "bass") stable.
		lemmas := make([]string, 0, len(entries))
		for lemma := range entries {
			lemmas = append(lemmas, lemma)
		}
		slices.Sort(lemmas)

		for _, lemma := range lemmas {
			stats.TotalEntries++
			word := domain.NormalizeWord(lemma)
			if word == "" {
				stats.SkippedEntries++
				continue
			}

			b.Add(word)
			for _, pos := range orderedPOSKeys(entries[lemma]) {
				var posEntry oewnPOSEntry
				if err := json.Unmarshal(entries[lemma][pos], &posEntry); err != nil {
					stats.MalformedEntries++
					continue
				}
				for _, sense := range posEntry.Sense {
					synset, ok := synsets[sense.Synset]
					if !ok {
						stats.UnknownSynsets++
						continue
					}
					tag := synset.PartOfSpeech
					if tag == "" {
						tag = pos
					}
					b.Add(word, domain.Sense{
						PartOfSpeech: MapPartOfSpeech(tag),
						Definition:   strings.Join(synset.Definition, "; "),
					})
					stats.TotalSenses++
				}
			}
		}
	}

	return b.Build(), stats, nil
}

// MapPartOfSpeech converts a WordNet POS tag to the domain enum.
// Tags may carry a suffix ("n-2"); only the first letter is significant.
func MapPartOfSpeech(tag string) domain.PartOfSpeech {
	if tag == "" {
		return domain.PartOfSpeechOther
	}
	switch tag[0] {
	case 'n':
		return domain.PartOfSpeechNoun
	case 'v':
		return domain.PartOfSpeechVerb
	case 'a', 's':
		return domain.PartOfSpeechAdjective
	case 'r':
		return domain.PartOfSpeechAdverb
	default:
		return domain.PartOfSpeechOther
	}
}

// orderedPOSKeys returns the POS keys of an entry in posOrder, followed by
// any unrecognised keys in lexicographic order.
func orderedPOSKeys(posMap map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(posMap))
	for k := range posMap {
		keys = append(keys, k)
	}
	rank := func(k string) int {
		for i, p := range posOrder {
			if strings.HasPrefix(k, p) {
				return i
			}
		}
		return len(posOrder)
	}
	slices.SortFunc(keys, func(a, b string) int {
		if ra, rb := rank(a), rank(b); ra != rb {
			return ra - rb
		}
		return strings.Compare(a, b)
	})
	return keys
}

// readAll decodes files concurrently and returns the results in input order.
func readAll[T any](ctx context.Context, paths []string, read func(string) (T, error)) ([]T, error) {
	results := make([]T, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := read(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", filepath.Base(path), err)
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// readEntryFile reads a single entries-*.json file.
func readEntryFile(path string) (oewnEntryFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var entries oewnEntryFile
	if err := json.NewDecoder(f).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	return entries, nil
}

// readSynsetFile reads a single synset file ({pos}.{category}.json).
func readSynsetFile(path string) (map[string]oewnSynset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var synsets map[string]oewnSynset
	if err := json.NewDecoder(f).Decode(&synsets); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	return synsets, nil
}

// globSynsetFiles finds all synset files in the directory.
// Synset files follow the pattern: {pos}.{category}.json where pos is noun/verb/adj/adv.
func globSynsetFiles(dirPath string) ([]string, error) {
	var result []string
	for _, prefix := range []string{"noun.", "verb.", "adj.", "adv."} {
		matches, err := filepath.Glob(filepath.Join(dirPath, prefix+"*.json"))
		if err != nil {
			return nil, err
		}
		result = append(result, matches...)
	}
	return result, nil
}
