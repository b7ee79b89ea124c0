// Command genword prints generated words as JSON, one per line, using the
// same configuration and lexicon as the server. It is a development aid.
//
// Flags:
//
//	--length  word length (default: GENERATOR_DEFAULT_LENGTH)
//	--count   number of words to print (default: 1)
//	--stats   print the validator's rejection statistics instead of words
//	--check   print the validator's verdict for one word instead of words
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/hangman-backend/internal/app"
	"github.com/heartmarshall/hangman-backend/internal/config"
	"github.com/heartmarshall/hangman-backend/internal/lexicon"
	"github.com/heartmarshall/hangman-backend/internal/profanity"
	"github.com/heartmarshall/hangman-backend/internal/service/wordgen"
)

func main() {
	os.Exit(run())
}

func run() int {
	lengthFlag := flag.Int("length", 0, "word length (default: GENERATOR_DEFAULT_LENGTH)")
	countFlag := flag.Int("count", 1, "number of words to print")
	statsFlag := flag.Bool("stats", false, "print rejection statistics for every word of the length")
	checkFlag := flag.String("check", "", "print the validation verdict for this word")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 1
	}
	logger := app.NewLogger(cfg.Log)

	length := *lengthFlag
	if length == 0 {
		length = cfg.Generator.DefaultLength
	}
	if length < cfg.Generator.MinLength {
		fmt.Fprintf(os.Stderr, "length must be at least %d\n", cfg.Generator.MinLength)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	lex, pool, err := app.LoadLexicon(ctx, logger, cfg)
	if err != nil {
		logger.Error("load lexicon", slog.String("error", err.Error()))
		return 1
	}
	if pool != nil {
		defer pool.Close()
	}

	detector := profanity.NewDetector(cfg.Profanity.ExtraWords()...)

	switch {
	case *checkFlag != "":
		if err := printCheck(os.Stdout, lex, wordgen.NewValidator(lex, detector), *checkFlag); err != nil {
			logger.Error("print check", slog.String("error", err.Error()))
			return 1
		}
		return 0
	case *statsFlag:
		if err := printStats(os.Stdout, lex, wordgen.NewValidator(lex, detector), length); err != nil {
			logger.Error("print stats", slog.String("error", err.Error()))
			return 1
		}
		return 0
	}

	gen := wordgen.NewGenerator(logger, lex, detector)
	enc := json.NewEncoder(os.Stdout)
	for range *countFlag {
		res, err := gen.Generate(ctx, length, cfg.Generator.MaxAttempts)
		if err != nil {
			var exhausted *wordgen.ExhaustedError
			if errors.As(err, &exhausted) {
				logger.Error("generate word", slog.String("error", err.Error()), slog.Any("filter_stats", exhausted.Stats))
			} else {
				logger.Error("generate word", slog.String("error", err.Error()))
			}
			return 1
		}
		if err := enc.Encode(res); err != nil {
			logger.Error("encode result", slog.String("error", err.Error()))
			return 1
		}
	}
	return 0
}

// printCheck validates a single word at its own length and writes the
// verdict as JSON.
func printCheck(w io.Writer, lex *lexicon.Lexicon, v *wordgen.Validator, word string) error {
	word = strings.ToLower(strings.TrimSpace(word))

	out := struct {
		Word     string `json:"word"`
		Known    bool   `json:"known"`
		Accepted bool   `json:"accepted"`
		Reason   string `json:"reason,omitempty"`
	}{Word: word, Known: lex.Contains(word)}

	if out.Known {
		o := v.Validate(word, utf8.RuneCountInString(word))
		out.Accepted = o.Accepted()
		out.Reason = o.Reason.String()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode check: %w", err)
	}
	return nil
}

// printStats validates every word of the given length once and writes the
// aggregated outcome as JSON.
func printStats(w io.Writer, lex *lexicon.Lexicon, v *wordgen.Validator, length int) error {
	rejections := make(map[string]int, len(wordgen.AllReasons))
	candidates, accepted := 0, 0

	for word := range lex.Words() {
		if utf8.RuneCountInString(word) != length {
			continue
		}
		candidates++
		o := v.Validate(word, length)
		if o.Accepted() {
			accepted++
			continue
		}
		rejections[o.Reason.String()]++
	}

	out := struct {
		Length     int            `json:"length"`
		Candidates int            `json:"candidates"`
		Accepted   int            `json:"accepted"`
		Rejections map[string]int `json:"rejections"`
	}{length, candidates, accepted, rejections}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	return nil
}
