package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/heartmarshall/hangman-backend/internal/lexicon"
	"github.com/heartmarshall/hangman-backend/internal/lexicon/wordnet"
)

// Phase names in execution order.
const (
	PhaseMigrate = "migrate"
	PhaseParse   = "parse"
	PhaseStore   = "store"
)

var allPhases = []string{PhaseMigrate, PhaseParse, PhaseStore}

var errNotParsed = errors.New("lexicon not parsed")

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline parses a WordNet directory and writes it to the lexicon store.
type Pipeline struct {
	log     *slog.Logger
	store   LexiconStore
	migrate Migrator
	cfg     Config
	lex     *lexicon.Lexicon
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline. migrate may be nil.
func NewPipeline(log *slog.Logger, store LexiconStore, migrate Migrator, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		store:   store,
		migrate: migrate,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases
// run, still in canonical order. A failed phase stops the pipeline because
// every later phase depends on it.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun := allPhases
	if len(phases) > 0 {
		for _, ph := range phases {
			if !slices.Contains(allPhases, ph) {
				return fmt.Errorf("unknown phase %q", ph)
			}
		}
		toRun = slices.DeleteFunc(slices.Clone(allPhases), func(ph string) bool {
			return !slices.Contains(phases, ph)
		})
	}

	for _, phase := range toRun {
		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case PhaseMigrate:
			result = p.runMigrate(ctx)
		case PhaseParse:
			result = p.runParse(ctx)
		case PhaseStore:
			result = p.runStore(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Error("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			return fmt.Errorf("%s: %w", phase, result.Err)
		}
		p.log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("inserted", result.Inserted),
			slog.Int("skipped", result.Skipped),
			slog.Int("errors", result.Errors),
			slog.Duration("duration", result.Duration),
		)
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)), slog.Bool("dry_run", p.cfg.DryRun))
	return nil
}

func (p *Pipeline) runMigrate(ctx context.Context) PhaseResult {
	if p.cfg.DryRun || p.migrate == nil {
		return PhaseResult{Skipped: 1}
	}
	if err := p.migrate(ctx); err != nil {
		return PhaseResult{Err: fmt.Errorf("apply migrations: %w", err)}
	}
	return PhaseResult{}
}

func (p *Pipeline) runParse(ctx context.Context) PhaseResult {
	lex, stats, err := wordnet.Parse(ctx, p.cfg.WordNetPath)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("parse wordnet: %w", err)}
	}
	p.lex = lex

	p.log.Info("wordnet parsed",
		slog.Int("entry_files", stats.EntryFiles),
		slog.Int("synset_files", stats.SynsetFiles),
		slog.Int("synsets", stats.TotalSynsets),
		slog.Int("entries", stats.TotalEntries),
		slog.Int("senses", stats.TotalSenses),
		slog.Int("words", lex.Len()),
	)
	if stats.UnknownSynsets > 0 {
		p.log.Warn("senses reference unknown synsets", slog.Int("count", stats.UnknownSynsets))
	}
	if stats.MalformedEntries > 0 {
		p.log.Warn("malformed entries skipped", slog.Int("count", stats.MalformedEntries))
	}

	return PhaseResult{Skipped: stats.SkippedEntries + stats.MalformedEntries}
}

func (p *Pipeline) runStore(ctx context.Context) PhaseResult {
	if p.lex == nil {
		return PhaseResult{Err: errNotParsed}
	}
	if p.cfg.DryRun {
		return PhaseResult{Skipped: p.lex.Len()}
	}

	inserted, err := p.store.Replace(ctx, p.lex, p.cfg.BatchSize)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("replace lexicon: %w", err)}
	}

	result := PhaseResult{Inserted: inserted}

	stored, err := p.store.Count(ctx)
	if err != nil {
		return PhaseResult{Inserted: inserted, Err: fmt.Errorf("count stored words: %w", err)}
	}
	if stored != p.lex.Len() {
		p.log.Warn("stored word count mismatch",
			slog.Int("expected", p.lex.Len()),
			slog.Int("stored", stored),
		)
		result.Errors++
	}
	return result
}
