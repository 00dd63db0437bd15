// Package runner wires configuration, logging, the alphabet, the generator and the
// token ledger together for the command line.
package runner

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mormao/randstr/alphabet"
	"github.com/mormao/randstr/generator"
	"github.com/mormao/randstr/internal/config"
	"github.com/mormao/randstr/internal/db"
	"github.com/mormao/randstr/internal/db/controller/token"
)

var (
	generatedTotal = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "randstr_generated_strings_total",
		Help: "Number of random strings handed out.",
	})

	collisionsTotal = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "randstr_ledger_collisions_total",
		Help: "Number of generated strings rejected because the ledger had issued them before.",
	})
)

// Runner produces random strings as configured.
type Runner struct {
	cfg    *config.Config
	gen    *generator.Generator
	ledger *gorm.DB
}

// Alphabet builds the configured alphabet. No selected category means all of them.
func Alphabet(c alphabet.Categories) (*alphabet.Alphabet, error) {
	if c.Empty() {
		return alphabet.WithAllChars, nil
	}

	return alphabet.Build(c)
}

// Source returns the seeded source if configured, the shared crypto source otherwise.
func Source(cfg config.Generator) generator.Source {
	if cfg.Seeded {
		return generator.NewSeededSource(cfg.Seed)
	}

	return generator.DefaultSource()
}

// New creates a Runner. The ledger is opened only for unique generation.
func New(cfg *config.Config) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	a, err := Alphabet(cfg.Alphabet)
	if err != nil {
		return nil, err
	}

	gen, err := generator.New(a, Source(cfg.Generator))
	if err != nil {
		return nil, err
	}

	r := &Runner{cfg: cfg, gen: gen}

	if cfg.Generator.Unique {
		if r.ledger, err = db.Open(cfg.DB); err != nil {
			return nil, err
		}
	}

	if e := log.Debug(); e.Enabled() {
		e.Str("alphabet", a.String()).
			Int("alphabetLen", a.Len()).
			Bool("seeded", cfg.Generator.Seeded).
			Bool("unique", cfg.Generator.Unique).
			Msg("runner ready")
	}

	return r, nil
}

// Generator returns the generator the runner samples with.
func (r *Runner) Generator() *generator.Generator {
	return r.gen
}

// Generate returns Count strings of Length characters.
func (r *Runner) Generate() ([]string, error) {
	out := make([]string, 0, r.cfg.Generator.Count)

	for range r.cfg.Generator.Count {
		s, err := r.next()
		if err != nil {
			return out, err
		}

		out = append(out, s)
		generatedTotal.Inc()
	}

	log.Info().Int("count", len(out)).Int("length", r.cfg.Generator.Length).Msg("generated random strings")

	return out, nil
}

func (r *Runner) next() (string, error) {
	if r.ledger == nil {
		return r.gen.NewRandomString(r.cfg.Generator.Length)
	}

	s, collisions, err := token.Issue(r.ledger, r.gen, r.cfg.Generator.Length, r.cfg.Generator.MaxAttempts)
	if collisions > 0 {
		collisionsTotal.Add(float64(collisions))
		log.Warn().Int("collisions", collisions).Msg("ledger rejected already issued strings")
	}

	if err != nil {
		return "", errors.Wrap(err, "failed to issue unique string")
	}

	return s, nil
}

// Close releases the ledger connection, if any.
func (r *Runner) Close() error {
	if r.ledger == nil {
		return nil
	}

	return db.Close(r.ledger)
}
