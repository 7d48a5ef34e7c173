package crypto

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/cockroachdb/errors"
)

// DefaultLength is the password length used when none is configured.
const DefaultLength = 16

var (
	ErrInvalidLength = errors.New("password length must not be negative")

	ErrExhaustedCharacterPool = errors.WithHint(
		errors.New("there are no characters left to create a password"),
		"You have likely disabled all of them. Please review your input.",
	)
)

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length  int
	Classes []CharacterClass
	Exclude string
}

// DefaultOptions returns sensible defaults: 16 characters with lowercase,
// uppercase, digits and punctuation enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:  DefaultLength,
		Classes: []CharacterClass{Lowercase, Uppercase, Digits, Punctuation},
	}
}

// Generator draws passwords from a cryptographically secure source.
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a Generator reading from crypto/rand.
func NewGenerator() *Generator {
	return &Generator{rand: rand.Reader}
}

var defaultGenerator = NewGenerator()

// Generate creates a password with the package default generator.
func Generate(opts GeneratorOptions) (string, error) {
	return defaultGenerator.Generate(opts)
}

// Generate creates a random password based on the given options.
//
// Each enabled class that still has characters after exclusions
// contributes one character; the rest is drawn from the union of those
// classes and the result is shuffled. When Length is below the number of
// represented classes the shuffled picks are truncated to Length.
func (g *Generator) Generate(opts GeneratorOptions) (string, error) {
	if opts.Length < 0 {
		return "", ErrInvalidLength
	}

	var (
		required []rune
		union    []rune
		inUnion  = make(map[rune]bool)
	)
	for _, class := range opts.Classes {
		pool := class.without(opts.Exclude)
		if len(pool) == 0 {
			continue
		}

		ch, err := g.pick(pool)
		if err != nil {
			return "", errors.Wrapf(err, "drawing %s character", class.Name)
		}
		required = append(required, ch)

		for _, r := range pool {
			if !inUnion[r] {
				inUnion[r] = true
				union = append(union, r)
			}
		}
	}

	remaining := opts.Length - len(required)
	if remaining > 0 && len(union) == 0 {
		return "", ErrExhaustedCharacterPool
	}

	result := required
	for i := 0; i < remaining; i++ {
		ch, err := g.pick(union)
		if err != nil {
			return "", errors.Wrap(err, "drawing character")
		}
		result = append(result, ch)
	}

	if err := g.shuffle(result); err != nil {
		return "", errors.Wrap(err, "shuffling password")
	}

	if len(result) > opts.Length {
		result = result[:opts.Length]
	}
	return string(result), nil
}

// pick returns a uniformly chosen element of pool.
func (g *Generator) pick(pool []rune) (rune, error) {
	n, err := g.intn(len(pool))
	if err != nil {
		return 0, err
	}
	return pool[n], nil
}

// shuffle performs a Fisher-Yates shuffle.
func (g *Generator) shuffle(data []rune) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}

func (g *Generator) intn(n int) (int, error) {
	v, err := rand.Int(g.rand, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
