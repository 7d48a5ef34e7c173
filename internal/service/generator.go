package service

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

var ErrInvalidCount = errors.New("password count must be at least 1")

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	generator *crypto.Generator
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{generator: crypto.NewGenerator()}
}

// Generate produces req.Count passwords based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	if req.Count == 0 {
		req.Count = 1
	}
	if req.Count < 1 {
		return model.GenerateResponse{}, ErrInvalidCount
	}

	opts := Options(req)
	slog.Debug("generating passwords",
		"length", opts.Length,
		"classes", classNames(opts.Classes),
		"excluded", len([]rune(opts.Exclude)),
		"count", req.Count,
	)

	resp := model.GenerateResponse{
		Passwords: make([]model.GeneratedPassword, 0, req.Count),
		Length:    opts.Length,
	}
	for i := 0; i < req.Count; i++ {
		password, err := s.generator.Generate(opts)
		if err != nil {
			return model.GenerateResponse{}, err
		}

		generated := model.GeneratedPassword{Password: password}
		if req.Hash {
			generated.Hash, err = crypto.HashPassword(password)
			if err != nil {
				return model.GenerateResponse{}, errors.Wrap(err, "hashing password")
			}
		}
		resp.Passwords = append(resp.Passwords, generated)
	}

	return resp, nil
}

// Options maps a request onto generator options. Minimal and URL-safe
// punctuation replace the full punctuation class and may be combined.
func Options(req model.GenerateRequest) crypto.GeneratorOptions {
	opts := crypto.GeneratorOptions{
		Length:  req.Length,
		Exclude: crypto.NormalizeExclusions(req.Disable...),
	}

	if !req.NoLower {
		opts.Classes = append(opts.Classes, crypto.Lowercase)
	}
	if !req.NoUpper {
		opts.Classes = append(opts.Classes, crypto.Uppercase)
	}
	if !req.NoDigits {
		opts.Classes = append(opts.Classes, crypto.Digits)
	}
	if !req.NoPunctuation && !req.PunctMinimal && !req.URLSafe {
		opts.Classes = append(opts.Classes, crypto.Punctuation)
	}
	if req.URLSafe {
		opts.Classes = append(opts.Classes, crypto.URLSafe)
	}
	if req.PunctMinimal {
		opts.Classes = append(opts.Classes, crypto.Minimal)
	}
	if req.Custom != "" {
		opts.Classes = append(opts.Classes, crypto.Custom(req.Custom))
	}

	return opts
}

func classNames(classes []crypto.CharacterClass) []string {
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.Name
	}
	return names
}
