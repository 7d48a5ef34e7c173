package service

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{Length: crypto.DefaultLength})
	require.NoError(t, err)

	require.Len(t, resp.Passwords, 1)
	assert.Equal(t, 16, resp.Length)
	assert.Len(t, resp.Passwords[0].Password, 16)
	assert.Empty(t, resp.Passwords[0].Hash)
}

func TestGenerate_Count(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{Length: 20, Count: 5})
	require.NoError(t, err)

	require.Len(t, resp.Passwords, 5)
	seen := map[string]bool{}
	for _, p := range resp.Passwords {
		assert.Len(t, p.Password, 20)
		assert.False(t, seen[p.Password], "duplicate password %q", p.Password)
		seen[p.Password] = true
	}
}

func TestGenerate_InvalidCount(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Length: 16, Count: -2})
	assert.True(t, errors.Is(err, ErrInvalidCount), "got %v", err)
}

func TestGenerate_AllDisabled(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{
		Length:        16,
		NoLower:       true,
		NoUpper:       true,
		NoDigits:      true,
		NoPunctuation: true,
	})
	assert.True(t, errors.Is(err, crypto.ErrExhaustedCharacterPool), "got %v", err)
}

func TestGenerate_Hash(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{Length: 12, Hash: true})
	require.NoError(t, err)
	require.Len(t, resp.Passwords, 1)

	ok, err := crypto.VerifyPassword(resp.Passwords[0].Password, resp.Passwords[0].Hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGenerate_DisableAndMinimal(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Length:       40,
		PunctMinimal: true,
		Disable:      []string{"$ %", "&"},
	})
	require.NoError(t, err)

	password := resp.Passwords[0].Password
	assert.False(t, strings.ContainsAny(password, "$%&"), "password %q", password)
	assert.True(t, strings.ContainsAny(password, "-_"), "password %q should hold minimal punctuation", password)
}

func TestOptions(t *testing.T) {
	names := func(opts crypto.GeneratorOptions) []string { return classNames(opts.Classes) }

	tests := []struct {
		name string
		req  model.GenerateRequest
		want []string
	}{
		{name: "defaults", req: model.GenerateRequest{}, want: []string{"lower", "upper", "digits", "punctuation"}},
		{name: "no punctuation", req: model.GenerateRequest{NoPunctuation: true}, want: []string{"lower", "upper", "digits"}},
		{name: "minimal", req: model.GenerateRequest{PunctMinimal: true}, want: []string{"lower", "upper", "digits", "minimal"}},
		{name: "url safe", req: model.GenerateRequest{URLSafe: true}, want: []string{"lower", "upper", "digits", "url"}},
		{name: "url and minimal", req: model.GenerateRequest{URLSafe: true, PunctMinimal: true}, want: []string{"lower", "upper", "digits", "url", "minimal"}},
		{name: "digits only", req: model.GenerateRequest{NoLower: true, NoUpper: true, NoPunctuation: true}, want: []string{"digits"}},
		{name: "custom only", req: model.GenerateRequest{NoLower: true, NoUpper: true, NoDigits: true, NoPunctuation: true, Custom: "xyz"}, want: []string{"custom"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Options(tt.req)))
		})
	}

	assert.Equal(t, "ABu", Options(model.GenerateRequest{Disable: []string{"A B", "u"}}).Exclude)
}
