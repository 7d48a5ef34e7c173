package handler

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/output"
	"github.com/vaultpass/passgen-go/internal/service"
)

const longDescription = `An utterly simple password generator.

By default a password contains lower and upper case characters, digits and
punctuation, with at least one character of each. Every class can be
disabled separately, and single characters can be excluded with --disable.

Examples:
  passgen
  passgen --no-punctuation --length 24
  passgen --punct-minimal          # only -_$%& as punctuation
  passgen --url-safe --clipboard
  passgen --disable "0 O l 1"`

// GeneratorHandler handles command line invocations for password generation.
type GeneratorHandler struct {
	service   *service.GeneratorService
	cfg       config.Config
	clipboard output.Sink
}

// NewGeneratorHandler creates a new GeneratorHandler. clipboard receives the
// passwords when clipboard output is selected.
func NewGeneratorHandler(svc *service.GeneratorService, cfg config.Config, clipboard output.Sink) *GeneratorHandler {
	return &GeneratorHandler{service: svc, cfg: cfg, clipboard: clipboard}
}

// Command builds the passgen command tree.
func (h *GeneratorHandler) Command() *cobra.Command {
	var (
		req         model.GenerateRequest
		toClipboard bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:           "passgen",
		Short:         "Generate random passwords",
		Long:          longDescription,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := h.cfg.LogLevel
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return h.HandleGenerate(cmd, req, toClipboard)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&req.Length, "length", "l", h.cfg.Length, "password length")
	flags.BoolVar(&req.NoLower, "no-lower", false, "disable lower case characters")
	flags.BoolVar(&req.NoUpper, "no-upper", false, "disable upper case characters")
	flags.BoolVar(&req.NoDigits, "no-digits", false, "disable digits")
	flags.BoolVar(&req.NoPunctuation, "no-punctuation", false, "disable punctuation")
	flags.BoolVar(&req.PunctMinimal, "punct-minimal", false, "use only -_$%& as punctuation")
	flags.BoolVar(&req.URLSafe, "url-safe", false, "use only URL-safe punctuation -_.~")
	flags.StringArrayVarP(&req.Disable, "disable", "D", nil, `characters to exclude, for example --disable "A B u ( )"`)
	flags.StringVar(&req.Custom, "custom", "", "additional character class")
	flags.IntVarP(&req.Count, "count", "n", 1, "number of passwords")
	flags.BoolVar(&req.Hash, "hash", false, "also print an argon2id hash of each password")
	flags.BoolVarP(&toClipboard, "clipboard", "c", h.cfg.Output == config.OutputClipboard, "copy to the clipboard instead of printing")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newVerifyCommand())
	return cmd
}

// HandleGenerate generates the requested passwords and delivers them to
// stdout or the clipboard. Nothing but hashes is printed in clipboard mode.
func (h *GeneratorHandler) HandleGenerate(cmd *cobra.Command, req model.GenerateRequest, toClipboard bool) error {
	resp, err := h.service.Generate(req)
	if err != nil {
		return err
	}

	stdout := output.NewWriterSink(cmd.OutOrStdout())

	if toClipboard {
		passwords := make([]string, len(resp.Passwords))
		for i, p := range resp.Passwords {
			passwords[i] = p.Password
		}
		if err := h.clipboard.Deliver(strings.Join(passwords, "\n")); err != nil {
			return err
		}
		for _, p := range resp.Passwords {
			if p.Hash == "" {
				continue
			}
			if err := stdout.Deliver(p.Hash); err != nil {
				return err
			}
		}
		slog.Info("copied to clipboard", "count", len(passwords), "length", resp.Length)
		return nil
	}

	for _, p := range resp.Passwords {
		line := p.Password
		if p.Hash != "" {
			line += "\t" + p.Hash
		}
		if err := stdout.Deliver(line); err != nil {
			return err
		}
	}
	return nil
}
