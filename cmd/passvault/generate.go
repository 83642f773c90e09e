package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/vaultpass/passvault/internal/generator"
)

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

type generateOptions struct {
	cfg    generator.Config
	count  int
	seed   uint64
	seeded bool
	copy   bool
	show   bool
}

func parseGenerateFlags(fs *flag.FlagSet, args []string) (generateOptions, error) {
	opts := generateOptions{cfg: generator.DefaultConfig()}

	fs.IntVar(&opts.cfg.Length, "length", generator.DefaultLength, "password length (4-50)")
	fs.IntVar(&opts.cfg.Length, "l", generator.DefaultLength, "password length (shorthand)")
	fs.BoolVar(&opts.cfg.Upper, "upper", true, "include A-Z")
	fs.BoolVar(&opts.cfg.Lower, "lower", true, "include a-z")
	fs.BoolVar(&opts.cfg.Digits, "digits", true, "include 0-9")
	fs.BoolVar(&opts.cfg.Symbols, "symbols", true, "include symbols")
	fs.BoolVar(&opts.cfg.EachClass, "each-class", false, "guarantee one character from every enabled class")
	fs.IntVar(&opts.count, "count", 1, "number of passwords")
	fs.IntVar(&opts.count, "n", 1, "number of passwords (shorthand)")
	fs.Uint64Var(&opts.seed, "seed", 0, "reproducible non-cryptographic seed (testing only)")
	fs.BoolVar(&opts.copy, "copy", false, "copy the last password to the clipboard")
	fs.BoolVar(&opts.show, "show", false, "print passwords instead of masking them")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.seeded = true
		}
	})

	if opts.count < 1 {
		return opts, fmt.Errorf("count must be at least 1, got %d", opts.count)
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return opts, nil
}

func runGenerate(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts, err := parseGenerateFlags(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	var src generator.RandomSource = generator.CryptoSource{}
	if opts.seeded {
		src = generator.NewSeededSource(opts.seed)
	}

	renderer := lipgloss.NewRenderer(stdout)
	var last string
	for i := 0; i < opts.count; i++ {
		password, err := generator.Generate(opts.cfg, src)
		if err != nil {
			return err
		}
		last = password

		shown := password
		if !opts.show {
			shown = mask(password)
		}
		fmt.Fprintln(stdout, shown)
		printReport(stdout, renderer, generator.Analyze(password, opts.cfg))
	}

	if opts.copy {
		if err := copyToClipboard(last); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		fmt.Fprintln(stdout, "copied to clipboard")
	}
	return nil
}

func runStrength(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("strength", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: passvault strength <password>")
		return errUsage
	}

	s := generator.Evaluate(fs.Arg(0))
	fmt.Fprintf(stdout, "Strength: %s (%d/%d)\n", strengthLabel(lipgloss.NewRenderer(stdout), s), s.Score, generator.MaxScore)
	return nil
}

func printReport(w io.Writer, r *lipgloss.Renderer, rep generator.Report) {
	fmt.Fprintf(w, "  Strength:    %s (%d/%d)\n", strengthLabel(r, rep.Strength), rep.Strength.Score, generator.MaxScore)
	fmt.Fprintf(w, "  Entropy:     %d bits\n", rep.EntropyBits)
	fmt.Fprintf(w, "  Cardinality: %s\n", rep.Cardinality)
	fmt.Fprintf(w, "  Crack time:  %s\n", rep.CrackTime)
	fmt.Fprintf(w, "  Classes:     %s\n", rep.Classes)
}

func strengthLabel(r *lipgloss.Renderer, s generator.Strength) string {
	if s.Label == "" {
		return "-"
	}
	return r.NewStyle().Bold(true).Foreground(lipgloss.Color(s.Color)).Render(s.Label)
}

func mask(password string) string {
	return strings.Repeat("•", utf8.RuneCountInString(password))
}
