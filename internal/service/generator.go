package service

import (
	"github.com/vaultpass/passvault/internal/generator"
	"github.com/vaultpass/passvault/internal/model"
)

// GenerationObserver is told the strength label of every generated password.
type GenerationObserver interface {
	PasswordGenerated(label string)
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	src      generator.RandomSource
	observer GenerationObserver
}

// NewGeneratorService creates a new GeneratorService. A nil src means
// crypto/rand; observer may be nil.
func NewGeneratorService(src generator.RandomSource, observer GenerationObserver) *GeneratorService {
	if src == nil {
		src = generator.CryptoSource{}
	}
	return &GeneratorService{src: src, observer: observer}
}

// Generate produces a password and its report. Missing classes default to
// enabled and a zero length to generator.DefaultLength.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	cfg := generator.Config{
		Length:    req.Length,
		Upper:     boolOrDefault(req.Uppercase, true),
		Lower:     boolOrDefault(req.Lowercase, true),
		Digits:    boolOrDefault(req.Numbers, true),
		Symbols:   boolOrDefault(req.Symbols, true),
		EachClass: req.EachClass,
	}

	if cfg.Length == 0 {
		cfg.Length = generator.DefaultLength
	}

	password, err := generator.Generate(cfg, s.src)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	report := generator.Analyze(password, cfg)
	if s.observer != nil {
		s.observer.PasswordGenerated(report.Strength.Label)
	}

	return model.GenerateResponse{
		Password:    password,
		Length:      report.Length,
		Strength:    toStrengthResponse(report.Strength),
		EntropyBits: report.EntropyBits,
		Cardinality: report.Cardinality,
		CrackTime:   report.CrackTime,
		Classes:     report.Classes,
	}, nil
}

// Strength scores an arbitrary password.
func (s *GeneratorService) Strength(req model.StrengthRequest) model.StrengthResponse {
	return toStrengthResponse(generator.Evaluate(req.Password))
}

func toStrengthResponse(st generator.Strength) model.StrengthResponse {
	return model.StrengthResponse{
		Score: st.Score,
		Max:   generator.MaxScore,
		Label: st.Label,
		Color: st.Color,
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
