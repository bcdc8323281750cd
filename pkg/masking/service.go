package masking

import (
	"log/slog"

	"github.com/procureguard/trimatch/pkg/config"
	"github.com/procureguard/trimatch/pkg/models"
)

// Service applies payment-credential masking to document bundles at
// ingestion. Created once at application startup; thread-safe and
// stateless aside from compiled patterns.
type Service struct {
	enabled  bool
	maskers  []Masker
	patterns []*CompiledPattern
}

// NewService creates a masking service from configuration. All patterns
// are compiled eagerly; invalid extra patterns are logged and skipped.
func NewService(cfg *config.MaskingConfig) *Service {
	s := &Service{enabled: cfg != nil && cfg.Enabled}
	if !s.enabled {
		slog.Info("Masking service disabled by configuration")
		return s
	}

	// Code-based maskers run first: they are more specific and their
	// markers must not be re-matched by the regex sweep.
	s.maskers = []Masker{&CardNumberMasker{}}
	s.patterns = compileBuiltinPatterns()
	if cfg != nil {
		s.patterns = append(s.patterns, compileExtraPatterns(cfg.ExtraPatterns)...)
	}

	slog.Info("Masking service initialized",
		"code_maskers", len(s.maskers),
		"compiled_patterns", len(s.patterns))
	return s
}

// MaskText masks one text fragment. Masking is fail-open: reconciliation
// must keep flowing, so an unmatchable pattern simply leaves the text
// unchanged.
func (s *Service) MaskText(text string) string {
	if !s.enabled || text == "" {
		return text
	}

	masked := text
	for _, m := range s.maskers {
		if m.AppliesTo(masked) {
			masked = m.Mask(masked)
		}
	}
	for _, p := range s.patterns {
		masked = p.Regex.ReplaceAllString(masked, p.Replacement)
	}
	return masked
}

// MaskBundle masks every chunk of the three documents in place and
// returns the number of chunks that were altered.
func (s *Service) MaskBundle(bundle *models.DocumentBundle) int {
	if !s.enabled || bundle == nil {
		return 0
	}

	altered := 0
	for _, kind := range models.Kinds() {
		doc := bundle.ByKind(kind)
		for i := range doc.Chunks {
			masked := s.MaskText(doc.Chunks[i].Text)
			if masked != doc.Chunks[i].Text {
				doc.Chunks[i].Text = masked
				altered++
			}
		}
	}
	return altered
}
