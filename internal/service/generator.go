package service

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/polybius/polybius-go/internal/bits"
	"github.com/polybius/polybius-go/internal/metrics"
	"github.com/polybius/polybius-go/internal/model"
)

var (
	ErrBitsOutOfRange  = errors.New("bits out of range")
	ErrCountOutOfRange = errors.New("count out of range")
	ErrTooManyFacts    = errors.New("too many facts")
	ErrTextTooLong     = errors.New("text fact too long")
)

// Limits bounds what a single request may ask for.
type Limits struct {
	DefaultBits   int
	MaxBits       int
	DefaultCount  int
	MaxCount      int
	MaxFacts      int
	MaxTextLength int
}

// DefaultLimits returns the limits used when nothing is configured.
func DefaultLimits() Limits {
	return Limits{
		DefaultBits:   8,
		MaxBits:       64,
		DefaultCount:  10,
		MaxCount:      50,
		MaxFacts:      100,
		MaxTextLength: 128,
	}
}

// Recorder receives generation metrics.
type Recorder interface {
	ObserveRequest(outcome string)
	ObservePassword(p model.Password)
}

type nopRecorder struct{}

func (nopRecorder) ObserveRequest(string)          {}
func (nopRecorder) ObservePassword(model.Password) {}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	limits   Limits
	rnd      bits.RandomSource
	recorder Recorder
	now      func() time.Time
}

// NewGeneratorService creates a new GeneratorService. A nil rnd uses the
// process-wide generator and a nil recorder discards metrics.
func NewGeneratorService(limits Limits, rnd bits.RandomSource, recorder Recorder) *GeneratorService {
	if rnd == nil {
		rnd = bits.NewRandom()
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &GeneratorService{
		limits:   limits,
		rnd:      rnd,
		recorder: recorder,
		now:      time.Now,
	}
}

// Limits returns the limits the service enforces.
func (s *GeneratorService) Limits() Limits {
	return s.limits
}

// Generate produces a set of candidate passwords from the request's facts.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	settings, count, err := s.settings(req)
	if err != nil {
		s.recorder.ObserveRequest(metrics.OutcomeInvalid)
		return model.GenerateResponse{}, err
	}

	pool, err := s.pool(req)
	if err != nil {
		s.recorder.ObserveRequest(metrics.OutcomeInvalid)
		return model.GenerateResponse{}, err
	}

	if req.AddYear {
		year := s.now().Year()
		pool = pool.WithNumber(model.Number{Value: uint16(year), Category: model.CurrentYear})
	}

	candidates := make([]model.Candidate, 0, count)
	for i := 0; i < count; i++ {
		p := bits.Assemble(s.rnd, pool, settings)
		rendered := p.String()
		candidates = append(candidates, model.Candidate{
			ID:       uuid.NewString(),
			Password: rendered,
			Bits:     []model.Bit(p),
			Entropy:  math.Round(bits.Entropy(rendered)*100) / 100,
		})
		s.recorder.ObservePassword(p)
	}
	s.recorder.ObserveRequest(metrics.OutcomeOK)

	slog.Debug("passwords generated",
		"count", count,
		"bits", settings.TargetLength,
		"symbols", settings.IncludeSymbols,
		"facts", pool.Len(),
	)

	return model.GenerateResponse{Passwords: candidates}, nil
}

// settings resolves defaults and validates bit and candidate counts.
func (s *GeneratorService) settings(req model.GenerateRequest) (model.GenerationSettings, int, error) {
	length := req.Bits
	if length == 0 {
		length = s.limits.DefaultBits
	}
	if length < 1 || length > s.limits.MaxBits {
		return model.GenerationSettings{}, 0, fmt.Errorf("%w: must be between 1 and %d", ErrBitsOutOfRange, s.limits.MaxBits)
	}

	count := req.Count
	if count == 0 {
		count = s.limits.DefaultCount
	}
	if count < 1 || count > s.limits.MaxCount {
		return model.GenerationSettings{}, 0, fmt.Errorf("%w: must be between 1 and %d", ErrCountOutOfRange, s.limits.MaxCount)
	}

	return model.GenerationSettings{
		TargetLength:   length,
		IncludeSymbols: boolOrDefault(req.Symbols, true),
	}, count, nil
}

// pool builds the fact pool. Text facts are NFC-normalized and trimmed, and
// blank ones are dropped.
func (s *GeneratorService) pool(req model.GenerateRequest) (model.FactPool, error) {
	if len(req.Numbers)+len(req.Texts) > s.limits.MaxFacts {
		return model.FactPool{}, fmt.Errorf("%w: at most %d", ErrTooManyFacts, s.limits.MaxFacts)
	}

	numbers := make([]model.Number, len(req.Numbers))
	copy(numbers, req.Numbers)

	texts := make([]string, 0, len(req.Texts))
	for _, t := range req.Texts {
		t = norm.NFC.String(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if utf8.RuneCountInString(t) > s.limits.MaxTextLength {
			return model.FactPool{}, fmt.Errorf("%w: at most %d characters", ErrTextTooLong, s.limits.MaxTextLength)
		}
		texts = append(texts, t)
	}

	return model.FactPool{Numbers: numbers, Texts: texts}, nil
}

// IsValidationError reports whether err was caused by the request itself.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrBitsOutOfRange) ||
		errors.Is(err, ErrCountOutOfRange) ||
		errors.Is(err, ErrTooManyFacts) ||
		errors.Is(err, ErrTextTooLong)
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
