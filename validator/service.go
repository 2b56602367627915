package validator

import (
	"fmt"

	"github.com/alovak/cardnum/internal/industry"
	"github.com/alovak/cardnum/internal/luhn"
	"github.com/alovak/cardnum/validator/models"
)

// ErrInvalidInput covers every caller-input problem: non-digit characters
// or empty input on validation, an out-of-range major industry identifier
// or a bad length on generation. It is detected before any algorithmic
// work starts.
var ErrInvalidInput = fmt.Errorf("invalid input")

const (
	// DefaultLength is the total number length used when a generate call
	// does not request one.
	DefaultLength = 16

	minLength = 2
	maxLength = 19
)

// Service is the Luhn engine. It owns validation and generation and keeps
// no state besides its digit source, so one instance may serve concurrent
// requests without locking.
type Service struct {
	source luhn.DigitSource
	cfg    *Config
}

// NewService builds the engine. A nil source selects crypto/rand digits;
// tests inject a fixed-sequence source for deterministic output.
func NewService(source luhn.DigitSource, cfg *Config) *Service {
	if source == nil {
		source = luhn.CryptoSource{}
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Service{
		source: source,
		cfg:    cfg,
	}
}

// Validate checks input against the Luhn checksum and decomposes it by
// position. The decomposition is returned even when the checksum fails,
// so callers can present "invalid but parsed" results. Input is never
// stripped or coerced: any non-digit byte is an error.
func (s *Service) Validate(input string) (*models.ValidationResult, error) {
	if !luhn.IsDigits(input) {
		return nil, fmt.Errorf("card number must be decimal digits: %w", ErrInvalidInput)
	}
	if len(input) < minLength {
		return nil, fmt.Errorf("card number must have at least %d digits: %w", minLength, ErrInvalidInput)
	}

	return newResult(models.CardNumber(input), luhn.Valid(input)), nil
}

// Generate builds a Luhn-valid number of the given total length starting
// with the supplied major industry digit. A zero length selects the
// configured default. Digits between the identifier and the check digit
// come from the digit source; the check digit is solved directly, so the
// result always validates.
func (s *Service) Generate(mii int, length int) (*models.ValidationResult, error) {
	if mii < 0 || mii > 9 {
		return nil, fmt.Errorf("major industry identifier must be a single digit: %w", ErrInvalidInput)
	}
	if length == 0 {
		length = s.cfg.DefaultCardLength
	}
	if length < minLength || length > maxLength {
		return nil, fmt.Errorf("length must be %d..%d digits: %w", minLength, maxLength, ErrInvalidInput)
	}

	middle, err := s.source.Digits(length - 2)
	if err != nil {
		return nil, fmt.Errorf("drawing random digits: %w", err)
	}

	body := string('0'+byte(mii)) + middle
	number := body + string(luhn.CheckDigit(body))

	result := newResult(models.CardNumber(number), true)
	result.Number = number

	return result, nil
}

func newResult(number models.CardNumber, valid bool) *models.ValidationResult {
	return &models.ValidationResult{
		Valid:         valid,
		MajorIndustry: string(number.MajorIndustry()),
		Industry:      industry.Name(number.MajorIndustry()),
		Issuer:        number.Issuer(),
		Personal:      number.Personal(),
		CheckDigit:    string(number.CheckDigit()),
	}
}
