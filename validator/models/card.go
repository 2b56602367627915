package models

// CardNumber is an ordered sequence of decimal digits, at least two long:
// one payload digit plus the trailing check digit. Partition boundaries
// are fixed by position rather than content, so a number that fails the
// checksum still decomposes the same way.
type CardNumber string

// iinLength is the issuer identification number width for full-length
// numbers. Shorter sequences truncate the issuer segment so it never
// overlaps the check digit.
const iinLength = 6

// MajorIndustry returns the first digit, which classifies the issuing
// sector.
func (c CardNumber) MajorIndustry() byte {
	return c[0]
}

// Issuer returns the issuer identification number: the first six digits,
// or everything before the check digit when the sequence is shorter.
func (c CardNumber) Issuer() string {
	if len(c)-1 < iinLength {
		return string(c[:len(c)-1])
	}
	return string(c[:iinLength])
}

// Personal returns the cardholder account digits between the issuer
// segment and the check digit; empty for sequences of seven digits or
// fewer.
func (c CardNumber) Personal() string {
	if len(c)-1 <= iinLength {
		return ""
	}
	return string(c[iinLength : len(c)-1])
}

// CheckDigit returns the last digit.
func (c CardNumber) CheckDigit() byte {
	return c[len(c)-1]
}

// ValidationResult is the outcome of validating or generating a card
// number. It is immutable after construction; the decomposition fields
// are filled even when Valid is false. Number is only set by generation.
type ValidationResult struct {
	Valid         bool   `json:"valid"`
	MajorIndustry string `json:"major industry"`
	Industry      string `json:"industry"`
	Issuer        string `json:"card issuer"`
	Personal      string `json:"personal digits"`
	CheckDigit    string `json:"check digit"`
	Number        string `json:"card number,omitempty"`
}
