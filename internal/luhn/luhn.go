// Package luhn implements the Luhn checksum over decimal digit strings.
package luhn

// Sum computes the Luhn checksum over a full digit sequence, check digit
// included: moving left from the check digit, every second digit is doubled
// and reduced by 9 when above 9, then all digits are summed.
// The caller must guarantee digits contains only '0'..'9'.
func Sum(digits string) int {
	sum, dbl := 0, false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if dbl {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		dbl = !dbl
	}
	return sum
}

// Valid reports whether digits passes the Luhn check.
func Valid(digits string) bool {
	return Sum(digits)%10 == 0
}

// CheckDigit returns the unique digit d such that body+d passes the Luhn
// check. Doubling starts at the last digit of body, matching the pattern
// Sum applies once d takes the final position.
func CheckDigit(body string) byte {
	sum, dbl := 0, true
	for i := len(body) - 1; i >= 0; i-- {
		d := int(body[i] - '0')
		if dbl {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		dbl = !dbl
	}
	return byte('0' + (10-sum%10)%10)
}

// IsDigits reports whether s is non-empty and contains only '0'..'9'.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
