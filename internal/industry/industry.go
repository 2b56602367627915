// Package industry maps major industry identifiers to issuing sectors
// as assigned by ISO/IEC 7812.
package industry

var names = map[byte]string{
	'0': "ISO/TC 68 and other industry assignments",
	'1': "Airline industry",
	'2': "Airline industry",
	'3': "Travel/Entertainment",
	'4': "Banking/Financial",
	'5': "Banking/Financial",
	'6': "Merchandising & Banking/Financial",
	'7': "Petroleum industries",
	'8': "Health, telecomm and future",
	'9': "For assignment by standards bodies",
}

// Name returns the issuing sector for a major industry digit ('0'..'9'),
// or the empty string for anything else.
func Name(digit byte) string {
	return names[digit]
}
