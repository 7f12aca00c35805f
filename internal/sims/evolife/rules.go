package evolife

import "strings"

// ParseRules turns a "B<digits>/S<digits>" rule string into birth and survival
// neighbour masks: bit n is set when n live neighbours trigger the outcome.
//
// Parsing never fails. Input without a leading 'B' yields two zero masks, a
// missing "/S" part yields a zero survival mask, and characters other than
// the digits 0-8 are skipped.
func ParseRules(spec string) (birth, survival uint16) {
	if !strings.HasPrefix(spec, "B") {
		return 0, 0
	}
	rest := spec[1:]
	birthPart, survivalPart, found := strings.Cut(rest, "/")
	birth = digitMask(birthPart)
	if !found || !strings.HasPrefix(survivalPart, "S") {
		return birth, 0
	}
	return birth, digitMask(survivalPart[1:])
}

// FormatRules renders masks back into canonical "B.../S..." form with digits
// in ascending order.
func FormatRules(birth, survival uint16) string {
	var b strings.Builder
	b.WriteByte('B')
	writeDigits(&b, birth)
	b.WriteString("/S")
	writeDigits(&b, survival)
	return b.String()
}

func digitMask(s string) uint16 {
	var mask uint16
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '8' {
			mask |= 1 << (c - '0')
		}
	}
	return mask
}

func writeDigits(b *strings.Builder, mask uint16) {
	for n := 0; n <= 8; n++ {
		if mask&(1<<n) != 0 {
			b.WriteByte(byte('0' + n))
		}
	}
}
