package resolve

import (
	"strconv"
	"strings"
)

var greekLetters = []rune("αβγδεζηθικλμνξοπρστυφχψω")

// FormatNumber renders list item number in the numbering system. Values
// outside of what the system can express fall back to decimal.
func FormatNumber(n int, ns NumberingSystem) string {
	switch ns {
	case NumberingSystemDecimalLeadingZero:
		if n >= 0 && n < 10 {
			return "0" + strconv.Itoa(n)
		}
	case NumberingSystemLowerAlpha:
		if n > 0 {
			return alphabetic(n, []rune("abcdefghijklmnopqrstuvwxyz"))
		}
	case NumberingSystemUpperAlpha:
		if n > 0 {
			return alphabetic(n, []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ"))
		}
	case NumberingSystemLowerGreek:
		if n > 0 {
			return alphabetic(n, greekLetters)
		}
	case NumberingSystemLowerRoman:
		if n > 0 && n < 4000 {
			return strings.ToLower(roman(n))
		}
	case NumberingSystemUpperRoman:
		if n > 0 && n < 4000 {
			return roman(n)
		}
	}
	return strconv.Itoa(n)
}

// alphabetic produces bijective base-N sequence: a, b, ..., z, aa, ab, ...
func alphabetic(n int, letters []rune) string {
	var res []rune
	base := len(letters)
	for n > 0 {
		n--
		res = append(res, letters[n%base])
		n /= base
	}
	for i, j := 0, len(res)-1; i < j; i, j = i+1, j-1 {
		res[i], res[j] = res[j], res[i]
	}
	return string(res)
}

var romanDigits = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

func roman(n int) string {
	var sb strings.Builder
	for _, d := range romanDigits {
		for n >= d.value {
			sb.WriteString(d.symbol)
			n -= d.value
		}
	}
	return sb.String()
}
