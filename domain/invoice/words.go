package invoice

import "strings"

var wordUnits = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var wordTens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// AmountInWords spells out n using the Indian grouping scheme:
// crore (1e7), lakh (1e5), thousand, hundred. Negative values are
// prefixed with "Minus". The invoice template wraps the result as
// "Indian Rupee <words> Only".
func AmountInWords(n int64) string {
	if n == 0 {
		return "Zero"
	}
	if n < 0 {
		return "Minus " + AmountInWords(-n)
	}

	var b strings.Builder

	crore := n / 10000000
	n %= 10000000
	lakh := n / 100000
	n %= 100000
	thousand := n / 1000
	n %= 1000
	hundred := n / 100
	rest := n % 100

	if crore > 0 {
		b.WriteString(AmountInWords(crore) + " Crore ")
	}
	if lakh > 0 {
		b.WriteString(AmountInWords(lakh) + " Lakh ")
	}
	if thousand > 0 {
		b.WriteString(AmountInWords(thousand) + " Thousand ")
	}
	if hundred > 0 {
		b.WriteString(wordUnits[hundred] + " Hundred ")
	}
	if rest > 0 {
		if b.Len() > 0 {
			b.WriteString("and ")
		}
		if rest < 20 {
			b.WriteString(wordUnits[rest] + " ")
		} else {
			b.WriteString(wordTens[rest/10])
			if rest%10 != 0 {
				b.WriteString(" " + wordUnits[rest%10])
			}
			b.WriteString(" ")
		}
	}

	return strings.TrimSpace(b.String())
}
