package form

import "strings"

// Input masks applied on every keystroke. Each one strips non-digit
// characters, caps the digits at the mask capacity and re-inserts the
// separators once the length thresholds are crossed, so reapplying a mask
// to its own output is a no-op.

// FormatCEP masks a CEP as 99999-999.
func FormatCEP(valor string) string {
	d := somenteDigitos(valor)
	if len(d) > 8 {
		d = d[:8]
	}
	if len(d) <= 5 {
		return d
	}
	return d[:5] + "-" + d[5:]
}

// FormatCPF masks a CPF as 999.999.999-99, inserting the next separator
// at each of the 3, 6 and 9 digit thresholds.
func FormatCPF(valor string) string {
	d := somenteDigitos(valor)
	if len(d) > 11 {
		d = d[:11]
	}
	switch {
	case len(d) > 9:
		return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
	case len(d) > 6:
		return d[:3] + "." + d[3:6] + "." + d[6:]
	case len(d) > 3:
		return d[:3] + "." + d[3:]
	default:
		return d
	}
}

// FormatTelefone masks a phone number as (99) 9999-9999 for 10 digits or
// (99) 99999-9999 for 11. Partial input gets the partial landline mask
// until the full length is known.
func FormatTelefone(valor string) string {
	d := somenteDigitos(valor)
	if len(d) > 11 {
		d = d[:11]
	}
	switch {
	case len(d) == 11:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	case len(d) == 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	case len(d) > 6:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	case len(d) > 2:
		return "(" + d[:2] + ") " + d[2:]
	default:
		return d
	}
}

func somenteDigitos(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
