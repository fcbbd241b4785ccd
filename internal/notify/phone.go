package notify

import "strings"

// NormalizePhone converts a stored contact phone into E.164-ish form for
// WhatsApp addressing. Non-digit characters are stripped (a leading "+" is
// kept). Numbers without a country code get leading zeros removed and the
// configured default country code prepended.
//
// "09 1234-5678" with default code "56" becomes "+56912345678".
func NormalizePhone(raw, defaultCountryCode string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && b.Len() == 0 {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" || cleaned == "+" {
		return ""
	}
	if strings.HasPrefix(cleaned, "+") {
		return cleaned
	}
	cleaned = strings.TrimLeft(cleaned, "0")
	if cleaned == "" {
		return ""
	}
	return "+" + defaultCountryCode + cleaned
}
