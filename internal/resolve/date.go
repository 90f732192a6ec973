package resolve

import (
	"fmt"
	"strconv"
	"strings"
)

// Malay month names, January first.
var malayMonths = []string{
	"Januari", "Februari", "Mac", "April", "Mei", "Jun",
	"Julai", "Ogos", "September", "Oktober", "November", "Disember",
}

// malayDate reads entry_tarikh and renders it as "02 Januari 2006". The
// field uses d/m/yyyy as entered by the operator. Anything unparseable is
// returned as typed, so a free-form date still lands in the document.
func malayDate(resolver FieldResolver) string {
	raw := fieldValue(resolver, "entry_tarikh")
	formatted, ok := FormatMalayDate(raw)
	if !ok {
		return raw
	}
	return formatted
}

// FormatMalayDate converts a d/m/yyyy string to the long Malay form.
func FormatMalayDate(raw string) (string, bool) {
	parts := strings.Split(strings.TrimSpace(raw), "/")
	if len(parts) != 3 {
		return "", false
	}

	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || day < 1 || day > 31 {
		return "", false
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || month < 1 || month > 12 {
		return "", false
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return "", false
	}

	return fmt.Sprintf("%02d %s %d", day, malayMonths[month-1], year), true
}
