package common

import (
	"fmt"
	"math/big"
	"strings"
)

const (
	NEARDecimals = 24 // NEAR has 24 decimals (yoctoNEAR)
)

// YoctoToNEAR converts a yoctoNEAR decimal string to a NEAR string without
// float precision loss. Amounts do not fit in uint64, so everything stays
// string/big.Int based.
func YoctoToNEAR(yocto string) (string, error) {
	return formatWithDecimals(yocto, NEARDecimals)
}

// NEARToYocto converts a NEAR string to a yoctoNEAR decimal string without
// float precision loss
func NEARToYocto(near string) (string, error) {
	return parseWithDecimals(near, NEARDecimals)
}

// TrimNEAR shortens a NEAR string for display, keeping at most 5 fractional
// digits. "1.000000000000000000000000" -> "1"
func TrimNEAR(near string) string {
	if !strings.Contains(near, ".") {
		return near
	}
	parts := strings.SplitN(near, ".", 2)
	frac := parts[1]
	if len(frac) > 5 {
		frac = frac[:5]
	}
	frac = strings.TrimRight(frac, "0")
	if frac == "" {
		return parts[0]
	}
	return parts[0] + "." + frac
}

// formatWithDecimals converts integer string to decimal string by inserting decimal point
// Example: formatWithDecimals("100000000000000000000000", 24) = "0.100000000000000000000000"
func formatWithDecimals(value string, decimals int) (string, error) {
	value = strings.TrimSpace(value)
	if _, ok := new(big.Int).SetString(value, 10); !ok {
		return "", fmt.Errorf("invalid integer amount %q", value)
	}

	s := value

	// Pad with leading zeros if needed
	for len(s) <= decimals {
		s = "0" + s
	}

	// Insert decimal point
	pos := len(s) - decimals
	return s[:pos] + "." + s[pos:], nil
}

// parseWithDecimals converts decimal string to integer string by removing decimal point
// Example: parseWithDecimals("0.1", 24) = "100000000000000000000000"
func parseWithDecimals(s string, decimals int) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty string")
	}

	parts := strings.Split(s, ".")

	var whole, frac string
	switch len(parts) {
	case 1:
		whole = parts[0]
		frac = ""
	case 2:
		whole = parts[0]
		frac = parts[1]
	default:
		return "", fmt.Errorf("invalid decimal format")
	}

	// Pad or truncate fractional part to exact decimals
	if len(frac) < decimals {
		frac += strings.Repeat("0", decimals-len(frac))
	} else if len(frac) > decimals {
		frac = frac[:decimals]
	}

	combined := whole + frac
	n, ok := new(big.Int).SetString(combined, 10)
	if !ok {
		return "", fmt.Errorf("invalid amount %q", s)
	}
	if n.Sign() < 0 {
		return "", fmt.Errorf("amount must not be negative")
	}
	return n.String(), nil
}
