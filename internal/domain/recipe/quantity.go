package recipe

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// PresetScaleFactors are the multipliers offered next to a recipe.
var PresetScaleFactors = []float64{0.5, 1, 2, 3}

// leadingNumber matches the numeric prefix of a quantity such as "2 cups".
var leadingNumber = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// ScaleQuantity multiplies a free-text quantity by factor.
//
// Plain numbers, simple fractions ("1/2") and mixed numbers ("1 1/2") are
// understood. The result is always a decimal string; fractions are never
// rebuilt. Input that cannot be read as a number is returned unchanged.
func ScaleQuantity(quantity string, factor float64) string {
	if quantity == "" {
		return ""
	}

	trimmed := strings.TrimSpace(quantity)

	if fields := strings.Fields(trimmed); len(fields) >= 2 &&
		!strings.Contains(fields[0], "/") && strings.Contains(fields[1], "/") {
		whole, ok := parseLeadingFloat(fields[0])
		if !ok {
			return quantity
		}
		fraction, ok := parseFraction(fields[1])
		if !ok {
			return quantity
		}
		return formatNumber((whole + fraction) * factor)
	}

	if strings.Contains(trimmed, "/") {
		fraction, ok := parseFraction(trimmed)
		if !ok {
			return quantity
		}
		return formatNumber(fraction * factor)
	}

	value, ok := parseLeadingFloat(trimmed)
	if !ok {
		return quantity
	}
	return formatNumber(value * factor)
}

// ScaleIngredients returns copies of ingredients with scaled quantities.
func ScaleIngredients(ingredients []Ingredient, factor float64) []Ingredient {
	scaled := make([]Ingredient, len(ingredients))
	for i, ing := range ingredients {
		ing.Quantity = ScaleQuantity(ing.Quantity, factor)
		scaled[i] = ing
	}
	return scaled
}

// parseFraction reads "n/d"; only the first two slash-separated parts count.
func parseFraction(s string) (float64, bool) {
	parts := strings.Split(s, "/")
	numerator, ok := parseLeadingFloat(strings.TrimSpace(parts[0]))
	if !ok {
		return 0, false
	}
	denominator, ok := parseLeadingFloat(strings.TrimSpace(parts[1]))
	if !ok || denominator == 0 {
		return 0, false
	}
	return numerator / denominator, true
}

// parseLeadingFloat reads the longest numeric prefix of s.
func parseLeadingFloat(s string) (float64, bool) {
	match := leadingNumber.FindString(strings.TrimLeft(s, " \t\n\r\f\v"))
	if match == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil && !math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

// formatNumber renders v in the shortest form that round-trips, switching to
// exponent notation outside [1e-6, 1e21).
func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exponent, _ := strings.Cut(s, "e")
	sign := exponent[:1]
	digits := strings.TrimLeft(exponent[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}
