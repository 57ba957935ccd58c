package validation

import "regexp"

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// ValidateHues returns one message per hue outside [0, 360).
func ValidateHues(prefix string, hues []float64) []string {
	var errs []string
	for _, h := range hues {
		if h < 0 || h >= 360 {
			errs = append(errs, prefix+".hues values must be in [0, 360)")
			break
		}
	}
	return errs
}

// ValidateUnitInterval checks a saturation or lightness value.
func ValidateUnitInterval(field string, value float64) []string {
	if value < 0 || value > 1 {
		return []string{field + " must be between 0 and 1"}
	}
	return nil
}
