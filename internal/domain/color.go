package domain

// ColorPolicy decides whether rendered output carries ANSI escape sequences
type ColorPolicy string

const (
	ColorAuto      ColorPolicy = "auto"
	ColorForcedOff ColorPolicy = "never"
	ColorForcedOn  ColorPolicy = "always"
)

// ColorPolicyFromFlags maps the --no-color and --color flags to a policy.
// --no-color wins if both are somehow set.
func ColorPolicyFromFlags(noColor, forceColor bool) ColorPolicy {
	switch {
	case noColor:
		return ColorForcedOff
	case forceColor:
		return ColorForcedOn
	default:
		return ColorAuto
	}
}

// Enabled resolves the policy against the interactivity of the destination
func (p ColorPolicy) Enabled(interactive bool) bool {
	switch p {
	case ColorForcedOn:
		return true
	case ColorForcedOff:
		return false
	default:
		return interactive
	}
}
