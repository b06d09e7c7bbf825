package builder

// Method names used as error prefixes.
const (
	MethodStep        = "Step"
	MethodGrid        = "Grid"
	MethodLine        = "Line"
	MethodArray       = "Array"
	MethodVal         = "Val"
	MethodSinglePoint = "SinglePoint"
	MethodCirc        = "Circ"
	MethodRect        = "Rect"
	MethodPoly        = "Poly"
	MethodCompose     = "Compose"
)

// stepTolerance absorbs rounding when a range is an exact multiple of its
// step, so Step("x", 0, 1, 0.1) has 11 points and not 10.
const stepTolerance = 1e-9

// percent converts a percentage to a fraction.
const percent = 0.01
