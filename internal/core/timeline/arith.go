package timeline

import "math"

// floorDivMod returns the floored quotient and the modulo of x and y.
// The modulo takes the sign of y, so negative offsets wrap the way a clock does.
func floorDivMod(x, y float64) (float64, float64) {
	mod := math.Mod(x, y)
	div := (x - mod) / y
	if mod != 0 {
		if (y < 0) != (mod < 0) {
			mod += y
			div -= 1
		}
	} else {
		mod = math.Copysign(0, y)
	}

	if div == 0 {
		return math.Copysign(0, x/y), mod
	}
	floorDiv := math.Floor(div)
	if div-floorDiv > 0.5 {
		floorDiv += 1
	}
	return floorDiv, mod
}

func floorDiv(x, y float64) float64 {
	d, _ := floorDivMod(x, y)
	return d
}

func floorMod(x, y float64) float64 {
	_, m := floorDivMod(x, y)
	return m
}

func floorModInt(x, y int) int {
	m := x % y
	if m != 0 && (m < 0) != (y < 0) {
		m += y
	}
	return m
}

// splitMillis breaks a millisecond offset into hours, minutes, seconds and milliseconds
func splitMillis(ms float64) clockParts {
	secondsTotal := floorDiv(ms, 1_000)
	return clockParts{
		Hours:        int(floorDiv(secondsTotal, 3600)),
		Minutes:      int(floorDiv(floorMod(secondsTotal, 3600), 60)),
		Seconds:      int(floorMod(secondsTotal, 60)),
		Milliseconds: int(floorMod(ms, 1_000)),
	}
}
