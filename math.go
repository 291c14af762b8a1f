package softrast

import "github.com/chewxy/math32"

// ToRadians is a helper function to easily convert degrees to radians; camera and model rotations in softrast are given in degrees.
func ToRadians(degrees float32) float32 {
	return math32.Pi * degrees / 180
}

// ToDegrees is a helper function to easily convert radians to degrees for human readability.
func ToDegrees(radians float32) float32 {
	return radians / math32.Pi * 180
}

func clamp[V float32 | int](value, min, max V) V {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}

func min3[V float32 | int](a, b, c V) V {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3[V float32 | int](a, b, c V) V {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
