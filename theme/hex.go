// Copyright © 2024 The tracehook authors

package theme

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseHex parses a "#rrggbb" or "#rgb" color specification. The leading
// "#" is optional. Channels are scaled to 0.0-1.0 and rounded to two
// decimal places, the same precision the host console uses.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
	default:
		return RGB{}, fmt.Errorf("malformed hex color %q", s)
	}
	var ch [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(h[2*i:2*i+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("malformed hex color %q", s)
		}
		ch[i] = Round(float64(v) / 255)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// Round rounds a channel value to two decimal places.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}
