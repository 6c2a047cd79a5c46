package canvas

import (
	"strconv"
	"strings"
)

// parseColor converts the CSS color strings builders emit (#rgb, #rrggbb,
// rgba(r,g,b,a)) into straight-alpha components in 0..1. Unknown strings
// come back fully transparent, so a malformed color drops the shape
// instead of painting black.
func parseColor(s string) (r, g, b, a float64) {
	s = strings.TrimSpace(s)
	switch {
	case s == "" || s == "none":
		return 0, 0, 0, 0
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s[1:])
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseRGBA(s[len("rgba(") : len(s)-1])
	}
	return 0, 0, 0, 0
}

func parseHexColor(hex string) (r, g, b, a float64) {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, 0, 0, 0
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, 0
	}
	r = float64(v>>16&0xff) / 255
	g = float64(v>>8&0xff) / 255
	b = float64(v&0xff) / 255
	return r, g, b, 1
}

func parseRGBA(body string) (r, g, b, a float64) {
	parts := strings.Split(body, ",")
	if len(parts) != 4 {
		return 0, 0, 0, 0
	}
	var ch [3]float64
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return 0, 0, 0, 0
		}
		ch[i] = float64(n) / 255
	}
	alpha, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil || alpha < 0 || alpha > 1 {
		return 0, 0, 0, 0
	}
	return ch[0], ch[1], ch[2], alpha
}
