package colors

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is one named palette entry with its shade stops, light to dark.
type Color struct {
	Name   string
	Hex50  string
	Hex100 string
	Hex200 string
	Hex400 string
	Hex500 string
	Hex600 string
	Hex800 string
}

var (
	Red    = Color{"red", "#fef2f2", "#fee2e2", "#fecaca", "#f87171", "#ef4444", "#dc2626", "#991b1b"}
	Orange = Color{"orange", "#fff7ed", "#ffedd5", "#fed7aa", "#fb923c", "#f97316", "#ea580c", "#9a3412"}
	Yellow = Color{"yellow", "#fefce8", "#fef9c3", "#fef08a", "#facc15", "#eab308", "#ca8a04", "#854d0e"}
	Lime   = Color{"lime", "#f7fee7", "#ecfccb", "#d9f99d", "#a3e635", "#84cc16", "#65a30d", "#365314"}
	Green  = Color{"green", "#f0fdf4", "#dcfce7", "#bbf7d0", "#4ade80", "#22c55e", "#16a34a", "#166534"}
	Blue   = Color{"blue", "#eff6ff", "#dbeafe", "#bfdbfe", "#60a5fa", "#3b82f6", "#2563eb", "#1e40af"}
	Purple = Color{"purple", "#faf5ff", "#f3e8ff", "#e9d5ff", "#a78bfa", "#8b5cf6", "#7c3aed", "#6d28d9"}
)

// Palette lists the selectable habit colors in display order.
var Palette = []Color{Red, Orange, Yellow, Lime, Green, Blue, Purple}

// ByName returns the palette entry for name, falling back to Green when the
// name is unknown (habits created before color selection have none).
func ByName(name string) Color {
	for _, c := range Palette {
		if c.Name == name {
			return c
		}
	}
	return Green
}

type rgb struct {
	r, g, b int
}

func hexToRGB(hex string) rgb {
	clean := strings.TrimPrefix(hex, "#")
	v, err := strconv.ParseUint(clean, 16, 32)
	if err != nil {
		return rgb{}
	}
	return rgb{
		r: int(v >> 16 & 0xff),
		g: int(v >> 8 & 0xff),
		b: int(v & 0xff),
	}
}

func rgbToHex(c rgb) string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// GenerateGradient returns n hex colors evenly interpolated from leftHex to
// rightHex inclusive. n <= 0 yields nil, n == 1 yields the right color only
// and n == 2 yields both endpoints with no intermediate steps.
func GenerateGradient(leftHex, rightHex string, n int) []string {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []string{rightHex}
	case n == 2:
		return []string{leftHex, rightHex}
	}

	left := hexToRGB(leftHex)
	right := hexToRGB(rightHex)

	result := make([]string, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		step := rgb{
			r: int(math.Round(float64(left.r) + float64(right.r-left.r)*t)),
			g: int(math.Round(float64(left.g) + float64(right.g-left.g)*t)),
			b: int(math.Round(float64(left.b) + float64(right.b-left.b)*t)),
		}
		result = append(result, rgbToHex(step))
	}
	return result
}
