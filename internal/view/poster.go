package view

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"regexp"
	"strconv"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/satindergrewal/tajshow/internal/catalog"
)

// Stop is one colour stop of a gradient, At in [0,1].
type Stop struct {
	Color color.RGBA
	At    float64
}

var stopRe = regexp.MustCompile(`#([0-9a-fA-F]{6})(?:\s+(\d+(?:\.\d+)?)%)?`)

// ParseStops extracts the hex colour stops of the first gradient in css.
// Stops without a position are spread evenly.
func ParseStops(css string) []Stop {
	if i := strings.Index(css, "),"); i >= 0 {
		css = css[:i]
	}
	m := stopRe.FindAllStringSubmatch(css, -1)
	stops := make([]Stop, 0, len(m))
	for i, sm := range m {
		v, _ := strconv.ParseUint(sm[1], 16, 32)
		s := Stop{Color: color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}}
		if sm[2] != "" {
			pos, _ := strconv.ParseFloat(sm[2], 64)
			s.At = pos / 100
		} else if len(m) > 1 {
			s.At = float64(i) / float64(len(m)-1)
		}
		stops = append(stops, s)
	}
	return stops
}

// ParseHex parses "#rrggbb". Anything else yields white.
func ParseHex(s string) color.RGBA {
	if m := stopRe.FindStringSubmatch(s); m != nil {
		v, _ := strconv.ParseUint(m[1], 16, 32)
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
	}
	return color.RGBA{0xff, 0xff, 0xff, 0xff}
}

func gradientAt(stops []Stop, t float64) color.RGBA {
	switch {
	case len(stops) == 0:
		return color.RGBA{A: 0xff}
	case t <= stops[0].At:
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.At {
			continue
		}
		span := b.At - a.At
		if span <= 0 {
			return b.Color
		}
		f := (t - a.At) / span
		mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*f + 0.5) }
		return color.RGBA{mix(a.Color.R, b.Color.R), mix(a.Color.G, b.Color.G), mix(a.Color.B, b.Color.B), 0xff}
	}
	return stops[len(stops)-1].Color
}

// Poster draws a w×h still for a scene: its backdrop gradient top to bottom,
// an accent bar, and the title and subtitle.
func Poster(sc catalog.Scene, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	stops := ParseStops(sc.Background)
	for y := 0; y < h; y++ {
		c := gradientAt(stops, float64(y)/float64(max(h-1, 1)))
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	accent := ParseHex(sc.Accent)
	bar := max(h/40, 2)
	xdraw.Draw(img, image.Rect(0, h-bar, w, h), image.NewUniform(accent), image.Point{}, xdraw.Src)

	// basicfont is 7x13; the title is drawn at 1x and scaled up.
	margin := w / 16
	title := textImage(sc.Title, color.White)
	scale := 3
	if title.Bounds().Dx()*scale > w-2*margin {
		scale = max((w-2*margin)/max(title.Bounds().Dx(), 1), 1)
	}
	ty := h/2 - title.Bounds().Dy()*scale
	dst := image.Rect(margin, ty, margin+title.Bounds().Dx()*scale, ty+title.Bounds().Dy()*scale)
	xdraw.NearestNeighbor.Scale(img, dst, title, title.Bounds(), xdraw.Over, nil)

	sub := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(accent),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(margin, dst.Max.Y+24),
	}
	sub.DrawString(strings.ToUpper(sc.Subtitle))
	return img
}

func textImage(s string, c color.Color) *image.RGBA {
	face := basicfont.Face7x13
	width := font.MeasureString(face, s).Ceil()
	img := image.NewRGBA(image.Rect(0, 0, max(width, 1), face.Height))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(s)
	return img
}

// WritePoster encodes a scene poster as PNG.
func WritePoster(w io.Writer, sc catalog.Scene, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("poster size %dx%d", width, height)
	}
	if err := png.Encode(w, Poster(sc, width, height)); err != nil {
		return fmt.Errorf("encode poster: %w", err)
	}
	return nil
}
