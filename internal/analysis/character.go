package analysis

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/runenames"

	"github.com/nao1215/sigdec/internal/model"
)

// controlPictureBase is the code point of SYMBOL FOR NULL; the C0 control
// pictures follow it in order.
const controlPictureBase = 0x2400

// Describe builds the per code point breakdown of points.
func Describe(points []CodePoint) []model.CharacterDetail {
	details := make([]model.CharacterDetail, len(points))
	for i, p := range points {
		details[i] = model.CharacterDetail{
			Index:     p.Index,
			CodePoint: p.Value,
			Display:   Display(p.Value),
			Hex:       HexCode(p.Value),
			Binary:    BinaryCode(p.Value),
			Category:  Classify(p.Value),
			Name:      runenames.Name(p.Value),
		}
	}
	return details
}

// Display returns a visible rendering of r. Space and C0 controls use the
// Unicode control pictures, combining marks sit on a dotted circle and other
// invisible code points are shown as <U+XXXX>.
func Display(r rune) string {
	switch {
	case r == ' ':
		return "␠"
	case r >= 0 && r < 0x20:
		return string(controlPictureBase + r)
	case r == 0x7F:
		return "␡"
	case unicode.In(r, unicode.Mn, unicode.Me):
		return "◌" + string(r)
	case !unicode.IsPrint(r):
		return "<" + HexCode(r) + ">"
	default:
		return string(r)
	}
}

// HexCode formats r in U+XXXX notation.
func HexCode(r rune) string {
	return fmt.Sprintf("U+%04X", r)
}

// BinaryCode formats r in base 2, zero padded to a whole number of bytes.
func BinaryCode(r rune) string {
	bits := strconv.FormatInt(int64(r), 2)
	if pad := (8 - len(bits)%8) % 8; pad > 0 {
		bits = strings.Repeat("0", pad) + bits
	}
	return bits
}
