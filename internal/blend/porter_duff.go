// Package blend implements the compositing operators used to lay a keyed
// foreground over a background.
//
// Colours are float32 channels in [0, 1]. The background operand of every
// operator is treated as opaque: the composited frame is always handed to
// a renderer or encoder that expects no transparency.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// SourceOverPremul composites a premultiplied source over an opaque
// destination.
// Formula: S + D*(1-Sa)
func SourceOverPremul(sr, sg, sb, sa, dr, dg, db float32) (r, g, b float32) {
	inv := 1 - sa
	return sr + dr*inv, sg + dg*inv, sb + db*inv
}

// SourceOver composites a straight (non-premultiplied) source over an
// opaque destination.
// Formula: S*Sa + D*(1-Sa)
func SourceOver(sr, sg, sb, sa, dr, dg, db float32) (r, g, b float32) {
	return Lerp(dr, sr, sa), Lerp(dg, sg, sa), Lerp(db, sb, sa)
}
