package render

import "image"

// FlipVertical reverses the row order of img in place. GL read-back returns
// rows bottom-up.
func FlipVertical(img *image.RGBA) {
	if img == nil {
		return
	}
	h := img.Bounds().Dy()
	rowLen := img.Bounds().Dx() * 4
	tmp := make([]byte, rowLen)
	for top, bottom := 0, h-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := img.Pix[top*img.Stride : top*img.Stride+rowLen]
		b := img.Pix[bottom*img.Stride : bottom*img.Stride+rowLen]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}

// Opaque sets every alpha byte of img to 255. The canvas is shown without
// alpha, so exported pixels must not carry any.
func Opaque(img *image.RGBA) {
	if img == nil {
		return
	}
	b := img.Bounds()
	rowLen := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		for i := 3; i < len(row); i += 4 {
			row[i] = 0xff
		}
	}
}

// Readback turns pixels read from a GL framebuffer into the image shown on
// screen: rows top-down and fully opaque.
func Readback(img *image.RGBA) {
	FlipVertical(img)
	Opaque(img)
}
