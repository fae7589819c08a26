package render

import "image/color"

// fillMatrixRGBA converts rendered rows into RGBA pixels in buf, one pixel
// per cell. Rows shorter than cols are padded with off.
func fillMatrixRGBA(buf []byte, rows [][]byte, cols int, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for y, row := range rows {
		for x := 0; x < cols; x++ {
			base := (y*cols + x) * 4
			if x < len(row) && row[x] == Black {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}

// matrixSize returns the column and row count of rows.
func matrixSize(rows [][]byte) (int, int) {
	cols := 0
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	return cols, len(rows)
}
