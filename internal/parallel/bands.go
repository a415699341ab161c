package parallel

import "fmt"

// Band is a half-open range of canvas rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

func (b Band) String() string {
	return fmt.Sprintf("rows[%d,%d)", b.Y0, b.Y1)
}

// SplitRows cuts height rows into consecutive bands of rowsPerBand rows.
// The last band is shorter when height is not divisible. A height of 0
// yields no bands.
func SplitRows(height, rowsPerBand int) []Band {
	if rowsPerBand <= 0 {
		panic("parallel: rows per band must be positive")
	}

	bands := make([]Band, 0, (height+rowsPerBand-1)/rowsPerBand)
	for y := 0; y < height; y += rowsPerBand {
		end := y + rowsPerBand
		if end > height {
			end = height
		}
		bands = append(bands, Band{Y0: y, Y1: end})
	}
	return bands
}

// BandHeight picks a band height that gives every worker several bands to
// steal from, without dropping below one row.
func BandHeight(height, workers int) int {
	if workers <= 0 {
		workers = 1
	}
	h := height / (workers * 4)
	if h < 1 {
		return 1
	}
	return h
}
