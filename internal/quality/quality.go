// Package quality measures the distortion introduced into a cover raster.
package quality

import (
	"errors"
	"fmt"
	"math"

	"github.com/yyyoichi/stega_zero/internal/stega"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var ErrShapeMismatch = errors.New("rasters differ in size")

const peak = 255.0

// Report summarises per-channel differences between two rasters.
type Report struct {
	// MSE is the mean squared error over all R,G,B,A samples.
	MSE float64
	// PSNR in dB; +Inf when the rasters are identical.
	PSNR float64
	// MaxDelta is the largest absolute difference of any single channel.
	MaxDelta float64
	// ChangedPixels counts pixels with at least one differing channel.
	ChangedPixels int
}

// Compare computes a Report for cover against stego.
func Compare(cover, stego stega.Raster) (Report, error) {
	if cover.Width != stego.Width || cover.Height != stego.Height || len(cover.Pix) != len(stego.Pix) {
		return Report{}, fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, cover.Width, cover.Height, stego.Width, stego.Height)
	}
	if len(cover.Pix) == 0 {
		return Report{PSNR: math.Inf(1)}, nil
	}

	sq := make([]float64, len(cover.Pix))
	abs := make([]float64, len(cover.Pix))
	var report Report
	for i := 0; i < len(cover.Pix); i += 4 {
		changed := false
		for c := range 4 {
			d := float64(cover.Pix[i+c]) - float64(stego.Pix[i+c])
			sq[i+c] = d * d
			abs[i+c] = math.Abs(d)
			changed = changed || d != 0
		}
		if changed {
			report.ChangedPixels++
		}
	}
	report.MSE = stat.Mean(sq, nil)
	report.MaxDelta = floats.Max(abs)
	report.PSNR = psnr(report.MSE)
	return report, nil
}

func psnr(mse float64) float64 {
	if mse == 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10(peak*peak/mse)
}
