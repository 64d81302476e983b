package raster

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strconv"
)

// ppmLineWidth is the longest line a plain PPM file may contain.
const ppmLineWidth = 70

// WritePPM serializes the canvas as plain PPM (P3) with a max channel
// value of 255.
func (c *Canvas) WritePPM(w io.Writer) error {
	pw := newPPMWriter(w, c.Width, c.Height)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			col := c.PixelAt(x, y)
			pw.sample(Quantize(col.R))
			pw.sample(Quantize(col.G))
			pw.sample(Quantize(col.B))
		}
		pw.endRow()
	}
	return pw.flush()
}

// writeImagePPM serializes any image as plain PPM. Alpha is dropped.
func writeImagePPM(w io.Writer, img image.Image) error {
	b := img.Bounds()
	nrgba := toNRGBA(img)
	pw := newPPMWriter(w, b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := nrgba.PixOffset(x, y)
			pw.sample(nrgba.Pix[i])
			pw.sample(nrgba.Pix[i+1])
			pw.sample(nrgba.Pix[i+2])
		}
		pw.endRow()
	}
	return pw.flush()
}

type ppmWriter struct {
	bw      *bufio.Writer
	col     int
	err     error
	scratch []byte
}

func newPPMWriter(w io.Writer, width, height int) *ppmWriter {
	pw := &ppmWriter{bw: bufio.NewWriter(w)}
	_, pw.err = fmt.Fprintf(pw.bw, "P3\n%d %d\n255\n", width, height)
	return pw
}

// sample appends one channel value, starting a new line rather than
// exceeding ppmLineWidth.
func (pw *ppmWriter) sample(v uint8) {
	if pw.err != nil {
		return
	}
	pw.scratch = strconv.AppendUint(pw.scratch[:0], uint64(v), 10)
	if pw.col > 0 {
		if pw.col+1+len(pw.scratch) > ppmLineWidth {
			pw.err = pw.bw.WriteByte('\n')
			pw.col = 0
		} else {
			pw.err = pw.bw.WriteByte(' ')
			pw.col++
		}
	}
	if pw.err == nil {
		_, pw.err = pw.bw.Write(pw.scratch)
		pw.col += len(pw.scratch)
	}
}

func (pw *ppmWriter) endRow() {
	if pw.err != nil || pw.col == 0 {
		return
	}
	pw.err = pw.bw.WriteByte('\n')
	pw.col = 0
}

func (pw *ppmWriter) flush() error {
	if pw.err != nil {
		return fmt.Errorf("raster: write ppm: %w", pw.err)
	}
	if err := pw.bw.Flush(); err != nil {
		return fmt.Errorf("raster: write ppm: %w", err)
	}
	return nil
}
