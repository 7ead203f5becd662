// Package capture turns framebuffer readbacks into BMP files.
package capture

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/bmp"
)

// FromBottomUp builds an image from tightly packed RGBA rows stored bottom
// row first, which is how glReadPixels returns them.
func FromBottomUp(pix []byte, width, height int) (*image.NRGBA, error) {
	stride := width * 4
	if width <= 0 || height <= 0 || len(pix) != stride*height {
		return nil, fmt.Errorf("capture: %d bytes for %dx%d frame", len(pix), width, height)
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		src := pix[(height-1-y)*stride : (height-y)*stride]
		copy(img.Pix[y*img.Stride:], src)
	}
	return img, nil
}

// Filename is the base name used for a capture taken at now.
func Filename(now time.Time) string {
	return fmt.Sprintf("capture-%d.bmp", now.UnixNano())
}

// Encode writes img as BMP.
func Encode(w io.Writer, img image.Image) error {
	return bmp.Encode(w, img)
}

// Save writes img into dir and returns the path of the new file.
func Save(dir string, img image.Image, now time.Time) (string, error) {
	path := filepath.Join(dir, Filename(now))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("could not create capture file: %w", err)
	}
	if err := Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("could not encode capture: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("could not write capture: %w", err)
	}
	return path, nil
}
