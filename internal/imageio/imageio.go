// Package imageio loads reference images and writes masks to disk.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	stdimage "image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/mrsinham/maskforge/internal/image"
)

// ErrUnsupportedFormat is returned when an output extension has no encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Format is an output encoding.
type Format string

const (
	PNG   Format = "png"
	JPEG  Format = "jpeg"
	BMP   Format = "bmp"
	TIFF  Format = "tiff"
	DICOM Format = "dicom"
)

// AllFormats returns all formats Write can produce.
func AllFormats() []Format {
	return []Format{PNG, JPEG, BMP, TIFF, DICOM}
}

// FormatFromPath picks the output format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	case ".dcm", ".dicom":
		return DICOM, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// dicomMagic sits at byte 128 of a DICOM Part 10 file.
const (
	dicomPreamble = 128
	dicomMagic    = "DICM"
)

// isDICOM sniffs the Part 10 header of path.
func isDICOM(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer func() { _ = f.Close() }()

	header := make([]byte, dicomPreamble+len(dicomMagic))
	if _, err := io.ReadFull(f, header); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	return bytes.Equal(header[dicomPreamble:], []byte(dicomMagic)), nil
}

// Read decodes the image at path into a planar buffer. PNG, JPEG, GIF, BMP,
// TIFF, WebP and DICOM are recognized by content. Generation only needs
// ReadDimensions; Read loads written masks back for verification.
func Read(path string) (*image.Buffer, error) {
	dcm, err := isDICOM(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if dcm {
		return readDICOM(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := stdimage.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return image.FromImage(img)
}

// ReadDimensions returns the size of the image at path without decoding its
// pixels.
func ReadDimensions(path string) (image.Dimensions, error) {
	dcm, err := isDICOM(path)
	if err != nil {
		return image.Dimensions{}, fmt.Errorf("open %s: %w", path, err)
	}
	if dcm {
		return readDICOMDimensions(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return image.Dimensions{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	cfg, _, err := stdimage.DecodeConfig(f)
	if err != nil {
		return image.Dimensions{}, fmt.Errorf("decode %s: %w", path, err)
	}

	d := image.Dimensions{Width: cfg.Width, Height: cfg.Height}
	if err := d.Validate(); err != nil {
		return image.Dimensions{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Write encodes buf to path, choosing the encoder from the extension. Every
// pixel is written as pure black or white.
func Write(path string, buf *image.Buffer) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if format == DICOM {
		return writeDICOM(path, buf)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	gray := ToGray(buf)
	switch format {
	case PNG:
		err = png.Encode(f, gray)
	case JPEG:
		err = jpeg.Encode(f, gray, &jpeg.Options{Quality: 100})
	case BMP:
		err = bmp.Encode(f, gray)
	case TIFF:
		err = tiff.Encode(f, gray, &tiff.Options{Compression: tiff.Deflate})
	}
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// ToGray flattens buf to an 8-bit gray image holding only 0 and 255. A pixel
// is white when its red plane is at least half way.
func ToGray(buf *image.Buffer) *stdimage.Gray {
	gray := stdimage.NewGray(buf.Bounds())
	for i, v := range buf.Pix[:buf.Width*buf.Height] {
		if v >= image.On/2+1 {
			gray.Pix[i] = 255
		}
	}
	return gray
}
