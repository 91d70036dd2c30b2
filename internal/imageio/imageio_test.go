package imageio

import (
	"errors"
	stdimage "image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"

	"github.com/mrsinham/maskforge/internal/image"
)

func checkerboard(t *testing.T, w, h int) *image.Buffer {
	t.Helper()
	buf, err := image.NewBuffer(w, h)
	if err != nil {
		t.Fatalf("NewBuffer failed: %v", err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				buf.PutPixel(x, y)
			}
		}
	}
	return buf
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"mask.png", PNG},
		{"MASK.PNG", PNG},
		{"a/b/mask.jpg", JPEG},
		{"mask.jpeg", JPEG},
		{"mask.bmp", BMP},
		{"mask.tif", TIFF},
		{"mask.tiff", TIFF},
		{"mask.dcm", DICOM},
	}

	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if err != nil {
			t.Errorf("FormatFromPath(%q) unexpected error: %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}

	for _, path := range []string{"mask", "mask.gif", "mask.webp", "mask.ppm"} {
		if _, err := FormatFromPath(path); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("FormatFromPath(%q) expected ErrUnsupportedFormat, got %v", path, err)
		}
	}
}

func TestWrite_UnsupportedFormatCreatesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mask.xyz")
	err := Write(path, checkerboard(t, 4, 4))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("No file should be created for an unsupported format")
	}
}

func TestWriteRead_Lossless(t *testing.T) {
	for _, ext := range []string{".png", ".bmp", ".tiff"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "mask"+ext)
			want := checkerboard(t, 17, 9)

			if err := Write(path, want); err != nil {
				t.Fatalf("Write failed: %v", err)
			}

			d, err := ReadDimensions(path)
			if err != nil {
				t.Fatalf("ReadDimensions failed: %v", err)
			}
			if d.Width != 17 || d.Height != 9 {
				t.Errorf("Expected 17x9, got %s", d)
			}

			got, err := Read(path)
			if err != nil {
				t.Fatalf("Read failed: %v", err)
			}
			for i := range want.Pix {
				if got.Pix[i] != want.Pix[i] {
					t.Fatalf("Pixel %d: got %v, want %v", i, got.Pix[i], want.Pix[i])
				}
			}
		})
	}
}

func TestWrite_JPEGDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mask.jpg")
	if err := Write(path, checkerboard(t, 32, 20)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	d, err := ReadDimensions(path)
	if err != nil {
		t.Fatalf("ReadDimensions failed: %v", err)
	}
	if d.Width != 32 || d.Height != 20 {
		t.Errorf("Expected 32x20, got %s", d)
	}
}

func TestReadDimensions_GIF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ref.gif")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	img := stdimage.NewPaletted(stdimage.Rect(0, 0, 40, 30), color.Palette{color.Black, color.White})
	if err := gif.Encode(f, img, nil); err != nil {
		t.Fatal(err)
	}
	_ = f.Close()

	d, err := ReadDimensions(path)
	if err != nil {
		t.Fatalf("ReadDimensions failed: %v", err)
	}
	if d.Width != 40 || d.Height != 30 {
		t.Errorf("Expected 40x30, got %s", d)
	}

	buf, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if buf.Width != 40 || buf.Height != 30 {
		t.Errorf("Expected 40x30 buffer, got %dx%d", buf.Width, buf.Height)
	}
}

func TestRead_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Read(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}
	if _, err := ReadDimensions(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}

	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Read(garbage); err == nil {
		t.Error("Expected error for garbage file")
	}
	if _, err := ReadDimensions(garbage); err == nil {
		t.Error("Expected error for garbage file")
	}
}

func TestToGray(t *testing.T) {
	buf, _ := image.NewBuffer(3, 1)
	buf.Pix[0] = 255
	buf.Pix[1] = 200
	buf.Pix[2] = 100

	gray := ToGray(buf)
	want := []uint8{255, 255, 0}
	for i, v := range want {
		if gray.Pix[i] != v {
			t.Errorf("Pixel %d: got %d, want %d", i, gray.Pix[i], v)
		}
	}
}

func TestWriteDICOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mask.dcm")
	if err := Write(path, checkerboard(t, 24, 16)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	ds, err := dicom.ParseFile(path, nil)
	if err != nil {
		t.Fatalf("Failed to parse DICOM file: %v", err)
	}

	requiredTags := []struct {
		tag  tag.Tag
		name string
	}{
		{tag.SOPInstanceUID, "SOPInstanceUID"},
		{tag.StudyInstanceUID, "StudyInstanceUID"},
		{tag.Modality, "Modality"},
		{tag.PhotometricInterpretation, "PhotometricInterpretation"},
		{tag.PixelData, "PixelData"},
	}
	for _, rt := range requiredTags {
		if _, err := ds.FindElementByTag(rt.tag); err != nil {
			t.Errorf("Missing required tag %s: %v", rt.name, err)
		}
	}

	d, err := ReadDimensions(path)
	if err != nil {
		t.Fatalf("ReadDimensions failed: %v", err)
	}
	if d.Width != 24 || d.Height != 16 {
		t.Errorf("Expected 24x16, got %s", d)
	}
}

// writeDICOMWithTextRows writes a DICOM file whose Rows element holds a
// string, as some broken exporters do.
func writeDICOMWithTextRows(t *testing.T, path string) {
	t.Helper()

	rowsValue, err := dicom.NewValue([]string{"abc"})
	if err != nil {
		t.Fatalf("NewValue failed: %v", err)
	}
	elements := []*dicom.Element{
		mustNewElement(tag.TransferSyntaxUID, []string{explicitVRLittleEndian}),
		mustNewElement(tag.MediaStorageSOPClassUID, []string{secondaryCaptureSOP}),
		mustNewElement(tag.MediaStorageSOPInstanceUID, []string{"1.2.3.4"}),
		mustNewElement(tag.SOPClassUID, []string{secondaryCaptureSOP}),
		mustNewElement(tag.SOPInstanceUID, []string{"1.2.3.4"}),
		{
			Tag:                    tag.Rows,
			ValueRepresentation:    tag.VRString,
			RawValueRepresentation: "LO",
			Value:                  rowsValue,
		},
		mustNewElement(tag.Columns, []int{8}),
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := dicom.Write(f, dicom.Dataset{Elements: elements}, dicom.SkipVRVerification()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
}

func TestReadDimensions_MalformedDICOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.dcm")
	writeDICOMWithTextRows(t, path)

	_, err := ReadDimensions(path)
	if err == nil {
		t.Fatal("Expected error for string Rows element")
	}
	if !errors.Is(err, ErrMalformedDICOM) {
		t.Errorf("Expected ErrMalformedDICOM, got %v", err)
	}

	if _, err := Read(path); !errors.Is(err, ErrMalformedDICOM) {
		t.Errorf("Read: expected ErrMalformedDICOM, got %v", err)
	}
}
