package imageio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/frame"
	"github.com/suyashkumar/dicom/pkg/tag"

	"github.com/mrsinham/maskforge/internal/image"
	"github.com/mrsinham/maskforge/internal/util"
)

// ErrMalformedDICOM is returned for DICOM files whose image elements do not
// hold the expected value types.
var ErrMalformedDICOM = errors.New("malformed DICOM")

const (
	explicitVRLittleEndian = "1.2.840.10008.1.2.1"
	secondaryCaptureSOP    = "1.2.840.10008.5.1.4.1.1.7"
)

// mustNewElement creates a new DICOM element, panicking on error.
func mustNewElement(t tag.Tag, value interface{}) *dicom.Element {
	elem, err := dicom.NewElement(t, value)
	if err != nil {
		panic(fmt.Sprintf("failed to create element %v: %v", t, err))
	}
	return elem
}

func readDICOMDimensions(path string) (image.Dimensions, error) {
	ds, err := dicom.ParseFile(path, nil, dicom.SkipPixelData())
	if err != nil {
		return image.Dimensions{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return dicomDimensions(ds, path)
}

func dicomDimensions(ds dicom.Dataset, path string) (image.Dimensions, error) {
	rows, err := ds.FindElementByTag(tag.Rows)
	if err != nil {
		return image.Dimensions{}, fmt.Errorf("%s: rows: %w", path, err)
	}
	cols, err := ds.FindElementByTag(tag.Columns)
	if err != nil {
		return image.Dimensions{}, fmt.Errorf("%s: columns: %w", path, err)
	}

	r, err := firstInt(rows)
	if err != nil {
		return image.Dimensions{}, fmt.Errorf("%s: rows: %w", path, err)
	}
	c, err := firstInt(cols)
	if err != nil {
		return image.Dimensions{}, fmt.Errorf("%s: columns: %w", path, err)
	}

	d := image.Dimensions{Width: c, Height: r}
	if err := d.Validate(); err != nil {
		return image.Dimensions{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// firstInt returns the first value of an integer element such as Rows. Files
// that store it with another VR are rejected instead of panicking.
func firstInt(e *dicom.Element) (int, error) {
	if e.Value == nil || e.Value.ValueType() != dicom.Ints {
		return 0, fmt.Errorf("%w: %s is not an integer element", ErrMalformedDICOM, e.RawValueRepresentation)
	}
	v, ok := e.Value.GetValue().([]int)
	if !ok || len(v) == 0 {
		return 0, fmt.Errorf("%w: empty value", ErrMalformedDICOM)
	}
	return v[0], nil
}

// readDICOM decodes the first frame of a DICOM file. Generation only needs
// ReadDimensions; Read uses this to load masks back, in tests and tooling.
func readDICOM(path string) (*image.Buffer, error) {
	ds, err := dicom.ParseFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	d, err := dicomDimensions(ds, path)
	if err != nil {
		return nil, err
	}

	pixelData, err := ds.FindElementByTag(tag.PixelData)
	if err != nil {
		// Dimensions alone are enough for a reference: the mask replaces
		// the content anyway.
		return image.NewBuffer(d.Width, d.Height)
	}

	if pixelData.Value.ValueType() != dicom.PixelData {
		return nil, fmt.Errorf("%s: %w: pixel data has value type %v", path, ErrMalformedDICOM, pixelData.Value.ValueType())
	}
	info, ok := pixelData.Value.GetValue().(dicom.PixelDataInfo)
	if !ok || len(info.Frames) == 0 {
		return nil, fmt.Errorf("%s: no frames in pixel data", path)
	}

	img, err := info.Frames[0].GetImage()
	if err != nil {
		return nil, fmt.Errorf("%s: decode frame: %w", path, err)
	}
	return image.FromImage(img)
}

// writeDICOM stores buf as an 8-bit MONOCHROME2 secondary capture image.
func writeDICOM(path string, buf *image.Buffer) error {
	width, height := buf.Width, buf.Height
	gray := ToGray(buf)

	nativeFrame := frame.NewNativeFrame[uint8](8, height, width, width*height, 1)
	copy(nativeFrame.RawData, gray.Pix)

	pixelDataInfo := dicom.PixelDataInfo{
		Frames: []*frame.Frame{
			{
				Encapsulated: false,
				NativeData:   nativeFrame,
			},
		},
	}

	name := filepath.Base(path)
	sopInstanceUID := util.GenerateDeterministicUID(name + "_instance")

	elements := []*dicom.Element{
		mustNewElement(tag.TransferSyntaxUID, []string{explicitVRLittleEndian}),
		mustNewElement(tag.MediaStorageSOPClassUID, []string{secondaryCaptureSOP}),
		mustNewElement(tag.MediaStorageSOPInstanceUID, []string{sopInstanceUID}),
		mustNewElement(tag.SOPClassUID, []string{secondaryCaptureSOP}),
		mustNewElement(tag.SOPInstanceUID, []string{sopInstanceUID}),
		mustNewElement(tag.StudyInstanceUID, []string{util.GenerateDeterministicUID(name + "_study")}),
		mustNewElement(tag.SeriesInstanceUID, []string{util.GenerateDeterministicUID(name + "_series")}),
		mustNewElement(tag.Modality, []string{"OT"}),
		mustNewElement(tag.SeriesDescription, []string{"Random mask"}),
		mustNewElement(tag.InstanceNumber, []string{"1"}),
		mustNewElement(tag.Rows, []int{height}),
		mustNewElement(tag.Columns, []int{width}),
		mustNewElement(tag.BitsAllocated, []int{8}),
		mustNewElement(tag.BitsStored, []int{8}),
		mustNewElement(tag.HighBit, []int{7}),
		mustNewElement(tag.PixelRepresentation, []int{0}),
		mustNewElement(tag.SamplesPerPixel, []int{1}),
		mustNewElement(tag.PhotometricInterpretation, []string{"MONOCHROME2"}),
		mustNewElement(tag.PixelData, pixelDataInfo),
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := dicom.Write(f, dicom.Dataset{Elements: elements}); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
