package forge

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/mrsinham/maskforge/internal/image"
	"github.com/mrsinham/maskforge/internal/imageio"
	"github.com/mrsinham/maskforge/internal/mask"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		output string
		index  int
		count  int
		want   string
	}{
		{"mask.png", 0, 1, "mask.png"},
		{"mask.png", 0, 0, "mask.png"},
		{"mask.png", 0, 3, "mask_0001.png"},
		{"out/mask.tiff", 11, 12, "out/mask_0012.tiff"},
		{"mask", 1, 2, "mask_0002"},
	}

	for _, tt := range tests {
		if got := OutputPath(tt.output, tt.index, tt.count); got != tt.want {
			t.Errorf("OutputPath(%q, %d, %d) = %q, want %q", tt.output, tt.index, tt.count, got, tt.want)
		}
	}
}

func TestResolveDimensions(t *testing.T) {
	d, err := ResolveDimensions("64x32")
	if err != nil {
		t.Fatalf("ResolveDimensions failed: %v", err)
	}
	if d.Width != 64 || d.Height != 32 {
		t.Errorf("Expected 64x32, got %s", d)
	}

	if _, err := ResolveDimensions(""); err == nil {
		t.Error("Expected error for empty reference")
	}
	if _, err := ResolveDimensions("0x10"); err == nil {
		t.Error("Expected error for zero width")
	}
	if _, err := ResolveDimensions(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Expected error for missing reference")
	}
}

func TestResolveDimensions_FromImage(t *testing.T) {
	ref := filepath.Join(t.TempDir(), "ref.png")
	buf, _ := image.NewBuffer(37, 21)
	if err := imageio.Write(ref, buf); err != nil {
		t.Fatal(err)
	}

	d, err := ResolveDimensions(ref)
	if err != nil {
		t.Fatalf("ResolveDimensions failed: %v", err)
	}
	if d.Width != 37 || d.Height != 21 {
		t.Errorf("Expected 37x21, got %s", d)
	}
}

func TestGeneratorOptions_Validate(t *testing.T) {
	valid := GeneratorOptions{Mode: mask.Bernoulli, Reference: "8x8", Output: "mask.png"}

	tests := []struct {
		name    string
		mutate  func(*GeneratorOptions)
		wantErr bool
	}{
		{"valid", func(*GeneratorOptions) {}, false},
		{"unknown mode", func(o *GeneratorOptions) { o.Mode = "spiral" }, true},
		{"missing output", func(o *GeneratorOptions) { o.Output = "" }, true},
		{"unsupported output", func(o *GeneratorOptions) { o.Output = "mask.gif" }, true},
		{"negative count", func(o *GeneratorOptions) { o.Count = -1 }, true},
		{"negative workers", func(o *GeneratorOptions) { o.Workers = -2 }, true},
		{"bad text options", func(o *GeneratorOptions) {
			o.Mode = mask.RandomLines
			o.Text.Corpus = []string{""}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid
			tt.mutate(&opts)
			err := opts.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestGenerateMasks_Single(t *testing.T) {
	for _, mode := range mask.AllModes() {
		t.Run(string(mode), func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "mask.png")
			files, err := GenerateMasks(GeneratorOptions{
				Mode:      mode,
				Reference: "80x60",
				Output:    out,
				Seed:      42,
				Quiet:     true,
			})
			if err != nil {
				t.Fatalf("GenerateMasks failed: %v", err)
			}
			if len(files) != 1 || files[0].Path != out {
				t.Fatalf("Expected one file at %s, got %+v", out, files)
			}
			if files[0].SetPixels == 0 {
				t.Error("Expected some white pixels")
			}

			got, err := imageio.Read(out)
			if err != nil {
				t.Fatalf("Read failed: %v", err)
			}
			if got.Width != 80 || got.Height != 60 {
				t.Errorf("Expected 80x60, got %dx%d", got.Width, got.Height)
			}
			for i, v := range got.Pix {
				if v != 0 && v != image.On {
					t.Fatalf("Pixel %d has value %v, want 0 or 255", i, v)
				}
			}
			if got.Count() != files[0].SetPixels {
				t.Errorf("File has %d white pixels, generator reported %d", got.Count(), files[0].SetPixels)
			}
		})
	}
}

func TestGenerateMasks_BernoulliReproducible(t *testing.T) {
	out := filepath.Join(t.TempDir(), "mask.png")
	files, err := GenerateMasks(GeneratorOptions{
		Mode:      mask.Bernoulli,
		Reference: "50x50",
		Output:    out,
		Seed:      1234,
		Quiet:     true,
	})
	if err != nil {
		t.Fatalf("GenerateMasks failed: %v", err)
	}
	if files[0].Seed != MaskSeed(1234, 0) {
		t.Errorf("Expected derived seed %d, got %d", MaskSeed(1234, 0), files[0].Seed)
	}

	got, err := imageio.Read(out)
	if err != nil {
		t.Fatal(err)
	}

	rng := mask.NewSource(MaskSeed(1234, 0))
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			want := rng.IntN(2) == 1
			if got.IsSet(x, y) != want {
				t.Fatalf("Pixel (%d,%d) = %v, want %v", x, y, got.IsSet(x, y), want)
			}
		}
	}
}

func TestGenerateMasks_Batch(t *testing.T) {
	dir := t.TempDir()

	var mu sync.Mutex
	var calls []int
	files, err := GenerateMasks(GeneratorOptions{
		Mode:      mask.RandomWalk,
		Reference: "40x40",
		Output:    filepath.Join(dir, "walk.png"),
		Count:     5,
		Seed:      7,
		Workers:   3,
		Quiet:     true,
		ProgressCallback: func(current, total int) {
			mu.Lock()
			defer mu.Unlock()
			if total != 5 {
				t.Errorf("Expected total 5, got %d", total)
			}
			calls = append(calls, current)
		},
	})
	if err != nil {
		t.Fatalf("GenerateMasks failed: %v", err)
	}

	if len(files) != 5 {
		t.Fatalf("Expected 5 files, got %d", len(files))
	}
	for i, f := range files {
		if f.Index != i {
			t.Errorf("File %d has index %d", i, f.Index)
		}
		want := filepath.Join(dir, OutputPath("walk.png", i, 5))
		if f.Path != want {
			t.Errorf("File %d at %s, want %s", i, f.Path, want)
		}
		if _, err := os.Stat(f.Path); err != nil {
			t.Errorf("File %s missing: %v", f.Path, err)
		}
	}
	if len(calls) != 5 || calls[len(calls)-1] != 5 {
		t.Errorf("Expected 5 progress calls ending at 5, got %v", calls)
	}
}

func TestGenerateMasks_SameSeedSameOutput(t *testing.T) {
	dir := t.TempDir()
	render := func(name string, seed uint64) *image.Buffer {
		out := filepath.Join(dir, name)
		if _, err := GenerateMasks(GeneratorOptions{
			Mode: mask.RandomLines, Reference: "120x90", Output: out, Seed: seed, Quiet: true,
		}); err != nil {
			t.Fatal(err)
		}
		buf, err := imageio.Read(out)
		if err != nil {
			t.Fatal(err)
		}
		return buf
	}

	a := render("a.png", 99)
	b := render("b.png", 99)
	c := render("c.png", 100)

	same, differ := true, false
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			same = false
		}
		if a.Pix[i] != c.Pix[i] {
			differ = true
		}
	}
	if !same {
		t.Error("Same seed should produce identical masks")
	}
	if !differ {
		t.Error("Different seeds should produce different masks")
	}
}

func TestGenerateMasks_BadReferenceWritesNothing(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "mask.png")

	_, err := GenerateMasks(GeneratorOptions{
		Mode:      mask.Bernoulli,
		Reference: filepath.Join(dir, "missing.png"),
		Output:    out,
		Quiet:     true,
	})
	if err == nil {
		t.Fatal("Expected error for missing reference")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("No output should be written when the reference is unreadable")
	}
}

func TestGenerateMasks_UnknownMode(t *testing.T) {
	_, err := GenerateMasks(GeneratorOptions{Mode: "zigzag", Reference: "4x4", Output: "x.png", Quiet: true})
	if !errors.Is(err, mask.ErrUnknownMode) {
		t.Errorf("Expected ErrUnknownMode, got %v", err)
	}
}

func TestGenerateMasks_CreatesOutputDirectory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "deeper", "mask.bmp")
	if _, err := GenerateMasks(GeneratorOptions{
		Mode: mask.Bernoulli, Reference: "10x10", Output: out, Seed: 3, Quiet: true,
	}); err != nil {
		t.Fatalf("GenerateMasks failed: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("Expected %s to exist: %v", out, err)
	}
}

func TestGeneratedFile_Coverage(t *testing.T) {
	f := GeneratedFile{Dimensions: image.Dimensions{Width: 10, Height: 10}, SetPixels: 25}
	if f.Coverage() != 0.25 {
		t.Errorf("Expected coverage 0.25, got %f", f.Coverage())
	}
}
