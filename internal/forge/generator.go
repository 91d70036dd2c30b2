// Package forge generates batches of random masks sized after a reference
// image and writes them to disk.
package forge

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/mrsinham/maskforge/internal/image"
	"github.com/mrsinham/maskforge/internal/imageio"
	"github.com/mrsinham/maskforge/internal/mask"
	"github.com/mrsinham/maskforge/internal/util"
)

// seedLabel separates mask seeds from any other seed derived from the same
// base seed.
const seedLabel = "mask"

// GeneratorOptions contains all parameters needed to generate masks
type GeneratorOptions struct {
	Mode      mask.Mode
	Reference string // reference image path, or a WIDTHxHEIGHT literal
	Output    string // output path; numbered when Count > 1
	Count     int    // number of masks (0 = 1)
	Seed      uint64 // base seed (0 = derive from the wall clock)
	Workers   int    // Number of parallel workers (0 = auto-detect based on CPU cores)

	// Layout of RandomLines masks. Zero fields take their defaults.
	Text mask.TextOptions

	// Output control
	Quiet            bool                     // Suppress progress output (for TUI integration)
	ProgressCallback func(current, total int) // Optional callback for progress updates
}

// GeneratedFile describes one written mask.
type GeneratedFile struct {
	Path       string
	Index      int
	Seed       uint64
	Dimensions image.Dimensions
	SetPixels  int
	Bytes      int64
}

// Coverage returns the fraction of white pixels.
func (f GeneratedFile) Coverage() float64 {
	return float64(f.SetPixels) / float64(f.Dimensions.Pixels())
}

// maskTask contains all data needed to generate a single mask
type maskTask struct {
	index      int
	path       string
	seed       uint64
	dimensions image.Dimensions
	mode       mask.Mode
	text       mask.TextOptions
}

// ResolveDimensions returns the mask size for a reference: either a
// WIDTHxHEIGHT literal or the size of the image file it names.
func ResolveDimensions(reference string) (image.Dimensions, error) {
	if reference == "" {
		return image.Dimensions{}, errors.New("reference is required")
	}
	if util.IsDimensions(reference) {
		w, h, err := util.ParseDimensions(reference)
		if err != nil {
			return image.Dimensions{}, err
		}
		d := image.Dimensions{Width: w, Height: h}
		return d, d.Validate()
	}
	return imageio.ReadDimensions(reference)
}

// OutputPath returns the path of mask index (0-based) among count masks.
// A single mask is written to output as is; batches get a 1-based
// four-digit suffix: mask.png becomes mask_0001.png, mask_0002.png, ...
func OutputPath(output string, index, count int) string {
	if count <= 1 {
		return output
	}
	ext := filepath.Ext(output)
	return fmt.Sprintf("%s_%04d%s", strings.TrimSuffix(output, ext), index+1, ext)
}

// MaskSeed returns the seed of mask index for a base seed.
func MaskSeed(base uint64, index int) uint64 {
	return util.DeriveSeed(base, seedLabel, index)
}

// Validate checks the options that do not need the file system.
func (opts GeneratorOptions) Validate() error {
	if !mask.IsValid(string(opts.Mode)) {
		return fmt.Errorf("%w %q, valid options: %v", mask.ErrUnknownMode, opts.Mode, mask.AllModes())
	}
	if opts.Output == "" {
		return errors.New("output is required")
	}
	if _, err := imageio.FormatFromPath(opts.Output); err != nil {
		return err
	}
	if opts.Count < 0 {
		return fmt.Errorf("count must be >= 0, got %d", opts.Count)
	}
	if opts.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", opts.Workers)
	}
	if opts.Mode == mask.RandomLines {
		if err := opts.Text.WithDefaults().Validate(); err != nil {
			return fmt.Errorf("text options: %w", err)
		}
	}
	return nil
}

// RenderMask draws one mask into a fresh buffer.
func RenderMask(mode mask.Mode, d image.Dimensions, seed uint64, text mask.TextOptions) (*image.Buffer, error) {
	buf, err := image.NewBuffer(d.Width, d.Height)
	if err != nil {
		return nil, err
	}
	if err := mask.Generate(mode, buf, mask.NewSource(seed), text.WithDefaults()); err != nil {
		return nil, err
	}
	return buf, nil
}

func generateMaskFromTask(task maskTask) (GeneratedFile, error) {
	buf, err := RenderMask(task.mode, task.dimensions, task.seed, task.text)
	if err != nil {
		return GeneratedFile{}, err
	}

	if err := imageio.Write(task.path, buf); err != nil {
		return GeneratedFile{}, err
	}

	info, err := os.Stat(task.path)
	if err != nil {
		return GeneratedFile{}, fmt.Errorf("stat %s: %w", task.path, err)
	}

	return GeneratedFile{
		Path:       task.path,
		Index:      task.index,
		Seed:       task.seed,
		Dimensions: task.dimensions,
		SetPixels:  buf.Count(),
		Bytes:      info.Size(),
	}, nil
}

// GenerateMasks renders opts.Count masks and writes them. Nothing is written
// when the options are invalid or the reference cannot be read.
func GenerateMasks(opts GeneratorOptions) ([]GeneratedFile, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	count := opts.Count
	if count == 0 {
		count = 1
	}

	dims, err := ResolveDimensions(opts.Reference)
	if err != nil {
		return nil, fmt.Errorf("reference: %w", err)
	}

	if !opts.Quiet {
		fmt.Printf("Mode: %s (%s)\n", opts.Mode, opts.Mode.Description())
		fmt.Printf("Resolution: %s (%s pixels per mask)\n", dims, humanize.Comma(int64(dims.Pixels())))
	}

	seed := opts.Seed
	if seed == 0 {
		seed = util.ClockSeed()
		if !opts.Quiet {
			fmt.Printf("Auto-generated seed: %d\n", seed)
			fmt.Println("  (pass --seed to replay this run)")
		}
	} else if !opts.Quiet {
		fmt.Printf("Using seed: %d\n", seed)
	}

	if dir := filepath.Dir(opts.Output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}

	tasks := make([]maskTask, count)
	for i := range tasks {
		tasks[i] = maskTask{
			index:      i,
			path:       OutputPath(opts.Output, i, count),
			seed:       MaskSeed(seed, i),
			dimensions: dims,
			mode:       opts.Mode,
			text:       opts.Text,
		}
	}

	numWorkers := opts.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	// Don't use more workers than tasks
	if numWorkers > len(tasks) {
		numWorkers = len(tasks)
	}

	if !opts.Quiet && count > 1 {
		fmt.Printf("\nGenerating %d masks with %d parallel workers...\n", count, numWorkers)
	}

	type result struct {
		index int
		file  GeneratedFile
		err   error
	}

	taskChan := make(chan maskTask, len(tasks))
	resultChan := make(chan result, len(tasks))

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range taskChan {
				file, err := generateMaskFromTask(task)
				resultChan <- result{task.index, file, err}
			}
		}()
	}

	for _, task := range tasks {
		taskChan <- task
	}
	close(taskChan)

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	files := make([]GeneratedFile, len(tasks))
	completed := 0
	var firstErr error
	for r := range resultChan {
		if r.err != nil && firstErr == nil {
			firstErr = fmt.Errorf("generate mask %d: %w", r.index+1, r.err)
		}
		files[r.index] = r.file
		completed++
		if opts.ProgressCallback != nil {
			opts.ProgressCallback(completed, len(tasks))
		}
		if !opts.Quiet && count > 1 && (completed%10 == 0 || completed == len(tasks)) {
			progress := float64(completed) / float64(len(tasks)) * 100
			fmt.Printf("  Progress: %d/%d (%.0f%%)\n", completed, len(tasks), progress)
		}
	}

	if firstErr != nil {
		return nil, firstErr
	}

	if !opts.Quiet {
		var total int64
		for _, f := range files {
			total += f.Bytes
		}
		if count == 1 {
			fmt.Printf("\n✓ Mask written to %s (%.1f%% white, %s)\n", files[0].Path, files[0].Coverage()*100, humanize.Bytes(uint64(total)))
		} else {
			fmt.Printf("\n✓ %d masks created (%s)\n", count, humanize.Bytes(uint64(total)))
		}
	}

	return files, nil
}
