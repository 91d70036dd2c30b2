package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/mrsinham/maskforge/cmd/maskforge/wizard"
	"github.com/mrsinham/maskforge/internal/forge"
	"github.com/mrsinham/maskforge/internal/imageio"
	"github.com/mrsinham/maskforge/internal/mask"
)

// version is set at build time via -ldflags
var version = "dev"

// errUsage marks errors that should be followed by the usage text.
var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes maskforge with args and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		switch args[0] {
		case "wizard":
			return runWizard(args[1:], stderr)
		case "specimen":
			return runSpecimen(args[1:], stdout, stderr)
		}
	}

	fs := flag.NewFlagSet("maskforge", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	seed := fs.Uint64("seed", 0, "Seed for reproducibility (0 = derive from the clock and print it)")
	count := fs.Int("count", 1, "Number of masks to generate (outputs are numbered when > 1)")
	workers := fs.Int("workers", 0, fmt.Sprintf("Number of parallel workers (default: %d = CPU cores)", runtime.NumCPU()))
	lineSpacing := fs.Int("line-spacing", 0, "Vertical distance between text lines in rl mode (default: 28)")
	maxLine := fs.Int("max-line", 0, "Maximum characters per text line in rl mode (default: 1023)")
	quiet := fs.Bool("quiet", false, "Suppress progress output")

	interactive := fs.Bool("interactive", false, "Launch interactive wizard")
	fs.BoolVar(interactive, "i", false, "Launch interactive wizard (shortcut)")
	configFile := fs.String("config", "", "Load configuration from YAML file")
	saveConfig := fs.String("save-config", "", "Save configuration to YAML file (after generation)")

	help := fs.Bool("help", false, "Show help message")
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printHelp(stdout, fs)
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printUsage(stderr, fs)
		return 1
	}

	if *help {
		printHelp(stdout, fs)
		return 0
	}
	if *showVersion {
		fmt.Fprintf(stdout, "maskforge %s\n", version)
		return 0
	}
	if *interactive {
		return runWizard(nil, stderr)
	}

	// Explicit flags override the config file
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	var opts forge.GeneratorOptions
	if *configFile != "" {
		state, err := wizard.LoadFromYAML(*configFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading config: %v\n", err)
			return 1
		}
		opts, err = wizard.ToGeneratorOptions(state)
		if err != nil && fs.NArg() == 0 {
			fmt.Fprintf(stderr, "Error converting config: %v\n", err)
			return 1
		}
		if opts.Count == 0 {
			opts.Count = 1
		}
		if !*quiet {
			fmt.Fprintf(stdout, "Loading config from %s\n", *configFile)
		}
	}

	if fs.NArg() > 0 || *configFile == "" {
		if fs.NArg() != 3 {
			fmt.Fprintf(stderr, "Error: expected 3 arguments (mode, reference, output), got %d\n", fs.NArg())
			printUsage(stderr, fs)
			return 1
		}
		mode, err := mask.ParseMode(fs.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			printUsage(stderr, fs)
			return 1
		}
		opts.Mode = mode
		opts.Reference = fs.Arg(1)
		opts.Output = fs.Arg(2)
	}

	if set["seed"] || *configFile == "" {
		opts.Seed = *seed
	}
	if set["count"] || *configFile == "" {
		opts.Count = *count
	}
	if set["workers"] || *configFile == "" {
		opts.Workers = *workers
	}
	if set["line-spacing"] {
		opts.Text.LineSpacing = *lineSpacing
	}
	if set["max-line"] {
		opts.Text.MaxLineLength = *maxLine
	}
	opts.Quiet = *quiet

	// Zero text fields mean "default", so check them before defaulting.
	err := validateFlags(opts)
	opts.Text = opts.Text.WithDefaults()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printUsage(stderr, fs)
		return 1
	}

	if !opts.Quiet {
		fmt.Fprintln(stdout, "maskforge")
		fmt.Fprintln(stdout, "=========")
		fmt.Fprintln(stdout)
	}

	if _, err := forge.GenerateMasks(opts); err != nil {
		fmt.Fprintf(stderr, "Error generating masks: %v\n", err)
		return 1
	}

	if *saveConfig != "" {
		state := wizard.FromGeneratorOptions(opts)
		if err := wizard.SaveToYAML(state, *saveConfig); err != nil {
			fmt.Fprintf(stderr, "Warning: could not save config: %v\n", err)
		} else if !opts.Quiet {
			fmt.Fprintf(stdout, "Configuration saved to %s\n", *saveConfig)
		}
	}

	return 0
}

// validateFlags checks numeric flags before anything touches the disk.
func validateFlags(opts forge.GeneratorOptions) error {
	if opts.Count <= 0 {
		return fmt.Errorf("%w: --count must be > 0", errUsage)
	}
	if opts.Workers < 0 {
		return fmt.Errorf("%w: --workers must be >= 0", errUsage)
	}
	if opts.Text.LineSpacing < 0 {
		return fmt.Errorf("%w: --line-spacing must be >= 0 (0 = default)", errUsage)
	}
	if opts.Text.MaxLineLength < 0 {
		return fmt.Errorf("%w: --max-line must be >= 0 (0 = default)", errUsage)
	}
	return nil
}

func runWizard(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("maskforge wizard", flag.ContinueOnError)
	fs.SetOutput(stderr)
	from := fs.String("from", "", "Load initial values from YAML file")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if err := wizard.Run(*from); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runSpecimen(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("maskforge specimen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	scale := fs.Int("scale", 4, "Upscaling factor of the sheet")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "Usage: maskforge specimen [--scale N] <output-image>")
		return 1
	}

	sheet, err := renderSpecimen(*scale)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if err := imageio.Write(fs.Arg(0), sheet); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Specimen written to %s (%s)\n", fs.Arg(0), sheet.Dimensions())
	return 0
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "\nUsage:")
	fmt.Fprintln(w, "  maskforge [options] <mode> <reference-image> <output-image>")
	fmt.Fprintln(w, "\nOptions:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}

func printHelp(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "maskforge")
	fmt.Fprintln(w, "=========")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate random black and white masks sized after a reference image.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  maskforge [options] <mode> <reference-image> <output-image>")
	fmt.Fprintln(w, "  maskforge wizard [--from config.yaml]")
	fmt.Fprintln(w, "  maskforge specimen [--scale N] <output-image>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Modes:")
	for _, m := range mask.AllModes() {
		fmt.Fprintf(w, "  %-10s %s\n", m, m.Description())
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "The reference may be any PNG, JPEG, GIF, BMP, TIFF, WebP or DICOM image, or a")
	fmt.Fprintln(w, "literal size such as 640x480. The output extension picks the format:")
	for _, f := range imageio.AllFormats() {
		fmt.Fprintf(w, "  %s", f)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  # Bernoulli noise the size of photo.png")
	fmt.Fprintln(w, "  maskforge bernoulli photo.png mask.png")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  # 100 reproducible text masks, 640x480, on 4 workers")
	fmt.Fprintln(w, "  maskforge --seed 42 --count 100 --workers 4 rl 640x480 masks/text.png")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  # Random walk written as a DICOM secondary capture")
	fmt.Fprintln(w, "  maskforge rw scan.dcm walk.dcm")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Reproducibility:")
	fmt.Fprintln(w, "  The same seed, mode and size always give the same masks. Without --seed a")
	fmt.Fprintln(w, "  seed is taken from the clock and printed so the run can be replayed.")
}
