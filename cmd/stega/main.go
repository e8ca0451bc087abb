package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	_ "golang.org/x/image/webp"

	stega "github.com/yyyoichi/stega_zero"
)

const usage = `Usage:
  stega embed    -payload FILE -in COVER -out STEGO [codec options]
  stega extract  -in STEGO -out FILE|- [codec options]
  stega capacity -in IMAGE [-golay]
  stega quality  -cover COVER -stego STEGO

Codec options must match between embed and extract:
  -zstd N      compress the payload with zstd level N (1-22)
  -golay       protect the payload with Golay(23,12)
  -seed N      Golay shuffle seed
  -workers N   goroutines for the payload area
  -strict      reject odd-length payloads instead of padding

Environment variables:
  STEGA_LOG_LEVEL=debug    Enable debug logging
`

var debug = os.Getenv("STEGA_LOG_LEVEL") == "debug"

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(0)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := context.Background()
	var err error
	switch os.Args[1] {
	case "embed":
		err = embedCommand(ctx, os.Args[2:])
	case "extract":
		err = extractCommand(ctx, os.Args[2:])
	case "capacity":
		err = capacityCommand(os.Args[2:])
	case "quality":
		err = qualityCommand(os.Args[2:])
	case "-h", "--help", "help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("stega %s: %v", os.Args[1], err)
	}
}

// codecFlags are the options shared by embed, extract and capacity.
type codecFlags struct {
	zstd    int
	golay   bool
	seed    int64
	workers int
	strict  bool
}

func (c *codecFlags) register(fs *flag.FlagSet) {
	fs.IntVar(&c.zstd, "zstd", 0, "zstd compression level 1-22 (0 disables)")
	fs.BoolVar(&c.golay, "golay", false, "protect the payload with Golay(23,12)")
	fs.Int64Var(&c.seed, "seed", 1234567890, "Golay shuffle seed")
	fs.IntVar(&c.workers, "workers", 1, "goroutines for the payload area")
	fs.BoolVar(&c.strict, "strict", false, "reject odd-length payloads")
}

func (c *codecFlags) options() []stega.Option {
	var opts []stega.Option
	if c.zstd > 0 {
		opts = append(opts, stega.WithZstd(c.zstd))
	}
	if c.golay {
		opts = append(opts, stega.WithGolay(c.seed))
	}
	if c.strict {
		opts = append(opts, stega.WithStrictEven())
	}
	return append(opts, stega.WithWorkers(c.workers))
}

func embedCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("embed", flag.ExitOnError)
	payloadPath := fs.String("payload", "", "file to hide (required)")
	input := fs.String("in", "", "cover image (required)")
	output := fs.String("out", "", "output image, .png or .tif (required)")
	var codec codecFlags
	codec.register(fs)
	_ = fs.Parse(args)
	if *payloadPath == "" || *input == "" || *output == "" {
		fs.PrintDefaults()
		os.Exit(2)
	}
	// reject unsupported targets before doing any work
	if err := checkOutputFormat(*output); err != nil {
		return err
	}

	s, err := stega.New(codec.options()...)
	if err != nil {
		return err
	}
	payload, err := os.ReadFile(*payloadPath)
	if err != nil {
		return err
	}
	cover, err := loadImage(*input)
	if err != nil {
		return err
	}

	start := time.Now()
	stegoImg, err := s.Embed(ctx, cover, payload)
	if err != nil {
		return err
	}
	if debug {
		log.Printf("embedded %d bytes in %v", len(payload), time.Since(start))
	}
	if err := saveImage(stegoImg, *output); err != nil {
		return err
	}
	log.Printf("Hid %d bytes from %s in %s", len(payload), *payloadPath, *output)
	return nil
}

func extractCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	input := fs.String("in", "", "stego image (required)")
	output := fs.String("out", "", "payload destination, - for stdout (required)")
	var codec codecFlags
	codec.register(fs)
	_ = fs.Parse(args)
	if *input == "" || *output == "" {
		fs.PrintDefaults()
		os.Exit(2)
	}

	s, err := stega.New(codec.options()...)
	if err != nil {
		return err
	}
	stegoImg, err := loadImage(*input)
	if err != nil {
		return err
	}

	start := time.Now()
	payload, err := s.Extract(ctx, stegoImg)
	if err != nil {
		return err
	}
	if debug {
		log.Printf("extracted %d bytes in %v", len(payload), time.Since(start))
	}
	if *output == "-" {
		_, err = os.Stdout.Write(payload)
		return err
	}
	if err := os.WriteFile(*output, payload, 0o644); err != nil {
		return err
	}
	log.Printf("Recovered %d bytes into %s", len(payload), *output)
	return nil
}

func capacityCommand(args []string) error {
	fs := flag.NewFlagSet("capacity", flag.ExitOnError)
	input := fs.String("in", "", "image to measure (required)")
	var codec codecFlags
	codec.register(fs)
	_ = fs.Parse(args)
	if *input == "" {
		fs.PrintDefaults()
		os.Exit(2)
	}

	img, err := loadImage(*input)
	if err != nil {
		return err
	}
	capacity, err := stega.Capacity(img.Bounds(), codec.options()...)
	if err != nil {
		return err
	}
	bounds := img.Bounds()
	fmt.Printf("Your image is %dx%d pixels.\n", bounds.Dx(), bounds.Dy())
	fmt.Printf("You will be able to hide up to %d bytes.\n", capacity)
	return nil
}

func qualityCommand(args []string) error {
	fs := flag.NewFlagSet("quality", flag.ExitOnError)
	coverPath := fs.String("cover", "", "original image (required)")
	stegoPath := fs.String("stego", "", "image carrying the payload (required)")
	_ = fs.Parse(args)
	if *coverPath == "" || *stegoPath == "" {
		fs.PrintDefaults()
		os.Exit(2)
	}

	cover, err := loadImage(*coverPath)
	if err != nil {
		return err
	}
	stegoImg, err := loadImage(*stegoPath)
	if err != nil {
		return err
	}
	report, err := stega.Measure(cover, stegoImg)
	if err != nil {
		return err
	}
	fmt.Printf("MSE:            %.4f\n", report.MSE)
	fmt.Printf("PSNR:           %.2f dB\n", report.PSNR)
	fmt.Printf("Max delta:      %.0f\n", report.MaxDelta)
	fmt.Printf("Changed pixels: %d\n", report.ChangedPixels)
	return nil
}
