package main

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

var ErrUnsupportedOutput = errors.New("unsupported output format, use png or tiff")

func loadImage(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return img, nil
}

func saveImage(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// checkOutputFormat accepts only formats that store 8-bit RGBA unchanged.
func checkOutputFormat(path string) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return err
	}
	switch format {
	case imaging.PNG, imaging.TIFF:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedOutput, format)
	}
}
