// Package enhance produces studio-style portrait images from raw uploads
// using a hosted image generation model.
package enhance

import (
	"context"
	"errors"
)

// ErrNoImage is returned when the model responds without an image part.
// Callers treat it as a soft failure and keep the original portrait.
var ErrNoImage = errors.New("no image in model response")

// Enhancer rewrites a portrait's background to a clean professional one.
// Input and output are base64 payloads without a data URI prefix.
type Enhancer interface {
	Enhance(ctx context.Context, imageData string, mimeType string) (string, error)
}

// NopEnhancer is used when no API key is configured. Every call reports
// ErrNoImage so portraits keep their original upload.
type NopEnhancer struct{}

func (NopEnhancer) Enhance(_ context.Context, _ string, _ string) (string, error) {
	return "", ErrNoImage
}
