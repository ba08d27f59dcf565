// internal/services/stub_generator_test.go
package services

import (
	"context"
	"encoding/json"
	"errors"
)

// stubGenerator is a scriptable ContentGenerator for pipeline tests. Zero
// value is a configured generator whose calls all succeed with canned output.
type stubGenerator struct {
	unconfigured  bool
	textErr       error
	imageErr      error
	structuredErr error

	text       string
	image      []byte
	structured string // raw JSON handed to GenerateStructured's out

	// block, when set, holds every generate call open until released. Used
	// to exercise the in-flight guard.
	block chan struct{}
	// started, when set, receives one value per generate call as it enters.
	started chan struct{}
}

func (g *stubGenerator) Configured() bool {
	return !g.unconfigured
}

func (g *stubGenerator) wait() {
	if g.started != nil {
		g.started <- struct{}{}
	}
	if g.block != nil {
		<-g.block
	}
}

func (g *stubGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	g.wait()
	if g.textErr != nil {
		return "", g.textErr
	}
	if g.text == "" {
		return "canned recipe", nil
	}
	return g.text, nil
}

func (g *stubGenerator) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	g.wait()
	if g.imageErr != nil {
		return nil, g.imageErr
	}
	if g.image == nil {
		return []byte{0x89, 0x50, 0x4E, 0x47}, nil
	}
	return g.image, nil
}

func (g *stubGenerator) GenerateStructured(ctx context.Context, prompt string, out interface{}) error {
	g.wait()
	if g.structuredErr != nil {
		return g.structuredErr
	}
	if g.structured == "" {
		return errors.New("no structured payload scripted")
	}
	return json.Unmarshal([]byte(g.structured), out)
}
