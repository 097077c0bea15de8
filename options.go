package gasket

import (
	"fmt"
	"log/slog"
)

// RenderOptions controls what Render draws.
type RenderOptions struct {
	// Depth is the subdivision depth of the gasket. It must range from 0 to MaxDepth. Defaults to DefaultDepth.
	Depth int
	// Triangle is the outermost triangle of the gasket, in normalized device coordinates. Defaults to DefaultTriangle().
	Triangle Triangle
	// ClearColor is the color the framebuffer is cleared to before drawing. Defaults to opaque black.
	ClearColor Color
	// Logger receives a record for each step of the render. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultRenderOptions creates an instance of RenderOptions with the default depth, triangle, and clear color.
func DefaultRenderOptions() *RenderOptions {
	return &RenderOptions{
		Depth:      DefaultDepth,
		Triangle:   DefaultTriangle(),
		ClearColor: NewColor(0, 0, 0, 1),
		Logger:     slog.Default(),
	}
}

// Validate returns an error if the RenderOptions can't be rendered.
func (opts *RenderOptions) Validate() error {
	if opts.Depth < 0 || opts.Depth > MaxDepth {
		return fmt.Errorf("depth %d out of range: must be between 0 and %d", opts.Depth, MaxDepth)
	}
	return nil
}

func (opts *RenderOptions) logger() *slog.Logger {
	if opts.Logger == nil {
		return slog.Default()
	}
	return opts.Logger
}
