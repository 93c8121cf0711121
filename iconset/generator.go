// Package iconset produces a fixed set of resized icons from one source image.
//
// A run loads the source once, then for each configured size resamples it with
// Lanczos3 and writes the result to its own file. Runs are sequential and stop
// at the first failure without removing icons that were already written.
package iconset

import (
	"time"

	"go.uber.org/zap"

	"github.com/nvr-ai/go-iconset/images"
)

// Icon describes one written icon.
type Icon struct {
	// Size is the pixel size of the icon.
	Size images.Size `json:"size"`
	// Path is the file the icon was written to.
	Path string `json:"path"`
	// Bytes is the encoded file size.
	Bytes int `json:"bytes"`
	// Checksum is the MD5 of the encoded file.
	Checksum string `json:"checksum"`
	// Duration covers resampling and writing.
	Duration time.Duration `json:"duration"`
}

// Result is the outcome of a successful run.
type Result struct {
	Source *images.Image `json:"source"`
	Icons  []Icon        `json:"icons"`
}

// Generator runs the load, resize, write pipeline for a Config.
type Generator struct {
	cfg    Config
	logger *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New validates cfg and returns a Generator for it.
func New(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		cfg:    cfg,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Config returns the configuration the generator runs with.
func (g *Generator) Config() Config {
	return g.cfg
}

// Run loads the source and writes one icon per configured size, in order.
//
// Returns:
//   - *Result: The source image and every icon written.
//   - error: An *Error of KindLoad if the source cannot be loaded (nothing is
//     written in that case), or KindWrite if an icon cannot be written.
func (g *Generator) Run() (*Result, error) {
	src, err := images.Load(g.cfg.Source)
	if err != nil {
		return nil, &Error{Kind: KindLoad, Path: g.cfg.Source, Err: err}
	}

	g.logger.Info("loaded source",
		zap.String("path", src.Path),
		zap.String("format", string(src.Format)),
		zap.Int("width", src.Width),
		zap.Int("height", src.Height),
		zap.String("color_mode", src.ColorMode),
	)

	result := &Result{
		Source: src,
		Icons:  make([]Icon, 0, len(g.cfg.Sizes)),
	}

	for _, size := range g.cfg.Sizes {
		icon, err := g.render(src, size)
		if err != nil {
			return nil, err
		}
		result.Icons = append(result.Icons, icon)
	}

	g.logger.Info("icon set complete", zap.Int("icons", len(result.Icons)))

	return result, nil
}

// render resizes src to size and writes it to the size's output path.
func (g *Generator) render(src *images.Image, size images.Size) (Icon, error) {
	start := time.Now()
	path := g.cfg.OutputPath(size)

	resized, err := images.Resize(src.Raster, size)
	if err != nil {
		return Icon{}, &Error{Kind: KindResize, Path: path, Err: err}
	}

	data, err := images.Save(path, resized)
	if err != nil {
		return Icon{}, &Error{Kind: KindWrite, Path: path, Err: err}
	}

	icon := Icon{
		Size:     size,
		Path:     path,
		Bytes:    len(data),
		Checksum: images.Checksum(data),
		Duration: time.Since(start),
	}

	g.logger.Info("wrote icon",
		zap.String("path", icon.Path),
		zap.Stringer("size", icon.Size),
		zap.Int("bytes", icon.Bytes),
		zap.String("checksum", icon.Checksum),
		zap.Duration("duration", icon.Duration),
	)

	return icon, nil
}
