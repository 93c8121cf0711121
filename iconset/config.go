package iconset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-iconset/images"
)

// DefaultSizes is the ordered list of icon sizes produced by a default run.
var DefaultSizes = []images.Size{
	images.Square(16),
	images.Square(48),
	images.Square(128),
}

const (
	// DefaultSource is the source image read from the working directory.
	DefaultSource = "elon.jpg"
	// DefaultNameFormat names each icon after its width.
	DefaultNameFormat = "icon-%d.png"
)

// Config describes one icon set: where the source lives, where the icons go,
// and which sizes to produce.
type Config struct {
	// Source is the path of the image to resize.
	Source string `json:"source" yaml:"source"`
	// Dir is the directory the icons are written to.
	Dir string `json:"dir" yaml:"dir"`
	// NameFormat is a fmt pattern with a single %d verb that receives the
	// icon width. Its extension selects the output encoder.
	NameFormat string `json:"nameFormat" yaml:"nameFormat"`
	// Sizes are the target sizes, processed in order.
	Sizes []images.Size `json:"sizes" yaml:"sizes"`
}

// DefaultConfig returns the fixed configuration used by the iconset command.
func DefaultConfig() Config {
	sizes := make([]images.Size, len(DefaultSizes))
	copy(sizes, DefaultSizes)

	return Config{
		Source:     DefaultSource,
		Dir:        ".",
		NameFormat: DefaultNameFormat,
		Sizes:      sizes,
	}
}

// Validate checks that the configuration can produce one distinct file per size.
func (c *Config) Validate() error {
	if c.Source == "" {
		return errors.New("source is required")
	}
	if c.NameFormat == "" {
		return errors.New("name format is required")
	}
	if n := strings.Count(c.NameFormat, "%"); n != 1 || !strings.Contains(c.NameFormat, "%d") {
		return errors.Errorf("name format %q must contain exactly one %%d verb", c.NameFormat)
	}
	if _, err := images.FormatFromPath(c.NameFormat); err != nil {
		return errors.Wrap(err, "name format")
	}
	if len(c.Sizes) == 0 {
		return errors.New("at least one size is required")
	}

	seen := make(map[int]images.Size, len(c.Sizes))
	for _, size := range c.Sizes {
		if err := size.Validate(); err != nil {
			return err
		}
		// Outputs are named by width, so two sizes sharing one would overwrite each other.
		if prev, ok := seen[size.Width]; ok {
			return errors.Errorf("sizes %s and %s share width %d", prev, size, size.Width)
		}
		seen[size.Width] = size
	}

	return nil
}

// OutputPath returns the file an icon of the given size is written to.
func (c *Config) OutputPath(size images.Size) string {
	return filepath.Join(c.Dir, fmt.Sprintf(c.NameFormat, size.Width))
}
