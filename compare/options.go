package compare

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arloliu/ninepack/compress"
	"github.com/arloliu/ninepack/format"
	"github.com/arloliu/ninepack/internal/options"
	"github.com/arloliu/ninepack/transport"
)

// DefaultSeparator joins the decimal values of the naive text representation.
const DefaultSeparator = ","

// Config holds the harness settings applied by Option values.
type Config struct {
	separator    string
	textEncoding format.TextEncoding
	baselines    []format.CompressionType
	logger       zerolog.Logger
}

func newConfig() *Config {
	return &Config{
		separator:    DefaultSeparator,
		textEncoding: format.TextBase64,
		baselines: []format.CompressionType{
			format.CompressionNone,
			format.CompressionZstd,
			format.CompressionS2,
			format.CompressionLZ4,
		},
		logger: zerolog.Nop(),
	}
}

// Option configures Run.
type Option = options.Option[*Config]

// WithSeparator sets the separator of the naive text representation.
func WithSeparator(sep string) Option {
	return options.NoError(func(c *Config) {
		c.separator = sep
	})
}

// WithTextEncoding sets the transport used to measure the text size of the packed buffer.
func WithTextEncoding(te format.TextEncoding) Option {
	return options.New(func(c *Config) error {
		if _, err := transport.Get(te); err != nil {
			return err
		}
		c.textEncoding = te

		return nil
	})
}

// WithBaselines sets the general-purpose compressors applied to the naive text.
//
// Passing no types disables the baselines.
func WithBaselines(types ...format.CompressionType) Option {
	return options.New(func(c *Config) error {
		for _, ct := range types {
			if _, err := compress.GetCodec(ct); err != nil {
				return fmt.Errorf("invalid baseline: %w", err)
			}
		}
		c.baselines = append([]format.CompressionType(nil), types...)

		return nil
	})
}

// WithLogger sets the logger receiving per-baseline debug events.
func WithLogger(logger zerolog.Logger) Option {
	return options.NoError(func(c *Config) {
		c.logger = logger
	})
}
