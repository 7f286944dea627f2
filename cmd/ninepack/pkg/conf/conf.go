// Package conf holds the configuration keys of the ninepack CLI.
//
// Every key doubles as a flag name, a config file key and, upper-cased with the
// NINEPACK_ prefix, an environment variable.
package conf

const (
	// EnvPrefix prefixes all environment variables read by the CLI.
	EnvPrefix = "NINEPACK"

	LogLevel     = "log-level" // LogLevel : debug, info, warn or error
	TextEncoding = "text"      // TextEncoding : transport used to render encoded buffers
	Strict       = "strict"    // Strict : reject out-of-range values / short payloads
	Separator    = "separator" // Separator : separator of the naive text in compare
	Baselines    = "baselines" // Baselines : compressors applied to the naive text in compare
)

const (
	DefaultLogLevel     = "warn"
	DefaultTextEncoding = "base64"
	DefaultSeparator    = ","
)

// DefaultBaselines lists the compressors compare runs by default.
var DefaultBaselines = []string{"none", "zstd", "s2", "lz4"}
