package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/viper"

	"github.com/arloliu/ninepack/cmd/ninepack/pkg/conf"
	"github.com/arloliu/ninepack/format"
)

// readInput returns args joined by spaces, or all of r when no args are given.
func readInput(args []string, r io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}

	return string(data), nil
}

// parseValues parses decimal integers separated by commas and/or whitespace.
//
// Values up to 65535 are accepted; the encoder decides what happens to those above 511.
func parseValues(input string) ([]uint16, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	values := make([]uint16, 0, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseUint(field, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q at position %d: %w", field, i, err)
		}
		values = append(values, uint16(v))
	}

	return values, nil
}

// formatValues renders values as a comma-separated list.
func formatValues(values []uint16) string {
	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(v), 10))
	}

	return sb.String()
}

func textEncoding(v *viper.Viper) (format.TextEncoding, error) {
	te, err := format.ParseTextEncoding(v.GetString(conf.TextEncoding))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", conf.TextEncoding, err)
	}

	return te, nil
}
