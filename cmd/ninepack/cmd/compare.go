package cmd

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arloliu/ninepack/cmd/ninepack/pkg/conf"
	"github.com/arloliu/ninepack/compare"
	"github.com/arloliu/ninepack/format"
)

func compareCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [VALUES...]",
		Short: "Compare the packed size of values with their naive text form",
		Long: `Compare the packed size of values with their naive text form

The naive form is the decimal values joined by --separator. The report also shows
the packed buffer rendered with --text, and the naive form compressed with each of
the --baselines compressors.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			values, err := parseValues(input)
			if err != nil {
				return err
			}

			te, err := textEncoding(v)
			if err != nil {
				return err
			}

			baselines, err := parseBaselines(v.GetStringSlice(conf.Baselines))
			if err != nil {
				return err
			}

			report, err := compare.Run(values,
				compare.WithSeparator(v.GetString(conf.Separator)),
				compare.WithTextEncoding(te),
				compare.WithBaselines(baselines...),
				compare.WithLogger(log.Logger),
			)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), report)

			return err
		},
	}

	cmd.Flags().String(conf.Separator, conf.DefaultSeparator, "separator of the naive text form")
	cmd.Flags().StringSlice(conf.Baselines, conf.DefaultBaselines, "compressors applied to the naive text (none, zstd, s2, lz4)")

	return cmd
}

// parseBaselines resolves compressor names. Entries may themselves be comma-separated,
// as they are when the list comes from an environment variable.
func parseBaselines(names []string) ([]format.CompressionType, error) {
	baselines := make([]format.CompressionType, 0, len(names))
	for _, entry := range names {
		for name := range strings.SplitSeq(entry, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}

			ct, err := format.ParseCompressionType(name)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", conf.Baselines, err)
			}
			baselines = append(baselines, ct)
		}
	}

	return baselines, nil
}
