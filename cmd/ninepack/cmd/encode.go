package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arloliu/ninepack"
	"github.com/arloliu/ninepack/blob"
	"github.com/arloliu/ninepack/cmd/ninepack/pkg/conf"
)

func encodeCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [VALUES...]",
		Short: "Encode values and print the packed buffer as text",
		Long: `Encode values and print the packed buffer as text

Values above 511 keep their low 9 bits, unless --strict is set, in which case
they are rejected.
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

			var opts []blob.EncoderOption
			if v.GetBool(conf.Strict) {
				opts = append(opts, blob.WithStrictRange())
			}

			text, err := ninepack.EncodeToString(values, te, opts...)
			if err != nil {
				return fmt.Errorf("failed to encode %d value(s): %w", len(values), err)
			}

			log.Debug().
				Int("count", len(values)).
				Stringer("text", te).
				Int("length", len(text)).
				Msg("encoded")

			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)

			return err
		},
	}

	cmd.Flags().Bool(conf.Strict, false, "reject values above 511 instead of truncating them")

	return cmd
}
