package cmd

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arloliu/ninepack"
	"github.com/arloliu/ninepack/blob"
	"github.com/arloliu/ninepack/cmd/ninepack/pkg/conf"
)

func decodeCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [TEXT]",
		Short: "Decode a text-encoded buffer and print its values",
		Long: `Decode a text-encoded buffer and print its values

If the buffer holds fewer values than its header declares, the values that are
present are printed, unless --strict is set, in which case decoding fails.
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			input = strings.TrimSpace(input)

			te, err := textEncoding(v)
			if err != nil {
				return err
			}

			var opts []blob.DecoderOption
			if v.GetBool(conf.Strict) {
				opts = append(opts, blob.WithStrictPayload())
			}

			values, err := ninepack.DecodeString(input, te, opts...)
			if err != nil {
				return fmt.Errorf("failed to decode %s input: %w", te, err)
			}

			log.Debug().
				Int("count", len(values)).
				Stringer("text", te).
				Msg("decoded")

			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatValues(values))

			return err
		},
	}

	cmd.Flags().Bool(conf.Strict, false, "fail when the payload is shorter than the header declares")

	return cmd
}
