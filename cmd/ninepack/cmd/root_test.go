package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/ninepack/errs"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := New(viper.New())
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)

	err := root.Execute()

	return out.String(), err
}

func TestEncodeCommand(t *testing.T) {
	out, err := run(t, "", "encode", "--text", "hex", "5,511,0")
	require.NoError(t, err)
	require.Equal(t, "000302ffc000\n", out)

	out, err = run(t, "5", "encode", "--text", "hex")
	require.NoError(t, err)
	require.Equal(t, "00010280\n", out)

	out, err = run(t, "", "encode")
	require.NoError(t, err)
	require.Equal(t, "\n", out)
}

func TestEncodeCommand_Strict(t *testing.T) {
	out, err := run(t, "", "encode", "--text", "hex", "600")
	require.NoError(t, err)
	require.Equal(t, "00012c00\n", out) // 600 & 511 = 88

	_, err = run(t, "", "encode", "--strict", "600")
	require.ErrorIs(t, err, errs.ErrValueOutOfRange)
}

func TestDecodeCommand(t *testing.T) {
	out, err := run(t, "", "decode", "--text", "hex", "000302ffc000")
	require.NoError(t, err)
	require.Equal(t, "5,511,0\n", out)

	out, err = run(t, "  000302ffc000\n", "decode", "--text", "hex")
	require.NoError(t, err)
	require.Equal(t, "5,511,0\n", out)

	// header declares 3 values, payload holds 2
	out, err = run(t, "", "decode", "--text", "hex", "000302ffc0")
	require.NoError(t, err)
	require.Equal(t, "5,511\n", out)

	_, err = run(t, "", "decode", "--text", "hex", "--strict", "000302ffc0")
	require.ErrorIs(t, err, errs.ErrInsufficientPayload)

	_, err = run(t, "", "decode", "--text", "hex", "00")
	require.ErrorIs(t, err, errs.ErrTruncatedHeader)
}

func TestEncodeDecodeCommands_AllTextEncodings(t *testing.T) {
	for _, te := range []string{"base64", "base64url", "base32", "base36", "base58", "hex"} {
		t.Run(te, func(t *testing.T) {
			text, err := run(t, "", "encode", "--text", te, "0", "0", "1", "42", "511")
			require.NoError(t, err)

			out, err := run(t, "", "decode", "--text", te, strings.TrimSpace(text))
			require.NoError(t, err)
			require.Equal(t, "0,0,1,42,511\n", out)
		})
	}
}

func TestCompareCommand(t *testing.T) {
	out, err := run(t, "", "compare", "--baselines", "none,zstd", "1", "1", "1")
	require.NoError(t, err)
	require.Contains(t, out, "values:       3")
	require.Contains(t, out, "naive text:   5 bytes")
	require.Contains(t, out, "round trip:   ok")
	require.Contains(t, out, "Zstd")
	require.NotContains(t, out, "LZ4")

	_, err = run(t, "", "compare", "--baselines", "brotli", "1")
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestRootCommand_InvalidSettings(t *testing.T) {
	_, err := run(t, "", "encode", "--text", "uuencode", "1")
	require.ErrorIs(t, err, errs.ErrUnknownTextEncoding)

	_, err = run(t, "", "encode", "--log-level", "loud", "1")
	require.Error(t, err)

	_, err = run(t, "", "encode", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "1")
	require.Error(t, err)
}

func TestRootCommand_Env(t *testing.T) {
	t.Setenv("NINEPACK_TEXT", "hex")

	out, err := run(t, "", "encode", "5")
	require.NoError(t, err)
	require.Equal(t, "00010280\n", out)

	// flags take precedence over the environment
	out, err = run(t, "", "encode", "--text", "base64", "5")
	require.NoError(t, err)
	require.Equal(t, "AAECgA==\n", out)
}

func TestRootCommand_ConfigFile(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "ninepack.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("text: hex\nstrict: true\n"), 0o600))

	out, err := run(t, "", "encode", "--config", cfgFile, "5")
	require.NoError(t, err)
	require.Equal(t, "00010280\n", out)

	_, err = run(t, "", "encode", "--config", cfgFile, "600")
	require.ErrorIs(t, err, errs.ErrValueOutOfRange)
}
