// Package compare measures ninepack buffers against a naive textual encoding of the
// same values.
//
// The harness answers one question: how much smaller is the packed form, raw and after
// a text transport, than the values written out as decimal text? Generic compressors
// applied to the naive text are reported alongside as baselines.
//
//	report, err := compare.Run(values, compare.WithTextEncoding(format.TextBase58))
//	if err != nil {
//	    return err
//	}
//	fmt.Print(report)
package compare

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/arloliu/ninepack/blob"
	"github.com/arloliu/ninepack/compress"
	"github.com/arloliu/ninepack/format"
	"github.com/arloliu/ninepack/internal/options"
	"github.com/arloliu/ninepack/internal/pool"
	"github.com/arloliu/ninepack/transport"
)

// Report is the outcome of one harness run.
type Report struct {
	// Count is the number of input values.
	Count int
	// NaiveSize is the byte length of the separator-joined decimal text.
	NaiveSize int
	// PackedSize is the byte length of the encoded buffer.
	PackedSize int
	// TextEncoding is the transport used for TextSize.
	TextEncoding format.TextEncoding
	// TextSize is the length of the encoded buffer rendered with TextEncoding.
	TextSize int
	// RoundTrip reports whether decoding gave back the input values, ignoring order.
	RoundTrip bool
	// Fingerprint is the xxHash64 of the encoded buffer.
	Fingerprint uint64
	// Baselines holds one entry per configured compressor, applied to the naive text.
	// Every entry has been decompressed again and checked against the naive text.
	Baselines []compress.Stats
}

// PackedRatio returns NaiveSize / PackedSize, or 0 when nothing was packed.
func (r Report) PackedRatio() float64 {
	return ratio(r.NaiveSize, r.PackedSize)
}

// TextRatio returns NaiveSize / TextSize, or 0 when the text is empty.
func (r Report) TextRatio() float64 {
	return ratio(r.NaiveSize, r.TextSize)
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}

	return float64(num) / float64(den)
}

// String renders the report as an aligned, human-readable summary.
func (r Report) String() string {
	var sb strings.Builder

	roundTrip := "ok"
	if !r.RoundTrip {
		roundTrip = "MISMATCH"
	}

	fmt.Fprintf(&sb, "values:       %d\n", r.Count)
	fmt.Fprintf(&sb, "naive text:   %d bytes\n", r.NaiveSize)
	fmt.Fprintf(&sb, "packed:       %d bytes (%.2fx)\n", r.PackedSize, r.PackedRatio())
	fmt.Fprintf(&sb, "%-13s %d bytes (%.2fx)\n", r.TextEncoding.String()+":", r.TextSize, r.TextRatio())
	fmt.Fprintf(&sb, "round trip:   %s\n", roundTrip)
	fmt.Fprintf(&sb, "fingerprint:  %016x\n", r.Fingerprint)

	if len(r.Baselines) > 0 {
		sb.WriteString("baselines (naive text):\n")
		for _, st := range r.Baselines {
			restored := "lossless"
			if !st.Lossless {
				restored = "LOSSY"
			}
			fmt.Fprintf(&sb, "  %-6s %d bytes (%.1f%% saved, %s)\n", st.Algorithm, st.CompressedSize, st.SpaceSavings(), restored)
		}
	}

	return sb.String()
}

// Run encodes values and measures the result against the naive text representation.
//
// Values above 511 are truncated by the encoder as usual, in which case the report shows
// a failed round trip. Sequences longer than 65535 values fail with errs.ErrSequenceTooLong.
func Run(values []uint16, opts ...Option) (Report, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return Report{}, err
	}

	codec, err := transport.Get(cfg.textEncoding)
	if err != nil {
		return Report{}, err
	}

	packed, err := blob.Encode(values)
	if err != nil {
		return Report{}, err
	}

	naive := pool.GetPackBuffer()
	defer pool.PutPackBuffer(naive)
	naive.B = appendNaive(naive.B, values, cfg.separator)

	report := Report{
		Count:        len(values),
		NaiveSize:    naive.Len(),
		PackedSize:   packed.Size(),
		TextEncoding: cfg.textEncoding,
		TextSize:     len(codec.EncodeToString(packed.Bytes())),
		Fingerprint:  packed.Fingerprint(),
	}

	decoded, err := blob.Decode(packed.Bytes())
	if err != nil {
		return Report{}, fmt.Errorf("decode of fresh buffer failed: %w", err)
	}
	report.RoundTrip = sameValues(values, decoded)

	report.Baselines = make([]compress.Stats, 0, len(cfg.baselines))
	for _, ct := range cfg.baselines {
		st, err := compress.Measure(ct, naive.Bytes())
		if err != nil {
			return Report{}, err
		}

		cfg.logger.Debug().
			Stringer("algorithm", ct).
			Int("original", st.OriginalSize).
			Int("compressed", st.CompressedSize).
			Float64("savings", st.SpaceSavings()).
			Bool("lossless", st.Lossless).
			Msg("baseline measured")

		report.Baselines = append(report.Baselines, st)
	}

	cfg.logger.Debug().
		Int("count", report.Count).
		Int("naive", report.NaiveSize).
		Int("packed", report.PackedSize).
		Bool("round_trip", report.RoundTrip).
		Msg("comparison finished")

	return report, nil
}

// appendNaive appends the decimal values joined by sep to dst.
func appendNaive(dst []byte, values []uint16, sep string) []byte {
	for i, v := range values {
		if i > 0 {
			dst = append(dst, sep...)
		}
		dst = strconv.AppendUint(dst, uint64(v), 10)
	}

	return dst
}

// sameValues compares a and b as multisets.
func sameValues(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}

	sortedA, releaseA := pool.GetUint16Slice(len(a))
	defer releaseA()
	sortedB, releaseB := pool.GetUint16Slice(len(b))
	defer releaseB()

	copy(sortedA, a)
	copy(sortedB, b)
	slices.Sort(sortedA)
	slices.Sort(sortedB)

	return slices.Equal(sortedA, sortedB)
}
