// Package bytesize provides a byte-count type that parses human-readable
// size strings. It is used for sizing the replay arena from configuration,
// where values like "512Mi" or "2Gi" are far more readable than raw byte
// counts.
package bytesize

import (
	"fmt"
	"strconv"
	"strings"
)

// ByteSize is a size in bytes. It unmarshals from strings like "512Mi",
// "2GiB", "100MB" or plain numbers, and marshals back to a compact
// human-readable form.
//
// Binary suffixes (Ki, Mi, Gi, Ti, optionally followed by B) multiply by
// powers of 1024; decimal suffixes (K, M, G, T, KB, MB, GB, TB) by powers
// of 1000. A bare number or a "B" suffix is taken as bytes.
type ByteSize uint64

const (
	B  ByteSize = 1
	KB ByteSize = 1000
	MB ByteSize = 1000 * KB
	GB ByteSize = 1000 * MB
	TB ByteSize = 1000 * GB

	KiB ByteSize = 1024
	MiB ByteSize = 1024 * KiB
	GiB ByteSize = 1024 * MiB
	TiB ByteSize = 1024 * GiB
)

// suffixes is ordered longest-first so that "KiB" wins over "K" and "B".
var suffixes = []struct {
	text string
	mult ByteSize
}{
	{"kib", KiB}, {"mib", MiB}, {"gib", GiB}, {"tib", TiB},
	{"ki", KiB}, {"mi", MiB}, {"gi", GiB}, {"ti", TiB},
	{"kb", KB}, {"mb", MB}, {"gb", GB}, {"tb", TB},
	{"k", KB}, {"m", MB}, {"g", GB}, {"t", TB},
	{"b", B},
}

// Parse converts a human-readable size string into a ByteSize.
func Parse(s string) (ByteSize, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("empty byte size")
	}

	num := strings.ToLower(trimmed)
	mult := B
	for _, sfx := range suffixes {
		if strings.HasSuffix(num, sfx.text) {
			num = strings.TrimSpace(num[:len(num)-len(sfx.text)])
			mult = sfx.mult
			break
		}
	}
	if num == "" {
		return 0, fmt.Errorf("byte size %q has no numeric part", s)
	}

	if strings.Contains(num, ".") {
		f, err := strconv.ParseFloat(num, 64)
		if err != nil || f < 0 {
			return 0, fmt.Errorf("invalid byte size %q", s)
		}
		return ByteSize(f * float64(mult)), nil
	}

	n, err := strconv.ParseUint(num, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid byte size %q", s)
	}
	return ByteSize(n) * mult, nil
}

// UnmarshalText implements encoding.TextUnmarshaler so ByteSize fields can
// be decoded directly from config files and environment variables.
func (b *ByteSize) UnmarshalText(text []byte) error {
	size, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = size
	return nil
}

// MarshalText implements encoding.TextMarshaler, producing the same
// representation as String. This keeps written config files readable.
func (b ByteSize) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// String renders the size with the largest binary unit that divides it
// cleanly enough to read, e.g. "512.00MiB".
func (b ByteSize) String() string {
	switch {
	case b >= TiB:
		return fmt.Sprintf("%.2fTiB", float64(b)/float64(TiB))
	case b >= GiB:
		return fmt.Sprintf("%.2fGiB", float64(b)/float64(GiB))
	case b >= MiB:
		return fmt.Sprintf("%.2fMiB", float64(b)/float64(MiB))
	case b >= KiB:
		return fmt.Sprintf("%.2fKiB", float64(b)/float64(KiB))
	default:
		return fmt.Sprintf("%dB", uint64(b))
	}
}

// Uint64 returns the size as a plain uint64.
func (b ByteSize) Uint64() uint64 {
	return uint64(b)
}

// Int returns the size as an int. Sizes beyond the int range are not
// meaningful for in-process arenas on 64-bit platforms.
func (b ByteSize) Int() int {
	return int(b)
}
