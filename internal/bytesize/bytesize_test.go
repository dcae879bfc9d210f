package bytesize

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ByteSize
		wantErr bool
	}{
		{"plain zero", "0", 0, false},
		{"plain number", "4096", 4096, false},
		{"bytes suffix", "4096B", 4096, false},

		{"kibibytes short", "64Ki", 64 * KiB, false},
		{"kibibytes long", "64KiB", 64 * KiB, false},
		{"mebibytes", "512Mi", 512 * MiB, false},
		{"gibibytes", "2Gi", 2 * GiB, false},
		{"tebibytes", "1TiB", TiB, false},

		{"kilobytes", "1K", KB, false},
		{"megabytes", "100MB", 100 * MB, false},
		{"gigabytes", "3G", 3 * GB, false},
		{"terabytes", "1TB", TB, false},

		{"lowercase", "512mi", 512 * MiB, false},
		{"uppercase", "512MI", 512 * MiB, false},
		{"surrounding space", "  2Gi  ", 2 * GiB, false},
		{"inner space", "2 Gi", 2 * GiB, false},

		{"fractional binary", "1.5Mi", ByteSize(1.5 * float64(MiB)), false},
		{"fractional under one", "0.25Gi", 256 * MiB, false},

		{"empty", "", 0, true},
		{"blank", "   ", 0, true},
		{"suffix only", "Gi", 0, true},
		{"unknown suffix", "12Qi", 0, true},
		{"negative", "-1Gi", 0, true},
		{"garbage", "lots", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestByteSize_TextRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		size ByteSize
		text string
	}{
		{"bytes", 100, "100B"},
		{"mebibytes", 512 * MiB, "512.00MiB"},
		{"gibibytes", 2 * GiB, "2.00GiB"},
		{"fractional", ByteSize(1.5 * float64(GiB)), "1.50GiB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := tt.size.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText() error = %v", err)
			}
			if string(text) != tt.text {
				t.Errorf("MarshalText() = %q, want %q", text, tt.text)
			}

			var back ByteSize
			if err := back.UnmarshalText(text); err != nil {
				t.Fatalf("UnmarshalText(%q) error = %v", text, err)
			}
			if back != tt.size {
				t.Errorf("round trip = %d, want %d", back, tt.size)
			}
		})
	}
}

func TestByteSize_Conversions(t *testing.T) {
	size := 512 * MiB

	if got := size.Uint64(); got != 512*1024*1024 {
		t.Errorf("Uint64() = %d, want %d", got, 512*1024*1024)
	}
	if got := size.Int(); got != 512*1024*1024 {
		t.Errorf("Int() = %d, want %d", got, 512*1024*1024)
	}
}
