package safe

import (
	"math"
	"testing"
)

func TestUint64(t *testing.T) {
	tests := []struct {
		name    string
		v       int64
		want    uint64
		wantErr bool
	}{
		{name: "positive", v: 42, want: 42},
		{name: "zero", v: 0, want: 0},
		{name: "negative", v: -1, wantErr: true},
		{name: "max int64", v: math.MaxInt64, want: math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Uint64(tt.v)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Uint64() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("Uint64() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHexQuantity(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		want    uint64
		wantErr bool
	}{
		{name: "small", s: "0x2a", want: 42},
		{name: "zero", s: "0x0", want: 0},
		{name: "upper prefix", s: "0X10", want: 16},
		{name: "max uint64", s: "0xffffffffffffffff", want: math.MaxUint64},
		{name: "over uint64", s: "0x10000000000000000", wantErr: true},
		{name: "no prefix", s: "2a", wantErr: true},
		{name: "empty digits", s: "0x", wantErr: true},
		{name: "garbage", s: "0xzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HexQuantity(tt.s)
			if (err != nil) != tt.wantErr {
				t.Fatalf("HexQuantity(%q) error = %v, wantErr %v", tt.s, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Fatalf("HexQuantity(%q) = %d, want %d", tt.s, got, tt.want)
			}
		})
	}
}

func TestBigQuantity(t *testing.T) {
	b, err := BigQuantity("0xde0b6b3a7640000")
	if err != nil {
		t.Fatalf("BigQuantity() error: %v", err)
	}
	if b.String() != "1000000000000000000" {
		t.Fatalf("BigQuantity() = %s, want 1e18", b.String())
	}

	if _, err := BigQuantity("0x-1"); err == nil {
		t.Fatal("BigQuantity() accepted a negative quantity")
	}
}
