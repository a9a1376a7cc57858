package derive

import (
	"math"
	"strings"
	"testing"
)

type port uint16

type celsius float32

type pair struct {
	A uint16
	B uint32
}

func (p pair) SwapEndian() pair {
	return pair{A: SwapEndian(p.A), B: SwapEndian(p.B)}
}

func TestSwapEndianScalars(t *testing.T) {
	if got := SwapEndian(uint16(0x1234)); got != 0x3412 {
		t.Errorf("uint16: got %#x", got)
	}
	if got := SwapEndian(uint32(0x11223344)); got != 0x44332211 {
		t.Errorf("uint32: got %#x", got)
	}
	if got := SwapEndian(uint64(0x0102030405060708)); got != 0x0807060504030201 {
		t.Errorf("uint64: got %#x", got)
	}
	if got := SwapEndian(int16(0x0100)); got != 1 {
		t.Errorf("int16: got %d", got)
	}
	if got := SwapEndian(int32(-1)); got != -1 {
		t.Errorf("int32: got %d", got)
	}
	if got := SwapEndian(uint8(0xab)); got != 0xab {
		t.Errorf("uint8: got %#x", got)
	}
	if got := SwapEndian(true); !got {
		t.Error("bool: expected true")
	}
}

func TestSwapEndianFloats(t *testing.T) {
	f := float32(1.5)
	want := math.Float32frombits(0x0000c03f)
	if got := SwapEndian(f); math.Float32bits(got) != math.Float32bits(want) {
		t.Errorf("float32: got %#x", math.Float32bits(got))
	}
	d := 3.25
	if got := SwapEndian(SwapEndian(d)); got != d {
		t.Errorf("float64 round trip: got %v", got)
	}
}

func TestSwapEndianNamedScalars(t *testing.T) {
	if got := SwapEndian(port(0x1f90)); got != port(0x901f) {
		t.Errorf("port: got %#x", uint16(got))
	}
	c := celsius(21.5)
	got := SwapEndian(c)
	if math.Float32bits(float32(got)) != bitsReversed32(math.Float32bits(float32(c))) {
		t.Errorf("celsius: got %#x", math.Float32bits(float32(got)))
	}
	if SwapEndian(got) != c {
		t.Errorf("celsius round trip: got %v", SwapEndian(got))
	}
}

func TestSwapEndianArrays(t *testing.T) {
	in := [3]uint16{0x0001, 0x0002, 0x0300}
	want := [3]uint16{0x0100, 0x0200, 0x0003}
	if got := SwapEndian(in); got != want {
		t.Errorf("got %#v, want %#v", got, want)
	}

	ps := [2]pair{{A: 1, B: 2}, {A: 0x0100, B: 0x01000000}}
	got := SwapEndian(ps)
	if got[0] != (pair{A: 0x0100, B: 0x02000000}) || got[1] != (pair{A: 1, B: 1}) {
		t.Errorf("pairs: got %#v", got)
	}
}

func TestSwapEndianDelegates(t *testing.T) {
	p := pair{A: 0x0102, B: 0x01020304}
	got := SwapEndian(p)
	if got != (pair{A: 0x0201, B: 0x04030201}) {
		t.Errorf("got %#v", got)
	}
	if SwapEndian(got) != p {
		t.Errorf("round trip: got %#v", SwapEndian(got))
	}
}

func TestSwapEndianUnsupportedPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "[]uint16") {
			t.Errorf("unexpected panic value %v", r)
		}
	}()
	SwapEndian([]uint16{1})
}

func bitsReversed32(x uint32) uint32 {
	return x>>24 | (x>>8)&0xff00 | (x<<8)&0xff0000 | x<<24
}
