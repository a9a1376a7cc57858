// Package wire shows derive-gen on a small framed wire protocol. Frames
// are produced on big-endian hosts and decoded here after a SwapEndian.
package wire

//go:generate go run github.com/signadot/derive/cmd/derive-gen

// Header precedes every frame.
//
//derive:swapendian
type Header struct {
	Magic uint32
	Flags uint16
	Count uint16
	Route Route
	Frame FrameKind
}

// Route addresses a frame. Hop is a single byte and survives a swap as is.
//
//derive:swapendian
type Route struct {
	Src uint16
	Dst uint16
	Hop uint8
}

// Checksum holds the per-lane checksums of a frame.
//
//derive:swapendian
type Checksum [4]uint32

// BlockSize is the number of words in a Block.
const BlockSize = 8

// Block is a fixed size payload block.
//
//derive:swapendian
type Block [BlockSize]uint16

// Ping carries no payload.
//
//derive:swapendian
type Ping struct{}

// FrameKind identifies the payload following a Header.
//
//derive:tryfrom
type FrameKind uint8

const (
	FrameData FrameKind = 0
	FrameAck  FrameKind = 2
	FrameFin  FrameKind = 5
)

// Version is the protocol version. Only one is supported.
//
//derive:tryfrom
type Version uint16

const CurrentVersion Version = 7

// Status reports the outcome of a request.
//
//derive:tryfrom
type Status int32

const (
	StatusOK Status = iota
	StatusRetry
	StatusFailed

	// StatusDefault aliases StatusOK.
	StatusDefault Status = StatusOK
)

// opcode is the internal command byte. raw marks an uninterpreted payload.
//
//derive:tryfrom
type opcode uint8

const (
	raw   opcode = 3
	fetch opcode = 9
)
