package server

import (
	"encoding/binary"
	"fmt"

	"github.com/willbeason/mandelbrot/pkg/pixel"
)

// rowHeader is the big endian uint32 row index that starts every message.
const rowHeader = 4

// EncodeRow builds the websocket message of one row: the row index y then
// R, G and B bytes for each pixel left to right.
func EncodeRow(y int, row []pixel.Pixel) []byte {
	msg := make([]byte, rowHeader, rowHeader+3*len(row))
	binary.BigEndian.PutUint32(msg, uint32(y))
	for _, p := range row {
		r, g, b := p.Color.RGB255()
		msg = append(msg, r, g, b)
	}
	return msg
}

// DecodeRow splits a message made by EncodeRow.
func DecodeRow(msg []byte) (y int, rgb []byte, err error) {
	if len(msg) < rowHeader || (len(msg)-rowHeader)%3 != 0 {
		return 0, nil, fmt.Errorf("server: malformed row message of %d bytes", len(msg))
	}
	return int(binary.BigEndian.Uint32(msg)), msg[rowHeader:], nil
}
