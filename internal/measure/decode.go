// internal/measure/decode.go
package measure

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrBlockSize means the register block does not hold exactly RegisterCount words.
var ErrBlockSize = errors.New("measure: register block size mismatch")

// Reading holds one decoded value per channel, in register order.
type Reading [ChannelCount]float32

// Get returns the value for ch. Unknown channels read as zero.
func (r Reading) Get(ch Channel) float32 {
	i := ch.Index()
	if i < 0 {
		return 0
	}
	return r[i]
}

// DecodeFloat32 reinterprets (hi<<16)|lo as a big-endian IEEE-754 single.
func DecodeFloat32(hi, lo uint16) float32 {
	var b [4]byte
	binary.BigEndian.PutUint16(b[0:2], hi)
	binary.BigEndian.PutUint16(b[2:4], lo)
	return math.Float32frombits(binary.BigEndian.Uint32(b[:]))
}

// Decode converts one raw register block into a Reading.
// Every 32-bit pattern is a float, so NaN and Inf pass through unchanged.
func Decode(regs []uint16) (Reading, error) {
	var r Reading

	if len(regs) != RegisterCount {
		return r, fmt.Errorf("%w: got=%d want=%d", ErrBlockSize, len(regs), RegisterCount)
	}

	for j := 0; j < ChannelCount; j++ {
		r[j] = DecodeFloat32(regs[j*WordsPerChannel], regs[j*WordsPerChannel+1])
	}

	return r, nil
}

// Encode is the inverse of Decode. Used to build register images for fakes
// and simulators.
func Encode(r Reading) []uint16 {
	regs := make([]uint16, RegisterCount)
	for j, v := range r {
		bits := math.Float32bits(v)
		regs[j*WordsPerChannel] = uint16(bits >> 16)
		regs[j*WordsPerChannel+1] = uint16(bits)
	}
	return regs
}
