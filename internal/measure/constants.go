// internal/measure/constants.go
package measure

// Register block layout constants.
// These values define the device map and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// StartAddress is the first input register of the measurement block.
const StartAddress uint16 = 0

// WordsPerChannel is the number of 16-bit registers holding one float32.
const WordsPerChannel = 2

// ChannelCount is the fixed number of measured quantities.
const ChannelCount = 6

// RegisterCount is the size of one raw register block.
const RegisterCount = ChannelCount * WordsPerChannel

// ---- CHANNELS ----

// Channel names one measured quantity.
type Channel string

const (
	Volts1   Channel = "volts_1"
	Volts2   Channel = "volts_2"
	Volts3   Channel = "volts_3"
	Current1 Channel = "current_1"
	Current2 Channel = "current_2"
	Current3 Channel = "current_3"
)

// Channels lists every channel in register order.
// Channel j lives at registers 2j (high word) and 2j+1 (low word).
var Channels = [ChannelCount]Channel{
	Volts1,
	Volts2,
	Volts3,
	Current1,
	Current2,
	Current3,
}

// Index returns the register-order position of ch, or -1 if ch is unknown.
func (ch Channel) Index() int {
	for i, c := range Channels {
		if c == ch {
			return i
		}
	}
	return -1
}
