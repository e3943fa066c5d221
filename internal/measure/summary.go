// internal/measure/summary.go
package measure

import "fmt"

// Summary is the per-channel maximum of a completed run.
// It is a value type: copies never share state.
type Summary [ChannelCount]float32

// Get returns the maximum for ch. Unknown channels read as zero.
func (s Summary) Get(ch Channel) float32 {
	i := ch.Index()
	if i < 0 {
		return 0
	}
	return s[i]
}

// Map returns a fresh map keyed by channel name.
func (s Summary) Map() map[Channel]float32 {
	out := make(map[Channel]float32, ChannelCount)
	for i, ch := range Channels {
		out[ch] = s[i]
	}
	return out
}

// NotAvailable is shown for a channel that never produced a number.
const NotAvailable = "N/A"

// Format renders one value the way the report shows measured currents.
func Format(v float32) string {
	if isNaN(v) {
		return NotAvailable
	}
	return fmt.Sprintf("%.2f", v)
}
