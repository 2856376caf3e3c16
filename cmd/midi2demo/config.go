package midi2demo

// Config holds the demo command's tunables: the UMP group assigned to
// translated legacy bytes, the USB-MIDI cable demultiplexed on input, the
// group-filter bitmap applied to UMP-to-bytes output, and whether channel
// voice output is upscaled to MIDI 2. Cable and GroupFilter are settable
// by flag, but neither the translate mode nor the CI mode reads them.
type Config struct {
	DefaultGroup uint8
	Cable        uint8
	GroupFilter  uint16
	OutputMIDI2  bool
	Metrics      bool
	LogLevel     string
}

