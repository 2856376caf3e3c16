package ump

// Handlers bundles one callback interface per UMP message family. A
// dispatcher is constructed with a Handlers value; any family the caller
// doesn't care about can be left as NullHandlers{} (or embedded and
// partially overridden), since every method has a no-op default.
type Handlers interface {
	Utility(msg UtilityMessage)
	System(msg SystemMessage)
	M1CVM(msg M1CVMMessage)
	SysEx7(msg SysEx7Message)
	M2CVM(msg M2CVMMessage)
	Data128(msg Data128Message)
	FlexData(msg FlexDataMessage)
	Stream(msg StreamMessage)

	// Unknown is invoked for a reserved MT, or for a status value this
	// dispatcher has no case for, carrying the raw accumulated words and
	// how many of them are valid.
	Unknown(words [4]uint32, n int)
}

// NullHandlers implements Handlers with all no-ops. Embed it in a
// caller's handler type to override only the families it needs.
type NullHandlers struct{}

func (NullHandlers) Utility(UtilityMessage)         {}
func (NullHandlers) System(SystemMessage)           {}
func (NullHandlers) M1CVM(M1CVMMessage)              {}
func (NullHandlers) SysEx7(SysEx7Message)            {}
func (NullHandlers) M2CVM(M2CVMMessage)              {}
func (NullHandlers) Data128(Data128Message)          {}
func (NullHandlers) FlexData(FlexDataMessage)        {}
func (NullHandlers) Stream(StreamMessage)            {}
func (NullHandlers) Unknown(words [4]uint32, n int) {}
