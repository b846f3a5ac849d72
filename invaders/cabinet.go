package invaders

import (
	"fmt"
	"log"
)

// InvalidPortError is returned when the ROM addresses a port this cabinet
// doesn't wire up. Real hardware would simply float the bus; this surfaces
// it instead, since a ROM reading an unwired port is almost always a bug
// in the memory map the cabinet was built against.
type InvalidPortError struct {
	PortNum uint8
	Out     bool
}

// Error implements the error interface.
func (e InvalidPortError) Error() string {
	dir := "IN"
	if e.Out {
		dir = "OUT"
	}
	return fmt.Sprintf("invalid port %s %d", dir, e.PortNum)
}

// Buttons holds the cabinet's player-facing controls. The host mutates
// these directly in response to whatever input source it has (keyboard,
// gamepad, a test harness); this package has no SDL or keycode dependency.
type Buttons struct {
	P1Start, P1Left, P1Right, P1Shoot bool
	P2Start, P2Left, P2Right, P2Shoot bool
}

// DIPSwitches holds the cabinet's factory configuration switches.
type DIPSwitches struct {
	// ShipCount is the starting number of ships: 3, 4, 5, or 6.
	ShipCount uint8
	// ExtraShipAt1000 awards the bonus ship at 1000 points instead of 1500.
	ExtraShipAt1000 bool
}

// Cabinet implements port.Port for the Space Invaders arcade board: ports
// 1 and 2 multiplex buttons and DIP switches on IN, port 2 sets the shift
// register's offset and ports 3/5 record sound-trigger bitmasks on OUT,
// port 3 reads the shift register and port 4 loads it.
type Cabinet struct {
	Buttons     Buttons
	DIPSwitches DIPSwitches

	shiftRegister ShiftRegister

	// LastSound3 and LastSound5 record the most recent OUT value written
	// to the two sound-trigger ports. No mixer lives here; a host wanting
	// audio watches these for edge transitions and plays its own samples.
	LastSound3 uint8
	LastSound5 uint8

	// LastInvalidPort records the most recent InvalidPortError instead of
	// panicking, so a host can decide whether an unwired port access is
	// fatal for its purposes.
	LastInvalidPort error

	// Debug, if true, logs every InvalidPortError through the standard
	// logger as it's recorded.
	Debug bool
}

// NewCabinet returns a Cabinet with the given DIP configuration and all
// buttons released.
func NewCabinet(dip DIPSwitches) *Cabinet {
	return &Cabinet{DIPSwitches: dip}
}

func boolBit(b bool, bit uint8) uint8 {
	if b {
		return 1 << bit
	}
	return 0
}

// ReadIn implements port.Port.
func (c *Cabinet) ReadIn(portNum uint8) uint8 {
	switch portNum {
	case 1:
		return 0x09 |
			boolBit(c.Buttons.P2Start, 1) |
			boolBit(c.Buttons.P1Start, 2) |
			boolBit(c.Buttons.P1Shoot, 4) |
			boolBit(c.Buttons.P1Left, 5) |
			boolBit(c.Buttons.P1Right, 6)
	case 2:
		ships := c.DIPSwitches.ShipCount - 3
		return 0x80 |
			(ships&0x02)>>1 |
			(ships&0x01)<<1 |
			boolBit(c.DIPSwitches.ExtraShipAt1000, 3) |
			boolBit(c.Buttons.P2Shoot, 4) |
			boolBit(c.Buttons.P2Left, 5) |
			boolBit(c.Buttons.P2Right, 6)
	case 3:
		return c.shiftRegister.Read()
	default:
		c.LastInvalidPort = InvalidPortError{PortNum: portNum, Out: false}
		if c.Debug {
			log.Printf("Cabinet: %s", c.LastInvalidPort)
		}
		return 0
	}
}

// WriteOut implements port.Port.
func (c *Cabinet) WriteOut(portNum uint8, value uint8) {
	switch portNum {
	case 2:
		c.shiftRegister.SetOffset(value)
	case 3:
		c.LastSound3 = value
	case 4:
		c.shiftRegister.Insert(value)
	case 5:
		c.LastSound5 = value
	default:
		c.LastInvalidPort = InvalidPortError{PortNum: portNum, Out: true}
		if c.Debug {
			log.Printf("Cabinet: %s", c.LastInvalidPort)
		}
	}
}
