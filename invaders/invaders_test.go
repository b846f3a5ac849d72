package invaders

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"invaders8080/memory"
)

func TestMemoryMapFoldsAndMarksROM(t *testing.T) {
	index, isROM := MemoryMap(0x0100)
	assert.Equal(t, 0x0100, index)
	assert.True(t, isROM)

	index, isROM = MemoryMap(0x2400)
	assert.Equal(t, 0x2400, index)
	assert.False(t, isROM)

	// Bits 14/15 are folded away: 0x6400 and 0x2400 land on the same byte.
	index, isROM = MemoryMap(0x6400)
	assert.Equal(t, 0x2400, index)
	assert.False(t, isROM)
}

func TestShiftRegister(t *testing.T) {
	var s ShiftRegister
	s.Insert(0xFF)
	s.Insert(0x00)
	// After inserting 0xFF then 0x00, register = 0x00FF? Insert puts the
	// new byte into the high byte and shifts the old high byte into the
	// low byte's position.
	s.SetOffset(0)
	assert.Equal(t, uint8(0x00), s.Read())

	var s2 ShiftRegister
	s2.Insert(0xAF)
	s2.SetOffset(0)
	assert.Equal(t, uint8(0xAF), s2.Read())
	s2.SetOffset(4)
	assert.Equal(t, uint8(0xF0), s2.Read())
}

func TestCabinetButtonsAndDIPs(t *testing.T) {
	c := NewCabinet(DIPSwitches{ShipCount: 4, ExtraShipAt1000: true})
	base := c.ReadIn(1)
	assert.Equal(t, uint8(0x09), base)

	c.Buttons.P1Shoot = true
	assert.Equal(t, uint8(0x09|0x10), c.ReadIn(1))

	in2 := c.ReadIn(2)
	assert.Equal(t, uint8(0x80), in2&0x80)
	assert.NotZero(t, in2&0x08) // ExtraShipAt1000

	c.WriteOut(3, 0x01)
	c.WriteOut(5, 0x02)
	assert.Equal(t, uint8(0x01), c.LastSound3)
	assert.Equal(t, uint8(0x02), c.LastSound5)
}

func TestCabinetShiftRegisterPorts(t *testing.T) {
	c := NewCabinet(DIPSwitches{ShipCount: 3})
	c.WriteOut(4, 0xAF)
	c.WriteOut(2, 4)
	assert.Equal(t, uint8(0xF0), c.ReadIn(3))
}

func TestCabinetInvalidPortRecorded(t *testing.T) {
	c := NewCabinet(DIPSwitches{ShipCount: 3})
	assert.Equal(t, uint8(0), c.ReadIn(9))
	assert.Error(t, c.LastInvalidPort)
}

// TestCabinetDebugLogsInvalidPort confirms the diagnostic only reaches
// the standard logger when Debug is set.
func TestCabinetDebugLogsInvalidPort(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	c := NewCabinet(DIPSwitches{ShipCount: 3})
	c.WriteOut(9, 0x01)
	assert.Empty(t, buf.String())

	c.Debug = true
	c.WriteOut(9, 0x01)
	assert.Contains(t, buf.String(), "invalid port OUT 9")
}

func TestMemoryMapEndToEnd(t *testing.T) {
	m := memory.New(MemorySize, MemoryMap)
	assert.NoError(t, m.Write(FramebufferAddr, 0x77))
	got, err := m.Read(FramebufferAddr)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x77), got)
	assert.Error(t, m.Write(0x0010, 0x01))
}
