package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// cabinetMap mirrors the Space Invaders fold: 16 KiB visible, the lower
// half read-only.
func cabinetMap(addr uint16) (int, bool) {
	folded := int(addr) & 0x3FFF
	return folded, folded < 0x2000
}

func TestReadWriteRoundTrip(t *testing.T) {
	m := New(0x4000, cabinetMap)
	assert.NoError(t, m.Write(0x2400, 0x42))
	got, err := m.Read(0x2400)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x42), got)
}

func TestWriteToROMFails(t *testing.T) {
	m := New(0x4000, cabinetMap)
	err := m.Write(0x0100, 0x99)
	var ime InvalidMemoryError
	assert.ErrorAs(t, err, &ime)
	assert.Equal(t, 0x0100, ime.Index)
}

func TestReadOutOfRangeFails(t *testing.T) {
	m := New(0x4000, func(addr uint16) (int, bool) { return int(addr), false })
	_, err := m.Read(0x5000)
	var ime InvalidMemoryError
	assert.ErrorAs(t, err, &ime)
}

func TestLoadROMOverwritesROMRegion(t *testing.T) {
	m := New(0x4000, cabinetMap)
	rom := []uint8{0xDE, 0xAD, 0xBE, 0xEF}
	assert.NoError(t, m.LoadROM(rom, 0x0000))
	for i, want := range rom {
		got, err := m.Read(uint16(i))
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestLoadROMTooLargeFails(t *testing.T) {
	m := New(0x10, func(addr uint16) (int, bool) { return int(addr), false })
	err := m.LoadROM(make([]uint8, 20), 0x0005)
	var rse RomSizeError
	assert.ErrorAs(t, err, &rse)
	assert.Equal(t, 20, rse.RomSize)
	assert.Equal(t, 11, rse.SpaceLeft)
}

func TestCheckWritableDoesNotMutate(t *testing.T) {
	m := New(0x4000, cabinetMap)
	before, err := m.Read(0x0050)
	assert.NoError(t, err)
	assert.Error(t, m.CheckWritable(0x0050))
	after, err := m.Read(0x0050)
	assert.NoError(t, err)
	assert.Equal(t, before, after)

	assert.NoError(t, m.CheckWritable(0x2400))
	assert.True(t, m.Writable(0x2400))
	assert.False(t, m.Writable(0x0050))
}

func TestReadable(t *testing.T) {
	m := New(0x4000, cabinetMap)
	assert.True(t, m.Readable(0x0000))
	assert.True(t, m.Readable(0xFFFF)) // folds back into range
}

func TestSlice(t *testing.T) {
	m := New(0x4000, cabinetMap)
	assert.NoError(t, m.Write(0x2400, 0x01))
	assert.NoError(t, m.Write(0x2401, 0x02))
	s, err := m.Slice(0x2400, 2)
	assert.NoError(t, err)
	assert.Equal(t, []uint8{0x01, 0x02}, s)

	_, err = m.Slice(0x3FFE, 4)
	var ime InvalidMemoryError
	assert.ErrorAs(t, err, &ime)
}

func TestSize(t *testing.T) {
	m := New(0x4000, cabinetMap)
	assert.Equal(t, 0x4000, m.Size())
}
