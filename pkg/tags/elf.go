// SPDX-License-Identifier: MPL-2.0

package tags

import (
	"debug/elf"
	"encoding/binary"
	"io"
	"os"
)

const elfHeaderLen = 40

// EF_ARM_ABI_FLOAT_HARD and EF_ARM_EABI_VER5 as they land in the raw
// little-endian e_flags word at offsets 36-39.
const (
	armFlagHardFloatByte = 37
	armFlagHardFloatBit  = 0x04
	armFlagEABIByte      = 39
	armFlagEABIVer5      = 5
)

// IsLinuxARMHF reports whether the environment is a hard-float 32-bit ARM
// Linux userspace. The OS platform string cannot distinguish hard-float
// from soft-float, so this inspects the ELF header of the running
// interpreter binary itself. Any I/O failure or header mismatch fails
// closed.
func (e *Environment) IsLinuxARMHF() bool {
	if e.Platform() != "linux_armv7l" {
		return false
	}
	f, err := os.Open(e.Executable)
	if err != nil {
		return false
	}
	defer f.Close()

	var header [elfHeaderLen]byte
	if _, err := io.ReadFull(f, header[:]); err != nil {
		return false
	}
	return isARMHFHeader(header[:])
}

// isARMHFHeader validates the six hard-float criteria against a raw ELF
// header prefix. All checks must hold; there is no partial credit.
func isARMHFHeader(header []byte) bool {
	if len(header) < elfHeaderLen {
		return false
	}
	result := string(header[:4]) == elf.ELFMAG
	result = result && elf.Class(header[elf.EI_CLASS]) == elf.ELFCLASS32
	result = result && elf.Data(header[elf.EI_DATA]) == elf.ELFDATA2LSB
	result = result && elf.Machine(binary.LittleEndian.Uint16(header[18:20])) == elf.EM_ARM
	result = result && header[armFlagEABIByte] == armFlagEABIVer5
	result = result && header[armFlagHardFloatByte]&armFlagHardFloatBit != 0
	return result
}
