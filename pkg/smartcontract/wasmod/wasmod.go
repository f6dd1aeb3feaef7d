// Package wasmod deals with compiled WASM contract modules. Contract code
// travels inside ContractCreate transactions as a hex blob, so this package
// only cares about loading module bytes, sanity-checking the container
// header and producing the hex and code-hash forms the transaction needs.
package wasmod

import (
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
)

// A compiled module starts with the standard WASM container header:
// +---------+---------+-----------------------------------------------+
// |  Field  | Length  |                   Comment                     |
// +---------+---------+-----------------------------------------------+
// | Magic   | 4 bytes | "\0asm"                                       |
// | Version | 4 bytes | Binary format version, little-endian, 1       |
// +---------+---------+-----------------------------------------------+
// followed by the sections, which are opaque to this package.

const (
	// Magic is the magic module header constant.
	Magic uint32 = 0x6D736100
	// Version is the only supported binary format version.
	Version uint32 = 1
	// MaxModuleSize is the maximum allowed compiled module length.
	MaxModuleSize = 1024 * 1024
	// headerSize is the length of the container header in bytes.
	headerSize = 8
)

// File represents a compiled contract module.
type File struct {
	code []byte
}

// FromBytes returns a File wrapping the given module bytes after checking
// the container header.
func FromBytes(b []byte) (File, error) {
	if len(b) < headerSize {
		return File{}, errors.New("module is shorter than the container header")
	}
	if len(b) > MaxModuleSize {
		return File{}, fmt.Errorf("module is too big: %d > %d", len(b), MaxModuleSize)
	}
	if magic := binary.LittleEndian.Uint32(b[:4]); magic != Magic {
		return File{}, fmt.Errorf("invalid module magic %#x", magic)
	}
	if v := binary.LittleEndian.Uint32(b[4:8]); v != Version {
		return File{}, fmt.Errorf("unsupported module version %d", v)
	}
	return File{code: b}, nil
}

// Load reads a compiled module from the given path.
func Load(path string) (File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to read module from %q: %w", path, err)
	}
	f, err := FromBytes(b)
	if err != nil {
		return File{}, fmt.Errorf("%q: %w", path, err)
	}
	return f, nil
}

// Bytes returns the raw module bytes.
func (f File) Bytes() []byte {
	return f.code
}

// Hex returns the module bytes as an uppercase hex string, the form the
// ContractCode transaction field carries.
func (f File) Hex() string {
	return strings.ToUpper(hex.EncodeToString(f.code))
}

// CodeHash returns the ledger identifier of the module: the first half of
// its SHA-512 hash in uppercase hex.
func (f File) CodeHash() string {
	h := sha512.Sum512(f.code)
	return strings.ToUpper(hex.EncodeToString(h[:32]))
}
