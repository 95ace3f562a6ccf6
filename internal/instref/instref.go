// Package instref defines the opaque 16-byte handle used as the sole
// external reference to a live Saha object instance (spec §3, InstRef).
package instref

import (
	"github.com/google/uuid"
)

// InstRef is a 16-byte instance reference. It is never serialized by the
// core and carries no meaning beyond identity.
type InstRef [16]byte

// Zero is the nil InstRef, used as a sentinel for "no instance".
var Zero InstRef

// New mints a fresh InstRef backed by a random UUIDv4, mirroring the
// corpus's own uuid.Uuid surface (internal/modules/virtual_packages_data.go
// in the teacher repo) rather than hand-rolling random byte generation.
func New() InstRef {
	id := uuid.New()
	var ref InstRef
	copy(ref[:], id[:])
	return ref
}

func (r InstRef) String() string {
	id, err := uuid.FromBytes(r[:])
	if err != nil {
		return "invalid-instref"
	}
	return id.String()
}

// IsZero reports whether r is the Zero sentinel.
func (r InstRef) IsZero() bool {
	return r == Zero
}
