package artifact

//go:generate go tool stringer -type=AccessStrategy -trimprefix=Access -output=strategy_string.go
//go:generate go tool stringer -type=Storage -trimprefix=Storage -output=storage_string.go

// AccessStrategy is the memory-ordering discipline of one field access.
type AccessStrategy int

const (
	// AccessPlain is a load or store without ordering guarantees. It is only
	// correct where happens-before is already established by another,
	// ordered write.
	AccessPlain AccessStrategy = iota
	// AccessAcquireRelease is an acquire load or release store.
	AccessAcquireRelease
	// AccessAtomicUpdate is a compare-and-swap.
	AccessAtomicUpdate
)

// Storage is the physical representation of a field.
type Storage int

const (
	// StoragePointer is an unsafe.Pointer to a typed referent.
	StoragePointer Storage = iota
	// StorageInt64 is a 64-bit integer, atomically accessible.
	StorageInt64
	// StorageInt32 is a 32-bit integer, atomically accessible.
	StorageInt32
	// StorageUint8 is a small plain-only integer.
	StorageUint8
	// StorageInterface is a plain-only interface or pointer value.
	StorageInterface
)

// SupportsOrdering reports whether the storage can be accessed with
// acquire/release or compare-and-swap semantics.
func (s Storage) SupportsOrdering() bool {
	return s == StoragePointer || s == StorageInt64 || s == StorageInt32
}

// GoType returns the declared Go type of a field with this storage.
// elem is used for StorageInterface.
func (s Storage) GoType(elem string) string {
	switch s {
	case StoragePointer:
		return "unsafe.Pointer"
	case StorageInt64:
		return "int64"
	case StorageInt32:
		return "int32"
	case StorageUint8:
		return "uint8"
	default:
		return elem
	}
}
