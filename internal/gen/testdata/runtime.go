package node

import "unsafe"

// Minimal runtime the generated nodes are compiled against.

var (
	retiredKey = unsafe.Pointer(new(byte))
	deadKey    = unsafe.Pointer(new(byte))
)

type Node[K comparable, V any] interface {
	GetKey() K
	GetKeyReference() unsafe.Pointer
	GetValue() V
	GetValueReference() unsafe.Pointer
	SetValue(value V)
	IsAlive() bool
	IsRetired() bool
	IsDead() bool
	Retire()
	Die()
	GetAccessTime() int64
	SetAccessTime(accessTime int64)
	GetWriteTime() int64
	SetWriteTime(writeTime int64)
	GetQueueType() uint8
	GetWeight() int32
	GetPolicyWeight() int32
	GetPreviousInAccessOrder() Node[K, V]
	GetNextInWriteOrder() Node[K, V]
}

type NodeDefaults[K comparable, V any] struct{}

func (NodeDefaults[K, V]) GetAccessTime() int64                 { return 0 }
func (NodeDefaults[K, V]) SetAccessTime(int64)                  {}
func (NodeDefaults[K, V]) GetWriteTime() int64                  { return 0 }
func (NodeDefaults[K, V]) SetWriteTime(int64)                   {}
func (NodeDefaults[K, V]) GetQueueType() uint8                  { return 0 }
func (NodeDefaults[K, V]) GetWeight() int32                     { return 1 }
func (NodeDefaults[K, V]) GetPolicyWeight() int32               { return 1 }
func (NodeDefaults[K, V]) GetPreviousInAccessOrder() Node[K, V] { return nil }
func (NodeDefaults[K, V]) GetNextInWriteOrder() Node[K, V]      { return nil }

type WeakKeyReference[K any] struct {
	key *K
}

func NewWeakKeyReference[K any](key K) *WeakKeyReference[K] {
	return &WeakKeyReference[K]{key: &key}
}

func (r *WeakKeyReference[K]) Get() (K, bool) {
	if r.key == nil {
		var zero K
		return zero, false
	}

	return *r.key, true
}

func (r *WeakKeyReference[K]) Clear() { r.key = nil }

type valueReference[V any] struct {
	keyRef unsafe.Pointer
	value  *V
}

func (r *valueReference[V]) Get() (V, bool) {
	if r.value == nil {
		var zero V
		return zero, false
	}

	return *r.value, true
}

func (r *valueReference[V]) KeyReference() unsafe.Pointer { return r.keyRef }

func (r *valueReference[V]) SetKeyReference(keyRef unsafe.Pointer) { r.keyRef = keyRef }

func (r *valueReference[V]) Clear() { r.value = nil }

type WeakValueReference[K any, V any] struct {
	valueReference[V]
}

func NewWeakValueReference[K any, V any](keyRef unsafe.Pointer, value V) *WeakValueReference[K, V] {
	return &WeakValueReference[K, V]{valueReference[V]{keyRef: keyRef, value: &value}}
}

type SoftValueReference[K any, V any] struct {
	valueReference[V]
}

func NewSoftValueReference[K any, V any](keyRef unsafe.Pointer, value V) *SoftValueReference[K, V] {
	return &SoftValueReference[K, V]{valueReference[V]{keyRef: keyRef, value: &value}}
}
