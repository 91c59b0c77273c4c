package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_AccumulatesInOrder(t *testing.T) {
	t.Parallel()

	b := NewBuilder().
		Declare("PS", "PS is a node.").
		Embed("NodeDefaults[K, V]").
		AddField(Field{Name: "key", Storage: StoragePointer, Type: "K", Strategy: AccessAcquireRelease}).
		AddField(Field{Name: "value", Storage: StoragePointer, Type: "V"}).
		AddMethod(Method{Name: "GetKey", Results: []string{"K"}}).
		AddMethod(Method{Kind: KindFunc, Name: "NewPS"}).
		AddInit(Store{Field: "key", Storage: StoragePointer, Value: "keyRef"}).
		RegisterAtomic(AtomicField{Name: "key", Storage: StoragePointer}).
		Suppress("gosec", "forcetypeassert", "gosec")

	require.NoError(t, b.Err())

	a := b.Build()
	assert.Equal(t, "PS", a.Name)
	assert.Equal(t, []string{"NodeDefaults[K, V]"}, a.Embeds)
	assert.Equal(t, "key", a.Fields[0].Name)
	assert.Equal(t, "value", a.Fields[1].Name)
	assert.Equal(t, "unsafe.Pointer", a.Fields[0].GoType())
	assert.Equal(t, []string{"forcetypeassert", "gosec"}, a.Suppressed)
	assert.True(t, a.HasMember("NodeDefaults"))
	assert.True(t, a.HasMember("GetKey"))
	assert.True(t, a.HasMember("NewPS"))
	assert.False(t, a.HasMember("GetValue"))

	_, ok := a.Atomic("key")
	assert.True(t, ok)
}

func TestBuilder_RecordsCollisions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func(b *Builder)
	}{
		{"field twice", func(b *Builder) {
			b.AddField(Field{Name: "key"}).AddField(Field{Name: "key"})
		}},
		{"field and method", func(b *Builder) {
			b.AddField(Field{Name: "accessTime"}).AddMethod(Method{Name: "accessTime"})
		}},
		{"embed and field", func(b *Builder) {
			b.Embed("PS[K, V]").AddField(Field{Name: "PS"})
		}},
		{"method twice", func(b *Builder) {
			b.AddMethod(Method{Name: "GetKey"}).AddMethod(Method{Name: "GetKey"})
		}},
		{"function twice", func(b *Builder) {
			b.AddMethod(Method{Kind: KindFunc, Name: "NewPS"}).AddMethod(Method{Kind: KindFunc, Name: "NewPS"})
		}},
		{"atomic twice", func(b *Builder) {
			b.RegisterAtomic(AtomicField{Name: "key"}).RegisterAtomic(AtomicField{Name: "key"})
		}},
		{"declared twice", func(b *Builder) {
			b.Declare("PS").Declare("PW")
		}},
		{"unnamed", func(b *Builder) {
			b.AddField(Field{})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := NewBuilder()
			tt.build(b)

			assert.ErrorIs(t, b.Err(), ErrDuplicate)
		})
	}
}

func TestBuilder_FunctionsDoNotCollideWithMethods(t *testing.T) {
	t.Parallel()

	b := NewBuilder().
		AddMethod(Method{Kind: KindFunc, Name: "initNode"}).
		AddMethod(Method{Name: "initNode"})

	assert.NoError(t, b.Err())
}

func TestBuilder_BuildIsASnapshot(t *testing.T) {
	t.Parallel()

	b := NewBuilder().AddMethod(Method{Name: "GetKey", Body: []Step{Return{Value: "k"}}})
	first := b.Build()

	first.Methods[0].Body[0] = Raw{Code: "panic(1)"}
	b.AddField(Field{Name: "key"})

	second := b.Build()
	assert.Equal(t, Return{Value: "k"}, second.Methods[0].Body[0])
	assert.Empty(t, first.Fields)
	assert.Len(t, second.Fields, 1)
	assert.True(t, NewBuilder().Build().IsEmpty())
}

func TestEmbeddedName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "PSA", EmbeddedName("PSA[K, V]"))
	assert.Equal(t, "NodeDefaults", EmbeddedName("*node.NodeDefaults[K, V]"))
	assert.Equal(t, "Mutex", EmbeddedName("sync.Mutex"))
}

func TestStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "AcquireRelease", AccessAcquireRelease.String())
	assert.Equal(t, "AccessStrategy(9)", AccessStrategy(9).String())
	assert.Equal(t, "Int64", StorageInt64.String())
	assert.True(t, StorageInt32.SupportsOrdering())
	assert.False(t, StorageUint8.SupportsOrdering())
	assert.Equal(t, "Node[K, V]", StorageInterface.GoType("Node[K, V]"))
}
