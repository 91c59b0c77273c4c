package rule

import (
	"node-generator/internal/artifact"
	"node-generator/internal/variant"
)

// Field specs shared between rules. Rules that touch the same storage
// agree on it through these constructors, never by inspecting the
// builder.

func keySpec(cfg variant.Config) fieldSpec {
	return fieldSpec{
		name:     "key",
		accessor: "Key",
		storage:  artifact.StoragePointer,
		referent: "K",
		holder:   cfg.KeyReferenceType(),
		strategy: artifact.AccessAcquireRelease,
	}
}

func valueSpec(cfg variant.Config) fieldSpec {
	return fieldSpec{
		name:     "value",
		accessor: "Value",
		storage:  artifact.StoragePointer,
		referent: "V",
		holder:   cfg.ValueReferenceType(),
		strategy: artifact.AccessAcquireRelease,
	}
}

var (
	accessTimeSpec = fieldSpec{
		name:     "accessTime",
		accessor: "AccessTime",
		storage:  artifact.StorageInt64,
		referent: "int64",
		strategy: artifact.AccessPlain,
	}
	writeTimeSpec = fieldSpec{
		name:     "writeTime",
		accessor: "WriteTime",
		storage:  artifact.StorageInt64,
		referent: "int64",
		strategy: artifact.AccessAcquireRelease,
	}
	queueTypeSpec = fieldSpec{
		name:     "queueType",
		accessor: "QueueType",
		storage:  artifact.StorageUint8,
		referent: "uint8",
		strategy: artifact.AccessPlain,
	}
	weightSpec = fieldSpec{
		name:     "weight",
		accessor: "Weight",
		storage:  artifact.StorageInt32,
		referent: "int32",
		strategy: artifact.AccessPlain,
	}
	policyWeightSpec = fieldSpec{
		name:     "policyWeight",
		accessor: "PolicyWeight",
		storage:  artifact.StorageInt32,
		referent: "int32",
		strategy: artifact.AccessPlain,
	}
)

func linkSpec(name, accessor string) fieldSpec {
	return fieldSpec{
		name:     name,
		accessor: accessor,
		storage:  artifact.StorageInterface,
		referent: "Node" + artifact.TypeArgs,
		strategy: artifact.AccessPlain,
	}
}

// initParams is the signature shared by every initNode and constructor
// call. keyRef is either the address of a strong key or its holder.
var initParams = []artifact.Param{
	{Name: "keyRef", Type: "unsafe.Pointer"},
	{Name: "value", Type: "V"},
	{Name: "weight", Type: "int32"},
	{Name: "now", Type: "int64"},
}

func initArgs() []string {
	args := make([]string, len(initParams))
	for i, p := range initParams {
		args[i] = p.Name
	}

	return args
}

const (
	// initMethod is the name of the per-level initializer.
	initMethod = "initNode"
	// defaultsType is embedded by base variants and provides no-op
	// implementations of every optional node method.
	defaultsType = "NodeDefaults" + artifact.TypeArgs
	// retiredKey and deadKey are the lifecycle sentinels stored in place
	// of a key reference.
	retiredKey = "retiredKey"
	deadKey    = "deadKey"
)
