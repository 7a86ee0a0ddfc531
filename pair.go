package lazy

// Pair represents a key-value pair. Zip produces pairs of the two
// sides' items and Enumerate produces index-item pairs.
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// MakePair constructs a pair from its two halves. Product uses it to
// build its output pairs; at call sites it also infers type arguments
// where the literal constructor would need them spelled out.
func MakePair[K any, V any](k K, v V) Pair[K, V] { return Pair[K, V]{Key: k, Value: v} }
