package orderedmap

// OrderedMap stores key-value pairs in insertion order. Entries live in an index-addressed
// table so iteration is a plain slice walk; re-setting an existing key keeps its position.
// Entries cannot be removed: the parser only ever grows its tables during construction.
type OrderedMap[K comparable, V any] struct {
	index  map[K]int
	keys   []K
	values []V
}

// NewOrderedMap creates a new OrderedMap of type K
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		index: map[K]int{},
	}
}

// Set stores a key-value pair and returns true when the key was not present before.
// If the key already exists, its value is overwritten in place.
func (o *OrderedMap[K, V]) Set(key K, val V) bool {
	if i, exists := o.index[key]; exists {
		o.values[i] = val
		return false
	}

	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.values = append(o.values, val)

	return true
}

// Get will return the value associated with the key.
// If the key doesn't exist, the second return value will be false.
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	i, exists := o.index[key]
	if !exists {
		return *new(V), false
	}

	return o.values[i], true
}

// Has reports whether key is present
func (o *OrderedMap[K, V]) Has(key K) bool {
	_, exists := o.index[key]
	return exists
}

// At returns the key-value pair at insertion position i
func (o *OrderedMap[K, V]) At(i int) (K, V, bool) {
	if i < 0 || i >= len(o.keys) {
		return *new(K), *new(V), false
	}

	return o.keys[i], o.values[i], true
}

// Count returns the count of keys in OrderedMap
func (o *OrderedMap[K, V]) Count() int {
	return len(o.keys)
}

// Keys returns a copy of the keys in insertion order
func (o *OrderedMap[K, V]) Keys() []K {
	return append([]K(nil), o.keys...)
}

// Values returns a copy of the values in insertion order
func (o *OrderedMap[K, V]) Values() []V {
	return append([]V(nil), o.values...)
}

// Each calls fn for every entry in insertion order until fn returns false
func (o *OrderedMap[K, V]) Each(fn func(i int, key K, val V) bool) {
	for i := range o.keys {
		if !fn(i, o.keys[i], o.values[i]) {
			return
		}
	}
}
