//Package floatmap provides an ordered map keyed by floating point numbers.
//
//IEEE floats are not totally ordered because of NaN, so the map refuses NaN
//keys; every key it holds compares with cmp.Compare.
package floatmap

import (
	"cmp"
	"errors"
	"iter"
	"math"

	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

//ErrNaNKey is returned when NaN is used as a key
var ErrNaNKey = errors.New("floatmap: NaN key")

const cDegree = 16

type entry[K constraints.Float, V any] struct {
	key   K
	value V
}

//Map keeps values sorted by their float keys in a B-tree
type Map[K constraints.Float, V any] struct {
	tree *btree.BTreeG[entry[K, V]]
}

//New creates an empty map
func New[K constraints.Float, V any]() *Map[K, V] {
	return &Map[K, V]{
		tree: btree.NewG(cDegree, func(a, b entry[K, V]) bool {
			return cmp.Less(a.key, b.key)
		}),
	}
}

func isNaN[K constraints.Float](key K) bool {
	return math.IsNaN(float64(key))
}

//Set inserts the value or replaces the value already stored under the key
func (m *Map[K, V]) Set(key K, value V) error {
	if isNaN(key) {
		return ErrNaNKey
	}
	m.tree.ReplaceOrInsert(entry[K, V]{key: key, value: value})
	return nil
}

//Get returns the value stored under the key
func (m *Map[K, V]) Get(key K) (V, bool) {
	if isNaN(key) {
		var zero V
		return zero, false
	}
	e, ok := m.tree.Get(entry[K, V]{key: key})
	return e.value, ok
}

//Floor returns the entry with the greatest key less than or equal to the key
func (m *Map[K, V]) Floor(key K) (K, V, bool) {
	var found entry[K, V]
	ok := false
	if !isNaN(key) {
		m.tree.DescendLessOrEqual(entry[K, V]{key: key}, func(e entry[K, V]) bool {
			found, ok = e, true
			return false
		})
	}
	return found.key, found.value, ok
}

//Len returns the number of entries
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

//Keys returns the keys in ascending order
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.tree.Len())
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}

//Values returns the values in the key order
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.tree.Len())
	for _, v := range m.All() {
		values = append(values, v)
	}
	return values
}

//All iterates over the entries in ascending key order
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.tree.Ascend(func(e entry[K, V]) bool {
			return yield(e.key, e.value)
		})
	}
}
