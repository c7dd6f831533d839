package signal

// BagKey identifies an item inserted into a Bag. Keys are never reused
// within a bag's lifetime, so a key stays valid for removal regardless
// of other insertions and removals.
type BagKey int64

// Bag is an unordered-removal collection that preserves insertion order
// for iteration and hands out stable keys on insertion.
//
// Bag is not synchronized. Every owner guards its bag with its own lock
// and fans out over a Copy taken under that lock, so that a callback
// removing itself mid-iteration never mutates the slice being iterated.
type Bag[T any] struct {
	nextKey BagKey
	items   []bagItem[T]
}

type bagItem[T any] struct {
	key  BagKey
	item T
}

// Add stores item and returns its key.
func (b *Bag[T]) Add(item T) BagKey {
	key := b.nextKey
	b.nextKey++
	b.items = append(b.items, bagItem[T]{key: key, item: item})
	return key
}

// Remove deletes the item stored under key, if present.
func (b *Bag[T]) Remove(key BagKey) {
	for i, entry := range b.items {
		if entry.key == key {
			b.items = append(b.items[:i], b.items[i+1:]...)
			return
		}
	}
}

// Copy returns a point-in-time snapshot of the items in insertion order.
func (b *Bag[T]) Copy() []T {
	if len(b.items) == 0 {
		return nil
	}
	items := make([]T, len(b.items))
	for i, entry := range b.items {
		items[i] = entry.item
	}
	return items
}

// IsEmpty reports whether the bag holds no items.
func (b *Bag[T]) IsEmpty() bool {
	return len(b.items) == 0
}

// Len returns the number of items currently stored.
func (b *Bag[T]) Len() int {
	return len(b.items)
}
