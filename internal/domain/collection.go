package domain

import (
	"encoding/json"
	"fmt"
)

// Collection отображает id в значение и сохраняет порядок вставки.
// Нулевое значение готово к использованию.
type Collection[T any] struct {
	keys   []string
	values map[string]T
}

// NewCollection создаёт пустую коллекцию.
func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{values: make(map[string]T)}
}

// Has сообщает, есть ли запись с ключом.
func (c *Collection[T]) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// Get возвращает значение по ключу.
func (c *Collection[T]) Get(key string) (T, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Put вставляет значение в конец или заменяет существующее на его же месте.
func (c *Collection[T]) Put(key string, value T) {
	if c.values == nil {
		c.values = make(map[string]T)
	}
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

// Forget удаляет запись; отсутствующий ключ игнорируется.
func (c *Collection[T]) Forget(key string) {
	if _, ok := c.values[key]; !ok {
		return
	}
	delete(c.values, key)
	for i, k := range c.keys {
		if k == key {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
}

// Len возвращает количество записей.
func (c *Collection[T]) Len() int {
	return len(c.keys)
}

// Keys возвращает ключи в порядке вставки.
func (c *Collection[T]) Keys() []string {
	return append([]string(nil), c.keys...)
}

// Values возвращает значения в порядке вставки.
func (c *Collection[T]) Values() []T {
	result := make([]T, 0, len(c.keys))
	for _, k := range c.keys {
		result = append(result, c.values[k])
	}
	return result
}

type collectionEntry[T any] struct {
	Key   string `json:"key"`
	Value T      `json:"value"`
}

// MarshalJSON кодирует коллекцию массивом пар, чтобы порядок пережил любое хранилище.
func (c *Collection[T]) MarshalJSON() ([]byte, error) {
	entries := make([]collectionEntry[T], 0, len(c.keys))
	for _, k := range c.keys {
		entries = append(entries, collectionEntry[T]{Key: k, Value: c.values[k]})
	}
	return json.Marshal(entries)
}

// UnmarshalJSON восстанавливает коллекцию из массива пар.
func (c *Collection[T]) UnmarshalJSON(data []byte) error {
	var entries []collectionEntry[T]
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("decode collection: %w", err)
	}
	c.keys = make([]string, 0, len(entries))
	c.values = make(map[string]T, len(entries))
	for _, e := range entries {
		if _, dup := c.values[e.Key]; dup {
			return fmt.Errorf("decode collection: duplicate key %q", e.Key)
		}
		c.keys = append(c.keys, e.Key)
		c.values[e.Key] = e.Value
	}
	return nil
}
