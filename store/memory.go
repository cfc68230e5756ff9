package store

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"gorm.io/gorm/schema"
)

// MemoryCollection keeps records of T in process memory in insertion order.
// Filter and set keys are resolved to struct fields with gorm's schema
// parser, so the same column names work against both backends.
type MemoryCollection[T any] struct {
	mu     sync.RWMutex
	name   string
	schema *schema.Schema
	docs   []T
}

var schemaCache = &sync.Map{}

func NewMemoryCollection[T any](name string) (*MemoryCollection[T], error) {
	sch, err := schema.Parse(new(T), schemaCache, schema.NamingStrategy{})
	if err != nil {
		return nil, fmt.Errorf("parse schema for %s: %w", name, err)
	}
	return &MemoryCollection[T]{name: name, schema: sch}, nil
}

func (c *MemoryCollection[T]) Name() string {
	return c.name
}

func (c *MemoryCollection[T]) field(column string) (*schema.Field, error) {
	f := c.schema.LookUpField(column)
	if f == nil {
		return nil, fmt.Errorf("%w %q on %s", ErrUnknownColumn, column, c.name)
	}
	return f, nil
}

func (c *MemoryCollection[T]) matches(doc *T, filter Filter) (bool, error) {
	rv := reflect.ValueOf(doc).Elem()
	for column, want := range filter {
		f, err := c.field(column)
		if err != nil {
			return false, err
		}
		got := rv.FieldByIndex(f.StructField.Index)
		wv := reflect.ValueOf(want)
		if !wv.IsValid() {
			if !got.IsZero() {
				return false, nil
			}
			continue
		}
		if wv.Type() != got.Type() {
			if !wv.Type().ConvertibleTo(got.Type()) {
				return false, nil
			}
			wv = wv.Convert(got.Type())
		}
		if !reflect.DeepEqual(got.Interface(), wv.Interface()) {
			return false, nil
		}
	}
	return true, nil
}

func (c *MemoryCollection[T]) apply(doc *T, set map[string]interface{}) error {
	rv := reflect.ValueOf(doc).Elem()
	for column, value := range set {
		f, err := c.field(column)
		if err != nil {
			return err
		}
		if err := assign(rv.FieldByIndex(f.StructField.Index), value); err != nil {
			return fmt.Errorf("set %s on %s: %w", column, c.name, err)
		}
	}
	return nil
}

// assign stores v into dst, converting named types and wrapping values into
// pointer fields as needed.
func assign(dst reflect.Value, v interface{}) error {
	src := reflect.ValueOf(v)
	if !src.IsValid() {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}
	switch {
	case src.Type().AssignableTo(dst.Type()):
		dst.Set(src)
	case src.Type().ConvertibleTo(dst.Type()):
		dst.Set(src.Convert(dst.Type()))
	case dst.Kind() == reflect.Ptr && src.Type().ConvertibleTo(dst.Type().Elem()):
		p := reflect.New(dst.Type().Elem())
		p.Elem().Set(src.Convert(dst.Type().Elem()))
		dst.Set(p)
	default:
		return fmt.Errorf("cannot assign %s to %s", src.Type(), dst.Type())
	}
	return nil
}

// detach copies the top-level slice and pointer fields of doc, so stored
// records and the values handed to callers never share memory.
func detach[T any](doc T) T {
	rv := reflect.ValueOf(&doc).Elem()
	for i := 0; i < rv.NumField(); i++ {
		fv := rv.Field(i)
		if !fv.CanSet() {
			continue
		}
		switch fv.Kind() {
		case reflect.Slice:
			if fv.IsNil() {
				continue
			}
			cp := reflect.MakeSlice(fv.Type(), fv.Len(), fv.Len())
			reflect.Copy(cp, fv)
			fv.Set(cp)
		case reflect.Ptr:
			if fv.IsNil() {
				continue
			}
			cp := reflect.New(fv.Type().Elem())
			cp.Elem().Set(fv.Elem())
			fv.Set(cp)
		}
	}
	return doc
}

func (c *MemoryCollection[T]) InsertOne(ctx context.Context, doc *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs = append(c.docs, detach(*doc))
	return nil
}

func (c *MemoryCollection[T]) InsertMany(ctx context.Context, docs []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, doc := range docs {
		c.docs = append(c.docs, detach(doc))
	}
	return nil
}

func (c *MemoryCollection[T]) FindOne(ctx context.Context, filter Filter) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.docs {
		ok, err := c.matches(&c.docs[i], filter)
		if err != nil {
			return nil, wrap("FindOne", c.name, err)
		}
		if ok {
			doc := detach(c.docs[i])
			return &doc, nil
		}
	}
	return nil, ErrNotFound
}

func (c *MemoryCollection[T]) Find(ctx context.Context, filter Filter, limit int) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	docs := make([]T, 0)
	for i := range c.docs {
		if limit > 0 && len(docs) >= limit {
			break
		}
		ok, err := c.matches(&c.docs[i], filter)
		if err != nil {
			return nil, wrap("Find", c.name, err)
		}
		if ok {
			docs = append(docs, detach(c.docs[i]))
		}
	}
	return docs, nil
}

func (c *MemoryCollection[T]) UpdateOne(ctx context.Context, filter Filter, set map[string]interface{}) (int64, error) {
	if len(filter) == 0 {
		return 0, wrap("UpdateOne", c.name, ErrEmptyFilter)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.docs {
		ok, err := c.matches(&c.docs[i], filter)
		if err != nil {
			return 0, wrap("UpdateOne", c.name, err)
		}
		if !ok {
			continue
		}
		// Apply to a copy so a failed set leaves the record untouched.
		doc := c.docs[i]
		if err := c.apply(&doc, set); err != nil {
			return 0, wrap("UpdateOne", c.name, err)
		}
		c.docs[i] = detach(doc)
		return 1, nil
	}
	return 0, nil
}

func (c *MemoryCollection[T]) DeleteOne(ctx context.Context, filter Filter) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.docs {
		ok, err := c.matches(&c.docs[i], filter)
		if err != nil {
			return 0, wrap("DeleteOne", c.name, err)
		}
		if ok {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (c *MemoryCollection[T]) DeleteMany(ctx context.Context, filter Filter) (int64, error) {
	for column := range filter {
		if _, err := c.field(column); err != nil {
			return 0, wrap("DeleteMany", c.name, err)
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.docs[:0]
	var removed int64
	for i := range c.docs {
		if ok, _ := c.matches(&c.docs[i], filter); ok {
			removed++
			continue
		}
		kept = append(kept, c.docs[i])
	}
	c.docs = kept
	return removed, nil
}
