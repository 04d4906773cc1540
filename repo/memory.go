package repo

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"atelier/apperrors"
)

// Memory is an in-memory Store used wherever a test needs a repository
// without a running database. It matches and merges fields by bson tag so it
// behaves like the Mongo implementation for the queries this codebase makes.
type Memory[T any] struct {
	mu   sync.Mutex
	docs []T
	less func(a, b T) bool
}

// NewMemory returns an empty store. less orders List results; nil keeps
// insertion order.
func NewMemory[T any](less func(a, b T) bool) *Memory[T] {
	return &Memory[T]{less: less}
}

func (m *Memory[T]) List(ctx context.Context, filter Filter) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []T{}
	for _, d := range m.docs {
		if matches(d, filter) {
			out = append(out, d)
		}
	}
	if m.less != nil {
		sort.SliceStable(out, func(i, j int) bool { return m.less(out[i], out[j]) })
	}
	return out, nil
}

func (m *Memory[T]) GetByID(ctx context.Context, id string) (T, error) {
	return m.GetByField(ctx, "id", id)
}

func (m *Memory[T]) GetByField(ctx context.Context, field, value string) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, d := range m.docs {
		if matches(d, Filter{field: value}) {
			return d, nil
		}
	}
	var zero T
	return zero, apperrors.ErrNotFound
}

func (m *Memory[T]) Create(ctx context.Context, doc T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.docs = append(m.docs, doc)
	return nil
}

func (m *Memory[T]) Update(ctx context.Context, id string, fields Filter) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, d := range m.docs {
		if matches(d, Filter{"id": id}) {
			merged, err := merge(d, fields)
			if err != nil {
				return d, err
			}
			m.docs[i] = merged
			return merged, nil
		}
	}
	var zero T
	return zero, apperrors.ErrNotFound
}

func (m *Memory[T]) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, d := range m.docs {
		if matches(d, Filter{"id": id}) {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (m *Memory[T]) Count(ctx context.Context, filter Filter) (int64, error) {
	docs, err := m.List(ctx, filter)
	if err != nil {
		return 0, err
	}
	return int64(len(docs)), nil
}

func (m *Memory[T]) InsertMany(ctx context.Context, docs []T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.docs = append(m.docs, docs...)
	return nil
}

func matches[T any](doc T, filter Filter) bool {
	for field, want := range filter {
		got, ok := fieldByTag(doc, field)
		if !ok || fmt.Sprint(got.Interface()) != fmt.Sprint(want) {
			return false
		}
	}
	return true
}

func merge[T any](doc T, fields Filter) (T, error) {
	v := reflect.New(reflect.TypeOf(doc))
	v.Elem().Set(reflect.ValueOf(doc))

	for field, val := range fields {
		fv, ok := fieldByTag(v.Elem().Interface(), field)
		if !ok {
			continue
		}
		target := v.Elem().FieldByName(fieldName(reflect.TypeOf(doc), field))
		rv := reflect.ValueOf(val)
		if !rv.Type().ConvertibleTo(target.Type()) {
			return doc, fmt.Errorf("cannot set field %q (%s) from %T", field, fv.Type(), val)
		}
		target.Set(rv.Convert(target.Type()))
	}
	return v.Elem().Interface().(T), nil
}

func fieldByTag(doc any, tag string) (reflect.Value, bool) {
	v := reflect.ValueOf(doc)
	name := fieldName(v.Type(), tag)
	if name == "" {
		return reflect.Value{}, false
	}
	return v.FieldByName(name), true
}

func fieldName(t reflect.Type, tag string) string {
	for i := 0; i < t.NumField(); i++ {
		bsonTag := strings.Split(t.Field(i).Tag.Get("bson"), ",")[0]
		if bsonTag == tag {
			return t.Field(i).Name
		}
	}
	return ""
}
