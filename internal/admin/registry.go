// Package admin serves the management panel API. Resources are
// registered once and the panel generates uniform CRUD routes, record
// actions and XLSX export for each of them.
package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/CodeSmart-NG/school-service/internal/validator"
)

// ErrInvalidRecord marks a create/update body the store rejected. The
// panel maps it to a 400 response.
var ErrInvalidRecord = errors.New("invalid record")

// InvalidRecordError carries the field details of a rejected body.
type InvalidRecordError struct {
	Fields validator.ValidationErrors
}

func (e *InvalidRecordError) Error() string {
	return "invalid record: " + e.Fields.Error()
}

func (e *InvalidRecordError) Unwrap() error { return ErrInvalidRecord }

// Store is the persistence surface a resource exposes to the panel.
// Create and Update take raw JSON so the registry stays independent of
// the concrete record type.
type Store interface {
	List(ctx context.Context) (interface{}, error)
	Get(ctx context.Context, id uint) (interface{}, error)
	Create(ctx context.Context, body []byte) (interface{}, error)
	Update(ctx context.Context, id uint, body []byte) (interface{}, error)
	Delete(ctx context.Context, id uint) error
}

// Action is a custom per-record mutation, invoked as
// POST /resources/{resource}/{id}/actions/{name}.
type Action struct {
	Name    string
	Title   string
	Handler func(ctx context.Context, id uint) error
}

// Resource describes one admin-managed entity.
type Resource struct {
	// Name is the URL slug, e.g. "messages".
	Name  string
	Title string
	Store Store

	Actions []Action

	// Export configuration. Headers name the XLSX columns; Rows
	// flattens the List result into cell values.
	ExportHeaders []string
	ExportRows    func(records interface{}) [][]interface{}
}

func (r *Resource) action(name string) (Action, bool) {
	for _, a := range r.Actions {
		if a.Name == name {
			return a, true
		}
	}
	return Action{}, false
}

// Registry holds the registered resources in registration order.
type Registry struct {
	resources []*Resource
	byName    map[string]*Resource
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Resource)}
}

func (r *Registry) Register(res *Resource) error {
	if res.Name == "" || res.Store == nil {
		return fmt.Errorf("resource needs a name and a store")
	}
	if _, exists := r.byName[res.Name]; exists {
		return fmt.Errorf("resource %q already registered", res.Name)
	}
	r.resources = append(r.resources, res)
	r.byName[res.Name] = res
	return nil
}

func (r *Registry) Get(name string) (*Resource, bool) {
	res, ok := r.byName[name]
	return res, ok
}

func (r *Registry) All() []*Resource {
	return r.resources
}

// ===== GENERIC STORE =====

// crudStore adapts a typed repository to the Store interface. Update
// decodes the body over the stored record, so partial bodies only
// touch the fields they name; the validate hook then checks the merged
// state, never the partial body.
type crudStore[T any] struct {
	list     func(ctx context.Context) ([]*T, error)
	get      func(ctx context.Context, id uint) (*T, error)
	create   func(ctx context.Context, record *T) error
	update   func(ctx context.Context, record *T) error
	delete   func(ctx context.Context, id uint) error
	validate func(body []byte) error
}

// NewStore builds a Store from typed repository callbacks. validate
// may be nil for resources without admin input rules.
func NewStore[T any](
	validate func(body []byte) error,
	list func(ctx context.Context) ([]*T, error),
	get func(ctx context.Context, id uint) (*T, error),
	create func(ctx context.Context, record *T) error,
	update func(ctx context.Context, record *T) error,
	del func(ctx context.Context, id uint) error,
) Store {
	return &crudStore[T]{validate: validate, list: list, get: get, create: create, update: update, delete: del}
}

func (s *crudStore[T]) List(ctx context.Context) (interface{}, error) {
	records, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []*T{}
	}
	return records, nil
}

func (s *crudStore[T]) Get(ctx context.Context, id uint) (interface{}, error) {
	return s.get(ctx, id)
}

func (s *crudStore[T]) Create(ctx context.Context, body []byte) (interface{}, error) {
	if s.validate != nil {
		if err := s.validate(body); err != nil {
			return nil, err
		}
	}
	var record T
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if err := s.create(ctx, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *crudStore[T]) Update(ctx context.Context, id uint, body []byte) (interface{}, error) {
	record, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if s.validate != nil {
		merged, err := json.Marshal(record)
		if err != nil {
			return nil, fmt.Errorf("encode merged record: %w", err)
		}
		if err := s.validate(merged); err != nil {
			return nil, err
		}
	}
	if err := s.update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *crudStore[T]) Delete(ctx context.Context, id uint) error {
	return s.delete(ctx, id)
}
