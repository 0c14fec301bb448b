// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/promptascent/ent/pointsevent"
)

// PointsEventCreate is the builder for creating a PointsEvent entity.
type PointsEventCreate struct {
	config
	mutation *PointsEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PointsEventCreate) SetSequence(v int64) *PointsEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PointsEventCreate) SetTimestamp(v time.Time) *PointsEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PointsEventCreate) SetNillableTimestamp(v *time.Time) *PointsEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PointsEventCreate) SetUserID(v string) *PointsEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDelta sets the "delta" field.
func (_c *PointsEventCreate) SetDelta(v int) *PointsEventCreate {
	_c.mutation.SetDelta(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *PointsEventCreate) SetReason(v string) *PointsEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *PointsEventCreate) SetRunID(v string) *PointsEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_c *PointsEventCreate) SetNillableRunID(v *string) *PointsEventCreate {
	if v != nil {
		_c.SetRunID(*v)
	}
	return _c
}

// Mutation returns the PointsEventMutation object of the builder.
func (_c *PointsEventCreate) Mutation() *PointsEventMutation {
	return _c.mutation
}

// Save creates the PointsEvent in the database.
func (_c *PointsEventCreate) Save(ctx context.Context) (*PointsEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PointsEventCreate) SaveX(ctx context.Context) *PointsEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PointsEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PointsEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PointsEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := pointsevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PointsEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PointsEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PointsEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PointsEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := pointsevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PointsEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Delta(); !ok {
		return &ValidationError{Name: "delta", err: errors.New(`ent: missing required field "PointsEvent.delta"`)}
	}
	if v, ok := _c.mutation.Delta(); ok {
		if err := pointsevent.DeltaValidator(v); err != nil {
			return &ValidationError{Name: "delta", err: fmt.Errorf(`ent: validator failed for field "PointsEvent.delta": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "PointsEvent.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := pointsevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "PointsEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_c *PointsEventCreate) sqlSave(ctx context.Context) (*PointsEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PointsEventCreate) createSpec() (*PointsEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PointsEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pointsevent.Table, sqlgraph.NewFieldSpec(pointsevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(pointsevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(pointsevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(pointsevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Delta(); ok {
		_spec.SetField(pointsevent.FieldDelta, field.TypeInt, value)
		_node.Delta = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(pointsevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(pointsevent.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	return _node, _spec
}

// PointsEventCreateBulk is the builder for creating many PointsEvent entities in bulk.
type PointsEventCreateBulk struct {
	config
	err      error
	builders []*PointsEventCreate
}

// Save creates the PointsEvent entities in the database.
func (_c *PointsEventCreateBulk) Save(ctx context.Context) ([]*PointsEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PointsEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PointsEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PointsEventCreateBulk) SaveX(ctx context.Context) []*PointsEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PointsEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PointsEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
