// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/promptascent/ent/pointsevent"
	"github.com/abhisek/promptascent/ent/predicate"
)

// PointsEventUpdate is the builder for updating PointsEvent entities.
type PointsEventUpdate struct {
	config
	hooks    []Hook
	mutation *PointsEventMutation
}

// Where appends a list predicates to the PointsEventUpdate builder.
func (_u *PointsEventUpdate) Where(ps ...predicate.PointsEvent) *PointsEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PointsEventUpdate) SetUserID(v string) *PointsEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PointsEventUpdate) SetNillableUserID(v *string) *PointsEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDelta sets the "delta" field.
func (_u *PointsEventUpdate) SetDelta(v int) *PointsEventUpdate {
	_u.mutation.ResetDelta()
	_u.mutation.SetDelta(v)
	return _u
}

// SetNillableDelta sets the "delta" field if the given value is not nil.
func (_u *PointsEventUpdate) SetNillableDelta(v *int) *PointsEventUpdate {
	if v != nil {
		_u.SetDelta(*v)
	}
	return _u
}

// AddDelta adds value to the "delta" field.
func (_u *PointsEventUpdate) AddDelta(v int) *PointsEventUpdate {
	_u.mutation.AddDelta(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *PointsEventUpdate) SetReason(v string) *PointsEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *PointsEventUpdate) SetNillableReason(v *string) *PointsEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *PointsEventUpdate) SetRunID(v string) *PointsEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *PointsEventUpdate) SetNillableRunID(v *string) *PointsEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *PointsEventUpdate) ClearRunID() *PointsEventUpdate {
	_u.mutation.ClearRunID()
	return _u
}

// Mutation returns the PointsEventMutation object of the builder.
func (_u *PointsEventUpdate) Mutation() *PointsEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PointsEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PointsEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PointsEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PointsEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PointsEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := pointsevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PointsEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Delta(); ok {
		if err := pointsevent.DeltaValidator(v); err != nil {
			return &ValidationError{Name: "delta", err: fmt.Errorf(`ent: validator failed for field "PointsEvent.delta": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := pointsevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "PointsEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *PointsEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pointsevent.Table, pointsevent.Columns, sqlgraph.NewFieldSpec(pointsevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(pointsevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Delta(); ok {
		_spec.SetField(pointsevent.FieldDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelta(); ok {
		_spec.AddField(pointsevent.FieldDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(pointsevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(pointsevent.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(pointsevent.FieldRunID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pointsevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PointsEventUpdateOne is the builder for updating a single PointsEvent entity.
type PointsEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PointsEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *PointsEventUpdateOne) SetUserID(v string) *PointsEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PointsEventUpdateOne) SetNillableUserID(v *string) *PointsEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDelta sets the "delta" field.
func (_u *PointsEventUpdateOne) SetDelta(v int) *PointsEventUpdateOne {
	_u.mutation.ResetDelta()
	_u.mutation.SetDelta(v)
	return _u
}

// SetNillableDelta sets the "delta" field if the given value is not nil.
func (_u *PointsEventUpdateOne) SetNillableDelta(v *int) *PointsEventUpdateOne {
	if v != nil {
		_u.SetDelta(*v)
	}
	return _u
}

// AddDelta adds value to the "delta" field.
func (_u *PointsEventUpdateOne) AddDelta(v int) *PointsEventUpdateOne {
	_u.mutation.AddDelta(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *PointsEventUpdateOne) SetReason(v string) *PointsEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *PointsEventUpdateOne) SetNillableReason(v *string) *PointsEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *PointsEventUpdateOne) SetRunID(v string) *PointsEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *PointsEventUpdateOne) SetNillableRunID(v *string) *PointsEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *PointsEventUpdateOne) ClearRunID() *PointsEventUpdateOne {
	_u.mutation.ClearRunID()
	return _u
}

// Mutation returns the PointsEventMutation object of the builder.
func (_u *PointsEventUpdateOne) Mutation() *PointsEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PointsEventUpdate builder.
func (_u *PointsEventUpdateOne) Where(ps ...predicate.PointsEvent) *PointsEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PointsEventUpdateOne) Select(field string, fields ...string) *PointsEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PointsEvent entity.
func (_u *PointsEventUpdateOne) Save(ctx context.Context) (*PointsEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PointsEventUpdateOne) SaveX(ctx context.Context) *PointsEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PointsEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PointsEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PointsEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := pointsevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PointsEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Delta(); ok {
		if err := pointsevent.DeltaValidator(v); err != nil {
			return &ValidationError{Name: "delta", err: fmt.Errorf(`ent: validator failed for field "PointsEvent.delta": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := pointsevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "PointsEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *PointsEventUpdateOne) sqlSave(ctx context.Context) (_node *PointsEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pointsevent.Table, pointsevent.Columns, sqlgraph.NewFieldSpec(pointsevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PointsEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pointsevent.FieldID)
		for _, f := range fields {
			if !pointsevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pointsevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(pointsevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Delta(); ok {
		_spec.SetField(pointsevent.FieldDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelta(); ok {
		_spec.AddField(pointsevent.FieldDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(pointsevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(pointsevent.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(pointsevent.FieldRunID, field.TypeString)
	}
	_node = &PointsEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pointsevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
