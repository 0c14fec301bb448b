// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/promptascent/ent/predicate"
	"github.com/abhisek/promptascent/ent/runevent"
)

// RunEventUpdate is the builder for updating RunEvent entities.
type RunEventUpdate struct {
	config
	hooks    []Hook
	mutation *RunEventMutation
}

// Where appends a list predicates to the RunEventUpdate builder.
func (_u *RunEventUpdate) Where(ps ...predicate.RunEvent) *RunEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *RunEventUpdate) SetRunID(v string) *RunEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableRunID(v *string) *RunEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *RunEventUpdate) SetUserID(v string) *RunEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableUserID(v *string) *RunEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *RunEventUpdate) SetLessonID(v string) *RunEventUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableLessonID(v *string) *RunEventUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *RunEventUpdate) SetAction(v string) *RunEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableAction(v *string) *RunEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetItemsTotal sets the "items_total" field.
func (_u *RunEventUpdate) SetItemsTotal(v int) *RunEventUpdate {
	_u.mutation.ResetItemsTotal()
	_u.mutation.SetItemsTotal(v)
	return _u
}

// SetNillableItemsTotal sets the "items_total" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableItemsTotal(v *int) *RunEventUpdate {
	if v != nil {
		_u.SetItemsTotal(*v)
	}
	return _u
}

// AddItemsTotal adds value to the "items_total" field.
func (_u *RunEventUpdate) AddItemsTotal(v int) *RunEventUpdate {
	_u.mutation.AddItemsTotal(v)
	return _u
}

// SetItemsCorrect sets the "items_correct" field.
func (_u *RunEventUpdate) SetItemsCorrect(v int) *RunEventUpdate {
	_u.mutation.ResetItemsCorrect()
	_u.mutation.SetItemsCorrect(v)
	return _u
}

// SetNillableItemsCorrect sets the "items_correct" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableItemsCorrect(v *int) *RunEventUpdate {
	if v != nil {
		_u.SetItemsCorrect(*v)
	}
	return _u
}

// AddItemsCorrect adds value to the "items_correct" field.
func (_u *RunEventUpdate) AddItemsCorrect(v int) *RunEventUpdate {
	_u.mutation.AddItemsCorrect(v)
	return _u
}

// SetPointsEarned sets the "points_earned" field.
func (_u *RunEventUpdate) SetPointsEarned(v int) *RunEventUpdate {
	_u.mutation.ResetPointsEarned()
	_u.mutation.SetPointsEarned(v)
	return _u
}

// SetNillablePointsEarned sets the "points_earned" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillablePointsEarned(v *int) *RunEventUpdate {
	if v != nil {
		_u.SetPointsEarned(*v)
	}
	return _u
}

// AddPointsEarned adds value to the "points_earned" field.
func (_u *RunEventUpdate) AddPointsEarned(v int) *RunEventUpdate {
	_u.mutation.AddPointsEarned(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *RunEventUpdate) SetDurationSecs(v int) *RunEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableDurationSecs(v *int) *RunEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *RunEventUpdate) AddDurationSecs(v int) *RunEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the RunEventMutation object of the builder.
func (_u *RunEventUpdate) Mutation() *RunEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunEventUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := runevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "RunEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := runevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "RunEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := runevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "RunEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := runevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "RunEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *RunEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runevent.Table, runevent.Columns, sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(runevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(runevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(runevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(runevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemsTotal(); ok {
		_spec.SetField(runevent.FieldItemsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsTotal(); ok {
		_spec.AddField(runevent.FieldItemsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemsCorrect(); ok {
		_spec.SetField(runevent.FieldItemsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsCorrect(); ok {
		_spec.AddField(runevent.FieldItemsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PointsEarned(); ok {
		_spec.SetField(runevent.FieldPointsEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsEarned(); ok {
		_spec.AddField(runevent.FieldPointsEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(runevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(runevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunEventUpdateOne is the builder for updating a single RunEvent entity.
type RunEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *RunEventUpdateOne) SetRunID(v string) *RunEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableRunID(v *string) *RunEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *RunEventUpdateOne) SetUserID(v string) *RunEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableUserID(v *string) *RunEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *RunEventUpdateOne) SetLessonID(v string) *RunEventUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableLessonID(v *string) *RunEventUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *RunEventUpdateOne) SetAction(v string) *RunEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableAction(v *string) *RunEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetItemsTotal sets the "items_total" field.
func (_u *RunEventUpdateOne) SetItemsTotal(v int) *RunEventUpdateOne {
	_u.mutation.ResetItemsTotal()
	_u.mutation.SetItemsTotal(v)
	return _u
}

// SetNillableItemsTotal sets the "items_total" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableItemsTotal(v *int) *RunEventUpdateOne {
	if v != nil {
		_u.SetItemsTotal(*v)
	}
	return _u
}

// AddItemsTotal adds value to the "items_total" field.
func (_u *RunEventUpdateOne) AddItemsTotal(v int) *RunEventUpdateOne {
	_u.mutation.AddItemsTotal(v)
	return _u
}

// SetItemsCorrect sets the "items_correct" field.
func (_u *RunEventUpdateOne) SetItemsCorrect(v int) *RunEventUpdateOne {
	_u.mutation.ResetItemsCorrect()
	_u.mutation.SetItemsCorrect(v)
	return _u
}

// SetNillableItemsCorrect sets the "items_correct" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableItemsCorrect(v *int) *RunEventUpdateOne {
	if v != nil {
		_u.SetItemsCorrect(*v)
	}
	return _u
}

// AddItemsCorrect adds value to the "items_correct" field.
func (_u *RunEventUpdateOne) AddItemsCorrect(v int) *RunEventUpdateOne {
	_u.mutation.AddItemsCorrect(v)
	return _u
}

// SetPointsEarned sets the "points_earned" field.
func (_u *RunEventUpdateOne) SetPointsEarned(v int) *RunEventUpdateOne {
	_u.mutation.ResetPointsEarned()
	_u.mutation.SetPointsEarned(v)
	return _u
}

// SetNillablePointsEarned sets the "points_earned" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillablePointsEarned(v *int) *RunEventUpdateOne {
	if v != nil {
		_u.SetPointsEarned(*v)
	}
	return _u
}

// AddPointsEarned adds value to the "points_earned" field.
func (_u *RunEventUpdateOne) AddPointsEarned(v int) *RunEventUpdateOne {
	_u.mutation.AddPointsEarned(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *RunEventUpdateOne) SetDurationSecs(v int) *RunEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableDurationSecs(v *int) *RunEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *RunEventUpdateOne) AddDurationSecs(v int) *RunEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the RunEventMutation object of the builder.
func (_u *RunEventUpdateOne) Mutation() *RunEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RunEventUpdate builder.
func (_u *RunEventUpdateOne) Where(ps ...predicate.RunEvent) *RunEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunEventUpdateOne) Select(field string, fields ...string) *RunEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RunEvent entity.
func (_u *RunEventUpdateOne) Save(ctx context.Context) (*RunEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunEventUpdateOne) SaveX(ctx context.Context) *RunEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunEventUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := runevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "RunEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := runevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "RunEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := runevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "RunEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := runevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "RunEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *RunEventUpdateOne) sqlSave(ctx context.Context) (_node *RunEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runevent.Table, runevent.Columns, sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RunEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runevent.FieldID)
		for _, f := range fields {
			if !runevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != runevent.FieldID {
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
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(runevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(runevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(runevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(runevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemsTotal(); ok {
		_spec.SetField(runevent.FieldItemsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsTotal(); ok {
		_spec.AddField(runevent.FieldItemsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemsCorrect(); ok {
		_spec.SetField(runevent.FieldItemsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsCorrect(); ok {
		_spec.AddField(runevent.FieldItemsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PointsEarned(); ok {
		_spec.SetField(runevent.FieldPointsEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsEarned(); ok {
		_spec.AddField(runevent.FieldPointsEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(runevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(runevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &RunEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
