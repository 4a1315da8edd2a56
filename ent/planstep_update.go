// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/finovant/macaw/ent/planstep"
	"github.com/finovant/macaw/ent/predicate"
)

// PlanStepUpdate is the builder for updating PlanStep entities.
type PlanStepUpdate struct {
	config
	hooks    []Hook
	mutation *PlanStepMutation
}

// Where appends a list predicates to the PlanStepUpdate builder.
func (_u *PlanStepUpdate) Where(ps ...predicate.PlanStep) *PlanStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInterruptBefore sets the "interrupt_before" field.
func (_u *PlanStepUpdate) SetInterruptBefore(v bool) *PlanStepUpdate {
	_u.mutation.SetInterruptBefore(v)
	return _u
}

// SetNillableInterruptBefore sets the "interrupt_before" field if the given value is not nil.
func (_u *PlanStepUpdate) SetNillableInterruptBefore(v *bool) *PlanStepUpdate {
	if v != nil {
		_u.SetInterruptBefore(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PlanStepUpdate) SetStatus(v planstep.Status) *PlanStepUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PlanStepUpdate) SetNillableStatus(v *planstep.Status) *PlanStepUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *PlanStepUpdate) SetSummary(v string) *PlanStepUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *PlanStepUpdate) SetNillableSummary(v *string) *PlanStepUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *PlanStepUpdate) ClearSummary() *PlanStepUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetOutput sets the "output" field.
func (_u *PlanStepUpdate) SetOutput(v map[string]interface{}) *PlanStepUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *PlanStepUpdate) ClearOutput() *PlanStepUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PlanStepUpdate) SetErrorMessage(v string) *PlanStepUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PlanStepUpdate) SetNillableErrorMessage(v *string) *PlanStepUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PlanStepUpdate) ClearErrorMessage() *PlanStepUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PlanStepUpdate) SetStartedAt(v time.Time) *PlanStepUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PlanStepUpdate) SetNillableStartedAt(v *time.Time) *PlanStepUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PlanStepUpdate) ClearStartedAt() *PlanStepUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PlanStepUpdate) SetCompletedAt(v time.Time) *PlanStepUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PlanStepUpdate) SetNillableCompletedAt(v *time.Time) *PlanStepUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PlanStepUpdate) ClearCompletedAt() *PlanStepUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *PlanStepUpdate) SetDurationMs(v int64) *PlanStepUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *PlanStepUpdate) SetNillableDurationMs(v *int64) *PlanStepUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *PlanStepUpdate) AddDurationMs(v int64) *PlanStepUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *PlanStepUpdate) ClearDurationMs() *PlanStepUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// Mutation returns the PlanStepMutation object of the builder.
func (_u *PlanStepUpdate) Mutation() *PlanStepMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlanStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlanStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanStepUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := planstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PlanStep.status": %w`, err)}
		}
	}
	if _u.mutation.PlanCleared() && len(_u.mutation.PlanIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PlanStep.plan"`)
	}
	return nil
}

func (_u *PlanStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(planstep.Table, planstep.Columns, sqlgraph.NewFieldSpec(planstep.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InterruptBefore(); ok {
		_spec.SetField(planstep.FieldInterruptBefore, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(planstep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(planstep.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(planstep.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(planstep.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(planstep.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(planstep.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(planstep.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(planstep.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(planstep.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(planstep.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(planstep.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(planstep.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(planstep.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(planstep.FieldDurationMs, field.TypeInt64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{planstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlanStepUpdateOne is the builder for updating a single PlanStep entity.
type PlanStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlanStepMutation
}

// SetInterruptBefore sets the "interrupt_before" field.
func (_u *PlanStepUpdateOne) SetInterruptBefore(v bool) *PlanStepUpdateOne {
	_u.mutation.SetInterruptBefore(v)
	return _u
}

// SetNillableInterruptBefore sets the "interrupt_before" field if the given value is not nil.
func (_u *PlanStepUpdateOne) SetNillableInterruptBefore(v *bool) *PlanStepUpdateOne {
	if v != nil {
		_u.SetInterruptBefore(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PlanStepUpdateOne) SetStatus(v planstep.Status) *PlanStepUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PlanStepUpdateOne) SetNillableStatus(v *planstep.Status) *PlanStepUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *PlanStepUpdateOne) SetSummary(v string) *PlanStepUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *PlanStepUpdateOne) SetNillableSummary(v *string) *PlanStepUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *PlanStepUpdateOne) ClearSummary() *PlanStepUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetOutput sets the "output" field.
func (_u *PlanStepUpdateOne) SetOutput(v map[string]interface{}) *PlanStepUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *PlanStepUpdateOne) ClearOutput() *PlanStepUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PlanStepUpdateOne) SetErrorMessage(v string) *PlanStepUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PlanStepUpdateOne) SetNillableErrorMessage(v *string) *PlanStepUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PlanStepUpdateOne) ClearErrorMessage() *PlanStepUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PlanStepUpdateOne) SetStartedAt(v time.Time) *PlanStepUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PlanStepUpdateOne) SetNillableStartedAt(v *time.Time) *PlanStepUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PlanStepUpdateOne) ClearStartedAt() *PlanStepUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PlanStepUpdateOne) SetCompletedAt(v time.Time) *PlanStepUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PlanStepUpdateOne) SetNillableCompletedAt(v *time.Time) *PlanStepUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PlanStepUpdateOne) ClearCompletedAt() *PlanStepUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *PlanStepUpdateOne) SetDurationMs(v int64) *PlanStepUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *PlanStepUpdateOne) SetNillableDurationMs(v *int64) *PlanStepUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *PlanStepUpdateOne) AddDurationMs(v int64) *PlanStepUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *PlanStepUpdateOne) ClearDurationMs() *PlanStepUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// Mutation returns the PlanStepMutation object of the builder.
func (_u *PlanStepUpdateOne) Mutation() *PlanStepMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlanStepUpdate builder.
func (_u *PlanStepUpdateOne) Where(ps ...predicate.PlanStep) *PlanStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlanStepUpdateOne) Select(field string, fields ...string) *PlanStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlanStep entity.
func (_u *PlanStepUpdateOne) Save(ctx context.Context) (*PlanStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanStepUpdateOne) SaveX(ctx context.Context) *PlanStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlanStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanStepUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := planstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PlanStep.status": %w`, err)}
		}
	}
	if _u.mutation.PlanCleared() && len(_u.mutation.PlanIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PlanStep.plan"`)
	}
	return nil
}

func (_u *PlanStepUpdateOne) sqlSave(ctx context.Context) (_node *PlanStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(planstep.Table, planstep.Columns, sqlgraph.NewFieldSpec(planstep.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlanStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, planstep.FieldID)
		for _, f := range fields {
			if !planstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != planstep.FieldID {
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
	if value, ok := _u.mutation.InterruptBefore(); ok {
		_spec.SetField(planstep.FieldInterruptBefore, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(planstep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(planstep.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(planstep.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(planstep.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(planstep.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(planstep.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(planstep.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(planstep.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(planstep.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(planstep.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(planstep.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(planstep.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(planstep.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(planstep.FieldDurationMs, field.TypeInt64)
	}
	_node = &PlanStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{planstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
