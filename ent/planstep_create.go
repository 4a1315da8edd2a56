// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/finovant/macaw/ent/plan"
	"github.com/finovant/macaw/ent/planstep"
)

// PlanStepCreate is the builder for creating a PlanStep entity.
type PlanStepCreate struct {
	config
	mutation *PlanStepMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPlanID sets the "plan_id" field.
func (_c *PlanStepCreate) SetPlanID(v string) *PlanStepCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetStepIndex sets the "step_index" field.
func (_c *PlanStepCreate) SetStepIndex(v int) *PlanStepCreate {
	_c.mutation.SetStepIndex(v)
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *PlanStepCreate) SetAgentName(v string) *PlanStepCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetInterruptBefore sets the "interrupt_before" field.
func (_c *PlanStepCreate) SetInterruptBefore(v bool) *PlanStepCreate {
	_c.mutation.SetInterruptBefore(v)
	return _c
}

// SetNillableInterruptBefore sets the "interrupt_before" field if the given value is not nil.
func (_c *PlanStepCreate) SetNillableInterruptBefore(v *bool) *PlanStepCreate {
	if v != nil {
		_c.SetInterruptBefore(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PlanStepCreate) SetStatus(v planstep.Status) *PlanStepCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PlanStepCreate) SetNillableStatus(v *planstep.Status) *PlanStepCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *PlanStepCreate) SetSummary(v string) *PlanStepCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *PlanStepCreate) SetNillableSummary(v *string) *PlanStepCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetOutput sets the "output" field.
func (_c *PlanStepCreate) SetOutput(v map[string]interface{}) *PlanStepCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *PlanStepCreate) SetErrorMessage(v string) *PlanStepCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *PlanStepCreate) SetNillableErrorMessage(v *string) *PlanStepCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *PlanStepCreate) SetStartedAt(v time.Time) *PlanStepCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *PlanStepCreate) SetNillableStartedAt(v *time.Time) *PlanStepCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PlanStepCreate) SetCompletedAt(v time.Time) *PlanStepCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PlanStepCreate) SetNillableCompletedAt(v *time.Time) *PlanStepCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *PlanStepCreate) SetDurationMs(v int64) *PlanStepCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *PlanStepCreate) SetNillableDurationMs(v *int64) *PlanStepCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PlanStepCreate) SetCreatedAt(v time.Time) *PlanStepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PlanStepCreate) SetNillableCreatedAt(v *time.Time) *PlanStepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PlanStepCreate) SetID(v string) *PlanStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetPlan sets the "plan" edge to the Plan entity.
func (_c *PlanStepCreate) SetPlan(v *Plan) *PlanStepCreate {
	return _c.SetPlanID(v.ID)
}

// Mutation returns the PlanStepMutation object of the builder.
func (_c *PlanStepCreate) Mutation() *PlanStepMutation {
	return _c.mutation
}

// Save creates the PlanStep in the database.
func (_c *PlanStepCreate) Save(ctx context.Context) (*PlanStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlanStepCreate) SaveX(ctx context.Context) *PlanStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlanStepCreate) defaults() {
	if _, ok := _c.mutation.InterruptBefore(); !ok {
		v := planstep.DefaultInterruptBefore
		_c.mutation.SetInterruptBefore(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := planstep.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := planstep.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlanStepCreate) check() error {
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "PlanStep.plan_id"`)}
	}
	if _, ok := _c.mutation.StepIndex(); !ok {
		return &ValidationError{Name: "step_index", err: errors.New(`ent: missing required field "PlanStep.step_index"`)}
	}
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "PlanStep.agent_name"`)}
	}
	if _, ok := _c.mutation.InterruptBefore(); !ok {
		return &ValidationError{Name: "interrupt_before", err: errors.New(`ent: missing required field "PlanStep.interrupt_before"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PlanStep.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := planstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PlanStep.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PlanStep.created_at"`)}
	}
	if len(_c.mutation.PlanIDs()) == 0 {
		return &ValidationError{Name: "plan", err: errors.New(`ent: missing required edge "PlanStep.plan"`)}
	}
	return nil
}

func (_c *PlanStepCreate) sqlSave(ctx context.Context) (*PlanStep, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected PlanStep.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PlanStepCreate) createSpec() (*PlanStep, *sqlgraph.CreateSpec) {
	var (
		_node = &PlanStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(planstep.Table, sqlgraph.NewFieldSpec(planstep.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StepIndex(); ok {
		_spec.SetField(planstep.FieldStepIndex, field.TypeInt, value)
		_node.StepIndex = value
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(planstep.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.InterruptBefore(); ok {
		_spec.SetField(planstep.FieldInterruptBefore, field.TypeBool, value)
		_node.InterruptBefore = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(planstep.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(planstep.FieldSummary, field.TypeString, value)
		_node.Summary = &value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(planstep.FieldOutput, field.TypeJSON, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(planstep.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(planstep.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(planstep.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(planstep.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(planstep.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.PlanIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   planstep.PlanTable,
			Columns: []string{planstep.PlanColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plan.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PlanID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PlanStep.Create().
//		SetPlanID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlanStepUpsert) {
//			SetPlanID(v+v).
//		}).
//		Exec(ctx)
func (_c *PlanStepCreate) OnConflict(opts ...sql.ConflictOption) *PlanStepUpsertOne {
	_c.conflict = opts
	return &PlanStepUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PlanStep.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlanStepCreate) OnConflictColumns(columns ...string) *PlanStepUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlanStepUpsertOne{
		create: _c,
	}
}

type (
	// PlanStepUpsertOne is the builder for "upsert"-ing
	//  one PlanStep node.
	PlanStepUpsertOne struct {
		create *PlanStepCreate
	}

	// PlanStepUpsert is the "OnConflict" setter.
	PlanStepUpsert struct {
		*sql.UpdateSet
	}
)

// SetInterruptBefore sets the "interrupt_before" field.
func (u *PlanStepUpsert) SetInterruptBefore(v bool) *PlanStepUpsert {
	u.Set(planstep.FieldInterruptBefore, v)
	return u
}

// UpdateInterruptBefore sets the "interrupt_before" field to the value that was provided on create.
func (u *PlanStepUpsert) UpdateInterruptBefore() *PlanStepUpsert {
	u.SetExcluded(planstep.FieldInterruptBefore)
	return u
}

// SetStatus sets the "status" field.
func (u *PlanStepUpsert) SetStatus(v planstep.Status) *PlanStepUpsert {
	u.Set(planstep.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PlanStepUpsert) UpdateStatus() *PlanStepUpsert {
	u.SetExcluded(planstep.FieldStatus)
	return u
}

// SetSummary sets the "summary" field.
func (u *PlanStepUpsert) SetSummary(v string) *PlanStepUpsert {
	u.Set(planstep.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *PlanStepUpsert) UpdateSummary() *PlanStepUpsert {
	u.SetExcluded(planstep.FieldSummary)
	return u
}

// ClearSummary clears the value of the "summary" field.
func (u *PlanStepUpsert) ClearSummary() *PlanStepUpsert {
	u.SetNull(planstep.FieldSummary)
	return u
}

// SetOutput sets the "output" field.
func (u *PlanStepUpsert) SetOutput(v map[string]interface{}) *PlanStepUpsert {
	u.Set(planstep.FieldOutput, v)
	return u
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *PlanStepUpsert) UpdateOutput() *PlanStepUpsert {
	u.SetExcluded(planstep.FieldOutput)
	return u
}

// ClearOutput clears the value of the "output" field.
func (u *PlanStepUpsert) ClearOutput() *PlanStepUpsert {
	u.SetNull(planstep.FieldOutput)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *PlanStepUpsert) SetErrorMessage(v string) *PlanStepUpsert {
	u.Set(planstep.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *PlanStepUpsert) UpdateErrorMessage() *PlanStepUpsert {
	u.SetExcluded(planstep.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *PlanStepUpsert) ClearErrorMessage() *PlanStepUpsert {
	u.SetNull(planstep.FieldErrorMessage)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *PlanStepUpsert) SetStartedAt(v time.Time) *PlanStepUpsert {
	u.Set(planstep.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *PlanStepUpsert) UpdateStartedAt() *PlanStepUpsert {
	u.SetExcluded(planstep.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *PlanStepUpsert) ClearStartedAt() *PlanStepUpsert {
	u.SetNull(planstep.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *PlanStepUpsert) SetCompletedAt(v time.Time) *PlanStepUpsert {
	u.Set(planstep.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PlanStepUpsert) UpdateCompletedAt() *PlanStepUpsert {
	u.SetExcluded(planstep.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PlanStepUpsert) ClearCompletedAt() *PlanStepUpsert {
	u.SetNull(planstep.FieldCompletedAt)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *PlanStepUpsert) SetDurationMs(v int64) *PlanStepUpsert {
	u.Set(planstep.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *PlanStepUpsert) UpdateDurationMs() *PlanStepUpsert {
	u.SetExcluded(planstep.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *PlanStepUpsert) AddDurationMs(v int64) *PlanStepUpsert {
	u.Add(planstep.FieldDurationMs, v)
	return u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *PlanStepUpsert) ClearDurationMs() *PlanStepUpsert {
	u.SetNull(planstep.FieldDurationMs)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PlanStep.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(planstep.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PlanStepUpsertOne) UpdateNewValues() *PlanStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(planstep.FieldID)
		}
		if _, exists := u.create.mutation.PlanID(); exists {
			s.SetIgnore(planstep.FieldPlanID)
		}
		if _, exists := u.create.mutation.StepIndex(); exists {
			s.SetIgnore(planstep.FieldStepIndex)
		}
		if _, exists := u.create.mutation.AgentName(); exists {
			s.SetIgnore(planstep.FieldAgentName)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(planstep.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PlanStep.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PlanStepUpsertOne) Ignore() *PlanStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlanStepUpsertOne) DoNothing() *PlanStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlanStepCreate.OnConflict
// documentation for more info.
func (u *PlanStepUpsertOne) Update(set func(*PlanStepUpsert)) *PlanStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlanStepUpsert{UpdateSet: update})
	}))
	return u
}

// SetInterruptBefore sets the "interrupt_before" field.
func (u *PlanStepUpsertOne) SetInterruptBefore(v bool) *PlanStepUpsertOne {
	return u.Update(func(s *PlanStepUpsert) {
		s.SetInterruptBefore(v)
	})
}

// UpdateInterruptBefore sets the "interrupt_before" field to the value that was provided on create.
func (u *PlanStepUpsertOne) UpdateInterruptBefore() *PlanStepUpsertOne {
	return u.Update(func(s *PlanStepUpsert) {
		s.UpdateInterruptBefore()
	})
}

// SetStatus sets the "status" field.
func (u *PlanStepUpsertOne) SetStatus(v planstep.Status) *PlanStepUpsertOne {
	return u.Update(func(s *PlanStepUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PlanStepUpsertOne) UpdateStatus() *PlanStepUpsertOne {
	return u.Update(func(s *PlanStepUpsert) {
		s.UpdateStatus()
	})
}

// SetSummary sets the "summary" field.
func (u *PlanStepUpsertOne) SetSummary(v string) *PlanStepUpsertOne {
	return u.Update(func(s *PlanStepUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *PlanStepUpsertOne) UpdateSummary() *PlanStepUpsertOne {
	return u.Update(func(s *PlanStepUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *PlanStepUpsertOne) ClearSummary() *PlanStepUpsertOne {
	return u.Update(func(s *PlanStepUpsert) {
		s.ClearSummary()
	})
}

// SetOutput sets the "output" field.
func (u *PlanStepUpsertOne) SetOutput(v map[string]interface{}) *PlanStepUpsertOne {
	return u.Update(func(s *PlanStepUpsert) {
		s.SetOutput(v)
	})
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *PlanStepUpsertOne) UpdateOutput() *PlanStepUpsertOne {
	return u.Update(func(s *PlanStepUpsert) {
		s.UpdateOutput()
	})
}

// ClearOutput clears the value of the "output" field.
func (u *PlanStepUpsertOne) ClearOutput() *PlanStepUpsertOne {
	return u.Update(func(s *PlanStepUpsert) {
		s.ClearOutput()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *PlanStepUpsertOne) SetErrorMessage(v string) *PlanStepUpsertOne {
	return u.Update(func(s *PlanStepUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *PlanStepUpsertOne) UpdateErrorMessage() *PlanStepUpsertOne {
	return u.Update(func(s *PlanStepUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *PlanStepUpsertOne) ClearErrorMessage() *PlanStepUpsertOne {
	return u.Update(func(s *PlanStepUpsert) {
		s.ClearErrorMessage()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *PlanStepUpsertOne) SetStartedAt(v time.Time) *PlanStepUpsertOne {
	return u.Update(func(s *PlanStepUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *PlanStepUpsertOne) UpdateStartedAt() *PlanStepUpsertOne {
	return u.Update(func(s *PlanStepUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *PlanStepUpsertOne) ClearStartedAt() *PlanStepUpsertOne {
	return u.Update(func(s *PlanStepUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *PlanStepUpsertOne) SetCompletedAt(v time.Time) *PlanStepUpsertOne {
	return u.Update(func(s *PlanStepUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PlanStepUpsertOne) UpdateCompletedAt() *PlanStepUpsertOne {
	return u.Update(func(s *PlanStepUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PlanStepUpsertOne) ClearCompletedAt() *PlanStepUpsertOne {
	return u.Update(func(s *PlanStepUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *PlanStepUpsertOne) SetDurationMs(v int64) *PlanStepUpsertOne {
	return u.Update(func(s *PlanStepUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *PlanStepUpsertOne) AddDurationMs(v int64) *PlanStepUpsertOne {
	return u.Update(func(s *PlanStepUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *PlanStepUpsertOne) UpdateDurationMs() *PlanStepUpsertOne {
	return u.Update(func(s *PlanStepUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *PlanStepUpsertOne) ClearDurationMs() *PlanStepUpsertOne {
	return u.Update(func(s *PlanStepUpsert) {
		s.ClearDurationMs()
	})
}

// Exec executes the query.
func (u *PlanStepUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlanStepCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlanStepUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PlanStepUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PlanStepUpsertOne.ID is not supported by MySQL driver. Use PlanStepUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PlanStepUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PlanStepCreateBulk is the builder for creating many PlanStep entities in bulk.
type PlanStepCreateBulk struct {
	config
	err      error
	builders []*PlanStepCreate
	conflict []sql.ConflictOption
}

// Save creates the PlanStep entities in the database.
func (_c *PlanStepCreateBulk) Save(ctx context.Context) ([]*PlanStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlanStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlanStepMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *PlanStepCreateBulk) SaveX(ctx context.Context) []*PlanStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PlanStep.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlanStepUpsert) {
//			SetPlanID(v+v).
//		}).
//		Exec(ctx)
func (_c *PlanStepCreateBulk) OnConflict(opts ...sql.ConflictOption) *PlanStepUpsertBulk {
	_c.conflict = opts
	return &PlanStepUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PlanStep.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlanStepCreateBulk) OnConflictColumns(columns ...string) *PlanStepUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlanStepUpsertBulk{
		create: _c,
	}
}

// PlanStepUpsertBulk is the builder for "upsert"-ing
// a bulk of PlanStep nodes.
type PlanStepUpsertBulk struct {
	create *PlanStepCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PlanStep.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(planstep.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PlanStepUpsertBulk) UpdateNewValues() *PlanStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(planstep.FieldID)
			}
			if _, exists := b.mutation.PlanID(); exists {
				s.SetIgnore(planstep.FieldPlanID)
			}
			if _, exists := b.mutation.StepIndex(); exists {
				s.SetIgnore(planstep.FieldStepIndex)
			}
			if _, exists := b.mutation.AgentName(); exists {
				s.SetIgnore(planstep.FieldAgentName)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(planstep.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PlanStep.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PlanStepUpsertBulk) Ignore() *PlanStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlanStepUpsertBulk) DoNothing() *PlanStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlanStepCreateBulk.OnConflict
// documentation for more info.
func (u *PlanStepUpsertBulk) Update(set func(*PlanStepUpsert)) *PlanStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlanStepUpsert{UpdateSet: update})
	}))
	return u
}

// SetInterruptBefore sets the "interrupt_before" field.
func (u *PlanStepUpsertBulk) SetInterruptBefore(v bool) *PlanStepUpsertBulk {
	return u.Update(func(s *PlanStepUpsert) {
		s.SetInterruptBefore(v)
	})
}

// UpdateInterruptBefore sets the "interrupt_before" field to the value that was provided on create.
func (u *PlanStepUpsertBulk) UpdateInterruptBefore() *PlanStepUpsertBulk {
	return u.Update(func(s *PlanStepUpsert) {
		s.UpdateInterruptBefore()
	})
}

// SetStatus sets the "status" field.
func (u *PlanStepUpsertBulk) SetStatus(v planstep.Status) *PlanStepUpsertBulk {
	return u.Update(func(s *PlanStepUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PlanStepUpsertBulk) UpdateStatus() *PlanStepUpsertBulk {
	return u.Update(func(s *PlanStepUpsert) {
		s.UpdateStatus()
	})
}

// SetSummary sets the "summary" field.
func (u *PlanStepUpsertBulk) SetSummary(v string) *PlanStepUpsertBulk {
	return u.Update(func(s *PlanStepUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *PlanStepUpsertBulk) UpdateSummary() *PlanStepUpsertBulk {
	return u.Update(func(s *PlanStepUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *PlanStepUpsertBulk) ClearSummary() *PlanStepUpsertBulk {
	return u.Update(func(s *PlanStepUpsert) {
		s.ClearSummary()
	})
}

// SetOutput sets the "output" field.
func (u *PlanStepUpsertBulk) SetOutput(v map[string]interface{}) *PlanStepUpsertBulk {
	return u.Update(func(s *PlanStepUpsert) {
		s.SetOutput(v)
	})
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *PlanStepUpsertBulk) UpdateOutput() *PlanStepUpsertBulk {
	return u.Update(func(s *PlanStepUpsert) {
		s.UpdateOutput()
	})
}

// ClearOutput clears the value of the "output" field.
func (u *PlanStepUpsertBulk) ClearOutput() *PlanStepUpsertBulk {
	return u.Update(func(s *PlanStepUpsert) {
		s.ClearOutput()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *PlanStepUpsertBulk) SetErrorMessage(v string) *PlanStepUpsertBulk {
	return u.Update(func(s *PlanStepUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *PlanStepUpsertBulk) UpdateErrorMessage() *PlanStepUpsertBulk {
	return u.Update(func(s *PlanStepUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *PlanStepUpsertBulk) ClearErrorMessage() *PlanStepUpsertBulk {
	return u.Update(func(s *PlanStepUpsert) {
		s.ClearErrorMessage()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *PlanStepUpsertBulk) SetStartedAt(v time.Time) *PlanStepUpsertBulk {
	return u.Update(func(s *PlanStepUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *PlanStepUpsertBulk) UpdateStartedAt() *PlanStepUpsertBulk {
	return u.Update(func(s *PlanStepUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *PlanStepUpsertBulk) ClearStartedAt() *PlanStepUpsertBulk {
	return u.Update(func(s *PlanStepUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *PlanStepUpsertBulk) SetCompletedAt(v time.Time) *PlanStepUpsertBulk {
	return u.Update(func(s *PlanStepUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PlanStepUpsertBulk) UpdateCompletedAt() *PlanStepUpsertBulk {
	return u.Update(func(s *PlanStepUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PlanStepUpsertBulk) ClearCompletedAt() *PlanStepUpsertBulk {
	return u.Update(func(s *PlanStepUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *PlanStepUpsertBulk) SetDurationMs(v int64) *PlanStepUpsertBulk {
	return u.Update(func(s *PlanStepUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *PlanStepUpsertBulk) AddDurationMs(v int64) *PlanStepUpsertBulk {
	return u.Update(func(s *PlanStepUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *PlanStepUpsertBulk) UpdateDurationMs() *PlanStepUpsertBulk {
	return u.Update(func(s *PlanStepUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *PlanStepUpsertBulk) ClearDurationMs() *PlanStepUpsertBulk {
	return u.Update(func(s *PlanStepUpsert) {
		s.ClearDurationMs()
	})
}

// Exec executes the query.
func (u *PlanStepUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PlanStepCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlanStepCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlanStepUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
