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
	"github.com/finovant/macaw/ent/agentmessage"
	"github.com/finovant/macaw/ent/event"
	"github.com/finovant/macaw/ent/extraction"
	"github.com/finovant/macaw/ent/plan"
	"github.com/finovant/macaw/ent/planstep"
)

// PlanCreate is the builder for creating a Plan entity.
type PlanCreate struct {
	config
	mutation *PlanMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *PlanCreate) SetSessionID(v string) *PlanCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTaskDescription sets the "task_description" field.
func (_c *PlanCreate) SetTaskDescription(v string) *PlanCreate {
	_c.mutation.SetTaskDescription(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PlanCreate) SetStatus(v plan.Status) *PlanCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PlanCreate) SetNillableStatus(v *plan.Status) *PlanCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAgentSequence sets the "agent_sequence" field.
func (_c *PlanCreate) SetAgentSequence(v []string) *PlanCreate {
	_c.mutation.SetAgentSequence(v)
	return _c
}

// SetGraphType sets the "graph_type" field.
func (_c *PlanCreate) SetGraphType(v string) *PlanCreate {
	_c.mutation.SetGraphType(v)
	return _c
}

// SetNillableGraphType sets the "graph_type" field if the given value is not nil.
func (_c *PlanCreate) SetNillableGraphType(v *string) *PlanCreate {
	if v != nil {
		_c.SetGraphType(*v)
	}
	return _c
}

// SetGraphID sets the "graph_id" field.
func (_c *PlanCreate) SetGraphID(v string) *PlanCreate {
	_c.mutation.SetGraphID(v)
	return _c
}

// SetNillableGraphID sets the "graph_id" field if the given value is not nil.
func (_c *PlanCreate) SetNillableGraphID(v *string) *PlanCreate {
	if v != nil {
		_c.SetGraphID(*v)
	}
	return _c
}

// SetRequireApproval sets the "require_approval" field.
func (_c *PlanCreate) SetRequireApproval(v bool) *PlanCreate {
	_c.mutation.SetRequireApproval(v)
	return _c
}

// SetNillableRequireApproval sets the "require_approval" field if the given value is not nil.
func (_c *PlanCreate) SetNillableRequireApproval(v *bool) *PlanCreate {
	if v != nil {
		_c.SetRequireApproval(*v)
	}
	return _c
}

// SetCurrentStep sets the "current_step" field.
func (_c *PlanCreate) SetCurrentStep(v int) *PlanCreate {
	_c.mutation.SetCurrentStep(v)
	return _c
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_c *PlanCreate) SetNillableCurrentStep(v *int) *PlanCreate {
	if v != nil {
		_c.SetCurrentStep(*v)
	}
	return _c
}

// SetPlanSummary sets the "plan_summary" field.
func (_c *PlanCreate) SetPlanSummary(v string) *PlanCreate {
	_c.mutation.SetPlanSummary(v)
	return _c
}

// SetNillablePlanSummary sets the "plan_summary" field if the given value is not nil.
func (_c *PlanCreate) SetNillablePlanSummary(v *string) *PlanCreate {
	if v != nil {
		_c.SetPlanSummary(*v)
	}
	return _c
}

// SetComplexity sets the "complexity" field.
func (_c *PlanCreate) SetComplexity(v float64) *PlanCreate {
	_c.mutation.SetComplexity(v)
	return _c
}

// SetNillableComplexity sets the "complexity" field if the given value is not nil.
func (_c *PlanCreate) SetNillableComplexity(v *float64) *PlanCreate {
	if v != nil {
		_c.SetComplexity(*v)
	}
	return _c
}

// SetPlanSource sets the "plan_source" field.
func (_c *PlanCreate) SetPlanSource(v string) *PlanCreate {
	_c.mutation.SetPlanSource(v)
	return _c
}

// SetNillablePlanSource sets the "plan_source" field if the given value is not nil.
func (_c *PlanCreate) SetNillablePlanSource(v *string) *PlanCreate {
	if v != nil {
		_c.SetPlanSource(*v)
	}
	return _c
}

// SetFinalResult sets the "final_result" field.
func (_c *PlanCreate) SetFinalResult(v string) *PlanCreate {
	_c.mutation.SetFinalResult(v)
	return _c
}

// SetNillableFinalResult sets the "final_result" field if the given value is not nil.
func (_c *PlanCreate) SetNillableFinalResult(v *string) *PlanCreate {
	if v != nil {
		_c.SetFinalResult(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *PlanCreate) SetErrorMessage(v string) *PlanCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *PlanCreate) SetNillableErrorMessage(v *string) *PlanCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetHumanFeedback sets the "human_feedback" field.
func (_c *PlanCreate) SetHumanFeedback(v string) *PlanCreate {
	_c.mutation.SetHumanFeedback(v)
	return _c
}

// SetNillableHumanFeedback sets the "human_feedback" field if the given value is not nil.
func (_c *PlanCreate) SetNillableHumanFeedback(v *string) *PlanCreate {
	if v != nil {
		_c.SetHumanFeedback(*v)
	}
	return _c
}

// SetRestartedFrom sets the "restarted_from" field.
func (_c *PlanCreate) SetRestartedFrom(v string) *PlanCreate {
	_c.mutation.SetRestartedFrom(v)
	return _c
}

// SetNillableRestartedFrom sets the "restarted_from" field if the given value is not nil.
func (_c *PlanCreate) SetNillableRestartedFrom(v *string) *PlanCreate {
	if v != nil {
		_c.SetRestartedFrom(*v)
	}
	return _c
}

// SetPlanMetadata sets the "plan_metadata" field.
func (_c *PlanCreate) SetPlanMetadata(v map[string]interface{}) *PlanCreate {
	_c.mutation.SetPlanMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PlanCreate) SetCreatedAt(v time.Time) *PlanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PlanCreate) SetNillableCreatedAt(v *time.Time) *PlanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *PlanCreate) SetStartedAt(v time.Time) *PlanCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *PlanCreate) SetNillableStartedAt(v *time.Time) *PlanCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PlanCreate) SetCompletedAt(v time.Time) *PlanCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PlanCreate) SetNillableCompletedAt(v *time.Time) *PlanCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *PlanCreate) SetDeletedAt(v time.Time) *PlanCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *PlanCreate) SetNillableDeletedAt(v *time.Time) *PlanCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PlanCreate) SetID(v string) *PlanCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddStepIDs adds the "steps" edge to the PlanStep entity by IDs.
func (_c *PlanCreate) AddStepIDs(ids ...string) *PlanCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the PlanStep entity.
func (_c *PlanCreate) AddSteps(v ...*PlanStep) *PlanCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the AgentMessage entity by IDs.
func (_c *PlanCreate) AddMessageIDs(ids ...string) *PlanCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the AgentMessage entity.
func (_c *PlanCreate) AddMessages(v ...*AgentMessage) *PlanCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *PlanCreate) AddEventIDs(ids ...int) *PlanCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *PlanCreate) AddEvents(v ...*Event) *PlanCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddExtractionIDs adds the "extractions" edge to the Extraction entity by IDs.
func (_c *PlanCreate) AddExtractionIDs(ids ...string) *PlanCreate {
	_c.mutation.AddExtractionIDs(ids...)
	return _c
}

// AddExtractions adds the "extractions" edges to the Extraction entity.
func (_c *PlanCreate) AddExtractions(v ...*Extraction) *PlanCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExtractionIDs(ids...)
}

// Mutation returns the PlanMutation object of the builder.
func (_c *PlanCreate) Mutation() *PlanMutation {
	return _c.mutation
}

// Save creates the Plan in the database.
func (_c *PlanCreate) Save(ctx context.Context) (*Plan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlanCreate) SaveX(ctx context.Context) *Plan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlanCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := plan.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RequireApproval(); !ok {
		v := plan.DefaultRequireApproval
		_c.mutation.SetRequireApproval(v)
	}
	if _, ok := _c.mutation.CurrentStep(); !ok {
		v := plan.DefaultCurrentStep
		_c.mutation.SetCurrentStep(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := plan.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlanCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Plan.session_id"`)}
	}
	if _, ok := _c.mutation.TaskDescription(); !ok {
		return &ValidationError{Name: "task_description", err: errors.New(`ent: missing required field "Plan.task_description"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Plan.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := plan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Plan.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequireApproval(); !ok {
		return &ValidationError{Name: "require_approval", err: errors.New(`ent: missing required field "Plan.require_approval"`)}
	}
	if _, ok := _c.mutation.CurrentStep(); !ok {
		return &ValidationError{Name: "current_step", err: errors.New(`ent: missing required field "Plan.current_step"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Plan.created_at"`)}
	}
	return nil
}

func (_c *PlanCreate) sqlSave(ctx context.Context) (*Plan, error) {
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
			return nil, fmt.Errorf("unexpected Plan.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PlanCreate) createSpec() (*Plan, *sqlgraph.CreateSpec) {
	var (
		_node = &Plan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(plan.Table, sqlgraph.NewFieldSpec(plan.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(plan.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.TaskDescription(); ok {
		_spec.SetField(plan.FieldTaskDescription, field.TypeString, value)
		_node.TaskDescription = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(plan.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AgentSequence(); ok {
		_spec.SetField(plan.FieldAgentSequence, field.TypeJSON, value)
		_node.AgentSequence = value
	}
	if value, ok := _c.mutation.GraphType(); ok {
		_spec.SetField(plan.FieldGraphType, field.TypeString, value)
		_node.GraphType = value
	}
	if value, ok := _c.mutation.GraphID(); ok {
		_spec.SetField(plan.FieldGraphID, field.TypeString, value)
		_node.GraphID = &value
	}
	if value, ok := _c.mutation.RequireApproval(); ok {
		_spec.SetField(plan.FieldRequireApproval, field.TypeBool, value)
		_node.RequireApproval = value
	}
	if value, ok := _c.mutation.CurrentStep(); ok {
		_spec.SetField(plan.FieldCurrentStep, field.TypeInt, value)
		_node.CurrentStep = value
	}
	if value, ok := _c.mutation.PlanSummary(); ok {
		_spec.SetField(plan.FieldPlanSummary, field.TypeString, value)
		_node.PlanSummary = &value
	}
	if value, ok := _c.mutation.Complexity(); ok {
		_spec.SetField(plan.FieldComplexity, field.TypeFloat64, value)
		_node.Complexity = value
	}
	if value, ok := _c.mutation.PlanSource(); ok {
		_spec.SetField(plan.FieldPlanSource, field.TypeString, value)
		_node.PlanSource = value
	}
	if value, ok := _c.mutation.FinalResult(); ok {
		_spec.SetField(plan.FieldFinalResult, field.TypeString, value)
		_node.FinalResult = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(plan.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.HumanFeedback(); ok {
		_spec.SetField(plan.FieldHumanFeedback, field.TypeString, value)
		_node.HumanFeedback = &value
	}
	if value, ok := _c.mutation.RestartedFrom(); ok {
		_spec.SetField(plan.FieldRestartedFrom, field.TypeString, value)
		_node.RestartedFrom = &value
	}
	if value, ok := _c.mutation.PlanMetadata(); ok {
		_spec.SetField(plan.FieldPlanMetadata, field.TypeJSON, value)
		_node.PlanMetadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(plan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(plan.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(plan.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(plan.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   plan.StepsTable,
			Columns: []string{plan.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(planstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   plan.MessagesTable,
			Columns: []string{plan.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   plan.EventsTable,
			Columns: []string{plan.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ExtractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   plan.ExtractionsTable,
			Columns: []string{plan.ExtractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Plan.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlanUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *PlanCreate) OnConflict(opts ...sql.ConflictOption) *PlanUpsertOne {
	_c.conflict = opts
	return &PlanUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Plan.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlanCreate) OnConflictColumns(columns ...string) *PlanUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlanUpsertOne{
		create: _c,
	}
}

type (
	// PlanUpsertOne is the builder for "upsert"-ing
	//  one Plan node.
	PlanUpsertOne struct {
		create *PlanCreate
	}

	// PlanUpsert is the "OnConflict" setter.
	PlanUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *PlanUpsert) SetSessionID(v string) *PlanUpsert {
	u.Set(plan.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *PlanUpsert) UpdateSessionID() *PlanUpsert {
	u.SetExcluded(plan.FieldSessionID)
	return u
}

// SetTaskDescription sets the "task_description" field.
func (u *PlanUpsert) SetTaskDescription(v string) *PlanUpsert {
	u.Set(plan.FieldTaskDescription, v)
	return u
}

// UpdateTaskDescription sets the "task_description" field to the value that was provided on create.
func (u *PlanUpsert) UpdateTaskDescription() *PlanUpsert {
	u.SetExcluded(plan.FieldTaskDescription)
	return u
}

// SetStatus sets the "status" field.
func (u *PlanUpsert) SetStatus(v plan.Status) *PlanUpsert {
	u.Set(plan.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PlanUpsert) UpdateStatus() *PlanUpsert {
	u.SetExcluded(plan.FieldStatus)
	return u
}

// SetAgentSequence sets the "agent_sequence" field.
func (u *PlanUpsert) SetAgentSequence(v []string) *PlanUpsert {
	u.Set(plan.FieldAgentSequence, v)
	return u
}

// UpdateAgentSequence sets the "agent_sequence" field to the value that was provided on create.
func (u *PlanUpsert) UpdateAgentSequence() *PlanUpsert {
	u.SetExcluded(plan.FieldAgentSequence)
	return u
}

// ClearAgentSequence clears the value of the "agent_sequence" field.
func (u *PlanUpsert) ClearAgentSequence() *PlanUpsert {
	u.SetNull(plan.FieldAgentSequence)
	return u
}

// SetGraphType sets the "graph_type" field.
func (u *PlanUpsert) SetGraphType(v string) *PlanUpsert {
	u.Set(plan.FieldGraphType, v)
	return u
}

// UpdateGraphType sets the "graph_type" field to the value that was provided on create.
func (u *PlanUpsert) UpdateGraphType() *PlanUpsert {
	u.SetExcluded(plan.FieldGraphType)
	return u
}

// ClearGraphType clears the value of the "graph_type" field.
func (u *PlanUpsert) ClearGraphType() *PlanUpsert {
	u.SetNull(plan.FieldGraphType)
	return u
}

// SetGraphID sets the "graph_id" field.
func (u *PlanUpsert) SetGraphID(v string) *PlanUpsert {
	u.Set(plan.FieldGraphID, v)
	return u
}

// UpdateGraphID sets the "graph_id" field to the value that was provided on create.
func (u *PlanUpsert) UpdateGraphID() *PlanUpsert {
	u.SetExcluded(plan.FieldGraphID)
	return u
}

// ClearGraphID clears the value of the "graph_id" field.
func (u *PlanUpsert) ClearGraphID() *PlanUpsert {
	u.SetNull(plan.FieldGraphID)
	return u
}

// SetRequireApproval sets the "require_approval" field.
func (u *PlanUpsert) SetRequireApproval(v bool) *PlanUpsert {
	u.Set(plan.FieldRequireApproval, v)
	return u
}

// UpdateRequireApproval sets the "require_approval" field to the value that was provided on create.
func (u *PlanUpsert) UpdateRequireApproval() *PlanUpsert {
	u.SetExcluded(plan.FieldRequireApproval)
	return u
}

// SetCurrentStep sets the "current_step" field.
func (u *PlanUpsert) SetCurrentStep(v int) *PlanUpsert {
	u.Set(plan.FieldCurrentStep, v)
	return u
}

// UpdateCurrentStep sets the "current_step" field to the value that was provided on create.
func (u *PlanUpsert) UpdateCurrentStep() *PlanUpsert {
	u.SetExcluded(plan.FieldCurrentStep)
	return u
}

// AddCurrentStep adds v to the "current_step" field.
func (u *PlanUpsert) AddCurrentStep(v int) *PlanUpsert {
	u.Add(plan.FieldCurrentStep, v)
	return u
}

// SetPlanSummary sets the "plan_summary" field.
func (u *PlanUpsert) SetPlanSummary(v string) *PlanUpsert {
	u.Set(plan.FieldPlanSummary, v)
	return u
}

// UpdatePlanSummary sets the "plan_summary" field to the value that was provided on create.
func (u *PlanUpsert) UpdatePlanSummary() *PlanUpsert {
	u.SetExcluded(plan.FieldPlanSummary)
	return u
}

// ClearPlanSummary clears the value of the "plan_summary" field.
func (u *PlanUpsert) ClearPlanSummary() *PlanUpsert {
	u.SetNull(plan.FieldPlanSummary)
	return u
}

// SetComplexity sets the "complexity" field.
func (u *PlanUpsert) SetComplexity(v float64) *PlanUpsert {
	u.Set(plan.FieldComplexity, v)
	return u
}

// UpdateComplexity sets the "complexity" field to the value that was provided on create.
func (u *PlanUpsert) UpdateComplexity() *PlanUpsert {
	u.SetExcluded(plan.FieldComplexity)
	return u
}

// AddComplexity adds v to the "complexity" field.
func (u *PlanUpsert) AddComplexity(v float64) *PlanUpsert {
	u.Add(plan.FieldComplexity, v)
	return u
}

// ClearComplexity clears the value of the "complexity" field.
func (u *PlanUpsert) ClearComplexity() *PlanUpsert {
	u.SetNull(plan.FieldComplexity)
	return u
}

// SetPlanSource sets the "plan_source" field.
func (u *PlanUpsert) SetPlanSource(v string) *PlanUpsert {
	u.Set(plan.FieldPlanSource, v)
	return u
}

// UpdatePlanSource sets the "plan_source" field to the value that was provided on create.
func (u *PlanUpsert) UpdatePlanSource() *PlanUpsert {
	u.SetExcluded(plan.FieldPlanSource)
	return u
}

// ClearPlanSource clears the value of the "plan_source" field.
func (u *PlanUpsert) ClearPlanSource() *PlanUpsert {
	u.SetNull(plan.FieldPlanSource)
	return u
}

// SetFinalResult sets the "final_result" field.
func (u *PlanUpsert) SetFinalResult(v string) *PlanUpsert {
	u.Set(plan.FieldFinalResult, v)
	return u
}

// UpdateFinalResult sets the "final_result" field to the value that was provided on create.
func (u *PlanUpsert) UpdateFinalResult() *PlanUpsert {
	u.SetExcluded(plan.FieldFinalResult)
	return u
}

// ClearFinalResult clears the value of the "final_result" field.
func (u *PlanUpsert) ClearFinalResult() *PlanUpsert {
	u.SetNull(plan.FieldFinalResult)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *PlanUpsert) SetErrorMessage(v string) *PlanUpsert {
	u.Set(plan.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *PlanUpsert) UpdateErrorMessage() *PlanUpsert {
	u.SetExcluded(plan.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *PlanUpsert) ClearErrorMessage() *PlanUpsert {
	u.SetNull(plan.FieldErrorMessage)
	return u
}

// SetHumanFeedback sets the "human_feedback" field.
func (u *PlanUpsert) SetHumanFeedback(v string) *PlanUpsert {
	u.Set(plan.FieldHumanFeedback, v)
	return u
}

// UpdateHumanFeedback sets the "human_feedback" field to the value that was provided on create.
func (u *PlanUpsert) UpdateHumanFeedback() *PlanUpsert {
	u.SetExcluded(plan.FieldHumanFeedback)
	return u
}

// ClearHumanFeedback clears the value of the "human_feedback" field.
func (u *PlanUpsert) ClearHumanFeedback() *PlanUpsert {
	u.SetNull(plan.FieldHumanFeedback)
	return u
}

// SetRestartedFrom sets the "restarted_from" field.
func (u *PlanUpsert) SetRestartedFrom(v string) *PlanUpsert {
	u.Set(plan.FieldRestartedFrom, v)
	return u
}

// UpdateRestartedFrom sets the "restarted_from" field to the value that was provided on create.
func (u *PlanUpsert) UpdateRestartedFrom() *PlanUpsert {
	u.SetExcluded(plan.FieldRestartedFrom)
	return u
}

// ClearRestartedFrom clears the value of the "restarted_from" field.
func (u *PlanUpsert) ClearRestartedFrom() *PlanUpsert {
	u.SetNull(plan.FieldRestartedFrom)
	return u
}

// SetPlanMetadata sets the "plan_metadata" field.
func (u *PlanUpsert) SetPlanMetadata(v map[string]interface{}) *PlanUpsert {
	u.Set(plan.FieldPlanMetadata, v)
	return u
}

// UpdatePlanMetadata sets the "plan_metadata" field to the value that was provided on create.
func (u *PlanUpsert) UpdatePlanMetadata() *PlanUpsert {
	u.SetExcluded(plan.FieldPlanMetadata)
	return u
}

// ClearPlanMetadata clears the value of the "plan_metadata" field.
func (u *PlanUpsert) ClearPlanMetadata() *PlanUpsert {
	u.SetNull(plan.FieldPlanMetadata)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *PlanUpsert) SetCreatedAt(v time.Time) *PlanUpsert {
	u.Set(plan.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *PlanUpsert) UpdateCreatedAt() *PlanUpsert {
	u.SetExcluded(plan.FieldCreatedAt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *PlanUpsert) SetStartedAt(v time.Time) *PlanUpsert {
	u.Set(plan.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *PlanUpsert) UpdateStartedAt() *PlanUpsert {
	u.SetExcluded(plan.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *PlanUpsert) ClearStartedAt() *PlanUpsert {
	u.SetNull(plan.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *PlanUpsert) SetCompletedAt(v time.Time) *PlanUpsert {
	u.Set(plan.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PlanUpsert) UpdateCompletedAt() *PlanUpsert {
	u.SetExcluded(plan.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PlanUpsert) ClearCompletedAt() *PlanUpsert {
	u.SetNull(plan.FieldCompletedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PlanUpsert) SetDeletedAt(v time.Time) *PlanUpsert {
	u.Set(plan.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PlanUpsert) UpdateDeletedAt() *PlanUpsert {
	u.SetExcluded(plan.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PlanUpsert) ClearDeletedAt() *PlanUpsert {
	u.SetNull(plan.FieldDeletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Plan.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(plan.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PlanUpsertOne) UpdateNewValues() *PlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(plan.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Plan.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PlanUpsertOne) Ignore() *PlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlanUpsertOne) DoNothing() *PlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlanCreate.OnConflict
// documentation for more info.
func (u *PlanUpsertOne) Update(set func(*PlanUpsert)) *PlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlanUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *PlanUpsertOne) SetSessionID(v string) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateSessionID() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateSessionID()
	})
}

// SetTaskDescription sets the "task_description" field.
func (u *PlanUpsertOne) SetTaskDescription(v string) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetTaskDescription(v)
	})
}

// UpdateTaskDescription sets the "task_description" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateTaskDescription() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateTaskDescription()
	})
}

// SetStatus sets the "status" field.
func (u *PlanUpsertOne) SetStatus(v plan.Status) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateStatus() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateStatus()
	})
}

// SetAgentSequence sets the "agent_sequence" field.
func (u *PlanUpsertOne) SetAgentSequence(v []string) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetAgentSequence(v)
	})
}

// UpdateAgentSequence sets the "agent_sequence" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateAgentSequence() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateAgentSequence()
	})
}

// ClearAgentSequence clears the value of the "agent_sequence" field.
func (u *PlanUpsertOne) ClearAgentSequence() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.ClearAgentSequence()
	})
}

// SetGraphType sets the "graph_type" field.
func (u *PlanUpsertOne) SetGraphType(v string) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetGraphType(v)
	})
}

// UpdateGraphType sets the "graph_type" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateGraphType() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateGraphType()
	})
}

// ClearGraphType clears the value of the "graph_type" field.
func (u *PlanUpsertOne) ClearGraphType() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.ClearGraphType()
	})
}

// SetGraphID sets the "graph_id" field.
func (u *PlanUpsertOne) SetGraphID(v string) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetGraphID(v)
	})
}

// UpdateGraphID sets the "graph_id" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateGraphID() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateGraphID()
	})
}

// ClearGraphID clears the value of the "graph_id" field.
func (u *PlanUpsertOne) ClearGraphID() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.ClearGraphID()
	})
}

// SetRequireApproval sets the "require_approval" field.
func (u *PlanUpsertOne) SetRequireApproval(v bool) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetRequireApproval(v)
	})
}

// UpdateRequireApproval sets the "require_approval" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateRequireApproval() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateRequireApproval()
	})
}

// SetCurrentStep sets the "current_step" field.
func (u *PlanUpsertOne) SetCurrentStep(v int) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetCurrentStep(v)
	})
}

// AddCurrentStep adds v to the "current_step" field.
func (u *PlanUpsertOne) AddCurrentStep(v int) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.AddCurrentStep(v)
	})
}

// UpdateCurrentStep sets the "current_step" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateCurrentStep() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateCurrentStep()
	})
}

// SetPlanSummary sets the "plan_summary" field.
func (u *PlanUpsertOne) SetPlanSummary(v string) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetPlanSummary(v)
	})
}

// UpdatePlanSummary sets the "plan_summary" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdatePlanSummary() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdatePlanSummary()
	})
}

// ClearPlanSummary clears the value of the "plan_summary" field.
func (u *PlanUpsertOne) ClearPlanSummary() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.ClearPlanSummary()
	})
}

// SetComplexity sets the "complexity" field.
func (u *PlanUpsertOne) SetComplexity(v float64) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetComplexity(v)
	})
}

// AddComplexity adds v to the "complexity" field.
func (u *PlanUpsertOne) AddComplexity(v float64) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.AddComplexity(v)
	})
}

// UpdateComplexity sets the "complexity" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateComplexity() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateComplexity()
	})
}

// ClearComplexity clears the value of the "complexity" field.
func (u *PlanUpsertOne) ClearComplexity() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.ClearComplexity()
	})
}

// SetPlanSource sets the "plan_source" field.
func (u *PlanUpsertOne) SetPlanSource(v string) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetPlanSource(v)
	})
}

// UpdatePlanSource sets the "plan_source" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdatePlanSource() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdatePlanSource()
	})
}

// ClearPlanSource clears the value of the "plan_source" field.
func (u *PlanUpsertOne) ClearPlanSource() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.ClearPlanSource()
	})
}

// SetFinalResult sets the "final_result" field.
func (u *PlanUpsertOne) SetFinalResult(v string) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetFinalResult(v)
	})
}

// UpdateFinalResult sets the "final_result" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateFinalResult() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateFinalResult()
	})
}

// ClearFinalResult clears the value of the "final_result" field.
func (u *PlanUpsertOne) ClearFinalResult() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.ClearFinalResult()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *PlanUpsertOne) SetErrorMessage(v string) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateErrorMessage() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *PlanUpsertOne) ClearErrorMessage() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.ClearErrorMessage()
	})
}

// SetHumanFeedback sets the "human_feedback" field.
func (u *PlanUpsertOne) SetHumanFeedback(v string) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetHumanFeedback(v)
	})
}

// UpdateHumanFeedback sets the "human_feedback" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateHumanFeedback() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateHumanFeedback()
	})
}

// ClearHumanFeedback clears the value of the "human_feedback" field.
func (u *PlanUpsertOne) ClearHumanFeedback() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.ClearHumanFeedback()
	})
}

// SetRestartedFrom sets the "restarted_from" field.
func (u *PlanUpsertOne) SetRestartedFrom(v string) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetRestartedFrom(v)
	})
}

// UpdateRestartedFrom sets the "restarted_from" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateRestartedFrom() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateRestartedFrom()
	})
}

// ClearRestartedFrom clears the value of the "restarted_from" field.
func (u *PlanUpsertOne) ClearRestartedFrom() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.ClearRestartedFrom()
	})
}

// SetPlanMetadata sets the "plan_metadata" field.
func (u *PlanUpsertOne) SetPlanMetadata(v map[string]interface{}) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetPlanMetadata(v)
	})
}

// UpdatePlanMetadata sets the "plan_metadata" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdatePlanMetadata() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdatePlanMetadata()
	})
}

// ClearPlanMetadata clears the value of the "plan_metadata" field.
func (u *PlanUpsertOne) ClearPlanMetadata() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.ClearPlanMetadata()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *PlanUpsertOne) SetCreatedAt(v time.Time) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateCreatedAt() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *PlanUpsertOne) SetStartedAt(v time.Time) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateStartedAt() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *PlanUpsertOne) ClearStartedAt() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *PlanUpsertOne) SetCompletedAt(v time.Time) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateCompletedAt() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PlanUpsertOne) ClearCompletedAt() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PlanUpsertOne) SetDeletedAt(v time.Time) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateDeletedAt() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PlanUpsertOne) ClearDeletedAt() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *PlanUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlanCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlanUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PlanUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PlanUpsertOne.ID is not supported by MySQL driver. Use PlanUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PlanUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PlanCreateBulk is the builder for creating many Plan entities in bulk.
type PlanCreateBulk struct {
	config
	err      error
	builders []*PlanCreate
	conflict []sql.ConflictOption
}

// Save creates the Plan entities in the database.
func (_c *PlanCreateBulk) Save(ctx context.Context) ([]*Plan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Plan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlanMutation)
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
func (_c *PlanCreateBulk) SaveX(ctx context.Context) []*Plan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Plan.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlanUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *PlanCreateBulk) OnConflict(opts ...sql.ConflictOption) *PlanUpsertBulk {
	_c.conflict = opts
	return &PlanUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Plan.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlanCreateBulk) OnConflictColumns(columns ...string) *PlanUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlanUpsertBulk{
		create: _c,
	}
}

// PlanUpsertBulk is the builder for "upsert"-ing
// a bulk of Plan nodes.
type PlanUpsertBulk struct {
	create *PlanCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Plan.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(plan.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PlanUpsertBulk) UpdateNewValues() *PlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(plan.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Plan.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PlanUpsertBulk) Ignore() *PlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlanUpsertBulk) DoNothing() *PlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlanCreateBulk.OnConflict
// documentation for more info.
func (u *PlanUpsertBulk) Update(set func(*PlanUpsert)) *PlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlanUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *PlanUpsertBulk) SetSessionID(v string) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateSessionID() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateSessionID()
	})
}

// SetTaskDescription sets the "task_description" field.
func (u *PlanUpsertBulk) SetTaskDescription(v string) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetTaskDescription(v)
	})
}

// UpdateTaskDescription sets the "task_description" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateTaskDescription() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateTaskDescription()
	})
}

// SetStatus sets the "status" field.
func (u *PlanUpsertBulk) SetStatus(v plan.Status) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateStatus() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateStatus()
	})
}

// SetAgentSequence sets the "agent_sequence" field.
func (u *PlanUpsertBulk) SetAgentSequence(v []string) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetAgentSequence(v)
	})
}

// UpdateAgentSequence sets the "agent_sequence" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateAgentSequence() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateAgentSequence()
	})
}

// ClearAgentSequence clears the value of the "agent_sequence" field.
func (u *PlanUpsertBulk) ClearAgentSequence() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.ClearAgentSequence()
	})
}

// SetGraphType sets the "graph_type" field.
func (u *PlanUpsertBulk) SetGraphType(v string) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetGraphType(v)
	})
}

// UpdateGraphType sets the "graph_type" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateGraphType() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateGraphType()
	})
}

// ClearGraphType clears the value of the "graph_type" field.
func (u *PlanUpsertBulk) ClearGraphType() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.ClearGraphType()
	})
}

// SetGraphID sets the "graph_id" field.
func (u *PlanUpsertBulk) SetGraphID(v string) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetGraphID(v)
	})
}

// UpdateGraphID sets the "graph_id" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateGraphID() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateGraphID()
	})
}

// ClearGraphID clears the value of the "graph_id" field.
func (u *PlanUpsertBulk) ClearGraphID() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.ClearGraphID()
	})
}

// SetRequireApproval sets the "require_approval" field.
func (u *PlanUpsertBulk) SetRequireApproval(v bool) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetRequireApproval(v)
	})
}

// UpdateRequireApproval sets the "require_approval" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateRequireApproval() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateRequireApproval()
	})
}

// SetCurrentStep sets the "current_step" field.
func (u *PlanUpsertBulk) SetCurrentStep(v int) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetCurrentStep(v)
	})
}

// AddCurrentStep adds v to the "current_step" field.
func (u *PlanUpsertBulk) AddCurrentStep(v int) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.AddCurrentStep(v)
	})
}

// UpdateCurrentStep sets the "current_step" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateCurrentStep() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateCurrentStep()
	})
}

// SetPlanSummary sets the "plan_summary" field.
func (u *PlanUpsertBulk) SetPlanSummary(v string) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetPlanSummary(v)
	})
}

// UpdatePlanSummary sets the "plan_summary" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdatePlanSummary() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdatePlanSummary()
	})
}

// ClearPlanSummary clears the value of the "plan_summary" field.
func (u *PlanUpsertBulk) ClearPlanSummary() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.ClearPlanSummary()
	})
}

// SetComplexity sets the "complexity" field.
func (u *PlanUpsertBulk) SetComplexity(v float64) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetComplexity(v)
	})
}

// AddComplexity adds v to the "complexity" field.
func (u *PlanUpsertBulk) AddComplexity(v float64) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.AddComplexity(v)
	})
}

// UpdateComplexity sets the "complexity" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateComplexity() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateComplexity()
	})
}

// ClearComplexity clears the value of the "complexity" field.
func (u *PlanUpsertBulk) ClearComplexity() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.ClearComplexity()
	})
}

// SetPlanSource sets the "plan_source" field.
func (u *PlanUpsertBulk) SetPlanSource(v string) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetPlanSource(v)
	})
}

// UpdatePlanSource sets the "plan_source" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdatePlanSource() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdatePlanSource()
	})
}

// ClearPlanSource clears the value of the "plan_source" field.
func (u *PlanUpsertBulk) ClearPlanSource() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.ClearPlanSource()
	})
}

// SetFinalResult sets the "final_result" field.
func (u *PlanUpsertBulk) SetFinalResult(v string) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetFinalResult(v)
	})
}

// UpdateFinalResult sets the "final_result" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateFinalResult() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateFinalResult()
	})
}

// ClearFinalResult clears the value of the "final_result" field.
func (u *PlanUpsertBulk) ClearFinalResult() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.ClearFinalResult()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *PlanUpsertBulk) SetErrorMessage(v string) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateErrorMessage() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *PlanUpsertBulk) ClearErrorMessage() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.ClearErrorMessage()
	})
}

// SetHumanFeedback sets the "human_feedback" field.
func (u *PlanUpsertBulk) SetHumanFeedback(v string) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetHumanFeedback(v)
	})
}

// UpdateHumanFeedback sets the "human_feedback" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateHumanFeedback() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateHumanFeedback()
	})
}

// ClearHumanFeedback clears the value of the "human_feedback" field.
func (u *PlanUpsertBulk) ClearHumanFeedback() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.ClearHumanFeedback()
	})
}

// SetRestartedFrom sets the "restarted_from" field.
func (u *PlanUpsertBulk) SetRestartedFrom(v string) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetRestartedFrom(v)
	})
}

// UpdateRestartedFrom sets the "restarted_from" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateRestartedFrom() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateRestartedFrom()
	})
}

// ClearRestartedFrom clears the value of the "restarted_from" field.
func (u *PlanUpsertBulk) ClearRestartedFrom() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.ClearRestartedFrom()
	})
}

// SetPlanMetadata sets the "plan_metadata" field.
func (u *PlanUpsertBulk) SetPlanMetadata(v map[string]interface{}) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetPlanMetadata(v)
	})
}

// UpdatePlanMetadata sets the "plan_metadata" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdatePlanMetadata() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdatePlanMetadata()
	})
}

// ClearPlanMetadata clears the value of the "plan_metadata" field.
func (u *PlanUpsertBulk) ClearPlanMetadata() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.ClearPlanMetadata()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *PlanUpsertBulk) SetCreatedAt(v time.Time) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateCreatedAt() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *PlanUpsertBulk) SetStartedAt(v time.Time) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateStartedAt() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *PlanUpsertBulk) ClearStartedAt() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *PlanUpsertBulk) SetCompletedAt(v time.Time) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateCompletedAt() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PlanUpsertBulk) ClearCompletedAt() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PlanUpsertBulk) SetDeletedAt(v time.Time) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateDeletedAt() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PlanUpsertBulk) ClearDeletedAt() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *PlanUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PlanCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlanCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlanUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
