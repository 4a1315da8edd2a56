// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/finovant/macaw/ent/agentmessage"
	"github.com/finovant/macaw/ent/event"
	"github.com/finovant/macaw/ent/extraction"
	"github.com/finovant/macaw/ent/plan"
	"github.com/finovant/macaw/ent/planstep"
	"github.com/finovant/macaw/ent/predicate"
)

// PlanUpdate is the builder for updating Plan entities.
type PlanUpdate struct {
	config
	hooks    []Hook
	mutation *PlanMutation
}

// Where appends a list predicates to the PlanUpdate builder.
func (_u *PlanUpdate) Where(ps ...predicate.Plan) *PlanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PlanUpdate) SetSessionID(v string) *PlanUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableSessionID(v *string) *PlanUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTaskDescription sets the "task_description" field.
func (_u *PlanUpdate) SetTaskDescription(v string) *PlanUpdate {
	_u.mutation.SetTaskDescription(v)
	return _u
}

// SetNillableTaskDescription sets the "task_description" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableTaskDescription(v *string) *PlanUpdate {
	if v != nil {
		_u.SetTaskDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PlanUpdate) SetStatus(v plan.Status) *PlanUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableStatus(v *plan.Status) *PlanUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAgentSequence sets the "agent_sequence" field.
func (_u *PlanUpdate) SetAgentSequence(v []string) *PlanUpdate {
	_u.mutation.SetAgentSequence(v)
	return _u
}

// AppendAgentSequence appends value to the "agent_sequence" field.
func (_u *PlanUpdate) AppendAgentSequence(v []string) *PlanUpdate {
	_u.mutation.AppendAgentSequence(v)
	return _u
}

// ClearAgentSequence clears the value of the "agent_sequence" field.
func (_u *PlanUpdate) ClearAgentSequence() *PlanUpdate {
	_u.mutation.ClearAgentSequence()
	return _u
}

// SetGraphType sets the "graph_type" field.
func (_u *PlanUpdate) SetGraphType(v string) *PlanUpdate {
	_u.mutation.SetGraphType(v)
	return _u
}

// SetNillableGraphType sets the "graph_type" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableGraphType(v *string) *PlanUpdate {
	if v != nil {
		_u.SetGraphType(*v)
	}
	return _u
}

// ClearGraphType clears the value of the "graph_type" field.
func (_u *PlanUpdate) ClearGraphType() *PlanUpdate {
	_u.mutation.ClearGraphType()
	return _u
}

// SetGraphID sets the "graph_id" field.
func (_u *PlanUpdate) SetGraphID(v string) *PlanUpdate {
	_u.mutation.SetGraphID(v)
	return _u
}

// SetNillableGraphID sets the "graph_id" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableGraphID(v *string) *PlanUpdate {
	if v != nil {
		_u.SetGraphID(*v)
	}
	return _u
}

// ClearGraphID clears the value of the "graph_id" field.
func (_u *PlanUpdate) ClearGraphID() *PlanUpdate {
	_u.mutation.ClearGraphID()
	return _u
}

// SetRequireApproval sets the "require_approval" field.
func (_u *PlanUpdate) SetRequireApproval(v bool) *PlanUpdate {
	_u.mutation.SetRequireApproval(v)
	return _u
}

// SetNillableRequireApproval sets the "require_approval" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableRequireApproval(v *bool) *PlanUpdate {
	if v != nil {
		_u.SetRequireApproval(*v)
	}
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *PlanUpdate) SetCurrentStep(v int) *PlanUpdate {
	_u.mutation.ResetCurrentStep()
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableCurrentStep(v *int) *PlanUpdate {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// AddCurrentStep adds value to the "current_step" field.
func (_u *PlanUpdate) AddCurrentStep(v int) *PlanUpdate {
	_u.mutation.AddCurrentStep(v)
	return _u
}

// SetPlanSummary sets the "plan_summary" field.
func (_u *PlanUpdate) SetPlanSummary(v string) *PlanUpdate {
	_u.mutation.SetPlanSummary(v)
	return _u
}

// SetNillablePlanSummary sets the "plan_summary" field if the given value is not nil.
func (_u *PlanUpdate) SetNillablePlanSummary(v *string) *PlanUpdate {
	if v != nil {
		_u.SetPlanSummary(*v)
	}
	return _u
}

// ClearPlanSummary clears the value of the "plan_summary" field.
func (_u *PlanUpdate) ClearPlanSummary() *PlanUpdate {
	_u.mutation.ClearPlanSummary()
	return _u
}

// SetComplexity sets the "complexity" field.
func (_u *PlanUpdate) SetComplexity(v float64) *PlanUpdate {
	_u.mutation.ResetComplexity()
	_u.mutation.SetComplexity(v)
	return _u
}

// SetNillableComplexity sets the "complexity" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableComplexity(v *float64) *PlanUpdate {
	if v != nil {
		_u.SetComplexity(*v)
	}
	return _u
}

// AddComplexity adds value to the "complexity" field.
func (_u *PlanUpdate) AddComplexity(v float64) *PlanUpdate {
	_u.mutation.AddComplexity(v)
	return _u
}

// ClearComplexity clears the value of the "complexity" field.
func (_u *PlanUpdate) ClearComplexity() *PlanUpdate {
	_u.mutation.ClearComplexity()
	return _u
}

// SetPlanSource sets the "plan_source" field.
func (_u *PlanUpdate) SetPlanSource(v string) *PlanUpdate {
	_u.mutation.SetPlanSource(v)
	return _u
}

// SetNillablePlanSource sets the "plan_source" field if the given value is not nil.
func (_u *PlanUpdate) SetNillablePlanSource(v *string) *PlanUpdate {
	if v != nil {
		_u.SetPlanSource(*v)
	}
	return _u
}

// ClearPlanSource clears the value of the "plan_source" field.
func (_u *PlanUpdate) ClearPlanSource() *PlanUpdate {
	_u.mutation.ClearPlanSource()
	return _u
}

// SetFinalResult sets the "final_result" field.
func (_u *PlanUpdate) SetFinalResult(v string) *PlanUpdate {
	_u.mutation.SetFinalResult(v)
	return _u
}

// SetNillableFinalResult sets the "final_result" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableFinalResult(v *string) *PlanUpdate {
	if v != nil {
		_u.SetFinalResult(*v)
	}
	return _u
}

// ClearFinalResult clears the value of the "final_result" field.
func (_u *PlanUpdate) ClearFinalResult() *PlanUpdate {
	_u.mutation.ClearFinalResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PlanUpdate) SetErrorMessage(v string) *PlanUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableErrorMessage(v *string) *PlanUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PlanUpdate) ClearErrorMessage() *PlanUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetHumanFeedback sets the "human_feedback" field.
func (_u *PlanUpdate) SetHumanFeedback(v string) *PlanUpdate {
	_u.mutation.SetHumanFeedback(v)
	return _u
}

// SetNillableHumanFeedback sets the "human_feedback" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableHumanFeedback(v *string) *PlanUpdate {
	if v != nil {
		_u.SetHumanFeedback(*v)
	}
	return _u
}

// ClearHumanFeedback clears the value of the "human_feedback" field.
func (_u *PlanUpdate) ClearHumanFeedback() *PlanUpdate {
	_u.mutation.ClearHumanFeedback()
	return _u
}

// SetRestartedFrom sets the "restarted_from" field.
func (_u *PlanUpdate) SetRestartedFrom(v string) *PlanUpdate {
	_u.mutation.SetRestartedFrom(v)
	return _u
}

// SetNillableRestartedFrom sets the "restarted_from" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableRestartedFrom(v *string) *PlanUpdate {
	if v != nil {
		_u.SetRestartedFrom(*v)
	}
	return _u
}

// ClearRestartedFrom clears the value of the "restarted_from" field.
func (_u *PlanUpdate) ClearRestartedFrom() *PlanUpdate {
	_u.mutation.ClearRestartedFrom()
	return _u
}

// SetPlanMetadata sets the "plan_metadata" field.
func (_u *PlanUpdate) SetPlanMetadata(v map[string]interface{}) *PlanUpdate {
	_u.mutation.SetPlanMetadata(v)
	return _u
}

// ClearPlanMetadata clears the value of the "plan_metadata" field.
func (_u *PlanUpdate) ClearPlanMetadata() *PlanUpdate {
	_u.mutation.ClearPlanMetadata()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PlanUpdate) SetCreatedAt(v time.Time) *PlanUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableCreatedAt(v *time.Time) *PlanUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PlanUpdate) SetStartedAt(v time.Time) *PlanUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableStartedAt(v *time.Time) *PlanUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PlanUpdate) ClearStartedAt() *PlanUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PlanUpdate) SetCompletedAt(v time.Time) *PlanUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableCompletedAt(v *time.Time) *PlanUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PlanUpdate) ClearCompletedAt() *PlanUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PlanUpdate) SetDeletedAt(v time.Time) *PlanUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableDeletedAt(v *time.Time) *PlanUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PlanUpdate) ClearDeletedAt() *PlanUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddStepIDs adds the "steps" edge to the PlanStep entity by IDs.
func (_u *PlanUpdate) AddStepIDs(ids ...string) *PlanUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the PlanStep entity.
func (_u *PlanUpdate) AddSteps(v ...*PlanStep) *PlanUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the AgentMessage entity by IDs.
func (_u *PlanUpdate) AddMessageIDs(ids ...string) *PlanUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the AgentMessage entity.
func (_u *PlanUpdate) AddMessages(v ...*AgentMessage) *PlanUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *PlanUpdate) AddEventIDs(ids ...int) *PlanUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *PlanUpdate) AddEvents(v ...*Event) *PlanUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddExtractionIDs adds the "extractions" edge to the Extraction entity by IDs.
func (_u *PlanUpdate) AddExtractionIDs(ids ...string) *PlanUpdate {
	_u.mutation.AddExtractionIDs(ids...)
	return _u
}

// AddExtractions adds the "extractions" edges to the Extraction entity.
func (_u *PlanUpdate) AddExtractions(v ...*Extraction) *PlanUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExtractionIDs(ids...)
}

// Mutation returns the PlanMutation object of the builder.
func (_u *PlanUpdate) Mutation() *PlanMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the PlanStep entity.
func (_u *PlanUpdate) ClearSteps() *PlanUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to PlanStep entities by IDs.
func (_u *PlanUpdate) RemoveStepIDs(ids ...string) *PlanUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to PlanStep entities.
func (_u *PlanUpdate) RemoveSteps(v ...*PlanStep) *PlanUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearMessages clears all "messages" edges to the AgentMessage entity.
func (_u *PlanUpdate) ClearMessages() *PlanUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to AgentMessage entities by IDs.
func (_u *PlanUpdate) RemoveMessageIDs(ids ...string) *PlanUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to AgentMessage entities.
func (_u *PlanUpdate) RemoveMessages(v ...*AgentMessage) *PlanUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *PlanUpdate) ClearEvents() *PlanUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *PlanUpdate) RemoveEventIDs(ids ...int) *PlanUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *PlanUpdate) RemoveEvents(v ...*Event) *PlanUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearExtractions clears all "extractions" edges to the Extraction entity.
func (_u *PlanUpdate) ClearExtractions() *PlanUpdate {
	_u.mutation.ClearExtractions()
	return _u
}

// RemoveExtractionIDs removes the "extractions" edge to Extraction entities by IDs.
func (_u *PlanUpdate) RemoveExtractionIDs(ids ...string) *PlanUpdate {
	_u.mutation.RemoveExtractionIDs(ids...)
	return _u
}

// RemoveExtractions removes "extractions" edges to Extraction entities.
func (_u *PlanUpdate) RemoveExtractions(v ...*Extraction) *PlanUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExtractionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlanUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := plan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Plan.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PlanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plan.Table, plan.Columns, sqlgraph.NewFieldSpec(plan.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(plan.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskDescription(); ok {
		_spec.SetField(plan.FieldTaskDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(plan.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgentSequence(); ok {
		_spec.SetField(plan.FieldAgentSequence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAgentSequence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, plan.FieldAgentSequence, value)
		})
	}
	if _u.mutation.AgentSequenceCleared() {
		_spec.ClearField(plan.FieldAgentSequence, field.TypeJSON)
	}
	if value, ok := _u.mutation.GraphType(); ok {
		_spec.SetField(plan.FieldGraphType, field.TypeString, value)
	}
	if _u.mutation.GraphTypeCleared() {
		_spec.ClearField(plan.FieldGraphType, field.TypeString)
	}
	if value, ok := _u.mutation.GraphID(); ok {
		_spec.SetField(plan.FieldGraphID, field.TypeString, value)
	}
	if _u.mutation.GraphIDCleared() {
		_spec.ClearField(plan.FieldGraphID, field.TypeString)
	}
	if value, ok := _u.mutation.RequireApproval(); ok {
		_spec.SetField(plan.FieldRequireApproval, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(plan.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStep(); ok {
		_spec.AddField(plan.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlanSummary(); ok {
		_spec.SetField(plan.FieldPlanSummary, field.TypeString, value)
	}
	if _u.mutation.PlanSummaryCleared() {
		_spec.ClearField(plan.FieldPlanSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Complexity(); ok {
		_spec.SetField(plan.FieldComplexity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedComplexity(); ok {
		_spec.AddField(plan.FieldComplexity, field.TypeFloat64, value)
	}
	if _u.mutation.ComplexityCleared() {
		_spec.ClearField(plan.FieldComplexity, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PlanSource(); ok {
		_spec.SetField(plan.FieldPlanSource, field.TypeString, value)
	}
	if _u.mutation.PlanSourceCleared() {
		_spec.ClearField(plan.FieldPlanSource, field.TypeString)
	}
	if value, ok := _u.mutation.FinalResult(); ok {
		_spec.SetField(plan.FieldFinalResult, field.TypeString, value)
	}
	if _u.mutation.FinalResultCleared() {
		_spec.ClearField(plan.FieldFinalResult, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(plan.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(plan.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.HumanFeedback(); ok {
		_spec.SetField(plan.FieldHumanFeedback, field.TypeString, value)
	}
	if _u.mutation.HumanFeedbackCleared() {
		_spec.ClearField(plan.FieldHumanFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.RestartedFrom(); ok {
		_spec.SetField(plan.FieldRestartedFrom, field.TypeString, value)
	}
	if _u.mutation.RestartedFromCleared() {
		_spec.ClearField(plan.FieldRestartedFrom, field.TypeString)
	}
	if value, ok := _u.mutation.PlanMetadata(); ok {
		_spec.SetField(plan.FieldPlanMetadata, field.TypeJSON, value)
	}
	if _u.mutation.PlanMetadataCleared() {
		_spec.ClearField(plan.FieldPlanMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(plan.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(plan.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(plan.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(plan.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(plan.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(plan.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(plan.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExtractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExtractionsIDs(); len(nodes) > 0 && !_u.mutation.ExtractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlanUpdateOne is the builder for updating a single Plan entity.
type PlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlanMutation
}

// SetSessionID sets the "session_id" field.
func (_u *PlanUpdateOne) SetSessionID(v string) *PlanUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableSessionID(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTaskDescription sets the "task_description" field.
func (_u *PlanUpdateOne) SetTaskDescription(v string) *PlanUpdateOne {
	_u.mutation.SetTaskDescription(v)
	return _u
}

// SetNillableTaskDescription sets the "task_description" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableTaskDescription(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetTaskDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PlanUpdateOne) SetStatus(v plan.Status) *PlanUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableStatus(v *plan.Status) *PlanUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAgentSequence sets the "agent_sequence" field.
func (_u *PlanUpdateOne) SetAgentSequence(v []string) *PlanUpdateOne {
	_u.mutation.SetAgentSequence(v)
	return _u
}

// AppendAgentSequence appends value to the "agent_sequence" field.
func (_u *PlanUpdateOne) AppendAgentSequence(v []string) *PlanUpdateOne {
	_u.mutation.AppendAgentSequence(v)
	return _u
}

// ClearAgentSequence clears the value of the "agent_sequence" field.
func (_u *PlanUpdateOne) ClearAgentSequence() *PlanUpdateOne {
	_u.mutation.ClearAgentSequence()
	return _u
}

// SetGraphType sets the "graph_type" field.
func (_u *PlanUpdateOne) SetGraphType(v string) *PlanUpdateOne {
	_u.mutation.SetGraphType(v)
	return _u
}

// SetNillableGraphType sets the "graph_type" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableGraphType(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetGraphType(*v)
	}
	return _u
}

// ClearGraphType clears the value of the "graph_type" field.
func (_u *PlanUpdateOne) ClearGraphType() *PlanUpdateOne {
	_u.mutation.ClearGraphType()
	return _u
}

// SetGraphID sets the "graph_id" field.
func (_u *PlanUpdateOne) SetGraphID(v string) *PlanUpdateOne {
	_u.mutation.SetGraphID(v)
	return _u
}

// SetNillableGraphID sets the "graph_id" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableGraphID(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetGraphID(*v)
	}
	return _u
}

// ClearGraphID clears the value of the "graph_id" field.
func (_u *PlanUpdateOne) ClearGraphID() *PlanUpdateOne {
	_u.mutation.ClearGraphID()
	return _u
}

// SetRequireApproval sets the "require_approval" field.
func (_u *PlanUpdateOne) SetRequireApproval(v bool) *PlanUpdateOne {
	_u.mutation.SetRequireApproval(v)
	return _u
}

// SetNillableRequireApproval sets the "require_approval" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableRequireApproval(v *bool) *PlanUpdateOne {
	if v != nil {
		_u.SetRequireApproval(*v)
	}
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *PlanUpdateOne) SetCurrentStep(v int) *PlanUpdateOne {
	_u.mutation.ResetCurrentStep()
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableCurrentStep(v *int) *PlanUpdateOne {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// AddCurrentStep adds value to the "current_step" field.
func (_u *PlanUpdateOne) AddCurrentStep(v int) *PlanUpdateOne {
	_u.mutation.AddCurrentStep(v)
	return _u
}

// SetPlanSummary sets the "plan_summary" field.
func (_u *PlanUpdateOne) SetPlanSummary(v string) *PlanUpdateOne {
	_u.mutation.SetPlanSummary(v)
	return _u
}

// SetNillablePlanSummary sets the "plan_summary" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillablePlanSummary(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetPlanSummary(*v)
	}
	return _u
}

// ClearPlanSummary clears the value of the "plan_summary" field.
func (_u *PlanUpdateOne) ClearPlanSummary() *PlanUpdateOne {
	_u.mutation.ClearPlanSummary()
	return _u
}

// SetComplexity sets the "complexity" field.
func (_u *PlanUpdateOne) SetComplexity(v float64) *PlanUpdateOne {
	_u.mutation.ResetComplexity()
	_u.mutation.SetComplexity(v)
	return _u
}

// SetNillableComplexity sets the "complexity" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableComplexity(v *float64) *PlanUpdateOne {
	if v != nil {
		_u.SetComplexity(*v)
	}
	return _u
}

// AddComplexity adds value to the "complexity" field.
func (_u *PlanUpdateOne) AddComplexity(v float64) *PlanUpdateOne {
	_u.mutation.AddComplexity(v)
	return _u
}

// ClearComplexity clears the value of the "complexity" field.
func (_u *PlanUpdateOne) ClearComplexity() *PlanUpdateOne {
	_u.mutation.ClearComplexity()
	return _u
}

// SetPlanSource sets the "plan_source" field.
func (_u *PlanUpdateOne) SetPlanSource(v string) *PlanUpdateOne {
	_u.mutation.SetPlanSource(v)
	return _u
}

// SetNillablePlanSource sets the "plan_source" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillablePlanSource(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetPlanSource(*v)
	}
	return _u
}

// ClearPlanSource clears the value of the "plan_source" field.
func (_u *PlanUpdateOne) ClearPlanSource() *PlanUpdateOne {
	_u.mutation.ClearPlanSource()
	return _u
}

// SetFinalResult sets the "final_result" field.
func (_u *PlanUpdateOne) SetFinalResult(v string) *PlanUpdateOne {
	_u.mutation.SetFinalResult(v)
	return _u
}

// SetNillableFinalResult sets the "final_result" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableFinalResult(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetFinalResult(*v)
	}
	return _u
}

// ClearFinalResult clears the value of the "final_result" field.
func (_u *PlanUpdateOne) ClearFinalResult() *PlanUpdateOne {
	_u.mutation.ClearFinalResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PlanUpdateOne) SetErrorMessage(v string) *PlanUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableErrorMessage(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PlanUpdateOne) ClearErrorMessage() *PlanUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetHumanFeedback sets the "human_feedback" field.
func (_u *PlanUpdateOne) SetHumanFeedback(v string) *PlanUpdateOne {
	_u.mutation.SetHumanFeedback(v)
	return _u
}

// SetNillableHumanFeedback sets the "human_feedback" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableHumanFeedback(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetHumanFeedback(*v)
	}
	return _u
}

// ClearHumanFeedback clears the value of the "human_feedback" field.
func (_u *PlanUpdateOne) ClearHumanFeedback() *PlanUpdateOne {
	_u.mutation.ClearHumanFeedback()
	return _u
}

// SetRestartedFrom sets the "restarted_from" field.
func (_u *PlanUpdateOne) SetRestartedFrom(v string) *PlanUpdateOne {
	_u.mutation.SetRestartedFrom(v)
	return _u
}

// SetNillableRestartedFrom sets the "restarted_from" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableRestartedFrom(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetRestartedFrom(*v)
	}
	return _u
}

// ClearRestartedFrom clears the value of the "restarted_from" field.
func (_u *PlanUpdateOne) ClearRestartedFrom() *PlanUpdateOne {
	_u.mutation.ClearRestartedFrom()
	return _u
}

// SetPlanMetadata sets the "plan_metadata" field.
func (_u *PlanUpdateOne) SetPlanMetadata(v map[string]interface{}) *PlanUpdateOne {
	_u.mutation.SetPlanMetadata(v)
	return _u
}

// ClearPlanMetadata clears the value of the "plan_metadata" field.
func (_u *PlanUpdateOne) ClearPlanMetadata() *PlanUpdateOne {
	_u.mutation.ClearPlanMetadata()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PlanUpdateOne) SetCreatedAt(v time.Time) *PlanUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableCreatedAt(v *time.Time) *PlanUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PlanUpdateOne) SetStartedAt(v time.Time) *PlanUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableStartedAt(v *time.Time) *PlanUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PlanUpdateOne) ClearStartedAt() *PlanUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PlanUpdateOne) SetCompletedAt(v time.Time) *PlanUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableCompletedAt(v *time.Time) *PlanUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PlanUpdateOne) ClearCompletedAt() *PlanUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PlanUpdateOne) SetDeletedAt(v time.Time) *PlanUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableDeletedAt(v *time.Time) *PlanUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PlanUpdateOne) ClearDeletedAt() *PlanUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddStepIDs adds the "steps" edge to the PlanStep entity by IDs.
func (_u *PlanUpdateOne) AddStepIDs(ids ...string) *PlanUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the PlanStep entity.
func (_u *PlanUpdateOne) AddSteps(v ...*PlanStep) *PlanUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the AgentMessage entity by IDs.
func (_u *PlanUpdateOne) AddMessageIDs(ids ...string) *PlanUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the AgentMessage entity.
func (_u *PlanUpdateOne) AddMessages(v ...*AgentMessage) *PlanUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *PlanUpdateOne) AddEventIDs(ids ...int) *PlanUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *PlanUpdateOne) AddEvents(v ...*Event) *PlanUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddExtractionIDs adds the "extractions" edge to the Extraction entity by IDs.
func (_u *PlanUpdateOne) AddExtractionIDs(ids ...string) *PlanUpdateOne {
	_u.mutation.AddExtractionIDs(ids...)
	return _u
}

// AddExtractions adds the "extractions" edges to the Extraction entity.
func (_u *PlanUpdateOne) AddExtractions(v ...*Extraction) *PlanUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExtractionIDs(ids...)
}

// Mutation returns the PlanMutation object of the builder.
func (_u *PlanUpdateOne) Mutation() *PlanMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the PlanStep entity.
func (_u *PlanUpdateOne) ClearSteps() *PlanUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to PlanStep entities by IDs.
func (_u *PlanUpdateOne) RemoveStepIDs(ids ...string) *PlanUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to PlanStep entities.
func (_u *PlanUpdateOne) RemoveSteps(v ...*PlanStep) *PlanUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearMessages clears all "messages" edges to the AgentMessage entity.
func (_u *PlanUpdateOne) ClearMessages() *PlanUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to AgentMessage entities by IDs.
func (_u *PlanUpdateOne) RemoveMessageIDs(ids ...string) *PlanUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to AgentMessage entities.
func (_u *PlanUpdateOne) RemoveMessages(v ...*AgentMessage) *PlanUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *PlanUpdateOne) ClearEvents() *PlanUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *PlanUpdateOne) RemoveEventIDs(ids ...int) *PlanUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *PlanUpdateOne) RemoveEvents(v ...*Event) *PlanUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearExtractions clears all "extractions" edges to the Extraction entity.
func (_u *PlanUpdateOne) ClearExtractions() *PlanUpdateOne {
	_u.mutation.ClearExtractions()
	return _u
}

// RemoveExtractionIDs removes the "extractions" edge to Extraction entities by IDs.
func (_u *PlanUpdateOne) RemoveExtractionIDs(ids ...string) *PlanUpdateOne {
	_u.mutation.RemoveExtractionIDs(ids...)
	return _u
}

// RemoveExtractions removes "extractions" edges to Extraction entities.
func (_u *PlanUpdateOne) RemoveExtractions(v ...*Extraction) *PlanUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExtractionIDs(ids...)
}

// Where appends a list predicates to the PlanUpdate builder.
func (_u *PlanUpdateOne) Where(ps ...predicate.Plan) *PlanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlanUpdateOne) Select(field string, fields ...string) *PlanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Plan entity.
func (_u *PlanUpdateOne) Save(ctx context.Context) (*Plan, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanUpdateOne) SaveX(ctx context.Context) *Plan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := plan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Plan.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PlanUpdateOne) sqlSave(ctx context.Context) (_node *Plan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plan.Table, plan.Columns, sqlgraph.NewFieldSpec(plan.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Plan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, plan.FieldID)
		for _, f := range fields {
			if !plan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != plan.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(plan.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskDescription(); ok {
		_spec.SetField(plan.FieldTaskDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(plan.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgentSequence(); ok {
		_spec.SetField(plan.FieldAgentSequence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAgentSequence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, plan.FieldAgentSequence, value)
		})
	}
	if _u.mutation.AgentSequenceCleared() {
		_spec.ClearField(plan.FieldAgentSequence, field.TypeJSON)
	}
	if value, ok := _u.mutation.GraphType(); ok {
		_spec.SetField(plan.FieldGraphType, field.TypeString, value)
	}
	if _u.mutation.GraphTypeCleared() {
		_spec.ClearField(plan.FieldGraphType, field.TypeString)
	}
	if value, ok := _u.mutation.GraphID(); ok {
		_spec.SetField(plan.FieldGraphID, field.TypeString, value)
	}
	if _u.mutation.GraphIDCleared() {
		_spec.ClearField(plan.FieldGraphID, field.TypeString)
	}
	if value, ok := _u.mutation.RequireApproval(); ok {
		_spec.SetField(plan.FieldRequireApproval, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(plan.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStep(); ok {
		_spec.AddField(plan.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlanSummary(); ok {
		_spec.SetField(plan.FieldPlanSummary, field.TypeString, value)
	}
	if _u.mutation.PlanSummaryCleared() {
		_spec.ClearField(plan.FieldPlanSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Complexity(); ok {
		_spec.SetField(plan.FieldComplexity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedComplexity(); ok {
		_spec.AddField(plan.FieldComplexity, field.TypeFloat64, value)
	}
	if _u.mutation.ComplexityCleared() {
		_spec.ClearField(plan.FieldComplexity, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PlanSource(); ok {
		_spec.SetField(plan.FieldPlanSource, field.TypeString, value)
	}
	if _u.mutation.PlanSourceCleared() {
		_spec.ClearField(plan.FieldPlanSource, field.TypeString)
	}
	if value, ok := _u.mutation.FinalResult(); ok {
		_spec.SetField(plan.FieldFinalResult, field.TypeString, value)
	}
	if _u.mutation.FinalResultCleared() {
		_spec.ClearField(plan.FieldFinalResult, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(plan.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(plan.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.HumanFeedback(); ok {
		_spec.SetField(plan.FieldHumanFeedback, field.TypeString, value)
	}
	if _u.mutation.HumanFeedbackCleared() {
		_spec.ClearField(plan.FieldHumanFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.RestartedFrom(); ok {
		_spec.SetField(plan.FieldRestartedFrom, field.TypeString, value)
	}
	if _u.mutation.RestartedFromCleared() {
		_spec.ClearField(plan.FieldRestartedFrom, field.TypeString)
	}
	if value, ok := _u.mutation.PlanMetadata(); ok {
		_spec.SetField(plan.FieldPlanMetadata, field.TypeJSON, value)
	}
	if _u.mutation.PlanMetadataCleared() {
		_spec.ClearField(plan.FieldPlanMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(plan.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(plan.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(plan.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(plan.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(plan.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(plan.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(plan.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExtractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExtractionsIDs(); len(nodes) > 0 && !_u.mutation.ExtractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Plan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
