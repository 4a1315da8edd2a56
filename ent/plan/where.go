// Code generated by ent, DO NOT EDIT.

package plan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/finovant/macaw/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Plan {
	return predicate.Plan(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Plan {
	return predicate.Plan(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldSessionID, v))
}

// TaskDescription applies equality check predicate on the "task_description" field. It's identical to TaskDescriptionEQ.
func TaskDescription(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldTaskDescription, v))
}

// GraphType applies equality check predicate on the "graph_type" field. It's identical to GraphTypeEQ.
func GraphType(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldGraphType, v))
}

// GraphID applies equality check predicate on the "graph_id" field. It's identical to GraphIDEQ.
func GraphID(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldGraphID, v))
}

// RequireApproval applies equality check predicate on the "require_approval" field. It's identical to RequireApprovalEQ.
func RequireApproval(v bool) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldRequireApproval, v))
}

// CurrentStep applies equality check predicate on the "current_step" field. It's identical to CurrentStepEQ.
func CurrentStep(v int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldCurrentStep, v))
}

// PlanSummary applies equality check predicate on the "plan_summary" field. It's identical to PlanSummaryEQ.
func PlanSummary(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldPlanSummary, v))
}

// Complexity applies equality check predicate on the "complexity" field. It's identical to ComplexityEQ.
func Complexity(v float64) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldComplexity, v))
}

// PlanSource applies equality check predicate on the "plan_source" field. It's identical to PlanSourceEQ.
func PlanSource(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldPlanSource, v))
}

// FinalResult applies equality check predicate on the "final_result" field. It's identical to FinalResultEQ.
func FinalResult(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldFinalResult, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldErrorMessage, v))
}

// HumanFeedback applies equality check predicate on the "human_feedback" field. It's identical to HumanFeedbackEQ.
func HumanFeedback(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldHumanFeedback, v))
}

// RestartedFrom applies equality check predicate on the "restarted_from" field. It's identical to RestartedFromEQ.
func RestartedFrom(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldRestartedFrom, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldCompletedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldDeletedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContainsFold(FieldSessionID, v))
}

// TaskDescriptionEQ applies the EQ predicate on the "task_description" field.
func TaskDescriptionEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldTaskDescription, v))
}

// TaskDescriptionNEQ applies the NEQ predicate on the "task_description" field.
func TaskDescriptionNEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldTaskDescription, v))
}

// TaskDescriptionIn applies the In predicate on the "task_description" field.
func TaskDescriptionIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldTaskDescription, vs...))
}

// TaskDescriptionNotIn applies the NotIn predicate on the "task_description" field.
func TaskDescriptionNotIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldTaskDescription, vs...))
}

// TaskDescriptionGT applies the GT predicate on the "task_description" field.
func TaskDescriptionGT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldTaskDescription, v))
}

// TaskDescriptionGTE applies the GTE predicate on the "task_description" field.
func TaskDescriptionGTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldTaskDescription, v))
}

// TaskDescriptionLT applies the LT predicate on the "task_description" field.
func TaskDescriptionLT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldTaskDescription, v))
}

// TaskDescriptionLTE applies the LTE predicate on the "task_description" field.
func TaskDescriptionLTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldTaskDescription, v))
}

// TaskDescriptionContains applies the Contains predicate on the "task_description" field.
func TaskDescriptionContains(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContains(FieldTaskDescription, v))
}

// TaskDescriptionHasPrefix applies the HasPrefix predicate on the "task_description" field.
func TaskDescriptionHasPrefix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasPrefix(FieldTaskDescription, v))
}

// TaskDescriptionHasSuffix applies the HasSuffix predicate on the "task_description" field.
func TaskDescriptionHasSuffix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasSuffix(FieldTaskDescription, v))
}

// TaskDescriptionEqualFold applies the EqualFold predicate on the "task_description" field.
func TaskDescriptionEqualFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEqualFold(FieldTaskDescription, v))
}

// TaskDescriptionContainsFold applies the ContainsFold predicate on the "task_description" field.
func TaskDescriptionContainsFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContainsFold(FieldTaskDescription, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldStatus, vs...))
}

// AgentSequenceIsNil applies the IsNil predicate on the "agent_sequence" field.
func AgentSequenceIsNil() predicate.Plan {
	return predicate.Plan(sql.FieldIsNull(FieldAgentSequence))
}

// AgentSequenceNotNil applies the NotNil predicate on the "agent_sequence" field.
func AgentSequenceNotNil() predicate.Plan {
	return predicate.Plan(sql.FieldNotNull(FieldAgentSequence))
}

// GraphTypeEQ applies the EQ predicate on the "graph_type" field.
func GraphTypeEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldGraphType, v))
}

// GraphTypeNEQ applies the NEQ predicate on the "graph_type" field.
func GraphTypeNEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldGraphType, v))
}

// GraphTypeIn applies the In predicate on the "graph_type" field.
func GraphTypeIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldGraphType, vs...))
}

// GraphTypeNotIn applies the NotIn predicate on the "graph_type" field.
func GraphTypeNotIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldGraphType, vs...))
}

// GraphTypeGT applies the GT predicate on the "graph_type" field.
func GraphTypeGT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldGraphType, v))
}

// GraphTypeGTE applies the GTE predicate on the "graph_type" field.
func GraphTypeGTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldGraphType, v))
}

// GraphTypeLT applies the LT predicate on the "graph_type" field.
func GraphTypeLT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldGraphType, v))
}

// GraphTypeLTE applies the LTE predicate on the "graph_type" field.
func GraphTypeLTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldGraphType, v))
}

// GraphTypeContains applies the Contains predicate on the "graph_type" field.
func GraphTypeContains(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContains(FieldGraphType, v))
}

// GraphTypeHasPrefix applies the HasPrefix predicate on the "graph_type" field.
func GraphTypeHasPrefix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasPrefix(FieldGraphType, v))
}

// GraphTypeHasSuffix applies the HasSuffix predicate on the "graph_type" field.
func GraphTypeHasSuffix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasSuffix(FieldGraphType, v))
}

// GraphTypeIsNil applies the IsNil predicate on the "graph_type" field.
func GraphTypeIsNil() predicate.Plan {
	return predicate.Plan(sql.FieldIsNull(FieldGraphType))
}

// GraphTypeNotNil applies the NotNil predicate on the "graph_type" field.
func GraphTypeNotNil() predicate.Plan {
	return predicate.Plan(sql.FieldNotNull(FieldGraphType))
}

// GraphTypeEqualFold applies the EqualFold predicate on the "graph_type" field.
func GraphTypeEqualFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEqualFold(FieldGraphType, v))
}

// GraphTypeContainsFold applies the ContainsFold predicate on the "graph_type" field.
func GraphTypeContainsFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContainsFold(FieldGraphType, v))
}

// GraphIDEQ applies the EQ predicate on the "graph_id" field.
func GraphIDEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldGraphID, v))
}

// GraphIDNEQ applies the NEQ predicate on the "graph_id" field.
func GraphIDNEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldGraphID, v))
}

// GraphIDIn applies the In predicate on the "graph_id" field.
func GraphIDIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldGraphID, vs...))
}

// GraphIDNotIn applies the NotIn predicate on the "graph_id" field.
func GraphIDNotIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldGraphID, vs...))
}

// GraphIDGT applies the GT predicate on the "graph_id" field.
func GraphIDGT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldGraphID, v))
}

// GraphIDGTE applies the GTE predicate on the "graph_id" field.
func GraphIDGTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldGraphID, v))
}

// GraphIDLT applies the LT predicate on the "graph_id" field.
func GraphIDLT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldGraphID, v))
}

// GraphIDLTE applies the LTE predicate on the "graph_id" field.
func GraphIDLTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldGraphID, v))
}

// GraphIDContains applies the Contains predicate on the "graph_id" field.
func GraphIDContains(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContains(FieldGraphID, v))
}

// GraphIDHasPrefix applies the HasPrefix predicate on the "graph_id" field.
func GraphIDHasPrefix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasPrefix(FieldGraphID, v))
}

// GraphIDHasSuffix applies the HasSuffix predicate on the "graph_id" field.
func GraphIDHasSuffix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasSuffix(FieldGraphID, v))
}

// GraphIDIsNil applies the IsNil predicate on the "graph_id" field.
func GraphIDIsNil() predicate.Plan {
	return predicate.Plan(sql.FieldIsNull(FieldGraphID))
}

// GraphIDNotNil applies the NotNil predicate on the "graph_id" field.
func GraphIDNotNil() predicate.Plan {
	return predicate.Plan(sql.FieldNotNull(FieldGraphID))
}

// GraphIDEqualFold applies the EqualFold predicate on the "graph_id" field.
func GraphIDEqualFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEqualFold(FieldGraphID, v))
}

// GraphIDContainsFold applies the ContainsFold predicate on the "graph_id" field.
func GraphIDContainsFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContainsFold(FieldGraphID, v))
}

// RequireApprovalEQ applies the EQ predicate on the "require_approval" field.
func RequireApprovalEQ(v bool) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldRequireApproval, v))
}

// RequireApprovalNEQ applies the NEQ predicate on the "require_approval" field.
func RequireApprovalNEQ(v bool) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldRequireApproval, v))
}

// CurrentStepEQ applies the EQ predicate on the "current_step" field.
func CurrentStepEQ(v int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldCurrentStep, v))
}

// CurrentStepNEQ applies the NEQ predicate on the "current_step" field.
func CurrentStepNEQ(v int) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldCurrentStep, v))
}

// CurrentStepIn applies the In predicate on the "current_step" field.
func CurrentStepIn(vs ...int) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldCurrentStep, vs...))
}

// CurrentStepNotIn applies the NotIn predicate on the "current_step" field.
func CurrentStepNotIn(vs ...int) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldCurrentStep, vs...))
}

// CurrentStepGT applies the GT predicate on the "current_step" field.
func CurrentStepGT(v int) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldCurrentStep, v))
}

// CurrentStepGTE applies the GTE predicate on the "current_step" field.
func CurrentStepGTE(v int) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldCurrentStep, v))
}

// CurrentStepLT applies the LT predicate on the "current_step" field.
func CurrentStepLT(v int) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldCurrentStep, v))
}

// CurrentStepLTE applies the LTE predicate on the "current_step" field.
func CurrentStepLTE(v int) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldCurrentStep, v))
}

// PlanSummaryEQ applies the EQ predicate on the "plan_summary" field.
func PlanSummaryEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldPlanSummary, v))
}

// PlanSummaryNEQ applies the NEQ predicate on the "plan_summary" field.
func PlanSummaryNEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldPlanSummary, v))
}

// PlanSummaryIn applies the In predicate on the "plan_summary" field.
func PlanSummaryIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldPlanSummary, vs...))
}

// PlanSummaryNotIn applies the NotIn predicate on the "plan_summary" field.
func PlanSummaryNotIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldPlanSummary, vs...))
}

// PlanSummaryGT applies the GT predicate on the "plan_summary" field.
func PlanSummaryGT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldPlanSummary, v))
}

// PlanSummaryGTE applies the GTE predicate on the "plan_summary" field.
func PlanSummaryGTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldPlanSummary, v))
}

// PlanSummaryLT applies the LT predicate on the "plan_summary" field.
func PlanSummaryLT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldPlanSummary, v))
}

// PlanSummaryLTE applies the LTE predicate on the "plan_summary" field.
func PlanSummaryLTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldPlanSummary, v))
}

// PlanSummaryContains applies the Contains predicate on the "plan_summary" field.
func PlanSummaryContains(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContains(FieldPlanSummary, v))
}

// PlanSummaryHasPrefix applies the HasPrefix predicate on the "plan_summary" field.
func PlanSummaryHasPrefix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasPrefix(FieldPlanSummary, v))
}

// PlanSummaryHasSuffix applies the HasSuffix predicate on the "plan_summary" field.
func PlanSummaryHasSuffix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasSuffix(FieldPlanSummary, v))
}

// PlanSummaryIsNil applies the IsNil predicate on the "plan_summary" field.
func PlanSummaryIsNil() predicate.Plan {
	return predicate.Plan(sql.FieldIsNull(FieldPlanSummary))
}

// PlanSummaryNotNil applies the NotNil predicate on the "plan_summary" field.
func PlanSummaryNotNil() predicate.Plan {
	return predicate.Plan(sql.FieldNotNull(FieldPlanSummary))
}

// PlanSummaryEqualFold applies the EqualFold predicate on the "plan_summary" field.
func PlanSummaryEqualFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEqualFold(FieldPlanSummary, v))
}

// PlanSummaryContainsFold applies the ContainsFold predicate on the "plan_summary" field.
func PlanSummaryContainsFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContainsFold(FieldPlanSummary, v))
}

// ComplexityEQ applies the EQ predicate on the "complexity" field.
func ComplexityEQ(v float64) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldComplexity, v))
}

// ComplexityNEQ applies the NEQ predicate on the "complexity" field.
func ComplexityNEQ(v float64) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldComplexity, v))
}

// ComplexityIn applies the In predicate on the "complexity" field.
func ComplexityIn(vs ...float64) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldComplexity, vs...))
}

// ComplexityNotIn applies the NotIn predicate on the "complexity" field.
func ComplexityNotIn(vs ...float64) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldComplexity, vs...))
}

// ComplexityGT applies the GT predicate on the "complexity" field.
func ComplexityGT(v float64) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldComplexity, v))
}

// ComplexityGTE applies the GTE predicate on the "complexity" field.
func ComplexityGTE(v float64) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldComplexity, v))
}

// ComplexityLT applies the LT predicate on the "complexity" field.
func ComplexityLT(v float64) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldComplexity, v))
}

// ComplexityLTE applies the LTE predicate on the "complexity" field.
func ComplexityLTE(v float64) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldComplexity, v))
}

// ComplexityIsNil applies the IsNil predicate on the "complexity" field.
func ComplexityIsNil() predicate.Plan {
	return predicate.Plan(sql.FieldIsNull(FieldComplexity))
}

// ComplexityNotNil applies the NotNil predicate on the "complexity" field.
func ComplexityNotNil() predicate.Plan {
	return predicate.Plan(sql.FieldNotNull(FieldComplexity))
}

// PlanSourceEQ applies the EQ predicate on the "plan_source" field.
func PlanSourceEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldPlanSource, v))
}

// PlanSourceNEQ applies the NEQ predicate on the "plan_source" field.
func PlanSourceNEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldPlanSource, v))
}

// PlanSourceIn applies the In predicate on the "plan_source" field.
func PlanSourceIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldPlanSource, vs...))
}

// PlanSourceNotIn applies the NotIn predicate on the "plan_source" field.
func PlanSourceNotIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldPlanSource, vs...))
}

// PlanSourceGT applies the GT predicate on the "plan_source" field.
func PlanSourceGT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldPlanSource, v))
}

// PlanSourceGTE applies the GTE predicate on the "plan_source" field.
func PlanSourceGTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldPlanSource, v))
}

// PlanSourceLT applies the LT predicate on the "plan_source" field.
func PlanSourceLT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldPlanSource, v))
}

// PlanSourceLTE applies the LTE predicate on the "plan_source" field.
func PlanSourceLTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldPlanSource, v))
}

// PlanSourceContains applies the Contains predicate on the "plan_source" field.
func PlanSourceContains(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContains(FieldPlanSource, v))
}

// PlanSourceHasPrefix applies the HasPrefix predicate on the "plan_source" field.
func PlanSourceHasPrefix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasPrefix(FieldPlanSource, v))
}

// PlanSourceHasSuffix applies the HasSuffix predicate on the "plan_source" field.
func PlanSourceHasSuffix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasSuffix(FieldPlanSource, v))
}

// PlanSourceIsNil applies the IsNil predicate on the "plan_source" field.
func PlanSourceIsNil() predicate.Plan {
	return predicate.Plan(sql.FieldIsNull(FieldPlanSource))
}

// PlanSourceNotNil applies the NotNil predicate on the "plan_source" field.
func PlanSourceNotNil() predicate.Plan {
	return predicate.Plan(sql.FieldNotNull(FieldPlanSource))
}

// PlanSourceEqualFold applies the EqualFold predicate on the "plan_source" field.
func PlanSourceEqualFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEqualFold(FieldPlanSource, v))
}

// PlanSourceContainsFold applies the ContainsFold predicate on the "plan_source" field.
func PlanSourceContainsFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContainsFold(FieldPlanSource, v))
}

// FinalResultEQ applies the EQ predicate on the "final_result" field.
func FinalResultEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldFinalResult, v))
}

// FinalResultNEQ applies the NEQ predicate on the "final_result" field.
func FinalResultNEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldFinalResult, v))
}

// FinalResultIn applies the In predicate on the "final_result" field.
func FinalResultIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldFinalResult, vs...))
}

// FinalResultNotIn applies the NotIn predicate on the "final_result" field.
func FinalResultNotIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldFinalResult, vs...))
}

// FinalResultGT applies the GT predicate on the "final_result" field.
func FinalResultGT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldFinalResult, v))
}

// FinalResultGTE applies the GTE predicate on the "final_result" field.
func FinalResultGTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldFinalResult, v))
}

// FinalResultLT applies the LT predicate on the "final_result" field.
func FinalResultLT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldFinalResult, v))
}

// FinalResultLTE applies the LTE predicate on the "final_result" field.
func FinalResultLTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldFinalResult, v))
}

// FinalResultContains applies the Contains predicate on the "final_result" field.
func FinalResultContains(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContains(FieldFinalResult, v))
}

// FinalResultHasPrefix applies the HasPrefix predicate on the "final_result" field.
func FinalResultHasPrefix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasPrefix(FieldFinalResult, v))
}

// FinalResultHasSuffix applies the HasSuffix predicate on the "final_result" field.
func FinalResultHasSuffix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasSuffix(FieldFinalResult, v))
}

// FinalResultIsNil applies the IsNil predicate on the "final_result" field.
func FinalResultIsNil() predicate.Plan {
	return predicate.Plan(sql.FieldIsNull(FieldFinalResult))
}

// FinalResultNotNil applies the NotNil predicate on the "final_result" field.
func FinalResultNotNil() predicate.Plan {
	return predicate.Plan(sql.FieldNotNull(FieldFinalResult))
}

// FinalResultEqualFold applies the EqualFold predicate on the "final_result" field.
func FinalResultEqualFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEqualFold(FieldFinalResult, v))
}

// FinalResultContainsFold applies the ContainsFold predicate on the "final_result" field.
func FinalResultContainsFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContainsFold(FieldFinalResult, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Plan {
	return predicate.Plan(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Plan {
	return predicate.Plan(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContainsFold(FieldErrorMessage, v))
}

// HumanFeedbackEQ applies the EQ predicate on the "human_feedback" field.
func HumanFeedbackEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldHumanFeedback, v))
}

// HumanFeedbackNEQ applies the NEQ predicate on the "human_feedback" field.
func HumanFeedbackNEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldHumanFeedback, v))
}

// HumanFeedbackIn applies the In predicate on the "human_feedback" field.
func HumanFeedbackIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldHumanFeedback, vs...))
}

// HumanFeedbackNotIn applies the NotIn predicate on the "human_feedback" field.
func HumanFeedbackNotIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldHumanFeedback, vs...))
}

// HumanFeedbackGT applies the GT predicate on the "human_feedback" field.
func HumanFeedbackGT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldHumanFeedback, v))
}

// HumanFeedbackGTE applies the GTE predicate on the "human_feedback" field.
func HumanFeedbackGTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldHumanFeedback, v))
}

// HumanFeedbackLT applies the LT predicate on the "human_feedback" field.
func HumanFeedbackLT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldHumanFeedback, v))
}

// HumanFeedbackLTE applies the LTE predicate on the "human_feedback" field.
func HumanFeedbackLTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldHumanFeedback, v))
}

// HumanFeedbackContains applies the Contains predicate on the "human_feedback" field.
func HumanFeedbackContains(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContains(FieldHumanFeedback, v))
}

// HumanFeedbackHasPrefix applies the HasPrefix predicate on the "human_feedback" field.
func HumanFeedbackHasPrefix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasPrefix(FieldHumanFeedback, v))
}

// HumanFeedbackHasSuffix applies the HasSuffix predicate on the "human_feedback" field.
func HumanFeedbackHasSuffix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasSuffix(FieldHumanFeedback, v))
}

// HumanFeedbackIsNil applies the IsNil predicate on the "human_feedback" field.
func HumanFeedbackIsNil() predicate.Plan {
	return predicate.Plan(sql.FieldIsNull(FieldHumanFeedback))
}

// HumanFeedbackNotNil applies the NotNil predicate on the "human_feedback" field.
func HumanFeedbackNotNil() predicate.Plan {
	return predicate.Plan(sql.FieldNotNull(FieldHumanFeedback))
}

// HumanFeedbackEqualFold applies the EqualFold predicate on the "human_feedback" field.
func HumanFeedbackEqualFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEqualFold(FieldHumanFeedback, v))
}

// HumanFeedbackContainsFold applies the ContainsFold predicate on the "human_feedback" field.
func HumanFeedbackContainsFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContainsFold(FieldHumanFeedback, v))
}

// RestartedFromEQ applies the EQ predicate on the "restarted_from" field.
func RestartedFromEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldRestartedFrom, v))
}

// RestartedFromNEQ applies the NEQ predicate on the "restarted_from" field.
func RestartedFromNEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldRestartedFrom, v))
}

// RestartedFromIn applies the In predicate on the "restarted_from" field.
func RestartedFromIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldRestartedFrom, vs...))
}

// RestartedFromNotIn applies the NotIn predicate on the "restarted_from" field.
func RestartedFromNotIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldRestartedFrom, vs...))
}

// RestartedFromGT applies the GT predicate on the "restarted_from" field.
func RestartedFromGT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldRestartedFrom, v))
}

// RestartedFromGTE applies the GTE predicate on the "restarted_from" field.
func RestartedFromGTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldRestartedFrom, v))
}

// RestartedFromLT applies the LT predicate on the "restarted_from" field.
func RestartedFromLT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldRestartedFrom, v))
}

// RestartedFromLTE applies the LTE predicate on the "restarted_from" field.
func RestartedFromLTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldRestartedFrom, v))
}

// RestartedFromContains applies the Contains predicate on the "restarted_from" field.
func RestartedFromContains(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContains(FieldRestartedFrom, v))
}

// RestartedFromHasPrefix applies the HasPrefix predicate on the "restarted_from" field.
func RestartedFromHasPrefix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasPrefix(FieldRestartedFrom, v))
}

// RestartedFromHasSuffix applies the HasSuffix predicate on the "restarted_from" field.
func RestartedFromHasSuffix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasSuffix(FieldRestartedFrom, v))
}

// RestartedFromIsNil applies the IsNil predicate on the "restarted_from" field.
func RestartedFromIsNil() predicate.Plan {
	return predicate.Plan(sql.FieldIsNull(FieldRestartedFrom))
}

// RestartedFromNotNil applies the NotNil predicate on the "restarted_from" field.
func RestartedFromNotNil() predicate.Plan {
	return predicate.Plan(sql.FieldNotNull(FieldRestartedFrom))
}

// RestartedFromEqualFold applies the EqualFold predicate on the "restarted_from" field.
func RestartedFromEqualFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEqualFold(FieldRestartedFrom, v))
}

// RestartedFromContainsFold applies the ContainsFold predicate on the "restarted_from" field.
func RestartedFromContainsFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContainsFold(FieldRestartedFrom, v))
}

// PlanMetadataIsNil applies the IsNil predicate on the "plan_metadata" field.
func PlanMetadataIsNil() predicate.Plan {
	return predicate.Plan(sql.FieldIsNull(FieldPlanMetadata))
}

// PlanMetadataNotNil applies the NotNil predicate on the "plan_metadata" field.
func PlanMetadataNotNil() predicate.Plan {
	return predicate.Plan(sql.FieldNotNull(FieldPlanMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Plan {
	return predicate.Plan(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Plan {
	return predicate.Plan(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Plan {
	return predicate.Plan(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Plan {
	return predicate.Plan(sql.FieldNotNull(FieldCompletedAt))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Plan {
	return predicate.Plan(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Plan {
	return predicate.Plan(sql.FieldNotNull(FieldDeletedAt))
}

// HasSteps applies the HasEdge predicate on the "steps" edge.
func HasSteps() predicate.Plan {
	return predicate.Plan(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepsWith applies the HasEdge predicate on the "steps" edge with a given conditions (other predicates).
func HasStepsWith(preds ...predicate.PlanStep) predicate.Plan {
	return predicate.Plan(func(s *sql.Selector) {
		step := newStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.Plan {
	return predicate.Plan(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.AgentMessage) predicate.Plan {
	return predicate.Plan(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Plan {
	return predicate.Plan(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.Plan {
	return predicate.Plan(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExtractions applies the HasEdge predicate on the "extractions" edge.
func HasExtractions() predicate.Plan {
	return predicate.Plan(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExtractionsTable, ExtractionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExtractionsWith applies the HasEdge predicate on the "extractions" edge with a given conditions (other predicates).
func HasExtractionsWith(preds ...predicate.Extraction) predicate.Plan {
	return predicate.Plan(func(s *sql.Selector) {
		step := newExtractionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Plan) predicate.Plan {
	return predicate.Plan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Plan) predicate.Plan {
	return predicate.Plan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Plan) predicate.Plan {
	return predicate.Plan(sql.NotPredicates(p))
}
