// Code generated by ent, DO NOT EDIT.

package plan

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the plan type in the database.
	Label = "plan"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "plan_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTaskDescription holds the string denoting the task_description field in the database.
	FieldTaskDescription = "task_description"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAgentSequence holds the string denoting the agent_sequence field in the database.
	FieldAgentSequence = "agent_sequence"
	// FieldGraphType holds the string denoting the graph_type field in the database.
	FieldGraphType = "graph_type"
	// FieldGraphID holds the string denoting the graph_id field in the database.
	FieldGraphID = "graph_id"
	// FieldRequireApproval holds the string denoting the require_approval field in the database.
	FieldRequireApproval = "require_approval"
	// FieldCurrentStep holds the string denoting the current_step field in the database.
	FieldCurrentStep = "current_step"
	// FieldPlanSummary holds the string denoting the plan_summary field in the database.
	FieldPlanSummary = "plan_summary"
	// FieldComplexity holds the string denoting the complexity field in the database.
	FieldComplexity = "complexity"
	// FieldPlanSource holds the string denoting the plan_source field in the database.
	FieldPlanSource = "plan_source"
	// FieldFinalResult holds the string denoting the final_result field in the database.
	FieldFinalResult = "final_result"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldHumanFeedback holds the string denoting the human_feedback field in the database.
	FieldHumanFeedback = "human_feedback"
	// FieldRestartedFrom holds the string denoting the restarted_from field in the database.
	FieldRestartedFrom = "restarted_from"
	// FieldPlanMetadata holds the string denoting the plan_metadata field in the database.
	FieldPlanMetadata = "plan_metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeSteps holds the string denoting the steps edge name in mutations.
	EdgeSteps = "steps"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgeExtractions holds the string denoting the extractions edge name in mutations.
	EdgeExtractions = "extractions"
	// PlanStepFieldID holds the string denoting the ID field of the PlanStep.
	PlanStepFieldID = "step_id"
	// AgentMessageFieldID holds the string denoting the ID field of the AgentMessage.
	AgentMessageFieldID = "message_id"
	// EventFieldID holds the string denoting the ID field of the Event.
	EventFieldID = "id"
	// ExtractionFieldID holds the string denoting the ID field of the Extraction.
	ExtractionFieldID = "extraction_id"
	// Table holds the table name of the plan in the database.
	Table = "plans"
	// StepsTable is the table that holds the steps relation/edge.
	StepsTable = "plan_steps"
	// StepsInverseTable is the table name for the PlanStep entity.
	// It exists in this package in order to avoid circular dependency with the "planstep" package.
	StepsInverseTable = "plan_steps"
	// StepsColumn is the table column denoting the steps relation/edge.
	StepsColumn = "plan_id"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "agent_messages"
	// MessagesInverseTable is the table name for the AgentMessage entity.
	// It exists in this package in order to avoid circular dependency with the "agentmessage" package.
	MessagesInverseTable = "agent_messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "plan_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "events"
	// EventsInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventsInverseTable = "events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "plan_id"
	// ExtractionsTable is the table that holds the extractions relation/edge.
	ExtractionsTable = "extractions"
	// ExtractionsInverseTable is the table name for the Extraction entity.
	// It exists in this package in order to avoid circular dependency with the "extraction" package.
	ExtractionsInverseTable = "extractions"
	// ExtractionsColumn is the table column denoting the extractions relation/edge.
	ExtractionsColumn = "plan_id"
)

// Columns holds all SQL columns for plan fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldTaskDescription,
	FieldStatus,
	FieldAgentSequence,
	FieldGraphType,
	FieldGraphID,
	FieldRequireApproval,
	FieldCurrentStep,
	FieldPlanSummary,
	FieldComplexity,
	FieldPlanSource,
	FieldFinalResult,
	FieldErrorMessage,
	FieldHumanFeedback,
	FieldRestartedFrom,
	FieldPlanMetadata,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDeletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultRequireApproval holds the default value on creation for the "require_approval" field.
	DefaultRequireApproval bool
	// DefaultCurrentStep holds the default value on creation for the "current_step" field.
	DefaultCurrentStep int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending         Status = "pending"
	StatusPendingApproval Status = "pending_approval"
	StatusInProgress      Status = "in_progress"
	StatusCompleted       Status = "completed"
	StatusFailed          Status = "failed"
	StatusRejected        Status = "rejected"
	StatusRestarted       Status = "restarted"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusPendingApproval, StatusInProgress, StatusCompleted, StatusFailed, StatusRejected, StatusRestarted:
		return nil
	default:
		return fmt.Errorf("plan: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Plan queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTaskDescription orders the results by the task_description field.
func ByTaskDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskDescription, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByGraphType orders the results by the graph_type field.
func ByGraphType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGraphType, opts...).ToFunc()
}

// ByGraphID orders the results by the graph_id field.
func ByGraphID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGraphID, opts...).ToFunc()
}

// ByRequireApproval orders the results by the require_approval field.
func ByRequireApproval(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequireApproval, opts...).ToFunc()
}

// ByCurrentStep orders the results by the current_step field.
func ByCurrentStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStep, opts...).ToFunc()
}

// ByPlanSummary orders the results by the plan_summary field.
func ByPlanSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanSummary, opts...).ToFunc()
}

// ByComplexity orders the results by the complexity field.
func ByComplexity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComplexity, opts...).ToFunc()
}

// ByPlanSource orders the results by the plan_source field.
func ByPlanSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanSource, opts...).ToFunc()
}

// ByFinalResult orders the results by the final_result field.
func ByFinalResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalResult, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByHumanFeedback orders the results by the human_feedback field.
func ByHumanFeedback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHumanFeedback, opts...).ToFunc()
}

// ByRestartedFrom orders the results by the restarted_from field.
func ByRestartedFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRestartedFrom, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByStepsCount orders the results by steps count.
func ByStepsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepsStep(), opts...)
	}
}

// BySteps orders the results by steps terms.
func BySteps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByExtractionsCount orders the results by extractions count.
func ByExtractionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExtractionsStep(), opts...)
	}
}

// ByExtractions orders the results by extractions terms.
func ByExtractions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExtractionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newStepsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepsInverseTable, PlanStepFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
	)
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, AgentMessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, EventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newExtractionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExtractionsInverseTable, ExtractionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExtractionsTable, ExtractionsColumn),
	)
}
