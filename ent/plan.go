// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/finovant/macaw/ent/plan"
)

// Plan is the model entity for the Plan schema.
type Plan struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Groups plans submitted from the same user session
	SessionID string `json:"session_id,omitempty"`
	// Original natural-language request (full-text searchable)
	TaskDescription string `json:"task_description,omitempty"`
	// Status holds the value of the "status" field.
	Status plan.Status `json:"status,omitempty"`
	// Planned agent order after sanitization
	AgentSequence []string `json:"agent_sequence,omitempty"`
	// Compilation mode (simple, default, ai_driven, hitl_enabled)
	GraphType string `json:"graph_type,omitempty"`
	// Content hash of the compiled graph
	GraphID *string `json:"graph_id,omitempty"`
	// RequireApproval holds the value of the "require_approval" field.
	RequireApproval bool `json:"require_approval,omitempty"`
	// Resume cursor into the compiled node list
	CurrentStep int `json:"current_step,omitempty"`
	// Human-readable plan narrative shown at the approval gate
	PlanSummary *string `json:"plan_summary,omitempty"`
	// Planner complexity estimate in [0,1]
	Complexity float64 `json:"complexity,omitempty"`
	// llm, template, or default
	PlanSource string `json:"plan_source,omitempty"`
	// Workflow outcome (full-text searchable)
	FinalResult *string `json:"final_result,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Latest approval/rejection feedback
	HumanFeedback *string `json:"human_feedback,omitempty"`
	// Plan this one was cloned from on result rejection
	RestartedFrom *string `json:"restarted_from,omitempty"`
	// PlanMetadata holds the value of the "plan_metadata" field.
	PlanMetadata map[string]interface{} `json:"plan_metadata,omitempty"`
	// When the request was submitted
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When execution began (transitioned to in_progress)
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PlanQuery when eager-loading is set.
	Edges        PlanEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PlanEdges holds the relations/edges for other nodes in the graph.
type PlanEdges struct {
	// Steps holds the value of the steps edge.
	Steps []*PlanStep `json:"steps,omitempty"`
	// Messages holds the value of the messages edge.
	Messages []*AgentMessage `json:"messages,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// Extractions holds the value of the extractions edge.
	Extractions []*Extraction `json:"extractions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// StepsOrErr returns the Steps value or an error if the edge
// was not loaded in eager-loading.
func (e PlanEdges) StepsOrErr() ([]*PlanStep, error) {
	if e.loadedTypes[0] {
		return e.Steps, nil
	}
	return nil, &NotLoadedError{edge: "steps"}
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e PlanEdges) MessagesOrErr() ([]*AgentMessage, error) {
	if e.loadedTypes[1] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e PlanEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[2] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// ExtractionsOrErr returns the Extractions value or an error if the edge
// was not loaded in eager-loading.
func (e PlanEdges) ExtractionsOrErr() ([]*Extraction, error) {
	if e.loadedTypes[3] {
		return e.Extractions, nil
	}
	return nil, &NotLoadedError{edge: "extractions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Plan) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case plan.FieldAgentSequence, plan.FieldPlanMetadata:
			values[i] = new([]byte)
		case plan.FieldRequireApproval:
			values[i] = new(sql.NullBool)
		case plan.FieldComplexity:
			values[i] = new(sql.NullFloat64)
		case plan.FieldCurrentStep:
			values[i] = new(sql.NullInt64)
		case plan.FieldID, plan.FieldSessionID, plan.FieldTaskDescription, plan.FieldStatus, plan.FieldGraphType, plan.FieldGraphID, plan.FieldPlanSummary, plan.FieldPlanSource, plan.FieldFinalResult, plan.FieldErrorMessage, plan.FieldHumanFeedback, plan.FieldRestartedFrom:
			values[i] = new(sql.NullString)
		case plan.FieldCreatedAt, plan.FieldStartedAt, plan.FieldCompletedAt, plan.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Plan fields.
func (_m *Plan) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case plan.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case plan.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case plan.FieldTaskDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_description", values[i])
			} else if value.Valid {
				_m.TaskDescription = value.String
			}
		case plan.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = plan.Status(value.String)
			}
		case plan.FieldAgentSequence:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field agent_sequence", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AgentSequence); err != nil {
					return fmt.Errorf("unmarshal field agent_sequence: %w", err)
				}
			}
		case plan.FieldGraphType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field graph_type", values[i])
			} else if value.Valid {
				_m.GraphType = value.String
			}
		case plan.FieldGraphID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field graph_id", values[i])
			} else if value.Valid {
				_m.GraphID = new(string)
				*_m.GraphID = value.String
			}
		case plan.FieldRequireApproval:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field require_approval", values[i])
			} else if value.Valid {
				_m.RequireApproval = value.Bool
			}
		case plan.FieldCurrentStep:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_step", values[i])
			} else if value.Valid {
				_m.CurrentStep = int(value.Int64)
			}
		case plan.FieldPlanSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_summary", values[i])
			} else if value.Valid {
				_m.PlanSummary = new(string)
				*_m.PlanSummary = value.String
			}
		case plan.FieldComplexity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field complexity", values[i])
			} else if value.Valid {
				_m.Complexity = value.Float64
			}
		case plan.FieldPlanSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_source", values[i])
			} else if value.Valid {
				_m.PlanSource = value.String
			}
		case plan.FieldFinalResult:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_result", values[i])
			} else if value.Valid {
				_m.FinalResult = new(string)
				*_m.FinalResult = value.String
			}
		case plan.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case plan.FieldHumanFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field human_feedback", values[i])
			} else if value.Valid {
				_m.HumanFeedback = new(string)
				*_m.HumanFeedback = value.String
			}
		case plan.FieldRestartedFrom:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field restarted_from", values[i])
			} else if value.Valid {
				_m.RestartedFrom = new(string)
				*_m.RestartedFrom = value.String
			}
		case plan.FieldPlanMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field plan_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PlanMetadata); err != nil {
					return fmt.Errorf("unmarshal field plan_metadata: %w", err)
				}
			}
		case plan.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case plan.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case plan.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case plan.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Plan.
// This includes values selected through modifiers, order, etc.
func (_m *Plan) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySteps queries the "steps" edge of the Plan entity.
func (_m *Plan) QuerySteps() *PlanStepQuery {
	return NewPlanClient(_m.config).QuerySteps(_m)
}

// QueryMessages queries the "messages" edge of the Plan entity.
func (_m *Plan) QueryMessages() *AgentMessageQuery {
	return NewPlanClient(_m.config).QueryMessages(_m)
}

// QueryEvents queries the "events" edge of the Plan entity.
func (_m *Plan) QueryEvents() *EventQuery {
	return NewPlanClient(_m.config).QueryEvents(_m)
}

// QueryExtractions queries the "extractions" edge of the Plan entity.
func (_m *Plan) QueryExtractions() *ExtractionQuery {
	return NewPlanClient(_m.config).QueryExtractions(_m)
}

// Update returns a builder for updating this Plan.
// Note that you need to call Plan.Unwrap() before calling this method if this Plan
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Plan) Update() *PlanUpdateOne {
	return NewPlanClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Plan entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Plan) Unwrap() *Plan {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Plan is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Plan) String() string {
	var builder strings.Builder
	builder.WriteString("Plan(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("task_description=")
	builder.WriteString(_m.TaskDescription)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("agent_sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentSequence))
	builder.WriteString(", ")
	builder.WriteString("graph_type=")
	builder.WriteString(_m.GraphType)
	builder.WriteString(", ")
	if v := _m.GraphID; v != nil {
		builder.WriteString("graph_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("require_approval=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequireApproval))
	builder.WriteString(", ")
	builder.WriteString("current_step=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentStep))
	builder.WriteString(", ")
	if v := _m.PlanSummary; v != nil {
		builder.WriteString("plan_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("complexity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Complexity))
	builder.WriteString(", ")
	builder.WriteString("plan_source=")
	builder.WriteString(_m.PlanSource)
	builder.WriteString(", ")
	if v := _m.FinalResult; v != nil {
		builder.WriteString("final_result=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.HumanFeedback; v != nil {
		builder.WriteString("human_feedback=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RestartedFrom; v != nil {
		builder.WriteString("restarted_from=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("plan_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlanMetadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Plans is a parsable slice of Plan.
type Plans []*Plan
