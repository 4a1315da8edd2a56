// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/finovant/macaw/ent/agentmessage"
	"github.com/finovant/macaw/ent/plan"
)

// AgentMessage is the model entity for the AgentMessage schema.
type AgentMessage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PlanID holds the value of the "plan_id" field.
	PlanID string `json:"plan_id,omitempty"`
	// AgentName holds the value of the "agent_name" field.
	AgentName string `json:"agent_name,omitempty"`
	// Plan-scoped order, strictly increasing from 1 with no gaps
	SequenceNumber int `json:"sequence_number,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind agentmessage.Kind `json:"kind,omitempty"`
	// Message text
	Content string `json:"content,omitempty"`
	// MessageMetadata holds the value of the "message_metadata" field.
	MessageMetadata map[string]interface{} `json:"message_metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentMessageQuery when eager-loading is set.
	Edges        AgentMessageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentMessageEdges holds the relations/edges for other nodes in the graph.
type AgentMessageEdges struct {
	// Plan holds the value of the plan edge.
	Plan *Plan `json:"plan,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PlanOrErr returns the Plan value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentMessageEdges) PlanOrErr() (*Plan, error) {
	if e.Plan != nil {
		return e.Plan, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: plan.Label}
	}
	return nil, &NotLoadedError{edge: "plan"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentmessage.FieldMessageMetadata:
			values[i] = new([]byte)
		case agentmessage.FieldSequenceNumber:
			values[i] = new(sql.NullInt64)
		case agentmessage.FieldID, agentmessage.FieldPlanID, agentmessage.FieldAgentName, agentmessage.FieldKind, agentmessage.FieldContent:
			values[i] = new(sql.NullString)
		case agentmessage.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentMessage fields.
func (_m *AgentMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentmessage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentmessage.FieldPlanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_id", values[i])
			} else if value.Valid {
				_m.PlanID = value.String
			}
		case agentmessage.FieldAgentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_name", values[i])
			} else if value.Valid {
				_m.AgentName = value.String
			}
		case agentmessage.FieldSequenceNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence_number", values[i])
			} else if value.Valid {
				_m.SequenceNumber = int(value.Int64)
			}
		case agentmessage.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = agentmessage.Kind(value.String)
			}
		case agentmessage.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case agentmessage.FieldMessageMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field message_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MessageMetadata); err != nil {
					return fmt.Errorf("unmarshal field message_metadata: %w", err)
				}
			}
		case agentmessage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentMessage.
// This includes values selected through modifiers, order, etc.
func (_m *AgentMessage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPlan queries the "plan" edge of the AgentMessage entity.
func (_m *AgentMessage) QueryPlan() *PlanQuery {
	return NewAgentMessageClient(_m.config).QueryPlan(_m)
}

// Update returns a builder for updating this AgentMessage.
// Note that you need to call AgentMessage.Unwrap() before calling this method if this AgentMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentMessage) Update() *AgentMessageUpdateOne {
	return NewAgentMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentMessage) Unwrap() *AgentMessage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentMessage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentMessage) String() string {
	var builder strings.Builder
	builder.WriteString("AgentMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("plan_id=")
	builder.WriteString(_m.PlanID)
	builder.WriteString(", ")
	builder.WriteString("agent_name=")
	builder.WriteString(_m.AgentName)
	builder.WriteString(", ")
	builder.WriteString("sequence_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.SequenceNumber))
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("message_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.MessageMetadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentMessages is a parsable slice of AgentMessage.
type AgentMessages []*AgentMessage
