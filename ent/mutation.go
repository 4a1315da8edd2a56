// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/finovant/macaw/ent/agentmessage"
	"github.com/finovant/macaw/ent/event"
	"github.com/finovant/macaw/ent/extraction"
	"github.com/finovant/macaw/ent/plan"
	"github.com/finovant/macaw/ent/planstep"
	"github.com/finovant/macaw/ent/predicate"
	"github.com/finovant/macaw/ent/team"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentMessage = "AgentMessage"
	TypeEvent        = "Event"
	TypeExtraction   = "Extraction"
	TypePlan         = "Plan"
	TypePlanStep     = "PlanStep"
	TypeTeam         = "Team"
)

// AgentMessageMutation represents an operation that mutates the AgentMessage nodes in the graph.
type AgentMessageMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	agent_name         *string
	sequence_number    *int
	addsequence_number *int
	kind               *agentmessage.Kind
	content            *string
	message_metadata   *map[string]interface{}
	created_at         *time.Time
	clearedFields      map[string]struct{}
	plan               *string
	clearedplan        bool
	done               bool
	oldValue           func(context.Context) (*AgentMessage, error)
	predicates         []predicate.AgentMessage
}

var _ ent.Mutation = (*AgentMessageMutation)(nil)

// agentmessageOption allows management of the mutation configuration using functional options.
type agentmessageOption func(*AgentMessageMutation)

// newAgentMessageMutation creates new mutation for the AgentMessage entity.
func newAgentMessageMutation(c config, op Op, opts ...agentmessageOption) *AgentMessageMutation {
	m := &AgentMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentMessageID sets the ID field of the mutation.
func withAgentMessageID(id string) agentmessageOption {
	return func(m *AgentMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentMessage
		)
		m.oldValue = func(ctx context.Context) (*AgentMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentMessage sets the old AgentMessage of the mutation.
func withAgentMessage(node *AgentMessage) agentmessageOption {
	return func(m *AgentMessageMutation) {
		m.oldValue = func(context.Context) (*AgentMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentMessage entities.
func (m *AgentMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlanID sets the "plan_id" field.
func (m *AgentMessageMutation) SetPlanID(s string) {
	m.plan = &s
}

// PlanID returns the value of the "plan_id" field in the mutation.
func (m *AgentMessageMutation) PlanID() (r string, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanID returns the old "plan_id" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldPlanID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanID: %w", err)
	}
	return oldValue.PlanID, nil
}

// ResetPlanID resets all changes to the "plan_id" field.
func (m *AgentMessageMutation) ResetPlanID() {
	m.plan = nil
}

// SetAgentName sets the "agent_name" field.
func (m *AgentMessageMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *AgentMessageMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *AgentMessageMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetSequenceNumber sets the "sequence_number" field.
func (m *AgentMessageMutation) SetSequenceNumber(i int) {
	m.sequence_number = &i
	m.addsequence_number = nil
}

// SequenceNumber returns the value of the "sequence_number" field in the mutation.
func (m *AgentMessageMutation) SequenceNumber() (r int, exists bool) {
	v := m.sequence_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceNumber returns the old "sequence_number" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldSequenceNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceNumber: %w", err)
	}
	return oldValue.SequenceNumber, nil
}

// AddSequenceNumber adds i to the "sequence_number" field.
func (m *AgentMessageMutation) AddSequenceNumber(i int) {
	if m.addsequence_number != nil {
		*m.addsequence_number += i
	} else {
		m.addsequence_number = &i
	}
}

// AddedSequenceNumber returns the value that was added to the "sequence_number" field in this mutation.
func (m *AgentMessageMutation) AddedSequenceNumber() (r int, exists bool) {
	v := m.addsequence_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceNumber resets all changes to the "sequence_number" field.
func (m *AgentMessageMutation) ResetSequenceNumber() {
	m.sequence_number = nil
	m.addsequence_number = nil
}

// SetKind sets the "kind" field.
func (m *AgentMessageMutation) SetKind(a agentmessage.Kind) {
	m.kind = &a
}

// Kind returns the value of the "kind" field in the mutation.
func (m *AgentMessageMutation) Kind() (r agentmessage.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldKind(ctx context.Context) (v agentmessage.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *AgentMessageMutation) ResetKind() {
	m.kind = nil
}

// SetContent sets the "content" field.
func (m *AgentMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *AgentMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *AgentMessageMutation) ResetContent() {
	m.content = nil
}

// SetMessageMetadata sets the "message_metadata" field.
func (m *AgentMessageMutation) SetMessageMetadata(value map[string]interface{}) {
	m.message_metadata = &value
}

// MessageMetadata returns the value of the "message_metadata" field in the mutation.
func (m *AgentMessageMutation) MessageMetadata() (r map[string]interface{}, exists bool) {
	v := m.message_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageMetadata returns the old "message_metadata" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldMessageMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageMetadata: %w", err)
	}
	return oldValue.MessageMetadata, nil
}

// ClearMessageMetadata clears the value of the "message_metadata" field.
func (m *AgentMessageMutation) ClearMessageMetadata() {
	m.message_metadata = nil
	m.clearedFields[agentmessage.FieldMessageMetadata] = struct{}{}
}

// MessageMetadataCleared returns if the "message_metadata" field was cleared in this mutation.
func (m *AgentMessageMutation) MessageMetadataCleared() bool {
	_, ok := m.clearedFields[agentmessage.FieldMessageMetadata]
	return ok
}

// ResetMessageMetadata resets all changes to the "message_metadata" field.
func (m *AgentMessageMutation) ResetMessageMetadata() {
	m.message_metadata = nil
	delete(m.clearedFields, agentmessage.FieldMessageMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearPlan clears the "plan" edge to the Plan entity.
func (m *AgentMessageMutation) ClearPlan() {
	m.clearedplan = true
	m.clearedFields[agentmessage.FieldPlanID] = struct{}{}
}

// PlanCleared reports if the "plan" edge to the Plan entity was cleared.
func (m *AgentMessageMutation) PlanCleared() bool {
	return m.clearedplan
}

// PlanIDs returns the "plan" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PlanID instead. It exists only for internal usage by the builders.
func (m *AgentMessageMutation) PlanIDs() (ids []string) {
	if id := m.plan; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPlan resets all changes to the "plan" edge.
func (m *AgentMessageMutation) ResetPlan() {
	m.plan = nil
	m.clearedplan = false
}

// Where appends a list predicates to the AgentMessageMutation builder.
func (m *AgentMessageMutation) Where(ps ...predicate.AgentMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentMessage).
func (m *AgentMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMessageMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.plan != nil {
		fields = append(fields, agentmessage.FieldPlanID)
	}
	if m.agent_name != nil {
		fields = append(fields, agentmessage.FieldAgentName)
	}
	if m.sequence_number != nil {
		fields = append(fields, agentmessage.FieldSequenceNumber)
	}
	if m.kind != nil {
		fields = append(fields, agentmessage.FieldKind)
	}
	if m.content != nil {
		fields = append(fields, agentmessage.FieldContent)
	}
	if m.message_metadata != nil {
		fields = append(fields, agentmessage.FieldMessageMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, agentmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentmessage.FieldPlanID:
		return m.PlanID()
	case agentmessage.FieldAgentName:
		return m.AgentName()
	case agentmessage.FieldSequenceNumber:
		return m.SequenceNumber()
	case agentmessage.FieldKind:
		return m.Kind()
	case agentmessage.FieldContent:
		return m.Content()
	case agentmessage.FieldMessageMetadata:
		return m.MessageMetadata()
	case agentmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentmessage.FieldPlanID:
		return m.OldPlanID(ctx)
	case agentmessage.FieldAgentName:
		return m.OldAgentName(ctx)
	case agentmessage.FieldSequenceNumber:
		return m.OldSequenceNumber(ctx)
	case agentmessage.FieldKind:
		return m.OldKind(ctx)
	case agentmessage.FieldContent:
		return m.OldContent(ctx)
	case agentmessage.FieldMessageMetadata:
		return m.OldMessageMetadata(ctx)
	case agentmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentmessage.FieldPlanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanID(v)
		return nil
	case agentmessage.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case agentmessage.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceNumber(v)
		return nil
	case agentmessage.FieldKind:
		v, ok := value.(agentmessage.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case agentmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case agentmessage.FieldMessageMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageMetadata(v)
		return nil
	case agentmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMessageMutation) AddedFields() []string {
	var fields []string
	if m.addsequence_number != nil {
		fields = append(fields, agentmessage.FieldSequenceNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentmessage.FieldSequenceNumber:
		return m.AddedSequenceNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentmessage.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceNumber(v)
		return nil
	}
	return fmt.Errorf("unknown AgentMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentmessage.FieldMessageMetadata) {
		fields = append(fields, agentmessage.FieldMessageMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMessageMutation) ClearField(name string) error {
	switch name {
	case agentmessage.FieldMessageMetadata:
		m.ClearMessageMetadata()
		return nil
	}
	return fmt.Errorf("unknown AgentMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMessageMutation) ResetField(name string) error {
	switch name {
	case agentmessage.FieldPlanID:
		m.ResetPlanID()
		return nil
	case agentmessage.FieldAgentName:
		m.ResetAgentName()
		return nil
	case agentmessage.FieldSequenceNumber:
		m.ResetSequenceNumber()
		return nil
	case agentmessage.FieldKind:
		m.ResetKind()
		return nil
	case agentmessage.FieldContent:
		m.ResetContent()
		return nil
	case agentmessage.FieldMessageMetadata:
		m.ResetMessageMetadata()
		return nil
	case agentmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.plan != nil {
		edges = append(edges, agentmessage.EdgePlan)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentmessage.EdgePlan:
		if id := m.plan; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedplan {
		edges = append(edges, agentmessage.EdgePlan)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case agentmessage.EdgePlan:
		return m.clearedplan
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMessageMutation) ClearEdge(name string) error {
	switch name {
	case agentmessage.EdgePlan:
		m.ClearPlan()
		return nil
	}
	return fmt.Errorf("unknown AgentMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMessageMutation) ResetEdge(name string) error {
	switch name {
	case agentmessage.EdgePlan:
		m.ResetPlan()
		return nil
	}
	return fmt.Errorf("unknown AgentMessage edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	channel       *string
	payload       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	plan          *string
	clearedplan   bool
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlanID sets the "plan_id" field.
func (m *EventMutation) SetPlanID(s string) {
	m.plan = &s
}

// PlanID returns the value of the "plan_id" field in the mutation.
func (m *EventMutation) PlanID() (r string, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanID returns the old "plan_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPlanID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanID: %w", err)
	}
	return oldValue.PlanID, nil
}

// ResetPlanID resets all changes to the "plan_id" field.
func (m *EventMutation) ResetPlanID() {
	m.plan = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(s string) {
	m.payload = &s
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r string, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearPlan clears the "plan" edge to the Plan entity.
func (m *EventMutation) ClearPlan() {
	m.clearedplan = true
	m.clearedFields[event.FieldPlanID] = struct{}{}
}

// PlanCleared reports if the "plan" edge to the Plan entity was cleared.
func (m *EventMutation) PlanCleared() bool {
	return m.clearedplan
}

// PlanIDs returns the "plan" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PlanID instead. It exists only for internal usage by the builders.
func (m *EventMutation) PlanIDs() (ids []string) {
	if id := m.plan; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPlan resets all changes to the "plan" edge.
func (m *EventMutation) ResetPlan() {
	m.plan = nil
	m.clearedplan = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.plan != nil {
		fields = append(fields, event.FieldPlanID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldPlanID:
		return m.PlanID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldPlanID:
		return m.OldPlanID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldPlanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldPlanID:
		m.ResetPlanID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.plan != nil {
		edges = append(edges, event.EdgePlan)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgePlan:
		if id := m.plan; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedplan {
		edges = append(edges, event.EdgePlan)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgePlan:
		return m.clearedplan
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgePlan:
		m.ClearPlan()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgePlan:
		m.ResetPlan()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// ExtractionMutation represents an operation that mutates the Extraction nodes in the graph.
type ExtractionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	agent_name    *string
	fields        *map[string]interface{}
	edited_fields *map[string]interface{}
	status        *extraction.Status
	feedback      *string
	created_at    *time.Time
	reviewed_at   *time.Time
	clearedFields map[string]struct{}
	plan          *string
	clearedplan   bool
	done          bool
	oldValue      func(context.Context) (*Extraction, error)
	predicates    []predicate.Extraction
}

var _ ent.Mutation = (*ExtractionMutation)(nil)

// extractionOption allows management of the mutation configuration using functional options.
type extractionOption func(*ExtractionMutation)

// newExtractionMutation creates new mutation for the Extraction entity.
func newExtractionMutation(c config, op Op, opts ...extractionOption) *ExtractionMutation {
	m := &ExtractionMutation{
		config:        c,
		op:            op,
		typ:           TypeExtraction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionID sets the ID field of the mutation.
func withExtractionID(id string) extractionOption {
	return func(m *ExtractionMutation) {
		var (
			err   error
			once  sync.Once
			value *Extraction
		)
		m.oldValue = func(ctx context.Context) (*Extraction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Extraction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtraction sets the old Extraction of the mutation.
func withExtraction(node *Extraction) extractionOption {
	return func(m *ExtractionMutation) {
		m.oldValue = func(context.Context) (*Extraction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Extraction entities.
func (m *ExtractionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Extraction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlanID sets the "plan_id" field.
func (m *ExtractionMutation) SetPlanID(s string) {
	m.plan = &s
}

// PlanID returns the value of the "plan_id" field in the mutation.
func (m *ExtractionMutation) PlanID() (r string, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanID returns the old "plan_id" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldPlanID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanID: %w", err)
	}
	return oldValue.PlanID, nil
}

// ResetPlanID resets all changes to the "plan_id" field.
func (m *ExtractionMutation) ResetPlanID() {
	m.plan = nil
}

// SetAgentName sets the "agent_name" field.
func (m *ExtractionMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *ExtractionMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *ExtractionMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetFields sets the "fields" field.
func (m *ExtractionMutation) SetFields(value map[string]interface{}) {
	m.fields = &value
}

// GetFields returns the value of the "fields" field in the mutation.
func (m *ExtractionMutation) GetFields() (r map[string]interface{}, exists bool) {
	v := m.fields
	if v == nil {
		return
	}
	return *v, true
}

// OldFields returns the old "fields" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldFields(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFields: %w", err)
	}
	return oldValue.Fields, nil
}

// ResetFields resets all changes to the "fields" field.
func (m *ExtractionMutation) ResetFields() {
	m.fields = nil
}

// SetEditedFields sets the "edited_fields" field.
func (m *ExtractionMutation) SetEditedFields(value map[string]interface{}) {
	m.edited_fields = &value
}

// EditedFields returns the value of the "edited_fields" field in the mutation.
func (m *ExtractionMutation) EditedFields() (r map[string]interface{}, exists bool) {
	v := m.edited_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldEditedFields returns the old "edited_fields" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldEditedFields(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEditedFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEditedFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEditedFields: %w", err)
	}
	return oldValue.EditedFields, nil
}

// ClearEditedFields clears the value of the "edited_fields" field.
func (m *ExtractionMutation) ClearEditedFields() {
	m.edited_fields = nil
	m.clearedFields[extraction.FieldEditedFields] = struct{}{}
}

// EditedFieldsCleared returns if the "edited_fields" field was cleared in this mutation.
func (m *ExtractionMutation) EditedFieldsCleared() bool {
	_, ok := m.clearedFields[extraction.FieldEditedFields]
	return ok
}

// ResetEditedFields resets all changes to the "edited_fields" field.
func (m *ExtractionMutation) ResetEditedFields() {
	m.edited_fields = nil
	delete(m.clearedFields, extraction.FieldEditedFields)
}

// SetStatus sets the "status" field.
func (m *ExtractionMutation) SetStatus(e extraction.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractionMutation) Status() (r extraction.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldStatus(ctx context.Context) (v extraction.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractionMutation) ResetStatus() {
	m.status = nil
}

// SetFeedback sets the "feedback" field.
func (m *ExtractionMutation) SetFeedback(s string) {
	m.feedback = &s
}

// Feedback returns the value of the "feedback" field in the mutation.
func (m *ExtractionMutation) Feedback() (r string, exists bool) {
	v := m.feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedback returns the old "feedback" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldFeedback(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedback: %w", err)
	}
	return oldValue.Feedback, nil
}

// ClearFeedback clears the value of the "feedback" field.
func (m *ExtractionMutation) ClearFeedback() {
	m.feedback = nil
	m.clearedFields[extraction.FieldFeedback] = struct{}{}
}

// FeedbackCleared returns if the "feedback" field was cleared in this mutation.
func (m *ExtractionMutation) FeedbackCleared() bool {
	_, ok := m.clearedFields[extraction.FieldFeedback]
	return ok
}

// ResetFeedback resets all changes to the "feedback" field.
func (m *ExtractionMutation) ResetFeedback() {
	m.feedback = nil
	delete(m.clearedFields, extraction.FieldFeedback)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetReviewedAt sets the "reviewed_at" field.
func (m *ExtractionMutation) SetReviewedAt(t time.Time) {
	m.reviewed_at = &t
}

// ReviewedAt returns the value of the "reviewed_at" field in the mutation.
func (m *ExtractionMutation) ReviewedAt() (r time.Time, exists bool) {
	v := m.reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedAt returns the old "reviewed_at" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldReviewedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedAt: %w", err)
	}
	return oldValue.ReviewedAt, nil
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (m *ExtractionMutation) ClearReviewedAt() {
	m.reviewed_at = nil
	m.clearedFields[extraction.FieldReviewedAt] = struct{}{}
}

// ReviewedAtCleared returns if the "reviewed_at" field was cleared in this mutation.
func (m *ExtractionMutation) ReviewedAtCleared() bool {
	_, ok := m.clearedFields[extraction.FieldReviewedAt]
	return ok
}

// ResetReviewedAt resets all changes to the "reviewed_at" field.
func (m *ExtractionMutation) ResetReviewedAt() {
	m.reviewed_at = nil
	delete(m.clearedFields, extraction.FieldReviewedAt)
}

// ClearPlan clears the "plan" edge to the Plan entity.
func (m *ExtractionMutation) ClearPlan() {
	m.clearedplan = true
	m.clearedFields[extraction.FieldPlanID] = struct{}{}
}

// PlanCleared reports if the "plan" edge to the Plan entity was cleared.
func (m *ExtractionMutation) PlanCleared() bool {
	return m.clearedplan
}

// PlanIDs returns the "plan" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PlanID instead. It exists only for internal usage by the builders.
func (m *ExtractionMutation) PlanIDs() (ids []string) {
	if id := m.plan; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPlan resets all changes to the "plan" edge.
func (m *ExtractionMutation) ResetPlan() {
	m.plan = nil
	m.clearedplan = false
}

// Where appends a list predicates to the ExtractionMutation builder.
func (m *ExtractionMutation) Where(ps ...predicate.Extraction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Extraction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Extraction).
func (m *ExtractionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.plan != nil {
		fields = append(fields, extraction.FieldPlanID)
	}
	if m.agent_name != nil {
		fields = append(fields, extraction.FieldAgentName)
	}
	if m.fields != nil {
		fields = append(fields, extraction.FieldFields)
	}
	if m.edited_fields != nil {
		fields = append(fields, extraction.FieldEditedFields)
	}
	if m.status != nil {
		fields = append(fields, extraction.FieldStatus)
	}
	if m.feedback != nil {
		fields = append(fields, extraction.FieldFeedback)
	}
	if m.created_at != nil {
		fields = append(fields, extraction.FieldCreatedAt)
	}
	if m.reviewed_at != nil {
		fields = append(fields, extraction.FieldReviewedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extraction.FieldPlanID:
		return m.PlanID()
	case extraction.FieldAgentName:
		return m.AgentName()
	case extraction.FieldFields:
		return m.GetFields()
	case extraction.FieldEditedFields:
		return m.EditedFields()
	case extraction.FieldStatus:
		return m.Status()
	case extraction.FieldFeedback:
		return m.Feedback()
	case extraction.FieldCreatedAt:
		return m.CreatedAt()
	case extraction.FieldReviewedAt:
		return m.ReviewedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extraction.FieldPlanID:
		return m.OldPlanID(ctx)
	case extraction.FieldAgentName:
		return m.OldAgentName(ctx)
	case extraction.FieldFields:
		return m.OldFields(ctx)
	case extraction.FieldEditedFields:
		return m.OldEditedFields(ctx)
	case extraction.FieldStatus:
		return m.OldStatus(ctx)
	case extraction.FieldFeedback:
		return m.OldFeedback(ctx)
	case extraction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case extraction.FieldReviewedAt:
		return m.OldReviewedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Extraction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extraction.FieldPlanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanID(v)
		return nil
	case extraction.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case extraction.FieldFields:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFields(v)
		return nil
	case extraction.FieldEditedFields:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEditedFields(v)
		return nil
	case extraction.FieldStatus:
		v, ok := value.(extraction.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extraction.FieldFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedback(v)
		return nil
	case extraction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case extraction.FieldReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Extraction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Extraction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extraction.FieldEditedFields) {
		fields = append(fields, extraction.FieldEditedFields)
	}
	if m.FieldCleared(extraction.FieldFeedback) {
		fields = append(fields, extraction.FieldFeedback)
	}
	if m.FieldCleared(extraction.FieldReviewedAt) {
		fields = append(fields, extraction.FieldReviewedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionMutation) ClearField(name string) error {
	switch name {
	case extraction.FieldEditedFields:
		m.ClearEditedFields()
		return nil
	case extraction.FieldFeedback:
		m.ClearFeedback()
		return nil
	case extraction.FieldReviewedAt:
		m.ClearReviewedAt()
		return nil
	}
	return fmt.Errorf("unknown Extraction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionMutation) ResetField(name string) error {
	switch name {
	case extraction.FieldPlanID:
		m.ResetPlanID()
		return nil
	case extraction.FieldAgentName:
		m.ResetAgentName()
		return nil
	case extraction.FieldFields:
		m.ResetFields()
		return nil
	case extraction.FieldEditedFields:
		m.ResetEditedFields()
		return nil
	case extraction.FieldStatus:
		m.ResetStatus()
		return nil
	case extraction.FieldFeedback:
		m.ResetFeedback()
		return nil
	case extraction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case extraction.FieldReviewedAt:
		m.ResetReviewedAt()
		return nil
	}
	return fmt.Errorf("unknown Extraction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.plan != nil {
		edges = append(edges, extraction.EdgePlan)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extraction.EdgePlan:
		if id := m.plan; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedplan {
		edges = append(edges, extraction.EdgePlan)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionMutation) EdgeCleared(name string) bool {
	switch name {
	case extraction.EdgePlan:
		return m.clearedplan
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionMutation) ClearEdge(name string) error {
	switch name {
	case extraction.EdgePlan:
		m.ClearPlan()
		return nil
	}
	return fmt.Errorf("unknown Extraction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionMutation) ResetEdge(name string) error {
	switch name {
	case extraction.EdgePlan:
		m.ResetPlan()
		return nil
	}
	return fmt.Errorf("unknown Extraction edge %s", name)
}

// PlanMutation represents an operation that mutates the Plan nodes in the graph.
type PlanMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	session_id           *string
	task_description     *string
	status               *plan.Status
	agent_sequence       *[]string
	appendagent_sequence []string
	graph_type           *string
	graph_id             *string
	require_approval     *bool
	current_step         *int
	addcurrent_step      *int
	plan_summary         *string
	complexity           *float64
	addcomplexity        *float64
	plan_source          *string
	final_result         *string
	error_message        *string
	human_feedback       *string
	restarted_from       *string
	plan_metadata        *map[string]interface{}
	created_at           *time.Time
	started_at           *time.Time
	completed_at         *time.Time
	deleted_at           *time.Time
	clearedFields        map[string]struct{}
	steps                map[string]struct{}
	removedsteps         map[string]struct{}
	clearedsteps         bool
	messages             map[string]struct{}
	removedmessages      map[string]struct{}
	clearedmessages      bool
	events               map[int]struct{}
	removedevents        map[int]struct{}
	clearedevents        bool
	extractions          map[string]struct{}
	removedextractions   map[string]struct{}
	clearedextractions   bool
	done                 bool
	oldValue             func(context.Context) (*Plan, error)
	predicates           []predicate.Plan
}

var _ ent.Mutation = (*PlanMutation)(nil)

// planOption allows management of the mutation configuration using functional options.
type planOption func(*PlanMutation)

// newPlanMutation creates new mutation for the Plan entity.
func newPlanMutation(c config, op Op, opts ...planOption) *PlanMutation {
	m := &PlanMutation{
		config:        c,
		op:            op,
		typ:           TypePlan,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlanID sets the ID field of the mutation.
func withPlanID(id string) planOption {
	return func(m *PlanMutation) {
		var (
			err   error
			once  sync.Once
			value *Plan
		)
		m.oldValue = func(ctx context.Context) (*Plan, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Plan.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlan sets the old Plan of the mutation.
func withPlan(node *Plan) planOption {
	return func(m *PlanMutation) {
		m.oldValue = func(context.Context) (*Plan, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlanMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlanMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Plan entities.
func (m *PlanMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlanMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlanMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Plan.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *PlanMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *PlanMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *PlanMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTaskDescription sets the "task_description" field.
func (m *PlanMutation) SetTaskDescription(s string) {
	m.task_description = &s
}

// TaskDescription returns the value of the "task_description" field in the mutation.
func (m *PlanMutation) TaskDescription() (r string, exists bool) {
	v := m.task_description
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskDescription returns the old "task_description" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldTaskDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskDescription: %w", err)
	}
	return oldValue.TaskDescription, nil
}

// ResetTaskDescription resets all changes to the "task_description" field.
func (m *PlanMutation) ResetTaskDescription() {
	m.task_description = nil
}

// SetStatus sets the "status" field.
func (m *PlanMutation) SetStatus(pl plan.Status) {
	m.status = &pl
}

// Status returns the value of the "status" field in the mutation.
func (m *PlanMutation) Status() (r plan.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldStatus(ctx context.Context) (v plan.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PlanMutation) ResetStatus() {
	m.status = nil
}

// SetAgentSequence sets the "agent_sequence" field.
func (m *PlanMutation) SetAgentSequence(s []string) {
	m.agent_sequence = &s
	m.appendagent_sequence = nil
}

// AgentSequence returns the value of the "agent_sequence" field in the mutation.
func (m *PlanMutation) AgentSequence() (r []string, exists bool) {
	v := m.agent_sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentSequence returns the old "agent_sequence" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldAgentSequence(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentSequence: %w", err)
	}
	return oldValue.AgentSequence, nil
}

// AppendAgentSequence adds s to the "agent_sequence" field.
func (m *PlanMutation) AppendAgentSequence(s []string) {
	m.appendagent_sequence = append(m.appendagent_sequence, s...)
}

// AppendedAgentSequence returns the list of values that were appended to the "agent_sequence" field in this mutation.
func (m *PlanMutation) AppendedAgentSequence() ([]string, bool) {
	if len(m.appendagent_sequence) == 0 {
		return nil, false
	}
	return m.appendagent_sequence, true
}

// ClearAgentSequence clears the value of the "agent_sequence" field.
func (m *PlanMutation) ClearAgentSequence() {
	m.agent_sequence = nil
	m.appendagent_sequence = nil
	m.clearedFields[plan.FieldAgentSequence] = struct{}{}
}

// AgentSequenceCleared returns if the "agent_sequence" field was cleared in this mutation.
func (m *PlanMutation) AgentSequenceCleared() bool {
	_, ok := m.clearedFields[plan.FieldAgentSequence]
	return ok
}

// ResetAgentSequence resets all changes to the "agent_sequence" field.
func (m *PlanMutation) ResetAgentSequence() {
	m.agent_sequence = nil
	m.appendagent_sequence = nil
	delete(m.clearedFields, plan.FieldAgentSequence)
}

// SetGraphType sets the "graph_type" field.
func (m *PlanMutation) SetGraphType(s string) {
	m.graph_type = &s
}

// GraphType returns the value of the "graph_type" field in the mutation.
func (m *PlanMutation) GraphType() (r string, exists bool) {
	v := m.graph_type
	if v == nil {
		return
	}
	return *v, true
}

// OldGraphType returns the old "graph_type" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldGraphType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGraphType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGraphType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGraphType: %w", err)
	}
	return oldValue.GraphType, nil
}

// ClearGraphType clears the value of the "graph_type" field.
func (m *PlanMutation) ClearGraphType() {
	m.graph_type = nil
	m.clearedFields[plan.FieldGraphType] = struct{}{}
}

// GraphTypeCleared returns if the "graph_type" field was cleared in this mutation.
func (m *PlanMutation) GraphTypeCleared() bool {
	_, ok := m.clearedFields[plan.FieldGraphType]
	return ok
}

// ResetGraphType resets all changes to the "graph_type" field.
func (m *PlanMutation) ResetGraphType() {
	m.graph_type = nil
	delete(m.clearedFields, plan.FieldGraphType)
}

// SetGraphID sets the "graph_id" field.
func (m *PlanMutation) SetGraphID(s string) {
	m.graph_id = &s
}

// GraphID returns the value of the "graph_id" field in the mutation.
func (m *PlanMutation) GraphID() (r string, exists bool) {
	v := m.graph_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGraphID returns the old "graph_id" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldGraphID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGraphID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGraphID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGraphID: %w", err)
	}
	return oldValue.GraphID, nil
}

// ClearGraphID clears the value of the "graph_id" field.
func (m *PlanMutation) ClearGraphID() {
	m.graph_id = nil
	m.clearedFields[plan.FieldGraphID] = struct{}{}
}

// GraphIDCleared returns if the "graph_id" field was cleared in this mutation.
func (m *PlanMutation) GraphIDCleared() bool {
	_, ok := m.clearedFields[plan.FieldGraphID]
	return ok
}

// ResetGraphID resets all changes to the "graph_id" field.
func (m *PlanMutation) ResetGraphID() {
	m.graph_id = nil
	delete(m.clearedFields, plan.FieldGraphID)
}

// SetRequireApproval sets the "require_approval" field.
func (m *PlanMutation) SetRequireApproval(b bool) {
	m.require_approval = &b
}

// RequireApproval returns the value of the "require_approval" field in the mutation.
func (m *PlanMutation) RequireApproval() (r bool, exists bool) {
	v := m.require_approval
	if v == nil {
		return
	}
	return *v, true
}

// OldRequireApproval returns the old "require_approval" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldRequireApproval(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequireApproval is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequireApproval requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequireApproval: %w", err)
	}
	return oldValue.RequireApproval, nil
}

// ResetRequireApproval resets all changes to the "require_approval" field.
func (m *PlanMutation) ResetRequireApproval() {
	m.require_approval = nil
}

// SetCurrentStep sets the "current_step" field.
func (m *PlanMutation) SetCurrentStep(i int) {
	m.current_step = &i
	m.addcurrent_step = nil
}

// CurrentStep returns the value of the "current_step" field in the mutation.
func (m *PlanMutation) CurrentStep() (r int, exists bool) {
	v := m.current_step
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStep returns the old "current_step" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldCurrentStep(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStep: %w", err)
	}
	return oldValue.CurrentStep, nil
}

// AddCurrentStep adds i to the "current_step" field.
func (m *PlanMutation) AddCurrentStep(i int) {
	if m.addcurrent_step != nil {
		*m.addcurrent_step += i
	} else {
		m.addcurrent_step = &i
	}
}

// AddedCurrentStep returns the value that was added to the "current_step" field in this mutation.
func (m *PlanMutation) AddedCurrentStep() (r int, exists bool) {
	v := m.addcurrent_step
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentStep resets all changes to the "current_step" field.
func (m *PlanMutation) ResetCurrentStep() {
	m.current_step = nil
	m.addcurrent_step = nil
}

// SetPlanSummary sets the "plan_summary" field.
func (m *PlanMutation) SetPlanSummary(s string) {
	m.plan_summary = &s
}

// PlanSummary returns the value of the "plan_summary" field in the mutation.
func (m *PlanMutation) PlanSummary() (r string, exists bool) {
	v := m.plan_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanSummary returns the old "plan_summary" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldPlanSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanSummary: %w", err)
	}
	return oldValue.PlanSummary, nil
}

// ClearPlanSummary clears the value of the "plan_summary" field.
func (m *PlanMutation) ClearPlanSummary() {
	m.plan_summary = nil
	m.clearedFields[plan.FieldPlanSummary] = struct{}{}
}

// PlanSummaryCleared returns if the "plan_summary" field was cleared in this mutation.
func (m *PlanMutation) PlanSummaryCleared() bool {
	_, ok := m.clearedFields[plan.FieldPlanSummary]
	return ok
}

// ResetPlanSummary resets all changes to the "plan_summary" field.
func (m *PlanMutation) ResetPlanSummary() {
	m.plan_summary = nil
	delete(m.clearedFields, plan.FieldPlanSummary)
}

// SetComplexity sets the "complexity" field.
func (m *PlanMutation) SetComplexity(f float64) {
	m.complexity = &f
	m.addcomplexity = nil
}

// Complexity returns the value of the "complexity" field in the mutation.
func (m *PlanMutation) Complexity() (r float64, exists bool) {
	v := m.complexity
	if v == nil {
		return
	}
	return *v, true
}

// OldComplexity returns the old "complexity" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldComplexity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComplexity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComplexity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComplexity: %w", err)
	}
	return oldValue.Complexity, nil
}

// AddComplexity adds f to the "complexity" field.
func (m *PlanMutation) AddComplexity(f float64) {
	if m.addcomplexity != nil {
		*m.addcomplexity += f
	} else {
		m.addcomplexity = &f
	}
}

// AddedComplexity returns the value that was added to the "complexity" field in this mutation.
func (m *PlanMutation) AddedComplexity() (r float64, exists bool) {
	v := m.addcomplexity
	if v == nil {
		return
	}
	return *v, true
}

// ClearComplexity clears the value of the "complexity" field.
func (m *PlanMutation) ClearComplexity() {
	m.complexity = nil
	m.addcomplexity = nil
	m.clearedFields[plan.FieldComplexity] = struct{}{}
}

// ComplexityCleared returns if the "complexity" field was cleared in this mutation.
func (m *PlanMutation) ComplexityCleared() bool {
	_, ok := m.clearedFields[plan.FieldComplexity]
	return ok
}

// ResetComplexity resets all changes to the "complexity" field.
func (m *PlanMutation) ResetComplexity() {
	m.complexity = nil
	m.addcomplexity = nil
	delete(m.clearedFields, plan.FieldComplexity)
}

// SetPlanSource sets the "plan_source" field.
func (m *PlanMutation) SetPlanSource(s string) {
	m.plan_source = &s
}

// PlanSource returns the value of the "plan_source" field in the mutation.
func (m *PlanMutation) PlanSource() (r string, exists bool) {
	v := m.plan_source
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanSource returns the old "plan_source" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldPlanSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanSource: %w", err)
	}
	return oldValue.PlanSource, nil
}

// ClearPlanSource clears the value of the "plan_source" field.
func (m *PlanMutation) ClearPlanSource() {
	m.plan_source = nil
	m.clearedFields[plan.FieldPlanSource] = struct{}{}
}

// PlanSourceCleared returns if the "plan_source" field was cleared in this mutation.
func (m *PlanMutation) PlanSourceCleared() bool {
	_, ok := m.clearedFields[plan.FieldPlanSource]
	return ok
}

// ResetPlanSource resets all changes to the "plan_source" field.
func (m *PlanMutation) ResetPlanSource() {
	m.plan_source = nil
	delete(m.clearedFields, plan.FieldPlanSource)
}

// SetFinalResult sets the "final_result" field.
func (m *PlanMutation) SetFinalResult(s string) {
	m.final_result = &s
}

// FinalResult returns the value of the "final_result" field in the mutation.
func (m *PlanMutation) FinalResult() (r string, exists bool) {
	v := m.final_result
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalResult returns the old "final_result" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldFinalResult(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalResult: %w", err)
	}
	return oldValue.FinalResult, nil
}

// ClearFinalResult clears the value of the "final_result" field.
func (m *PlanMutation) ClearFinalResult() {
	m.final_result = nil
	m.clearedFields[plan.FieldFinalResult] = struct{}{}
}

// FinalResultCleared returns if the "final_result" field was cleared in this mutation.
func (m *PlanMutation) FinalResultCleared() bool {
	_, ok := m.clearedFields[plan.FieldFinalResult]
	return ok
}

// ResetFinalResult resets all changes to the "final_result" field.
func (m *PlanMutation) ResetFinalResult() {
	m.final_result = nil
	delete(m.clearedFields, plan.FieldFinalResult)
}

// SetErrorMessage sets the "error_message" field.
func (m *PlanMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *PlanMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *PlanMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[plan.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *PlanMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[plan.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *PlanMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, plan.FieldErrorMessage)
}

// SetHumanFeedback sets the "human_feedback" field.
func (m *PlanMutation) SetHumanFeedback(s string) {
	m.human_feedback = &s
}

// HumanFeedback returns the value of the "human_feedback" field in the mutation.
func (m *PlanMutation) HumanFeedback() (r string, exists bool) {
	v := m.human_feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldHumanFeedback returns the old "human_feedback" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldHumanFeedback(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHumanFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHumanFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHumanFeedback: %w", err)
	}
	return oldValue.HumanFeedback, nil
}

// ClearHumanFeedback clears the value of the "human_feedback" field.
func (m *PlanMutation) ClearHumanFeedback() {
	m.human_feedback = nil
	m.clearedFields[plan.FieldHumanFeedback] = struct{}{}
}

// HumanFeedbackCleared returns if the "human_feedback" field was cleared in this mutation.
func (m *PlanMutation) HumanFeedbackCleared() bool {
	_, ok := m.clearedFields[plan.FieldHumanFeedback]
	return ok
}

// ResetHumanFeedback resets all changes to the "human_feedback" field.
func (m *PlanMutation) ResetHumanFeedback() {
	m.human_feedback = nil
	delete(m.clearedFields, plan.FieldHumanFeedback)
}

// SetRestartedFrom sets the "restarted_from" field.
func (m *PlanMutation) SetRestartedFrom(s string) {
	m.restarted_from = &s
}

// RestartedFrom returns the value of the "restarted_from" field in the mutation.
func (m *PlanMutation) RestartedFrom() (r string, exists bool) {
	v := m.restarted_from
	if v == nil {
		return
	}
	return *v, true
}

// OldRestartedFrom returns the old "restarted_from" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldRestartedFrom(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRestartedFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRestartedFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRestartedFrom: %w", err)
	}
	return oldValue.RestartedFrom, nil
}

// ClearRestartedFrom clears the value of the "restarted_from" field.
func (m *PlanMutation) ClearRestartedFrom() {
	m.restarted_from = nil
	m.clearedFields[plan.FieldRestartedFrom] = struct{}{}
}

// RestartedFromCleared returns if the "restarted_from" field was cleared in this mutation.
func (m *PlanMutation) RestartedFromCleared() bool {
	_, ok := m.clearedFields[plan.FieldRestartedFrom]
	return ok
}

// ResetRestartedFrom resets all changes to the "restarted_from" field.
func (m *PlanMutation) ResetRestartedFrom() {
	m.restarted_from = nil
	delete(m.clearedFields, plan.FieldRestartedFrom)
}

// SetPlanMetadata sets the "plan_metadata" field.
func (m *PlanMutation) SetPlanMetadata(value map[string]interface{}) {
	m.plan_metadata = &value
}

// PlanMetadata returns the value of the "plan_metadata" field in the mutation.
func (m *PlanMutation) PlanMetadata() (r map[string]interface{}, exists bool) {
	v := m.plan_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanMetadata returns the old "plan_metadata" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldPlanMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanMetadata: %w", err)
	}
	return oldValue.PlanMetadata, nil
}

// ClearPlanMetadata clears the value of the "plan_metadata" field.
func (m *PlanMutation) ClearPlanMetadata() {
	m.plan_metadata = nil
	m.clearedFields[plan.FieldPlanMetadata] = struct{}{}
}

// PlanMetadataCleared returns if the "plan_metadata" field was cleared in this mutation.
func (m *PlanMutation) PlanMetadataCleared() bool {
	_, ok := m.clearedFields[plan.FieldPlanMetadata]
	return ok
}

// ResetPlanMetadata resets all changes to the "plan_metadata" field.
func (m *PlanMutation) ResetPlanMetadata() {
	m.plan_metadata = nil
	delete(m.clearedFields, plan.FieldPlanMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *PlanMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PlanMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PlanMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *PlanMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PlanMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *PlanMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[plan.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *PlanMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[plan.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PlanMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, plan.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *PlanMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PlanMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *PlanMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[plan.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PlanMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[plan.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PlanMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, plan.FieldCompletedAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *PlanMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *PlanMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *PlanMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[plan.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *PlanMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[plan.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *PlanMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, plan.FieldDeletedAt)
}

// AddStepIDs adds the "steps" edge to the PlanStep entity by ids.
func (m *PlanMutation) AddStepIDs(ids ...string) {
	if m.steps == nil {
		m.steps = make(map[string]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the PlanStep entity.
func (m *PlanMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the PlanStep entity was cleared.
func (m *PlanMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the PlanStep entity by IDs.
func (m *PlanMutation) RemoveStepIDs(ids ...string) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the PlanStep entity.
func (m *PlanMutation) RemovedStepsIDs() (ids []string) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *PlanMutation) StepsIDs() (ids []string) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *PlanMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// AddMessageIDs adds the "messages" edge to the AgentMessage entity by ids.
func (m *PlanMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the AgentMessage entity.
func (m *PlanMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the AgentMessage entity was cleared.
func (m *PlanMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the AgentMessage entity by IDs.
func (m *PlanMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the AgentMessage entity.
func (m *PlanMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *PlanMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *PlanMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *PlanMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *PlanMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *PlanMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *PlanMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *PlanMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *PlanMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *PlanMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddExtractionIDs adds the "extractions" edge to the Extraction entity by ids.
func (m *PlanMutation) AddExtractionIDs(ids ...string) {
	if m.extractions == nil {
		m.extractions = make(map[string]struct{})
	}
	for i := range ids {
		m.extractions[ids[i]] = struct{}{}
	}
}

// ClearExtractions clears the "extractions" edge to the Extraction entity.
func (m *PlanMutation) ClearExtractions() {
	m.clearedextractions = true
}

// ExtractionsCleared reports if the "extractions" edge to the Extraction entity was cleared.
func (m *PlanMutation) ExtractionsCleared() bool {
	return m.clearedextractions
}

// RemoveExtractionIDs removes the "extractions" edge to the Extraction entity by IDs.
func (m *PlanMutation) RemoveExtractionIDs(ids ...string) {
	if m.removedextractions == nil {
		m.removedextractions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.extractions, ids[i])
		m.removedextractions[ids[i]] = struct{}{}
	}
}

// RemovedExtractions returns the removed IDs of the "extractions" edge to the Extraction entity.
func (m *PlanMutation) RemovedExtractionsIDs() (ids []string) {
	for id := range m.removedextractions {
		ids = append(ids, id)
	}
	return
}

// ExtractionsIDs returns the "extractions" edge IDs in the mutation.
func (m *PlanMutation) ExtractionsIDs() (ids []string) {
	for id := range m.extractions {
		ids = append(ids, id)
	}
	return
}

// ResetExtractions resets all changes to the "extractions" edge.
func (m *PlanMutation) ResetExtractions() {
	m.extractions = nil
	m.clearedextractions = false
	m.removedextractions = nil
}

// Where appends a list predicates to the PlanMutation builder.
func (m *PlanMutation) Where(ps ...predicate.Plan) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlanMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlanMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Plan, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlanMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlanMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Plan).
func (m *PlanMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlanMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.session_id != nil {
		fields = append(fields, plan.FieldSessionID)
	}
	if m.task_description != nil {
		fields = append(fields, plan.FieldTaskDescription)
	}
	if m.status != nil {
		fields = append(fields, plan.FieldStatus)
	}
	if m.agent_sequence != nil {
		fields = append(fields, plan.FieldAgentSequence)
	}
	if m.graph_type != nil {
		fields = append(fields, plan.FieldGraphType)
	}
	if m.graph_id != nil {
		fields = append(fields, plan.FieldGraphID)
	}
	if m.require_approval != nil {
		fields = append(fields, plan.FieldRequireApproval)
	}
	if m.current_step != nil {
		fields = append(fields, plan.FieldCurrentStep)
	}
	if m.plan_summary != nil {
		fields = append(fields, plan.FieldPlanSummary)
	}
	if m.complexity != nil {
		fields = append(fields, plan.FieldComplexity)
	}
	if m.plan_source != nil {
		fields = append(fields, plan.FieldPlanSource)
	}
	if m.final_result != nil {
		fields = append(fields, plan.FieldFinalResult)
	}
	if m.error_message != nil {
		fields = append(fields, plan.FieldErrorMessage)
	}
	if m.human_feedback != nil {
		fields = append(fields, plan.FieldHumanFeedback)
	}
	if m.restarted_from != nil {
		fields = append(fields, plan.FieldRestartedFrom)
	}
	if m.plan_metadata != nil {
		fields = append(fields, plan.FieldPlanMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, plan.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, plan.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, plan.FieldCompletedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, plan.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlanMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case plan.FieldSessionID:
		return m.SessionID()
	case plan.FieldTaskDescription:
		return m.TaskDescription()
	case plan.FieldStatus:
		return m.Status()
	case plan.FieldAgentSequence:
		return m.AgentSequence()
	case plan.FieldGraphType:
		return m.GraphType()
	case plan.FieldGraphID:
		return m.GraphID()
	case plan.FieldRequireApproval:
		return m.RequireApproval()
	case plan.FieldCurrentStep:
		return m.CurrentStep()
	case plan.FieldPlanSummary:
		return m.PlanSummary()
	case plan.FieldComplexity:
		return m.Complexity()
	case plan.FieldPlanSource:
		return m.PlanSource()
	case plan.FieldFinalResult:
		return m.FinalResult()
	case plan.FieldErrorMessage:
		return m.ErrorMessage()
	case plan.FieldHumanFeedback:
		return m.HumanFeedback()
	case plan.FieldRestartedFrom:
		return m.RestartedFrom()
	case plan.FieldPlanMetadata:
		return m.PlanMetadata()
	case plan.FieldCreatedAt:
		return m.CreatedAt()
	case plan.FieldStartedAt:
		return m.StartedAt()
	case plan.FieldCompletedAt:
		return m.CompletedAt()
	case plan.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlanMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case plan.FieldSessionID:
		return m.OldSessionID(ctx)
	case plan.FieldTaskDescription:
		return m.OldTaskDescription(ctx)
	case plan.FieldStatus:
		return m.OldStatus(ctx)
	case plan.FieldAgentSequence:
		return m.OldAgentSequence(ctx)
	case plan.FieldGraphType:
		return m.OldGraphType(ctx)
	case plan.FieldGraphID:
		return m.OldGraphID(ctx)
	case plan.FieldRequireApproval:
		return m.OldRequireApproval(ctx)
	case plan.FieldCurrentStep:
		return m.OldCurrentStep(ctx)
	case plan.FieldPlanSummary:
		return m.OldPlanSummary(ctx)
	case plan.FieldComplexity:
		return m.OldComplexity(ctx)
	case plan.FieldPlanSource:
		return m.OldPlanSource(ctx)
	case plan.FieldFinalResult:
		return m.OldFinalResult(ctx)
	case plan.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case plan.FieldHumanFeedback:
		return m.OldHumanFeedback(ctx)
	case plan.FieldRestartedFrom:
		return m.OldRestartedFrom(ctx)
	case plan.FieldPlanMetadata:
		return m.OldPlanMetadata(ctx)
	case plan.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case plan.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case plan.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case plan.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Plan field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlanMutation) SetField(name string, value ent.Value) error {
	switch name {
	case plan.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case plan.FieldTaskDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskDescription(v)
		return nil
	case plan.FieldStatus:
		v, ok := value.(plan.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case plan.FieldAgentSequence:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentSequence(v)
		return nil
	case plan.FieldGraphType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGraphType(v)
		return nil
	case plan.FieldGraphID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGraphID(v)
		return nil
	case plan.FieldRequireApproval:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequireApproval(v)
		return nil
	case plan.FieldCurrentStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStep(v)
		return nil
	case plan.FieldPlanSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanSummary(v)
		return nil
	case plan.FieldComplexity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComplexity(v)
		return nil
	case plan.FieldPlanSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanSource(v)
		return nil
	case plan.FieldFinalResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalResult(v)
		return nil
	case plan.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case plan.FieldHumanFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHumanFeedback(v)
		return nil
	case plan.FieldRestartedFrom:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRestartedFrom(v)
		return nil
	case plan.FieldPlanMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanMetadata(v)
		return nil
	case plan.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case plan.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case plan.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case plan.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Plan field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlanMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_step != nil {
		fields = append(fields, plan.FieldCurrentStep)
	}
	if m.addcomplexity != nil {
		fields = append(fields, plan.FieldComplexity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlanMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case plan.FieldCurrentStep:
		return m.AddedCurrentStep()
	case plan.FieldComplexity:
		return m.AddedComplexity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlanMutation) AddField(name string, value ent.Value) error {
	switch name {
	case plan.FieldCurrentStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentStep(v)
		return nil
	case plan.FieldComplexity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddComplexity(v)
		return nil
	}
	return fmt.Errorf("unknown Plan numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlanMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(plan.FieldAgentSequence) {
		fields = append(fields, plan.FieldAgentSequence)
	}
	if m.FieldCleared(plan.FieldGraphType) {
		fields = append(fields, plan.FieldGraphType)
	}
	if m.FieldCleared(plan.FieldGraphID) {
		fields = append(fields, plan.FieldGraphID)
	}
	if m.FieldCleared(plan.FieldPlanSummary) {
		fields = append(fields, plan.FieldPlanSummary)
	}
	if m.FieldCleared(plan.FieldComplexity) {
		fields = append(fields, plan.FieldComplexity)
	}
	if m.FieldCleared(plan.FieldPlanSource) {
		fields = append(fields, plan.FieldPlanSource)
	}
	if m.FieldCleared(plan.FieldFinalResult) {
		fields = append(fields, plan.FieldFinalResult)
	}
	if m.FieldCleared(plan.FieldErrorMessage) {
		fields = append(fields, plan.FieldErrorMessage)
	}
	if m.FieldCleared(plan.FieldHumanFeedback) {
		fields = append(fields, plan.FieldHumanFeedback)
	}
	if m.FieldCleared(plan.FieldRestartedFrom) {
		fields = append(fields, plan.FieldRestartedFrom)
	}
	if m.FieldCleared(plan.FieldPlanMetadata) {
		fields = append(fields, plan.FieldPlanMetadata)
	}
	if m.FieldCleared(plan.FieldStartedAt) {
		fields = append(fields, plan.FieldStartedAt)
	}
	if m.FieldCleared(plan.FieldCompletedAt) {
		fields = append(fields, plan.FieldCompletedAt)
	}
	if m.FieldCleared(plan.FieldDeletedAt) {
		fields = append(fields, plan.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlanMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlanMutation) ClearField(name string) error {
	switch name {
	case plan.FieldAgentSequence:
		m.ClearAgentSequence()
		return nil
	case plan.FieldGraphType:
		m.ClearGraphType()
		return nil
	case plan.FieldGraphID:
		m.ClearGraphID()
		return nil
	case plan.FieldPlanSummary:
		m.ClearPlanSummary()
		return nil
	case plan.FieldComplexity:
		m.ClearComplexity()
		return nil
	case plan.FieldPlanSource:
		m.ClearPlanSource()
		return nil
	case plan.FieldFinalResult:
		m.ClearFinalResult()
		return nil
	case plan.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case plan.FieldHumanFeedback:
		m.ClearHumanFeedback()
		return nil
	case plan.FieldRestartedFrom:
		m.ClearRestartedFrom()
		return nil
	case plan.FieldPlanMetadata:
		m.ClearPlanMetadata()
		return nil
	case plan.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case plan.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case plan.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Plan nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlanMutation) ResetField(name string) error {
	switch name {
	case plan.FieldSessionID:
		m.ResetSessionID()
		return nil
	case plan.FieldTaskDescription:
		m.ResetTaskDescription()
		return nil
	case plan.FieldStatus:
		m.ResetStatus()
		return nil
	case plan.FieldAgentSequence:
		m.ResetAgentSequence()
		return nil
	case plan.FieldGraphType:
		m.ResetGraphType()
		return nil
	case plan.FieldGraphID:
		m.ResetGraphID()
		return nil
	case plan.FieldRequireApproval:
		m.ResetRequireApproval()
		return nil
	case plan.FieldCurrentStep:
		m.ResetCurrentStep()
		return nil
	case plan.FieldPlanSummary:
		m.ResetPlanSummary()
		return nil
	case plan.FieldComplexity:
		m.ResetComplexity()
		return nil
	case plan.FieldPlanSource:
		m.ResetPlanSource()
		return nil
	case plan.FieldFinalResult:
		m.ResetFinalResult()
		return nil
	case plan.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case plan.FieldHumanFeedback:
		m.ResetHumanFeedback()
		return nil
	case plan.FieldRestartedFrom:
		m.ResetRestartedFrom()
		return nil
	case plan.FieldPlanMetadata:
		m.ResetPlanMetadata()
		return nil
	case plan.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case plan.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case plan.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case plan.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Plan field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlanMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.steps != nil {
		edges = append(edges, plan.EdgeSteps)
	}
	if m.messages != nil {
		edges = append(edges, plan.EdgeMessages)
	}
	if m.events != nil {
		edges = append(edges, plan.EdgeEvents)
	}
	if m.extractions != nil {
		edges = append(edges, plan.EdgeExtractions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlanMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case plan.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	case plan.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case plan.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case plan.EdgeExtractions:
		ids := make([]ent.Value, 0, len(m.extractions))
		for id := range m.extractions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlanMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedsteps != nil {
		edges = append(edges, plan.EdgeSteps)
	}
	if m.removedmessages != nil {
		edges = append(edges, plan.EdgeMessages)
	}
	if m.removedevents != nil {
		edges = append(edges, plan.EdgeEvents)
	}
	if m.removedextractions != nil {
		edges = append(edges, plan.EdgeExtractions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlanMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case plan.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	case plan.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case plan.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case plan.EdgeExtractions:
		ids := make([]ent.Value, 0, len(m.removedextractions))
		for id := range m.removedextractions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlanMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedsteps {
		edges = append(edges, plan.EdgeSteps)
	}
	if m.clearedmessages {
		edges = append(edges, plan.EdgeMessages)
	}
	if m.clearedevents {
		edges = append(edges, plan.EdgeEvents)
	}
	if m.clearedextractions {
		edges = append(edges, plan.EdgeExtractions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlanMutation) EdgeCleared(name string) bool {
	switch name {
	case plan.EdgeSteps:
		return m.clearedsteps
	case plan.EdgeMessages:
		return m.clearedmessages
	case plan.EdgeEvents:
		return m.clearedevents
	case plan.EdgeExtractions:
		return m.clearedextractions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlanMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Plan unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlanMutation) ResetEdge(name string) error {
	switch name {
	case plan.EdgeSteps:
		m.ResetSteps()
		return nil
	case plan.EdgeMessages:
		m.ResetMessages()
		return nil
	case plan.EdgeEvents:
		m.ResetEvents()
		return nil
	case plan.EdgeExtractions:
		m.ResetExtractions()
		return nil
	}
	return fmt.Errorf("unknown Plan edge %s", name)
}

// PlanStepMutation represents an operation that mutates the PlanStep nodes in the graph.
type PlanStepMutation struct {
	config
	op               Op
	typ              string
	id               *string
	step_index       *int
	addstep_index    *int
	agent_name       *string
	interrupt_before *bool
	status           *planstep.Status
	summary          *string
	output           *map[string]interface{}
	error_message    *string
	started_at       *time.Time
	completed_at     *time.Time
	duration_ms      *int64
	addduration_ms   *int64
	created_at       *time.Time
	clearedFields    map[string]struct{}
	plan             *string
	clearedplan      bool
	done             bool
	oldValue         func(context.Context) (*PlanStep, error)
	predicates       []predicate.PlanStep
}

var _ ent.Mutation = (*PlanStepMutation)(nil)

// planstepOption allows management of the mutation configuration using functional options.
type planstepOption func(*PlanStepMutation)

// newPlanStepMutation creates new mutation for the PlanStep entity.
func newPlanStepMutation(c config, op Op, opts ...planstepOption) *PlanStepMutation {
	m := &PlanStepMutation{
		config:        c,
		op:            op,
		typ:           TypePlanStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlanStepID sets the ID field of the mutation.
func withPlanStepID(id string) planstepOption {
	return func(m *PlanStepMutation) {
		var (
			err   error
			once  sync.Once
			value *PlanStep
		)
		m.oldValue = func(ctx context.Context) (*PlanStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PlanStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlanStep sets the old PlanStep of the mutation.
func withPlanStep(node *PlanStep) planstepOption {
	return func(m *PlanStepMutation) {
		m.oldValue = func(context.Context) (*PlanStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlanStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlanStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PlanStep entities.
func (m *PlanStepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlanStepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlanStepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PlanStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlanID sets the "plan_id" field.
func (m *PlanStepMutation) SetPlanID(s string) {
	m.plan = &s
}

// PlanID returns the value of the "plan_id" field in the mutation.
func (m *PlanStepMutation) PlanID() (r string, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanID returns the old "plan_id" field's value of the PlanStep entity.
// If the PlanStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanStepMutation) OldPlanID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanID: %w", err)
	}
	return oldValue.PlanID, nil
}

// ResetPlanID resets all changes to the "plan_id" field.
func (m *PlanStepMutation) ResetPlanID() {
	m.plan = nil
}

// SetStepIndex sets the "step_index" field.
func (m *PlanStepMutation) SetStepIndex(i int) {
	m.step_index = &i
	m.addstep_index = nil
}

// StepIndex returns the value of the "step_index" field in the mutation.
func (m *PlanStepMutation) StepIndex() (r int, exists bool) {
	v := m.step_index
	if v == nil {
		return
	}
	return *v, true
}

// OldStepIndex returns the old "step_index" field's value of the PlanStep entity.
// If the PlanStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanStepMutation) OldStepIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepIndex: %w", err)
	}
	return oldValue.StepIndex, nil
}

// AddStepIndex adds i to the "step_index" field.
func (m *PlanStepMutation) AddStepIndex(i int) {
	if m.addstep_index != nil {
		*m.addstep_index += i
	} else {
		m.addstep_index = &i
	}
}

// AddedStepIndex returns the value that was added to the "step_index" field in this mutation.
func (m *PlanStepMutation) AddedStepIndex() (r int, exists bool) {
	v := m.addstep_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepIndex resets all changes to the "step_index" field.
func (m *PlanStepMutation) ResetStepIndex() {
	m.step_index = nil
	m.addstep_index = nil
}

// SetAgentName sets the "agent_name" field.
func (m *PlanStepMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *PlanStepMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the PlanStep entity.
// If the PlanStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanStepMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *PlanStepMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetInterruptBefore sets the "interrupt_before" field.
func (m *PlanStepMutation) SetInterruptBefore(b bool) {
	m.interrupt_before = &b
}

// InterruptBefore returns the value of the "interrupt_before" field in the mutation.
func (m *PlanStepMutation) InterruptBefore() (r bool, exists bool) {
	v := m.interrupt_before
	if v == nil {
		return
	}
	return *v, true
}

// OldInterruptBefore returns the old "interrupt_before" field's value of the PlanStep entity.
// If the PlanStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanStepMutation) OldInterruptBefore(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInterruptBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInterruptBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInterruptBefore: %w", err)
	}
	return oldValue.InterruptBefore, nil
}

// ResetInterruptBefore resets all changes to the "interrupt_before" field.
func (m *PlanStepMutation) ResetInterruptBefore() {
	m.interrupt_before = nil
}

// SetStatus sets the "status" field.
func (m *PlanStepMutation) SetStatus(pl planstep.Status) {
	m.status = &pl
}

// Status returns the value of the "status" field in the mutation.
func (m *PlanStepMutation) Status() (r planstep.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PlanStep entity.
// If the PlanStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanStepMutation) OldStatus(ctx context.Context) (v planstep.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PlanStepMutation) ResetStatus() {
	m.status = nil
}

// SetSummary sets the "summary" field.
func (m *PlanStepMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *PlanStepMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the PlanStep entity.
// If the PlanStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanStepMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *PlanStepMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[planstep.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *PlanStepMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[planstep.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *PlanStepMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, planstep.FieldSummary)
}

// SetOutput sets the "output" field.
func (m *PlanStepMutation) SetOutput(value map[string]interface{}) {
	m.output = &value
}

// Output returns the value of the "output" field in the mutation.
func (m *PlanStepMutation) Output() (r map[string]interface{}, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the PlanStep entity.
// If the PlanStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanStepMutation) OldOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *PlanStepMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[planstep.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *PlanStepMutation) OutputCleared() bool {
	_, ok := m.clearedFields[planstep.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *PlanStepMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, planstep.FieldOutput)
}

// SetErrorMessage sets the "error_message" field.
func (m *PlanStepMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *PlanStepMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the PlanStep entity.
// If the PlanStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanStepMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *PlanStepMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[planstep.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *PlanStepMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[planstep.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *PlanStepMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, planstep.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *PlanStepMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PlanStepMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PlanStep entity.
// If the PlanStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanStepMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *PlanStepMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[planstep.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *PlanStepMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[planstep.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PlanStepMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, planstep.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *PlanStepMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PlanStepMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PlanStep entity.
// If the PlanStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanStepMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *PlanStepMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[planstep.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PlanStepMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[planstep.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PlanStepMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, planstep.FieldCompletedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *PlanStepMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *PlanStepMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the PlanStep entity.
// If the PlanStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanStepMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *PlanStepMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *PlanStepMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *PlanStepMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[planstep.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *PlanStepMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[planstep.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *PlanStepMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, planstep.FieldDurationMs)
}

// SetCreatedAt sets the "created_at" field.
func (m *PlanStepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PlanStepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PlanStep entity.
// If the PlanStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanStepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PlanStepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearPlan clears the "plan" edge to the Plan entity.
func (m *PlanStepMutation) ClearPlan() {
	m.clearedplan = true
	m.clearedFields[planstep.FieldPlanID] = struct{}{}
}

// PlanCleared reports if the "plan" edge to the Plan entity was cleared.
func (m *PlanStepMutation) PlanCleared() bool {
	return m.clearedplan
}

// PlanIDs returns the "plan" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PlanID instead. It exists only for internal usage by the builders.
func (m *PlanStepMutation) PlanIDs() (ids []string) {
	if id := m.plan; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPlan resets all changes to the "plan" edge.
func (m *PlanStepMutation) ResetPlan() {
	m.plan = nil
	m.clearedplan = false
}

// Where appends a list predicates to the PlanStepMutation builder.
func (m *PlanStepMutation) Where(ps ...predicate.PlanStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlanStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlanStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PlanStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlanStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlanStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PlanStep).
func (m *PlanStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlanStepMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.plan != nil {
		fields = append(fields, planstep.FieldPlanID)
	}
	if m.step_index != nil {
		fields = append(fields, planstep.FieldStepIndex)
	}
	if m.agent_name != nil {
		fields = append(fields, planstep.FieldAgentName)
	}
	if m.interrupt_before != nil {
		fields = append(fields, planstep.FieldInterruptBefore)
	}
	if m.status != nil {
		fields = append(fields, planstep.FieldStatus)
	}
	if m.summary != nil {
		fields = append(fields, planstep.FieldSummary)
	}
	if m.output != nil {
		fields = append(fields, planstep.FieldOutput)
	}
	if m.error_message != nil {
		fields = append(fields, planstep.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, planstep.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, planstep.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, planstep.FieldDurationMs)
	}
	if m.created_at != nil {
		fields = append(fields, planstep.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlanStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case planstep.FieldPlanID:
		return m.PlanID()
	case planstep.FieldStepIndex:
		return m.StepIndex()
	case planstep.FieldAgentName:
		return m.AgentName()
	case planstep.FieldInterruptBefore:
		return m.InterruptBefore()
	case planstep.FieldStatus:
		return m.Status()
	case planstep.FieldSummary:
		return m.Summary()
	case planstep.FieldOutput:
		return m.Output()
	case planstep.FieldErrorMessage:
		return m.ErrorMessage()
	case planstep.FieldStartedAt:
		return m.StartedAt()
	case planstep.FieldCompletedAt:
		return m.CompletedAt()
	case planstep.FieldDurationMs:
		return m.DurationMs()
	case planstep.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlanStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case planstep.FieldPlanID:
		return m.OldPlanID(ctx)
	case planstep.FieldStepIndex:
		return m.OldStepIndex(ctx)
	case planstep.FieldAgentName:
		return m.OldAgentName(ctx)
	case planstep.FieldInterruptBefore:
		return m.OldInterruptBefore(ctx)
	case planstep.FieldStatus:
		return m.OldStatus(ctx)
	case planstep.FieldSummary:
		return m.OldSummary(ctx)
	case planstep.FieldOutput:
		return m.OldOutput(ctx)
	case planstep.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case planstep.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case planstep.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case planstep.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case planstep.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PlanStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlanStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case planstep.FieldPlanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanID(v)
		return nil
	case planstep.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepIndex(v)
		return nil
	case planstep.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case planstep.FieldInterruptBefore:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInterruptBefore(v)
		return nil
	case planstep.FieldStatus:
		v, ok := value.(planstep.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case planstep.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case planstep.FieldOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case planstep.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case planstep.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case planstep.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case planstep.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case planstep.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PlanStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlanStepMutation) AddedFields() []string {
	var fields []string
	if m.addstep_index != nil {
		fields = append(fields, planstep.FieldStepIndex)
	}
	if m.addduration_ms != nil {
		fields = append(fields, planstep.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlanStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case planstep.FieldStepIndex:
		return m.AddedStepIndex()
	case planstep.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlanStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case planstep.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepIndex(v)
		return nil
	case planstep.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown PlanStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlanStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(planstep.FieldSummary) {
		fields = append(fields, planstep.FieldSummary)
	}
	if m.FieldCleared(planstep.FieldOutput) {
		fields = append(fields, planstep.FieldOutput)
	}
	if m.FieldCleared(planstep.FieldErrorMessage) {
		fields = append(fields, planstep.FieldErrorMessage)
	}
	if m.FieldCleared(planstep.FieldStartedAt) {
		fields = append(fields, planstep.FieldStartedAt)
	}
	if m.FieldCleared(planstep.FieldCompletedAt) {
		fields = append(fields, planstep.FieldCompletedAt)
	}
	if m.FieldCleared(planstep.FieldDurationMs) {
		fields = append(fields, planstep.FieldDurationMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlanStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlanStepMutation) ClearField(name string) error {
	switch name {
	case planstep.FieldSummary:
		m.ClearSummary()
		return nil
	case planstep.FieldOutput:
		m.ClearOutput()
		return nil
	case planstep.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case planstep.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case planstep.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case planstep.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	}
	return fmt.Errorf("unknown PlanStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlanStepMutation) ResetField(name string) error {
	switch name {
	case planstep.FieldPlanID:
		m.ResetPlanID()
		return nil
	case planstep.FieldStepIndex:
		m.ResetStepIndex()
		return nil
	case planstep.FieldAgentName:
		m.ResetAgentName()
		return nil
	case planstep.FieldInterruptBefore:
		m.ResetInterruptBefore()
		return nil
	case planstep.FieldStatus:
		m.ResetStatus()
		return nil
	case planstep.FieldSummary:
		m.ResetSummary()
		return nil
	case planstep.FieldOutput:
		m.ResetOutput()
		return nil
	case planstep.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case planstep.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case planstep.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case planstep.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case planstep.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PlanStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlanStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.plan != nil {
		edges = append(edges, planstep.EdgePlan)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlanStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case planstep.EdgePlan:
		if id := m.plan; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlanStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlanStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlanStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedplan {
		edges = append(edges, planstep.EdgePlan)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlanStepMutation) EdgeCleared(name string) bool {
	switch name {
	case planstep.EdgePlan:
		return m.clearedplan
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlanStepMutation) ClearEdge(name string) error {
	switch name {
	case planstep.EdgePlan:
		m.ClearPlan()
		return nil
	}
	return fmt.Errorf("unknown PlanStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlanStepMutation) ResetEdge(name string) error {
	switch name {
	case planstep.EdgePlan:
		m.ResetPlan()
		return nil
	}
	return fmt.Errorf("unknown PlanStep edge %s", name)
}

// TeamMutation represents an operation that mutates the Team nodes in the graph.
type TeamMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	description   *string
	agents        *[]map[string]interface{}
	appendagents  []map[string]interface{}
	team_metadata *map[string]interface{}
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Team, error)
	predicates    []predicate.Team
}

var _ ent.Mutation = (*TeamMutation)(nil)

// teamOption allows management of the mutation configuration using functional options.
type teamOption func(*TeamMutation)

// newTeamMutation creates new mutation for the Team entity.
func newTeamMutation(c config, op Op, opts ...teamOption) *TeamMutation {
	m := &TeamMutation{
		config:        c,
		op:            op,
		typ:           TypeTeam,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTeamID sets the ID field of the mutation.
func withTeamID(id string) teamOption {
	return func(m *TeamMutation) {
		var (
			err   error
			once  sync.Once
			value *Team
		)
		m.oldValue = func(ctx context.Context) (*Team, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Team.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTeam sets the old Team of the mutation.
func withTeam(node *Team) teamOption {
	return func(m *TeamMutation) {
		m.oldValue = func(context.Context) (*Team, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TeamMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TeamMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Team entities.
func (m *TeamMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TeamMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TeamMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Team.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TeamMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TeamMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TeamMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *TeamMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TeamMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TeamMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[team.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TeamMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[team.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TeamMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, team.FieldDescription)
}

// SetAgents sets the "agents" field.
func (m *TeamMutation) SetAgents(value []map[string]interface{}) {
	m.agents = &value
	m.appendagents = nil
}

// Agents returns the value of the "agents" field in the mutation.
func (m *TeamMutation) Agents() (r []map[string]interface{}, exists bool) {
	v := m.agents
	if v == nil {
		return
	}
	return *v, true
}

// OldAgents returns the old "agents" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldAgents(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgents: %w", err)
	}
	return oldValue.Agents, nil
}

// AppendAgents adds value to the "agents" field.
func (m *TeamMutation) AppendAgents(value []map[string]interface{}) {
	m.appendagents = append(m.appendagents, value...)
}

// AppendedAgents returns the list of values that were appended to the "agents" field in this mutation.
func (m *TeamMutation) AppendedAgents() ([]map[string]interface{}, bool) {
	if len(m.appendagents) == 0 {
		return nil, false
	}
	return m.appendagents, true
}

// ResetAgents resets all changes to the "agents" field.
func (m *TeamMutation) ResetAgents() {
	m.agents = nil
	m.appendagents = nil
}

// SetTeamMetadata sets the "team_metadata" field.
func (m *TeamMutation) SetTeamMetadata(value map[string]interface{}) {
	m.team_metadata = &value
}

// TeamMetadata returns the value of the "team_metadata" field in the mutation.
func (m *TeamMutation) TeamMetadata() (r map[string]interface{}, exists bool) {
	v := m.team_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldTeamMetadata returns the old "team_metadata" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldTeamMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeamMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeamMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeamMetadata: %w", err)
	}
	return oldValue.TeamMetadata, nil
}

// ClearTeamMetadata clears the value of the "team_metadata" field.
func (m *TeamMutation) ClearTeamMetadata() {
	m.team_metadata = nil
	m.clearedFields[team.FieldTeamMetadata] = struct{}{}
}

// TeamMetadataCleared returns if the "team_metadata" field was cleared in this mutation.
func (m *TeamMutation) TeamMetadataCleared() bool {
	_, ok := m.clearedFields[team.FieldTeamMetadata]
	return ok
}

// ResetTeamMetadata resets all changes to the "team_metadata" field.
func (m *TeamMutation) ResetTeamMetadata() {
	m.team_metadata = nil
	delete(m.clearedFields, team.FieldTeamMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *TeamMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TeamMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TeamMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TeamMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TeamMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TeamMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TeamMutation builder.
func (m *TeamMutation) Where(ps ...predicate.Team) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TeamMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TeamMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Team, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TeamMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TeamMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Team).
func (m *TeamMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TeamMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, team.FieldName)
	}
	if m.description != nil {
		fields = append(fields, team.FieldDescription)
	}
	if m.agents != nil {
		fields = append(fields, team.FieldAgents)
	}
	if m.team_metadata != nil {
		fields = append(fields, team.FieldTeamMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, team.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, team.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TeamMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case team.FieldName:
		return m.Name()
	case team.FieldDescription:
		return m.Description()
	case team.FieldAgents:
		return m.Agents()
	case team.FieldTeamMetadata:
		return m.TeamMetadata()
	case team.FieldCreatedAt:
		return m.CreatedAt()
	case team.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TeamMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case team.FieldName:
		return m.OldName(ctx)
	case team.FieldDescription:
		return m.OldDescription(ctx)
	case team.FieldAgents:
		return m.OldAgents(ctx)
	case team.FieldTeamMetadata:
		return m.OldTeamMetadata(ctx)
	case team.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case team.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Team field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TeamMutation) SetField(name string, value ent.Value) error {
	switch name {
	case team.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case team.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case team.FieldAgents:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgents(v)
		return nil
	case team.FieldTeamMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeamMetadata(v)
		return nil
	case team.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case team.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Team field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TeamMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TeamMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TeamMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Team numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TeamMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(team.FieldDescription) {
		fields = append(fields, team.FieldDescription)
	}
	if m.FieldCleared(team.FieldTeamMetadata) {
		fields = append(fields, team.FieldTeamMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TeamMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TeamMutation) ClearField(name string) error {
	switch name {
	case team.FieldDescription:
		m.ClearDescription()
		return nil
	case team.FieldTeamMetadata:
		m.ClearTeamMetadata()
		return nil
	}
	return fmt.Errorf("unknown Team nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TeamMutation) ResetField(name string) error {
	switch name {
	case team.FieldName:
		m.ResetName()
		return nil
	case team.FieldDescription:
		m.ResetDescription()
		return nil
	case team.FieldAgents:
		m.ResetAgents()
		return nil
	case team.FieldTeamMetadata:
		m.ResetTeamMetadata()
		return nil
	case team.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case team.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Team field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TeamMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TeamMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TeamMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TeamMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TeamMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TeamMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TeamMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Team unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TeamMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Team edge %s", name)
}
