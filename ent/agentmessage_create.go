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
	"github.com/finovant/macaw/ent/plan"
)

// AgentMessageCreate is the builder for creating a AgentMessage entity.
type AgentMessageCreate struct {
	config
	mutation *AgentMessageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPlanID sets the "plan_id" field.
func (_c *AgentMessageCreate) SetPlanID(v string) *AgentMessageCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *AgentMessageCreate) SetAgentName(v string) *AgentMessageCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetSequenceNumber sets the "sequence_number" field.
func (_c *AgentMessageCreate) SetSequenceNumber(v int) *AgentMessageCreate {
	_c.mutation.SetSequenceNumber(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *AgentMessageCreate) SetKind(v agentmessage.Kind) *AgentMessageCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *AgentMessageCreate) SetNillableKind(v *agentmessage.Kind) *AgentMessageCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *AgentMessageCreate) SetContent(v string) *AgentMessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetMessageMetadata sets the "message_metadata" field.
func (_c *AgentMessageCreate) SetMessageMetadata(v map[string]interface{}) *AgentMessageCreate {
	_c.mutation.SetMessageMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentMessageCreate) SetCreatedAt(v time.Time) *AgentMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentMessageCreate) SetNillableCreatedAt(v *time.Time) *AgentMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentMessageCreate) SetID(v string) *AgentMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetPlan sets the "plan" edge to the Plan entity.
func (_c *AgentMessageCreate) SetPlan(v *Plan) *AgentMessageCreate {
	return _c.SetPlanID(v.ID)
}

// Mutation returns the AgentMessageMutation object of the builder.
func (_c *AgentMessageCreate) Mutation() *AgentMessageMutation {
	return _c.mutation
}

// Save creates the AgentMessage in the database.
func (_c *AgentMessageCreate) Save(ctx context.Context) (*AgentMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentMessageCreate) SaveX(ctx context.Context) *AgentMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentMessageCreate) defaults() {
	if _, ok := _c.mutation.Kind(); !ok {
		v := agentmessage.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentMessageCreate) check() error {
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "AgentMessage.plan_id"`)}
	}
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "AgentMessage.agent_name"`)}
	}
	if _, ok := _c.mutation.SequenceNumber(); !ok {
		return &ValidationError{Name: "sequence_number", err: errors.New(`ent: missing required field "AgentMessage.sequence_number"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "AgentMessage.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := agentmessage.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AgentMessage.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "AgentMessage.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentMessage.created_at"`)}
	}
	if len(_c.mutation.PlanIDs()) == 0 {
		return &ValidationError{Name: "plan", err: errors.New(`ent: missing required edge "AgentMessage.plan"`)}
	}
	return nil
}

func (_c *AgentMessageCreate) sqlSave(ctx context.Context) (*AgentMessage, error) {
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
			return nil, fmt.Errorf("unexpected AgentMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentMessageCreate) createSpec() (*AgentMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentmessage.Table, sqlgraph.NewFieldSpec(agentmessage.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(agentmessage.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.SequenceNumber(); ok {
		_spec.SetField(agentmessage.FieldSequenceNumber, field.TypeInt, value)
		_node.SequenceNumber = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(agentmessage.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(agentmessage.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.MessageMetadata(); ok {
		_spec.SetField(agentmessage.FieldMessageMetadata, field.TypeJSON, value)
		_node.MessageMetadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.PlanIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentmessage.PlanTable,
			Columns: []string{agentmessage.PlanColumn},
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
//	client.AgentMessage.Create().
//		SetPlanID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentMessageUpsert) {
//			SetPlanID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentMessageCreate) OnConflict(opts ...sql.ConflictOption) *AgentMessageUpsertOne {
	_c.conflict = opts
	return &AgentMessageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentMessageCreate) OnConflictColumns(columns ...string) *AgentMessageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentMessageUpsertOne{
		create: _c,
	}
}

type (
	// AgentMessageUpsertOne is the builder for "upsert"-ing
	//  one AgentMessage node.
	AgentMessageUpsertOne struct {
		create *AgentMessageCreate
	}

	// AgentMessageUpsert is the "OnConflict" setter.
	AgentMessageUpsert struct {
		*sql.UpdateSet
	}
)

// SetKind sets the "kind" field.
func (u *AgentMessageUpsert) SetKind(v agentmessage.Kind) *AgentMessageUpsert {
	u.Set(agentmessage.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *AgentMessageUpsert) UpdateKind() *AgentMessageUpsert {
	u.SetExcluded(agentmessage.FieldKind)
	return u
}

// SetContent sets the "content" field.
func (u *AgentMessageUpsert) SetContent(v string) *AgentMessageUpsert {
	u.Set(agentmessage.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *AgentMessageUpsert) UpdateContent() *AgentMessageUpsert {
	u.SetExcluded(agentmessage.FieldContent)
	return u
}

// SetMessageMetadata sets the "message_metadata" field.
func (u *AgentMessageUpsert) SetMessageMetadata(v map[string]interface{}) *AgentMessageUpsert {
	u.Set(agentmessage.FieldMessageMetadata, v)
	return u
}

// UpdateMessageMetadata sets the "message_metadata" field to the value that was provided on create.
func (u *AgentMessageUpsert) UpdateMessageMetadata() *AgentMessageUpsert {
	u.SetExcluded(agentmessage.FieldMessageMetadata)
	return u
}

// ClearMessageMetadata clears the value of the "message_metadata" field.
func (u *AgentMessageUpsert) ClearMessageMetadata() *AgentMessageUpsert {
	u.SetNull(agentmessage.FieldMessageMetadata)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AgentMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentmessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentMessageUpsertOne) UpdateNewValues() *AgentMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agentmessage.FieldID)
		}
		if _, exists := u.create.mutation.PlanID(); exists {
			s.SetIgnore(agentmessage.FieldPlanID)
		}
		if _, exists := u.create.mutation.AgentName(); exists {
			s.SetIgnore(agentmessage.FieldAgentName)
		}
		if _, exists := u.create.mutation.SequenceNumber(); exists {
			s.SetIgnore(agentmessage.FieldSequenceNumber)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(agentmessage.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentMessage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentMessageUpsertOne) Ignore() *AgentMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentMessageUpsertOne) DoNothing() *AgentMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentMessageCreate.OnConflict
// documentation for more info.
func (u *AgentMessageUpsertOne) Update(set func(*AgentMessageUpsert)) *AgentMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetKind sets the "kind" field.
func (u *AgentMessageUpsertOne) SetKind(v agentmessage.Kind) *AgentMessageUpsertOne {
	return u.Update(func(s *AgentMessageUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *AgentMessageUpsertOne) UpdateKind() *AgentMessageUpsertOne {
	return u.Update(func(s *AgentMessageUpsert) {
		s.UpdateKind()
	})
}

// SetContent sets the "content" field.
func (u *AgentMessageUpsertOne) SetContent(v string) *AgentMessageUpsertOne {
	return u.Update(func(s *AgentMessageUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *AgentMessageUpsertOne) UpdateContent() *AgentMessageUpsertOne {
	return u.Update(func(s *AgentMessageUpsert) {
		s.UpdateContent()
	})
}

// SetMessageMetadata sets the "message_metadata" field.
func (u *AgentMessageUpsertOne) SetMessageMetadata(v map[string]interface{}) *AgentMessageUpsertOne {
	return u.Update(func(s *AgentMessageUpsert) {
		s.SetMessageMetadata(v)
	})
}

// UpdateMessageMetadata sets the "message_metadata" field to the value that was provided on create.
func (u *AgentMessageUpsertOne) UpdateMessageMetadata() *AgentMessageUpsertOne {
	return u.Update(func(s *AgentMessageUpsert) {
		s.UpdateMessageMetadata()
	})
}

// ClearMessageMetadata clears the value of the "message_metadata" field.
func (u *AgentMessageUpsertOne) ClearMessageMetadata() *AgentMessageUpsertOne {
	return u.Update(func(s *AgentMessageUpsert) {
		s.ClearMessageMetadata()
	})
}

// Exec executes the query.
func (u *AgentMessageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentMessageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentMessageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentMessageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentMessageUpsertOne.ID is not supported by MySQL driver. Use AgentMessageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentMessageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentMessageCreateBulk is the builder for creating many AgentMessage entities in bulk.
type AgentMessageCreateBulk struct {
	config
	err      error
	builders []*AgentMessageCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentMessage entities in the database.
func (_c *AgentMessageCreateBulk) Save(ctx context.Context) ([]*AgentMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMessageMutation)
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
func (_c *AgentMessageCreateBulk) SaveX(ctx context.Context) []*AgentMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentMessage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentMessageUpsert) {
//			SetPlanID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentMessageCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentMessageUpsertBulk {
	_c.conflict = opts
	return &AgentMessageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentMessageCreateBulk) OnConflictColumns(columns ...string) *AgentMessageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentMessageUpsertBulk{
		create: _c,
	}
}

// AgentMessageUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentMessage nodes.
type AgentMessageUpsertBulk struct {
	create *AgentMessageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentmessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentMessageUpsertBulk) UpdateNewValues() *AgentMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agentmessage.FieldID)
			}
			if _, exists := b.mutation.PlanID(); exists {
				s.SetIgnore(agentmessage.FieldPlanID)
			}
			if _, exists := b.mutation.AgentName(); exists {
				s.SetIgnore(agentmessage.FieldAgentName)
			}
			if _, exists := b.mutation.SequenceNumber(); exists {
				s.SetIgnore(agentmessage.FieldSequenceNumber)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(agentmessage.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentMessage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentMessageUpsertBulk) Ignore() *AgentMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentMessageUpsertBulk) DoNothing() *AgentMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentMessageCreateBulk.OnConflict
// documentation for more info.
func (u *AgentMessageUpsertBulk) Update(set func(*AgentMessageUpsert)) *AgentMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetKind sets the "kind" field.
func (u *AgentMessageUpsertBulk) SetKind(v agentmessage.Kind) *AgentMessageUpsertBulk {
	return u.Update(func(s *AgentMessageUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *AgentMessageUpsertBulk) UpdateKind() *AgentMessageUpsertBulk {
	return u.Update(func(s *AgentMessageUpsert) {
		s.UpdateKind()
	})
}

// SetContent sets the "content" field.
func (u *AgentMessageUpsertBulk) SetContent(v string) *AgentMessageUpsertBulk {
	return u.Update(func(s *AgentMessageUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *AgentMessageUpsertBulk) UpdateContent() *AgentMessageUpsertBulk {
	return u.Update(func(s *AgentMessageUpsert) {
		s.UpdateContent()
	})
}

// SetMessageMetadata sets the "message_metadata" field.
func (u *AgentMessageUpsertBulk) SetMessageMetadata(v map[string]interface{}) *AgentMessageUpsertBulk {
	return u.Update(func(s *AgentMessageUpsert) {
		s.SetMessageMetadata(v)
	})
}

// UpdateMessageMetadata sets the "message_metadata" field to the value that was provided on create.
func (u *AgentMessageUpsertBulk) UpdateMessageMetadata() *AgentMessageUpsertBulk {
	return u.Update(func(s *AgentMessageUpsert) {
		s.UpdateMessageMetadata()
	})
}

// ClearMessageMetadata clears the value of the "message_metadata" field.
func (u *AgentMessageUpsertBulk) ClearMessageMetadata() *AgentMessageUpsertBulk {
	return u.Update(func(s *AgentMessageUpsert) {
		s.ClearMessageMetadata()
	})
}

// Exec executes the query.
func (u *AgentMessageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentMessageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentMessageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentMessageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
