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
	"github.com/finovant/macaw/ent/extraction"
	"github.com/finovant/macaw/ent/plan"
)

// ExtractionCreate is the builder for creating a Extraction entity.
type ExtractionCreate struct {
	config
	mutation *ExtractionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPlanID sets the "plan_id" field.
func (_c *ExtractionCreate) SetPlanID(v string) *ExtractionCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *ExtractionCreate) SetAgentName(v string) *ExtractionCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetFields sets the "fields" field.
func (_c *ExtractionCreate) SetFields(v map[string]interface{}) *ExtractionCreate {
	_c.mutation.SetFields(v)
	return _c
}

// SetEditedFields sets the "edited_fields" field.
func (_c *ExtractionCreate) SetEditedFields(v map[string]interface{}) *ExtractionCreate {
	_c.mutation.SetEditedFields(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExtractionCreate) SetStatus(v extraction.Status) *ExtractionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableStatus(v *extraction.Status) *ExtractionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *ExtractionCreate) SetFeedback(v string) *ExtractionCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableFeedback(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetFeedback(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionCreate) SetCreatedAt(v time.Time) *ExtractionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableCreatedAt(v *time.Time) *ExtractionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetReviewedAt sets the "reviewed_at" field.
func (_c *ExtractionCreate) SetReviewedAt(v time.Time) *ExtractionCreate {
	_c.mutation.SetReviewedAt(v)
	return _c
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableReviewedAt(v *time.Time) *ExtractionCreate {
	if v != nil {
		_c.SetReviewedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionCreate) SetID(v string) *ExtractionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetPlan sets the "plan" edge to the Plan entity.
func (_c *ExtractionCreate) SetPlan(v *Plan) *ExtractionCreate {
	return _c.SetPlanID(v.ID)
}

// Mutation returns the ExtractionMutation object of the builder.
func (_c *ExtractionCreate) Mutation() *ExtractionMutation {
	return _c.mutation
}

// Save creates the Extraction in the database.
func (_c *ExtractionCreate) Save(ctx context.Context) (*Extraction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionCreate) SaveX(ctx context.Context) *Extraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := extraction.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extraction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionCreate) check() error {
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "Extraction.plan_id"`)}
	}
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "Extraction.agent_name"`)}
	}
	if _, ok := _c.mutation.GetFields(); !ok {
		return &ValidationError{Name: "fields", err: errors.New(`ent: missing required field "Extraction.fields"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Extraction.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := extraction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Extraction.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Extraction.created_at"`)}
	}
	if len(_c.mutation.PlanIDs()) == 0 {
		return &ValidationError{Name: "plan", err: errors.New(`ent: missing required edge "Extraction.plan"`)}
	}
	return nil
}

func (_c *ExtractionCreate) sqlSave(ctx context.Context) (*Extraction, error) {
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
			return nil, fmt.Errorf("unexpected Extraction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractionCreate) createSpec() (*Extraction, *sqlgraph.CreateSpec) {
	var (
		_node = &Extraction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extraction.Table, sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(extraction.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.GetFields(); ok {
		_spec.SetField(extraction.FieldFields, field.TypeJSON, value)
		_node.Fields = value
	}
	if value, ok := _c.mutation.EditedFields(); ok {
		_spec.SetField(extraction.FieldEditedFields, field.TypeJSON, value)
		_node.EditedFields = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(extraction.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(extraction.FieldFeedback, field.TypeString, value)
		_node.Feedback = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extraction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ReviewedAt(); ok {
		_spec.SetField(extraction.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = &value
	}
	if nodes := _c.mutation.PlanIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extraction.PlanTable,
			Columns: []string{extraction.PlanColumn},
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
//	client.Extraction.Create().
//		SetPlanID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractionUpsert) {
//			SetPlanID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractionCreate) OnConflict(opts ...sql.ConflictOption) *ExtractionUpsertOne {
	_c.conflict = opts
	return &ExtractionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Extraction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractionCreate) OnConflictColumns(columns ...string) *ExtractionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractionUpsertOne{
		create: _c,
	}
}

type (
	// ExtractionUpsertOne is the builder for "upsert"-ing
	//  one Extraction node.
	ExtractionUpsertOne struct {
		create *ExtractionCreate
	}

	// ExtractionUpsert is the "OnConflict" setter.
	ExtractionUpsert struct {
		*sql.UpdateSet
	}
)

// SetFields sets the "fields" field.
func (u *ExtractionUpsert) SetFields(v map[string]interface{}) *ExtractionUpsert {
	u.Set(extraction.FieldFields, v)
	return u
}

// UpdateFields sets the "fields" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateFields() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldFields)
	return u
}

// SetEditedFields sets the "edited_fields" field.
func (u *ExtractionUpsert) SetEditedFields(v map[string]interface{}) *ExtractionUpsert {
	u.Set(extraction.FieldEditedFields, v)
	return u
}

// UpdateEditedFields sets the "edited_fields" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateEditedFields() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldEditedFields)
	return u
}

// ClearEditedFields clears the value of the "edited_fields" field.
func (u *ExtractionUpsert) ClearEditedFields() *ExtractionUpsert {
	u.SetNull(extraction.FieldEditedFields)
	return u
}

// SetStatus sets the "status" field.
func (u *ExtractionUpsert) SetStatus(v extraction.Status) *ExtractionUpsert {
	u.Set(extraction.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateStatus() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldStatus)
	return u
}

// SetFeedback sets the "feedback" field.
func (u *ExtractionUpsert) SetFeedback(v string) *ExtractionUpsert {
	u.Set(extraction.FieldFeedback, v)
	return u
}

// UpdateFeedback sets the "feedback" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateFeedback() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldFeedback)
	return u
}

// ClearFeedback clears the value of the "feedback" field.
func (u *ExtractionUpsert) ClearFeedback() *ExtractionUpsert {
	u.SetNull(extraction.FieldFeedback)
	return u
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *ExtractionUpsert) SetReviewedAt(v time.Time) *ExtractionUpsert {
	u.Set(extraction.FieldReviewedAt, v)
	return u
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateReviewedAt() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldReviewedAt)
	return u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *ExtractionUpsert) ClearReviewedAt() *ExtractionUpsert {
	u.SetNull(extraction.FieldReviewedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Extraction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(extraction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExtractionUpsertOne) UpdateNewValues() *ExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(extraction.FieldID)
		}
		if _, exists := u.create.mutation.PlanID(); exists {
			s.SetIgnore(extraction.FieldPlanID)
		}
		if _, exists := u.create.mutation.AgentName(); exists {
			s.SetIgnore(extraction.FieldAgentName)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(extraction.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Extraction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExtractionUpsertOne) Ignore() *ExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractionUpsertOne) DoNothing() *ExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractionCreate.OnConflict
// documentation for more info.
func (u *ExtractionUpsertOne) Update(set func(*ExtractionUpsert)) *ExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractionUpsert{UpdateSet: update})
	}))
	return u
}

// SetFields sets the "fields" field.
func (u *ExtractionUpsertOne) SetFields(v map[string]interface{}) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetFields(v)
	})
}

// UpdateFields sets the "fields" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateFields() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateFields()
	})
}

// SetEditedFields sets the "edited_fields" field.
func (u *ExtractionUpsertOne) SetEditedFields(v map[string]interface{}) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetEditedFields(v)
	})
}

// UpdateEditedFields sets the "edited_fields" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateEditedFields() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateEditedFields()
	})
}

// ClearEditedFields clears the value of the "edited_fields" field.
func (u *ExtractionUpsertOne) ClearEditedFields() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearEditedFields()
	})
}

// SetStatus sets the "status" field.
func (u *ExtractionUpsertOne) SetStatus(v extraction.Status) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateStatus() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateStatus()
	})
}

// SetFeedback sets the "feedback" field.
func (u *ExtractionUpsertOne) SetFeedback(v string) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetFeedback(v)
	})
}

// UpdateFeedback sets the "feedback" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateFeedback() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateFeedback()
	})
}

// ClearFeedback clears the value of the "feedback" field.
func (u *ExtractionUpsertOne) ClearFeedback() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearFeedback()
	})
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *ExtractionUpsertOne) SetReviewedAt(v time.Time) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetReviewedAt(v)
	})
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateReviewedAt() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateReviewedAt()
	})
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *ExtractionUpsertOne) ClearReviewedAt() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearReviewedAt()
	})
}

// Exec executes the query.
func (u *ExtractionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExtractionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ExtractionUpsertOne.ID is not supported by MySQL driver. Use ExtractionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExtractionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExtractionCreateBulk is the builder for creating many Extraction entities in bulk.
type ExtractionCreateBulk struct {
	config
	err      error
	builders []*ExtractionCreate
	conflict []sql.ConflictOption
}

// Save creates the Extraction entities in the database.
func (_c *ExtractionCreateBulk) Save(ctx context.Context) ([]*Extraction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Extraction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionMutation)
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
func (_c *ExtractionCreateBulk) SaveX(ctx context.Context) []*Extraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Extraction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractionUpsert) {
//			SetPlanID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExtractionUpsertBulk {
	_c.conflict = opts
	return &ExtractionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Extraction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractionCreateBulk) OnConflictColumns(columns ...string) *ExtractionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractionUpsertBulk{
		create: _c,
	}
}

// ExtractionUpsertBulk is the builder for "upsert"-ing
// a bulk of Extraction nodes.
type ExtractionUpsertBulk struct {
	create *ExtractionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Extraction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(extraction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExtractionUpsertBulk) UpdateNewValues() *ExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(extraction.FieldID)
			}
			if _, exists := b.mutation.PlanID(); exists {
				s.SetIgnore(extraction.FieldPlanID)
			}
			if _, exists := b.mutation.AgentName(); exists {
				s.SetIgnore(extraction.FieldAgentName)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(extraction.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Extraction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExtractionUpsertBulk) Ignore() *ExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractionUpsertBulk) DoNothing() *ExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractionCreateBulk.OnConflict
// documentation for more info.
func (u *ExtractionUpsertBulk) Update(set func(*ExtractionUpsert)) *ExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractionUpsert{UpdateSet: update})
	}))
	return u
}

// SetFields sets the "fields" field.
func (u *ExtractionUpsertBulk) SetFields(v map[string]interface{}) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetFields(v)
	})
}

// UpdateFields sets the "fields" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateFields() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateFields()
	})
}

// SetEditedFields sets the "edited_fields" field.
func (u *ExtractionUpsertBulk) SetEditedFields(v map[string]interface{}) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetEditedFields(v)
	})
}

// UpdateEditedFields sets the "edited_fields" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateEditedFields() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateEditedFields()
	})
}

// ClearEditedFields clears the value of the "edited_fields" field.
func (u *ExtractionUpsertBulk) ClearEditedFields() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearEditedFields()
	})
}

// SetStatus sets the "status" field.
func (u *ExtractionUpsertBulk) SetStatus(v extraction.Status) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateStatus() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateStatus()
	})
}

// SetFeedback sets the "feedback" field.
func (u *ExtractionUpsertBulk) SetFeedback(v string) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetFeedback(v)
	})
}

// UpdateFeedback sets the "feedback" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateFeedback() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateFeedback()
	})
}

// ClearFeedback clears the value of the "feedback" field.
func (u *ExtractionUpsertBulk) ClearFeedback() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearFeedback()
	})
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *ExtractionUpsertBulk) SetReviewedAt(v time.Time) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetReviewedAt(v)
	})
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateReviewedAt() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateReviewedAt()
	})
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *ExtractionUpsertBulk) ClearReviewedAt() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearReviewedAt()
	})
}

// Exec executes the query.
func (u *ExtractionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExtractionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
