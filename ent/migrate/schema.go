// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentMessagesColumns holds the columns for the "agent_messages" table.
	AgentMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "sequence_number", Type: field.TypeInt},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"plan", "progress", "result", "clarification", "error"}, Default: "progress"},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "message_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "plan_id", Type: field.TypeString},
	}
	// AgentMessagesTable holds the schema information for the "agent_messages" table.
	AgentMessagesTable = &schema.Table{
		Name:       "agent_messages",
		Columns:    AgentMessagesColumns,
		PrimaryKey: []*schema.Column{AgentMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_messages_plans_messages",
				Columns:    []*schema.Column{AgentMessagesColumns[7]},
				RefColumns: []*schema.Column{PlansColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentmessage_plan_id_sequence_number",
				Unique:  true,
				Columns: []*schema.Column{AgentMessagesColumns[7], AgentMessagesColumns[2]},
			},
			{
				Name:    "agentmessage_plan_id_agent_name",
				Unique:  false,
				Columns: []*schema.Column{AgentMessagesColumns[7], AgentMessagesColumns[1]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "plan_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_plans_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{PlansColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_plan_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
		},
	}
	// ExtractionsColumns holds the columns for the "extractions" table.
	ExtractionsColumns = []*schema.Column{
		{Name: "extraction_id", Type: field.TypeString, Unique: true},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "fields", Type: field.TypeJSON},
		{Name: "edited_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected"}, Default: "pending"},
		{Name: "feedback", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "plan_id", Type: field.TypeString},
	}
	// ExtractionsTable holds the schema information for the "extractions" table.
	ExtractionsTable = &schema.Table{
		Name:       "extractions",
		Columns:    ExtractionsColumns,
		PrimaryKey: []*schema.Column{ExtractionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extractions_plans_extractions",
				Columns:    []*schema.Column{ExtractionsColumns[8]},
				RefColumns: []*schema.Column{PlansColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extraction_plan_id_status",
				Unique:  false,
				Columns: []*schema.Column{ExtractionsColumns[8], ExtractionsColumns[4]},
			},
		},
	}
	// PlansColumns holds the columns for the "plans" table.
	PlansColumns = []*schema.Column{
		{Name: "plan_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "task_description", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "pending_approval", "in_progress", "completed", "failed", "rejected", "restarted"}, Default: "pending"},
		{Name: "agent_sequence", Type: field.TypeJSON, Nullable: true},
		{Name: "graph_type", Type: field.TypeString, Nullable: true},
		{Name: "graph_id", Type: field.TypeString, Nullable: true},
		{Name: "require_approval", Type: field.TypeBool, Default: true},
		{Name: "current_step", Type: field.TypeInt, Default: 0},
		{Name: "plan_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "complexity", Type: field.TypeFloat64, Nullable: true},
		{Name: "plan_source", Type: field.TypeString, Nullable: true},
		{Name: "final_result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "human_feedback", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "restarted_from", Type: field.TypeString, Nullable: true},
		{Name: "plan_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// PlansTable holds the schema information for the "plans" table.
	PlansTable = &schema.Table{
		Name:       "plans",
		Columns:    PlansColumns,
		PrimaryKey: []*schema.Column{PlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "plan_status",
				Unique:  false,
				Columns: []*schema.Column{PlansColumns[3]},
			},
			{
				Name:    "plan_session_id",
				Unique:  false,
				Columns: []*schema.Column{PlansColumns[1]},
			},
			{
				Name:    "plan_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{PlansColumns[1], PlansColumns[17]},
			},
			{
				Name:    "plan_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{PlansColumns[3], PlansColumns[17]},
			},
			{
				Name:    "plan_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{PlansColumns[20]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// PlanStepsColumns holds the columns for the "plan_steps" table.
	PlanStepsColumns = []*schema.Column{
		{Name: "step_id", Type: field.TypeString, Unique: true},
		{Name: "step_index", Type: field.TypeInt},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "interrupt_before", Type: field.TypeBool, Default: false},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "skipped"}, Default: "pending"},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "plan_id", Type: field.TypeString},
	}
	// PlanStepsTable holds the schema information for the "plan_steps" table.
	PlanStepsTable = &schema.Table{
		Name:       "plan_steps",
		Columns:    PlanStepsColumns,
		PrimaryKey: []*schema.Column{PlanStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "plan_steps_plans_steps",
				Columns:    []*schema.Column{PlanStepsColumns[12]},
				RefColumns: []*schema.Column{PlansColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "planstep_plan_id_step_index",
				Unique:  true,
				Columns: []*schema.Column{PlanStepsColumns[12], PlanStepsColumns[1]},
			},
			{
				Name:    "planstep_plan_id_status",
				Unique:  false,
				Columns: []*schema.Column{PlanStepsColumns[12], PlanStepsColumns[4]},
			},
		},
	}
	// TeamsColumns holds the columns for the "teams" table.
	TeamsColumns = []*schema.Column{
		{Name: "team_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "agents", Type: field.TypeJSON},
		{Name: "team_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TeamsTable holds the schema information for the "teams" table.
	TeamsTable = &schema.Table{
		Name:       "teams",
		Columns:    TeamsColumns,
		PrimaryKey: []*schema.Column{TeamsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "team_created_at",
				Unique:  false,
				Columns: []*schema.Column{TeamsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentMessagesTable,
		EventsTable,
		ExtractionsTable,
		PlansTable,
		PlanStepsTable,
		TeamsTable,
	}
)

func init() {
	AgentMessagesTable.ForeignKeys[0].RefTable = PlansTable
	EventsTable.ForeignKeys[0].RefTable = PlansTable
	ExtractionsTable.ForeignKeys[0].RefTable = PlansTable
	PlanStepsTable.ForeignKeys[0].RefTable = PlansTable
}
