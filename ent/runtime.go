// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/finovant/macaw/ent/agentmessage"
	"github.com/finovant/macaw/ent/event"
	"github.com/finovant/macaw/ent/extraction"
	"github.com/finovant/macaw/ent/plan"
	"github.com/finovant/macaw/ent/planstep"
	"github.com/finovant/macaw/ent/schema"
	"github.com/finovant/macaw/ent/team"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentmessageFields := schema.AgentMessage{}.Fields()
	_ = agentmessageFields
	// agentmessageDescCreatedAt is the schema descriptor for created_at field.
	agentmessageDescCreatedAt := agentmessageFields[7].Descriptor()
	// agentmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentmessage.DefaultCreatedAt = agentmessageDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	extractionFields := schema.Extraction{}.Fields()
	_ = extractionFields
	// extractionDescCreatedAt is the schema descriptor for created_at field.
	extractionDescCreatedAt := extractionFields[7].Descriptor()
	// extraction.DefaultCreatedAt holds the default value on creation for the created_at field.
	extraction.DefaultCreatedAt = extractionDescCreatedAt.Default.(func() time.Time)
	planFields := schema.Plan{}.Fields()
	_ = planFields
	// planDescRequireApproval is the schema descriptor for require_approval field.
	planDescRequireApproval := planFields[7].Descriptor()
	// plan.DefaultRequireApproval holds the default value on creation for the require_approval field.
	plan.DefaultRequireApproval = planDescRequireApproval.Default.(bool)
	// planDescCurrentStep is the schema descriptor for current_step field.
	planDescCurrentStep := planFields[8].Descriptor()
	// plan.DefaultCurrentStep holds the default value on creation for the current_step field.
	plan.DefaultCurrentStep = planDescCurrentStep.Default.(int)
	// planDescCreatedAt is the schema descriptor for created_at field.
	planDescCreatedAt := planFields[17].Descriptor()
	// plan.DefaultCreatedAt holds the default value on creation for the created_at field.
	plan.DefaultCreatedAt = planDescCreatedAt.Default.(func() time.Time)
	planstepFields := schema.PlanStep{}.Fields()
	_ = planstepFields
	// planstepDescInterruptBefore is the schema descriptor for interrupt_before field.
	planstepDescInterruptBefore := planstepFields[4].Descriptor()
	// planstep.DefaultInterruptBefore holds the default value on creation for the interrupt_before field.
	planstep.DefaultInterruptBefore = planstepDescInterruptBefore.Default.(bool)
	// planstepDescCreatedAt is the schema descriptor for created_at field.
	planstepDescCreatedAt := planstepFields[12].Descriptor()
	// planstep.DefaultCreatedAt holds the default value on creation for the created_at field.
	planstep.DefaultCreatedAt = planstepDescCreatedAt.Default.(func() time.Time)
	teamFields := schema.Team{}.Fields()
	_ = teamFields
	// teamDescCreatedAt is the schema descriptor for created_at field.
	teamDescCreatedAt := teamFields[5].Descriptor()
	// team.DefaultCreatedAt holds the default value on creation for the created_at field.
	team.DefaultCreatedAt = teamDescCreatedAt.Default.(func() time.Time)
	// teamDescUpdatedAt is the schema descriptor for updated_at field.
	teamDescUpdatedAt := teamFields[6].Descriptor()
	// team.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	team.DefaultUpdatedAt = teamDescUpdatedAt.Default.(func() time.Time)
	// team.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	team.UpdateDefaultUpdatedAt = teamDescUpdatedAt.UpdateDefault.(func() time.Time)
}
