package planner

import "strings"

// sequenceTemplate is one deterministic fallback plan. Templates are matched
// in table order; the first template with any keyword hit wins.
type sequenceTemplate struct {
	name       string
	keywords   []string
	sequence   []string
	summary    string
	complexity float64
}

var templates = []sequenceTemplate{
	{
		name:       "invoice_verification",
		keywords:   []string{"invoice", "billing", "receivable"},
		sequence:   []string{PlannerAgent, "invoice", "analysis"},
		summary:    "Invoice verification",
		complexity: 0.4,
	},
	{
		name:       "payment_tracking",
		keywords:   []string{"payment", "overdue", "tracking"},
		sequence:   []string{PlannerAgent, "invoice", "gmail", "analysis"},
		summary:    "Payment tracking",
		complexity: 0.6,
	},
	{
		name:       "customer_360",
		keywords:   []string{"customer", "crm", "360", "account"},
		sequence:   []string{PlannerAgent, "salesforce", "gmail", "analysis"},
		summary:    "Customer 360 review",
		complexity: 0.6,
	},
	{
		name:       "mailbox_review",
		keywords:   []string{"email", "inbox", "message"},
		sequence:   []string{PlannerAgent, "gmail", "analysis"},
		summary:    "Mailbox review",
		complexity: 0.3,
	},
}

// matchTemplate returns the first template with a keyword hit in the task.
func matchTemplate(task string) (*sequenceTemplate, bool) {
	lowered := strings.ToLower(task)
	for i := range templates {
		for _, kw := range templates[i].keywords {
			if strings.Contains(lowered, kw) {
				return &templates[i], true
			}
		}
	}
	return nil, false
}

// defaultSequence is the minimum viable plan when nothing else matches.
func defaultSequence() []string {
	return []string{PlannerAgent, "analysis"}
}
