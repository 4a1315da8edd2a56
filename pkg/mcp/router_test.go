package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitToolName(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantService string
		wantTool    string
		wantErr     bool
	}{
		{name: "valid", input: "invoice.list_invoices", wantService: "invoice", wantTool: "list_invoices"},
		{name: "valid with hyphens", input: "crm-gateway.get-record", wantService: "crm-gateway", wantTool: "get-record"},
		{name: "missing dot", input: "list_invoices", wantErr: true},
		{name: "too many dots", input: "a.b.c", wantErr: true},
		{name: "empty service", input: ".tool", wantErr: true},
		{name: "empty tool", input: "service.", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "leading hyphen", input: "-svc.tool", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, tool, err := SplitToolName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid tool name")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantService, service)
			assert.Equal(t, tt.wantTool, tool)
		})
	}
}
