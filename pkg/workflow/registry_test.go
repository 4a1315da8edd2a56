package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAgent struct {
	name      string
	healthErr error
}

func (a *fakeAgent) Name() string { return a.name }

func (a *fakeAgent) Describe() Metadata {
	return Metadata{Name: a.name, Type: "test", Description: "fake agent"}
}

func (a *fakeAgent) Execute(_ context.Context, _ *State) (*StepOutcome, error) {
	return &StepOutcome{Status: StepCompleted}, nil
}

type checkableAgent struct {
	fakeAgent
}

func (a *checkableAgent) HealthCheck(_ context.Context) error { return a.healthErr }

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeAgent{name: "invoice"}))

	a, ok := r.Get("invoice")
	require.True(t, ok)
	assert.Equal(t, "invoice", a.Name())

	_, ok = r.Get("unknown")
	assert.False(t, ok)
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeAgent{name: "invoice"}))

	err := r.Register(&fakeAgent{name: "invoice"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAgentExists))
}

func TestRegistryRejectsEmptyName(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register(&fakeAgent{name: ""}))
}

func TestRegistryNamesSorted(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"salesforce", "analysis", "gmail"} {
		require.NoError(t, r.Register(&fakeAgent{name: name}))
	}

	assert.Equal(t, []string{"analysis", "gmail", "salesforce"}, r.Names())
	assert.Equal(t, 3, r.Len())
}

func TestRegistryHealthy(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeAgent{name: "plain"}))
	require.NoError(t, r.Register(&checkableAgent{fakeAgent{name: "ok"}}))
	failing := &checkableAgent{fakeAgent{name: "down"}}
	failing.healthErr = errors.New("gateway unreachable")
	require.NoError(t, r.Register(failing))

	health := r.Healthy(context.Background())

	// Agents without a health check are not reported.
	assert.NotContains(t, health, "plain")
	assert.NoError(t, health["ok"])
	assert.Error(t, health["down"])
}
