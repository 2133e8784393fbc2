package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct{}

func (fakeRepository) GetGraph() (Graph, error) {
	return Graph{
		Nodes: []Node{
			{ID: "client", Status: StatusHealthy, Type: TypeClient},
			{ID: "gateway", Status: StatusHealthy, Type: TypeGateway},
			{ID: "svc-a", Status: StatusHealthy, Type: TypeService},
			{ID: "svc-b", Status: StatusHealthy, Type: TypeService},
			{ID: "db-a", Status: StatusHealthy, Type: TypeDatabase},
			{ID: "queue", Status: StatusHealthy, Type: TypeQueue},
		},
		Connections: []Connection{
			{Source: "client", Target: "gateway"},
			{Source: "gateway", Target: "svc-a"},
			{Source: "gateway", Target: "svc-b"},
			{Source: "svc-a", Target: "db-a"},
			{Source: "svc-a", Target: "queue"},
		},
	}, nil
}

func statusByID(g Graph) map[string]string {
	out := make(map[string]string, len(g.Nodes))
	for _, n := range g.Nodes {
		out[n.ID] = n.Status
	}
	return out
}

func TestService_SimulateFailure(t *testing.T) {
	svc := NewService(fakeRepository{})
	svc.pick = func(n int) int { return 0 } // always svc-a

	g, err := svc.SimulateFailure()
	require.NoError(t, err)

	statuses := statusByID(g)
	assert.Equal(t, StatusDown, statuses["svc-a"])
	// direct neighbors degrade, in either direction
	assert.Equal(t, StatusDegraded, statuses["gateway"])
	assert.Equal(t, StatusDegraded, statuses["db-a"])
	assert.Equal(t, StatusDegraded, statuses["queue"])
	// everything else stays healthy
	assert.Equal(t, StatusHealthy, statuses["client"])
	assert.Equal(t, StatusHealthy, statuses["svc-b"])
}

func TestService_SimulateFailure_picksOnlyServices(t *testing.T) {
	svc := NewService(fakeRepository{})

	for i := 0; i < 20; i++ {
		g, err := svc.SimulateFailure()
		require.NoError(t, err)
		for _, n := range g.Nodes {
			if n.Status == StatusDown {
				assert.Equal(t, TypeService, n.Type)
			}
		}
	}
}

func TestService_ClearFailure(t *testing.T) {
	svc := NewService(fakeRepository{})
	svc.pick = func(n int) int { return 1 } // svc-b

	_, err := svc.SimulateFailure()
	require.NoError(t, err)

	g, err := svc.ClearFailure()
	require.NoError(t, err)
	for _, n := range g.Nodes {
		assert.Equal(t, StatusHealthy, n.Status)
	}
}

func TestService_Graph_noFailureIsBaseline(t *testing.T) {
	svc := NewService(fakeRepository{})

	g, err := svc.Graph()
	require.NoError(t, err)
	for _, n := range g.Nodes {
		assert.Equal(t, StatusHealthy, n.Status)
	}
}

func TestService_Counts(t *testing.T) {
	svc := NewService(fakeRepository{})

	counts, err := svc.Counts()
	require.NoError(t, err)
	assert.Equal(t, StatusCounts{Healthy: 6}, counts)

	svc.pick = func(n int) int { return 0 } // svc-a: 3 neighbors degrade
	_, err = svc.SimulateFailure()
	require.NoError(t, err)

	counts, err = svc.Counts()
	require.NoError(t, err)
	assert.Equal(t, StatusCounts{Healthy: 2, Degraded: 3, Down: 1}, counts)
}

type emptyRepository struct{}

func (emptyRepository) GetGraph() (Graph, error) {
	return Graph{Nodes: []Node{{ID: "client", Type: TypeClient}}}, nil
}

func TestService_SimulateFailure_noServices(t *testing.T) {
	svc := NewService(emptyRepository{})

	_, err := svc.SimulateFailure()
	assert.Equal(t, ErrNoServices, err)
}
