package topology

import (
	"errors"
	"math/rand"
	"sync"
)

var ErrNoServices = errors.New("topology has no service nodes")

type (
	Repository interface {
		GetGraph() (Graph, error)
	}

	Service struct {
		repo Repository

		mu       sync.RWMutex
		failedID string

		pick func(n int) int // mockable random pick
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo, pick: rand.Intn}
}

// Graph returns the topology with the current failure overlay applied: the
// failed node reads down, its direct neighbors (either direction) read
// degraded. The baseline graph itself is never mutated.
func (svc *Service) Graph() (Graph, error) {
	g, err := svc.repo.GetGraph()
	if err != nil {
		return Graph{}, err
	}

	svc.mu.RLock()
	failedID := svc.failedID
	svc.mu.RUnlock()
	if failedID == "" {
		return g, nil
	}

	neighbors := make(map[string]bool)
	for _, conn := range g.Connections {
		if conn.Source == failedID {
			neighbors[conn.Target] = true
		}
		if conn.Target == failedID {
			neighbors[conn.Source] = true
		}
	}
	for i, node := range g.Nodes {
		switch {
		case node.ID == failedID:
			g.Nodes[i].Status = StatusDown
		case neighbors[node.ID]:
			g.Nodes[i].Status = StatusDegraded
		}
	}
	return g, nil
}

// SimulateFailure takes a random service node down. The pick is cosmetic;
// no failure is injected into anything real.
func (svc *Service) SimulateFailure() (Graph, error) {
	g, err := svc.repo.GetGraph()
	if err != nil {
		return Graph{}, err
	}

	services := make([]Node, 0, len(g.Nodes))
	for _, node := range g.Nodes {
		if node.Type == TypeService {
			services = append(services, node)
		}
	}
	if len(services) == 0 {
		return Graph{}, ErrNoServices
	}

	svc.mu.Lock()
	svc.failedID = services[svc.pick(len(services))].ID
	svc.mu.Unlock()
	return svc.Graph()
}

// ClearFailure restores the all-healthy baseline.
func (svc *Service) ClearFailure() (Graph, error) {
	svc.mu.Lock()
	svc.failedID = ""
	svc.mu.Unlock()
	return svc.Graph()
}

// Counts tallies nodes by status, failure overlay included.
func (svc *Service) Counts() (StatusCounts, error) {
	g, err := svc.Graph()
	if err != nil {
		return StatusCounts{}, err
	}
	var counts StatusCounts
	for _, node := range g.Nodes {
		switch node.Status {
		case StatusHealthy:
			counts.Healthy++
		case StatusDegraded:
			counts.Degraded++
		case StatusDown:
			counts.Down++
		}
	}
	return counts, nil
}
