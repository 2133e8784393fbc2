package inmemdb

import "github.com/ylearn/ylearn/core/topology"

type topologyRepository struct {
	db *DB
}

var _ topology.Repository = (*topologyRepository)(nil)

func NewTopologyRepository(db *DB) topology.Repository {
	return &topologyRepository{db: db}
}

// GetGraph returns a copy so callers can overlay statuses without touching
// the baseline.
func (repo *topologyRepository) GetGraph() (topology.Graph, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	g := topology.Graph{
		Nodes:       make([]topology.Node, len(repo.db.graph.Nodes)),
		Connections: make([]topology.Connection, len(repo.db.graph.Connections)),
	}
	copy(g.Nodes, repo.db.graph.Nodes)
	copy(g.Connections, repo.db.graph.Connections)
	return g, nil
}
