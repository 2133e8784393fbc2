package topology

// Node statuses. Purely illustrative: nothing performs real health checks.
const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
	StatusDown     = "down"
)

// Node types
const (
	TypeService  = "service"
	TypeDatabase = "database"
	TypeQueue    = "queue"
	TypeGateway  = "gateway"
	TypeClient   = "client"
)

type (
	Node struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Status      string `json:"status"`
		Type        string `json:"type"`
	}

	// Connection is a directed source -> target edge.
	Connection struct {
		Source string `json:"source"`
		Target string `json:"target"`
		Label  string `json:"label,omitempty"`
	}

	Graph struct {
		Nodes       []Node       `json:"nodes"`
		Connections []Connection `json:"connections"`
	}

	StatusCounts struct {
		Healthy  int `json:"healthy"`
		Degraded int `json:"degraded"`
		Down     int `json:"down"`
	}
)
