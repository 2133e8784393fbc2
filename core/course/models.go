package course

import "github.com/ylearn/ylearn/core"

// Course is a catalog entry. Courses are immutable once seeded; there is
// no lifecycle beyond the static listing.
type Course struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Instructor  string `json:"instructor"`
	Term        string `json:"term"`
	Credits     int    `json:"credits"`
	Image       string `json:"image"`
}

type QueryFilter struct {
	Search string `query:"search"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == ""
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}
