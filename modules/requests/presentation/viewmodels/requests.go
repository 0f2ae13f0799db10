package viewmodels

// Request is the API-facing shape of a service request, with the display
// states the UI binds indicator colors to.
type Request struct {
	ID            string `json:"id"`
	Category      string `json:"category"`
	Priority      string `json:"priority"`
	Status        string `json:"status"`
	Description   string `json:"description"`
	CreatedOn     string `json:"createdOn"`
	PriorityState string `json:"priorityState"`
	PriorityIcon  string `json:"priorityIcon"`
	StatusState   string `json:"statusState"`
	CategoryState string `json:"categoryState"`
}

type RequestListPage struct {
	Items         []*Request `json:"items"`
	ItemCountText string     `json:"itemCountText"`
}
