package mappers

import (
	"fmt"

	"github.com/iota-uz/servicedesk/modules/requests/domain/aggregates/request"
	"github.com/iota-uz/servicedesk/modules/requests/presentation/viewmodels"
)

func RequestToViewModel(r request.Request) *viewmodels.Request {
	return &viewmodels.Request{
		ID:            r.ID(),
		Category:      r.Category(),
		Priority:      string(r.Priority()),
		Status:        string(r.Status()),
		Description:   r.Description(),
		CreatedOn:     r.CreatedOn(),
		PriorityState: PriorityState(r.Priority()),
		PriorityIcon:  PriorityIcon(r.Priority()),
		StatusState:   StatusState(r.Status()),
		CategoryState: CategoryState(r.Category()),
	}
}

func RequestsToListPage(items []request.Request) *viewmodels.RequestListPage {
	out := make([]*viewmodels.Request, 0, len(items))
	for _, r := range items {
		out = append(out, RequestToViewModel(r))
	}
	return &viewmodels.RequestListPage{
		Items:         out,
		ItemCountText: ItemCountText(len(items)),
	}
}

// PriorityState maps a priority to the semantic color state the list
// indicator uses. Unknown priorities render without highlighting.
func PriorityState(p request.Priority) string {
	switch p {
	case request.PriorityCritical, request.PriorityHigh:
		return "Error"
	case request.PriorityMedium:
		return "Warning"
	case request.PriorityLow:
		return "Success"
	default:
		return "None"
	}
}

func PriorityIcon(p request.Priority) string {
	switch p {
	case request.PriorityCritical:
		return "alert"
	case request.PriorityHigh:
		return "warning"
	case request.PriorityMedium:
		return "message-information"
	case request.PriorityLow:
		return "information"
	default:
		return "question-mark"
	}
}

func StatusState(s request.Status) string {
	switch s {
	case request.StatusOpen:
		return "Warning"
	case request.StatusInProgress:
		return "Information"
	case request.StatusClosed:
		return "Success"
	default:
		return "None"
	}
}

func CategoryState(category string) string {
	switch category {
	case "Hardware":
		return "Error"
	case "Software":
		return "Information"
	case "Access":
		return "Warning"
	case "Network":
		return "Success"
	default:
		return "None"
	}
}

func ItemCountText(count int) string {
	switch count {
	case 0:
		return "No requests"
	case 1:
		return "1 request"
	default:
		return fmt.Sprintf("%d requests", count)
	}
}
