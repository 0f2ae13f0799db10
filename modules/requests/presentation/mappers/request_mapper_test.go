package mappers_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iota-uz/servicedesk/modules/requests/domain/aggregates/request"
	"github.com/iota-uz/servicedesk/modules/requests/presentation/mappers"
)

func TestPriorityState(t *testing.T) {
	require.Equal(t, "Error", mappers.PriorityState(request.PriorityCritical))
	require.Equal(t, "Error", mappers.PriorityState(request.PriorityHigh))
	require.Equal(t, "Warning", mappers.PriorityState(request.PriorityMedium))
	require.Equal(t, "Success", mappers.PriorityState(request.PriorityLow))
	require.Equal(t, "None", mappers.PriorityState("Urgent"))
}

func TestStatusState(t *testing.T) {
	require.Equal(t, "Warning", mappers.StatusState(request.StatusOpen))
	require.Equal(t, "Information", mappers.StatusState(request.StatusInProgress))
	require.Equal(t, "Success", mappers.StatusState(request.StatusClosed))
	require.Equal(t, "None", mappers.StatusState("Escalated"))
}

func TestCategoryState(t *testing.T) {
	require.Equal(t, "Error", mappers.CategoryState("Hardware"))
	require.Equal(t, "Information", mappers.CategoryState("Software"))
	require.Equal(t, "Warning", mappers.CategoryState("Access"))
	require.Equal(t, "Success", mappers.CategoryState("Network"))
	require.Equal(t, "None", mappers.CategoryState("Facilities"))
}

func TestItemCountText(t *testing.T) {
	require.Equal(t, "No requests", mappers.ItemCountText(0))
	require.Equal(t, "1 request", mappers.ItemCountText(1))
	require.Equal(t, "12 requests", mappers.ItemCountText(12))
}

func TestRequestToViewModel(t *testing.T) {
	r := request.Hydrate("REQ-1", "Network", request.PriorityHigh, request.StatusInProgress, "VPN drops", "2026-01-20")
	vm := mappers.RequestToViewModel(r)

	require.Equal(t, "REQ-1", vm.ID)
	require.Equal(t, "High", vm.Priority)
	require.Equal(t, "In Progress", vm.Status)
	require.Equal(t, "Error", vm.PriorityState)
	require.Equal(t, "Information", vm.StatusState)
	require.Equal(t, "Success", vm.CategoryState)
	require.Equal(t, "2026-01-20", vm.CreatedOn)
}

func TestRequestsToListPage(t *testing.T) {
	page := mappers.RequestsToListPage(nil)
	require.Empty(t, page.Items)
	require.Equal(t, "No requests", page.ItemCountText)

	page = mappers.RequestsToListPage([]request.Request{
		request.Hydrate("REQ-2", "Hardware", request.PriorityLow, request.StatusOpen, "x", "2026-01-20"),
		request.Hydrate("REQ-1", "Software", request.PriorityLow, request.StatusOpen, "y", "2026-01-19"),
	})
	require.Len(t, page.Items, 2)
	require.Equal(t, "2 requests", page.ItemCountText)
	require.Equal(t, "REQ-2", page.Items[0].ID)
}
