package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iota-uz/servicedesk/modules/requests/domain/aggregates/request"
	"github.com/iota-uz/servicedesk/modules/requests/infrastructure/persistence"
	"github.com/iota-uz/servicedesk/modules/requests/services"
)

var statsNow = time.Date(2026, 1, 25, 12, 0, 0, 0, time.UTC)

func TestAggregate_Empty(t *testing.T) {
	summary := services.Aggregate(nil, statsNow)

	require.Zero(t, summary.TotalRequests)
	require.Zero(t, summary.CriticalPercentage)
	require.Zero(t, summary.HighPercentage)
	require.Zero(t, summary.MediumPercentage)
	require.Zero(t, summary.LowPercentage)
	require.Empty(t, summary.CategoryData)
	require.Empty(t, summary.RecentActivity)
}

func TestAggregate_CountsAndPercentages(t *testing.T) {
	items := []request.Request{
		request.Hydrate("REQ-003", "Network", request.PriorityHigh, request.StatusOpen, "VPN drops", "2026-01-21"),
		request.Hydrate("REQ-002", "Software", request.PriorityMedium, request.StatusOpen, "Acrobat install", "2026-01-19"),
		request.Hydrate("REQ-001", "Hardware", request.PriorityLow, request.StatusClosed, "Laptop dead", "2026-01-20"),
	}

	summary := services.Aggregate(items, statsNow)

	require.Equal(t, 3, summary.TotalRequests)
	require.Equal(t, 2, summary.OpenRequests)
	require.Equal(t, 0, summary.InProgress)
	require.Equal(t, 1, summary.ClosedRequests)

	require.Equal(t, 1, summary.HighCount)
	require.Equal(t, 1, summary.MediumCount)
	require.Equal(t, 1, summary.LowCount)
	require.Equal(t, 0, summary.CriticalCount)

	// 1/3 rounds half away from zero to 33.
	require.Equal(t, 33, summary.HighPercentage)
	require.Equal(t, 33, summary.MediumPercentage)
	require.Equal(t, 33, summary.LowPercentage)
	require.Equal(t, 0, summary.CriticalPercentage)
}

func TestAggregate_RoundsHalfAwayFromZero(t *testing.T) {
	// 1/8 = 12.5% must round to 13, not 12.
	items := make([]request.Request, 0, 8)
	items = append(items, request.Hydrate("REQ-0", "Hardware", request.PriorityCritical, request.StatusOpen, "x", "2026-01-20"))
	for i := 1; i < 8; i++ {
		items = append(items, request.Hydrate("REQ-x", "Hardware", request.PriorityLow, request.StatusOpen, "x", "2026-01-20"))
	}

	summary := services.Aggregate(items, statsNow)
	require.Equal(t, 13, summary.CriticalPercentage)
}

func TestAggregate_TolerantOfUnknownValues(t *testing.T) {
	items := []request.Request{
		request.Hydrate("REQ-002", "Hardware", "Urgent", "Escalated", "weird", "2026-01-20"),
		request.Hydrate("REQ-001", "Hardware", request.PriorityHigh, request.StatusOpen, "ok", "2026-01-20"),
	}

	summary := services.Aggregate(items, statsNow)

	require.Equal(t, 2, summary.TotalRequests)
	unrecognized := summary.TotalRequests - summary.OpenRequests - summary.InProgress - summary.ClosedRequests
	require.Equal(t, 1, unrecognized)
	require.Equal(t, 1, summary.HighCount)
	require.Equal(t, 0, summary.CriticalCount+summary.MediumCount+summary.LowCount)
}

func TestAggregate_CategoryDataFirstOccurrenceOrder(t *testing.T) {
	items := []request.Request{
		request.Hydrate("REQ-4", "Network", request.PriorityLow, request.StatusOpen, "x", "2026-01-20"),
		request.Hydrate("REQ-3", "Hardware", request.PriorityLow, request.StatusOpen, "x", "2026-01-20"),
		request.Hydrate("REQ-2", "Network", request.PriorityLow, request.StatusOpen, "x", "2026-01-20"),
		request.Hydrate("REQ-1", "Access", request.PriorityLow, request.StatusOpen, "x", "2026-01-20"),
	}

	summary := services.Aggregate(items, statsNow)

	require.Len(t, summary.CategoryData, 3)
	require.Equal(t, "Network", summary.CategoryData[0].Category)
	require.Equal(t, 2, summary.CategoryData[0].Count)
	require.Equal(t, 50, summary.CategoryData[0].Percentage)
	require.Equal(t, "Hardware", summary.CategoryData[1].Category)
	require.Equal(t, "Access", summary.CategoryData[2].Category)
}

func TestAggregate_PercentagesWithinBounds(t *testing.T) {
	items := []request.Request{
		request.Hydrate("REQ-1", "Hardware", request.PriorityCritical, request.StatusOpen, "x", "2026-01-20"),
	}
	summary := services.Aggregate(items, statsNow)

	for _, p := range []int{
		summary.CriticalPercentage, summary.HighPercentage,
		summary.MediumPercentage, summary.LowPercentage,
	} {
		require.GreaterOrEqual(t, p, 0)
		require.LessOrEqual(t, p, 100)
	}
}

func TestAggregate_RecentActivity(t *testing.T) {
	long := strings.Repeat("a", 60)
	items := []request.Request{
		request.Hydrate("REQ-7", "Hardware", request.PriorityHigh, request.StatusOpen, long, "2026-01-23"),
		request.Hydrate("REQ-6", "Software", request.PriorityLow, request.StatusOpen, "short", "2026-01-22"),
		request.Hydrate("REQ-5", "Software", request.PriorityLow, request.StatusOpen, "x", "2026-01-21"),
		request.Hydrate("REQ-4", "Software", request.PriorityLow, request.StatusOpen, "x", "2026-01-20"),
		request.Hydrate("REQ-3", "Software", request.PriorityLow, request.StatusOpen, "x", "2026-01-19"),
		request.Hydrate("REQ-2", "Software", request.PriorityLow, request.StatusOpen, "x", "2026-01-18"),
	}

	summary := services.Aggregate(items, statsNow)

	require.Len(t, summary.RecentActivity, 5, "recent activity is capped at 5")
	require.Equal(t, "REQ-7", summary.RecentActivity[0].ID)
	require.Equal(t, strings.Repeat("a", 50)+"...", summary.RecentActivity[0].Description)
	require.Equal(t, "short", summary.RecentActivity[1].Description)
	require.Equal(t, "2 days ago", summary.RecentActivity[0].Time)
}

func TestAggregate_TimeAgoBuckets(t *testing.T) {
	now := time.Date(2026, 1, 25, 3, 30, 0, 0, time.UTC)

	mk := func(createdOn string) request.Request {
		return request.Hydrate("REQ-1", "Hardware", request.PriorityHigh, request.StatusOpen, "x", createdOn)
	}

	days := services.Aggregate([]request.Request{mk("2026-01-20")}, now)
	require.Equal(t, "5 days ago", days.RecentActivity[0].Time)

	hours := services.Aggregate([]request.Request{mk("2026-01-25")}, now)
	require.Equal(t, "3 hours ago", hours.RecentActivity[0].Time)

	minutes := services.Aggregate([]request.Request{mk("2026-01-25")}, time.Date(2026, 1, 25, 0, 45, 0, 0, time.UTC))
	require.Equal(t, "45 minutes ago", minutes.RecentActivity[0].Time)

	justNow := services.Aggregate([]request.Request{mk("2026-01-25")}, time.Date(2026, 1, 25, 0, 0, 10, 0, time.UTC))
	require.Equal(t, "Just now", justNow.RecentActivity[0].Time)
}

func TestAggregate_UnparseableDateFallsBack(t *testing.T) {
	items := []request.Request{
		request.Hydrate("REQ-1", "Hardware", request.PriorityHigh, request.StatusOpen, "x", "not-a-date"),
	}

	summary := services.Aggregate(items, statsNow)
	require.Equal(t, "not-a-date", summary.RecentActivity[0].Time)
}

func TestStatsService_Summary(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewRequestRepository()
	svc := services.NewStatsServiceWithClock(repo, func() time.Time { return statsNow })

	_, err := repo.Create(ctx, request.New("Hardware", request.PriorityHigh, "Laptop"))
	require.NoError(t, err)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, summary.TotalRequests)
	require.Equal(t, 1, summary.OpenRequests)
	require.Equal(t, 100, summary.HighPercentage)
}
