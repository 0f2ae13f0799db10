package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/iota-uz/servicedesk/modules/requests/domain/aggregates/request"
)

const (
	recentActivityLimit  = 5
	activityDescMaxChars = 50
)

type CategoryStat struct {
	Category   string `json:"category"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type ActivityItem struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Description string `json:"description"`
	Time        string `json:"time"`
}

type Summary struct {
	TotalRequests  int `json:"totalRequests"`
	OpenRequests   int `json:"openRequests"`
	InProgress     int `json:"inProgress"`
	ClosedRequests int `json:"closedRequests"`

	CriticalCount int `json:"criticalCount"`
	HighCount     int `json:"highCount"`
	MediumCount   int `json:"mediumCount"`
	LowCount      int `json:"lowCount"`

	CriticalPercentage int `json:"criticalPercentage"`
	HighPercentage     int `json:"highPercentage"`
	MediumPercentage   int `json:"mediumPercentage"`
	LowPercentage      int `json:"lowPercentage"`

	CategoryData   []CategoryStat `json:"categoryData"`
	RecentActivity []ActivityItem `json:"recentActivity"`
}

// Aggregate computes the dashboard summary in one pass over items. Unknown
// status and priority values count toward the total but land in no bucket;
// the aggregator never fails on malformed data.
func Aggregate(items []request.Request, now time.Time) Summary {
	summary := Summary{
		TotalRequests:  len(items),
		CategoryData:   []CategoryStat{},
		RecentActivity: []ActivityItem{},
	}

	categoryOrder := []string{}
	categoryCounts := map[string]int{}

	for _, item := range items {
		switch item.Status() {
		case request.StatusOpen:
			summary.OpenRequests++
		case request.StatusInProgress:
			summary.InProgress++
		case request.StatusClosed:
			summary.ClosedRequests++
		}

		switch item.Priority() {
		case request.PriorityCritical:
			summary.CriticalCount++
		case request.PriorityHigh:
			summary.HighCount++
		case request.PriorityMedium:
			summary.MediumCount++
		case request.PriorityLow:
			summary.LowCount++
		}

		if _, seen := categoryCounts[item.Category()]; !seen {
			categoryOrder = append(categoryOrder, item.Category())
		}
		categoryCounts[item.Category()]++
	}

	summary.CriticalPercentage = percentage(summary.CriticalCount, summary.TotalRequests)
	summary.HighPercentage = percentage(summary.HighCount, summary.TotalRequests)
	summary.MediumPercentage = percentage(summary.MediumCount, summary.TotalRequests)
	summary.LowPercentage = percentage(summary.LowCount, summary.TotalRequests)

	for _, category := range categoryOrder {
		count := categoryCounts[category]
		summary.CategoryData = append(summary.CategoryData, CategoryStat{
			Category:   category,
			Count:      count,
			Percentage: percentage(count, summary.TotalRequests),
		})
	}

	limit := recentActivityLimit
	if len(items) < limit {
		limit = len(items)
	}
	for _, item := range items[:limit] {
		summary.RecentActivity = append(summary.RecentActivity, ActivityItem{
			ID:          item.ID(),
			Category:    item.Category(),
			Status:      string(item.Status()),
			Priority:    string(item.Priority()),
			Description: truncateDescription(item.Description()),
			Time:        timeAgo(item.CreatedOn(), now),
		})
	}

	return summary
}

// percentage rounds half away from zero and defines x/0 as 0.
func percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

func truncateDescription(description string) string {
	runes := []rune(description)
	if len(runes) <= activityDescMaxChars {
		return description
	}
	return string(runes[:activityDescMaxChars]) + "..."
}

// timeAgo renders a day-granular creation stamp relative to now. A value
// that does not parse is returned unchanged.
func timeAgo(createdOn string, now time.Time) string {
	created, err := time.ParseInLocation(request.DateLayout, createdOn, now.Location())
	if err != nil {
		return createdOn
	}

	diff := now.Sub(created)
	if days := int(diff.Hours() / 24); days > 0 {
		return fmt.Sprintf("%d days ago", days)
	}
	if hours := int(diff.Hours()); hours > 0 {
		return fmt.Sprintf("%d hours ago", hours)
	}
	if minutes := int(math.Round(float64(diff%time.Hour) / float64(time.Minute))); minutes > 0 {
		return fmt.Sprintf("%d minutes ago", minutes)
	}
	return "Just now"
}

// StatsService recomputes the summary on demand; any refresh cadence is the
// caller's concern.
type StatsService struct {
	repo request.Repository
	now  func() time.Time
}

func NewStatsService(repo request.Repository) *StatsService {
	return &StatsService{repo: repo, now: time.Now}
}

func NewStatsServiceWithClock(repo request.Repository, now func() time.Time) *StatsService {
	return &StatsService{repo: repo, now: now}
}

func (s *StatsService) Summary(ctx context.Context) (Summary, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Aggregate(items, s.now()), nil
}
