package services

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/logger"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/repos"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/types"
)

// ChartData is a label/value pair series shaped for the dashboard widgets.
type ChartData struct {
	Labels []string `json:"labels"`
	Data   []int64  `json:"data"`
}

type DashboardStats struct {
	TotalEmployees        int64     `json:"total_employees"`
	LearningProgressChart ChartData `json:"learning_progress_chart"`
	CourseStatusChart     ChartData `json:"course_status_chart"`
}

// AgentMetric is one synthetic telemetry row. The numbers are generated, not
// measured; the endpoint exists for the admin demo console.
type AgentMetric struct {
	Queue     int    `json:"queue"`
	LatencyMs int    `json:"latency_ms"`
	ErrorRate string `json:"error_rate"`
}

// DashboardService aggregates admin dashboard statistics.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
	AgentMetrics() map[string]AgentMetric
}

type dashboardService struct {
	log          *logger.Logger
	employeeRepo repos.EmployeeRepo
	pathRepo     repos.LearningPathRepo
}

func NewDashboardService(log *logger.Logger, employeeRepo repos.EmployeeRepo, pathRepo repos.LearningPathRepo) DashboardService {
	return &dashboardService{
		log:          log.With("service", "DashboardService"),
		employeeRepo: employeeRepo,
		pathRepo:     pathRepo,
	}
}

func (s *dashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	total, err := s.employeeRepo.Count(ctx, nil)
	if err != nil {
		return nil, err
	}

	roleCounts, err := s.employeeRepo.CountByRole(ctx, nil)
	if err != nil {
		return nil, err
	}

	statusCounts, err := s.pathRepo.CountByStatus(ctx, nil)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{TotalEmployees: total}
	for _, rc := range roleCounts {
		stats.LearningProgressChart.Labels = append(stats.LearningProgressChart.Labels, rc.RoleName)
		stats.LearningProgressChart.Data = append(stats.LearningProgressChart.Data, rc.Count)
	}

	// Collapse the five step statuses into the three buckets the chart shows:
	// Passed counts as Completed, Failed as Not Started pending a retake.
	histogram := map[string]int64{}
	for _, sc := range statusCounts {
		switch sc.Status {
		case types.StepStatusPassed, types.StepStatusCompleted:
			histogram["Completed"] += sc.Count
		case types.StepStatusInProgress:
			histogram["In Progress"] += sc.Count
		default:
			histogram["Not Started"] += sc.Count
		}
	}
	for _, label := range []string{"Completed", "In Progress", "Not Started"} {
		stats.CourseStatusChart.Labels = append(stats.CourseStatusChart.Labels, label)
		stats.CourseStatusChart.Data = append(stats.CourseStatusChart.Data, histogram[label])
	}

	return stats, nil
}

func (s *dashboardService) AgentMetrics() map[string]AgentMetric {
	return map[string]AgentMetric{
		"Recommender_Agent":    syntheticMetric(5, 250, 600, 0.1, 1.5),
		"Course_Content_Agent": syntheticMetric(10, 400, 900, 0.5, 2.5),
		"Assessment_Agent":     syntheticMetric(3, 300, 700, 0.2, 1.8),
		"Tracker_Agent":        syntheticMetric(2, 500, 1200, 1.0, 3.0),
	}
}

func syntheticMetric(maxQueue, minLatency, maxLatency int, minErr, maxErr float64) AgentMetric {
	return AgentMetric{
		Queue:     rand.Intn(maxQueue + 1),
		LatencyMs: minLatency + rand.Intn(maxLatency-minLatency+1),
		ErrorRate: fmt.Sprintf("%.2f%%", minErr+rand.Float64()*(maxErr-minErr)),
	}
}
