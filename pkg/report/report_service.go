package report

import (
	"context"
	"github.com/haidar-allaw/red-cross-sub000/domain"
)

type (
	ReportService interface {
		GetStatistics(ctx context.Context) (*domain.Statistics, error)
	}

	reportService struct {
		reportRepository ReportRepository
	}
)

func NewReportService(reportRepository ReportRepository) ReportService {
	return &reportService{reportRepository: reportRepository}
}

func (s *reportService) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	users, err := s.reportRepository.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	approved, err := s.reportRepository.CountCenters(ctx, true)
	if err != nil {
		return nil, err
	}

	pending, err := s.reportRepository.CountCenters(ctx, false)
	if err != nil {
		return nil, err
	}

	entries, err := s.reportRepository.CountBloodEntriesByStatus(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := s.reportRepository.CountBloodRequestsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	units, err := s.reportRepository.SumAvailableUnitsByType(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.Statistics{
		TotalUsers:      users,
		ApprovedCenters: approved,
		PendingCenters:  pending,
		BloodEntriesByStatus: withKeys(entries,
			domain.BloodEntryStatusScheduled,
			domain.BloodEntryStatusCompleted,
			domain.BloodEntryStatusCancelled,
		),
		BloodRequestsByStatus: withKeys(requests,
			domain.BloodRequestStatusPending,
			domain.BloodRequestStatusApproved,
			domain.BloodRequestStatusRejected,
		),
		AvailableUnitsByType: withKeys(units, domain.BloodTypes...),
	}
	return stats, nil
}

// withKeys folds grouped rows into a map that always carries every known key.
func withKeys(rows []GroupCount, keys ...string) map[string]int64 {
	result := make(map[string]int64, len(keys))
	for _, key := range keys {
		result[key] = 0
	}
	for _, row := range rows {
		result[row.Key] += row.Total
	}
	return result
}
