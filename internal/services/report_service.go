package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/foodbridge/food-donation-api/internal/constants"
	"github.com/foodbridge/food-donation-api/internal/repository"
)

// ReportService exposes read-only aggregations over donation history.
type ReportService struct {
	reportRepo repository.ReportRepository
}

// NewReportService creates a new ReportService.
func NewReportService(reportRepo repository.ReportRepository) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
	}
}

// FoodTypeStats returns per-food-type totals, largest total first.
func (s *ReportService) FoodTypeStats() ([]repository.FoodTypeStat, error) {
	stats, err := s.reportRepo.FoodTypeStats()
	if err != nil {
		return nil, fmt.Errorf("failed to compute food type stats: %w", err)
	}
	return stats, nil
}

// MonthlyTrend summarizes one month of donation activity.
type MonthlyTrend struct {
	Month         string  `json:"month"`
	DonationCount int64   `json:"donation_count"`
	TotalQuantity float64 `json:"total_quantity"`
	ActiveDonors  int64   `json:"active_donors"`
}

// MonthlyTrends aggregates the trailing twelve months of donations by month.
// Bucketing happens here rather than in SQL because month formatting is not
// portable across the MySQL, Postgres and SQLite dialects this repo runs on.
func (s *ReportService) MonthlyTrends() ([]MonthlyTrend, error) {
	now := time.Now()
	since := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(constants.TrendWindowMonths - 1), 0)

	donations, err := s.reportRepo.DonationsSince(since)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch donations for trend: %w", err)
	}

	buckets := make(map[string]*MonthlyTrend)
	donorsByMonth := make(map[string]map[uint64]struct{})

	for _, d := range donations {
		month := d.DonationDate.Format("2006-01")
		bucket, ok := buckets[month]
		if !ok {
			bucket = &MonthlyTrend{Month: month}
			buckets[month] = bucket
			donorsByMonth[month] = make(map[uint64]struct{})
		}
		bucket.DonationCount++
		bucket.TotalQuantity += d.Quantity
		donorsByMonth[month][d.DonorID] = struct{}{}
	}

	trends := make([]MonthlyTrend, 0, len(buckets))
	for month, bucket := range buckets {
		bucket.ActiveDonors = int64(len(donorsByMonth[month]))
		trends = append(trends, *bucket)
	}

	sort.Slice(trends, func(i, j int) bool {
		return trends[i].Month < trends[j].Month
	})

	return trends, nil
}

// NGODistribution returns per-NGO received totals, largest first.
func (s *ReportService) NGODistribution() ([]repository.NGODistributionRow, error) {
	rows, err := s.reportRepo.NGODistribution()
	if err != nil {
		return nil, fmt.Errorf("failed to compute NGO distribution: %w", err)
	}
	return rows, nil
}

// TopDonors returns the ten highest-volume donors.
func (s *ReportService) TopDonors() ([]repository.TopDonorRow, error) {
	rows, err := s.reportRepo.TopDonors(constants.TopDonorsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to compute top donors: %w", err)
	}
	return rows, nil
}
