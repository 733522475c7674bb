package arxivweb

import (
	"context"
	"strconv"
	"time"
)

// DateCounts returns, for each calendar day of the given year with at
// least one paper, the day ("2006-01-02") and its paper count.
func (s *Store) DateCounts(ctx context.Context, year int) (map[string]int, error) {
	type row struct {
		Day   string
		Count int
	}
	var rows []row
	err := s.db.WithContext(ctx).Model(&Paper{}).
		Select("date(published_date) AS day, COUNT(*) AS count").
		Where("strftime('%Y', published_date) = ?", strconv.Itoa(year)).
		Group("day").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.Day] = r.Count
	}
	return counts, nil
}

// YearCount is a year with its paper count, for the browse sidebar.
type YearCount struct {
	Year  int
	Count int
}

// AvailableYears lists years that have papers, newest first.
func (s *Store) AvailableYears(ctx context.Context) ([]YearCount, error) {
	type row struct {
		Year  string
		Count int
	}
	var rows []row
	err := s.db.WithContext(ctx).Model(&Paper{}).
		Select("strftime('%Y', published_date) AS year, COUNT(*) AS count").
		Group("year").
		Order("year DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	years := make([]YearCount, 0, len(rows))
	for _, r := range rows {
		y, err := strconv.Atoi(r.Year)
		if err != nil {
			continue
		}
		years = append(years, YearCount{Year: y, Count: r.Count})
	}
	return years, nil
}

// PapersOnDate lists papers published on a specific day.
func (s *Store) PapersOnDate(ctx context.Context, day time.Time) ([]Paper, error) {
	var papers []Paper
	err := s.db.WithContext(ctx).
		Where("date(published_date) = ?", day.Format("2006-01-02")).
		Order("id DESC").
		Find(&papers).Error
	return papers, err
}
