package class

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/m04kA/SMC-PoolService/internal/domain"
	"github.com/m04kA/SMC-PoolService/pkg/types"
)

// CSVRow строка файла каталога
// Дата занятия задается смещением в днях от даты загрузки, чтобы демо-расписание
// всегда оставалось в будущем
type CSVRow struct {
	ID              string  `csv:"id"`
	Title           string  `csv:"title"`
	Description     string  `csv:"description"`
	Level           string  `csv:"level"`
	ClassType       string  `csv:"class_type"`
	DurationMinutes int     `csv:"duration_minutes"`
	MaxCapacity     int     `csv:"max_capacity"`
	Price           float64 `csv:"price"`
	InstructorID    string  `csv:"instructor_id"`
	Equipment       string  `csv:"equipment"`
	DayOffset       int     `csv:"day_offset"`
	StartTime       string  `csv:"start_time"`
	ImageURL        string  `csv:"image_url"`
}

// LoadCSV читает каталог классов из файла
func LoadCSV(path string, now time.Time) ([]domain.SwimClass, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadSeed, path, err)
	}
	defer f.Close()

	return ParseCSV(f, now)
}

// ParseCSV разбирает каталог классов, даты считаются относительно now
func ParseCSV(in io.Reader, now time.Time) ([]domain.SwimClass, error) {
	rows := []*CSVRow{}
	if err := gocsv.Unmarshal(in, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadSeed, err)
	}

	classes := make([]domain.SwimClass, 0, len(rows))
	for i, row := range rows {
		c, err := row.toDomain(now)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrInvalidRow, i+1, err)
		}
		classes = append(classes, c)
	}
	return classes, nil
}

func (row *CSVRow) toDomain(now time.Time) (domain.SwimClass, error) {
	if row.ID == "" {
		return domain.SwimClass{}, fmt.Errorf("id is required")
	}

	level, err := domain.ParseSwimLevel(row.Level)
	if err != nil {
		return domain.SwimClass{}, fmt.Errorf("level %q: %w", row.Level, err)
	}

	classType, err := domain.ParseClassType(row.ClassType)
	if err != nil {
		return domain.SwimClass{}, fmt.Errorf("class_type %q: %w", row.ClassType, err)
	}

	if row.DurationMinutes <= 0 || row.DurationMinutes > domain.MaxClassDurationMinutes {
		return domain.SwimClass{}, fmt.Errorf("duration_minutes must be in (0, %d]", domain.MaxClassDurationMinutes)
	}
	if row.MaxCapacity <= 0 {
		return domain.SwimClass{}, fmt.Errorf("max_capacity must be positive")
	}

	start, err := types.NewTimeStringFromString(row.StartTime)
	if err != nil {
		return domain.SwimClass{}, fmt.Errorf("start_time %q: %w", row.StartTime, err)
	}
	minutes := start.Minutes()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, row.DayOffset)

	c := domain.SwimClass{
		ID:              row.ID,
		Title:           row.Title,
		Description:     row.Description,
		Level:           level,
		ClassType:       classType,
		DurationMinutes: row.DurationMinutes,
		MaxCapacity:     row.MaxCapacity,
		Price:           row.Price,
		InstructorID:    row.InstructorID,
		Equipment:       splitEquipment(row.Equipment),
		StartsAt:        day.Add(time.Duration(minutes) * time.Minute),
	}
	if row.ImageURL != "" {
		url := row.ImageURL
		c.ImageURL = &url
	}
	return c, nil
}

// splitEquipment список инвентаря хранится в одной ячейке через ";"
func splitEquipment(s string) []string {
	result := []string{}
	for _, item := range strings.Split(s, ";") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
