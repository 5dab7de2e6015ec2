package postgres_test

import (
	"testing"
	"time"

	"github.com/mauriciopaint/backoffice/internal/timesheet"
	timesheetPostgres "github.com/mauriciopaint/backoffice/internal/timesheet/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestTimesheetPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Timesheet Postgres Suite")
}

// SQLiteEntry is a SQLite-compatible model for testing
type SQLiteEntry struct {
	ID           int64     `gorm:"primaryKey"`
	EmployeeID   int64     `gorm:"column:employee_id;uniqueIndex:idx_employee_date;not null"`
	Date         time.Time `gorm:"column:date;uniqueIndex:idx_employee_date;not null"`
	EntryTime    string    `gorm:"column:entry_time;not null"`
	ExitTime     string    `gorm:"column:exit_time;not null"`
	LunchMinutes int       `gorm:"column:lunch_minutes;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (SQLiteEntry) TableName() string {
	return "daily_entries"
}

var _ = Describe("Timesheet PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo timesheet.RepositoryAPI
	)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	newEntry := func(employeeID int64, date time.Time) *timesheet.DailyEntry {
		now := time.Now()
		return &timesheet.DailyEntry{
			EmployeeID:   employeeID,
			Date:         date,
			EntryTime:    "08:00",
			ExitTime:     "17:00",
			LunchMinutes: 30,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteEntry{})
		Expect(err).NotTo(HaveOccurred())

		repo = timesheetPostgres.NewTimesheetRepository(db)
	})

	Describe("Save and GetByEmployeeAndDate", func() {
		It("should round-trip an entry", func() {
			entry := newEntry(1, day)
			Expect(repo.Save(entry)).To(Succeed())
			Expect(entry.ID).NotTo(BeZero())

			loaded, err := repo.GetByEmployeeAndDate(1, day)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).NotTo(BeNil())
			Expect(loaded.EntryTime).To(Equal("08:00"))
			Expect(loaded.ExitTime).To(Equal("17:00"))
		})

		It("should return nil when no entry exists", func() {
			loaded, err := repo.GetByEmployeeAndDate(1, day)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(BeNil())
		})

		It("should update in place when saving a loaded entry", func() {
			entry := newEntry(1, day)
			Expect(repo.Save(entry)).To(Succeed())

			loaded, err := repo.GetByEmployeeAndDate(1, day)
			Expect(err).NotTo(HaveOccurred())
			loaded.ExitTime = "18:30"
			Expect(repo.Save(loaded)).To(Succeed())

			again, err := repo.GetByEmployeeAndDate(1, day)
			Expect(err).NotTo(HaveOccurred())
			Expect(again.ID).To(Equal(entry.ID))
			Expect(again.ExitTime).To(Equal("18:30"))

			var count int64
			Expect(db.Model(&SQLiteEntry{}).Count(&count).Error).To(Succeed())
			Expect(count).To(Equal(int64(1)))
		})

		It("should enforce one row per employee and date", func() {
			Expect(repo.Save(newEntry(1, day))).To(Succeed())
			Expect(repo.Save(newEntry(1, day))).NotTo(Succeed())
		})
	})

	Describe("ListByEmployeeAndRange", func() {
		BeforeEach(func() {
			for d := 10; d <= 14; d++ {
				Expect(repo.Save(newEntry(1, time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)))).To(Succeed())
			}
			Expect(repo.Save(newEntry(2, day))).To(Succeed())
		})

		It("should return only the employee's entries inside the range", func() {
			start := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
			end := time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC)

			entries, err := repo.ListByEmployeeAndRange(1, start, end)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(3))
			for _, e := range entries {
				Expect(e.EmployeeID).To(Equal(int64(1)))
			}
		})

		It("should order entries by date", func() {
			start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
			end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

			entries, err := repo.ListByEmployeeAndRange(1, start, end)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(5))
			Expect(entries[0].Date.Before(entries[4].Date)).To(BeTrue())
		})
	})
})
