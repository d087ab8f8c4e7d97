package employees

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	pkgerrors "github.com/seorin-lab/resto-backoffice/pkg/errors"
)

func setupEmployeesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	employees := `
CREATE TABLE IF NOT EXISTS employees (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  role TEXT NOT NULL,
  hourly_wage REAL NOT NULL,
  active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`
	shifts := `
CREATE TABLE IF NOT EXISTS shifts (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  employee_id INTEGER NOT NULL,
  date TEXT NOT NULL,
  start_time TEXT NOT NULL,
  end_time TEXT NOT NULL,
  role TEXT,
  is_absent INTEGER NOT NULL DEFAULT 0,
  replacement_id INTEGER,
  hours_worked REAL,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(employees).Error)
	require.NoError(t, db.Exec(shifts).Error)
	return db
}

func newEmployeesService(t *testing.T) Service {
	t.Helper()

	svc, err := NewService(NewRepository(setupEmployeesTestDB(t)))
	require.NoError(t, err)
	return svc
}

func hireEmployee(t *testing.T, svc Service, name, role string, wage float64) int64 {
	t.Helper()

	id, err := svc.Create(context.Background(), EmployeeInput{Name: name, Role: role, HourlyWage: wage})
	require.NoError(t, err)
	return id
}

func scheduleShift(t *testing.T, svc Service, employeeID int64, date, start, end string) int64 {
	t.Helper()

	id, err := svc.CreateShift(context.Background(), ShiftInput{
		EmployeeID: employeeID, Date: date, StartTime: start, EndTime: end,
	})
	require.NoError(t, err)
	return id
}

func TestCreateEmployeeValidatesInput(t *testing.T) {
	svc := newEmployeesService(t)

	cases := []struct {
		name  string
		input EmployeeInput
	}{
		{"blank name", EmployeeInput{Name: " ", Role: "cook", HourlyWage: 12}},
		{"blank role", EmployeeInput{Name: "Ana", Role: " ", HourlyWage: 12}},
		{"zero wage", EmployeeInput{Name: "Ana", Role: "cook", HourlyWage: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			require.Error(t, err)
			assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
		})
	}
}

func TestSetActiveHidesFromDefaultListing(t *testing.T) {
	svc := newEmployeesService(t)

	id := hireEmployee(t, svc, "Ana", "cook", 12)
	require.NoError(t, svc.SetActive(context.Background(), id, false))

	active, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreateShiftDefaultsRoleFromEmployee(t *testing.T) {
	svc := newEmployeesService(t)

	id := hireEmployee(t, svc, "Ana", "cook", 12)
	scheduleShift(t, svc, id, "2025-03-01", "09:00", "17:00")

	shifts, err := svc.ListShifts(context.Background(), "2025-03-01", "2025-03-01")
	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.Equal(t, "cook", shifts[0].Role)
}

func TestCreateShiftRejectsBadTimes(t *testing.T) {
	svc := newEmployeesService(t)
	id := hireEmployee(t, svc, "Ana", "cook", 12)

	_, err := svc.CreateShift(context.Background(), ShiftInput{
		EmployeeID: id, Date: "2025-03-01", StartTime: "9am", EndTime: "17:00",
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	_, err = svc.CreateShift(context.Background(), ShiftInput{
		EmployeeID: 404, Date: "2025-03-01", StartTime: "09:00", EndTime: "17:00",
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestMarkAbsentWithReplacement(t *testing.T) {
	svc := newEmployeesService(t)

	ana := hireEmployee(t, svc, "Ana", "cook", 12)
	ben := hireEmployee(t, svc, "Ben", "cook", 13)
	shiftID := scheduleShift(t, svc, ana, "2025-03-01", "09:00", "17:00")

	require.NoError(t, svc.MarkAbsent(context.Background(), shiftID, &ben))

	shifts, err := svc.ListShifts(context.Background(), "2025-03-01", "2025-03-01")
	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.True(t, shifts[0].IsAbsent)
	require.NotNil(t, shifts[0].ReplacementID)
	assert.Equal(t, ben, *shifts[0].ReplacementID)
}

func TestMarkAbsentRejectsSelfAndInactiveReplacement(t *testing.T) {
	svc := newEmployeesService(t)

	ana := hireEmployee(t, svc, "Ana", "cook", 12)
	ben := hireEmployee(t, svc, "Ben", "cook", 13)
	shiftID := scheduleShift(t, svc, ana, "2025-03-01", "09:00", "17:00")

	err := svc.MarkAbsent(context.Background(), shiftID, &ana)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	require.NoError(t, svc.SetActive(context.Background(), ben, false))
	err = svc.MarkAbsent(context.Background(), shiftID, &ben)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestReplacementCandidates(t *testing.T) {
	svc := newEmployeesService(t)

	ana := hireEmployee(t, svc, "Ana", "cook", 12)
	ben := hireEmployee(t, svc, "Ben", "cook", 13)
	cara := hireEmployee(t, svc, "Cara", "cook", 14)
	hireEmployee(t, svc, "Dev", "server", 11)
	eve := hireEmployee(t, svc, "Eve", "cook", 15)
	require.NoError(t, svc.SetActive(context.Background(), eve, false))

	shiftID := scheduleShift(t, svc, ana, "2025-03-01", "09:00", "17:00")
	scheduleShift(t, svc, ben, "2025-03-01", "12:00", "20:00")

	candidates, err := svc.ReplacementCandidates(context.Background(), shiftID)
	require.NoError(t, err)
	require.Len(t, candidates, 1, "same-role, active, unscheduled employees only")
	assert.Equal(t, cara, candidates[0].ID)
}

func TestReplacementCandidatesExcludesReplacementsAlreadyBooked(t *testing.T) {
	svc := newEmployeesService(t)

	ana := hireEmployee(t, svc, "Ana", "cook", 12)
	ben := hireEmployee(t, svc, "Ben", "cook", 13)
	cara := hireEmployee(t, svc, "Cara", "cook", 14)

	anaShift := scheduleShift(t, svc, ana, "2025-03-01", "09:00", "17:00")
	benShift := scheduleShift(t, svc, ben, "2025-03-01", "12:00", "20:00")
	require.NoError(t, svc.MarkAbsent(context.Background(), benShift, &cara))

	candidates, err := svc.ReplacementCandidates(context.Background(), anaShift)
	require.NoError(t, err)
	assert.Empty(t, candidates, "neither the booked replacement nor the absentee is available")
}

func TestDeleteShift(t *testing.T) {
	svc := newEmployeesService(t)

	ana := hireEmployee(t, svc, "Ana", "cook", 12)
	shiftID := scheduleShift(t, svc, ana, "2025-03-01", "09:00", "17:00")

	require.NoError(t, svc.DeleteShift(context.Background(), shiftID))
	err := svc.DeleteShift(context.Background(), shiftID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}
