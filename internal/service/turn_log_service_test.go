package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"hospital-turn-system/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// fakeAppointmentDetails serves canned joined rows to the writer. Missing ids
// resolve to (nil, nil), matching the store contract.
type fakeAppointmentDetails struct {
	mu      sync.Mutex
	details map[int64]*entity.AppointmentDetail
}

func (f *fakeAppointmentDetails) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return nil
}

func (f *fakeAppointmentDetails) FindDetailByID(db *gorm.DB, id int64) (*entity.AppointmentDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.details[id], nil
}

func (f *fakeAppointmentDetails) FindAllDetails(db *gorm.DB) ([]entity.AppointmentDetail, error) {
	return nil, nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func sampleDetail(id int64) *entity.AppointmentDetail {
	return &entity.AppointmentDetail{
		ID:              id,
		Date:            "2026-03-14",
		Time:            "09:30",
		DoctorName:      "Dr. Vega",
		DoctorSpecialty: "Cardiology",
		PatientName:     "Ana Ruiz",
		PatientAge:      67,
		Status:          string(entity.AppointmentStatusPending),
	}
}

func TestFormatTurnBlock(t *testing.T) {
	got := FormatTurnBlock(sampleDetail(3))
	want := "Turn ID: 3\n" +
		"Date: 2026-03-14\n" +
		"Time: 09:30\n" +
		"Doctor: Dr. Vega (Cardiology)\n" +
		"Patient: Ana Ruiz (Age: 67)\n" +
		"Status: pending\n\n"
	if got != want {
		t.Errorf("block mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestTurnLogAppendsBlocksAfterHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appointments.txt")
	repo := &fakeAppointmentDetails{details: map[int64]*entity.AppointmentDetail{
		1: sampleDetail(1),
		2: sampleDetail(2),
	}}

	svc := NewTurnLogService(nil, quietLogger(), repo, path)
	svc.Start()

	ctx := context.Background()
	if err := svc.Enqueue(ctx, 1); err != nil {
		t.Fatalf("Enqueue(1): %v", err)
	}
	if err := svc.Enqueue(ctx, 2); err != nil {
		t.Fatalf("Enqueue(2): %v", err)
	}
	svc.Stop()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading mirror file: %v", err)
	}
	content := string(data)

	if !strings.HasPrefix(content, TurnLogHeader) {
		t.Errorf("file should open with the header, got %q", content)
	}
	if n := strings.Count(content, TurnLogHeader); n != 1 {
		t.Errorf("header written %d times, want 1", n)
	}
	want := TurnLogHeader + FormatTurnBlock(sampleDetail(1)) + FormatTurnBlock(sampleDetail(2))
	if content != want {
		t.Errorf("file mismatch:\ngot:  %q\nwant: %q", content, want)
	}
}

func TestTurnLogHeaderNotRepeatedAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appointments.txt")
	repo := &fakeAppointmentDetails{details: map[int64]*entity.AppointmentDetail{
		1: sampleDetail(1),
		2: sampleDetail(2),
	}}

	for _, id := range []int64{1, 2} {
		svc := NewTurnLogService(nil, quietLogger(), repo, path)
		svc.Start()
		if err := svc.Enqueue(context.Background(), id); err != nil {
			t.Fatalf("Enqueue(%d): %v", id, err)
		}
		svc.Stop()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading mirror file: %v", err)
	}
	if n := strings.Count(string(data), TurnLogHeader); n != 1 {
		t.Errorf("header written %d times across restarts, want 1", n)
	}
	if n := strings.Count(string(data), "Turn ID:"); n != 2 {
		t.Errorf("found %d blocks, want 2", n)
	}
}

func TestTurnLogSurvivesMissingAppointment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appointments.txt")
	repo := &fakeAppointmentDetails{details: map[int64]*entity.AppointmentDetail{
		7: sampleDetail(7),
	}}

	svc := NewTurnLogService(nil, quietLogger(), repo, path)
	svc.Start()

	ctx := context.Background()
	if err := svc.Enqueue(ctx, 99); err != nil {
		t.Fatalf("Enqueue(99): %v", err)
	}
	if err := svc.Enqueue(ctx, 7); err != nil {
		t.Fatalf("Enqueue(7): %v", err)
	}
	svc.Stop()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading mirror file: %v", err)
	}
	want := TurnLogHeader + FormatTurnBlock(sampleDetail(7))
	if string(data) != want {
		t.Errorf("writer should skip the missing row and keep going:\ngot:  %q\nwant: %q", string(data), want)
	}
}

func TestEnqueueAfterStopReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appointments.txt")
	svc := NewTurnLogService(nil, quietLogger(), &fakeAppointmentDetails{}, path)
	svc.Start()
	svc.Stop()

	err := svc.Enqueue(context.Background(), 1)
	if !errors.Is(err, ErrTurnLogStopped) {
		t.Errorf("err = %v, want ErrTurnLogStopped", err)
	}
}

func TestEnqueueHonorsContextCancellation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appointments.txt")
	svc := NewTurnLogService(nil, quietLogger(), &fakeAppointmentDetails{}, path)
	// Writer never started: the queue eventually fills and Enqueue must fall
	// through to the cancelled context instead of blocking forever.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var err error
	for i := 0; i < 32; i++ {
		if err = svc.Enqueue(ctx, int64(i)); err != nil {
			break
		}
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
