package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"hospital-turn-system/internal/domain/entity"
	"hospital-turn-system/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// TurnLogHeader is written once when the mirror file is created.
const TurnLogHeader = "=== Appointment List ===\n"

var ErrTurnLogStopped = errors.New("turn log writer is stopped")

// TurnLogService mirrors committed appointments into an append-only text
// file. It runs as a single supervised background writer: Enqueue hands over
// a committed appointment id, the writer re-reads the row joined with doctor
// and patient and appends one formatted block. A failed append is logged and
// never propagated to the booking, which is already durable at that point.
//
// The channel send in Enqueue doubles as the ready signal: it can only happen
// after the insert committed, so the writer never observes a missing row.
type TurnLogService struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	path            string

	queue chan int64
	done  chan struct{}

	mu      sync.Mutex
	stopped bool
}

func NewTurnLogService(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	path string,
) *TurnLogService {
	return &TurnLogService{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		path:            path,
		queue:           make(chan int64, 16),
		done:            make(chan struct{}),
	}
}

// Start launches the background writer. Call once.
func (s *TurnLogService) Start() {
	go s.run()
}

func (s *TurnLogService) run() {
	defer close(s.done)
	for id := range s.queue {
		if err := s.append(id); err != nil {
			s.log.Errorf("Failed to mirror appointment %d to %s: %v", id, s.path, err)
		}
	}
}

// Enqueue hands a committed appointment id to the writer. It blocks only when
// the queue is full, and gives up on ctx cancellation or writer shutdown.
// The mutex is held across the send so Stop cannot close the queue under a
// blocked sender.
func (s *TurnLogService) Enqueue(ctx context.Context, appointmentID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return ErrTurnLogStopped
	}
	select {
	case s.queue <- appointmentID:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop drains pending appends and waits for the writer to exit.
func (s *TurnLogService) Stop() {
	s.mu.Lock()
	if !s.stopped {
		s.stopped = true
		close(s.queue)
	}
	s.mu.Unlock()
	<-s.done
}

func (s *TurnLogService) append(appointmentID int64) error {
	detail, err := s.appointmentRepo.FindDetailByID(s.db, appointmentID)
	if err != nil {
		return err
	}
	if detail == nil {
		return fmt.Errorf("appointment %d not found", appointmentID)
	}
	return s.writeBlock(detail)
}

func (s *TurnLogService) writeBlock(detail *entity.AppointmentDetail) error {
	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		if _, err := file.WriteString(TurnLogHeader); err != nil {
			return err
		}
	}

	if _, err := file.WriteString(FormatTurnBlock(detail)); err != nil {
		return err
	}
	return file.Sync()
}

// FormatTurnBlock renders the fixed six-line block appended per appointment.
func FormatTurnBlock(d *entity.AppointmentDetail) string {
	return fmt.Sprintf(
		"Turn ID: %d\nDate: %s\nTime: %s\nDoctor: %s (%s)\nPatient: %s (Age: %d)\nStatus: %s\n\n",
		d.ID, d.Date, d.Time,
		d.DoctorName, d.DoctorSpecialty,
		d.PatientName, d.PatientAge,
		d.Status,
	)
}
