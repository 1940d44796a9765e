// Package console is the terminal surface. It only collects operator input
// and renders results; every decision lives in the usecases.
package console

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"hospital-turn-system/config"
	"hospital-turn-system/internal/delivery/dto"
	"hospital-turn-system/internal/domain/entity"
	"hospital-turn-system/internal/usecase"

	"github.com/sirupsen/logrus"
)

type Menu struct {
	reader       *bufio.Reader
	log          *logrus.Logger
	cfg          config.AppConfig
	auth         usecase.AuthUsecase
	registration usecase.RegistrationUsecase
	assignment   usecase.AssignmentUsecase
	appointment  usecase.AppointmentUsecase
}

func NewMenu(
	log *logrus.Logger,
	cfg config.AppConfig,
	auth usecase.AuthUsecase,
	registration usecase.RegistrationUsecase,
	assignment usecase.AssignmentUsecase,
	appointment usecase.AppointmentUsecase,
) *Menu {
	return &Menu{
		reader:       bufio.NewReader(os.Stdin),
		log:          log,
		cfg:          cfg,
		auth:         auth,
		registration: registration,
		assignment:   assignment,
		appointment:  appointment,
	}
}

// Run drives the top-level menu until the operator exits or ctx is cancelled.
func (m *Menu) Run(ctx context.Context) {
	for ctx.Err() == nil {
		printTitle("Hospital Turn Management System")
		fmt.Println(colorize("1. Register User", colorGreen))
		fmt.Println(colorize("2. Log In", colorGreen))
		fmt.Println(colorize("3. Exit", colorYellow))

		switch m.promptInt("\nSelect an option: ") {
		case 1:
			m.registerUserFlow(ctx)
		case 2:
			m.loginFlow(ctx)
		case 3:
			fmt.Println(colorize("Thanks for using the system. Goodbye!", colorMagenta))
			return
		default:
			fmt.Println(colorize("Invalid option. Try again.", colorRed))
		}
	}
}

// registerUserFlow collects the account fields, runs the registration in its
// own worker and consumes the outcome in the confirmation step. On success it
// opens the login prompt, like the original flow.
func (m *Menu) registerUserFlow(ctx context.Context) {
	req := &dto.RegisterUserRequest{
		Email:           m.promptLine("Enter email: "),
		Username:        m.promptLine("Enter username: "),
		FullName:        m.promptLine("Enter full name: "),
		Password:        m.promptLine("Enter password: "),
		ConfirmPassword: m.promptLine("Confirm password: "),
	}

	outcome := m.registration.RegisterUserAsync(ctx, req)

	result := <-outcome
	if result.Err != nil {
		printError(result.Err)
		fmt.Println(colorize("Cannot proceed to login. Validation failed.", colorRed))
		return
	}
	printSuccess("User registered successfully.")
	m.loginFlow(ctx)
}

func (m *Menu) loginFlow(ctx context.Context) {
	printTitle("Log In")
	req := &dto.LoginRequest{
		Username: m.promptLine("Enter username: "),
		Password: m.promptLine("Enter password: "),
	}

	user, err := m.auth.Login(ctx, req)
	if err != nil {
		printError(err)
		return
	}
	printSuccess("Login successful. Welcome, " + user.Username + "!")
	m.mainMenu(ctx, user.Username)
}

func (m *Menu) mainMenu(ctx context.Context, username string) {
	for ctx.Err() == nil {
		printTitle("Hospital Turn Management System")
		fmt.Println(colorize("User: ", colorYellow) + username)
		fmt.Println(colorize("1. Doctor Registration", colorGreen))
		fmt.Println(colorize("2. Patient Registration", colorGreen))
		fmt.Println(colorize("3. Turn Management", colorGreen))
		fmt.Println(colorize("4. Log Out", colorYellow))

		switch m.promptInt("\nSelect an option: ") {
		case 1:
			m.doctorFlow(ctx)
		case 2:
			m.patientFlow(ctx)
		case 3:
			m.turnMenu(ctx)
		case 4:
			fmt.Println(colorize("Logging out...", colorRed))
			return
		default:
			fmt.Println(colorize("Invalid option. Try again.", colorRed))
		}
	}
}

func (m *Menu) doctorFlow(ctx context.Context) {
	doctors, err := m.registration.ListDoctors(ctx)
	if err != nil {
		printError(err)
	} else {
		printDoctors(doctors)
	}

	req := &dto.RegisterDoctorRequest{
		Name:          m.promptLine("Enter the doctor's full name: "),
		Specialty:     m.promptLine("Enter the specialty: "),
		Phone:         m.promptLine("Enter the phone: "),
		Email:         m.promptLine("Enter the email: "),
		HasExperience: m.promptBool("Does the doctor have experience? (1 for Yes, 0 for No): "),
	}
	fmt.Println(colorize("Select an available slot:", colorBlue))
	for i, slot := range entity.AvailableSlots {
		fmt.Printf("%d. %s\n", i+1, slot)
	}
	req.SlotIndex = m.promptInt("Enter the option (1-4): ")

	doctor, err := m.registration.RegisterDoctor(ctx, req)
	if err != nil {
		printError(err)
		return
	}
	printSuccess("Doctor registered with slot: " + doctor.AvailableSlot)

	role, err := m.assignment.AssignDoctorRole(ctx, doctor.ID)
	if err != nil {
		printError(err)
		return
	}
	if role != "" {
		printSuccess("Role assigned automatically: " + role)
	}
}

// patientFlow registers a patient and waits, bounded, for the
// priority-assignment worker fed by the registration outcome.
func (m *Menu) patientFlow(ctx context.Context) {
	overviews, err := m.registration.ListPatientOverviews(ctx)
	if err != nil {
		printError(err)
	} else {
		printPatientOverviews(overviews)
	}

	req := &dto.RegisterPatientRequest{
		Name:   m.promptLine("Enter the patient's full name: "),
		Age:    m.promptInt("Enter the patient's age: "),
		Gender: m.promptLine("Enter the gender (F/M): "),
		Phone:  m.promptLine("Enter the phone: "),
		Email:  m.promptLine("Enter the email: "),
	}

	outcome := m.registration.RegisterPatientAsync(ctx, req)

	priority, err := m.assignment.AwaitPatientPriority(ctx, outcome, m.cfg.AssignWaitTimeout)
	if err != nil {
		printError(err)
		fmt.Println(colorize("Patient registration failed. Try again.", colorRed))
		return
	}
	printSuccess("Patient registered. Priority assigned automatically: " + priority)
}

func (m *Menu) turnMenu(ctx context.Context) {
	for ctx.Err() == nil {
		fmt.Println(colorize("\n=== Turn Management ===\n", colorBlue))
		fmt.Println(colorize("1. Book a Turn", colorGreen))
		fmt.Println(colorize("2. Back to Main Menu", colorGreen))

		switch m.promptInt("\nSelect an option: ") {
		case 1:
			m.bookTurnFlow(ctx)
		case 2:
			return
		default:
			fmt.Println(colorize("Invalid option.", colorRed))
		}
	}
}

// bookTurnFlow mirrors the original booking screen: the appointment and
// doctor reports load concurrently up front, and the unassigned-patient
// report loads while the operator types the doctor id.
func (m *Menu) bookTurnFlow(ctx context.Context) {
	bookingCtx, err := m.appointment.GatherBookingContext(ctx)
	if err != nil {
		printError(err)
		return
	}
	printAppointments(bookingCtx.Appointments)
	printDoctors(bookingCtx.Doctors)

	type patientsResult struct {
		patients []dto.PatientResponse
		err      error
	}
	patientsCh := make(chan patientsResult, 1)
	go func() {
		patients, err := m.appointment.ListUnassignedPatients(ctx)
		patientsCh <- patientsResult{patients: patients, err: err}
	}()

	doctorID := m.promptInt64("Enter the doctor ID: ")

	result := <-patientsCh
	if result.err != nil {
		printError(result.err)
		return
	}
	printUnassignedPatients(result.patients)

	req := &dto.CreateAppointmentRequest{
		DoctorID:  doctorID,
		PatientID: m.promptInt64("\nEnter the patient ID: "),
		Date:      m.promptLine("Enter the turn date (YYYY-MM-DD): "),
		Time:      m.promptLine("Enter the turn time (HH:MM): "),
	}

	appointment, err := m.appointment.CreateAppointment(ctx, req)
	if err != nil {
		printError(err)
		return
	}
	printSuccess(fmt.Sprintf("Turn %d booked: %s at %s with %s.",
		appointment.ID, appointment.Date, appointment.Time, appointment.DoctorName))
}
