package usecase

import (
	"context"
	"errors"
	"testing"

	"hospital-turn-system/internal/delivery/dto"
	"hospital-turn-system/pkg/apperr"
	"hospital-turn-system/pkg/validator"

	"github.com/sirupsen/logrus"
)

// newValidationOnlyRegistration builds a usecase whose store dependencies are
// nil. Every test through it must fail before the first repository call.
func newValidationOnlyRegistration() RegistrationUsecase {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewRegistrationUsecase(nil, log, validator.NewValidator(), nil, nil, nil, nil)
}

func validUserRequest() *dto.RegisterUserRequest {
	return &dto.RegisterUserRequest{
		Email:           "reception@clinic.test",
		Username:        "reception",
		FullName:        "Front Desk",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
}

func TestRegisterUserRejectsMissingFields(t *testing.T) {
	u := newValidationOnlyRegistration()
	req := validUserRequest()
	req.Username = ""
	req.Email = ""

	_, err := u.RegisterUser(context.Background(), req)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if !apperr.IsValidation(err) {
		t.Errorf("error kind = %v, want validation", err)
	}
}

func TestRegisterUserRejectsPasswordMismatch(t *testing.T) {
	u := newValidationOnlyRegistration()
	req := validUserRequest()
	req.ConfirmPassword = "different"

	_, err := u.RegisterUser(context.Background(), req)
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("err = %v, want ErrPasswordMismatch", err)
	}
	if !apperr.IsValidation(err) {
		t.Error("password mismatch should classify as validation")
	}
}

func TestRegisterUserAsyncDeliversValidationError(t *testing.T) {
	u := newValidationOnlyRegistration()
	req := validUserRequest()
	req.Email = "not-an-email"

	outcome := <-u.RegisterUserAsync(context.Background(), req)
	if outcome.User != nil {
		t.Error("no user should be returned on a failed registration")
	}
	if !apperr.IsValidation(outcome.Err) {
		t.Errorf("outcome.Err = %v, want a validation error", outcome.Err)
	}
}

func TestRegisterDoctorRejectsOutOfRangeSlot(t *testing.T) {
	u := newValidationOnlyRegistration()
	for _, slot := range []int{-1, 0, 5, 99} {
		req := &dto.RegisterDoctorRequest{
			Name:      "Dr. Vega",
			Specialty: "Cardiology",
			Phone:     "555-0100",
			Email:     "vega@clinic.test",
			SlotIndex: slot,
		}
		_, err := u.RegisterDoctor(context.Background(), req)
		if err == nil {
			t.Errorf("slot %d: expected an error", slot)
			continue
		}
		if !apperr.IsValidation(err) {
			t.Errorf("slot %d: error kind = %v, want validation", slot, err)
		}
	}
}

func TestRegisterDoctorRejectsBlankFields(t *testing.T) {
	u := newValidationOnlyRegistration()
	req := &dto.RegisterDoctorRequest{SlotIndex: 1}

	_, err := u.RegisterDoctor(context.Background(), req)
	if !apperr.IsValidation(err) {
		t.Errorf("err = %v, want a validation error", err)
	}
}

func TestRegisterPatientRejectsInvalidInput(t *testing.T) {
	u := newValidationOnlyRegistration()
	cases := []struct {
		name string
		req  *dto.RegisterPatientRequest
	}{
		{"zero age", &dto.RegisterPatientRequest{
			Name: "Ana", Age: 0, Gender: "F", Phone: "555-0101", Email: "ana@clinic.test",
		}},
		{"negative age", &dto.RegisterPatientRequest{
			Name: "Ana", Age: -3, Gender: "F", Phone: "555-0101", Email: "ana@clinic.test",
		}},
		{"unknown gender", &dto.RegisterPatientRequest{
			Name: "Ana", Age: 30, Gender: "X", Phone: "555-0101", Email: "ana@clinic.test",
		}},
		{"blank name", &dto.RegisterPatientRequest{
			Age: 30, Gender: "M", Phone: "555-0101", Email: "ana@clinic.test",
		}},
		{"bad email", &dto.RegisterPatientRequest{
			Name: "Ana", Age: 30, Gender: "F", Phone: "555-0101", Email: "nope",
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := u.RegisterPatient(context.Background(), tc.req)
			if !apperr.IsValidation(err) {
				t.Errorf("err = %v, want a validation error", err)
			}
		})
	}
}

func TestRegisterPatientAsyncDeliversValidationError(t *testing.T) {
	u := newValidationOnlyRegistration()
	req := &dto.RegisterPatientRequest{Name: "Ana", Age: 30, Gender: "Q", Phone: "555-0101", Email: "ana@clinic.test"}

	outcome, ok := <-u.RegisterPatientAsync(context.Background(), req)
	if !ok {
		t.Fatal("outcome channel closed without a result")
	}
	if outcome.Patient != nil {
		t.Error("no patient should be returned on a failed registration")
	}
	if !apperr.IsValidation(outcome.Err) {
		t.Errorf("outcome.Err = %v, want a validation error", outcome.Err)
	}
}
