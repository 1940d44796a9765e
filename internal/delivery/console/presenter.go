package console

import (
	"fmt"

	"hospital-turn-system/internal/delivery/dto"
	"hospital-turn-system/internal/domain/entity"
)

func printTitle(title string) {
	fmt.Println(colorize("\n========================================", colorCyan))
	fmt.Println(colorize(title, colorBlue))
	fmt.Println(colorize("========================================", colorCyan))
}

func printError(err error) {
	fmt.Println(colorize("Error: "+err.Error(), colorRed))
}

func printSuccess(message string) {
	fmt.Println(colorize(message, colorGreen))
}

func printDoctors(doctors []dto.DoctorResponse) {
	if len(doctors) == 0 {
		fmt.Println(colorize("\nNo doctors registered yet.", colorRed))
		return
	}
	fmt.Println(colorize("\n=== Registered Doctors ===", colorBlue))
	for _, d := range doctors {
		experience := "No"
		if d.HasExperience {
			experience = "Yes"
		}
		fmt.Printf("%s%d\n", colorize("ID: ", colorGreen), d.ID)
		fmt.Printf("%s%s\n", colorize("Name: ", colorGreen), d.Name)
		fmt.Printf("%s%s\n", colorize("Specialty: ", colorGreen), d.Specialty)
		fmt.Printf("%s%s\n", colorize("Phone: ", colorGreen), d.Phone)
		fmt.Printf("%s%s\n", colorize("Email: ", colorGreen), d.Email)
		fmt.Printf("%s%s\n", colorize("Experience: ", colorGreen), experience)
		fmt.Printf("%s%s\n", colorize("Role: ", colorGreen), d.Role)
		fmt.Printf("%s%s\n\n", colorize("Available Slot: ", colorGreen), d.AvailableSlot)
	}
}

func printPatientOverviews(patients []entity.PatientOverview) {
	if len(patients) == 0 {
		fmt.Println(colorize("\nNo patients registered yet.", colorRed))
		return
	}
	fmt.Println(colorize("\n=== Registered Patients ===", colorBlue))
	for _, p := range patients {
		fmt.Printf("%s%d\n", colorize("ID: ", colorGreen), p.ID)
		fmt.Printf("%s%s\n", colorize("Name: ", colorGreen), p.Name)
		fmt.Printf("%s%d\n", colorize("Age: ", colorGreen), p.Age)
		fmt.Printf("%s%s\n", colorize("Gender: ", colorGreen), p.Gender)
		fmt.Printf("%s%s\n", colorize("Phone: ", colorGreen), p.Phone)
		fmt.Printf("%s%s\n", colorize("Email: ", colorGreen), p.Email)
		fmt.Printf("%s%s\n", colorize("Priority: ", colorGreen), p.Priority)
		fmt.Printf("%s%s\n\n", colorize("Assigned Doctor: ", colorGreen), p.AssignedDoctorName)
	}
}

func printUnassignedPatients(patients []dto.PatientResponse) {
	fmt.Println(colorize("\n=== Available Patients ===", colorBlue))
	for _, p := range patients {
		fmt.Printf("%s%d%s%s\n", colorize("ID: ", colorGreen), p.ID, colorize(" | Name: ", colorGreen), p.Name)
	}
}

func printAppointments(appointments []entity.AppointmentDetail) {
	fmt.Println(colorize("\n=== Appointment List ===", colorBlue))
	for _, a := range appointments {
		fmt.Printf("%s%d\n", colorize("Turn ID: ", colorGreen), a.ID)
		fmt.Printf("%s%s\n", colorize("Date: ", colorGreen), a.Date)
		fmt.Printf("%s%s\n", colorize("Time: ", colorGreen), a.Time)
		fmt.Printf("%s%s (%s)\n", colorize("Doctor: ", colorGreen), a.DoctorName, a.DoctorSpecialty)
		fmt.Printf("%s%s (Age: %d)\n", colorize("Patient: ", colorGreen), a.PatientName, a.PatientAge)
		fmt.Printf("%s%s\n\n", colorize("Status: ", colorGreen), a.Status)
	}
}
