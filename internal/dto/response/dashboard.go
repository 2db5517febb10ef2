package response

import "telehealth-portal/internal/data/entity"

type DashboardResponse struct {
	Role   entity.UserRole `json:"role"`
	Target string          `json:"target"`
}

type PatientDetails struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	MedicalHistory string   `json:"medicalHistory"`
	Appointments   []string `json:"appointments"`
}

type DoctorDetails struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Specialty string   `json:"specialty"`
	Patients  []string `json:"patients"`
}
