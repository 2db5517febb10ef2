package usecase

import (
	"context"

	"telehealth-portal/internal/data/entity"
	"telehealth-portal/internal/dto/response"

	"go.uber.org/zap"
)

// DashboardTarget identifies the dashboard page a client is sent to.
type DashboardTarget string

const (
	PatientDashboard DashboardTarget = "/dashboard_patient"
	DoctorDashboard  DashboardTarget = "/dashboard_doctor"
	LoginPage        DashboardTarget = "/login"
)

type DashboardService interface {
	RouteFor(role entity.UserRole) (DashboardTarget, error)
	PatientDetails(ctx context.Context, session *entity.Session) (*response.PatientDetails, error)
	DoctorDetails(ctx context.Context, session *entity.Session) (*response.DoctorDetails, error)
}

type dashboardService struct {
	log *zap.Logger
}

func NewDashboardService(log *zap.Logger) DashboardService {
	return &dashboardService{log: log}
}

// RouteFor maps a role to its dashboard. Volunteers have no dashboard of
// their own and share the doctor one.
func (s *dashboardService) RouteFor(role entity.UserRole) (DashboardTarget, error) {
	switch role {
	case entity.RolePatient:
		return PatientDashboard, nil
	case entity.RoleDoctor, entity.RoleVolunteer:
		return DoctorDashboard, nil
	default:
		return "", ErrForbidden
	}
}

func (s *dashboardService) PatientDetails(_ context.Context, session *entity.Session) (*response.PatientDetails, error) {
	if session == nil || session.Role != entity.RolePatient {
		s.denied(session, entity.RolePatient)
		return nil, ErrForbidden
	}

	return &response.PatientDetails{
		ID:             session.UserID.String(),
		Name:           session.Username,
		Email:          session.Email,
		MedicalHistory: "No significant history",
		Appointments:   []string{},
	}, nil
}

func (s *dashboardService) DoctorDetails(_ context.Context, session *entity.Session) (*response.DoctorDetails, error) {
	if session == nil || session.Role != entity.RoleDoctor {
		s.denied(session, entity.RoleDoctor)
		return nil, ErrForbidden
	}

	return &response.DoctorDetails{
		ID:        session.UserID.String(),
		Name:      session.Username,
		Email:     session.Email,
		Specialty: "General Medicine",
		Patients:  []string{},
	}, nil
}

func (s *dashboardService) denied(session *entity.Session, want entity.UserRole) {
	fields := []zap.Field{zap.String("required_role", string(want))}
	if session != nil {
		fields = append(fields,
			zap.String("user_id", session.UserID.String()),
			zap.String("role", string(session.Role)))
	}
	s.log.Warn("Dashboard access denied", fields...)
}
