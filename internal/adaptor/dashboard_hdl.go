package adaptor

import (
	"net/http"

	"telehealth-portal/internal/usecase"
	"telehealth-portal/pkg/utils"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	service usecase.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service usecase.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log,
	}
}

// Redirect handles GET /dashboard by sending the browser to the page for
// its role, or to the login page without a session.
func (h *DashboardHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	target := usecase.LoginPage

	if role, ok := utils.GetRoleFromContext(r.Context()); ok {
		routed, err := h.service.RouteFor(role)
		if err != nil {
			handleServiceError(w, h.log, err, "redirect dashboard", msgServerError)
			return
		}
		target = routed
	}

	http.Redirect(w, r, string(target), http.StatusFound)
}

// PatientDetails handles GET /api/patient/details
func (h *DashboardHandler) PatientDetails(w http.ResponseWriter, r *http.Request) {
	session, _ := utils.GetSessionFromContext(r.Context())

	details, err := h.service.PatientDetails(r.Context(), session)
	if err != nil {
		handleServiceError(w, h.log, err, "patient details", msgServerError)
		return
	}

	utils.ResponseSuccess(w, details)
}

// DoctorDetails handles GET /api/doctor/details
func (h *DashboardHandler) DoctorDetails(w http.ResponseWriter, r *http.Request) {
	session, _ := utils.GetSessionFromContext(r.Context())

	details, err := h.service.DoctorDetails(r.Context(), session)
	if err != nil {
		handleServiceError(w, h.log, err, "doctor details", msgServerError)
		return
	}

	utils.ResponseSuccess(w, details)
}
