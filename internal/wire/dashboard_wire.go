package wire

import (
	"telehealth-portal/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireDashboard registers the role-gated pages. Anonymous callers get 403
// from the details endpoints and a redirect to login from /dashboard.
func wireDashboard(r chi.Router, dashboardHandler *adaptor.DashboardHandler) {
	r.Get("/dashboard", dashboardHandler.Redirect)
	r.Get("/api/patient/details", dashboardHandler.PatientDetails)
	r.Get("/api/doctor/details", dashboardHandler.DoctorDetails)
}
