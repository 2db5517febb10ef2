package adaptor

import (
	"net/http"

	"telehealth-portal/internal/dto/response"
	"telehealth-portal/internal/usecase"
	"telehealth-portal/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service   usecase.UserService
	dashboard usecase.DashboardService
	log       *zap.Logger
}

func NewUserHandler(service usecase.UserService, dashboard usecase.DashboardService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service:   service,
		dashboard: dashboard,
		log:       log,
	}
}

// GetCurrentUser handles GET /api/user
func (h *UserHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, msgNotAuthenticated)
		return
	}

	user, err := h.service.GetCurrent(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get current user", msgServerError)
		return
	}

	utils.ResponseSuccess(w, user)
}

// GetDashboard handles GET /api/user/dashboard
func (h *UserHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	role, ok := utils.GetRoleFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, msgNotAuthenticated)
		return
	}

	target, err := h.dashboard.RouteFor(role)
	if err != nil {
		handleServiceError(w, h.log, err, "route dashboard", msgServerError)
		return
	}

	utils.ResponseSuccess(w, response.DashboardResponse{Role: role, Target: string(target)})
}
