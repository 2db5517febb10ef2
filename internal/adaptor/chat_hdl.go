package adaptor

import (
	"net/http"

	"telehealth-portal/internal/dto/request"
	"telehealth-portal/internal/usecase"
	"telehealth-portal/pkg/utils"

	"go.uber.org/zap"
)

type ChatHandler struct {
	service usecase.ChatService
	log     *zap.Logger
}

func NewChatHandler(service usecase.ChatService, log *zap.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		log:     log,
	}
}

// Reply handles POST /api/chat
func (h *ChatHandler) Reply(w http.ResponseWriter, r *http.Request) {
	var req request.ChatRequest

	r.Body = http.MaxBytesReader(w, r.Body, 16<<10)

	if err := decodeBody(r, &req); err != nil {
		utils.ResponseBadRequest(w, msgInvalidBody, nil)
		return
	}

	resp, err := h.service.Reply(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "chat", msgServerError)
		return
	}

	utils.ResponseSuccess(w, resp)
}
