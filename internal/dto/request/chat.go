package request

type ChatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
	Channel string `json:"channel" validate:"omitempty,oneof=assistant doctor"`
}
