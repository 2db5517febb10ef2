package response

type ChatResponse struct {
	Reply     string `json:"reply"`
	Channel   string `json:"channel"`
	Emergency bool   `json:"emergency"`
}
