package usecase

import (
	"context"
	"sync"
	"testing"

	"telehealth-portal/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestChat() *chatService {
	svc := NewChatService(zap.NewNop()).(*chatService)
	svc.pick = func(int) int { return 0 }
	return svc
}

func TestChatService_Assistant(t *testing.T) {
	svc := newTestChat()

	tests := []struct {
		name      string
		message   string
		want      string
		emergency bool
	}{
		{name: "topic", message: "I have a FEVER", want: assistantTopics[3].answers[0]},
		{name: "substring", message: "my headaches are back", want: assistantTopics[2].answers[0]},
		{name: "table order wins", message: "pain and other symptoms", want: assistantTopics[0].answers[0]},
		{name: "emergency beats topics", message: "severe headache, is this a stroke?", want: emergencyReply, emergency: true},
		{name: "multi-word emergency", message: "I have chest pain", want: emergencyReply, emergency: true},
		{name: "fallback", message: "hello there", want: assistantReply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Reply(context.Background(), &request.ChatRequest{Message: tt.message})
			require.NoError(t, err)
			assert.Equal(t, ChannelAssistant, resp.Channel)
			assert.Equal(t, tt.want, resp.Reply)
			assert.Equal(t, tt.emergency, resp.Emergency)
		})
	}
}

func TestChatService_Doctor(t *testing.T) {
	svc := newTestChat()

	tests := []struct {
		message string
		want    string
	}{
		{message: "Thanks, I have pain", want: "You're welcome! Is there anything else?"},
		{message: "Need an appointment for my pain", want: "I can help schedule an appointment. Which day works for you?"},
		{message: "Some pain in my knee", want: "Sorry to hear that. Where is the pain located?"},
		{message: "I feel odd", want: doctorReply},
	}

	for _, tt := range tests {
		resp, err := svc.Reply(context.Background(), &request.ChatRequest{Message: tt.message, Channel: ChannelDoctor})
		require.NoError(t, err)
		assert.Equal(t, ChannelDoctor, resp.Channel)
		assert.Equal(t, tt.want, resp.Reply, tt.message)
		assert.False(t, resp.Emergency)
	}
}

func TestChatService_PicksAmongAnswers(t *testing.T) {
	svc := newTestChat()
	svc.pick = func(n int) int { return n - 1 }

	resp, err := svc.Reply(context.Background(), &request.ChatRequest{Message: "sleep"})
	require.NoError(t, err)
	assert.Equal(t, assistantTopics[9].answers[1], resp.Reply)
}

func TestChatService_Validation(t *testing.T) {
	svc := newTestChat()

	tests := []struct {
		req  request.ChatRequest
		want string
	}{
		{req: request.ChatRequest{Message: "   "}, want: "Message cannot be empty"},
		{req: request.ChatRequest{Message: "hi", Channel: "nurse"}, want: "Invalid chat request"},
	}

	for _, tt := range tests {
		_, err := svc.Reply(context.Background(), &tt.req)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, tt.want, vErr.Message)
	}
}

func TestChatService_ConcurrentReplies(t *testing.T) {
	svc := newTestChat()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := svc.Reply(context.Background(), &request.ChatRequest{Message: "tips on diet"})
			assert.NoError(t, err)
			assert.Equal(t, assistantTopics[7].answers[0], resp.Reply)
		}()
	}
	wg.Wait()
}
