package usecase

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"

	"telehealth-portal/internal/dto/request"
	"telehealth-portal/internal/dto/response"
	"telehealth-portal/pkg/utils"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
	"go.uber.org/zap"
)

const (
	ChannelAssistant = "assistant"
	ChannelDoctor    = "doctor"

	emergencyReply = "If this is a medical emergency, please call your local emergency number immediately! Do not rely on AI assistance for emergency situations."
	assistantReply = "I understand your concern. Can you tell me more about that?"
	doctorReply    = "Can you tell me more about your symptoms?"
)

type ChatService interface {
	Reply(ctx context.Context, req *request.ChatRequest) (*response.ChatResponse, error)
}

// topic is one row of a canned-answer table. Rows earlier in a table win
// when a message mentions several keywords.
type topic struct {
	keyword   string
	emergency bool
	answers   []string
}

var emergencyKeywords = []string{
	"emergency", "911", "urgent", "dying", "heart attack", "stroke",
	"chest pain", "bleeding", "unconscious", "can't breathe", "choking",
}

var assistantTopics = []topic{
	{keyword: "symptom", answers: []string{
		"Symptoms can vary widely depending on the condition. It's important to track when your symptoms started, what makes them better or worse, and any other details that might help a healthcare provider understand what's happening.",
		"I can provide general information about symptoms, but remember that only a healthcare professional can properly diagnose medical conditions based on symptoms.",
	}},
	{keyword: "pain", answers: []string{
		"Pain is your body's way of signaling that something might be wrong. The location, type, and duration of pain can help identify its cause.",
		"For persistent or severe pain, it's important to consult with a healthcare provider to determine the cause and appropriate treatment.",
	}},
	{keyword: "headache", answers: []string{
		"Headaches can have many causes including tension, dehydration, or more serious conditions. Most headaches are not serious, but if you have a sudden severe headache or one accompanied by other symptoms like vision changes, it's important to seek medical attention.",
		"Staying hydrated, managing stress, and maintaining good posture can help prevent some types of headaches.",
	}},
	{keyword: "fever", answers: []string{
		"A fever is usually a sign that your body is fighting an infection. Most fevers aren't dangerous, but very high fevers or fevers in infants require medical attention.",
		"Stay hydrated and rest if you have a fever. Contact a doctor if your fever is very high, doesn't improve with medication, or lasts more than a few days.",
	}},
	{keyword: "blood pressure", answers: []string{
		"Blood pressure measures the force of blood against your artery walls. Normal blood pressure is typically around 120/80 mmHg.",
		"Lifestyle changes like reducing salt intake, regular exercise, and maintaining a healthy weight can help manage blood pressure.",
	}},
	{keyword: "diabetes", answers: []string{
		"Diabetes is a condition where the body has trouble regulating blood sugar. There are different types with different management approaches.",
		"Managing diabetes typically involves monitoring blood sugar, medication if prescribed, healthy eating, and regular physical activity.",
	}},
	{keyword: "exercise", answers: []string{
		"Regular exercise has many health benefits including improved cardiovascular health, better mood, and weight management.",
		"Most adults should aim for at least 150 minutes of moderate-intensity exercise per week, but it's important to start slowly if you're new to exercise.",
	}},
	{keyword: "diet", answers: []string{
		"A balanced diet with plenty of fruits, vegetables, whole grains, and lean proteins supports overall health.",
		"The Mediterranean diet is often recommended for its heart health benefits, but the best diet is one that you can maintain long-term and meets your nutritional needs.",
	}},
	{keyword: "medication", answers: []string{
		"It's important to take medications as prescribed by your healthcare provider and to be aware of potential side effects.",
		"Never stop taking prescription medication without consulting your doctor, even if you're feeling better.",
	}},
	{keyword: "sleep", answers: []string{
		"Most adults need 7-9 hours of sleep per night for optimal health. Poor sleep can affect both physical and mental health.",
		"Good sleep hygiene includes maintaining a consistent sleep schedule, creating a restful environment, and avoiding screens before bedtime.",
	}},
	{keyword: "stress", answers: []string{
		"Some stress is normal, but chronic stress can negatively impact your health. Finding healthy coping mechanisms is important.",
		"Techniques like deep breathing, meditation, and regular physical activity can help manage stress levels.",
	}},
}

var doctorTopics = []topic{
	{keyword: "thank", answers: []string{"You're welcome! Is there anything else?"}},
	{keyword: "appointment", answers: []string{"I can help schedule an appointment. Which day works for you?"}},
	{keyword: "pain", answers: []string{"Sorry to hear that. Where is the pain located?"}},
}

// responder matches a message against one topic table. The automaton is
// shared by all requests, so searches are serialized.
type responder struct {
	mu       sync.Mutex
	matcher  ahocorasick.AhoCorasick
	topics   []topic
	fallback string
}

func newResponder(topics []topic, fallback string) *responder {
	patterns := make([]string, len(topics))
	for i, t := range topics {
		patterns[i] = t.keyword
	}

	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: true,
		MatchOnlyWholeWords:  false,
		MatchKind:            ahocorasick.LeftMostLongestMatch,
		DFA:                  true,
	})

	return &responder{
		matcher:  builder.Build(patterns),
		topics:   topics,
		fallback: fallback,
	}
}

// match returns the highest-priority topic mentioned in message.
func (r *responder) match(message string) (topic, bool) {
	r.mu.Lock()
	matches := r.matcher.FindAll(message)
	r.mu.Unlock()

	best := -1
	for _, m := range matches {
		if best == -1 || m.Pattern() < best {
			best = m.Pattern()
		}
	}
	if best == -1 {
		return topic{}, false
	}
	return r.topics[best], true
}

type chatService struct {
	assistant *responder
	doctor    *responder
	pick      func(n int) int
	log       *zap.Logger
}

func NewChatService(log *zap.Logger) ChatService {
	// emergency keywords go first so they outrank every topic
	table := make([]topic, 0, len(emergencyKeywords)+len(assistantTopics))
	for _, kw := range emergencyKeywords {
		table = append(table, topic{keyword: kw, emergency: true, answers: []string{emergencyReply}})
	}
	table = append(table, assistantTopics...)

	return &chatService{
		assistant: newResponder(table, assistantReply),
		doctor:    newResponder(doctorTopics, doctorReply),
		pick:      rand.IntN,
		log:       log,
	}
}

func (s *chatService) Reply(_ context.Context, req *request.ChatRequest) (*response.ChatResponse, error) {
	req.Message = strings.TrimSpace(req.Message)
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		msg := "Invalid chat request"
		if errs.Missing() {
			msg = "Message cannot be empty"
		}
		return nil, &ValidationError{Message: msg, Fields: errs}
	}

	channel := req.Channel
	if channel == "" {
		channel = ChannelAssistant
	}

	r := s.assistant
	if channel == ChannelDoctor {
		r = s.doctor
	}

	resp := &response.ChatResponse{Reply: r.fallback, Channel: channel}
	if t, ok := r.match(req.Message); ok {
		resp.Reply = t.answers[s.pick(len(t.answers))]
		resp.Emergency = t.emergency
	}

	if resp.Emergency {
		s.log.Warn("Emergency keyword in chat message", zap.String("channel", channel))
	}

	return resp, nil
}
