package assistant

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"

	"github.com/yuin/goldmark"
)

// 回复来源
const (
	SourceModel    = "model"
	SourceFallback = "fallback"
)

var errEmptyReply = errors.New("empty reply")

const defaultReply = "I'm here to help with health-related questions. Could you provide more details about what you'd like to know?"

type phrase struct {
	keyword string
	reply   string
}

// 关键字按顺序匹配，命中第一个即返回
var fallbackPhrases = []phrase{
	{"medication", "It's essential to take your medications as prescribed. If you're experiencing side effects, please consult with your doctor before making any changes."},
	{"pain", "For minor pain, you might try a warm compress or gentle stretching. If pain persists, please consult with your healthcare provider."},
	{"sleep", "Establishing a regular sleep schedule can help improve sleep quality. Try avoiding screens before bedtime and create a comfortable sleep environment."},
	{"hello", "Hello! How are you feeling today? Is there something specific I can help you with?"},
	{"hi", "Hi there! How can I assist you with your health needs today?"},
	{"appointment", "I can help you schedule an appointment with your doctor. Would you like me to do that for you?"},
	{"medicine", "Regular medication intake is crucial for managing chronic conditions. Is there a specific medication you'd like to know more about?"},
	{"exercise", "Regular exercise is beneficial for seniors. Even light activities like walking or gentle stretching can improve mobility and overall health."},
	{"diet", "A balanced diet rich in fruits, vegetables, and whole grains is essential for maintaining good health in older adults."},
	{"memory", "Memory exercises and staying mentally active can help maintain cognitive function. Activities like puzzles, reading, or learning new skills are great options."},
}

// Fallback returns the canned reply for the first phrase-table keyword contained in message.
func Fallback(message string) string {
	lower := strings.ToLower(message)
	for _, p := range fallbackPhrases {
		if strings.Contains(lower, p.keyword) {
			return p.reply
		}
	}
	return defaultReply
}

type Reply struct {
	Text   string `json:"response"`
	HTML   string `json:"response_html"`
	Source string `json:"source"`
}

// Assistant answers chat messages, falling back to the phrase table when the provider fails.
type Assistant struct {
	provider Provider
	md       goldmark.Markdown
}

func New(provider Provider) *Assistant {
	return &Assistant{provider: provider, md: goldmark.New()}
}

// Respond always produces a reply; provider failures are logged and answered offline.
func (a *Assistant) Respond(ctx context.Context, message string) Reply {
	text, err := a.provider.Complete(ctx, message)
	source := SourceModel
	if err == nil && strings.TrimSpace(text) == "" {
		err = errEmptyReply
	}
	if err != nil {
		log.Printf("[WARN] assistant provider unavailable, using fallback: %v", err)
		text = Fallback(message)
		source = SourceFallback
	}
	return Reply{Text: text, HTML: a.render(text), Source: source}
}

func (a *Assistant) render(text string) string {
	var buf bytes.Buffer
	if err := a.md.Convert([]byte(text), &buf); err != nil {
		return ""
	}
	return buf.String()
}
