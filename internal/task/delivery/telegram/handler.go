package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/query"
	"smart-scheduler/internal/task"
	pkgResponse "smart-scheduler/pkg/response"
	pkgTelegram "smart-scheduler/pkg/telegram"
)

const (
	startReply = "Welcome to Smart Scheduler!\n\n" +
		"Send me a task in plain English and I'll capture it:\n" +
		"\"schedule team meeting tomorrow at 2pm\"\n" +
		"\"remind me to call John at 3pm\"\n\n" +
		"Ask questions too: \"am I free tomorrow?\" or \"what's on my calendar this week?\"\n" +
		"Mark things done with: done <task>"

	helpReply = "How to use:\n\n" +
		"- Create: \"dentist appointment friday at 10am\"\n" +
		"- Ask: \"any conflicts today?\", \"find a time for a 30 minute call\"\n" +
		"- Complete: \"done dentist\"\n" +
		"- List: \"show my tasks for today\""

	failureReply = "Something went wrong while handling your message. Please try again."
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine so slow downstream work never trips Telegram's
// webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.From == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	go func() {
		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, failureReply)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	switch text {
	case "/start":
		return h.bot.SendMessage(msg.Chat.ID, startReply)
	case "/help":
		return h.bot.SendMessage(msg.Chat.ID, helpReply)
	}

	sc := model.Scope{
		OwnerID:  fmt.Sprintf("telegram_%d", msg.From.ID),
		Username: msg.From.Username,
	}

	if rest, ok := completionText(text); ok {
		out, err := h.uc.Complete(ctx, sc, task.CompleteInput{Identifier: rest})
		if err != nil {
			h.l.Warnf(ctx, "telegram handler: Complete failed: %v", err)
			return h.bot.SendMessage(msg.Chat.ID, fmt.Sprintf("Couldn't find a task matching %q.", rest))
		}
		reply := out.Message
		if out.Next != nil && out.Next.DueDate != nil {
			reply += fmt.Sprintf("\nNext occurrence scheduled for %s.", out.Next.DueDate.Format("Monday, Jan 2"))
		}
		return h.bot.SendMessage(msg.Chat.ID, reply)
	}

	if isQuery(text) {
		out, err := h.queryUC.Process(ctx, sc, query.ProcessInput{Text: text})
		if err != nil {
			return err
		}
		return h.bot.SendMessage(msg.Chat.ID, out.Message)
	}

	out, err := h.uc.CreateFromText(ctx, sc, task.CreateFromTextInput{
		Text:    text,
		Channel: model.ChannelTelegram,
	})
	if err != nil {
		return err
	}

	reply := out.Message
	if len(out.Conflicts) > 0 {
		reply += fmt.Sprintf("\nHeads up: this overlaps %d existing item(s).", len(out.Conflicts))
	}
	return h.bot.SendMessage(msg.Chat.ID, reply)
}

// completionText strips a completion verb prefix, returning the remainder
// used to resolve the task.
func completionText(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, prefix := range []string{"done ", "complete ", "finished ", "completed "} {
		if strings.HasPrefix(lower, prefix) {
			return strings.TrimSpace(text[len(prefix):]), true
		}
	}
	return "", false
}

// queryVerbs mark messages that ask about the schedule rather than add to it.
var queryVerbs = []string{
	"what", "when", "where", "how many", "am i", "do i have",
	"show", "list my", "any ", "find a time", "find time", "is there",
}

func isQuery(text string) bool {
	if strings.HasSuffix(text, "?") {
		return true
	}
	lower := strings.ToLower(text)
	for _, verb := range queryVerbs {
		if strings.HasPrefix(lower, verb) {
			return true
		}
	}
	return false
}
