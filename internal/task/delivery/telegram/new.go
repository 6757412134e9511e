package telegram

import (
	"github.com/gin-gonic/gin"

	"smart-scheduler/internal/query"
	"smart-scheduler/internal/task"
	pkgLog "smart-scheduler/pkg/log"
	pkgTelegram "smart-scheduler/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// sender is the part of the bot client the handler needs.
type sender interface {
	SendMessage(chatID int64, text string) error
}

type handler struct {
	l       pkgLog.Logger
	uc      task.UseCase
	queryUC query.UseCase
	bot     sender
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc task.UseCase, queryUC query.UseCase, bot *pkgTelegram.Bot) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		queryUC: queryUC,
		bot:     bot,
	}
}
