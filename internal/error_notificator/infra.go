package error_notificator

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Infra struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewInfra(bot *tgbotapi.BotAPI, chatID int64) *Infra {
	return &Infra{bot: bot, chatID: chatID}
}

func (i *Infra) Notify(ctx context.Context, component string, err error, details string) error {
	text := fmt.Sprintf(
		"❗ EchoMind: сбой интеграции (%s)\n\nОшибка: %v\n\nДетали: %s",
		component,
		err,
		details,
	)

	if _, sendErr := i.bot.Send(tgbotapi.NewMessage(i.chatID, text)); sendErr != nil {
		return fmt.Errorf("[error_notificator] send fail: %w", sendErr)
	}
	return nil
}
