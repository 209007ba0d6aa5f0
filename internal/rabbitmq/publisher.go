package rabbitmq

import (
	"github.com/streadway/amqp"

	librabbitmq "github.com/magabrotheeeer/document-manager/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/document-manager/internal/models"
)

// Publisher отправляет события о регистрации в exchange "notifications".
type Publisher struct {
	ch *amqp.Channel
}

// NewPublisher создает новый экземпляр Publisher.
func NewPublisher(ch *amqp.Channel) *Publisher {
	return &Publisher{ch: ch}
}

// PublishRegistered публикует событие о регистрации нового пользователя.
func (p *Publisher) PublishRegistered(info models.RegisteredInfo) error {
	return librabbitmq.PublishMessage(p.ch, "notifications", "registered", info)
}
