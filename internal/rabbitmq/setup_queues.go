package rabbitmq

type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "notifications.registered", RoutingKey: "registered"},
		// при необходимости дополнительные очереди для других воркеров
	}
}
