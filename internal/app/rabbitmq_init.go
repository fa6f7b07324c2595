package app

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/kitchen/internal/messaging/rabbitmq"
)

// initRabbitPublisher подключается к RabbitMQ. Пустой url отключает брокер.
func initRabbitPublisher(url, exchange string, logger *log.Entry) (*rabbitmq.Publisher, error) {
	if url == "" {
		return nil, nil
	}

	publisher, err := rabbitmq.Dial(url, exchange, logger.WithField("layer", "rabbitmq"))
	if err != nil {
		logger.WithError(err).Warn("failed to connect to rabbitmq, continuing without broker")
		return nil, err
	}

	logger.WithField("exchange", exchange).Info("rabbitmq publisher initialized")
	return publisher, nil
}

func closeRabbit(publisher *rabbitmq.Publisher, logger *log.Entry) {
	if publisher == nil {
		return
	}
	if err := publisher.Close(); err != nil {
		logger.WithError(err).Warn("failed to close rabbitmq publisher")
	} else {
		logger.Info("rabbitmq publisher closed")
	}
}
