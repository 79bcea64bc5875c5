package messaging

import (
	"clinic-dashboard/internal/app/config"
	"fmt"
	"log"

	"github.com/rabbitmq/amqp091-go"
)

// NewRabbitMQ returns nil when no RabbitMQ host is configured.
func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	if driverConfig.RabbitMQ.Host == "" {
		log.Println("RabbitMQ host is empty, AMQP event relay disabled")
		return nil
	}

	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
	conn, err := amqp091.Dial(connectionString)
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}
