package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/onegreenvn/gifting-campaign-service/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// LaunchConsumer executes launch jobs delivered through RabbitMQ
type LaunchConsumer struct {
	rabbitMQ      *RabbitMQService
	launchService *LaunchService
	queue         string
	stopChan      chan struct{}
	stopOnce      sync.Once
	wg            sync.WaitGroup
}

func NewLaunchConsumer(rabbitMQ *RabbitMQService, launchService *LaunchService, queueName string) *LaunchConsumer {
	return &LaunchConsumer{
		rabbitMQ:      rabbitMQ,
		launchService: launchService,
		queue:         queueName,
		stopChan:      make(chan struct{}),
	}
}

// Start starts consuming launch jobs
func (c *LaunchConsumer) Start() error {
	msgs, err := c.rabbitMQ.Consume(c.queue)
	if err != nil {
		return err
	}

	logrus.Infof("RabbitMQ consumer started for %s queue", c.queue)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for {
			select {
			case <-c.stopChan:
				logrus.Info("Launch consumer stopped")
				return
			case msg, ok := <-msgs:
				if !ok {
					logrus.Warn("RabbitMQ channel closed")
					return
				}
				c.handle(msg)
			}
		}
	}()

	return nil
}

// Stop stops the consumer after the job in flight finishes
func (c *LaunchConsumer) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopChan)
	})
	c.wg.Wait()
}

func (c *LaunchConsumer) handle(msg amqp.Delivery) {
	if err := c.processLaunchMessage(msg.Body); err != nil {
		logrus.Errorf("Failed to process launch message: %v", err)
		// Malformed or unknown jobs are dropped; redelivery cannot fix them
		if nackErr := msg.Nack(false, false); nackErr != nil {
			logrus.Warnf("Failed to nack launch message: %v", nackErr)
		}
		return
	}
	if err := msg.Ack(false); err != nil {
		logrus.Warnf("Failed to ack launch message: %v", err)
	}
}

func (c *LaunchConsumer) processLaunchMessage(body []byte) error {
	var job models.LaunchJob
	if err := json.Unmarshal(body, &job); err != nil {
		return fmt.Errorf("failed to unmarshal launch message: %w", err)
	}
	if job.Type != LaunchJobType {
		return fmt.Errorf("unexpected job type %q", job.Type)
	}
	if job.RunID == "" {
		return fmt.Errorf("launch message has no run id")
	}

	return c.launchService.HandleJob(context.Background(), job)
}
