package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/streadway/amqp"

	"github.com/vikalpis/scroll-app/models"
)

// EventQueue carries catalog events for downstream consumers.
const EventQueue = "video_events"

// Broker publishes catalog events to RabbitMQ.
type Broker struct {
	conn    *amqp.Connection
	Channel *amqp.Channel
}

func NewBroker(url string) (*Broker, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if _, err := ch.QueueDeclare(EventQueue, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, err
	}
	log.Info().Str("queue", EventQueue).Msg("rabbitmq connected")
	return &Broker{conn: conn, Channel: ch}, nil
}

type videoCreatedEvent struct {
	Event     string    `json:"event"`
	VideoID   int64     `json:"video_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// PublishVideoCreated emits a video.created event. Delivery is
// best-effort; the caller decides whether a failure matters.
func (b *Broker) PublishVideoCreated(ctx context.Context, video *models.Video) error {
	body, err := json.Marshal(videoCreatedEvent{
		Event:     "video.created",
		VideoID:   video.ID,
		Title:     video.Title,
		CreatedAt: video.CreatedAt,
	})
	if err != nil {
		return err
	}
	return b.Channel.Publish("", EventQueue, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}

func (b *Broker) Close() {
	if b.Channel != nil {
		b.Channel.Close()
	}
	if b.conn != nil {
		b.conn.Close()
	}
}
