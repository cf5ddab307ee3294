// FILE: internal/service/publisher_service.go
package service

import (
	"context"
	"encoding/json"
	"time"

	"idea-garden-be/internal/dto"
	"idea-garden-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IPublisherService interface {
	PublishIdeaActivity(ctx context.Context, event events.Event) error
}

type publisherService struct {
	pubSub    *gochannel.GoChannel
	topicName string
}

func NewPublisherService(pubSub *gochannel.GoChannel, topicName string) IPublisherService {
	return &publisherService{
		pubSub:    pubSub,
		topicName: topicName,
	}
}

func (s *publisherService) PublishIdeaActivity(_ context.Context, event events.Event) error {
	payload, err := json.Marshal(dto.PublishIdeaActivityMessage{
		EventType:  event.EventType(),
		Data:       event.Payload(),
		OccurredAt: event.Timestamp().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	msg := message.NewMessage(uuid.NewString(), payload)
	return s.pubSub.Publish(s.topicName, msg)
}
