package ecs

import (
	"github.com/phanxgames/partsrun"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TagEventType is the Donburi event type for partsrun tag events.
var TagEventType = events.NewEventType[partsrun.TagEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Tag events are published to TagEventType and delivered when the world's
// events are processed.
func NewDonburiSink(world donburi.World) partsrun.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitTag(event partsrun.TagEvent) {
	TagEventType.Publish(s.world, event)
}
