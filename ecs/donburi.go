package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/gallery"
)

// GalleryEventType is the Donburi event type for gallery notifications.
var GalleryEventType = events.NewEventType[gallery.Event]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Events are
// queued on GalleryEventType and delivered by ProcessEvents.
func NewDonburiStore(world donburi.World) gallery.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event gallery.Event) {
	GalleryEventType.Publish(s.world, event)
}
