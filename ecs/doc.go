// Package ecs bridges gallery notifications into an ECS world.
//
// [NewDonburiStore] returns a gallery.EventStore that publishes every
// activated-changed, drag-started, dragging and drag-ended notification to a
// [Donburi] world as a [GalleryEventType] event. Systems subscribe to it and
// drain the queue once per tick:
//
//	store := ecs.NewDonburiStore(world)
//	g.SetEventStore(store)
//	ecs.GalleryEventType.Subscribe(world, onGalleryEvent)
//
//	// in the system update:
//	ecs.GalleryEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
