// Package ecs provides ECS adapters for partsrun's tag events.
//
// The primary adapter is [NewDonburiSink], which publishes every tagged part
// into a [Donburi] world as a typed event. Subscribe to [TagEventType] in
// your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	game.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
