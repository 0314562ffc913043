// Package world holds the grid, the entity registries, and the item
// lifecycle invariants shared by every other package in this module.
//
// A Grid is a fixed W×H board. Obstacles, pickup stations and delivery
// stations are placed once at construction and never move; agents move
// every tick. A single cell may contain several board objects at once —
// this environment does not model agent-agent collisions, and an agent
// may freely stand on a station or alongside another agent.
//
// Every entity in a run is addressed two ways: a process-wide unique
// identity (Item/Agent use a uuid.UUID-backed id) and a 1-based,
// config-order station index (PickupStation/DeliveryStation ids), which
// is what the config format and the CLI analytics address by.
package world
