package bsp

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/bspdungeon/internal/rng"
	"github.com/samdwyer/bspdungeon/internal/telemetry"
	"github.com/samdwyer/bspdungeon/internal/world"
)

// Build constructs the full partition tree for a board and fills it with
// rooms and corridors. The tree pass finishes before any room is drawn.
func Build(ctx context.Context, width, height, minLeafSize int, src rng.Source) (*Leaf, []world.Room) {
	tracer := telemetry.Tracer("bsp")

	_, span := tracer.Start(ctx, "bsp.partition")
	root := NewLeaf(0, 0, width, height, minLeafSize)
	root.Generate(src)
	leaves := 0
	root.Walk(func(l *Leaf) {
		if l.IsLeaf() {
			leaves++
		}
	})
	span.SetAttributes(attribute.Int("bsp.leaves", leaves))
	span.End()

	_, span = tracer.Start(ctx, "bsp.rooms")
	rooms := root.CreateRooms(src, nil)
	span.SetAttributes(attribute.Int("bsp.rooms", len(rooms)))
	span.End()

	return root, rooms
}

// Generate creates a level of the given size and stamps every room and
// corridor of a freshly built tree into it.
func Generate(ctx context.Context, width, height, minLeafSize int, hash string, src rng.Source) *world.Level {
	_, rooms := Build(ctx, width, height, minLeafSize, src)

	lvl := world.NewLevel(width, height, hash)
	for _, room := range rooms {
		lvl.AddRoom(room)
	}
	return lvl
}
