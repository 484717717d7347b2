package store

import "roadmap-cli/internal/model"

// GroupColors is the fixed swatch palette new groups draw from.
var GroupColors = []string{
	"#6366f1", // indigo
	"#8b5cf6", // violet
	"#3b82f6", // blue
	"#06b6d4", // cyan
	"#10b981", // emerald
	"#f59e0b", // amber
	"#ef4444", // red
	"#ec4899", // pink
	"#f97316", // orange
	"#14b8a6", // teal
}

var seedPeople = []model.Person{
	{ID: "p1", Name: "Alice Martin", Color: "#6366f1"},
	{ID: "p2", Name: "Bob Chen", Color: "#8b5cf6"},
	{ID: "p3", Name: "Clara Dupont", Color: "#3b82f6"},
	{ID: "p4", Name: "David Kim", Color: "#06b6d4"},
	{ID: "p5", Name: "Emma Wilson", Color: "#10b981"},
	{ID: "p6", Name: "Félix Roy", Color: "#f59e0b"},
	{ID: "p7", Name: "Grace Liu", Color: "#ef4444"},
	{ID: "p8", Name: "Hugo Blanc", Color: "#ec4899"},
	{ID: "p9", Name: "Inès Moreau", Color: "#f97316"},
	{ID: "p10", Name: "James Park", Color: "#14b8a6"},
}

// SeedState is the dataset written when the persisted document is missing or
// structurally invalid: an empty roadmap plus the placeholder people pool.
func SeedState() *model.State {
	people := make([]model.Person, len(seedPeople))
	copy(people, seedPeople)
	return &model.State{
		Groups: []model.Group{},
		Items:  []model.Item{},
		People: people,
	}
}
