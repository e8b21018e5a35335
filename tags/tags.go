package tags

import "github.com/yohamta/donburi"

var (
	Scorpion   = donburi.NewTag().SetName("Scorpion")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for the boss sensor space
const (
	ResolvOpponent = "opponent"
	ResolvRegion   = "region"
)
