package gamedata

// EnemyRoster holds the enemy name pools loaded from enemies.json.
type EnemyRoster struct {
	Normal []string `json:"normal"` // Picked uniformly for regular floors
	Bosses []string `json:"bosses"` // Indexed by dungeon level for boss floors
}

// LoadEnemyRoster loads the enemy name pools from the embedded enemies.json file.
func LoadEnemyRoster() (EnemyRoster, error) {
	return Load[EnemyRoster]("enemies.json")
}
