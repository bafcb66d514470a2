package components

import "github.com/yohamta/donburi"

// ProfileData is the persisted player profile.
type ProfileData struct {
	Name               string `json:"name"`
	CurrentLevel       int    `json:"currentLevel"`
	DeathsTotal        int    `json:"deathsTotal"`
	DeathsCurrentLevel int    `json:"deathsCurrentLevel"`
	Muted              bool   `json:"muted"`
}

// Highscore is one finished level run.
type Highscore struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Level  int    `json:"level"`
	Deaths int    `json:"deaths"`
}

var Profile = donburi.NewComponentType[ProfileData]()
