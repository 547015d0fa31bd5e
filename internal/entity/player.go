package entity

type Player struct {
	ID       string `json:"id"`
	Number   int    `json:"number"`
	Mark     string `json:"mark,omitempty"`
	GameID   string `json:"game_id,omitempty"`
	Provider string `json:"provider,omitempty"`
}
