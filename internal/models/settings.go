package models

// Settings are the persisted UI preferences.
type Settings struct {
	Theme     string `json:"theme"`
	GroupMode string `json:"group_mode"`
	SortMode  string `json:"sort_mode"`
}
