package models

import "time"

// Attributes holds the five per-swing scores, each in [0,100].
type Attributes struct {
	Power       int `json:"power"`
	Accuracy    int `json:"accuracy"`
	Consistency int `json:"consistency"`
	Balance     int `json:"balance"`
	Style       int `json:"style"`
}

type Swing struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	VideoPath  string    `db:"video_path"`
	Processed  bool      `db:"processed"`
	StyleLabel string    `db:"style_label"`
	CreatedAt  time.Time `db:"created_at"`
}
