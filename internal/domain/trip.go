package domain

import "time"

// Trip is a saved shop-crawl: a named snapshot of the shop list that can be
// reloaded into the planner later.
type Trip struct {
	ID        string        `json:"id" db:"id"`
	Name      string        `json:"name" db:"name"`
	Shops     []ShopToVisit `json:"shops"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
}
