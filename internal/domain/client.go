package domain

import "time"

// Client is a customer that task records are logged against.
type Client struct {
	ID           string
	Code         string
	Name         string
	ClientTypeID *string
	Active       bool
	Disabled     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Enabled reports whether the client may receive new task records.
func (c *Client) Enabled() bool {
	return c.Active && !c.Disabled
}
