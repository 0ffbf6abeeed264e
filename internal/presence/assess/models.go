package assess

import "github.com/jayvaglio/online-presence-app/internal/models"

// Input carries the assessment request.
type Input struct {
	Name string `json:"name"`
}

// Output wraps the assembled report.
type Output struct {
	Report models.PresenceReport `json:"report"`
}
