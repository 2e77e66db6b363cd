// Package handlers contains the REST handlers. They validate request shape,
// delegate to the entity store and broadcast change events on mutations; no
// business state lives here.
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/saieswarnookala/project-X/internal/hub"
)

// Broadcaster pushes a change event to every connected client except the
// excluded user (0 excludes nobody). Satisfied by *hub.Hub; tests substitute
// a recorder.
type Broadcaster interface {
	Broadcast(event hub.Event, excludeUserID int)
}

// pathID parses the named path parameter as an integer id. A non-numeric
// value reports false; callers answer it as not-found, since no entity can
// ever match it.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, false
	}
	return id, true
}
