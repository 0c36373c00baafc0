// Package notify shows desktop notifications for lifecycle events.
package notify

import (
	"log"

	"github.com/gen2brain/beeep"
)

const appTitle = "VKToggle"

// Send shows a desktop notification. Failures are logged and swallowed;
// notifications are informational only.
func Send(message string) {
	if err := beeep.Notify(appTitle, message, ""); err != nil {
		log.Printf("Notify: %v", err)
	}
}
