// path: controllers/controllers.go
package controllers

import (
	"log"

	"lostid/reports"
	"lostid/store"
)

// API bundles the handler dependencies; routes wires its methods to paths.
type API struct {
	Submitter *reports.Submitter
	Reports   store.ReportStore
	Users     store.UserStore
	Log       *log.Logger
}
