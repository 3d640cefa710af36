package form

import "carpark-finder/internal/model"

// Status names the variant a State holds.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// State is the view-state of a form: exactly one of Idle, Pending, Succeeded
// or Failed. A result and an error message can never be present together.
type State interface {
	Status() Status
	isState()
}

// Idle is the state before the first submission and after teardown.
type Idle struct{}

// Pending means a lookup is outstanding.
type Pending struct {
	Postcode string
}

// Succeeded carries the nearest carpark returned by the backend.
type Succeeded struct {
	Result model.CarparkResult
}

// Failed carries the message shown to the user.
type Failed struct {
	Message string
}

func (Idle) Status() Status      { return StatusIdle }
func (Pending) Status() Status   { return StatusPending }
func (Succeeded) Status() Status { return StatusSucceeded }
func (Failed) Status() Status    { return StatusFailed }

func (Idle) isState()      {}
func (Pending) isState()   {}
func (Succeeded) isState() {}
func (Failed) isState()    {}
