package schedule

import (
	"errors"

	"institut-booking/internal/domain/catalog"
)

var (
	ErrNoServiceSelected  = errors.New("no service selected")
	ErrNoDateSelected     = errors.New("no date selected")
	ErrSlotNotGenerated   = errors.New("slot does not belong to the generated set")
	ErrSlotUnavailable    = errors.New("slot is not available")
	ErrNotReadyToConfirm  = errors.New("selection is not ready to confirm")
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
)

type SelectionState string

const (
	StateSelectingService SelectionState = "selecting_service"
	StateSelectingDate    SelectionState = "selecting_date"
	StateSelectingSlot    SelectionState = "selecting_slot"
	StateReadyToConfirm   SelectionState = "ready_to_confirm"
	StateSubmitting       SelectionState = "submitting"
	StateConfirmed        SelectionState = "confirmed"
	StateFailed           SelectionState = "failed"
)

// Selection is the booking workflow's three-step state machine:
// service -> date -> slot -> confirm. Selecting upstream again invalidates
// every downstream choice. One Selection belongs to one user session; it is
// never shared.
type Selection struct {
	state   SelectionState
	service *catalog.Service
	date    BookingDate
	slots   []TimeSlot
	slot    *TimeSlot
	failMsg string
}

func NewSelection() *Selection {
	return &Selection{state: StateSelectingService}
}

func (s *Selection) State() SelectionState     { return s.state }
func (s *Selection) Service() *catalog.Service { return s.service }
func (s *Selection) Date() BookingDate         { return s.date }
func (s *Selection) Slots() []TimeSlot         { return s.slots }
func (s *Selection) Slot() *TimeSlot           { return s.slot }
func (s *Selection) FailureMessage() string    { return s.failMsg }

// SelectService picks (or re-picks) a service and resets date and slot.
func (s *Selection) SelectService(svc *catalog.Service) {
	s.service = svc
	s.date = BookingDate{}
	s.slots = nil
	s.slot = nil
	s.failMsg = ""
	s.state = StateSelectingDate
}

// SelectDate picks a date together with its freshly generated slots and
// resets any previously selected slot.
func (s *Selection) SelectDate(date BookingDate, slots []TimeSlot) error {
	if s.service == nil {
		return ErrNoServiceSelected
	}
	s.date = date
	s.slots = slots
	s.slot = nil
	s.state = StateSelectingSlot
	return nil
}

// SelectSlot picks a slot from the generated set. An unavailable slot is
// rejected here, mirroring the disabled button at the UI boundary.
func (s *Selection) SelectSlot(id string) error {
	if s.service == nil {
		return ErrNoServiceSelected
	}
	if s.date.IsZero() {
		return ErrNoDateSelected
	}

	for i := range s.slots {
		if s.slots[i].ID != id {
			continue
		}
		if !s.slots[i].Available {
			return ErrSlotUnavailable
		}
		s.slot = &s.slots[i]
		s.state = StateReadyToConfirm
		return nil
	}
	return ErrSlotNotGenerated
}

// BeginSubmit transitions to Submitting. Calling it again before Confirm or
// Fail returns an error, enforcing at-most-one-submit-per-click.
func (s *Selection) BeginSubmit() error {
	switch s.state {
	case StateReadyToConfirm:
		s.state = StateSubmitting
		return nil
	case StateSubmitting:
		return ErrSubmissionInFlight
	default:
		return ErrNotReadyToConfirm
	}
}

func (s *Selection) Confirm() {
	s.state = StateConfirmed
}

// Fail records the retryable error. Selections are preserved so the same
// confirm action can be retried.
func (s *Selection) Fail(msg string) {
	s.failMsg = msg
	s.state = StateFailed
}

// Retry returns a failed selection to ReadyToConfirm with choices intact.
func (s *Selection) Retry() error {
	if s.state != StateFailed {
		return ErrNotReadyToConfirm
	}
	s.failMsg = ""
	s.state = StateReadyToConfirm
	return nil
}

func (s *Selection) TotalPriceCents() int {
	if s.service == nil {
		return 0
	}
	return s.service.PriceCents()
}
