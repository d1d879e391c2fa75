package entity

import "fmt"

// TransitionAction names the operation that was attempted
type TransitionAction string

const (
	ActionAccept TransitionAction = "ACCEPT"
	ActionReject TransitionAction = "REJECT"
	ActionCancel TransitionAction = "CANCEL"
)

// TransitionOutcome classifies the result of a transition attempt
type TransitionOutcome int

const (
	OutcomeApplied TransitionOutcome = iota
	OutcomeUnauthorized
	OutcomeInvalidTransition
	OutcomeAlreadyInState
)

func (o TransitionOutcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeUnauthorized:
		return "unauthorized"
	case OutcomeInvalidTransition:
		return "invalid_transition"
	case OutcomeAlreadyInState:
		return "already_in_state"
	}
	return "unknown"
}

// Transition reports what a state machine call did. From and To are equal
// unless the outcome is OutcomeApplied.
type Transition struct {
	AppointmentID string
	Action        TransitionAction
	Actor         string
	From          AppointmentStatus
	To            AppointmentStatus
	Outcome       TransitionOutcome
	Reason        string
}

// Applied reports whether the status changed
func (t Transition) Applied() bool {
	return t.Outcome == OutcomeApplied
}

// Err maps a declined outcome onto its sentinel error; nil when applied.
func (t Transition) Err() error {
	switch t.Outcome {
	case OutcomeApplied:
		return nil
	case OutcomeUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, t.Reason)
	case OutcomeAlreadyInState:
		return fmt.Errorf("%w: %s", ErrAlreadyInState, t.Reason)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidState, t.Reason)
	}
}

// appointmentState is sealed: the variants below are the only implementations,
// one per AppointmentStatus.
type appointmentState interface {
	status() AppointmentStatus
	accept(a *Appointment, actorDoctorID string) Transition
	reject(a *Appointment, actorDoctorID string) Transition
	cancel(a *Appointment, actorID string) Transition
}

type (
	pendingApprovalState  struct{}
	acceptedState         struct{}
	rejectedState         struct{}
	cancelledByStaffState struct{}
	completedState        struct{}
)

func stateFor(status AppointmentStatus) (appointmentState, bool) {
	switch status {
	case AppointmentStatusPendingApproval:
		return pendingApprovalState{}, true
	case AppointmentStatusAccepted:
		return acceptedState{}, true
	case AppointmentStatusRejected:
		return rejectedState{}, true
	case AppointmentStatusCancelledByStaff:
		return cancelledByStaffState{}, true
	case AppointmentStatusCompleted:
		return completedState{}, true
	}
	return nil, false
}

func moveTo(a *Appointment, action TransitionAction, actor string, next appointmentState, reason string) Transition {
	from := a.Status()
	a.state = next
	return Transition{
		AppointmentID: a.ID,
		Action:        action,
		Actor:         actor,
		From:          from,
		To:            next.status(),
		Outcome:       OutcomeApplied,
		Reason:        reason,
	}
}

func decline(a *Appointment, action TransitionAction, actor string, outcome TransitionOutcome, reason string) Transition {
	status := a.Status()
	return Transition{
		AppointmentID: a.ID,
		Action:        action,
		Actor:         actor,
		From:          status,
		To:            status,
		Outcome:       outcome,
		Reason:        reason,
	}
}

// PENDING_APPROVAL

func (pendingApprovalState) status() AppointmentStatus { return AppointmentStatusPendingApproval }

func (pendingApprovalState) accept(a *Appointment, actorDoctorID string) Transition {
	if a.DoctorID != actorDoctorID {
		return decline(a, ActionAccept, actorDoctorID, OutcomeUnauthorized,
			fmt.Sprintf("doctor %s not authorized to accept appointment %s (assigned to %s)", actorDoctorID, a.ID, a.DoctorID))
	}
	return moveTo(a, ActionAccept, actorDoctorID, acceptedState{},
		fmt.Sprintf("appointment %s accepted by doctor %s", a.ID, actorDoctorID))
}

func (pendingApprovalState) reject(a *Appointment, actorDoctorID string) Transition {
	if a.DoctorID != actorDoctorID {
		return decline(a, ActionReject, actorDoctorID, OutcomeUnauthorized,
			fmt.Sprintf("doctor %s not authorized to reject appointment %s (assigned to %s)", actorDoctorID, a.ID, a.DoctorID))
	}
	return moveTo(a, ActionReject, actorDoctorID, rejectedState{},
		fmt.Sprintf("appointment %s rejected by doctor %s", a.ID, actorDoctorID))
}

func (pendingApprovalState) cancel(a *Appointment, actorID string) Transition {
	return moveTo(a, ActionCancel, actorID, cancelledByStaffState{},
		fmt.Sprintf("appointment %s cancelled by %s while pending", a.ID, actorID))
}

// ACCEPTED

func (acceptedState) status() AppointmentStatus { return AppointmentStatusAccepted }

func (acceptedState) accept(a *Appointment, actorDoctorID string) Transition {
	return decline(a, ActionAccept, actorDoctorID, OutcomeAlreadyInState,
		fmt.Sprintf("appointment %s is already accepted", a.ID))
}

func (acceptedState) reject(a *Appointment, actorDoctorID string) Transition {
	return decline(a, ActionReject, actorDoctorID, OutcomeInvalidTransition,
		fmt.Sprintf("appointment %s is already accepted and cannot be rejected; staff may cancel it", a.ID))
}

func (acceptedState) cancel(a *Appointment, actorID string) Transition {
	return moveTo(a, ActionCancel, actorID, cancelledByStaffState{},
		fmt.Sprintf("appointment %s cancelled by %s after acceptance", a.ID, actorID))
}

// REJECTED

func (rejectedState) status() AppointmentStatus { return AppointmentStatusRejected }

func (rejectedState) accept(a *Appointment, actorDoctorID string) Transition {
	return decline(a, ActionAccept, actorDoctorID, OutcomeInvalidTransition,
		fmt.Sprintf("appointment %s was rejected and cannot be accepted", a.ID))
}

func (rejectedState) reject(a *Appointment, actorDoctorID string) Transition {
	return decline(a, ActionReject, actorDoctorID, OutcomeAlreadyInState,
		fmt.Sprintf("appointment %s is already rejected", a.ID))
}

func (rejectedState) cancel(a *Appointment, actorID string) Transition {
	return decline(a, ActionCancel, actorID, OutcomeInvalidTransition,
		fmt.Sprintf("appointment %s is rejected and cannot be cancelled", a.ID))
}

// CANCELLED_BY_STAFF

func (cancelledByStaffState) status() AppointmentStatus { return AppointmentStatusCancelledByStaff }

func (cancelledByStaffState) accept(a *Appointment, actorDoctorID string) Transition {
	return decline(a, ActionAccept, actorDoctorID, OutcomeInvalidTransition,
		fmt.Sprintf("appointment %s is cancelled and cannot be accepted", a.ID))
}

func (cancelledByStaffState) reject(a *Appointment, actorDoctorID string) Transition {
	return decline(a, ActionReject, actorDoctorID, OutcomeInvalidTransition,
		fmt.Sprintf("appointment %s is cancelled and cannot be rejected", a.ID))
}

func (cancelledByStaffState) cancel(a *Appointment, actorID string) Transition {
	return decline(a, ActionCancel, actorID, OutcomeAlreadyInState,
		fmt.Sprintf("appointment %s is already cancelled", a.ID))
}

// COMPLETED

func (completedState) status() AppointmentStatus { return AppointmentStatusCompleted }

func (completedState) accept(a *Appointment, actorDoctorID string) Transition {
	return decline(a, ActionAccept, actorDoctorID, OutcomeInvalidTransition,
		fmt.Sprintf("appointment %s is completed and cannot be accepted", a.ID))
}

func (completedState) reject(a *Appointment, actorDoctorID string) Transition {
	return decline(a, ActionReject, actorDoctorID, OutcomeInvalidTransition,
		fmt.Sprintf("appointment %s is completed and cannot be rejected", a.ID))
}

func (completedState) cancel(a *Appointment, actorID string) Transition {
	return decline(a, ActionCancel, actorID, OutcomeInvalidTransition,
		fmt.Sprintf("appointment %s is completed and cannot be cancelled", a.ID))
}
