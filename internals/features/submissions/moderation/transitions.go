// file: internals/features/submissions/moderation/transitions.go
package moderation

import (
	model "iagallery_backend/internals/features/submissions/model"
)

type Action string

const (
	ActionApprove         Action = "approve"
	ActionReject          Action = "reject"
	ActionMoveToPending   Action = "move_to_pending"
	ActionPermanentDelete Action = "permanent_delete"
)

// transitionTable: from-status → action → to-status. Permanent delete is
// handled separately (terminal, rejected only) and is absent here.
var transitionTable = map[model.SubmissionStatus]map[Action]model.SubmissionStatus{
	model.SubmissionStatusPending: {
		ActionApprove: model.SubmissionStatusApproved,
		ActionReject:  model.SubmissionStatusRejected,
	},
	model.SubmissionStatusApproved: {
		ActionMoveToPending: model.SubmissionStatusPending,
	},
	model.SubmissionStatusRejected: {
		ActionMoveToPending: model.SubmissionStatusPending,
	},
}

// TransitionTarget resolves the destination status for an action applied to
// a record currently in `from`, or false when the table forbids it.
func TransitionTarget(from model.SubmissionStatus, action Action) (model.SubmissionStatus, bool) {
	to, ok := transitionTable[from][action]
	return to, ok
}
