package notification

import (
	"fmt"
	"strings"

	"go-leave-approval/internal/events"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCase = cases.Title(language.English)

// roleLabel turns HEAD_OF_DEPARTMENT into "Head Of Department".
func roleLabel(role string) string {
	return titleCase.String(strings.ReplaceAll(role, "_", " "))
}

// RenderApprovalRequired addresses the delegate when there is one, then the
// resolved approver. It returns false when nobody concrete can be addressed.
func RenderApprovalRequired(evt events.ApprovalRequiredEvent, messageKey string) (Message, bool) {
	recipient := evt.DelegatedToStaffID
	if recipient == "" {
		recipient = evt.ApproverStaffID
	}
	if recipient == "" {
		return Message{}, false
	}
	return Message{
		Key:         messageKey,
		RecipientID: recipient,
		Subject:     fmt.Sprintf("Leave request %s awaits your approval", evt.ReferenceNumber),
		Body: fmt.Sprintf("Leave request %s from staff %s is waiting at level %d (%s).",
			evt.ReferenceNumber, evt.RequesterStaffID, evt.Level, roleLabel(evt.ApproverRole)),
	}, true
}

func RenderLeaveDecided(evt events.LeaveDecidedEvent, messageKey string) Message {
	return Message{
		Key:         messageKey,
		RecipientID: evt.RequesterStaffID,
		Subject:     fmt.Sprintf("Leave request %s %s", evt.ReferenceNumber, evt.Status),
		Body: fmt.Sprintf("Your %s leave request %s for %s day(s) is %s.",
			evt.LeaveType, evt.ReferenceNumber, formatDays(evt.Days), evt.Status),
	}
}

func formatDays(d float64) string {
	if d == float64(int64(d)) {
		return fmt.Sprintf("%d", int64(d))
	}
	return fmt.Sprintf("%.1f", d)
}
