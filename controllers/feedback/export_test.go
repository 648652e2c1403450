package feedbackController

// Aliases exposing unexported response row types to the external test package.
type StaffFeedbackRow = staffFeedbackRow
type AdminFeedbackRow = adminFeedbackRow
