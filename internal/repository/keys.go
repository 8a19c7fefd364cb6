package repository

// Keys of the dashboard key space. Collections hold JSON arrays; the rest
// are scalar markers.
const (
	KeyUserRole = "userRole"
	KeyUserID   = "userId"

	KeyAssignments          = "assignments"
	KeyLastAssignmentPosted = "lastAssignmentPosted"
	KeyAssignmentsVersion   = "assignmentsVersion"
	KeyClubEvents           = "clubEvents"
	KeyLastEventPosted      = "lastEventPosted"
	KeyClubEventsVersion    = "clubEventsVersion"
	KeyAchievements         = "achievements"
	KeyStudentFeedback      = "studentFeedback"
	KeySubmissions          = "researchInternshipSubmissions"
	KeyStudentData          = "studentData"
	KeyDatasetUploaded      = "datasetUploaded"
	KeyUploadTimestamp      = "uploadTimestamp"
	KeyTeacherActivities    = "teacherActivities"

	// per viewer
	KeyLastCheckedAssignments        = "lastCheckedAssignments"
	KeyLastCheckedEvents             = "lastCheckedEvents"
	KeyLastObservedAssignmentVersion = "lastObservedAssignmentsVersion"
	KeyLastObservedEventVersion      = "lastObservedEventsVersion"
)

// SessionPrefix scopes the session keys of one login.
func SessionPrefix(sessionID string) string {
	return "session:" + sessionID + ":"
}

// ViewerPrefix scopes the "last checked" markers of one student.
func ViewerPrefix(userID string) string {
	return "viewer:" + userID + ":"
}
