package models

// DashboardStats are the counters shown on the admin dashboard.
type DashboardStats struct {
	Students              int `json:"students"`
	Researchers           int `json:"researchers"`
	Agencies              int `json:"agencies"`
	PendingCollaborations int `json:"pendingCollaborations"`
	AcceptedConnections   int `json:"acceptedConnections"`
	Events                int `json:"events"`
	UpcomingEvents        int `json:"upcomingEvents"`
	Registrations         int `json:"registrations"`
	Resources             int `json:"resources"`
	ForumPosts            int `json:"forumPosts"`
	OpenQuestions         int `json:"openQuestions"`
	PendingSubmissions    int `json:"pendingSubmissions"`
}
