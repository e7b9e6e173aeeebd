package tutors

// Tutor is the discovery listing entry. The scheduling link is present
// only for tutors who already published their Calendly event type.
type Tutor struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	Points         int    `json:"points"`
	SchedulingLink string `json:"schedulingLink"`
}
