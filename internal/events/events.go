package events

const (
	JobPostCreatedTopic = "jobpost:created"
	SignedInTopic       = "auth:signed_in"
	SignedOutTopic      = "auth:signed_out"
)

type JobPostCreated struct {
	PostID   uint
	AuthorID uint
}

type SignedIn struct {
	AccountID   uint
	AccountType string
}

type SignedOut struct {
	AccountID uint
}
