package dto

// VotePatchDTO is the PATCH /api/reviews/:review_id body.
type VotePatchDTO struct {
	IncVotes int `json:"inc_votes"`
}

// CreateCommentDTO is the POST /api/reviews/:review_id/comments body.
type CreateCommentDTO struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}
