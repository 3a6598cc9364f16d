package member

// AddMemberRequest represents the request to add a member to a group
type AddMemberRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

// UpdateMemberRequest represents the request to rename a member
type UpdateMemberRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

// MemberResponse represents the response for a member
type MemberResponse struct {
	ID        int64  `json:"id"`
	GroupID   int64  `json:"group_id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// ToResponse converts a Member model to a MemberResponse DTO
func (m *Member) ToResponse() *MemberResponse {
	return &MemberResponse{
		ID:        m.ID,
		GroupID:   m.GroupID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
