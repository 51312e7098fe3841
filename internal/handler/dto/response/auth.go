package response

import "roomescape-api/internal/usecase/queries"

type MemberResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func FromAuthorizedMemberView(v *queries.AuthorizedMemberView) *MemberResponse {
	return &MemberResponse{
		ID:    v.ID,
		Name:  v.Name,
		Email: v.Email,
		Role:  v.Role,
	}
}
