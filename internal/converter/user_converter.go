package converter

import (
	"hospital-turn-system/internal/delivery/dto"
	"hospital-turn-system/internal/domain/entity"
)

func UserToResponse(user *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt,
	}
}
