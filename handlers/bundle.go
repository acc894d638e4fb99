package handlers

import (
	userRepoPkg "studycompass/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Availability endpoints
	RoomFreeStatusHandler gin.HandlerFunc
	FreeRoomsHandler      gin.HandlerFunc
	CheckRoomHandler      gin.HandlerFunc

	// Conflict endpoints
	DetectConflictsHandler gin.HandlerFunc

	// Poll endpoints
	CreatePollHandler     gin.HandlerFunc
	RespondHandler        gin.HandlerFunc
	OverlapsHandler       gin.HandlerFunc
	ValidateBlocksHandler gin.HandlerFunc

	// User endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
}
