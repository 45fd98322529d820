package v1

import (
	"net/http"
	"strconv"

	"candidate-dashboard-backend/internal/delivery/http/response"
	"candidate-dashboard-backend/internal/domain"
	"candidate-dashboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(r *gin.Engine, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	r.GET("/users", handler.List)
	r.POST("/user", handler.Create)
	r.PUT("/user/:id", handler.Update)
}

type UpdateUserRequest struct {
	ProfileCompleteness *int `json:"profile_completeness"`
}

// List godoc
// @Summary      List users
// @Description  All users with their profile completeness, in creation order
// @Tags         users
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userUC.List(c)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Create godoc
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body      domain.CreateUserInput  true  "User JSON"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /user [post]
func (h *UserHandler) Create(c *gin.Context) {
	var input domain.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		// A body that cannot be decoded carries no username either
		c.Error(apperror.BadRequest("Username is required"))
		return
	}

	id, err := h.userUC.Create(c, input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User created", "user_id": id})
}

// Update godoc
// @Summary      Update a user's profile completeness
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "User ID"
// @Param        user  body      UpdateUserRequest  true  "Fields to update"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /user/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// A non-integer id never matches a route in the contract
		response.Error(c, http.StatusNotFound, "This route does not exist")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if err := h.userUC.UpdateCompleteness(c, id, req.ProfileCompleteness); err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, "User updated")
}
