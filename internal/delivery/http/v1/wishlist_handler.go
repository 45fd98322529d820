package v1

import (
	"net/http"

	"candidate-dashboard-backend/internal/delivery/http/response"
	"candidate-dashboard-backend/internal/domain"
	"candidate-dashboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type WishlistHandler struct {
	wishlistUC domain.WishlistUsecase
}

func NewWishlistHandler(r *gin.Engine, wishlistUC domain.WishlistUsecase) {
	handler := &WishlistHandler{wishlistUC: wishlistUC}

	r.POST("/training_wishlist", handler.Add)
}

// Add godoc
// @Summary      Add a training to a user's wishlist
// @Tags         wishlist
// @Accept       json
// @Produce      json
// @Param        entry  body      domain.AddTrainingInput  true  "Wishlist entry"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /training_wishlist [post]
func (h *WishlistHandler) Add(c *gin.Context) {
	var input domain.AddTrainingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("user_id and training_name are required"))
		return
	}

	if err := h.wishlistUC.Add(c, input); err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, "Training added to wishlist")
}
