package v1

import (
	"net/http"

	"candidate-dashboard-backend/internal/delivery/http/response"
	"candidate-dashboard-backend/internal/domain"
	"candidate-dashboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobMatchHandler struct {
	jobMatchUC domain.JobMatchUsecase
}

func NewJobMatchHandler(r *gin.Engine, jobMatchUC domain.JobMatchUsecase) {
	handler := &JobMatchHandler{jobMatchUC: jobMatchUC}

	r.POST("/job_matching_profile", handler.Add)
}

// Add godoc
// @Summary      Add a job title to a user's matching profile
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        entry  body      domain.AddJobMatchInput  true  "Matching profile entry"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /job_matching_profile [post]
func (h *JobMatchHandler) Add(c *gin.Context) {
	var input domain.AddJobMatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("user_id and job_title are required"))
		return
	}

	if err := h.jobMatchUC.Add(c, input); err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, "Job added to matching profile")
}
