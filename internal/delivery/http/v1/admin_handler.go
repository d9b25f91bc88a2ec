package v1

import (
	"net/http"

	"farmatch-backend/internal/delivery/http/response"
	"farmatch-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

func NewAdminHandler(public *gin.RouterGroup, adminUC domain.AdminUsecase) {
	handler := &AdminHandler{adminUC: adminUC}

	admin := public.Group("/admin")
	{
		admin.GET("/submissions", handler.ListSubmissions)
	}
}

// ListSubmissions godoc
// @Summary      List all submissions
// @Description  Dumps every stored profile, newest first. Requires the admin secret.
// @Tags         admin
// @Produce      json
// @Param        secret  query     string  true  "Admin secret"
// @Success      200     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Router       /admin/submissions [get]
func (h *AdminHandler) ListSubmissions(c *gin.Context) {
	list, err := h.adminUC.ListSubmissions(c.Request.Context(), c.Query("secret"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Submissions", list)
}
