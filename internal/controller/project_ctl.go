package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Fabriciocypreste/novonovo/internal/api/dto"
	"github.com/Fabriciocypreste/novonovo/internal/service"
)

// ==================== 控制器 ====================

// ProjectController 项目与内容
type ProjectController struct {
	projectService *service.ProjectService
}

func NewProjectController(projectService *service.ProjectService) *ProjectController {
	return &ProjectController{projectService: projectService}
}

// ==================== API 方法 ====================

// ListProjects 项目列表
// @Summary 项目列表，按创建时间倒序
// @Tags Project
// @Produce json
// @Success 200 {object} dto.Response{data=[]model.Project}
// @Router /api/projects [get]
func (ctrl *ProjectController) ListProjects(c *gin.Context) {
	projects, err := ctrl.projectService.ListProjects(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}
	respondOK(c, http.StatusOK, projects)
}

// CreateProject 创建项目
// @Summary 创建项目
// @Tags Project
// @Accept json
// @Produce json
// @Param body body dto.CreateProjectRequest true "项目"
// @Success 200 {object} dto.Response{data=model.Project}
// @Failure 400 {object} dto.Response
// @Router /api/projects [post]
func (ctrl *ProjectController) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, err)
		return
	}

	project, err := ctrl.projectService.CreateProject(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to create project")
		return
	}
	respondOK(c, http.StatusOK, project)
}

// ListContentItems 项目下的内容
// @Summary 项目内容列表
// @Tags Project
// @Produce json
// @Param id path int true "项目ID"
// @Success 200 {object} dto.Response{data=[]model.ContentItem}
// @Router /api/projects/{id}/content [get]
func (ctrl *ProjectController) ListContentItems(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}

	items, err := ctrl.projectService.ListContentItems(c.Request.Context(), projectID)
	if err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch content items")
		return
	}
	respondOK(c, http.StatusOK, items)
}

// CreateContentItem 保存内容
// @Summary 在项目下保存内容
// @Tags Project
// @Accept json
// @Produce json
// @Param id path int true "项目ID"
// @Param body body dto.CreateContentItemRequest true "内容"
// @Success 200 {object} dto.Response{data=model.ContentItem}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /api/projects/{id}/content [post]
func (ctrl *ProjectController) CreateContentItem(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}

	var req dto.CreateContentItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, err)
		return
	}

	item, err := ctrl.projectService.CreateContentItem(c.Request.Context(), projectID, &req)
	switch {
	case err == nil:
		respondOK(c, http.StatusOK, item)
	case errors.Is(err, service.ErrInvalidContentData):
		respondInvalid(c, err)
	case errors.Is(err, service.ErrProjectNotFound):
		respondError(c, http.StatusNotFound, "Project not found")
	default:
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to create content item")
	}
}

func projectIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondInvalid(c, errors.New("invalid project id"))
		return 0, false
	}
	return id, true
}
