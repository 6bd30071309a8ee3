package admin

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/CodeSmart-NG/school-service/internal/models"
	"github.com/CodeSmart-NG/school-service/internal/repositories"
	"github.com/CodeSmart-NG/school-service/internal/utils"
	"github.com/CodeSmart-NG/school-service/internal/validator"
	"github.com/gin-gonic/gin"
)

// Panel mounts the admin API under a configurable root path. Every
// registered resource gets list/get/create/update/delete, its custom
// actions and an XLSX export, all behind the session middleware.
type Panel struct {
	registry  *Registry
	sessions  *SessionManager
	repo      repositories.Repository
	validator *validator.Validator
	logger    utils.Logger
	rootPath  string
}

func NewPanel(registry *Registry, sessions *SessionManager, repo repositories.Repository, v *validator.Validator, logger utils.Logger, rootPath string) *Panel {
	if rootPath == "" {
		rootPath = "/admin"
	}
	return &Panel{
		registry:  registry,
		sessions:  sessions,
		repo:      repo,
		validator: v,
		logger:    logger,
		rootPath:  rootPath,
	}
}

// Mount registers the panel routes on the router.
func (p *Panel) Mount(router *gin.Engine) {
	root := router.Group(p.rootPath)

	root.POST("/login", p.login)
	root.POST("/logout", p.logout)

	authed := root.Group("")
	authed.Use(p.sessions.RequireAuth())
	{
		authed.GET("/session", p.session)
		authed.GET("/stats", p.stats)
		authed.GET("/resources", p.listResources)

		authed.GET("/resources/:resource", p.list)
		authed.POST("/resources/:resource", p.create)
		authed.GET("/resources/:resource/export.xlsx", p.export)
		authed.GET("/resources/:resource/:id", p.get)
		authed.PUT("/resources/:resource/:id", p.update)
		authed.DELETE("/resources/:resource/:id", p.delete)
		authed.POST("/resources/:resource/:id/actions/:action", p.invokeAction)
	}
}

// ===== SESSION ENDPOINTS =====

func (p *Panel) login(c *gin.Context) {
	var req validator.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		p.fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if verrs := p.validator.Validate(&req); verrs != nil {
		c.JSON(http.StatusBadRequest, models.Response{Success: false, Message: "Validation failed", Data: verrs})
		return
	}

	token, user, err := p.sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			p.fail(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		p.logger.Error("Admin login failed", "error", err)
		p.fail(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	p.sessions.SetCookie(c, token)
	p.logger.Info("Admin logged in", "user_id", user.ID, "email", user.Email)
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Logged in",
		Data:    gin.H{"name": user.Name, "email": user.Email, "role": user.Role},
	})
}

func (p *Panel) logout(c *gin.Context) {
	p.sessions.ClearCookie(c)
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Logged out"})
}

func (p *Panel) session(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data: gin.H{
			"user_id": c.GetUint("admin_user_id"),
			"email":   c.GetString("admin_email"),
			"role":    c.GetString("admin_role"),
		},
	})
}

// ===== RESOURCE ENDPOINTS =====

func (p *Panel) listResources(c *gin.Context) {
	type resourceInfo struct {
		Name    string   `json:"name"`
		Title   string   `json:"title"`
		Actions []string `json:"actions,omitempty"`
	}
	out := make([]resourceInfo, 0, len(p.registry.All()))
	for _, res := range p.registry.All() {
		info := resourceInfo{Name: res.Name, Title: res.Title}
		for _, a := range res.Actions {
			info.Actions = append(info.Actions, a.Name)
		}
		out = append(out, info)
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Data: out})
}

func (p *Panel) list(c *gin.Context) {
	res, ok := p.resource(c)
	if !ok {
		return
	}

	records, err := res.Store.List(c.Request.Context())
	if err != nil {
		p.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Data: records})
}

func (p *Panel) get(c *gin.Context) {
	res, ok := p.resource(c)
	if !ok {
		return
	}
	id, ok := p.recordID(c)
	if !ok {
		return
	}

	record, err := res.Store.Get(c.Request.Context(), id)
	if err != nil {
		p.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Data: record})
}

func (p *Panel) create(c *gin.Context) {
	res, ok := p.resource(c)
	if !ok {
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		p.fail(c, http.StatusBadRequest, "Failed to read request body")
		return
	}

	record, err := res.Store.Create(c.Request.Context(), body)
	if err != nil {
		p.storeError(c, err)
		return
	}

	p.logger.Info("Admin created record", "resource", res.Name, "by", c.GetString("admin_email"))
	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Record created", Data: record})
}

func (p *Panel) update(c *gin.Context) {
	res, ok := p.resource(c)
	if !ok {
		return
	}
	id, ok := p.recordID(c)
	if !ok {
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		p.fail(c, http.StatusBadRequest, "Failed to read request body")
		return
	}

	record, err := res.Store.Update(c.Request.Context(), id, body)
	if err != nil {
		p.storeError(c, err)
		return
	}

	p.logger.Info("Admin updated record", "resource", res.Name, "record_id", id, "by", c.GetString("admin_email"))
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Record updated", Data: record})
}

func (p *Panel) delete(c *gin.Context) {
	res, ok := p.resource(c)
	if !ok {
		return
	}
	id, ok := p.recordID(c)
	if !ok {
		return
	}

	if err := res.Store.Delete(c.Request.Context(), id); err != nil {
		p.storeError(c, err)
		return
	}

	p.logger.Info("Admin deleted record", "resource", res.Name, "record_id", id, "by", c.GetString("admin_email"))
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Record deleted"})
}

func (p *Panel) invokeAction(c *gin.Context) {
	res, ok := p.resource(c)
	if !ok {
		return
	}
	id, ok := p.recordID(c)
	if !ok {
		return
	}

	action, found := res.action(c.Param("action"))
	if !found {
		p.fail(c, http.StatusNotFound, "Unknown action")
		return
	}

	if err := action.Handler(c.Request.Context(), id); err != nil {
		p.storeError(c, err)
		return
	}

	p.logger.Info("Admin action invoked", "resource", res.Name, "record_id", id, "action", action.Name)
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: fmt.Sprintf("%s applied", action.Title),
		Data: gin.H{
			"redirect": fmt.Sprintf("%s/resources/%s/%d", p.rootPath, res.Name, id),
		},
	})
}

// ===== HELPERS =====

func (p *Panel) resource(c *gin.Context) (*Resource, bool) {
	res, ok := p.registry.Get(c.Param("resource"))
	if !ok {
		p.fail(c, http.StatusNotFound, "Unknown resource")
		return nil, false
	}
	return res, true
}

func (p *Panel) recordID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		p.fail(c, http.StatusBadRequest, "Invalid record id")
		return 0, false
	}
	return uint(id), true
}

func (p *Panel) storeError(c *gin.Context, err error) {
	var verr *InvalidRecordError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, models.Response{Success: false, Message: "Validation failed", Data: verr.Fields})
		return
	}
	if errors.Is(err, ErrInvalidRecord) {
		p.fail(c, http.StatusBadRequest, "Invalid record body")
		return
	}
	if errors.Is(err, repositories.ErrNotFound) {
		p.fail(c, http.StatusNotFound, "Record not found")
		return
	}
	p.logger.Error("Admin store operation failed", "error", err)
	p.fail(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
}

func (p *Panel) fail(c *gin.Context, status int, message string) {
	c.JSON(status, models.Response{Success: false, Message: message})
}
