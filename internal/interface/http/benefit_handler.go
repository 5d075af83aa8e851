package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/studentperksph/perks-api/internal/application"
	"github.com/studentperksph/perks-api/internal/catalog"
	repo "github.com/studentperksph/perks-api/internal/domain/repository"
	"github.com/studentperksph/perks-api/internal/interface/middleware"
	"github.com/studentperksph/perks-api/pkg/response"
)

// BenefitHandler serves the catalog surface: listing with filters, the
// popular carousel, categories, and the unlock gate. All routes accept
// anonymous callers; the session (when present) only contributes the
// favorites set and the verification status.
type BenefitHandler struct {
	Catalog *catalog.Catalog
	Records application.RecordStore
	Gateway repo.ProfileGateway
	Logger  *logrus.Logger
}

func NewBenefitHandler(cat *catalog.Catalog, records application.RecordStore, gateway repo.ProfileGateway, logger *logrus.Logger) *BenefitHandler {
	return &BenefitHandler{Catalog: cat, Records: records, Gateway: gateway, Logger: logger}
}

func (h *BenefitHandler) session(c *gin.Context) *application.SessionStore {
	uid := c.GetString(middleware.CtxUserIDKey)
	if uid == "" {
		return nil
	}
	s := application.NewSessionStore(h.Records, h.Gateway, h.Logger, uid)
	s.Initialize(c.Request.Context())
	return s
}

// List returns the composed view for the given query and category
// filters. Unknown category labels are rejected rather than silently
// matching nothing.
func (h *BenefitHandler) List(c *gin.Context) {
	cat, ok := catalog.ParseCategory(c.Query("category"))
	if !ok {
		response.Error[any](c, http.StatusBadRequest, "unknown category", map[string]string{
			"category": c.Query("category"),
		})
		return
	}
	filters := catalog.FilterState{Query: c.Query("q"), Category: cat}

	vm := application.ComposeView(h.Catalog, filters, h.session(c))
	response.Success(c, http.StatusOK, vm, "benefits", gin.H{
		"query":    filters.Query,
		"category": string(filters.Category),
	})
}

// Popular returns the entries flagged for the carousel.
func (h *BenefitHandler) Popular(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Catalog.Popular(), "popular benefits", nil)
}

// Categories returns the real category labels in display order.
func (h *BenefitHandler) Categories(c *gin.Context) {
	response.Success(c, http.StatusOK, catalog.Categories(), "categories", nil)
}

// Unlock runs the gate for one benefit and, when permitted, releases its
// outbound link. The client must open it without opener or referrer.
func (h *BenefitHandler) Unlock(c *gin.Context) {
	b, ok := h.Catalog.ByID(c.Param("id"))
	if !ok {
		response.Error[any](c, http.StatusNotFound, "benefit not found", nil)
		return
	}

	var decision application.UnlockDecision
	if s := h.session(c); s != nil {
		decision = application.CheckUnlock(s.User())
	} else {
		decision = application.CheckUnlock(nil)
	}

	switch decision {
	case application.UnlockNeedsLogin:
		response.Error[any](c, http.StatusUnauthorized, "login required", gin.H{"next": "login"})
	case application.UnlockNeedsVerification:
		response.Error[any](c, http.StatusForbidden, "student verification required", gin.H{"next": "verify"})
	default:
		response.Success(c, http.StatusOK, gin.H{
			"benefit_id": b.ID,
			"link":       b.Link,
		}, "unlocked", gin.H{"target": "_blank", "rel": "noopener noreferrer"})
	}
}
