package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Masc20/CSO-Clearance-Payment-List/internal/dto"
	"github.com/Masc20/CSO-Clearance-Payment-List/internal/intake"
)

// IntakeCookie holds the intake session id
const IntakeCookie = "cso_intake"

// IntakeHandler student payment form
type IntakeHandler struct {
	sessions *intake.Sessions
	opts     Options
	logger   *zap.Logger
}

// NewIntakeHandler creates an IntakeHandler
func NewIntakeHandler(sessions *intake.Sessions, opts Options, logger *zap.Logger) *IntakeHandler {
	if opts.NoticeTTL <= 0 {
		opts.NoticeTTL = intake.DefaultNoticeTTL
	}
	return &IntakeHandler{sessions: sessions, opts: opts, logger: logger}
}

// Show renders the current step of the form
// GET /
func (h *IntakeHandler) Show(c *gin.Context) {
	w, ok := h.lookup(c)
	if !ok {
		w = h.sessions.Fresh()
	}
	c.HTML(http.StatusOK, "intake.html", gin.H{
		"Title":        "Payment Form",
		"View":         w.View(c.Request.Context()),
		"NoticeMillis": h.opts.NoticeTTL.Milliseconds(),
	})
}

// SelectSection step one: pick the course and section
// POST /intake/section
func (h *IntakeHandler) SelectSection(c *gin.Context) {
	var req dto.IntakeSectionRequest
	_ = c.ShouldBind(&req)

	if err := h.start(c).SelectSection(req.SectionLabel); err != nil {
		h.logTransition(c, "select section", err)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// ChangeSection back to step one
// POST /intake/back
func (h *IntakeHandler) ChangeSection(c *gin.Context) {
	if w, ok := h.lookup(c); ok {
		if err := w.ChangeSection(); err != nil {
			h.logTransition(c, "change section", err)
		}
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// Submit step two: record one student and stay on the form
// POST /intake/submit
func (h *IntakeHandler) Submit(c *gin.Context) {
	w, ok := h.lookup(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	var req dto.IntakeDetailsRequest
	_ = c.ShouldBind(&req)

	err := w.Submit(c.Request.Context(), intake.Names{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		MiddleName: req.MiddleName,
	})
	if err != nil {
		h.logTransition(c, "submit", err)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// lookup resolves the existing session of this browser; it never creates one
func (h *IntakeHandler) lookup(c *gin.Context) (*intake.Wizard, bool) {
	id, _ := c.Cookie(IntakeCookie)
	w, ok := h.sessions.Lookup(id)
	if ok {
		h.setCookie(c, id)
	}
	return w, ok
}

// start resolves or creates the session of this browser; only picking a
// section starts one
func (h *IntakeHandler) start(c *gin.Context) *intake.Wizard {
	id, _ := c.Cookie(IntakeCookie)
	w, id := h.sessions.Get(id)
	h.setCookie(c, id)
	return w
}

func (h *IntakeHandler) setCookie(c *gin.Context, id string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(IntakeCookie, id, int(h.opts.SessionTTL.Seconds()), "/", "", false, true)
}

// stale forms (back button, double submit) hit the wrong state and are ignored
func (h *IntakeHandler) logTransition(c *gin.Context, action string, err error) {
	if errors.Is(err, intake.ErrInvalidTransition) {
		h.logger.Debug("intake action ignored", zap.String("action", action))
		return
	}
	h.logger.Error("intake action failed",
		zap.String("action", action),
		zap.String("ip", c.ClientIP()),
		zap.Error(err),
	)
}
