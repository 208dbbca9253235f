package astroController

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TolikMuradov/AstroCalendar/internal/adapters/primary/http/response"
	"github.com/TolikMuradov/AstroCalendar/internal/domain"
	"github.com/TolikMuradov/AstroCalendar/internal/ports/usecase"
)

type Controller struct {
	AstroUseCase usecase.IAstroUseCase
	Log          *slog.Logger
}

func New(astroUseCase usecase.IAstroUseCase, log *slog.Logger) *Controller {
	return &Controller{
		AstroUseCase: astroUseCase,
		Log:          log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")

	users := v1.Group("/users/:id")
	users.PUT("/profile", c.putProfile)
	users.GET("/profile", c.getProfile)
	users.GET("/insights/daily", c.getDaily)
	users.GET("/insights/yearly", c.getYearly)
	users.GET("/insights/monthly", c.getMonthly)
	users.POST("/compare", c.compare)

	v1.DELETE("/session", c.logout)
}

// putProfile онбординг, если профиля ещё нет, иначе редактирование
func (c *Controller) putProfile(ctx *gin.Context) {
	userID := ctx.Param("id")

	var req ProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.Log.WarnContext(ctx.Request.Context(), "failed to bind profile request", "error", err)
		response.BadRequest(ctx, "invalid request body")
		return
	}

	existing, err := c.AstroUseCase.ResolveProfile(ctx.Request.Context(), userID)
	if err != nil {
		response.Error(ctx, c.Log, err)
		return
	}

	if existing == nil {
		in, err := req.toOnboarding(userID)
		if err != nil {
			response.Error(ctx, c.Log, err)
			return
		}
		profile, err := c.AstroUseCase.CompleteOnboarding(ctx.Request.Context(), in)
		if err != nil {
			response.Error(ctx, c.Log, err)
			return
		}
		ctx.JSON(http.StatusCreated, gin.H{"data": newProfileResponse(profile)})
		return
	}

	upd, err := req.toUpdate()
	if err != nil {
		response.Error(ctx, c.Log, err)
		return
	}
	profile, err := c.AstroUseCase.UpdateProfile(ctx.Request.Context(), userID, upd)
	if err != nil {
		response.Error(ctx, c.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": newProfileResponse(profile)})
}

func (c *Controller) getProfile(ctx *gin.Context) {
	profile, ok := c.profile(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": newProfileResponse(profile)})
}

func (c *Controller) getDaily(ctx *gin.Context) {
	profile, ok := c.profile(ctx)
	if !ok {
		return
	}
	locale, ok := c.locale(ctx, profile)
	if !ok {
		return
	}

	date := c.AstroUseCase.Today(ctx.Request.Context(), profile)
	if raw := ctx.Query("date"); raw != "" {
		parsed, err := domain.ParseDate(raw)
		if err != nil {
			response.Error(ctx, c.Log, err)
			return
		}
		date = parsed
	}

	insight, err := c.AstroUseCase.GetDailyInsight(ctx.Request.Context(), profile, date, locale)
	if err != nil {
		response.Error(ctx, c.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": DailyResponse{
		DailyInsight: insight,
		ColorHex:     domain.ColorToHex(insight.Color),
	}})
}

func (c *Controller) getYearly(ctx *gin.Context) {
	profile, ok := c.profile(ctx)
	if !ok {
		return
	}
	locale, ok := c.locale(ctx, profile)
	if !ok {
		return
	}

	year, ok := queryInt(ctx, "year", c.AstroUseCase.Today(ctx.Request.Context(), profile).Year)
	if !ok {
		return
	}

	insight, err := c.AstroUseCase.GetYearlyInsight(ctx.Request.Context(), profile, year, locale)
	if err != nil {
		response.Error(ctx, c.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": insight})
}

func (c *Controller) getMonthly(ctx *gin.Context) {
	profile, ok := c.profile(ctx)
	if !ok {
		return
	}
	locale, ok := c.locale(ctx, profile)
	if !ok {
		return
	}

	today := c.AstroUseCase.Today(ctx.Request.Context(), profile)
	year, ok := queryInt(ctx, "year", today.Year)
	if !ok {
		return
	}
	month, ok := queryInt(ctx, "month", int(today.Month))
	if !ok {
		return
	}

	insight, err := c.AstroUseCase.GetMonthlyInsight(ctx.Request.Context(), profile, year, time.Month(month), locale)
	if err != nil {
		response.Error(ctx, c.Log, err)
		return
	}

	resp := MonthlyResponse{MonthlyInsight: insight}
	if today.Year == year && int(today.Month) == month {
		resp.Today = insight.Day(today.Day)
	}
	ctx.JSON(http.StatusOK, gin.H{"data": resp})
}

// compare 429 quota_exceeded при исчерпании квоты, 502 generation_failed при любой другой ошибке генерации
func (c *Controller) compare(ctx *gin.Context) {
	var req CompareRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.Log.WarnContext(ctx.Request.Context(), "failed to bind compare request", "error", err)
		response.BadRequest(ctx, "invalid request body")
		return
	}

	profile, ok := c.profile(ctx)
	if !ok {
		return
	}

	locale := profile.Locale
	if req.Locale != "" {
		l, err := domain.ParseLocale(req.Locale)
		if err != nil {
			response.Error(ctx, c.Log, err)
			return
		}
		locale = l
	}

	birthDate, err := domain.ParseDate(req.BirthDate)
	if err != nil {
		response.Error(ctx, c.Log, err)
		return
	}

	result, err := c.AstroUseCase.ComparePartner(ctx.Request.Context(), profile, domain.Partner{
		Name:      req.Name,
		BirthDate: birthDate,
	}, locale)
	if err != nil {
		response.Error(ctx, c.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": result})
}

func (c *Controller) logout(ctx *gin.Context) {
	if err := c.AstroUseCase.Logout(ctx.Request.Context()); err != nil {
		response.Error(ctx, c.Log, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// profile профиль пользователя из пути; при ошибке ответ уже записан
func (c *Controller) profile(ctx *gin.Context) (*domain.UserProfile, bool) {
	userID := ctx.Param("id")
	profile, err := c.AstroUseCase.ResolveProfile(ctx.Request.Context(), userID)
	if err == nil && profile == nil {
		err = fmt.Errorf("%w: %s", domain.ErrProfileNotFound, userID)
	}
	if err != nil {
		response.Error(ctx, c.Log, err)
		return nil, false
	}
	return profile, true
}

// locale из query, по умолчанию локаль профиля
func (c *Controller) locale(ctx *gin.Context, profile *domain.UserProfile) (domain.Locale, bool) {
	raw := ctx.Query("locale")
	if raw == "" {
		return profile.Locale, true
	}
	l, err := domain.ParseLocale(raw)
	if err != nil {
		response.Error(ctx, c.Log, err)
		return "", false
	}
	return l, true
}

func queryInt(ctx *gin.Context, name string, def int) (int, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		response.BadRequest(ctx, name+" must be an integer")
		return 0, false
	}
	return v, true
}
