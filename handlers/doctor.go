package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"medibook/cron"
	"medibook/models"
	"medibook/services/availability"
	"medibook/services/booking"
	"medibook/utils"
)

// DoctorHandler serves normalized doctor profiles and stateless schedule
// expansion, backed by the warmed Redis cache when available.
type DoctorHandler struct {
	upstream booking.DoctorSource
	cache    *redis.Client
}

func NewDoctorHandler(upstream booking.DoctorSource, cache *redis.Client) *DoctorHandler {
	return &DoctorHandler{upstream: upstream, cache: cache}
}

// GetDoctor returns the display fields of a doctor.
func (h *DoctorHandler) GetDoctor(c *gin.Context) {
	doctorID := c.Param("id")
	profile, err := h.upstream.GetDoctor(c.Request.Context(), doctorID)
	if err != nil {
		getLogger(c).Error("failed to fetch doctor", zap.String("doctorID", doctorID), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "failed to load doctor", err.Error())
		return
	}
	c.JSON(http.StatusOK, profile)
}

type scheduleDay struct {
	models.DayAvailability
	Periods models.PeriodBuckets `json:"periods"`
}

// GetSchedule expands a doctor's weekly availability into the 30-day
// schedule for the requested consultation type, with per-day period-of-day
// buckets for the summary view.
func (h *DoctorHandler) GetSchedule(c *gin.Context) {
	doctorID := c.Param("id")
	mode := availability.ModeFromConsultationType(c.Query("type"))

	schedule, ok := h.cachedSchedule(c.Request.Context(), doctorID, mode)
	if !ok {
		records, err := h.upstream.GetAvailabilities(c.Request.Context(), doctorID)
		if err != nil {
			getLogger(c).Error("failed to fetch availability", zap.String("doctorID", doctorID), zap.Error(err))
			utils.JSONError(c, http.StatusBadGateway, "failed to load availability", err.Error())
			return
		}
		filtered := availability.FilterRecords(records, mode)
		schedule = availability.BuildSchedule(filtered, time.Now())
		h.storeSchedule(c.Request.Context(), doctorID, mode, schedule)
	}

	days := make([]scheduleDay, 0, len(schedule))
	for _, day := range schedule {
		var flat []models.TimeSlot
		for _, hospital := range day.Hospitals {
			flat = append(flat, hospital.Slots...)
		}
		days = append(days, scheduleDay{
			DayAvailability: day,
			Periods:         availability.Categorize(flat),
		})
	}
	c.JSON(http.StatusOK, gin.H{"doctorId": doctorID, "type": mode, "days": days})
}

func (h *DoctorHandler) cachedSchedule(ctx context.Context, doctorID, mode string) ([]models.DayAvailability, bool) {
	if h.cache == nil {
		return nil, false
	}
	data, err := h.cache.Get(ctx, cron.ScheduleCacheKey(doctorID, mode)).Result()
	if err != nil {
		return nil, false
	}
	var schedule []models.DayAvailability
	if err := json.Unmarshal([]byte(data), &schedule); err != nil {
		return nil, false
	}
	return schedule, true
}

func (h *DoctorHandler) storeSchedule(ctx context.Context, doctorID, mode string, schedule []models.DayAvailability) {
	if h.cache == nil {
		return
	}
	data, err := json.Marshal(schedule)
	if err != nil {
		return
	}
	if err := h.cache.Set(ctx, cron.ScheduleCacheKey(doctorID, mode), data, utils.ScheduleCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache schedule", zap.String("doctorID", doctorID), zap.Error(err))
	}
}
