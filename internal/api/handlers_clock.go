// Poemclock - Poem/1 Compatible Time-Synchronized Content Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/poemclock

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/poemclock/internal/logging"
	"github.com/tomtom215/poemclock/internal/metrics"
	"github.com/tomtom215/poemclock/internal/models"
	"github.com/tomtom215/poemclock/internal/schedule"
	"github.com/tomtom215/poemclock/internal/validation"
)

// deviceTimeLayout matches the timestamp shape Poem/1 firmware expects in
// status responses.
const deviceTimeLayout = "2006-01-02T15:04:05Z"

// Status reports the calling device back to itself. Poemclock keeps no
// device registry, so the record is synthesized from the request.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	var req models.StatusRequest
	decodeBody(r, &req)

	if err := validation.ValidateStruct(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	screenID := req.ScreenID
	if screenID == "" {
		screenID = "unknown"
	}

	now := h.now().UTC().Format(deviceTimeLayout)
	respondJSON(w, http.StatusOK, models.StatusResponse{
		Success: true,
		Device: models.DeviceInfo{
			ScreenID:  screenID,
			BuildID:   req.BuildID,
			LastSeen:  now,
			Seen:      1,
			CreatedAt: now,
			IsClaimed: false,
		},
	})
}

// Compose resolves the requested time against today's schedule and returns
// the formatted poem for that minute.
func (h *Handler) Compose(w http.ResponseWriter, r *http.Request) {
	var req models.ComposeRequest
	decodeBody(r, &req)

	if err := validation.ValidateStruct(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	// One snapshot for both the seed date and the default minute.
	now := h.now()

	resolved, err := schedule.Resolve(schedule.TimeRequest{Time24: req.Time24, Instant: req.Geolocate}, now)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	day, err := h.dailySchedule(now)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	item, err := schedule.At(day, resolved.Minute)
	if err != nil {
		// The pool does not triple out to this minute; fail loudly
		// rather than wrapping to another slot.
		respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	resp := schedule.Compose(item, resolved.Time24)
	metrics.RecordCompose(resolved.Source)

	logging.Ctx(r.Context()).Debug().
		Str("time24", resolved.Time24).
		Str("source", resolved.Source).
		Str("poem_id", resp.PoemID).
		Msg("composed poem")

	respondJSON(w, http.StatusOK, resp)
}

// NoteSeen acknowledges a seen notification. Deliberate no-op: Poemclock
// persists no per-device state.
func (h *Handler) NoteSeen(w http.ResponseWriter, r *http.Request) {
	h.acknowledge(w, r, "note_id", chi.URLParam(r, "noteID"))
}

// LikeMark acknowledges a like. Deliberate no-op.
func (h *Handler) LikeMark(w http.ResponseWriter, r *http.Request) {
	h.acknowledge(w, r, "poem_id", chi.URLParam(r, "poemID"))
}

// LikeUnmark acknowledges a like removal. Deliberate no-op.
func (h *Handler) LikeUnmark(w http.ResponseWriter, r *http.Request) {
	h.acknowledge(w, r, "poem_id", chi.URLParam(r, "poemID"))
}

func (h *Handler) acknowledge(w http.ResponseWriter, r *http.Request, idField, id string) {
	var req models.AckRequest
	decodeBody(r, &req)

	if err := validation.ValidateStruct(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	logging.Ctx(r.Context()).Debug().
		Str(idField, id).
		Str("screen_id", req.ScreenID).
		Msg("acknowledged device event")

	respondJSON(w, http.StatusOK, models.AckResponse{Success: true})
}

// ClockNow returns the raw content item for the current minute.
func (h *Handler) ClockNow(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	minute := now.Hour()*60 + now.Minute()

	item, status, msg := h.lookupMinute(now, minute)
	if msg != "" {
		respondError(w, r, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, models.ClockResponse{
		Time:         schedule.FormatMinute(minute),
		Content:      item.Content,
		Card:         item.Card,
		Minute:       minute,
		TotalMinutes: schedule.MinutesPerDay,
		Timestamp:    now.Format(time.RFC3339),
	})
}

// ClockAtMinute returns the content scheduled for a fixed minute of today.
func (h *Handler) ClockAtMinute(w http.ResponseWriter, r *http.Request) {
	minute, err := strconv.Atoi(chi.URLParam(r, "minute"))
	if err != nil || minute < 0 || minute >= schedule.MinutesPerDay {
		respondError(w, r, http.StatusBadRequest,
			fmt.Sprintf("Minute must be between 0 and %d", schedule.MinutesPerDay-1))
		return
	}

	item, status, msg := h.lookupMinute(h.now(), minute)
	if msg != "" {
		respondError(w, r, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, models.ClockResponse{
		Time:         schedule.FormatMinute(minute),
		Content:      item.Content,
		Card:         item.Card,
		Minute:       minute,
		TotalMinutes: schedule.MinutesPerDay,
	})
}

// lookupMinute builds today's schedule and fetches one slot. It returns a
// non-empty message (with its status) when the lookup cannot be served.
func (h *Handler) lookupMinute(now time.Time, minute int) (models.ContentItem, int, string) {
	day, err := h.dailySchedule(now)
	if err != nil {
		return models.ContentItem{}, http.StatusInternalServerError, err.Error()
	}

	item, err := schedule.At(day, minute)
	if err != nil {
		if errors.Is(err, schedule.ErrMinuteOutOfRange) {
			return models.ContentItem{}, http.StatusInternalServerError,
				fmt.Sprintf("no content scheduled for minute %d (pool fills %d of %d slots)",
					minute, len(day), schedule.MinutesPerDay)
		}
		return models.ContentItem{}, http.StatusInternalServerError, err.Error()
	}

	return item, http.StatusOK, ""
}

// Stats reports content pool statistics.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.pool.Stats())
}
