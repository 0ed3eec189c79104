package models

import (
	"fmt"
	"time"
)

// RegisterRequest creates an account; InviteCode optionally joins a team.
type RegisterRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	InviteCode string `json:"invite_code"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateEmotionRecordRequest is one mood submission from the dashboard.
type CreateEmotionRecordRequest struct {
	EmotionID   uint   `json:"emotion_id" binding:"required"`
	Intensity   int    `json:"intensity" binding:"required,min=1,max=5"`
	Notes       string `json:"notes"`
	IsAnonymous bool   `json:"is_anonymous"`
	TeamID      uint   `json:"team_id" binding:"required"`
}

// ReplaceEmotionsRequest swaps a team's whole emotion catalog.
type ReplaceEmotionsRequest struct {
	Emotions []EmotionInput `json:"emotions" binding:"required"`
}

type EmotionInput struct {
	Name       string `json:"name" binding:"required"`
	Emoji      string `json:"emoji" binding:"required"`
	Color      string `json:"color" binding:"required"`
	IsNegative bool   `json:"is_negative"`
}

// Validate enforces the curated catalog size.
func (r *ReplaceEmotionsRequest) Validate() error {
	if len(r.Emotions) != TeamEmotionCount {
		return fmt.Errorf("a team must keep exactly %d emotions, got %d", TeamEmotionCount, len(r.Emotions))
	}
	return nil
}

type CreateFeedbackRequest struct {
	EmotionRecordID uint   `json:"emotion_record_id" binding:"required"`
	Message         string `json:"message" binding:"required"`
	IsAnonymous     bool   `json:"is_anonymous"`
}

type CreateMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

type CreateSprintRequest struct {
	Name      string    `json:"name" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
}

// Validate normalizes to UTC and orders the window.
func (r *CreateSprintRequest) Validate() error {
	r.StartDate = r.StartDate.UTC()
	r.EndDate = r.EndDate.UTC()
	if r.StartDate.After(r.EndDate) {
		return fmt.Errorf("start date must be before end date")
	}
	return nil
}

type JoinTeamRequest struct {
	Code string `json:"code" binding:"required"`
}

// UpdateUserRequest updates the caller's profile.
type UpdateUserRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}
