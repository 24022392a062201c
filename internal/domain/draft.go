package domain

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	DraftStaleAfter = 24 * time.Hour
)

// DateTime is a pickup or return selection as the booking form submits it.
type DateTime struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

func (d DateTime) Complete() bool {
	return d.Date != "" && d.Time != ""
}

func (d DateTime) In(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, d.Date+" "+d.Time, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date/time %q %q", ErrValidation, d.Date, d.Time)
	}
	return t, nil
}

type Draft struct {
	CarID   string   `json:"car_id"`
	Pickup  DateTime `json:"pickup"`
	Return  DateTime `json:"return"`
	Addons  Addons   `json:"addons"`
	Totals  Totals   `json:"totals"`
	PayMode PayMode  `json:"pay_mode,omitempty"`
}

func (d *Draft) DatesComplete() bool {
	return d.Pickup.Complete() && d.Return.Complete()
}

// DraftRecord is what a session stores: the draft plus the flags that
// sequence the post-login resume.
type DraftRecord struct {
	Draft              Draft     `json:"draft"`
	SavedAt            time.Time `json:"saved_at"`
	RedirectToProfile  bool      `json:"redirect_to_profile"`
	ProfileJustUpdated bool      `json:"profile_just_updated"`
}

func (r *DraftRecord) Stale(now time.Time) bool {
	return now.Sub(r.SavedAt) > DraftStaleAfter
}

type SaveDraftOptions struct {
	RedirectToProfile bool
	ReturnTo          string
}

type ResumeStep string

const (
	ResumeStepCollectPhone ResumeStep = "collect_phone"
	ResumeStepCollectDates ResumeStep = "collect_dates"
	ResumeStepAcceptTerms  ResumeStep = "accept_terms"
)

type ResumeResult struct {
	Draft              Draft      `json:"draft"`
	Step               ResumeStep `json:"step"`
	ProfileJustUpdated bool       `json:"profile_just_updated"`
}
