package draft

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"virasat/models"
)

// SiteAPI is the backend contract the controller drives. The HTTP client in
// the client package satisfies it; tests plug in fakes.
type SiteAPI interface {
	GetSiteDetail(ctx context.Context, siteID string) (*models.SiteDetail, error)
	CreateSite(ctx context.Context, payload *models.SitePayload) (*models.SiteResult, error)
	UpdateSite(ctx context.Context, siteID string, payload *models.SitePayload) (*models.SiteResult, error)
}

// autoSaveDelay is how long after the last mutation the indicator flips to
// "saved". It is a status label, not a write.
const autoSaveDelay = 900 * time.Millisecond

const (
	StatusIdle   = ""
	StatusSaving = "Saving..."
	StatusSaved  = "All changes saved"
)

var ErrValidation = errors.New("validation failed")

// Controller owns one draft session: load, edit, validate, submit. A session
// is single-owner; the two network calls are awaited sequentially and the
// draft survives a failed submit untouched.
type Controller struct {
	api   SiteAPI
	draft *SiteDraft

	statusMu   sync.Mutex
	saveStatus string
	saveTimer  *time.Timer
}

func NewController(api SiteAPI) *Controller {
	return &Controller{api: api}
}

// Open loads a site for editing, or starts a blank create-mode draft when
// siteID is empty. A missing core record surfaces as a load error and no
// draft is created.
func (c *Controller) Open(ctx context.Context, siteID string) error {
	if siteID == "" {
		c.draft = NewDraft()
		return nil
	}

	detail, err := c.api.GetSiteDetail(ctx, siteID)
	if err != nil {
		return fmt.Errorf("load site %s: %w", siteID, err)
	}

	d, err := Hydrate(detail)
	if err != nil {
		return fmt.Errorf("load site %s: %w", siteID, err)
	}

	c.draft = d
	return nil
}

// Draft exposes the live draft to the editor. Nil until Open succeeds.
func (c *Controller) Draft() *SiteDraft {
	return c.draft
}

// MarkDirty records a mutation for the auto-save indicator.
func (c *Controller) MarkDirty() {
	c.statusMu.Lock()
	defer c.statusMu.Unlock()

	c.saveStatus = StatusSaving
	if c.saveTimer != nil {
		c.saveTimer.Stop()
	}
	c.saveTimer = time.AfterFunc(autoSaveDelay, func() {
		c.statusMu.Lock()
		c.saveStatus = StatusSaved
		c.statusMu.Unlock()
	})
}

func (c *Controller) SaveStatus() string {
	c.statusMu.Lock()
	defer c.statusMu.Unlock()
	return c.saveStatus
}

// Checklist re-evaluates the completion sections for the current draft.
func (c *Controller) Checklist() Checklist {
	if c.draft == nil {
		return Checklist{}
	}
	return EvaluateChecklist(c.draft)
}

// Validate runs the client-side required-field checks. It touches no network
// and leaves the draft unchanged.
func (c *Controller) Validate() error {
	if c.draft == nil {
		return fmt.Errorf("%w: no draft loaded", ErrValidation)
	}
	if strings.TrimSpace(c.draft.Name) == "" {
		return fmt.Errorf("%w: site name is required", ErrValidation)
	}
	if strings.TrimSpace(c.draft.Address) == "" {
		return fmt.Errorf("%w: address is required", ErrValidation)
	}
	return nil
}

// Submit validates, serializes, and sends the full-replace payload. On any
// failure the draft is preserved so the user can retry without re-entering
// data.
func (c *Controller) Submit(ctx context.Context) (*models.SiteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	payload := Serialize(c.draft)

	var result *models.SiteResult
	var err error
	if c.draft.IsEdit {
		result, err = c.api.UpdateSite(ctx, c.draft.SiteID, payload)
	} else {
		result, err = c.api.CreateSite(ctx, payload)
	}
	if err != nil {
		return nil, fmt.Errorf("submit site: %w", err)
	}
	if result != nil && !result.Success {
		return result, fmt.Errorf("submit site: %s", result.Error)
	}

	// a created site keeps its session open in edit mode
	if !c.draft.IsEdit && result != nil && result.SiteID != "" {
		c.draft.SiteID = result.SiteID
		c.draft.IsEdit = true
	}

	return result, nil
}

// Close discards the session; in-progress drafts do not outlive it.
func (c *Controller) Close() {
	c.statusMu.Lock()
	if c.saveTimer != nil {
		c.saveTimer.Stop()
	}
	c.saveStatus = StatusIdle
	c.statusMu.Unlock()
	c.draft = nil
}
