package port

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBusinessNotFound means the referenced business does not exist.
	ErrBusinessNotFound = errors.New("business not found")
	// ErrNotOwner means the caller does not own the target business.
	ErrNotOwner = errors.New("business not owned by caller")
	// ErrNoCredentials means the business has no linked platform account;
	// the caller must re-connect before launching.
	ErrNoCredentials = errors.New("platform account not connected")
	// ErrLeadNotFound means the referenced lead does not exist.
	ErrLeadNotFound = errors.New("lead not found")
	// ErrCampaignNotFound means the referenced campaign does not exist.
	ErrCampaignNotFound = errors.New("campaign not found")
)

// Provisioning step names recorded on failure.
const (
	StepCampaign = "campaign"
	StepAdSet    = "adset"
	StepAds      = "ads"
	StepActivate = "activate"
	StepPersist  = "persist"
)

// ValidationError is a locally detected bad request; it never reaches the
// platform.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "missing required field: " + e.Field
}

// ProvisioningError is a platform rejection at a specific pipeline step.
// It carries the identifiers of remote objects already created so an
// operator can clean up or resume; the pipeline never deletes them.
type ProvisioningError struct {
	Step           string
	Code           string
	Message        string
	MetaCampaignID string
	MetaAdSetID    string
	Err            error
}

func (e *ProvisioningError) Error() string {
	return fmt.Sprintf("provisioning failed at step %s: %s", e.Step, e.Message)
}

func (e *ProvisioningError) Unwrap() error { return e.Err }

// NoViableAdError means every requested ad variant failed to create.
// Campaign and ad set exist on the platform but remain paused.
type NoViableAdError struct {
	MetaCampaignID string
	MetaAdSetID    string
	Failures       []string
}

func (e *NoViableAdError) Error() string {
	return "no ads created: " + strings.Join(e.Failures, "; ")
}

// PersistenceError means remote objects were created successfully but the
// local record could not be written. The remote identifiers are disclosed
// in the message so an operator can reconcile manually.
type PersistenceError struct {
	MetaCampaignID string
	MetaAdSetID    string
	MetaAdIDs      []string
	Err            error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("remote objects created (campaign=%s adset=%s ads=%s) but local persistence failed: %v",
		e.MetaCampaignID, e.MetaAdSetID, strings.Join(e.MetaAdIDs, ","), e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
