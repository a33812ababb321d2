package models

import (
	"time"

	"gorm.io/datatypes"
)

// OfferStatus is the aggregate status of an offer approval as it moves
// through the three sequential gates.
type OfferStatus string

const (
	OfferPendingHM OfferStatus = "Pending HM Approval"
	OfferPendingBH OfferStatus = "Pending BH Approval"
	OfferPendingHR OfferStatus = "Pending HR Approval"
	OfferApproved  OfferStatus = "Approved"
	OfferRejected  OfferStatus = "Rejected"
)

func (s OfferStatus) Terminal() bool { return s == OfferApproved || s == OfferRejected }

// Decision is a single gate's verdict.
type Decision string

const (
	DecisionApproved Decision = "Approved"
	DecisionRejected Decision = "Rejected"
)

func (d Decision) Valid() bool { return d == DecisionApproved || d == DecisionRejected }

// ApprovalGate binds an approver role to the pending status it owns and the
// status an approval advances to. Rejection at any gate goes to
// OfferRejected.
type ApprovalGate struct {
	Pending OfferStatus
	Next    OfferStatus
}

var gateByRole = map[Role]ApprovalGate{
	RoleHiringManager: {Pending: OfferPendingHM, Next: OfferPendingBH},
	RoleBusinessHead:  {Pending: OfferPendingBH, Next: OfferPendingHR},
	RoleHRManager:     {Pending: OfferPendingHR, Next: OfferApproved},
}

// GateFor returns the approval gate owned by role, or ok=false if the role
// is not one of the three approvers.
func GateFor(role Role) (ApprovalGate, bool) {
	g, ok := gateByRole[role]
	return g, ok
}

// OfferApproval is one offer moving through HM -> BH -> HR sign-off. Each
// gate writes only its own field group plus the shared status; earlier
// gates' fields are never touched again.
type OfferApproval struct {
	ID            string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ApplicationID string `gorm:"column:application_id;type:uuid;index" json:"application_id"`

	OfferDetails datatypes.JSON `gorm:"column:offer_details;type:jsonb" json:"offer_details"`

	RecruiterID          string    `gorm:"column:recruiter_id;type:uuid" json:"recruiter_id"`
	RecruiterSubmittedAt time.Time `gorm:"column:recruiter_submitted_at;type:timestamptz" json:"recruiter_submitted_at"`

	HiringManagerID         *string    `gorm:"column:hiring_manager_id;type:uuid" json:"hiring_manager_id,omitempty"`
	HiringManagerStatus     *Decision  `gorm:"column:hiring_manager_status;type:text" json:"hiring_manager_status,omitempty"`
	HiringManagerComments   *string    `gorm:"column:hiring_manager_comments;type:text" json:"hiring_manager_comments,omitempty"`
	HiringManagerApprovedAt *time.Time `gorm:"column:hiring_manager_approved_at;type:timestamptz" json:"hiring_manager_approved_at,omitempty"`

	BusinessHeadID         *string    `gorm:"column:business_head_id;type:uuid" json:"business_head_id,omitempty"`
	BusinessHeadStatus     *Decision  `gorm:"column:business_head_status;type:text" json:"business_head_status,omitempty"`
	BusinessHeadComments   *string    `gorm:"column:business_head_comments;type:text" json:"business_head_comments,omitempty"`
	BusinessHeadApprovedAt *time.Time `gorm:"column:business_head_approved_at;type:timestamptz" json:"business_head_approved_at,omitempty"`

	HRManagerID         *string    `gorm:"column:hr_manager_id;type:uuid" json:"hr_manager_id,omitempty"`
	HRManagerStatus     *Decision  `gorm:"column:hr_manager_status;type:text" json:"hr_manager_status,omitempty"`
	HRManagerComments   *string    `gorm:"column:hr_manager_comments;type:text" json:"hr_manager_comments,omitempty"`
	HRManagerApprovedAt *time.Time `gorm:"column:hr_manager_approved_at;type:timestamptz" json:"hr_manager_approved_at,omitempty"`

	Status    OfferStatus `gorm:"column:status;type:text;index" json:"status"`
	CreatedAt time.Time   `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (OfferApproval) TableName() string { return "offer_approvals" }
