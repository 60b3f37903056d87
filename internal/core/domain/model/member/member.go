package member

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/pkg/errs"
)

var (
	ErrMemberIsNotConstructed = errors.New("Member must be created via SignUp or RestoreMember")
	ErrAlreadyReviewed        = errors.New("member application was already approved")

	businessNumberPattern = regexp.MustCompile(`^\d{3}-\d{2}-\d{5}$`)
)

// BusinessProfile is the registration data reviewed before a shop is approved.
type BusinessProfile struct {
	BusinessNumber string
	CorpName       string
	CeoName        string
	CompanyAddress string
}

func (p BusinessProfile) Validate() error {
	var numberErr error
	if !businessNumberPattern.MatchString(p.BusinessNumber) {
		numberErr = errs.NewValueIsInvalidErrorWithCause("business number",
			fmt.Errorf("%q does not match 000-00-00000", p.BusinessNumber))
	}
	var corpErr error
	if strings.TrimSpace(p.CorpName) == "" {
		corpErr = errs.NewValueIsRequiredError("corp name")
	}
	return errors.Join(numberErr, corpErr)
}

// Registration is the signup request of a new member shop.
type Registration struct {
	LoginID string
	Name    string
	Mobile  string
	Profile BusinessProfile
}

func (r Registration) Validate() error {
	var loginErr, nameErr, mobileErr error
	if l := len(strings.TrimSpace(r.LoginID)); l < 4 || l > 50 {
		loginErr = errs.NewValueIsOutOfRangeError("login id length", l, 4, 50)
	}
	if strings.TrimSpace(r.Name) == "" {
		nameErr = errs.NewValueIsRequiredError("member name")
	}
	if strings.TrimSpace(r.Mobile) == "" {
		mobileErr = errs.NewValueIsRequiredError("member mobile")
	}
	return errors.Join(loginErr, nameErr, mobileErr, r.Profile.Validate())
}

// Member is a partner flower shop. New members wait in PENDING until an
// administrator approves (ACTIVE) or rejects (still PENDING) their application.
type Member struct {
	id              kernel.UUID
	loginID         string
	name            string
	mobile          string
	profile         BusinessProfile
	status          Status
	approval        Approval
	rejectionReason string
	regions         []ActivityRegion
	prices          []ProductPrice
	audit           kernel.Audit

	isConstructed bool
}

// SignUp registers a new member in PENDING status awaiting review.
func SignUp(id kernel.UUID, r Registration, now time.Time) (*Member, error) {
	if err := errors.Join(id.Validate(), r.Validate()); err != nil {
		return nil, err
	}
	return &Member{
		id:            id,
		loginID:       strings.TrimSpace(r.LoginID),
		name:          strings.TrimSpace(r.Name),
		mobile:        r.Mobile,
		profile:       r.Profile,
		status:        StatusPending,
		approval:      ApprovalPending,
		audit:         kernel.NewAudit(now),
		isConstructed: true,
	}, nil
}

// Snapshot is the persisted state consumed by RestoreMember.
type Snapshot struct {
	ID              kernel.UUID
	LoginID         string
	Name            string
	Mobile          string
	Profile         BusinessProfile
	Status          Status
	Approval        Approval
	RejectionReason string
	Regions         []ActivityRegion
	Prices          []ProductPrice
	Audit           kernel.Audit
}

func RestoreMember(s Snapshot) (*Member, error) {
	if err := errors.Join(s.ID.Validate(), s.Status.Validate(), s.Approval.Validate()); err != nil {
		return nil, err
	}
	return &Member{
		id:              s.ID,
		loginID:         s.LoginID,
		name:            s.Name,
		mobile:          s.Mobile,
		profile:         s.Profile,
		status:          s.Status,
		approval:        s.Approval,
		rejectionReason: s.RejectionReason,
		regions:         slices.Clone(s.Regions),
		prices:          slices.Clone(s.Prices),
		audit:           s.Audit,
		isConstructed:   true,
	}, nil
}

func (m *Member) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMemberIsNotConstructed
	}
	return nil
}

func (m *Member) ID() kernel.UUID                   { return m.id }
func (m *Member) LoginID() string                   { return m.loginID }
func (m *Member) Name() string                      { return m.name }
func (m *Member) Mobile() string                    { return m.mobile }
func (m *Member) Profile() BusinessProfile          { return m.profile }
func (m *Member) Status() Status                    { return m.status }
func (m *Member) Approval() Approval                { return m.approval }
func (m *Member) RejectionReason() string           { return m.rejectionReason }
func (m *Member) Audit() kernel.Audit               { return m.audit }
func (m *Member) ActivityRegions() []ActivityRegion { return slices.Clone(m.regions) }
func (m *Member) ProductPrices() []ProductPrice     { return slices.Clone(m.prices) }

// Approve activates the member and marks the profile approved.
func (m *Member) Approve(now time.Time) error {
	if m.approval == ApprovalApproved {
		return errs.NewValueIsInvalidErrorWithCause("member", ErrAlreadyReviewed)
	}
	m.status = StatusActive
	m.approval = ApprovalApproved
	m.rejectionReason = ""
	m.audit = m.audit.Touch(now)
	return nil
}

// Reject records the reason; the member stays PENDING and may be reviewed again.
func (m *Member) Reject(reason string, now time.Time) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("rejection reason")
	}
	if m.approval == ApprovalApproved {
		return errs.NewValueIsInvalidErrorWithCause("member", ErrAlreadyReviewed)
	}
	m.approval = ApprovalRejected
	m.rejectionReason = strings.TrimSpace(reason)
	m.audit = m.audit.Touch(now)
	return nil
}
