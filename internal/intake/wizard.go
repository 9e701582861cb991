// Package intake implements the two-step student payment form as an explicit
// state machine: pick a section, then enter names and submit as many students
// as needed for that section.
package intake

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Masc20/CSO-Clearance-Payment-List/internal/dto"
)

// State wizard step
type State int

const (
	StateSelectSection State = iota
	StateInputDetails
)

func (s State) String() string {
	switch s {
	case StateSelectSection:
		return "select-section"
	case StateInputDetails:
		return "input-details"
	default:
		return "unknown"
	}
}

// DefaultNoticeTTL how long the success notice stays visible
const DefaultNoticeTTL = 3 * time.Second

// Messages shown inline on the form
const (
	MsgSelectSection     = "Please select a section to proceed."
	MsgSettingsNotLoaded = "Application settings not loaded."
	MsgNameRequired      = "First name and last name are required."
	MsgRecordFailed      = "Could not record the payment. Please try again."
	MsgRecorded          = "Payment recorded! Enter next student."
)

// ErrInvalidTransition action not available in the current state
var ErrInvalidTransition = errors.New("intake: action not allowed in current state")

// Recorder stores a new submission
type Recorder interface {
	Create(ctx context.Context, req *dto.CreateSubmissionRequest) (*dto.SubmissionResponse, error)
}

// SettingsLoader provides the section list and amount
type SettingsLoader interface {
	LoadOrDefault(ctx context.Context) (*dto.SettingsResponse, error)
}

// Names step two input
type Names struct {
	FirstName  string
	LastName   string
	MiddleName string
}

// Wizard one student form. Safe for concurrent use.
type Wizard struct {
	recorder Recorder
	settings SettingsLoader
	ttl      time.Duration
	now      func() time.Time

	mu          sync.Mutex
	state       State
	section     string
	names       Names
	errMsg      string
	noticeUntil time.Time
}

// NewWizard creates a Wizard in StateSelectSection
func NewWizard(recorder Recorder, settings SettingsLoader, noticeTTL time.Duration) *Wizard {
	if noticeTTL <= 0 {
		noticeTTL = DefaultNoticeTTL
	}
	return &Wizard{
		recorder: recorder,
		settings: settings,
		ttl:      noticeTTL,
		now:      time.Now,
		state:    StateSelectSection,
	}
}

// State current step
func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// SelectSection select-section → input-details, guarded by a non-blank label.
// A blank label keeps the state and sets the validation message.
func (w *Wizard) SelectSection(label string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateSelectSection {
		return ErrInvalidTransition
	}
	if strings.TrimSpace(label) == "" {
		w.errMsg = MsgSelectSection
		return nil
	}

	w.section = label
	w.errMsg = ""
	w.state = StateInputDetails
	return nil
}

// ChangeSection input-details → select-section. Clears pending messages; the
// previous selection is kept as the preselected choice.
func (w *Wizard) ChangeSection() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateInputDetails {
		return ErrInvalidTransition
	}
	w.state = StateSelectSection
	w.errMsg = ""
	w.noticeUntil = time.Time{}
	return nil
}

// Submit records one payment for the selected section. Validation problems
// are reported through the inline message and return a nil error; only an
// action in the wrong state or a storage failure returns an error.
func (w *Wizard) Submit(ctx context.Context, names Names) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateInputDetails {
		return ErrInvalidTransition
	}
	w.errMsg = ""
	w.names = names

	if _, err := w.settings.LoadOrDefault(ctx); err != nil {
		w.errMsg = MsgSettingsNotLoaded
		return nil
	}
	if strings.TrimSpace(names.FirstName) == "" || strings.TrimSpace(names.LastName) == "" {
		w.errMsg = MsgNameRequired
		return nil
	}

	_, err := w.recorder.Create(ctx, &dto.CreateSubmissionRequest{
		SectionLabel: w.section,
		FirstName:    names.FirstName,
		LastName:     names.LastName,
		MiddleName:   names.MiddleName,
	})
	if err != nil {
		w.errMsg = MsgRecordFailed
		return err
	}

	// keep the section for the next student, clear only the names
	w.names = Names{}
	w.noticeUntil = w.now().Add(w.ttl)
	return nil
}

// Notice the success notice while it is still visible, otherwise ""
func (w *Wizard) Notice() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.noticeLocked()
}

func (w *Wizard) noticeLocked() string {
	if w.noticeUntil.IsZero() {
		return ""
	}
	if !w.now().Before(w.noticeUntil) {
		w.noticeUntil = time.Time{}
		return ""
	}
	return MsgRecorded
}

// Error the current inline validation message
func (w *Wizard) Error() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.errMsg
}

// View render snapshot, including the current settings
func (w *Wizard) View(ctx context.Context) *dto.IntakeView {
	w.mu.Lock()
	defer w.mu.Unlock()

	v := &dto.IntakeView{
		Step:         w.state.String(),
		SectionLabel: w.section,
		FirstName:    w.names.FirstName,
		LastName:     w.names.LastName,
		MiddleName:   w.names.MiddleName,
		Error:        w.errMsg,
		Notice:       w.noticeLocked(),
	}

	cfg, err := w.settings.LoadOrDefault(ctx)
	if err != nil {
		v.SettingsErr = true
		return v
	}
	v.Sections = cfg.Sections
	v.Amount = cfg.Amount
	return v
}
