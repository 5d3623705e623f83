package booking

type Step int

const (
	StepPersonalDetails Step = 1
	StepPayment         Step = 2
	StepReview          Step = 3
)

func (s Step) String() string {
	switch s {
	case StepPersonalDetails:
		return "personal-details"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

func (s Step) IsValid() bool {
	return s >= StepPersonalDetails && s <= StepReview
}

type Phase string

const (
	PhaseEditing    Phase = "editing"
	PhaseSubmitting Phase = "submitting"
	PhaseCompleted  Phase = "completed"
)

// Wizard is the linear three-step form. Steps only move forward through
// Next, backward through Back, and the review step is the only place
// submission can start.
type Wizard struct {
	step           Step
	phase          Phase
	stepValidation bool
}

func NewWizard(stepValidation bool) *Wizard {
	return &Wizard{step: StepPersonalDetails, phase: PhaseEditing, stepValidation: stepValidation}
}

// RestoreWizard resumes editing at a step reported by the client.
func RestoreWizard(step Step, stepValidation bool) (*Wizard, error) {
	if !step.IsValid() {
		return nil, ErrInvalidStep
	}
	return &Wizard{step: step, phase: PhaseEditing, stepValidation: stepValidation}, nil
}

func (w *Wizard) Step() Step   { return w.step }
func (w *Wizard) Phase() Phase { return w.phase }

func (w *Wizard) IsFirst() bool { return w.step == StepPersonalDetails }
func (w *Wizard) IsLast() bool  { return w.step == StepReview }

// Next moves one step forward, stopping at review. With step validation on,
// the current step's fields must pass first.
func (w *Wizard) Next(d Details) error {
	if w.phase != PhaseEditing {
		return ErrWizardClosed
	}
	if w.stepValidation {
		if errs := d.Validate(w.step); len(errs) > 0 {
			return errs
		}
	}
	if w.step < StepReview {
		w.step++
	}
	return nil
}

// Back moves one step backward, stopping at personal details.
func (w *Wizard) Back() error {
	if w.phase != PhaseEditing {
		return ErrWizardClosed
	}
	if w.step > StepPersonalDetails {
		w.step--
	}
	return nil
}

// BeginSubmit validates every field at once. On failure the wizard stays at review.
func (w *Wizard) BeginSubmit(d Details) error {
	switch w.phase {
	case PhaseSubmitting:
		return ErrAlreadySubmitting
	case PhaseCompleted:
		return ErrWizardClosed
	}
	if w.step != StepReview {
		return ErrNotAtFinalStep
	}
	if errs := d.Validate(); len(errs) > 0 {
		return errs
	}
	w.phase = PhaseSubmitting
	return nil
}

func (w *Wizard) Complete() error {
	if w.phase != PhaseSubmitting {
		return ErrInvalidStep
	}
	w.phase = PhaseCompleted
	return nil
}

// Abort returns a submitting wizard to the review step, as when the processing
// wait was cancelled.
func (w *Wizard) Abort() {
	if w.phase == PhaseSubmitting {
		w.phase = PhaseEditing
	}
}
