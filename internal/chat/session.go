package chat

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apierrors "github.com/medobsmind/medobs/internal/errors"
	"github.com/medobsmind/medobs/internal/prefs"
)

// State is a step of the send cycle
type State int

const (
	StateIdle State = iota
	StateAwaitingSend
	StateUserAppended
	StateAssistantAppended
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingSend:
		return "awaiting-send"
	case StateUserAppended:
		return "user-appended"
	case StateAssistantAppended:
		return "assistant-appended"
	default:
		return "unknown"
	}
}

// ChatView receives the directives produced by a Session.
type ChatView interface {
	RowInserted(index int)
	ScrollTo(index int)
	ClearInputField()
	ShowValidationError(err error)
	SetTitleSuffix(modelName string)
}

// Session drives one chat screen: it owns the conversation, binds it to the
// view through an Adapter and runs the send cycle.
type Session struct {
	id        string
	conv      *Conversation
	adapter   *Adapter
	generator Generator
	store     prefs.Store
	view      ChatView
	log       *zap.Logger

	state     State
	model     string
	onState   func(from, to State)
	welcome   string
	renderRow RenderFunc
}

// Option configures a Session
type Option func(*Session)

// WithGenerator replaces the default TemplateGenerator
func WithGenerator(g Generator) Option {
	return func(s *Session) { s.generator = g }
}

// WithLogger sets the session logger
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithWelcome overrides the seeded welcome text
func WithWelcome(text string) Option {
	return func(s *Session) { s.welcome = text }
}

// WithRenderer sets how rows are drawn by the adapter
func WithRenderer(r RenderFunc) Option {
	return func(s *Session) { s.renderRow = r }
}

// WithStateHook is called on every send-cycle transition
func WithStateHook(fn func(from, to State)) Option {
	return func(s *Session) { s.onState = fn }
}

// NewSession creates a session reading the model selection from store and
// reporting to view. Call Activate before the first submit.
func NewSession(store prefs.Store, view ChatView, opts ...Option) *Session {
	s := &Session{
		id:    uuid.NewString(),
		store: store,
		view:  view,
		model: prefs.DefaultModel,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.generator == nil {
		s.generator = NewTemplateGenerator("")
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	s.log = s.log.With(zap.String("session", s.id))

	s.conv = NewConversation(s.welcome)
	s.adapter = NewAdapter(s.conv, s.renderRow)
	s.adapter.Observe(ListenerFunc(s.rowInserted))
	return s
}

// ID returns the session identifier used in logs
func (s *Session) ID() string { return s.id }

// Conversation returns the underlying conversation
func (s *Session) Conversation() *Conversation { return s.conv }

// Adapter returns the list adapter bound to the conversation
func (s *Session) Adapter() *Adapter { return s.adapter }

// State returns the current send-cycle state
func (s *Session) State() State { return s.state }

// Model returns the model selection last read from the store
func (s *Session) Model() string { return s.model }

// Activate loads the model selection and seeds the welcome entry.
func (s *Session) Activate() {
	s.log.Info("session activated")
	s.OnScreenResumed()
	if s.conv.SeedWelcome() {
		s.view.ScrollTo(s.conv.Len() - 1)
	}
}

// OnScreenResumed re-reads the model selection and refreshes the title.
func (s *Session) OnScreenResumed() {
	s.model = s.loadModel()
	s.view.SetTitleSuffix(s.model)
}

// OnSubmitClicked runs one send cycle for text.
//
// Empty input is reported to the view as a validation error and returned;
// the conversation and the input field are left untouched. Submitting while
// a cycle is in flight returns ErrCycleInFlight.
func (s *Session) OnSubmitClicked(text string) error {
	if s.state != StateIdle {
		return apierrors.ErrCycleInFlight
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		err := apierrors.NewValidationError("")
		s.log.Debug("rejected empty message")
		s.view.ShowValidationError(err)
		return err
	}

	s.transition(StateAwaitingSend)
	index, err := s.conv.AppendUserMessage(trimmed)
	if err != nil {
		s.transition(StateIdle)
		s.view.ShowValidationError(err)
		return err
	}
	s.transition(StateUserAppended)
	s.view.ScrollTo(index)
	s.view.ClearInputField()

	// The selection may have changed in another process since the last
	// resume; the reply always uses the latest persisted value.
	if latest := s.loadModel(); latest != s.model {
		s.model = latest
		s.view.SetTitleSuffix(latest)
	}

	reply := s.generator.Generate(trimmed, s.model)
	index = s.conv.AppendAssistantMessage(reply)
	s.transition(StateAssistantAppended)
	s.view.ScrollTo(index)

	s.transition(StateIdle)
	return nil
}

func (s *Session) rowInserted(index int) {
	kind, _ := s.adapter.RowKind(index)
	s.log.Debug("row inserted", zap.Int("index", index), zap.Stringer("kind", kind))
	s.view.RowInserted(index)
}

func (s *Session) loadModel() string {
	model, err := prefs.LoadSelection(s.store)
	if err != nil {
		s.log.Warn("failed to load model selection, using default", zap.Error(err))
	}
	return model
}

func (s *Session) transition(to State) {
	from := s.state
	s.state = to
	if s.onState != nil {
		s.onState(from, to)
	}
}
