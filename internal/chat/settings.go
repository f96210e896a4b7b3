package chat

import (
	"go.uber.org/zap"

	apierrors "github.com/medobsmind/medobs/internal/errors"
	"github.com/medobsmind/medobs/internal/prefs"
)

// SettingsView receives the directives produced by Settings.
type SettingsView interface {
	ShowSelectionRequiredError(err error)
	ShowSettingsSavedConfirmation(modelName string)
}

// Settings drives the model selection screen. It touches the preference
// store only and is independent of any conversation.
type Settings struct {
	store    prefs.Store
	view     SettingsView
	log      *zap.Logger
	selected prefs.ModelOption
}

// NewSettings creates a settings controller
func NewSettings(store prefs.Store, view SettingsView, log *zap.Logger) *Settings {
	if log == nil {
		log = zap.NewNop()
	}
	return &Settings{store: store, view: view, log: log}
}

// Load pre-selects the persisted option. When the store holds no valid
// selection the default is checked, matching what LoadSelection reports.
func (s *Settings) Load() prefs.ModelOption {
	o, err := prefs.StoredOption(s.store)
	if err != nil {
		s.log.Warn("failed to read stored selection", zap.Error(err))
	}
	if o == prefs.NoOption {
		o = prefs.ParseOption(prefs.DefaultModel)
	}
	s.selected = o
	return o
}

// Selected returns the current choice
func (s *Settings) Selected() prefs.ModelOption { return s.selected }

// Select chooses o. Values outside the enumeration clear the selection.
func (s *Settings) Select(o prefs.ModelOption) {
	if !o.Valid() {
		o = prefs.NoOption
	}
	s.selected = o
}

// Clear removes the current choice
func (s *Settings) Clear() { s.selected = prefs.NoOption }

// Save persists the current choice. With nothing selected it reports a
// NoSelectionError to the view and writes nothing.
func (s *Settings) Save() (string, error) {
	name, err := prefs.SaveSelection(s.store, s.selected)
	if err != nil {
		if apierrors.IsNoSelectionError(err) {
			s.view.ShowSelectionRequiredError(err)
		}
		s.log.Warn("model selection not saved", zap.Error(err))
		return "", err
	}
	s.log.Info("model selection saved", zap.String("model", name))
	s.view.ShowSettingsSavedConfirmation(name)
	return name, nil
}
