package chat

import (
	"errors"
	"testing"

	apierrors "github.com/medobsmind/medobs/internal/errors"
	"github.com/medobsmind/medobs/internal/prefs"
)

type recordingSettingsView struct {
	required []error
	saved    []string
}

func (v *recordingSettingsView) ShowSelectionRequiredError(err error) {
	v.required = append(v.required, err)
}

func (v *recordingSettingsView) ShowSettingsSavedConfirmation(name string) {
	v.saved = append(v.saved, name)
}

func TestSettings_LoadPreselectsStored(t *testing.T) {
	store := prefs.NewMemoryStore()
	_, _ = prefs.SaveSelection(store, prefs.Standard)

	s := NewSettings(store, &recordingSettingsView{}, nil)
	if got := s.Load(); got != prefs.Standard {
		t.Errorf("Load() = %v, want Standard", got)
	}
	if s.Selected() != prefs.Standard {
		t.Errorf("Selected() = %v", s.Selected())
	}
}

func TestSettings_LoadEmptyStore(t *testing.T) {
	store := prefs.NewMemoryStore()
	s := NewSettings(store, &recordingSettingsView{}, nil)
	if got := s.Load(); got != prefs.Balanced {
		t.Errorf("Load() = %v, want Balanced", got)
	}

	// The checked option agrees with the name the chat title shows
	name, _ := prefs.LoadSelection(store)
	if s.Selected().DisplayName() != name {
		t.Errorf("Selected() = %q, LoadSelection() = %q", s.Selected().DisplayName(), name)
	}

	saved, err := s.Save()
	if err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}
	if saved != prefs.DefaultModel {
		t.Errorf("Save() = %q, want %q", saved, prefs.DefaultModel)
	}
}

func TestSettings_LoadInvalidStoredValue(t *testing.T) {
	store := prefs.NewMemoryStore()
	_ = store.Set(prefs.KeySelectedModel, "Turbo")

	s := NewSettings(store, &recordingSettingsView{}, nil)
	if got := s.Load(); got != prefs.Balanced {
		t.Errorf("Load() = %v, want Balanced", got)
	}
}

func TestSettings_SaveWithoutSelection(t *testing.T) {
	store := prefs.NewMemoryStore()
	view := &recordingSettingsView{}
	s := NewSettings(store, view, nil)
	s.Load()
	s.Clear()

	_, err := s.Save()
	if !errors.Is(err, apierrors.ErrNoSelection) {
		t.Fatalf("Save() error = %v, want NoSelectionError", err)
	}
	if len(view.required) != 1 {
		t.Errorf("ShowSelectionRequiredError called %d times", len(view.required))
	}
	if len(view.saved) != 0 {
		t.Error("no confirmation expected")
	}
	if store.Len() != 0 {
		t.Error("store must be unchanged")
	}
}

func TestSettings_ClearThenSaveKeepsPrevious(t *testing.T) {
	store := prefs.NewMemoryStore()
	_, _ = prefs.SaveSelection(store, prefs.FastResponse)

	view := &recordingSettingsView{}
	s := NewSettings(store, view, nil)
	s.Load()
	s.Clear()

	if _, err := s.Save(); !apierrors.IsNoSelectionError(err) {
		t.Fatalf("Save() error = %v", err)
	}
	if name, _ := prefs.LoadSelection(store); name != "Fast Response" {
		t.Errorf("store changed to %q", name)
	}
}

func TestSettings_SelectAndSave(t *testing.T) {
	store := prefs.NewMemoryStore()
	view := &recordingSettingsView{}
	s := NewSettings(store, view, nil)

	for _, o := range prefs.Options() {
		s.Select(o)
		name, err := s.Save()
		if err != nil {
			t.Fatalf("Save() returned error: %v", err)
		}
		if name != o.DisplayName() {
			t.Errorf("Save() = %q", name)
		}
		if loaded, _ := prefs.LoadSelection(store); loaded != o.DisplayName() {
			t.Errorf("LoadSelection() = %q, want %q", loaded, o.DisplayName())
		}
	}
	if len(view.saved) != len(prefs.Options()) {
		t.Errorf("confirmations = %v", view.saved)
	}
}

func TestSettings_SelectInvalidClears(t *testing.T) {
	s := NewSettings(prefs.NewMemoryStore(), &recordingSettingsView{}, nil)
	s.Select(prefs.Balanced)
	s.Select(prefs.ModelOption(77))
	if s.Selected() != prefs.NoOption {
		t.Errorf("Selected() = %v, want NoOption", s.Selected())
	}
}

type brokenStore struct{}

func (brokenStore) Get(string) (string, bool, error) { return "", false, errors.New("read failed") }
func (brokenStore) Set(string, string) error         { return errors.New("write failed") }

func TestSettings_StoreFailure(t *testing.T) {
	view := &recordingSettingsView{}
	s := NewSettings(brokenStore{}, view, nil)

	if got := s.Load(); got != prefs.Balanced {
		t.Errorf("Load() = %v on read failure, want Balanced", got)
	}

	s.Select(prefs.Balanced)
	if _, err := s.Save(); err == nil {
		t.Fatal("Save() should surface the write error")
	}
	if len(view.required) != 0 || len(view.saved) != 0 {
		t.Error("storage failures are neither a missing selection nor a success")
	}
}
