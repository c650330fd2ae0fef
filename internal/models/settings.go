package models

import (
	"encoding/json"
)

// PresetMenu is the preset selector state stored in the settings document.
type PresetMenu struct {
	Presets        []string `json:"presets"`
	SelectedPreset string   `json:"selected_preset"`
}

// SettingsDocument mirrors the global settings file. Top-level keys other
// than preset_menu are kept in Extra and written back unchanged.
type SettingsDocument struct {
	PresetMenu PresetMenu
	Extra      map[string]json.RawMessage
}

// NewSettingsDocument returns the document written on first run.
func NewSettingsDocument() SettingsDocument {
	return SettingsDocument{PresetMenu: PresetMenu{Presets: []string{}}}
}

// MarshalJSON implements json.Marshaler.
func (s SettingsDocument) MarshalJSON() ([]byte, error) {
	obj := make(map[string]interface{}, len(s.Extra)+1)
	for k, v := range s.Extra {
		obj[k] = v
	}
	menu := s.PresetMenu
	if menu.Presets == nil {
		menu.Presets = []string{}
	}
	obj[KeyPresetMenu] = menu
	return json.Marshal(obj)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *SettingsDocument) UnmarshalJSON(data []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	var menu PresetMenu
	if raw, ok := obj[KeyPresetMenu]; ok {
		if err := json.Unmarshal(raw, &menu); err != nil {
			return err
		}
		delete(obj, KeyPresetMenu)
	}

	s.PresetMenu = menu
	s.Extra = nil
	if len(obj) > 0 {
		s.Extra = obj
	}
	return nil
}
