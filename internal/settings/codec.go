package settings

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/iw2rmb/focusmode/focus"
)

// JSON keys of the settings object.
const (
	keyEnabled    = "enabled"
	keyDimOpacity = "dimOpacity"
	keyFadeSpeed  = "fadeSpeed"
	keyDimColor   = "dimColor"
)

// Decode merges the keys present in data over the defaults. Values of the
// wrong type are ignored; numbers are clamped and colors validated the same
// way the settings panel does.
func Decode(data []byte) (focus.Settings, error) {
	s := focus.DefaultSettings()
	if len(data) == 0 {
		return s, nil
	}
	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return s, ErrInvalidJSON
	}

	res := gjson.GetManyBytes(data, keyEnabled, keyDimOpacity, keyFadeSpeed, keyDimColor)
	if v := res[0]; v.IsBool() {
		s.Enabled = v.Bool()
	}
	if v := res[1]; v.Type == gjson.Number {
		s.SetDimOpacity(int(v.Int()))
	}
	if v := res[2]; v.Type == gjson.Number {
		s.SetFadeSpeed(int(v.Int()))
	}
	if v := res[3]; v.Type == gjson.String {
		s.SetDimColor(v.String())
	}
	return s, nil
}

// Encode writes s into base, keeping every other key of base. An empty or
// invalid base starts from an empty object. The result is indented.
func Encode(base []byte, s focus.Settings) ([]byte, error) {
	if len(base) == 0 || !gjson.ValidBytes(base) || !gjson.ParseBytes(base).IsObject() {
		base = []byte("{}")
	}
	out := append([]byte(nil), base...)

	var err error
	for _, kv := range []struct {
		key string
		val interface{}
	}{
		{keyEnabled, s.Enabled},
		{keyDimOpacity, s.DimOpacity},
		{keyFadeSpeed, s.FadeSpeed},
		{keyDimColor, s.DimColor},
	} {
		if out, err = sjson.SetBytes(out, kv.key, kv.val); err != nil {
			return nil, err
		}
	}
	pretty := gjson.GetBytes(out, "@pretty").Raw
	return []byte(pretty), nil
}
