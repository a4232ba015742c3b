package value

import "fmt"

// SettingField поле настроек, которое можно изменить через редактор.
type SettingField string

const (
	FieldMinPrice     SettingField = "min"
	FieldMaxPrice     SettingField = "max"
	FieldFloorPercent SettingField = "floor_pct"
	FieldRarity       SettingField = "rare"
	FieldFees         SettingField = "fees"
	FieldFloors       SettingField = "floors"
)

// SettingFields порядок полей в клавиатуре настроек.
var SettingFields = []SettingField{ //nolint:gochecknoglobals
	FieldMinPrice,
	FieldMaxPrice,
	FieldFloorPercent,
	FieldRarity,
	FieldFees,
	FieldFloors,
}

func ParseSettingField(s string) (SettingField, error) {
	for _, f := range SettingFields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown setting field %q", s)
}

func (f SettingField) String() string {
	return string(f)
}

// IsNumeric true для полей с одним числовым значением.
func (f SettingField) IsNumeric() bool {
	return f == FieldMinPrice || f == FieldMaxPrice || f == FieldFloorPercent
}
