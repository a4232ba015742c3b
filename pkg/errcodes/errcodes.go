package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Forbidden           failure.ErrorCode = "Forbidden"

	// Ошибки редактора настроек: код указывает поле, ввод для которого не прошёл проверку.
	UnknownSettingField failure.ErrorCode = "UnknownSettingField"
	InvalidMinPrice     failure.ErrorCode = "InvalidMinPrice"
	InvalidMaxPrice     failure.ErrorCode = "InvalidMaxPrice"
	InvalidFloorPercent failure.ErrorCode = "InvalidFloorPercent"
	InvalidFees         failure.ErrorCode = "InvalidFees"
	InvalidFloors       failure.ErrorCode = "InvalidFloors"

	InvalidListingText failure.ErrorCode = "InvalidListingText"
	PendingEditStorage failure.ErrorCode = "PendingEditStorage"
)
