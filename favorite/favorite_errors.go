package favorite

import "errors"

var (
	ErrInvalidFavorite = errors.New("invalid favorite")
	ErrUnknownLicensee = errors.New("unknown licensee")
)
