package validators

import (
	"errors"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUnknownCommand      = errors.New("unknown command")
	ErrMissingContainer    = errors.New("container path is required")
	ErrUnexpectedContainer = errors.New("command does not take a container")
	ErrArgumentCount       = errors.New("wrong number of arguments")
	ErrEmptyArgument       = errors.New("argument cannot be empty")
	ErrOptionNotAllowed    = errors.New("option is not valid for this command")
	ErrNoFlagChanges       = errors.New("at least one of --case-insensitive or --utf8 must be given")
)
