package validators

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/tinyfs/models"
)

// Field names accepted by [CommandValidator.Validate].
const (
	FieldName      = "name"
	FieldContainer = "container"
	FieldArgs      = "args"
	FieldOptions   = "options"
)

// Option names used in [ErrOptionNotAllowed] messages.
const (
	OptionCompress = "--compress"
	OptionLong     = "--long"
	OptionFlags    = "--case-insensitive/--utf8"
)

type commandRule struct {
	container bool
	minArgs   int
	maxArgs   int
	options   []string
	// usage lists the positional arguments after the command name.
	usage string
}

var rules = map[models.CommandName]commandRule{
	models.CommandAdd:     {container: true, minArgs: 2, maxArgs: 2, options: []string{OptionCompress}, usage: "<container> <name> <file>"},
	models.CommandExtract: {container: true, minArgs: 2, maxArgs: 2, usage: "<container> <name> <file>"},
	models.CommandRemove:  {container: true, minArgs: 1, maxArgs: 1, usage: "<container> <name>"},
	models.CommandList:    {container: true, options: []string{OptionLong}, usage: "<container>"},
	models.CommandInfo:    {container: true, usage: "<container>"},
	models.CommandEncrypt: {container: true, usage: "<container>"},
	models.CommandDecrypt: {container: true, usage: "<container>"},
	models.CommandFlags:   {container: true, options: []string{OptionFlags}, usage: "<container>"},
	models.CommandBrowse:  {container: true, usage: "<container>"},
	models.CommandVersion: {},
	models.CommandHelp:    {maxArgs: 1, usage: "[command]"},
}

// Commands returns every known command in help order.
func Commands() []models.CommandName {
	return []models.CommandName{
		models.CommandAdd, models.CommandExtract, models.CommandRemove,
		models.CommandList, models.CommandInfo, models.CommandEncrypt,
		models.CommandDecrypt, models.CommandFlags, models.CommandBrowse,
		models.CommandVersion, models.CommandHelp,
	}
}

// IsCommand reports whether name is a known command.
func IsCommand(name models.CommandName) bool {
	_, ok := rules[name]
	return ok
}

// TakesContainer reports whether the first positional argument after name
// is a container path.
func TakesContainer(name models.CommandName) bool {
	return rules[name].container
}

// Usage returns the positional argument synopsis of name.
func Usage(name models.CommandName) string {
	return rules[name].usage
}

// CommandValidator validates [models.Command] values.
type CommandValidator struct{}

func NewCommandValidator() Validator {
	return &CommandValidator{}
}

func (v *CommandValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Command:
		return v.validateCommand(ctx, value, fields...)
	case *models.Command:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCommand(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CommandValidator) validateCommand(_ context.Context, cmd models.Command, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldContainer, FieldArgs, FieldOptions}
	}

	rule, known := rules[cmd.Name]
	for _, f := range fields {
		if f != FieldName && !known && isField(f) {
			// every other rule depends on the command table
			return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Name)
		}

		switch f {
		case FieldName:
			if !known {
				return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Name)
			}
		case FieldContainer:
			if rule.container && cmd.Container == "" {
				return ErrMissingContainer
			}
			if !rule.container && cmd.Container != "" {
				return ErrUnexpectedContainer
			}
		case FieldArgs:
			if n := len(cmd.Args); n < rule.minArgs || n > rule.maxArgs {
				return fmt.Errorf("%w: %s expects %s", ErrArgumentCount, cmd.Name, rule.usage)
			}
			for i, arg := range cmd.Args {
				if arg == "" {
					return fmt.Errorf("%w: argument %d", ErrEmptyArgument, i+1)
				}
			}
		case FieldOptions:
			if err := checkOptions(cmd, rule); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkOptions(cmd models.Command, rule commandRule) error {
	used := []struct {
		name string
		set  bool
	}{
		{OptionCompress, cmd.Compress},
		{OptionLong, cmd.Long},
		{OptionFlags, !cmd.Flags.IsEmpty()},
	}
	for _, opt := range used {
		if opt.set && !slices.Contains(rule.options, opt.name) {
			return fmt.Errorf("%w: %s with %s", ErrOptionNotAllowed, opt.name, cmd.Name)
		}
	}
	if cmd.Name == models.CommandFlags && cmd.Flags.IsEmpty() {
		return ErrNoFlagChanges
	}
	return nil
}

func isField(f string) bool {
	switch f {
	case FieldName, FieldContainer, FieldArgs, FieldOptions:
		return true
	}
	return false
}
