package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/tinyfs/models"
)

func ptrBool(b bool) *bool { return &b }

// ---------------------------------------------------------------------------
// Validate dispatch
// ---------------------------------------------------------------------------

func TestNewCommandValidator(t *testing.T) {
	require.NotNil(t, NewCommandValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewCommandValidator()
	ctx := context.Background()
	cmd := models.Command{Name: models.CommandInfo, Container: "box.tfs"}

	assert.NoError(t, v.Validate(ctx, cmd))
	assert.NoError(t, v.Validate(ctx, &cmd))
	assert.ErrorIs(t, v.Validate(ctx, (*models.Command)(nil)), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, "info"), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// Commands
// ---------------------------------------------------------------------------

func TestValidate_Commands(t *testing.T) {
	tests := []struct {
		name    string
		cmd     models.Command
		wantErr error
	}{
		{"add", models.Command{Name: models.CommandAdd, Container: "c", Args: []string{"n", "f"}}, nil},
		{"add compressed", models.Command{Name: models.CommandAdd, Container: "c", Args: []string{"n", "f"}, Compress: true}, nil},
		{"add missing file", models.Command{Name: models.CommandAdd, Container: "c", Args: []string{"n"}}, ErrArgumentCount},
		{"add empty name", models.Command{Name: models.CommandAdd, Container: "c", Args: []string{"", "f"}}, ErrEmptyArgument},
		{"extract", models.Command{Name: models.CommandExtract, Container: "c", Args: []string{"n", "f"}}, nil},
		{"extract compress", models.Command{Name: models.CommandExtract, Container: "c", Args: []string{"n", "f"}, Compress: true}, ErrOptionNotAllowed},
		{"remove", models.Command{Name: models.CommandRemove, Container: "c", Args: []string{"n"}}, nil},
		{"remove too many", models.Command{Name: models.CommandRemove, Container: "c", Args: []string{"n", "m"}}, ErrArgumentCount},
		{"list long", models.Command{Name: models.CommandList, Container: "c", Long: true}, nil},
		{"info long", models.Command{Name: models.CommandInfo, Container: "c", Long: true}, ErrOptionNotAllowed},
		{"info no container", models.Command{Name: models.CommandInfo}, ErrMissingContainer},
		{"encrypt", models.Command{Name: models.CommandEncrypt, Container: "c"}, nil},
		{"decrypt extra", models.Command{Name: models.CommandDecrypt, Container: "c", Args: []string{"x"}}, ErrArgumentCount},
		{"flags", models.Command{Name: models.CommandFlags, Container: "c", Flags: models.FlagUpdate{UTF8Names: ptrBool(true)}}, nil},
		{"flags nothing", models.Command{Name: models.CommandFlags, Container: "c"}, ErrNoFlagChanges},
		{"list with flags", models.Command{Name: models.CommandList, Container: "c", Flags: models.FlagUpdate{CaseInsensitive: ptrBool(false)}}, ErrOptionNotAllowed},
		{"browse", models.Command{Name: models.CommandBrowse, Container: "c"}, nil},
		{"version", models.Command{Name: models.CommandVersion}, nil},
		{"version container", models.Command{Name: models.CommandVersion, Container: "c"}, ErrUnexpectedContainer},
		{"help", models.Command{Name: models.CommandHelp}, nil},
		{"help topic", models.Command{Name: models.CommandHelp, Args: []string{"add"}}, nil},
		{"unknown", models.Command{Name: "frobnicate", Container: "c"}, ErrUnknownCommand},
	}

	v := NewCommandValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.cmd)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// Field scoping
// ---------------------------------------------------------------------------

func TestValidate_FieldScoping(t *testing.T) {
	v := NewCommandValidator()
	ctx := context.Background()
	cmd := models.Command{Name: models.CommandAdd, Args: []string{"n", "f"}}

	assert.ErrorIs(t, v.Validate(ctx, cmd), ErrMissingContainer)
	assert.NoError(t, v.Validate(ctx, cmd, FieldName, FieldArgs))
	assert.ErrorIs(t, v.Validate(ctx, cmd, "bogus"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, models.Command{Name: "x"}, FieldArgs), ErrUnknownCommand)
}

// ---------------------------------------------------------------------------
// Command table helpers
// ---------------------------------------------------------------------------

func TestCommandTable(t *testing.T) {
	for _, name := range Commands() {
		assert.True(t, IsCommand(name), name)
	}
	assert.False(t, IsCommand("nope"))

	assert.True(t, TakesContainer(models.CommandAdd))
	assert.False(t, TakesContainer(models.CommandVersion))
	assert.False(t, TakesContainer("nope"))

	assert.Equal(t, "<container> <name> <file>", Usage(models.CommandAdd))
}
