package models

// CommandName identifies a CLI command.
type CommandName string

const (
	CommandAdd     CommandName = "add"
	CommandExtract CommandName = "extract"
	CommandRemove  CommandName = "remove"
	CommandList    CommandName = "list"
	CommandInfo    CommandName = "info"
	CommandEncrypt CommandName = "encrypt"
	CommandDecrypt CommandName = "decrypt"
	CommandFlags   CommandName = "flags"
	CommandBrowse  CommandName = "browse"
	CommandVersion CommandName = "version"
	CommandHelp    CommandName = "help"
)

// Command is a parsed command line.
type Command struct {
	Name      CommandName
	Container string
	Args      []string

	Compress bool
	Long     bool
	Flags    FlagUpdate
}
