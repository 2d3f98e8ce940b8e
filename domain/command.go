package domain

// Command is one parsed client instruction from the authenticated command loop.
type Command interface {
	command()
}

type DirectMessageCommand struct {
	To   string
	Body string
}

type BroadcastCommand struct {
	Body string
}

type CreateGroupCommand struct {
	Name string
}

type JoinGroupCommand struct {
	Name string
}

type GroupMessageCommand struct {
	Group string
	Body  string
}

type LeaveGroupCommand struct {
	Name string
}

// ExitCommand is the literal "exit" line.
type ExitCommand struct{}

func (DirectMessageCommand) command() {}
func (BroadcastCommand) command()     {}
func (CreateGroupCommand) command()   {}
func (JoinGroupCommand) command()     {}
func (GroupMessageCommand) command()  {}
func (LeaveGroupCommand) command()    {}
func (ExitCommand) command()          {}
