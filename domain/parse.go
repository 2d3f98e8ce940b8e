package domain

import "strings"

// ParseError reports a malformed command line. Reply holds the exact line
// owed to the sender, trailing newline included.
type ParseError struct {
	Reply string
}

func (e *ParseError) Error() string {
	return strings.TrimSuffix(e.Reply, "\n")
}

func parseErr(reply string) (Command, error) {
	return nil, &ParseError{Reply: reply}
}

// Parse turns one received line into a Command. Dispatch is fixed-prefix and
// case-sensitive; arguments are split on the first following space. The empty
// line and the literal "exit" are handled before any prefix matching.
func Parse(line string) (Command, error) {
	switch {
	case line == "exit":
		return ExitCommand{}, nil

	case line == "":
		return parseErr(ReplyEmptyMessage)

	case strings.HasPrefix(line, "/msg"):
		// Layout: /msg <username> <message>. The target starts at offset 5
		// and runs to the next space; everything after is the body.
		sp := indexFrom(line, 5)
		if sp < 0 {
			return parseErr(ReplyDirectUsage)
		}
		body := line[sp+1:]
		if body == "" {
			return parseErr(ReplyDirectEmpty)
		}
		return DirectMessageCommand{To: line[5:sp], Body: body}, nil

	case strings.HasPrefix(line, "/broadcast"):
		if len(line) <= 10 || line[10] != ' ' {
			return parseErr(ReplyBroadcastUsage)
		}
		body := line[11:]
		if body == "" {
			return parseErr(ReplyBroadcastEmpty)
		}
		return BroadcastCommand{Body: body}, nil

	case strings.HasPrefix(line, "/create_group"):
		if len(line) <= 13 || line[13] != ' ' {
			return parseErr(ReplyCreateGroupUsage)
		}
		name := line[14:]
		if name == "" {
			return parseErr(ReplyGroupNameEmpty)
		}
		if strings.Contains(name, " ") {
			return parseErr(ReplyGroupNameSpaces)
		}
		return CreateGroupCommand{Name: name}, nil

	case strings.HasPrefix(line, "/join_group"):
		if len(line) <= 11 || line[11] != ' ' {
			return parseErr(ReplyJoinGroupUsage)
		}
		name := line[12:]
		if name == "" {
			return parseErr(ReplyGroupNameEmpty)
		}
		return JoinGroupCommand{Name: name}, nil

	case strings.HasPrefix(line, "/group_msg"):
		if len(line) <= 10 || line[10] != ' ' {
			return parseErr(ReplyGroupMsgUsage)
		}
		sp := indexFrom(line, 11)
		if sp < 0 {
			return parseErr(ReplyGroupMsgUsage)
		}
		body := line[sp+1:]
		if body == "" {
			return parseErr(ReplyGroupMsgEmpty)
		}
		return GroupMessageCommand{Group: line[11:sp], Body: body}, nil

	case strings.HasPrefix(line, "/leave_group"):
		if len(line) <= 12 || line[12] != ' ' {
			return parseErr(ReplyLeaveGroupUsage)
		}
		name := line[13:]
		if name == "" {
			return parseErr(ReplyGroupNameEmpty)
		}
		return LeaveGroupCommand{Name: name}, nil

	default:
		return parseErr(ReplyUnknownCommand)
	}
}

// indexFrom locates the first space at or after position from, -1 if none.
func indexFrom(line string, from int) int {
	if from >= len(line) {
		return -1
	}
	if i := strings.IndexByte(line[from:], ' '); i >= 0 {
		return i + from
	}
	return -1
}
